package main

import "fmt"

// SpawnError reports that the child process could not be created at all
// (missing executable, permission denied). Nothing was captured and no dump
// file exists.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string { return fmt.Sprintf("spawning %s: %v", e.Path, e.Err) }

func (e *SpawnError) Unwrap() error { return e.Err }

// StreamError reports that a stdout or stderr pipe could not be attached to
// the child before it started.
type StreamError struct {
	Stream stream
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("attaching %s pipe: %v", e.Stream, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// DecodeError reports a captured line that is not valid UTF-8. The run does
// not continue on a corrupted stream.
type DecodeError struct {
	Stream stream
	Line   int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s line %d is not valid UTF-8", e.Stream, e.Line)
}

// WorkerError reports a reader goroutine that died to a panic rather than a
// read failure, so infrastructure faults stay distinguishable from plain
// I/O errors.
type WorkerError struct {
	Stream stream
	Panic  any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("%s reader panicked: %v", e.Stream, e.Panic)
}
