package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// stream identifies which child output a captured line came from.
type stream int

const (
	streamStdout stream = iota
	streamStderr
)

func (s stream) String() string {
	if s == streamStderr {
		return "stderr"
	}
	return "stdout"
}

// outputLine is one decoded line of child output, immutable once created.
type outputLine struct {
	text string
	src  stream
}

// maxLineBytes bounds a single captured line; longer lines would otherwise
// abort the scanner with bufio.ErrTooLong.
const maxLineBytes = 1024 * 1024

// readStream forwards each newline-delimited line of r to out, tagged with
// src, as soon as it is read. Returns nil at end of stream.
func readStream(r io.Reader, src stream, out chan<- outputLine) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		if !utf8.ValidString(text) {
			return &DecodeError{Stream: src, Line: n}
		}
		out <- outputLine{text: text, src: src}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	return nil
}

// childResult is the terminal state of the child process.
type childResult struct {
	code      int
	coded     bool
	succeeded bool
}

// captureResult pairs the child's exit state with any capture error.
type captureResult struct {
	child childResult
	err   error
}

// collect drains both pipes concurrently into lines, closes lines once both
// readers are done, then waits for the child. Waiting only starts after the
// pipes are fully drained, so a child filling an OS pipe buffer can never
// deadlock the run, and the exit status is only considered final once both
// readers have finished.
func collect(cmd *exec.Cmd, stdout, stderr io.Reader, lines chan<- outputLine) <-chan captureResult {
	done := make(chan captureResult, 1)
	go func() {
		var g errgroup.Group
		g.Go(guardReader(stdout, streamStdout, lines))
		g.Go(guardReader(stderr, streamStderr, lines))
		readErr := g.Wait()
		close(lines)

		var res childResult
		err := cmd.Wait()
		var exitErr *exec.ExitError
		switch {
		case err == nil:
			res = childResult{code: 0, coded: true, succeeded: true}
		case errors.As(err, &exitErr):
			// A failing child is a normal outcome, not a capture error.
			code := exitErr.ExitCode()
			res = childResult{code: code, coded: code >= 0}
		default:
			if readErr == nil {
				readErr = fmt.Errorf("waiting for command: %w", err)
			}
		}
		done <- captureResult{child: res, err: readErr}
	}()
	return done
}

// guardReader wraps readStream so a panicking reader surfaces as a
// WorkerError instead of tearing down the whole process.
func guardReader(r io.Reader, src stream, out chan<- outputLine) func() error {
	return func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = &WorkerError{Stream: src, Panic: rec}
			}
		}()
		err = readStream(r, src, out)
		if err != nil {
			// Unblock a child still writing into this pipe so the wait
			// below cannot deadlock on a full pipe buffer.
			_, _ = io.Copy(io.Discard, r)
		}
		return err
	}
}
