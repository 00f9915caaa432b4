package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// RunSpec describes one command invocation.
type RunSpec struct {
	// Argv is the command tokens; Argv[0] is the executable. Must be
	// non-empty.
	Argv []string
	// Name is an optional human-readable label shown in the box title.
	Name string
	// TailLines is the height of the rolling tail window (default 4).
	TailLines int
	// Tick is the indicator redraw interval (default 200ms).
	Tick time.Duration
	// Plain disables the live box and echoes lines as they arrive instead.
	Plain bool
	// Out receives echoed lines (plain mode) and the final summary.
	// Defaults to os.Stdout.
	Out io.Writer
	// Logger is used for debug logging only; nil discards everything.
	Logger *logrus.Entry
}

// ChildResult is the terminal state of the child process.
type ChildResult struct {
	// Code is the exit code. It is only meaningful when Coded is true;
	// a child killed by a signal has no code.
	Code      int
	Coded     bool
	Succeeded bool
}

// RunOutcome is returned on every completed run, including child failures.
type RunOutcome struct {
	Result  ChildResult
	LogPath string
}

// Run executes spec.Argv with both output streams captured, shows the live
// tail box until the child exits, then writes the full output to a kept
// temp file and prints a styled summary to spec.Out.
//
// A failing child is a normal outcome reported through RunOutcome; only
// capture-infrastructure problems come back as errors, and none of them
// are retried.
func Run(spec RunSpec) (RunOutcome, error) {
	if len(spec.Argv) == 0 {
		return RunOutcome{}, fmt.Errorf("empty command")
	}
	if spec.Out == nil {
		spec.Out = os.Stdout
	}
	if spec.TailLines <= 0 {
		spec.TailLines = defaultTailLines
	}
	if spec.Tick <= 0 {
		spec.Tick = defaultTick
	}
	logger := spec.Logger
	if logger == nil {
		logger = discardLogger()
	}

	// Both streams piped, stdin never forwarded.
	cmd := exec.Command(spec.Argv[0], spec.Argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return RunOutcome{}, &StreamError{Stream: streamStdout, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return RunOutcome{}, &StreamError{Stream: streamStderr, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return RunOutcome{}, &SpawnError{Path: spec.Argv[0], Err: err}
	}
	logger.WithField("pid", cmd.Process.Pid).Debug("command started")

	lines := make(chan outputLine)
	done := collect(cmd, stdout, stderr, lines)

	log := &displayLog{}
	var res captureResult
	if spec.Plain {
		for line := range lines {
			log.append(line)
			fmt.Fprintln(spec.Out, line.text)
		}
		res = <-done
	} else {
		model := newRunModel(spec.Name, spec.TailLines, spec.Tick, log, lines, done)
		final, runErr := tea.NewProgram(model).Run()
		if runErr != nil {
			// The indicator failed; keep draining so the child and its
			// pipes are fully consumed before reporting.
			for range lines {
			}
			<-done
			return RunOutcome{}, fmt.Errorf("running live view: %w", runErr)
		}
		fm, ok := final.(runModel)
		if !ok || fm.result == nil {
			r := <-done
			fm.result = &r
		}
		res = *fm.result
	}
	logger.WithField("lines", log.len()).Debug("capture finished")

	if res.err != nil {
		return RunOutcome{}, res.err
	}

	path, err := dumpToTempFile(log)
	if err != nil {
		return RunOutcome{}, err
	}
	logger.WithField("path", path).Debug("output dumped")

	child := ChildResult{
		Code:      res.child.code,
		Coded:     res.child.coded,
		Succeeded: res.child.succeeded,
	}
	printSummary(spec.Out, child, path)

	return RunOutcome{Result: child, LogPath: path}, nil
}

func printSummary(w io.Writer, res ChildResult, path string) {
	switch {
	case res.Succeeded:
		fmt.Fprintln(w, successStyle.Render("Success!"))
	case res.Coded:
		fmt.Fprintln(w, failureStyle.Render(fmt.Sprintf("Error: exit status %d", res.Code)))
	default:
		fmt.Fprintln(w, failureStyle.Render("Error: terminated by signal"))
	}
	fmt.Fprintln(w, pathStyle.Render("Full output: "+path))
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
