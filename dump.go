package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// writeDump writes every captured line to w in arrival order, one line per
// entry, dropping the stream tag.
func writeDump(log *displayLog, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range log.lines {
		if _, err := bw.WriteString(line.text); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// dumpToTempFile persists the full log to a fresh temp file and leaves it
// on disk for inspection after the run.
func dumpToTempFile(log *displayLog) (string, error) {
	f, err := os.CreateTemp("", "runbox-*.log")
	if err != nil {
		return "", fmt.Errorf("creating dump file: %w", err)
	}
	if err := writeDump(log, f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing dump file %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing dump file %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}
