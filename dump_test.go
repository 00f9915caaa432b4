package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestWriteDumpDropsTagsAndTerminatesLines(t *testing.T) {
	log := &displayLog{}
	log.append(outputLine{text: "out line", src: streamStdout})
	log.append(outputLine{text: "err line", src: streamStderr})

	var buf bytes.Buffer
	if err := writeDump(log, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "out line\nerr line\n" {
		t.Fatalf("unexpected dump content: %q", got)
	}
}

func TestDumpRoundTripPreservesOrder(t *testing.T) {
	log := &displayLog{}
	want := []string{"first", "", "третья строка", "日本語", "last"}
	for i, text := range want {
		src := streamStdout
		if i%2 == 1 {
			src = streamStderr
		}
		log.append(outputLine{text: text, src: src})
	}

	path, err := dumpToTempFile(log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dump back: %v", err)
	}
	got := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
