package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// defaultTailLines is the height of the rolling tail window.
const defaultTailLines = 4

// displayLog is the authoritative, append-only record of every captured
// line. It is only ever mutated by the single consuming loop, so it needs
// no locking.
type displayLog struct {
	lines []outputLine
}

func (l *displayLog) append(line outputLine) {
	l.lines = append(l.lines, line)
}

func (l *displayLog) len() int {
	return len(l.lines)
}

// tail returns the last k lines, or fewer while the log is still short.
func (l *displayLog) tail(k int) []outputLine {
	if k <= 0 {
		return nil
	}
	start := len(l.lines) - k
	if start < 0 {
		start = 0
	}
	return l.lines[start:]
}

// fitLine truncates text to width terminal cells without splitting a code
// point, then pads it back out to exactly width cells.
func fitLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) > width {
		if width == 1 {
			text = runewidth.Truncate(text, 1, "")
		} else {
			text = runewidth.Truncate(text, width, "…")
		}
	}
	return runewidth.FillRight(text, width)
}

// renderTail renders the tail window as exactly k rows of constant width,
// padding with blank rows while the log holds fewer than k lines. Stdout
// and stderr rows get distinct visual treatments.
func renderTail(log *displayLog, k, width int) []string {
	rows := make([]string, 0, k)
	for _, line := range log.tail(k) {
		text := fitLine(line.text, width)
		switch line.src {
		case streamStderr:
			text = stderrLineStyle.Render(text)
		default:
			text = stdoutLineStyle.Render(text)
		}
		rows = append(rows, text)
	}
	for len(rows) < k {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return rows
}
