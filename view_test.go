package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func testModel(width int) runModel {
	log := logOf(
		"short line",
		"a much longer line that will certainly not fit in a narrow box at all",
		"日本語のテキストを含む長い行もここで安全に切り詰められる必要がある",
	)
	m := newRunModel("build", 4, 0, log, nil, nil)
	m.width = width
	return m
}

func TestBoxViewFitsTerminalWidth(t *testing.T) {
	sizes := []int{120, 80, 40, 16, 12, 5}

	for _, size := range sizes {
		m := testModel(size)
		view := m.View()
		lines := strings.Split(view, "\n")
		if len(lines) != m.tailLen+2 {
			t.Fatalf("width %d: expected %d view lines, got %d", size, m.tailLen+2, len(lines))
		}
		for i, line := range lines {
			if !utf8.ValidString(line) {
				t.Fatalf("width %d line %d: invalid UTF-8 in view", size, i)
			}
			if w := lipgloss.Width(line); w > size {
				t.Fatalf("width %d line %d: view width %d exceeds terminal", size, i, w)
			}
		}
		// With room for the minimum box the borders span the full width.
		if size >= minContentWidth+borderOverhead {
			if w := lipgloss.Width(lines[0]); w != size {
				t.Fatalf("width %d: top border spans %d cells", size, w)
			}
			if w := lipgloss.Width(lines[len(lines)-1]); w != size {
				t.Fatalf("width %d: bottom border spans %d cells", size, w)
			}
		}
	}
}

func TestBoxViewDropsLabelOnNarrowTerminal(t *testing.T) {
	m := testModel(12)
	m.name = "a very long command label"
	view := m.View()
	top := strings.Split(view, "\n")[0]
	if w := lipgloss.Width(top); w > 12 {
		t.Fatalf("narrow top border width %d exceeds terminal", w)
	}
}

func TestRunModelAppendsLinesAndRearms(t *testing.T) {
	m := testModel(80)
	before := m.log.len()

	model, cmd := m.Update(lineMsg(outputLine{text: "fresh", src: streamStderr}))
	updated := model.(runModel)
	if updated.log.len() != before+1 {
		t.Fatalf("expected line appended, log length %d", updated.log.len())
	}
	if cmd == nil {
		t.Fatalf("expected a re-armed line wait command")
	}
}

func TestRunModelQuitsOnResult(t *testing.T) {
	m := testModel(80)
	model, cmd := m.Update(resultMsg(captureResult{child: childResult{code: 0, coded: true, succeeded: true}}))
	updated := model.(runModel)
	if updated.result == nil {
		t.Fatalf("expected result to be recorded")
	}
	if cmd == nil {
		t.Fatalf("expected quit command after result")
	}
	if view := updated.View(); view != "" {
		t.Fatalf("expected empty view after result, got %q", view)
	}
}

func TestWindowSizeZeroGuardKeepsLastWidth(t *testing.T) {
	m := testModel(90)

	model, _ := m.Update(tea.WindowSizeMsg{Width: 0, Height: 0})
	if updated := model.(runModel); updated.width != 90 {
		t.Fatalf("expected zero-size resize to be ignored, width=%d", updated.width)
	}

	model, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	if updated := model.(runModel); updated.width != 50 {
		t.Fatalf("expected resize to apply, width=%d", updated.width)
	}
}

func TestClampViewWidthTruncatesSafely(t *testing.T) {
	wide := strings.Repeat("日", 20)
	clamped := clampViewWidth(wide, 10)
	if w := lipgloss.Width(clamped); w > 10 {
		t.Fatalf("clamped width %d exceeds 10", w)
	}
	if !utf8.ValidString(clamped) {
		t.Fatalf("clamp produced invalid UTF-8: %q", clamped)
	}
}
