package main

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/reflow/truncate"
)

const (
	// defaultTick is the redraw interval of the live indicator; redraw
	// cadence is driven by the spinner timer, not by line arrival.
	defaultTick = 200 * time.Millisecond
	// borderOverhead is the two vertical border cells flanking each row.
	borderOverhead  = 2
	minContentWidth = 10
)

var spinnerFrames = []string{"/", "|", "\\", "-", " "}

type lineMsg outputLine
type linesClosedMsg struct{}
type resultMsg captureResult

// runModel drives the live box while the merger is draining the child:
// lines arriving on the delivery channel update the tail window, the
// spinner tick redraws it, and the merger result quits the program.
type runModel struct {
	name    string
	spin    spinner.Model
	log     *displayLog
	lines   <-chan outputLine
	done    <-chan captureResult
	tailLen int
	width   int

	result *captureResult
}

func newRunModel(name string, tailLen int, tick time.Duration, log *displayLog, lines <-chan outputLine, done <-chan captureResult) runModel {
	if tailLen <= 0 {
		tailLen = defaultTailLines
	}
	if tick <= 0 {
		tick = defaultTick
	}
	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: spinnerFrames, FPS: tick}),
		spinner.WithStyle(spinnerStyle),
	)
	width, _ := detectTerminalSize()
	return runModel{
		name:    name,
		spin:    sp,
		log:     log,
		lines:   lines,
		done:    done,
		tailLen: tailLen,
		width:   width,
	}
}

func (m runModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForLine(m.lines))
}

func waitForLine(lines <-chan outputLine) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return linesClosedMsg{}
		}
		return lineMsg(line)
	}
}

func waitForResult(done <-chan captureResult) tea.Cmd {
	return func() tea.Msg {
		return resultMsg(<-done)
	}
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Guard against transient zero-size events by keeping the last
		// known width instead of collapsing the box.
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case lineMsg:
		m.log.append(outputLine(msg))
		return m, waitForLine(m.lines)

	case linesClosedMsg:
		// Both readers are done; the exit status is final once the merger
		// delivers it.
		return m, waitForResult(m.done)

	case resultMsg:
		res := captureResult(msg)
		m.result = &res
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m runModel) View() string {
	if m.result != nil {
		// Render nothing on the way out so the inline region is cleared.
		return ""
	}

	content := m.width - borderOverhead
	if content < minContentWidth {
		content = minContentWidth
	}

	label := " Running "
	if m.name != "" {
		label = " Running " + m.name + " "
	}
	spin := m.spin.View()
	used := lipgloss.Width(label) + lipgloss.Width(spin) + 1
	if used > content {
		// Narrow terminal: drop the label rather than overflow the border.
		label = ""
		used = lipgloss.Width(spin) + 1
	}
	dashes := content - used
	if dashes < 0 {
		dashes = 0
	}

	var b strings.Builder
	b.WriteString(borderStyle.Render("╭"))
	b.WriteString(titleStyle.Render(label))
	b.WriteString(spin)
	b.WriteString(borderStyle.Render(" " + strings.Repeat("─", dashes) + "╮"))
	b.WriteByte('\n')
	for _, row := range renderTail(m.log, m.tailLen, content) {
		b.WriteString(borderStyle.Render("│"))
		b.WriteString(row)
		b.WriteString(borderStyle.Render("│"))
		b.WriteByte('\n')
	}
	b.WriteString(borderStyle.Render("╰" + strings.Repeat("─", content) + "╯"))

	return clampViewWidth(b.String(), m.width)
}

// clampViewWidth hard-truncates every rendered line to the terminal width so
// a too-narrow window degrades instead of wrapping the box.
func clampViewWidth(view string, width int) string {
	if width <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.String(line, uint(width))
		}
	}
	return strings.Join(lines, "\n")
}

func detectTerminalSize() (int, int) {
	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}
