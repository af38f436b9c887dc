package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Progress bar gradient, matching the wizard accent colors.
const (
	progressFrom = "#3B82F6"
	progressTo   = "#8B5CF6"
	progressBarW = 40
)

// ProgressBar reports determinate progress over a fixed number of steps.
type ProgressBar interface {
	// Increment advances the progress by n.
	Increment(n int)
	// SetTitle replaces the label shown next to the bar.
	SetTitle(title string)
	// Done completes the bar at 100% and releases the terminal.
	Done()
}

// NewProgressBar returns an animated bar drawn on w when interactive is
// true. Otherwise it returns a bar that writes one plain line per step.
func NewProgressBar(w io.Writer, interactive bool, title string, total int) ProgressBar {
	if interactive {
		return newInteractiveProgressBar(w, title, total)
	}
	return newHeadlessProgressBar(w, title, total)
}

// --- interactiveProgressBar ---

type progressIncrMsg int

type progressTitleMsg string

type progressDoneMsg struct{}

// progressModel is the bubbletea Model for the progress bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(title string, total int) progressModel {
	bar := progress.New(
		progress.WithGradient(progressFrom, progressTo),
		progress.WithWidth(progressBarW),
	)
	return progressModel{bar: bar, title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + " " + fmt.Sprintf("[%d/%d] %s\n", m.current, m.total, m.title)
}

// interactiveProgressBar drives a progressModel running in its own
// tea.Program.
type interactiveProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveProgressBar(w io.Writer, title string, total int) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(title, total), tea.WithOutput(w))
	pb := &interactiveProgressBar{program: p}

	// Run returns once Done sends progressDoneMsg; Done waits for it.
	go func() {
		_, _ = p.Run()
	}()

	return pb
}

func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}

// --- headlessProgressBar ---

// headlessProgressBar writes "[n/total] title" lines.
type headlessProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func newHeadlessProgressBar(w io.Writer, title string, total int) *headlessProgressBar {
	return &headlessProgressBar{title: title, total: total, writer: w}
}

// Increment advances the progress by n and writes a line.
func (b *headlessProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

func (b *headlessProgressBar) SetTitle(title string) {
	b.title = title
}

// Done is a no-op unless steps were skipped, in which case it writes the
// final line.
func (b *headlessProgressBar) Done() {
	if b.current == b.total {
		return
	}
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}
