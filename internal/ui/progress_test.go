package ui

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Test helpers ---

// newTestProgram creates a tea.Program that needs no TTY.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestProgram starts a tea.Program in a goroutine and returns a done channel.
func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	// Allow the program goroutine to initialize before sending messages.
	time.Sleep(10 * time.Millisecond)
	return done
}

// waitForProgram waits for the program to exit, failing the test if it exceeds timeout.
func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

// --- progressModel ---

func TestProgressModel_IncrementClamps(t *testing.T) {
	m := newProgressModel("Scaffolding", 3)

	updated, _ := m.Update(progressIncrMsg(2))
	updated, _ = updated.Update(progressIncrMsg(5))
	got := updated.(progressModel)

	if got.current != 3 {
		t.Errorf("current = %d, want 3 (clamped to total)", got.current)
	}
}

func TestProgressModel_TitleAndView(t *testing.T) {
	m := newProgressModel("Scaffolding", 4)

	updated, _ := m.Update(progressTitleMsg("app/models"))
	updated, _ = updated.Update(progressIncrMsg(1))

	view := updated.View()
	if !strings.Contains(view, "[1/4] app/models") {
		t.Errorf("View() = %q, want step counter and title", view)
	}
}

func TestProgressModel_DoneQuits(t *testing.T) {
	m := newProgressModel("Scaffolding", 4)

	updated, cmd := m.Update(progressDoneMsg{})
	got := updated.(progressModel)

	if !got.done || got.current != 4 {
		t.Errorf("done = %v, current = %d; want true, 4", got.done, got.current)
	}
	if cmd == nil {
		t.Error("Done should return tea.Quit")
	}
	if got.View() != "" {
		t.Error("View() should be empty once done")
	}
}

func TestProgressModel_ZeroTotal(t *testing.T) {
	m := newProgressModel("Empty", 0)
	if !strings.Contains(m.View(), "[0/0]") {
		t.Errorf("View() = %q", m.View())
	}
}

// --- interactiveProgressBar ---

func TestInteractiveProgressBar_Steps(t *testing.T) {
	p := newTestProgram(newProgressModel("Scaffolding", 4))
	pb := &interactiveProgressBar{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	pb.SetTitle("app")
	pb.Increment(1)
	pb.SetTitle("app/templates")
	pb.Increment(1)
	pb.Done()

	waitForProgram(t, done)
}

func TestInteractiveProgressBar_DoneIdempotent(t *testing.T) {
	p := newTestProgram(newProgressModel("Scaffolding", 2))
	pb := &interactiveProgressBar{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	pb.Done()
	pb.Done()

	waitForProgram(t, done)
}

// --- headlessProgressBar ---

func TestHeadlessProgressBar_WritesLinePerStep(t *testing.T) {
	var buf bytes.Buffer
	pb := NewProgressBar(&buf, false, "Scaffolding", 2)

	pb.SetTitle("app")
	pb.Increment(1)
	pb.SetTitle("tests")
	pb.Increment(1)
	pb.Done()

	want := "[1/2] app\n[2/2] tests\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestHeadlessProgressBar_DoneCompletes(t *testing.T) {
	var buf bytes.Buffer
	pb := NewProgressBar(&buf, false, "Scaffolding", 5)

	pb.Increment(1)
	pb.Done()

	if !strings.HasSuffix(buf.String(), "[5/5] Scaffolding\n") {
		t.Errorf("output = %q, want final 5/5 line", buf.String())
	}
}
