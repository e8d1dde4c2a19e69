// Package term renders the timer as a Bubble Tea terminal program.
package term

import (
	"fmt"
	"io"
	"strings"

	"fruitful/internal/core/model"
	"fruitful/internal/core/timekeeper"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minBarWidth     = 10
	maxBarWidth     = 60
	defaultBarWidth = 40
)

// Controls are the timer operations bound to keys.
type Controls interface {
	TogglePause()
	Skip()
	Reset()
}

type eventMsg timekeeper.Event

type eventsClosedMsg struct{}

// Model is the Bubble Tea model of the terminal face.
type Model struct {
	controls Controls
	events   <-chan timekeeper.Event
	styles   Styles
	bar      progress.Model

	phase    model.Phase
	cycle    string
	snapshot model.Snapshot
	ticked   bool
	paused   bool
	started  bool
}

// New creates a terminal face driven by events.
func New(controls Controls, events <-chan timekeeper.Event) Model {
	bar := progress.New(progress.WithSolidFill(focusRGB.hex()), progress.WithoutPercentage())
	bar.Width = defaultBarWidth

	return Model{
		controls: controls,
		events:   events,
		styles:   DefaultStyles(),
		bar:      bar,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.bar.Width = clampWidth(msg.Width - 4)
		return m, nil
	case eventMsg:
		timekeeper.Dispatch(timekeeper.Event(msg), &m)
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "p":
		m.controls.TogglePause()
	case "n", "l", "right":
		m.controls.Skip()
	case "r":
		m.controls.Reset()
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// OnPhaseChanged implements timekeeper.Sink.
func (m *Model) OnPhaseChanged(phase model.Phase, cycleIndex, totalCycles int) {
	m.started = true
	m.phase = phase
	m.cycle = fmt.Sprintf("%d/%d", cycleIndex, totalCycles)
	m.snapshot = model.Snapshot{FractionRemaining: 1, PulseOpacity: 1}
	m.ticked = false
	m.paused = false
	m.refreshBar()
}

// OnTick implements timekeeper.Sink.
func (m *Model) OnTick(snapshot model.Snapshot) {
	m.snapshot = snapshot
	m.ticked = true
	m.refreshBar()
}

// OnExpired implements timekeeper.Sink.
func (m *Model) OnExpired() {}

// OnPauseChanged implements timekeeper.Sink.
func (m *Model) OnPauseChanged(paused bool) {
	m.paused = paused
	m.refreshBar()
}

func (m *Model) refreshBar() {
	m.bar.FullColor = m.baseColor().dim(m.snapshot.PulseOpacity).hex()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.started {
		return m.styles.Frame.Render("Starting...")
	}

	base := m.baseColor()
	phase := m.styles.Phase.Foreground(lipgloss.Color(base.hex())).Render(m.phase.String())
	if m.paused {
		phase += m.styles.Cycle.Render("  paused")
	}

	clock := "--:--"
	clockStyle := m.styles.Clock
	if m.ticked {
		clock = m.snapshot.Clock()
		if m.snapshot.FlashOn {
			clockStyle = m.styles.Flash
		}
	}

	var b strings.Builder
	b.WriteString(phase + "\n\n")
	b.WriteString(clockStyle.Render(clock) + "  " + m.styles.Cycle.Render(m.cycle) + "\n\n")
	b.WriteString(m.bar.ViewAs(m.snapshot.FractionRemaining) + "\n\n")
	b.WriteString(m.styles.Help.Render("space pause · n skip · r reset cycle · q quit"))
	return m.styles.Frame.Render(b.String())
}

func (m Model) baseColor() rgb {
	if m.paused {
		return pausedRGB
	}
	if m.phase == model.PhaseBreak {
		return breakRGB
	}
	return focusRGB
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func clampWidth(width int) int {
	return max(minBarWidth, min(width, maxBarWidth))
}

// Bell rings the terminal bell as a notification.
type Bell struct {
	Out io.Writer
}

// Notify implements timekeeper.Notifier.
func (bell Bell) Notify() {
	_, _ = io.WriteString(bell.Out, "\a")
}
