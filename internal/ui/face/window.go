// Package face renders the timer in a Fyne window.
package face

import (
	"fmt"
	"image/color"

	"fruitful/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Controls are the timer operations the face triggers from user input.
type Controls interface {
	TogglePause()
	Skip()
	Reset()
}

// Window shows the phase, cycle, remaining time and progress ring.
type Window struct {
	window      fyne.Window
	ring        *Ring
	surface     *Surface
	phaseLabel  *canvas.Text
	cycleLabel  *canvas.Text
	minuteLabel *canvas.Text
	secondLabel *canvas.Text
	phase       model.Phase
	paused      bool
}

// New creates the timer window with a square content area of the given size.
func New(app fyne.App, size float32) *Window {
	window := app.NewWindow("Fruitful")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	textColor := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	phaseLabel := newLabel("", textColor, 22, true)
	cycleLabel := newLabel("", textColor, 16, false)
	minuteLabel := newLabel("--", textColor, 40, true)
	secondLabel := newLabel("--", textColor, 40, true)
	separator := newLabel(":", textColor, 40, true)

	ring := NewRing()
	surface := NewSurface()

	clock := container.NewHBox(minuteLabel, separator, secondLabel)
	labels := container.NewCenter(container.NewVBox(
		container.NewCenter(phaseLabel),
		container.NewCenter(clock),
		container.NewCenter(cycleLabel),
	))
	background := canvas.NewRectangle(color.NRGBA{R: 24, G: 24, B: 28, A: 255})

	window.SetContent(container.NewStack(background, ring.Object(), labels, surface))
	window.Resize(fyne.NewSize(size, size))

	return &Window{
		window:      window,
		ring:        ring,
		surface:     surface,
		phaseLabel:  phaseLabel,
		cycleLabel:  cycleLabel,
		minuteLabel: minuteLabel,
		secondLabel: secondLabel,
	}
}

// SetControls wires taps, swipes and long presses to the timer. Space, N or
// the right arrow, and R do the same from the keyboard.
func (face *Window) SetControls(controls Controls) {
	face.surface.OnTap = controls.TogglePause
	face.surface.OnSwipe = controls.Skip
	face.surface.OnLongPress = controls.Reset

	face.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeySpace:
			controls.TogglePause()
		case fyne.KeyN, fyne.KeyRight:
			controls.Skip()
		case fyne.KeyR:
			controls.Reset()
		}
	})
}

// Window returns the underlying Fyne window.
func (face *Window) Window() fyne.Window {
	return face.window
}

// Resize changes the window size.
func (face *Window) Resize(size float32) {
	face.window.Resize(fyne.NewSize(size, size))
}

// OnPhaseChanged resets the display for a new interval.
func (face *Window) OnPhaseChanged(phase model.Phase, cycleIndex, totalCycles int) {
	fyne.Do(func() {
		face.phase = phase
		face.paused = false
		setText(face.phaseLabel, phase.String())
		setText(face.cycleLabel, fmt.Sprintf("%d/%d", cycleIndex, totalCycles))
		setText(face.minuteLabel, "--")
		setText(face.secondLabel, "--")
		face.ring.Set(1, 1, face.strokeColor(), false)
	})
}

// OnTick shows a countdown snapshot.
func (face *Window) OnTick(snapshot model.Snapshot) {
	fyne.Do(func() {
		setText(face.minuteLabel, fmt.Sprintf("%02d", snapshot.MinutesLeft))
		setText(face.secondLabel, fmt.Sprintf("%02d", snapshot.SecondsLeft))
		face.ring.Set(snapshot.FractionRemaining, snapshot.PulseOpacity, face.strokeColor(), snapshot.FlashOn)
	})
}

// OnExpired implements timekeeper.Sink. The next phase change redraws.
func (face *Window) OnExpired() {}

// OnPauseChanged swaps the ring colour for the paused treatment.
func (face *Window) OnPauseChanged(paused bool) {
	fyne.Do(func() {
		face.paused = paused
		face.ring.SetStroke(face.strokeColor())
	})
}

func (face *Window) strokeColor() color.NRGBA {
	if face.paused {
		return PausedColor
	}
	if face.phase == model.PhaseBreak {
		return BreakColor
	}
	return FocusColor
}

func newLabel(text string, textColor color.Color, size float32, bold bool) *canvas.Text {
	label := canvas.NewText(text, textColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = size
	label.TextStyle = fyne.TextStyle{Bold: bold, Monospace: size >= 40}
	return label
}

func setText(label *canvas.Text, text string) {
	if label.Text == text {
		return
	}
	label.Text = text
	label.Refresh()
}
