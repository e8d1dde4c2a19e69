package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	notifications *widget.Check
	bell          *widget.Check
	size          *widget.Slider
	sizeLabel     *widget.Label
	logLevel      *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Fruitful Settings")

	notifications := widget.NewCheck("Notify when an interval ends", nil)
	bell := widget.NewCheck("Ring the terminal bell (terminal mode)", nil)

	sizeLabel := widget.NewLabel("")
	size := widget.NewSlider(MinWindowSize, MaxWindowSize)
	size.Step = 20
	size.OnChanged = func(value float64) {
		sizeLabel.SetText(fmt.Sprintf("%d px", int(value)))
	}

	logLevel := widget.NewSelect(LogLevels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		notifications,
		bell,
		container.NewHBox(widget.NewLabel("Window size"), sizeLabel),
		size,
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 300))

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		notifications: notifications,
		bell:          bell,
		size:          size,
		sizeLabel:     sizeLabel,
		logLevel:      logLevel,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.notifications.SetChecked(settings.Notifications)
	prefs.bell.SetChecked(settings.TerminalBell)
	prefs.size.SetValue(ClampWindowSize(settings.WindowSize))
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.Notifications = prefs.notifications.Checked
	settings.TerminalBell = prefs.bell.Checked
	settings.WindowSize = ClampWindowSize(prefs.size.Value)
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
