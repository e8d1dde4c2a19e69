package tray

import (
	"fmt"

	"fruitful/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnTogglePause func()
	OnSkip        func()
	OnReset       func()
	OnQuit        func()
}

// Icons are the tray icons for each visual state.
type Icons struct {
	Focus  fyne.Resource
	Break  fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state. It also serves as a timekeeper.Sink.
type Manager struct {
	app        desktop.App
	icons      Icons
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	callbacks  Callbacks
	phase      model.Phase
	cycle      string
	clock      string
	paused     bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
		clock:     "--:--",
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		call(manager.callbacks.OnTogglePause)
	})

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// OnPhaseChanged implements timekeeper.Sink.
func (manager *Manager) OnPhaseChanged(phase model.Phase, cycleIndex, totalCycles int) {
	fyne.Do(func() {
		manager.phase = phase
		manager.cycle = fmt.Sprintf("%d/%d", cycleIndex, totalCycles)
		manager.clock = "--:--"
		manager.paused = false
		manager.pauseItem.Label = "Pause"
		manager.refreshStatus()
		manager.refreshIcon()
	})
}

// OnTick implements timekeeper.Sink. The menu is rebuilt only when the
// displayed time changes.
func (manager *Manager) OnTick(snapshot model.Snapshot) {
	clock := snapshot.Clock()
	fyne.Do(func() {
		if clock == manager.clock {
			return
		}
		manager.clock = clock
		manager.refreshStatus()
	})
}

// OnExpired implements timekeeper.Sink.
func (manager *Manager) OnExpired() {}

// OnPauseChanged implements timekeeper.Sink.
func (manager *Manager) OnPauseChanged(paused bool) {
	fyne.Do(func() {
		manager.paused = paused
		if paused {
			manager.pauseItem.Label = "Resume"
		} else {
			manager.pauseItem.Label = "Pause"
		}
		manager.refreshStatus()
		manager.refreshIcon()
	})
}

// Status returns the status line shown at the top of the menu.
func (manager *Manager) Status() string {
	status := fmt.Sprintf("%s %s · %s", manager.phase, manager.cycle, manager.clock)
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.Status())
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Focus
	switch {
	case manager.paused:
		icon = manager.icons.Paused
	case manager.phase == model.PhaseBreak:
		icon = manager.icons.Break
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Fruitful",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			call(manager.callbacks.OnShow)
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Skip", func() {
			call(manager.callbacks.OnSkip)
		}),
		fyne.NewMenuItem("Reset cycle", func() {
			call(manager.callbacks.OnReset)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			call(manager.callbacks.OnPreferences)
		}),
		fyne.NewMenuItem("Quit", func() {
			call(manager.callbacks.OnQuit)
		}),
	))
}

func call(callback func()) {
	if callback != nil {
		callback()
	}
}
