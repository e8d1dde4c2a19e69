package main

import (
	"context"
	"log/slog"

	"fruitful/internal/core/timekeeper"
	"fruitful/internal/storage"
	"fruitful/internal/ui/face"
	"fruitful/internal/ui/preferences"
	"fruitful/internal/ui/tray"
	"fruitful/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const sinkBuffer = 16

func runDesktop(settings preferences.Settings, logger *slog.Logger) error {
	fyneApp := app.NewWithID("com.fruitful.timer")
	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))

	keeper := timekeeper.New(timekeeper.Config{Logger: logger})
	notifier := face.NewNotifier(fyneApp)
	applyNotifications := func(enabled bool) {
		if enabled {
			keeper.SetNotifier(notifier)
			return
		}
		keeper.SetNotifier(nil)
	}
	applyNotifications(settings.Notifications)

	timerFace := face.New(fyneApp, float32(settings.WindowSize))
	timerFace.SetControls(keeper)
	mainWindow := timerFace.Window()

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		applyNotifications(updated.Notifications)
		timerFace.Resize(float32(updated.WindowSize))
		if err := storage.SaveSettings(appName, updated); err != nil {
			logger.Error("save settings", "error", err)
		}
	})

	sinks := []timekeeper.Sink{timerFace}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Icons{
			Focus:  resources.MustIcon(resources.IconFocus),
			Break:  resources.MustIcon(resources.IconBreak),
			Paused: resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnShow: func() {
				mainWindow.Show()
				mainWindow.RequestFocus()
			},
			OnPreferences: prefsWindow.Show,
			OnTogglePause: keeper.TogglePause,
			OnSkip:        keeper.Skip,
			OnReset:       keeper.Reset,
			OnQuit:        fyneApp.Quit,
		})
		sinks = append(sinks, trayManager)
		mainWindow.SetCloseIntercept(func() {
			mainWindow.Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
		mainWindow.SetMaster()
	}

	mainWindow.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("Timer",
		fyne.NewMenuItem("Preferences", prefsWindow.Show),
	)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, sink := range sinks {
		go timekeeper.Forward(ctx, keeper.Subscribe(sinkBuffer), sink)
	}

	keeper.Start()
	defer keeper.Stop()

	mainWindow.ShowAndRun()
	return nil
}
