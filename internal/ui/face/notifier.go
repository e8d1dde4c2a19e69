package face

import "fyne.io/fyne/v2"

// Notifier posts a system notification through Fyne.
type Notifier struct {
	app     fyne.App
	title   string
	content string
}

// NewNotifier creates a notifier for app.
func NewNotifier(app fyne.App) *Notifier {
	return &Notifier{
		app:     app,
		title:   "Fruitful",
		content: "Time for the next interval",
	}
}

// Notify implements timekeeper.Notifier.
func (notifier *Notifier) Notify() {
	fyne.Do(func() {
		notifier.app.SendNotification(fyne.NewNotification(notifier.title, notifier.content))
	})
}
