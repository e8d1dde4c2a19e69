package face

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	LongPressAfter = 600 * time.Millisecond
	SwipeDistance  = float32(60)
)

// Surface is an invisible widget that turns pointer input into tap, swipe and
// long-press callbacks. On mobile a long press arrives as a secondary tap.
type Surface struct {
	widget.BaseWidget

	OnTap       func()
	OnSwipe     func()
	OnLongPress func()

	now       func() time.Time
	pressedAt time.Time
	dragX     float32
}

var (
	_ fyne.Tappable          = (*Surface)(nil)
	_ fyne.SecondaryTappable = (*Surface)(nil)
	_ fyne.Draggable         = (*Surface)(nil)
	_ desktop.Mouseable      = (*Surface)(nil)
)

// NewSurface creates an input surface.
func NewSurface() *Surface {
	surface := &Surface{now: time.Now}
	surface.ExtendBaseWidget(surface)
	return surface
}

// CreateRenderer implements fyne.Widget.
func (surface *Surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// MouseDown records when the press started.
func (surface *Surface) MouseDown(*desktop.MouseEvent) {
	surface.pressedAt = surface.now()
}

// MouseUp implements desktop.Mouseable.
func (surface *Surface) MouseUp(*desktop.MouseEvent) {}

// Tapped fires OnLongPress for a held press and OnTap otherwise.
func (surface *Surface) Tapped(*fyne.PointEvent) {
	held := time.Duration(0)
	if !surface.pressedAt.IsZero() {
		held = surface.now().Sub(surface.pressedAt)
	}
	surface.pressedAt = time.Time{}

	if isLongPress(held) {
		fire(surface.OnLongPress)
		return
	}
	fire(surface.OnTap)
}

// TappedSecondary fires OnLongPress.
func (surface *Surface) TappedSecondary(*fyne.PointEvent) {
	surface.pressedAt = time.Time{}
	fire(surface.OnLongPress)
}

// Dragged accumulates horizontal movement.
func (surface *Surface) Dragged(event *fyne.DragEvent) {
	surface.dragX += event.Dragged.DX
}

// DragEnd fires OnSwipe when the drag covered enough distance.
func (surface *Surface) DragEnd() {
	distance := surface.dragX
	surface.dragX = 0
	surface.pressedAt = time.Time{}
	if isSwipe(distance) {
		fire(surface.OnSwipe)
	}
}

func isLongPress(held time.Duration) bool {
	return held >= LongPressAfter
}

func isSwipe(distance float32) bool {
	if distance < 0 {
		distance = -distance
	}
	return distance >= SwipeDistance
}

func fire(callback func()) {
	if callback != nil {
		callback()
	}
}
