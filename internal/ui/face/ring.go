package face

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	ringOuterFraction = 0.95
	ringWidthFraction = 0.18
)

var (
	FocusColor  = color.NRGBA{R: 220, G: 53, B: 69, A: 255}
	BreakColor  = color.NRGBA{R: 40, G: 167, B: 69, A: 255}
	PausedColor = color.NRGBA{R: 0, G: 122, B: 255, A: 255}
	trackColor  = color.NRGBA{R: 128, G: 128, B: 128, A: 40}
)

type ringState struct {
	fraction float64
	opacity  float64
	stroke   color.NRGBA
	flash    bool
}

// Ring is the circular progress indicator. The stroke runs clockwise from
// twelve o'clock and covers fraction of the circle.
type Ring struct {
	mu     sync.Mutex
	state  ringState
	raster *canvas.Raster
}

// NewRing creates a full ring in the focus colour.
func NewRing() *Ring {
	ring := &Ring{
		state: ringState{fraction: 1, opacity: 1, stroke: FocusColor},
	}
	ring.raster = canvas.NewRasterWithPixels(ring.pixel)
	return ring
}

// Object returns the canvas object to place in a layout.
func (ring *Ring) Object() fyne.CanvasObject {
	return ring.raster
}

// Set updates the ring and redraws it.
func (ring *Ring) Set(fraction, opacity float64, stroke color.NRGBA, flash bool) {
	ring.mu.Lock()
	ring.state = ringState{fraction: fraction, opacity: opacity, stroke: stroke, flash: flash}
	ring.mu.Unlock()
	ring.raster.Refresh()
}

// SetStroke changes only the stroke colour.
func (ring *Ring) SetStroke(stroke color.NRGBA) {
	ring.mu.Lock()
	ring.state.stroke = stroke
	ring.mu.Unlock()
	ring.raster.Refresh()
}

func (ring *Ring) pixel(x, y, width, height int) color.Color {
	ring.mu.Lock()
	state := ring.state
	ring.mu.Unlock()
	return ringPixel(x, y, width, height, state)
}

func ringPixel(x, y, width, height int, state ringState) color.Color {
	centerX := float64(width) / 2
	centerY := float64(height) / 2
	outer := math.Min(centerX, centerY) * ringOuterFraction
	inner := outer - outer*ringWidthFraction

	dx := float64(x) + 0.5 - centerX
	dy := float64(y) + 0.5 - centerY
	distance := math.Hypot(dx, dy)

	switch {
	case distance > outer:
		return color.Transparent
	case distance < inner:
		if state.flash {
			return withOpacity(state.stroke, state.opacity)
		}
		return color.Transparent
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle/(2*math.Pi) <= state.fraction {
		return withOpacity(state.stroke, state.opacity)
	}
	return trackColor
}

func withOpacity(base color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	base.A = uint8(float64(base.A) * opacity)
	return base
}
