package term

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type rgb struct {
	r, g, b uint8
}

var (
	focusRGB  = rgb{220, 53, 69}
	breakRGB  = rgb{40, 167, 69}
	pausedRGB = rgb{0, 122, 255}
)

// Styles holds the lipgloss styles of the terminal face.
type Styles struct {
	Phase lipgloss.Style
	Clock lipgloss.Style
	Flash lipgloss.Style
	Cycle lipgloss.Style
	Help  lipgloss.Style
	Frame lipgloss.Style
}

// DefaultStyles returns the standard styles.
func DefaultStyles() Styles {
	return Styles{
		Phase: lipgloss.NewStyle().Bold(true),
		Clock: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Flash: lipgloss.NewStyle().Bold(true).Padding(0, 1).Reverse(true),
		Cycle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Frame: lipgloss.NewStyle().Padding(1, 2),
	}
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// dim scales the colour towards black by opacity, which stands in for
// alpha on a terminal.
func (c rgb) dim(opacity float64) rgb {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return rgb{
		r: uint8(float64(c.r) * opacity),
		g: uint8(float64(c.g) * opacity),
		b: uint8(float64(c.b) * opacity),
	}
}
