// Package layer models the render layer a field forwards its style
// properties onto: background, corner radius, border, shadow, and frame
// geometry. Setters are plain write-throughs with no failure modes;
// Render realizes the accumulated state with lipgloss.
package layer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layer is the backing render surface for a field.
type Layer struct {
	background  string
	borderColor string
	borderWidth float64

	cornerRadius float64

	shadowColor   string
	shadowOffsetX float64
	shadowOffsetY float64
	shadowOpacity float64
	shadowRadius  float64

	x, y          float64
	width, height float64
	z             int
}

// New creates an empty layer.
func New() *Layer {
	return &Layer{}
}

// SetBackground sets the layer background color (hex).
func (l *Layer) SetBackground(color string) { l.background = color }

// Background returns the layer background color.
func (l *Layer) Background() string { return l.background }

// SetCornerRadius sets the corner rounding.
func (l *Layer) SetCornerRadius(radius float64) { l.cornerRadius = radius }

// CornerRadius returns the current corner rounding.
func (l *Layer) CornerRadius() float64 { return l.cornerRadius }

// SetBorderWidth sets the border thickness.
func (l *Layer) SetBorderWidth(width float64) { l.borderWidth = width }

// BorderWidth returns the border thickness.
func (l *Layer) BorderWidth() float64 { return l.borderWidth }

// SetBorderColor sets the border color (hex).
func (l *Layer) SetBorderColor(color string) { l.borderColor = color }

// BorderColor returns the border color.
func (l *Layer) BorderColor() string { return l.borderColor }

// SetShadowColor sets the shadow color (hex).
func (l *Layer) SetShadowColor(color string) { l.shadowColor = color }

// ShadowColor returns the shadow color.
func (l *Layer) ShadowColor() string { return l.shadowColor }

// SetShadowOffset sets the shadow offset.
func (l *Layer) SetShadowOffset(x, y float64) {
	l.shadowOffsetX = x
	l.shadowOffsetY = y
}

// ShadowOffset returns the shadow offset.
func (l *Layer) ShadowOffset() (x, y float64) { return l.shadowOffsetX, l.shadowOffsetY }

// SetShadowOpacity sets the shadow opacity in [0, 1].
func (l *Layer) SetShadowOpacity(opacity float64) { l.shadowOpacity = opacity }

// ShadowOpacity returns the shadow opacity.
func (l *Layer) ShadowOpacity() float64 { return l.shadowOpacity }

// SetShadowRadius sets the shadow blur radius.
func (l *Layer) SetShadowRadius(radius float64) { l.shadowRadius = radius }

// ShadowRadius returns the shadow blur radius.
func (l *Layer) ShadowRadius() float64 { return l.shadowRadius }

// SetFrame sets the layer's position and size.
func (l *Layer) SetFrame(x, y, width, height float64) {
	l.x = x
	l.y = y
	l.width = width
	l.height = height
}

// Frame returns the layer's position and size.
func (l *Layer) Frame() (x, y, width, height float64) {
	return l.x, l.y, l.width, l.height
}

// SetZPosition sets the stacking order.
func (l *Layer) SetZPosition(z int) { l.z = z }

// ZPosition returns the stacking order.
func (l *Layer) ZPosition() int { return l.z }

// borderStyle picks the terminal border for the current radius/width.
// Rounded corners map to the rounded border set; a thick border wins
// over rounding because the terminal has no thick rounded set.
func (l *Layer) borderStyle() lipgloss.Border {
	if l.borderWidth >= 2 {
		return lipgloss.ThickBorder()
	}
	if l.cornerRadius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// Render realizes the layer around content.
func (l *Layer) Render(content string) string {
	style := lipgloss.NewStyle()

	if l.background != "" {
		style = style.Background(lipgloss.Color(l.background))
	}
	if l.width > 0 {
		style = style.Width(int(l.width))
	}
	if l.borderWidth > 0 {
		style = style.BorderStyle(l.borderStyle())
		if l.borderColor != "" {
			style = style.BorderForeground(lipgloss.Color(l.borderColor))
		}
	}

	box := style.Render(content)

	if shadow := l.renderShadow(lipgloss.Width(box)); shadow != "" {
		box = lipgloss.JoinVertical(lipgloss.Left, box, shadow)
	}
	return box
}

// renderShadow approximates the layer shadow as a dimmed under-row. A
// larger blur radius softens the glyph; opacity below half renders faint.
func (l *Layer) renderShadow(width int) string {
	if l.shadowOpacity <= 0 || l.shadowColor == "" || width <= 0 {
		return ""
	}

	glyph := "▀"
	if l.shadowRadius >= 6 {
		glyph = "░"
	} else if l.shadowRadius >= 3 {
		glyph = "▒"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(l.shadowColor))
	if l.shadowOpacity < 0.5 {
		style = style.Faint(true)
	}

	pad := strings.Repeat(" ", int(max(l.shadowOffsetX, 0)))
	return pad + style.Render(strings.Repeat(glyph, width))
}
