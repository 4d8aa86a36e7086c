// Package styles defines the closed style-preset value sets used by the
// field component. Each preset maps deterministically to concrete numbers;
// the mappings are pure and carry no component state.
package styles

import (
	fielderrors "github.com/alexisbeaulieu97/floatfield/pkg/errors"
)

// Shape constrains the field's geometry.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCircle
	ShapeSquare
)

// Constrained reports whether the shape forces width == height.
func (s Shape) Constrained() bool {
	return s == ShapeCircle || s == ShapeSquare
}

// IsValid reports whether the value is a member of the closed set.
func (s Shape) IsValid() bool {
	return s >= ShapeNone && s <= ShapeSquare
}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	default:
		return "none"
	}
}

// ParseShape resolves the descriptor spelling of a shape preset.
func ParseShape(value string) (Shape, error) {
	switch value {
	case "", "none":
		return ShapeNone, nil
	case "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	default:
		return ShapeNone, fielderrors.NewPresetError("shape", value)
	}
}

// Depth is a named shadow configuration. Each level resolves to a fixed
// (offset, opacity, radius) triple.
type Depth int

const (
	DepthNone Depth = iota
	Depth1
	Depth2
	Depth3
	Depth4
	Depth5
)

type depthSpec struct {
	offsetX, offsetY float64
	opacity          float64
	radius           float64
}

var depthTable = [...]depthSpec{
	DepthNone: {},
	Depth1:    {offsetY: 1, opacity: 0.30, radius: 1.5},
	Depth2:    {offsetY: 2, opacity: 0.35, radius: 3},
	Depth3:    {offsetY: 4, opacity: 0.40, radius: 6},
	Depth4:    {offsetY: 6, opacity: 0.45, radius: 10},
	Depth5:    {offsetY: 10, opacity: 0.50, radius: 15},
}

func (d Depth) spec() depthSpec {
	if !d.IsValid() {
		return depthSpec{}
	}
	return depthTable[d]
}

// Offset returns the shadow offset for the depth level.
func (d Depth) Offset() (x, y float64) {
	s := d.spec()
	return s.offsetX, s.offsetY
}

// Opacity returns the shadow opacity for the depth level.
func (d Depth) Opacity() float64 { return d.spec().opacity }

// Radius returns the shadow blur radius for the depth level.
func (d Depth) Radius() float64 { return d.spec().radius }

// IsValid reports whether the value is a member of the closed set.
func (d Depth) IsValid() bool {
	return d >= DepthNone && d <= Depth5
}

func (d Depth) String() string {
	switch d {
	case Depth1:
		return "depth1"
	case Depth2:
		return "depth2"
	case Depth3:
		return "depth3"
	case Depth4:
		return "depth4"
	case Depth5:
		return "depth5"
	default:
		return "none"
	}
}

// ParseDepth resolves the descriptor spelling of a depth preset.
func ParseDepth(value string) (Depth, error) {
	switch value {
	case "", "none":
		return DepthNone, nil
	case "depth1":
		return Depth1, nil
	case "depth2":
		return Depth2, nil
	case "depth3":
		return Depth3, nil
	case "depth4":
		return Depth4, nil
	case "depth5":
		return Depth5, nil
	default:
		return DepthNone, fielderrors.NewPresetError("depth", value)
	}
}

// CornerRadius is a named corner rounding amount.
type CornerRadius int

const (
	RadiusNone CornerRadius = iota
	RadiusSmall
	RadiusMedium
	RadiusLarge
	RadiusFull
)

// Value resolves the preset to a concrete radius. RadiusFull depends on
// the side length it rounds, so callers pass the relevant dimension.
func (r CornerRadius) Value(side float64) float64 {
	switch r {
	case RadiusSmall:
		return 2
	case RadiusMedium:
		return 4
	case RadiusLarge:
		return 8
	case RadiusFull:
		return side / 2
	default:
		return 0
	}
}

// IsValid reports whether the value is a member of the closed set.
func (r CornerRadius) IsValid() bool {
	return r >= RadiusNone && r <= RadiusFull
}

func (r CornerRadius) String() string {
	switch r {
	case RadiusSmall:
		return "small"
	case RadiusMedium:
		return "medium"
	case RadiusLarge:
		return "large"
	case RadiusFull:
		return "full"
	default:
		return "none"
	}
}

// ParseCornerRadius resolves the descriptor spelling of a radius preset.
func ParseCornerRadius(value string) (CornerRadius, error) {
	switch value {
	case "", "none":
		return RadiusNone, nil
	case "small":
		return RadiusSmall, nil
	case "medium":
		return RadiusMedium, nil
	case "large":
		return RadiusLarge, nil
	case "full":
		return RadiusFull, nil
	default:
		return RadiusNone, fielderrors.NewPresetError("corner radius", value)
	}
}

// BorderWidth is a named border thickness.
type BorderWidth int

const (
	BorderNone BorderWidth = iota
	BorderThin
	BorderThick
)

// Value resolves the preset to a concrete width.
func (b BorderWidth) Value() float64 {
	switch b {
	case BorderThin:
		return 1
	case BorderThick:
		return 2
	default:
		return 0
	}
}

// IsValid reports whether the value is a member of the closed set.
func (b BorderWidth) IsValid() bool {
	return b >= BorderNone && b <= BorderThick
}

func (b BorderWidth) String() string {
	switch b {
	case BorderThin:
		return "thin"
	case BorderThick:
		return "thick"
	default:
		return "none"
	}
}

// ParseBorderWidth resolves the descriptor spelling of a border preset.
func ParseBorderWidth(value string) (BorderWidth, error) {
	switch value {
	case "", "none":
		return BorderNone, nil
	case "thin":
		return BorderThin, nil
	case "thick":
		return BorderThick, nil
	default:
		return BorderNone, fielderrors.NewPresetError("border width", value)
	}
}
