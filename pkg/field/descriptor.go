package field

import (
	"github.com/alexisbeaulieu97/floatfield/internal/descriptor"
	"github.com/alexisbeaulieu97/floatfield/internal/styles"
)

// FromDescriptor constructs a field from a persisted view-layout
// descriptor. The descriptor has already passed validation, so the
// preset spellings are guaranteed members of their closed sets; parse
// errors here would indicate a bug, not bad input, and are still
// surfaced rather than swallowed.
func FromDescriptor(d *descriptor.Field) (*Field, error) {
	f := New(WithPlaceholder(d.Placeholder))

	if d.Colors.TitleActive != "" || d.Colors.TitleInactive != "" {
		active := f.titleActiveColor
		inactive := f.titleInactiveColor
		if d.Colors.TitleActive != "" {
			active = d.Colors.TitleActive
		}
		if d.Colors.TitleInactive != "" {
			inactive = d.Colors.TitleInactive
		}
		WithTitleColors(active, inactive)(f)
	}
	if d.Colors.DetailActive != "" {
		f.detailActiveColor = d.Colors.DetailActive
	}
	if d.Colors.Background != "" {
		f.SetBackgroundColor(d.Colors.Background)
	}
	if d.Colors.Border != "" {
		f.layer.SetBorderColor(d.Colors.Border)
	}
	if d.Colors.Shadow != "" {
		f.layer.SetShadowColor(d.Colors.Shadow)
	}

	if d.Title != nil {
		f.SetTitleLabel(NewLabel(d.Title.Text))
	}
	if d.Detail != nil {
		f.SetDetailLabel(NewLabel(d.Detail.Text))
	}

	if d.Frame != nil {
		f.SetPosition(d.Frame.X, d.Frame.Y)
		f.SetWidth(d.Frame.Width)
		if d.Frame.Height > 0 {
			f.SetHeight(d.Frame.Height)
		}
		f.SetZPosition(d.Frame.Z)
	}

	shape, err := styles.ParseShape(d.Style.Shape)
	if err != nil {
		return nil, err
	}
	if shape != styles.ShapeNone {
		f.SetShape(shape)
	}

	depth, err := styles.ParseDepth(d.Style.Depth)
	if err != nil {
		return nil, err
	}
	if depth != styles.DepthNone {
		f.SetDepth(depth)
	}

	radius, err := styles.ParseCornerRadius(d.Style.CornerRadius)
	if err != nil {
		return nil, err
	}
	if radius != styles.RadiusNone {
		f.SetCornerRadius(radius)
	}

	border, err := styles.ParseBorderWidth(d.Style.BorderWidth)
	if err != nil {
		return nil, err
	}
	if border != styles.BorderNone {
		f.layer.SetBorderWidth(border.Value())
	}

	if d.Text != "" {
		f.SetValue(d.Text)
	}

	return f, nil
}
