// Package theme supplies the default colors for field components. Every
// color here is only a default; field instances override them freely.
// Colors are hex strings so the animation layer can blend them.
package theme

// Palette groups the semantic color slots a field draws from.
type Palette struct {
	// TitleActive colors the floating title while the field is being edited.
	TitleActive string
	// TitleInactive colors the floating title while the field is at rest.
	TitleInactive string
	// DetailActive colors the detail label and accent bar while the
	// detail label is shown.
	DetailActive string
	// Surface is the field background; fades blend toward it.
	Surface string
	// Placeholder colors placeholder text in the host input.
	Placeholder string
	// Border is the default border color.
	Border string
}

// Default returns the stock palette.
func Default() Palette {
	return Palette{
		TitleActive:   "#60a5fa",
		TitleInactive: "#94a3b8",
		DetailActive:  "#f87171",
		Surface:       "#111827",
		Placeholder:   "#475569",
		Border:        "#334155",
	}
}
