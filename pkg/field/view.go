package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatfield/internal/anim"
)

// Init starts the cursor blink.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Focus gives the field keyboard focus and runs the focus-gained
// transition.
func (f *Field) Focus() tea.Cmd {
	cmd := f.input.Focus()
	f.FocusGained()
	return tea.Batch(cmd, anim.Frame())
}

// Blur removes keyboard focus and runs the focus-lost transition.
func (f *Field) Blur() {
	f.input.Blur()
	f.FocusLost()
}

// Focused reports whether the field has keyboard focus.
func (f *Field) Focused() bool { return f.input.Focused() }

// Update handles Bubble Tea messages: key events feed the host input
// and fire the text-changed signal when the text actually changed;
// animation frames advance in-flight label transitions.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		if f.advance(msg.Time) {
			return f, anim.Frame()
		}
		return f, nil

	case tea.KeyMsg:
		if !f.input.Focused() {
			return f, nil
		}
		before := f.input.Value()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		if f.input.Value() != before {
			f.TextChanged()
			return f, tea.Batch(cmd, anim.Frame())
		}
		return f, cmd
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the field: floating title row (when visible), the host
// input, the accent bar, and the detail row (when visible), all wrapped
// in the backing layer.
func (f *Field) View() string {
	rows := make([]string, 0, 4)

	if t := f.title.label(); t != nil && !t.Hidden() {
		rows = append(rows, f.renderLabel(t))
	}

	rows = append(rows, f.input.View())
	rows = append(rows, f.renderAccentBar())

	if d := f.detail.label(); d != nil && !d.Hidden() {
		rows = append(rows, f.renderLabel(d))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return f.layer.Render(content)
}

// renderLabel paints a label row, realizing fractional opacity as a
// blend from the surface color toward the label color.
func (f *Field) renderLabel(l *Label) string {
	color := l.Color()
	if l.Opacity() < 1 {
		color = anim.Blend(f.surfaceColor(), color, l.Opacity())
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(l.Text())
}

// renderAccentBar paints the thin rectangle under the input. It thickens
// while the field is being edited.
func (f *Field) renderAccentBar() string {
	glyph := "─"
	if f.editing {
		glyph = "━"
	}

	width := int(f.width)
	if width <= 0 {
		width = defaultWidth
	}

	bar := strings.Repeat(glyph, width)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(f.AccentColor())).Render(bar)
}

func (f *Field) surfaceColor() string {
	if f.background != "" {
		return f.background
	}
	return f.surface
}
