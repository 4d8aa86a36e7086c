// Package field implements a floating-label text input component for
// Bubble Tea programs. A field wraps the bubbles text input as its host
// text primitive and layers a floating title label, an optional detail
// label, an animated accent bar, and declarative shape/depth/shadow/
// border styling forwarded onto a backing render layer.
package field

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatfield/internal/anim"
	"github.com/alexisbeaulieu97/floatfield/internal/layer"
	"github.com/alexisbeaulieu97/floatfield/internal/logger"
	"github.com/alexisbeaulieu97/floatfield/internal/styles"
	"github.com/alexisbeaulieu97/floatfield/internal/theme"
)

const (
	titleTarget  = "title"
	detailTarget = "detail"

	defaultWidth = 40
)

// Field is a styled text input with a floating title label, an optional
// detail label, and an accent bar. All state transitions happen
// synchronously in response to the three edit-lifecycle signals; only
// the visual completion of show/hide effects is deferred to animation
// frames.
type Field struct {
	input textinput.Model
	layer *layer.Layer
	anim  *anim.Animator
	log   *logger.Logger
	now   func() time.Time

	title  labelSlot
	detail labelSlot

	titleActiveColor   string
	titleInactiveColor string
	detailActiveColor  string
	background         string
	surface            string

	titleColor   string
	detailHidden bool
	editing      bool

	shape         styles.Shape
	x, y          float64
	width, height float64

	onShowComplete func()
	onHideComplete func()
}

// Option configures a field at construction time.
type Option func(*Field)

// WithPlaceholder sets the host input's placeholder text.
func WithPlaceholder(placeholder string) Option {
	return func(f *Field) { f.input.Placeholder = placeholder }
}

// WithValue sets the initial text.
func WithValue(value string) Option {
	return func(f *Field) { f.input.SetValue(value) }
}

// WithTitleLabel attaches the floating title label.
func WithTitleLabel(l *Label) Option {
	return func(f *Field) { f.SetTitleLabel(l) }
}

// WithDetailLabel attaches the detail label.
func WithDetailLabel(l *Label) Option {
	return func(f *Field) { f.SetDetailLabel(l) }
}

// WithTitleColors sets the title's active and inactive colors.
func WithTitleColors(active, inactive string) Option {
	return func(f *Field) {
		f.titleActiveColor = active
		f.titleInactiveColor = inactive
		f.titleColor = inactive
	}
}

// WithDetailColor sets the detail label's active color.
func WithDetailColor(active string) Option {
	return func(f *Field) { f.detailActiveColor = active }
}

// WithLogger attaches a logger for lifecycle tracing.
func WithLogger(log *logger.Logger) Option {
	return func(f *Field) { f.log = log.WithComponent("field") }
}

// WithWidth sets the field width.
func WithWidth(width float64) Option {
	return func(f *Field) { f.SetWidth(width) }
}

// OnShowComplete registers a callback fired when a label finishes
// fading in.
func OnShowComplete(fn func()) Option {
	return func(f *Field) { f.onShowComplete = fn }
}

// OnHideComplete registers a callback fired when a label finishes
// fading out.
func OnHideComplete(fn func()) Option {
	return func(f *Field) { f.onHideComplete = fn }
}

// New constructs a field. With no options it is a bare input with no
// labels attached; label-related effects no-op until labels are set.
func New(opts ...Option) *Field {
	palette := theme.Default()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = defaultWidth
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Placeholder))

	f := &Field{
		input:              ti,
		layer:              layer.New(),
		anim:               anim.NewAnimator(),
		log:                logger.Nop(),
		now:                time.Now,
		title:              noopSlot{},
		detail:             noopSlot{},
		titleActiveColor:   palette.TitleActive,
		titleInactiveColor: palette.TitleInactive,
		detailActiveColor:  palette.DetailActive,
		surface:            palette.Surface,
		titleColor:         palette.TitleInactive,
		detailHidden:       true,
		width:              defaultWidth,
		height:             1,
	}
	f.layer.SetFrame(0, 0, f.width, f.height)
	f.layer.SetBorderColor(palette.Border)

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetTitleLabel attaches (or replaces) the floating title label.
func (f *Field) SetTitleLabel(l *Label) {
	if l == nil {
		f.title = noopSlot{}
		return
	}
	l.color = f.titleColor
	f.title = &attachedSlot{l: l}
}

// TitleLabel returns the attached title label, or nil.
func (f *Field) TitleLabel() *Label { return f.title.label() }

// SetDetailLabel attaches (or replaces) the detail label.
func (f *Field) SetDetailLabel(l *Label) {
	if l == nil {
		f.detail = noopSlot{}
		return
	}
	f.detail = &attachedSlot{l: l}
}

// DetailLabel returns the attached detail label, or nil.
func (f *Field) DetailLabel() *Label { return f.detail.label() }

// Value returns the current text.
func (f *Field) Value() string { return f.input.Value() }

// SetValue replaces the current text and runs the text-changed
// transition so derived state stays consistent.
func (f *Field) SetValue(value string) {
	f.input.SetValue(value)
	f.TextChanged()
}

// Placeholder returns the host input's placeholder text.
func (f *Field) Placeholder() string { return f.input.Placeholder }

// HasText reports whether the field currently holds any text.
func (f *Field) HasText() bool { return len(f.input.Value()) > 0 }

// Editing reports whether the field currently has focus.
func (f *Field) Editing() bool { return f.editing }

// Layer exposes the backing render layer.
func (f *Field) Layer() *layer.Layer { return f.layer }

// AnimateLayer runs an arbitrary mutation against the backing layer.
func (f *Field) AnimateLayer(fn func(*layer.Layer)) {
	if fn != nil {
		fn(f.layer)
	}
}

// Style forwarding. Each setter writes through atomically and enforces
// its derived invariant; none of them can fail.

// SetBackgroundColor sets the field background and the layer background.
func (f *Field) SetBackgroundColor(color string) {
	f.background = color
	f.layer.SetBackground(color)
}

// BackgroundColor returns the field background color.
func (f *Field) BackgroundColor() string { return f.background }

// SetShadowColor writes through to the layer shadow color.
func (f *Field) SetShadowColor(color string) { f.layer.SetShadowColor(color) }

// SetShadowOffset writes through to the layer shadow offset.
func (f *Field) SetShadowOffset(x, y float64) { f.layer.SetShadowOffset(x, y) }

// SetShadowOpacity writes through to the layer shadow opacity.
func (f *Field) SetShadowOpacity(opacity float64) { f.layer.SetShadowOpacity(opacity) }

// SetShadowRadius writes through to the layer shadow radius.
func (f *Field) SetShadowRadius(radius float64) { f.layer.SetShadowRadius(radius) }

// SetDepth resolves the depth preset to its fixed (offset, opacity,
// radius) triple and writes all three shadow properties.
func (f *Field) SetDepth(depth styles.Depth) {
	x, y := depth.Offset()
	f.layer.SetShadowOffset(x, y)
	f.layer.SetShadowOpacity(depth.Opacity())
	f.layer.SetShadowRadius(depth.Radius())
}

// SetCornerRadius resolves the radius preset and applies it to the
// layer. An explicit non-none radius is incompatible with a perfect
// circle, so it clears ShapeCircle back to ShapeNone.
func (f *Field) SetCornerRadius(radius styles.CornerRadius) {
	f.layer.SetCornerRadius(radius.Value(f.width))
	if radius != styles.RadiusNone && f.shape == styles.ShapeCircle {
		f.shape = styles.ShapeNone
	}
}

// Shape returns the current shape preset.
func (f *Field) Shape() styles.Shape { return f.shape }

// SetShape applies a shape preset. A constrained shape immediately
// equalizes width and height by growing the smaller dimension; it never
// shrinks the larger one.
func (f *Field) SetShape(shape styles.Shape) {
	f.shape = shape
	if shape.Constrained() {
		side := max(f.width, f.height)
		f.width = side
		f.height = side
		f.syncFrame()
	}
	f.Layout()
}

// SetWidth sets the field width. While a constrained shape is active
// the height follows.
func (f *Field) SetWidth(width float64) {
	f.width = width
	if f.shape.Constrained() {
		f.height = width
	}
	f.syncFrame()
	f.Layout()
}

// SetHeight sets the field height. While a constrained shape is active
// the width follows.
func (f *Field) SetHeight(height float64) {
	f.height = height
	if f.shape.Constrained() {
		f.width = height
	}
	f.syncFrame()
	f.Layout()
}

// Width returns the field width.
func (f *Field) Width() float64 { return f.width }

// Height returns the field height.
func (f *Field) Height() float64 { return f.height }

// SetPosition moves the field's frame origin.
func (f *Field) SetPosition(x, y float64) {
	f.x = x
	f.y = y
	f.syncFrame()
}

// SetZPosition sets the stacking order on the layer.
func (f *Field) SetZPosition(z int) { f.layer.SetZPosition(z) }

// Layout is the layout pass: while the shape is a circle the corner
// radius tracks width/2 so the circle stays valid after any resize.
func (f *Field) Layout() {
	if f.shape == styles.ShapeCircle {
		f.layer.SetCornerRadius(f.width / 2)
	}
}

func (f *Field) syncFrame() {
	f.layer.SetFrame(f.x, f.y, f.width, f.height)
	f.input.Width = int(f.width)
}
