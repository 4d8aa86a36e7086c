package field

import (
	"time"

	"github.com/alexisbeaulieu97/floatfield/internal/anim"
)

// Label is a floating title or detail label owned by a field. Its
// visual state (opacity, offset, hidden flag) is driven by the field's
// lifecycle transitions; owners only supply text.
type Label struct {
	text    string
	color   string
	hidden  bool
	shown   bool
	opacity float64
	offset  float64
	height  int
}

// NewLabel creates a hidden label with the given text.
func NewLabel(text string) *Label {
	return &Label{text: text, hidden: true}
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.text = text }

// Color returns the label's current text color.
func (l *Label) Color() string { return l.color }

// Hidden reports whether the label is hidden.
func (l *Label) Hidden() bool { return l.hidden }

// Opacity returns the label's current opacity in [0, 1].
func (l *Label) Opacity() float64 { return l.opacity }

// Offset returns the label's current vertical offset.
func (l *Label) Offset() float64 { return l.offset }

// Height returns the label's row height.
func (l *Label) Height() int { return l.height }

// labelSlot routes label effects. A field always holds a slot for each
// label position; the no-op variant stands in while no label is
// attached, so label-bearing code never checks for presence.
type labelSlot interface {
	attached() bool
	label() *Label
	setText(text string)
	setColor(color string)
	color() string
	hidden() bool
	show(an *anim.Animator, target string, now time.Time, done func())
	hide(an *anim.Animator, target string, now time.Time, done func())
	step(now time.Time) bool
}

// noopSlot is the "no label attached" variant. Every effect is a no-op
// and the slot reports itself permanently hidden.
type noopSlot struct{}

func (noopSlot) attached() bool      { return false }
func (noopSlot) label() *Label       { return nil }
func (noopSlot) setText(string)      {}
func (noopSlot) setColor(string)     {}
func (noopSlot) color() string       { return "" }
func (noopSlot) hidden() bool        { return true }
func (noopSlot) step(time.Time) bool { return false }

func (noopSlot) show(*anim.Animator, string, time.Time, func()) {}
func (noopSlot) hide(*anim.Animator, string, time.Time, func()) {}

// attachedSlot wraps a real label plus its in-flight transition.
type attachedSlot struct {
	l  *Label
	tr *anim.Transition
}

func (s *attachedSlot) attached() bool      { return true }
func (s *attachedSlot) label() *Label       { return s.l }
func (s *attachedSlot) setText(text string) { s.l.text = text }
func (s *attachedSlot) setColor(c string)   { s.l.color = c }
func (s *attachedSlot) color() string       { return s.l.color }
func (s *attachedSlot) hidden() bool        { return s.l.hidden }

// show fades the label in: height snaps to one row, the hidden flag
// clears immediately, then opacity runs 0→1 while the label slides from
// offset 1 to its resting offset 0.
func (s *attachedSlot) show(an *anim.Animator, target string, now time.Time, done func()) {
	if s.l.shown && !s.l.hidden {
		return
	}

	s.l.shown = true
	s.l.height = 1
	s.l.hidden = false

	token := an.Next(target)
	s.tr = anim.NewTransition(token, now, 0, 1, 1, 0, func() {
		if done != nil {
			done()
		}
	})
	s.l.opacity = s.tr.Opacity()
	s.l.offset = s.tr.Offset()
}

// hide fades the label out: opacity runs 1→0 while the label slides
// slightly further away. The hidden flag flips only on completion, and
// only if no newer animation has been issued for this label since.
func (s *attachedSlot) hide(an *anim.Animator, target string, now time.Time, done func()) {
	if !s.l.shown && s.l.hidden {
		return
	}

	s.l.shown = false
	l := s.l
	token := an.Next(target)
	s.tr = anim.NewTransition(token, now, 1, 0, 0, 2, func() {
		if an.IsLatest(target, token) {
			l.hidden = true
		}
		if done != nil {
			done()
		}
	})
	s.l.opacity = s.tr.Opacity()
	s.l.offset = s.tr.Offset()
}

// step advances the in-flight transition, if any, and reports whether
// one is still running.
func (s *attachedSlot) step(now time.Time) bool {
	if s.tr == nil {
		return false
	}

	finished := s.tr.Step(now)
	s.l.opacity = s.tr.Opacity()
	s.l.offset = s.tr.Offset()
	if finished {
		s.tr = nil
		return false
	}
	return true
}
