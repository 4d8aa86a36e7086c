// Package anim provides the timed show/hide transitions used by field
// labels. Every invocation carries a monotonic token; a completion only
// applies while its token is still the latest issued for that target,
// so a superseded animation can never flip state with stale values.
package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Duration is the fixed length of every show/hide transition.
const Duration = 150 * time.Millisecond

const fps = 60

// Token identifies one show/hide invocation for a target.
type Token uint64

// Animator issues monotonic tokens per named target.
type Animator struct {
	latest map[string]Token
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{latest: make(map[string]Token)}
}

// Next issues the next token for a target. Tokens strictly increase.
func (a *Animator) Next(target string) Token {
	tok := a.latest[target] + 1
	a.latest[target] = tok
	return tok
}

// Latest reports the newest token issued for a target.
func (a *Animator) Latest(target string) Token {
	return a.latest[target]
}

// IsLatest reports whether tok is still the newest token for target.
func (a *Animator) IsLatest(target string, tok Token) bool {
	return a.latest[target] == tok
}

// Transition is one in-flight fade/slide for a label.
type Transition struct {
	token    Token
	start    time.Time
	duration time.Duration

	opacityFrom, opacityTo float64
	offsetFrom, offsetTo   float64

	spring harmonica.Spring
	pos    float64
	vel    float64

	opacity  float64
	done     bool
	fired    bool
	complete func()
}

// NewTransition builds a transition starting at now. onComplete may be nil.
func NewTransition(token Token, now time.Time, opacityFrom, opacityTo, offsetFrom, offsetTo float64, onComplete func()) *Transition {
	return &Transition{
		token:       token,
		start:       now,
		duration:    Duration,
		opacityFrom: opacityFrom,
		opacityTo:   opacityTo,
		offsetFrom:  offsetFrom,
		offsetTo:    offsetTo,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), 12.0, 0.9),
		pos:         offsetFrom,
		opacity:     opacityFrom,
		complete:    onComplete,
	}
}

// Token returns the token issued for this transition.
func (tr *Transition) Token() Token {
	return tr.token
}

// Step advances the transition to now and reports whether it finished.
// The completion callback fires exactly once, on the step that crosses
// the duration boundary. Steps after completion are no-ops.
func (tr *Transition) Step(now time.Time) bool {
	if tr.done {
		return true
	}

	elapsed := now.Sub(tr.start)
	if elapsed >= tr.duration {
		tr.opacity = tr.opacityTo
		tr.pos = tr.offsetTo
		tr.done = true
		if tr.complete != nil && !tr.fired {
			tr.fired = true
			tr.complete()
		}
		return true
	}

	t := float64(elapsed) / float64(tr.duration)
	tr.opacity = tr.opacityFrom + (tr.opacityTo-tr.opacityFrom)*t
	tr.pos, tr.vel = tr.spring.Update(tr.pos, tr.vel, tr.offsetTo)
	return false
}

// Done reports whether the transition has completed.
func (tr *Transition) Done() bool {
	return tr.done
}

// Opacity returns the current interpolated opacity in [0, 1].
func (tr *Transition) Opacity() float64 {
	return tr.opacity
}

// Offset returns the current spring-projected vertical offset.
func (tr *Transition) Offset() float64 {
	return tr.pos
}

// FrameMsg is the per-frame tick that drives in-flight transitions.
type FrameMsg struct {
	Time time.Time
}

// Frame schedules the next animation frame.
func Frame() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// Blend mixes two hex colors in RGB space. t == 0 yields from, t == 1
// yields to. Unparseable colors fall back to whichever endpoint t is
// nearer to, keeping the function total.
func Blend(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}

	f, errFrom := colorful.Hex(from)
	g, errTo := colorful.Hex(to)
	if errFrom != nil || errTo != nil {
		if t < 0.5 {
			return from
		}
		return to
	}

	return f.BlendRgb(g, t).Hex()
}
