package field

import "time"

// The three edit-lifecycle signals. Each transition mutates label state
// synchronously; fades and slides are picked up by subsequent animation
// frames.

// FocusGained handles the focus-gained signal. On an empty field the
// title takes over the placeholder text in the inactive color and the
// detail label is forced hidden; on a field with text the title lights
// up in the active color.
func (f *Field) FocusGained() {
	f.editing = true

	if f.HasText() {
		f.titleColor = f.titleActiveColor
		f.title.setColor(f.titleColor)
	} else {
		f.forceDetailHidden()
		f.title.setText(f.input.Placeholder)
		f.titleColor = f.titleInactiveColor
		f.title.setColor(f.titleColor)
	}

	f.log.Transition("focus_gained", f.HasText(), f.detailHidden)
}

// TextChanged handles the text-changed signal. The title floats in once
// text exists and fades back out when the field is emptied; emptying
// also forces the detail label hidden.
func (f *Field) TextChanged() {
	now := f.now()

	if f.HasText() {
		f.titleColor = f.titleActiveColor
		f.title.setColor(f.titleColor)
		f.title.show(f.anim, titleTarget, now, f.onShowComplete)
	} else {
		f.title.hide(f.anim, titleTarget, now, f.onHideComplete)
		f.forceDetailHidden()
	}

	f.log.Transition("text_changed", f.HasText(), f.detailHidden)
}

// FocusLost handles the focus-lost signal. The title settles into the
// inactive color, staying visible only while the field holds text.
func (f *Field) FocusLost() {
	f.editing = false
	now := f.now()

	f.titleColor = f.titleInactiveColor
	f.title.setColor(f.titleColor)
	if f.HasText() {
		f.title.show(f.anim, titleTarget, now, f.onShowComplete)
	} else {
		f.title.hide(f.anim, titleTarget, now, f.onHideComplete)
	}

	f.log.Transition("focus_lost", f.HasText(), f.detailHidden)
}

// DetailHidden reports the explicit detail-visibility flag.
func (f *Field) DetailHidden() bool { return f.detailHidden }

// SetDetailHidden shows or hides the detail label. Showing paints the
// detail label in its active color and routes the accent bar to it;
// hiding reverts the accent bar to the title's active or inactive color
// depending on the current focus state.
func (f *Field) SetDetailHidden(hidden bool) {
	now := f.now()

	if hidden {
		f.detailHidden = true
		if f.editing {
			f.titleColor = f.titleActiveColor
		} else {
			f.titleColor = f.titleInactiveColor
		}
		f.title.setColor(f.titleColor)
		f.detail.hide(f.anim, detailTarget, now, f.onHideComplete)
		return
	}

	f.detailHidden = false
	f.detail.setColor(f.detailActiveColor)
	f.detail.show(f.anim, detailTarget, now, f.onShowComplete)
}

// forceDetailHidden flips the flag and hides the detail label without
// touching the title color. Lifecycle transitions use it where the
// title color is set explicitly by the transition itself.
func (f *Field) forceDetailHidden() {
	f.detailHidden = true
	f.detail.hide(f.anim, detailTarget, f.now(), f.onHideComplete)
}

// AccentColor returns the accent bar's current color: the detail
// label's active color while the detail label is shown, otherwise the
// title's current color.
func (f *Field) AccentColor() string {
	if !f.detailHidden && f.detail.attached() {
		return f.detailActiveColor
	}
	return f.titleColor
}

// advance steps both labels' in-flight transitions to now and reports
// whether any are still running.
func (f *Field) advance(now time.Time) bool {
	titleRunning := f.title.step(now)
	detailRunning := f.detail.step(now)
	return titleRunning || detailRunning
}
