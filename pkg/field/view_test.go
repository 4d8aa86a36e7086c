package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatfield/internal/anim"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewOmitsHiddenTitle(t *testing.T) {
	t.Parallel()

	f := New(
		WithPlaceholder("Email address"),
		WithTitleLabel(NewLabel("Floating title")),
	)
	fixedClock(f)

	require.NotContains(t, f.View(), "Floating title")
}

func TestViewShowsTitleOnceTextEntered(t *testing.T) {
	t.Parallel()

	f := New(
		WithPlaceholder("Email address"),
		WithTitleLabel(NewLabel("Floating title")),
	)
	start := fixedClock(f)

	f.SetValue("abc")
	f.advance(start.Add(anim.Duration))

	require.Contains(t, f.View(), "Floating title")
}

func TestViewAlwaysRendersAccentBar(t *testing.T) {
	t.Parallel()

	f := New()
	fixedClock(f)

	require.Contains(t, f.View(), "─")
}

func TestViewAccentBarThickensWhileEditing(t *testing.T) {
	t.Parallel()

	f := New()
	fixedClock(f)

	f.Focus()
	require.Contains(t, f.View(), "━")

	f.Blur()
	require.NotContains(t, f.View(), "━")
}

func TestViewShowsDetailWhenUnhidden(t *testing.T) {
	t.Parallel()

	f := New(WithDetailLabel(NewLabel("must not be empty")))
	fixedClock(f)

	require.NotContains(t, f.View(), "must not be empty")

	f.SetDetailHidden(false)
	require.Contains(t, f.View(), "must not be empty")
}

func TestUpdateKeyFiresTextChanged(t *testing.T) {
	t.Parallel()

	f := New(WithTitleLabel(NewLabel("Name")))
	fixedClock(f)

	f.Focus()
	f, cmd := f.Update(keyRunes("a"))

	require.NotNil(t, cmd)
	require.Equal(t, "a", f.Value())
	require.False(t, f.TitleLabel().Hidden())
}

func TestUpdateIgnoresKeysWhileBlurred(t *testing.T) {
	t.Parallel()

	f := New()
	fixedClock(f)

	f, _ = f.Update(keyRunes("a"))
	require.Equal(t, "", f.Value())
}

func TestUpdateFrameStopsWhenAnimationsSettle(t *testing.T) {
	t.Parallel()

	f := New(WithTitleLabel(NewLabel("Name")))
	start := fixedClock(f)

	f.SetValue("abc")

	f, cmd := f.Update(anim.FrameMsg{Time: start.Add(anim.Duration / 2)})
	require.NotNil(t, cmd)

	f, cmd = f.Update(anim.FrameMsg{Time: start.Add(anim.Duration)})
	require.Nil(t, cmd)
	require.Equal(t, 1.0, f.TitleLabel().Opacity())
}

func TestFocusAndBlurDriveLifecycle(t *testing.T) {
	t.Parallel()

	f := New(
		WithPlaceholder("Email"),
		WithTitleColors("#0000ff", "#888888"),
		WithTitleLabel(NewLabel("")),
	)
	fixedClock(f)

	cmd := f.Focus()
	require.NotNil(t, cmd)
	require.True(t, f.Focused())
	require.True(t, f.Editing())
	require.Equal(t, "Email", f.TitleLabel().Text())

	f.Blur()
	require.False(t, f.Focused())
	require.False(t, f.Editing())
	require.Equal(t, "#888888", f.TitleLabel().Color())
}
