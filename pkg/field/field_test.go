package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatfield/internal/descriptor"
	"github.com/alexisbeaulieu97/floatfield/internal/layer"
	"github.com/alexisbeaulieu97/floatfield/internal/styles"
)

func TestCircleShapeCouplesDimensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		width, height float64
	}{
		{"wide", 80, 3},
		{"tall", 10, 50},
		{"square", 30, 30},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := New()
			f.SetWidth(tc.width)
			f.SetHeight(tc.height)

			f.SetShape(styles.ShapeCircle)

			side := max(tc.width, tc.height)
			require.Equal(t, side, f.Width())
			require.Equal(t, side, f.Height())

			f.SetWidth(50)
			require.Equal(t, 50.0, f.Height())

			f.SetHeight(20)
			require.Equal(t, 20.0, f.Width())
		})
	}
}

func TestShapeNoneLeavesDimensionsIndependent(t *testing.T) {
	t.Parallel()

	f := New()
	f.SetWidth(80)
	f.SetHeight(3)

	require.Equal(t, 80.0, f.Width())
	require.Equal(t, 3.0, f.Height())
}

func TestCornerRadiusClearsCircle(t *testing.T) {
	t.Parallel()

	for _, radius := range []styles.CornerRadius{styles.RadiusSmall, styles.RadiusMedium, styles.RadiusLarge, styles.RadiusFull} {
		f := New()
		f.SetShape(styles.ShapeCircle)

		f.SetCornerRadius(radius)
		require.Equal(t, styles.ShapeNone, f.Shape(), radius.String())
	}
}

func TestCornerRadiusNonePreservesCircle(t *testing.T) {
	t.Parallel()

	f := New()
	f.SetShape(styles.ShapeCircle)

	f.SetCornerRadius(styles.RadiusNone)
	require.Equal(t, styles.ShapeCircle, f.Shape())
}

func TestLayoutKeepsCircleRadiusAtHalfWidth(t *testing.T) {
	t.Parallel()

	f := New()
	f.SetShape(styles.ShapeCircle)
	f.SetWidth(50)

	require.Equal(t, 25.0, f.Layer().CornerRadius())

	f.SetWidth(80)
	require.Equal(t, 40.0, f.Layer().CornerRadius())
}

func TestSetDepthWritesShadowTriple(t *testing.T) {
	t.Parallel()

	f := New()
	f.SetDepth(styles.Depth3)

	x, y := f.Layer().ShadowOffset()
	require.Equal(t, 0.0, x)
	require.Equal(t, 4.0, y)
	require.Equal(t, 0.40, f.Layer().ShadowOpacity())
	require.Equal(t, 6.0, f.Layer().ShadowRadius())
}

func TestSetBackgroundColorWritesThroughToLayer(t *testing.T) {
	t.Parallel()

	f := New()
	f.SetBackgroundColor("#111827")

	require.Equal(t, "#111827", f.BackgroundColor())
	require.Equal(t, "#111827", f.Layer().Background())
}

func TestShadowSettersWriteThrough(t *testing.T) {
	t.Parallel()

	f := New()
	f.SetShadowColor("#000000")
	f.SetShadowOffset(1, 2)
	f.SetShadowOpacity(0.4)
	f.SetShadowRadius(3)

	require.Equal(t, "#000000", f.Layer().ShadowColor())
	x, y := f.Layer().ShadowOffset()
	require.Equal(t, 1.0, x)
	require.Equal(t, 2.0, y)
	require.Equal(t, 0.4, f.Layer().ShadowOpacity())
	require.Equal(t, 3.0, f.Layer().ShadowRadius())
}

func TestGeometryWritesThroughToLayer(t *testing.T) {
	t.Parallel()

	f := New()
	f.SetPosition(5, 7)
	f.SetWidth(60)
	f.SetHeight(2)
	f.SetZPosition(3)

	x, y, w, h := f.Layer().Frame()
	require.Equal(t, 5.0, x)
	require.Equal(t, 7.0, y)
	require.Equal(t, 60.0, w)
	require.Equal(t, 2.0, h)
	require.Equal(t, 3, f.Layer().ZPosition())
}

func TestAnimateLayerAppliesMutation(t *testing.T) {
	t.Parallel()

	f := New()
	f.AnimateLayer(func(l *layer.Layer) { l.SetBackground("#ff00ff") })

	require.Equal(t, "#ff00ff", f.Layer().Background())
}

func TestFromDescriptorBuildsConfiguredField(t *testing.T) {
	t.Parallel()

	d := &descriptor.Field{
		Placeholder: "Email address",
		Text:        "me@example.com",
		Title:       &descriptor.LabelSpec{Text: "Email"},
		Detail:      &descriptor.LabelSpec{Text: "invalid address"},
		Colors: descriptor.Colors{
			TitleActive:  "#0000ff",
			DetailActive: "#ff0000",
			Background:   "#111827",
		},
		Style: descriptor.Style{
			Depth:        "depth2",
			CornerRadius: "medium",
			BorderWidth:  "thin",
		},
		Frame: &descriptor.Frame{Width: 60, Height: 1},
	}

	f, err := FromDescriptor(d)
	require.NoError(t, err)

	require.Equal(t, "Email address", f.Placeholder())
	require.Equal(t, "me@example.com", f.Value())
	require.True(t, f.HasText())
	require.Equal(t, "Email", f.TitleLabel().Text())
	require.Equal(t, "invalid address", f.DetailLabel().Text())
	require.Equal(t, "#111827", f.BackgroundColor())
	require.Equal(t, 60.0, f.Width())

	_, y := f.Layer().ShadowOffset()
	require.Equal(t, 2.0, y)
	require.Equal(t, 4.0, f.Layer().CornerRadius())
	require.Equal(t, 1.0, f.Layer().BorderWidth())
}

func TestFromDescriptorCircleShape(t *testing.T) {
	t.Parallel()

	d := &descriptor.Field{
		Frame: &descriptor.Frame{Width: 30, Height: 3},
		Style: descriptor.Style{Shape: "circle"},
	}

	f, err := FromDescriptor(d)
	require.NoError(t, err)
	require.Equal(t, styles.ShapeCircle, f.Shape())
	require.Equal(t, f.Width(), f.Height())
	require.Equal(t, f.Width()/2, f.Layer().CornerRadius())
}

func TestFromDescriptorDefaults(t *testing.T) {
	t.Parallel()

	f, err := FromDescriptor(&descriptor.Field{})
	require.NoError(t, err)
	require.Nil(t, f.TitleLabel())
	require.Nil(t, f.DetailLabel())
	require.False(t, f.HasText())
	require.True(t, f.DetailHidden())
}
