package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("field.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "field.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "field.yaml:12")
}

func TestParseErrorOmitsZeroLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("field.yaml", 0, fmt.Errorf("mapping values are not allowed"))
	require.NotContains(t, err.Error(), ":0:")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title.active_color", "must be a hex color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "title.active_color", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be a hex color")
}

func TestPresetErrorNamesKindAndValue(t *testing.T) {
	t.Parallel()

	err := NewPresetError("shape", "triangle")

	var presetErr *PresetError
	require.ErrorAs(t, err, &presetErr)
	require.Equal(t, "shape", presetErr.Kind)
	require.Contains(t, err.Error(), `"triangle"`)
}
