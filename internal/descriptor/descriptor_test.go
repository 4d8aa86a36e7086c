package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	fielderrors "github.com/alexisbeaulieu97/floatfield/pkg/errors"
)

const validDescriptor = `
placeholder: Email address
title:
  text: Email
detail:
  text: must be a valid address
colors:
  title_active: "#60a5fa"
  detail_active: "#f87171"
style:
  shape: none
  depth: depth2
  corner_radius: medium
  border_width: thin
frame:
  width: 40
  height: 1
`

func TestParseValidDescriptor(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(validDescriptor))
	require.NoError(t, err)
	require.Equal(t, "Email address", d.Placeholder)
	require.NotNil(t, d.Title)
	require.Equal(t, "Email", d.Title.Text)
	require.Equal(t, "depth2", d.Style.Depth)
	require.Equal(t, 40.0, d.Frame.Width)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("placeholder: [unclosed"))
	var parseErr *fielderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseRejectsUnknownPreset(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("style:\n  shape: triangle\n"))
	var validationErr *fielderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "Shape")
}

func TestParseRejectsBadHexColor(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("colors:\n  title_active: blue\n"))
	var validationErr *fielderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseRejectsLabelWithoutText(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("title:\n  text: \"\"\n"))
	require.Error(t, err)
}

func TestParseRejectsNonPositiveFrameWidth(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("frame:\n  width: 0\n"))
	require.Error(t, err)
}

func TestLoadReadsFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "field.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDescriptor), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Email", d.Title.Text)
}

func TestLoadMissingFileIsParseError(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *fielderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.Path, "absent.yaml")
}

func TestLoadAttachesPathToParseErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: [oops"), 0o644))

	_, err := Load(path)
	var parseErr *fielderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}
