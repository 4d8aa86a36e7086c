// Package descriptor loads persisted view-layout descriptors for field
// components. A descriptor is a small YAML document validated before a
// field is constructed from it.
package descriptor

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	fielderrors "github.com/alexisbeaulieu97/floatfield/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Field is the persisted layout of one field component.
type Field struct {
	Placeholder string     `yaml:"placeholder,omitempty" validate:"max=200"`
	Text        string     `yaml:"text,omitempty"`
	Title       *LabelSpec `yaml:"title,omitempty"`
	Detail      *LabelSpec `yaml:"detail,omitempty"`
	Colors      Colors     `yaml:"colors,omitempty"`
	Style       Style      `yaml:"style,omitempty"`
	Frame       *Frame     `yaml:"frame,omitempty"`
}

// LabelSpec describes an attached label.
type LabelSpec struct {
	Text string `yaml:"text" validate:"required,max=200"`
}

// Colors overrides the field's default palette. All values are hex.
type Colors struct {
	TitleActive   string `yaml:"title_active,omitempty" validate:"omitempty,hexcolor"`
	TitleInactive string `yaml:"title_inactive,omitempty" validate:"omitempty,hexcolor"`
	DetailActive  string `yaml:"detail_active,omitempty" validate:"omitempty,hexcolor"`
	Background    string `yaml:"background,omitempty" validate:"omitempty,hexcolor"`
	Border        string `yaml:"border,omitempty" validate:"omitempty,hexcolor"`
	Shadow        string `yaml:"shadow,omitempty" validate:"omitempty,hexcolor"`
}

// Style carries the preset spellings; each is validated against its
// closed set.
type Style struct {
	Shape        string `yaml:"shape,omitempty" validate:"omitempty,shape_preset"`
	Depth        string `yaml:"depth,omitempty" validate:"omitempty,depth_preset"`
	CornerRadius string `yaml:"corner_radius,omitempty" validate:"omitempty,radius_preset"`
	BorderWidth  string `yaml:"border_width,omitempty" validate:"omitempty,border_preset"`
}

// Frame is the field's position and size.
type Frame struct {
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height,omitempty" validate:"omitempty,gt=0"`
	Z      int     `yaml:"z,omitempty"`
}

// Load reads a descriptor file from disk, validates it, and returns the
// resulting model.
func Load(path string) (*Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fielderrors.NewParseError(path, 0, err)
	}

	d, err := Parse(data)
	if err != nil {
		if parseErr, ok := err.(*fielderrors.ParseError); ok {
			parseErr.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Parse decodes and validates a descriptor document.
func Parse(data []byte) (*Field, error) {
	var d Field
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fielderrors.NewParseError("", extractLine(err), err)
	}

	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
