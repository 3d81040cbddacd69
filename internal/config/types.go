package config

import (
	"fmt"

	"github.com/axiswm/tilecore/internal/core"
	"github.com/axiswm/tilecore/internal/geometry"
	"github.com/axiswm/tilecore/internal/tree"
)

// Config is the root settings file (the ambient settings note,
// C10): the gap/padding/default-mode/axis-override/nav knobs a Core needs
// at startup. Per-application window rules (the RulesEngine) are
// an external collaborator reached over the platform bridge, not
// config-file state, so there is no rules section here.
type Config struct {
	Settings Settings `yaml:"settings" json:"settings"`
}

// Settings mirrors core.Options one field at a time, in the string/raw
// form a settings file carries before validation resolves it, plus
// SplitAxis, which has no core.Options counterpart.
type Settings struct {
	Gap           float64 `yaml:"gap" json:"gap"`
	PaddingTop    float64 `yaml:"paddingTop" json:"paddingTop"`
	PaddingLeft   float64 `yaml:"paddingLeft" json:"paddingLeft"`
	PaddingRight  float64 `yaml:"paddingRight" json:"paddingRight"`
	PaddingBottom float64 `yaml:"paddingBottom" json:"paddingBottom"`

	// DefaultMode is one of "bsp", "monocle", "float".
	DefaultMode string `yaml:"defaultMode" json:"defaultMode"`

	// SplitAxis presets core.Core.SetSplitAxis at startup when non-empty:
	// "vertical" or "horizontal" (the optimal-axis override).
	SplitAxis string `yaml:"splitAxis,omitempty" json:"splitAxis,omitempty"`

	NavWrap   bool `yaml:"navWrap" json:"navWrap"`
	NavExtend bool `yaml:"navExtend" json:"navExtend"`
}

// ToOptions converts validated Settings into the core.Options a Core is
// constructed with.
func (s Settings) ToOptions() (core.Options, error) {
	mode, err := parseMode(s.DefaultMode)
	if err != nil {
		return core.Options{}, err
	}
	return core.Options{
		Gap:          s.Gap,
		PaddingTop:   s.PaddingTop,
		PaddingLeft:  s.PaddingLeft,
		PaddingRight: s.PaddingRight,
		PaddingBot:   s.PaddingBottom,
		DefaultMode:  mode,
		NavWrap:      s.NavWrap,
		NavExtend:    s.NavExtend,
	}, nil
}

// SplitAxisOverride resolves SplitAxis, if set. ok is false when the
// settings file left it empty (no startup override).
func (s Settings) SplitAxisOverride() (axis geometry.Axis, ok bool, err error) {
	switch s.SplitAxis {
	case "":
		return 0, false, nil
	case "vertical":
		return geometry.Vertical, true, nil
	case "horizontal":
		return geometry.Horizontal, true, nil
	default:
		return 0, false, fmt.Errorf("invalid splitAxis: %q", s.SplitAxis)
	}
}

func parseMode(s string) (tree.Mode, error) {
	switch s {
	case "", "bsp":
		return tree.BSP, nil
	case "monocle":
		return tree.Monocle, nil
	case "float":
		return tree.Float, nil
	default:
		return 0, fmt.Errorf("invalid defaultMode: %q", s)
	}
}
