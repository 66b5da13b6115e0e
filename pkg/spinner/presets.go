package spinner

import (
	"sort"
	"time"

	"github.com/pterm/pterm"
)

// Preset is a named frame sequence.
type Preset struct {
	Frames   []string
	Interval time.Duration
}

// DefaultPreset is used when neither frames nor a preset are given.
const DefaultPreset = "dots"

// asciiPreset replaces presets that need Unicode on terminals without it.
const asciiPreset = "line"

var presets = map[string]Preset{
	"dots":       {Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, Interval: 80 * time.Millisecond},
	"line":       {Frames: []string{"-", "\\", "|", "/"}, Interval: 130 * time.Millisecond},
	"arc":        {Frames: []string{"◜", "◠", "◝", "◞", "◡", "◟"}, Interval: 100 * time.Millisecond},
	"circle":     {Frames: []string{"◐", "◓", "◑", "◒"}, Interval: 120 * time.Millisecond},
	"bounce":     {Frames: []string{"⠁", "⠂", "⠄", "⠂"}, Interval: 120 * time.Millisecond},
	"simpleDots": {Frames: []string{".  ", ".. ", "...", "   "}, Interval: 400 * time.Millisecond},
	"pterm":      {Frames: pterm.DefaultSpinner.Sequence, Interval: pterm.DefaultSpinner.Delay},
}

// Presets lists the preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset returns a copy of the named preset.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, false
	}
	return Preset{Frames: append([]string(nil), p.Frames...), Interval: p.Interval}, true
}

func (p Preset) ascii() bool {
	for _, f := range p.Frames {
		for _, r := range f {
			if r > 0x7f {
				return false
			}
		}
	}
	return true
}
