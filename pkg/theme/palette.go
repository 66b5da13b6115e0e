package theme

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

// ColorDef is an adaptive color as written in themes.yaml.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type paletteFile struct {
	Palettes map[string]map[string]ColorDef `yaml:"palettes"`
}

// Palette maps roles to adaptive colors.
type Palette map[Role]lipgloss.AdaptiveColor

var (
	palettesOnce sync.Once
	palettes     map[string]Palette
	palettesErr  error
)

func builtinPalettes() (map[string]Palette, error) {
	palettesOnce.Do(func() {
		palettes, palettesErr = ParsePalettes(themesYAML)
	})
	return palettes, palettesErr
}

// ParsePalettes decodes a palettes document in the themes.yaml format.
func ParsePalettes(data []byte) (map[string]Palette, error) {
	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse palettes: %w", err)
	}

	out := make(map[string]Palette, len(file.Palettes))
	for name, roles := range file.Palettes {
		p := make(Palette, len(roles))
		for role, def := range roles {
			p[Role(role)] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
		}
		out[name] = p
	}
	return out, nil
}

// PaletteNames lists the embedded palettes.
func PaletteNames() []string {
	all, err := builtinPalettes()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
