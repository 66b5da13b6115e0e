package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/logging"
)

const (
	appName = "termrender"
	// EnvPrefix marks environment overrides: TERMRENDER_TABLE_PADDING sets
	// table.padding.
	EnvPrefix = "TERMRENDER_"
)

var userFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Options controls which layers Load reads.
type Options struct {
	// Path is an explicit config file. It must exist.
	Path string
	// SearchDirs replaces the XDG config directories when looking for
	// termrender/config.{toml,yaml,yml}.
	SearchDirs []string
	// SkipEnv ignores TERMRENDER_* variables.
	SkipEnv bool
	// Overrides is applied last, keyed by dotted path.
	Overrides map[string]interface{}
}

var numericKeys = []string{"output.width", "table.padding", "table.max_width", "spinner.interval_ms"}

var choiceKeys = map[string][]string{
	"theme.mode":   {"auto", "light", "dark"},
	"output.color": {"auto", "0", "1", "2", "3"},
	"table.align":  {"left", "right", "center"},
}

// Load merges the configuration layers and decodes them.
func Load(opts Options) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user file if there is one
	path, err := userFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		layer := koanf.New(".")
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := layer.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		if err := merge(k, layer, path); err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Load env vars
	if !opts.SkipEnv {
		layer := koanf.New(".")
		if err := layer.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
		if err := merge(k, layer, "environment"); err != nil {
			return nil, err
		}
	}

	// 4. Load explicit overrides
	if len(opts.Overrides) > 0 {
		layer := koanf.New(".")
		if err := layer.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
		if err := merge(k, layer, "flags"); err != nil {
			return nil, err
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// DefaultPath is where a user config file is normally placed.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, userFileNames[0])
}

func userFile(opts Options) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}

	dirs := opts.SearchDirs
	if dirs == nil {
		dirs = append([]string{xdg.ConfigHome}, xdg.ConfigDirs...)
	}
	for _, dir := range dirs {
		for _, name := range userFileNames {
			path := filepath.Join(dir, appName, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// envKey maps TERMRENDER_SECTION_NAME to section.name. Theme colors nest one
// level deeper: TERMRENDER_THEME_COLORS_PRIMARY sets theme.colors.primary.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" {
		return ""
	}
	if section == "theme" {
		if role, ok := strings.CutPrefix(rest, "colors_"); ok {
			return "theme.colors." + role
		}
	}
	return section + "." + rest
}

// merge drops invalid values from layer, so the previous layer's value
// stands, and merges the rest into k.
func merge(k, layer *koanf.Koanf, source string) error {
	log := logging.GetLogger("config")

	for _, key := range numericKeys {
		if !layer.Exists(key) {
			continue
		}
		raw := layer.Get(key)
		n, ok := toInt(raw)
		if !ok || n < 0 {
			log.Warn().
				Str("key", key).
				Str("source", source).
				Str("value", fmt.Sprint(raw)).
				Msg("ignoring invalid numeric value")
			layer.Delete(key)
			continue
		}
		if err := layer.Set(key, n); err != nil {
			return errors.Wrap(err, errors.ErrConfigInvalid, "failed to normalize "+key)
		}
	}

	for key, allowed := range choiceKeys {
		if !layer.Exists(key) {
			continue
		}
		value := strings.ToLower(strings.TrimSpace(fmt.Sprint(layer.Get(key))))
		if !contains(allowed, value) {
			log.Warn().
				Str("key", key).
				Str("source", source).
				Str("value", value).
				Strs("allowed", allowed).
				Msg("ignoring invalid value")
			layer.Delete(key)
			continue
		}
		if err := layer.Set(key, value); err != nil {
			return errors.Wrap(err, errors.ErrConfigInvalid, "failed to normalize "+key)
		}
	}

	if err := k.Merge(layer); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge %s", source)
	}
	return nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
