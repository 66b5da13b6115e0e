package termrender

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termrender/pkg/config"
	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/term"
	"github.com/arthur-debert/termrender/pkg/theme"
)

// detect is swapped in tests.
var detect = term.Detect

type globalFlags struct {
	verbosity  int
	configPath string
	color      string
	width      int
	theme      string
}

// session is the state shared by the commands of one invocation.
type session struct {
	cfg   *config.Config
	caps  term.Capabilities
	theme theme.Theme
	out   *output.Channel
	ready bool
}

func (s *session) init(cmd *cobra.Command, f *globalFlags) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("width") {
		overrides["output.width"] = f.width
	}
	if flags.Changed("color") {
		overrides["output.color"] = f.color
	}
	if flags.Changed("theme") {
		overrides["theme.name"] = f.theme
	}

	cfg, err := config.Load(config.Options{Path: f.configPath, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	file, _ := output.Stdout.File()
	caps := detect(file)
	if cfg.Output.Width > 0 {
		caps.Columns = cfg.Output.Width
	}
	if level, ok := cfg.Output.ColorLevel(); ok {
		caps.ColorLevel = level
	}
	dark := caps.DarkBackground
	if d, ok := cfg.Theme.DarkBackground(); ok {
		dark = d
	}

	th, err := theme.New(theme.Options{
		ColorLevel:     caps.ColorLevel,
		Unicode:        caps.Unicode,
		Hyperlinks:     caps.Hyperlinks,
		DarkBackground: dark,
		Palette:        cfg.Theme.Name,
		Colors:         cfg.Theme.Colors,
	})
	if err != nil {
		return err
	}

	s.cfg, s.caps, s.theme, s.out = cfg, caps, th, output.Stdout
	s.ready = true
	return nil
}

// stderrInteractive reports whether the stderr channel is a terminal.
func (s *session) stderrInteractive() bool {
	f, ok := output.Stderr.File()
	return ok && detect(f).Interactive
}

// input joins args, or reads cmd's standard input when there are none. A
// single trailing newline of piped input is dropped.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && detect(f).Interactive {
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoInput)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read standard input")
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
