package termrender

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termrender/pkg/config"
	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/term"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI against a 40 column unicode terminal without color,
// with an isolated config file and log directory.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\nwidth = 0\n"), 0644))

	prevDetect, prevSleep := detect, sleep
	detect = func(*os.File) term.Capabilities {
		return term.Capabilities{Unicode: true, Columns: 40}
	}
	sleep = func(time.Duration) {}

	var stdout, stderr bytes.Buffer
	prevOut := output.Stdout.SetWriter(&stdout)
	prevErr := output.Stderr.SetWriter(&stderr)
	t.Cleanup(func() {
		detect, sleep = prevDetect, prevSleep
		output.Stdout.SetWriter(prevOut)
		output.Stderr.SetWriter(prevErr)
	})

	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCmd()

	names := map[string]*cobra.Command{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = c
	}
	for _, name := range []string{"strip", "wrap", "line", "divider", "banner", "link", "table", "markup", "spin"} {
		require.Contains(t, names, name)
		assert.Equal(t, "render", names[name].GroupID, name)
	}
	for _, name := range []string{"config", "version", "topics", "completion", "help"} {
		require.Contains(t, names, name)
		assert.Equal(t, "misc", names[name].GroupID, name)
	}
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"strip args", "", []string{"strip", "\x1b[31mred\x1b[0m"}, "red\n"},
		{"strip stdin", "\x1b[1mbold\x1b[22m\n", []string{"strip"}, "bold\n"},
		{"wrap", "", []string{"wrap", "--to", "5", "hello world"}, "hello\nworld\n"},
		{"line padding", "", []string{"line", "--padding", "2", "hi"}, "  hi\n"},
		{"line kind", "", []string{"line", "--kind", "success", "done"}, "✓ done\n"},
		{"divider", "", []string{"divider", "--to", "10"}, strings.Repeat("─", 10) + "\n"},
		{"divider title", "", []string{"divider", "--to", "12", "--char", "=", "T"}, "== T =======\n"},
		{"banner", "", []string{"banner", "--padding", "0", "hi"}, "╭──╮\n│hi│\n╰──╯\n"},
		{"link fallback", "", []string{"link", "https://x.dev", "docs"}, "docs (https://x.dev)\n"},
		{"link bare", "", []string{"link", "https://x.dev"}, "https://x.dev\n"},
		{"markup", "", []string{"markup", "<primary>Hi</primary> there"}, "Hi there\n"},
		{"markup strip", "", []string{"markup", "--strip", "<bold>a</bold><no-format>[b]</no-format>"}, "a[b]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, tt.stdin, tt.args...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}

func TestTextCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"bad size token", []string{"wrap", "--to", "huge", "x"}, errors.ErrInvalidSizeToken},
		{"unknown kind", []string{"line", "--kind", "nope", "x"}, errors.ErrInvalidInput},
		{"unknown role", []string{"line", "--role", "nope", "x"}, errors.ErrUnknownVariant},
		{"unknown align", []string{"banner", "--align", "diagonal", "x"}, errors.ErrInvalidInput},
		{"unknown tag", []string{"markup", "<nope>x</nope>"}, errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, "", tt.args...)
			require.Error(t, r.err)
			assert.Equal(t, tt.code, errors.GetErrorCode(r.err))
		})
	}
}

func TestTableCommand(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "t.yaml", "header: [Name, Size]\nrows:\n  - [a.txt, 12]\n  - [b.txt, 7]\n")
		r := run(t, "", "table", "--file", path)
		require.NoError(t, r.err)

		lines := strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
		assert.Contains(t, r.stdout, "Name")
		assert.Contains(t, r.stdout, "b.txt")
		for _, line := range lines {
			assert.LessOrEqual(t, len([]rune(line)), 40, line)
		}
	})

	t.Run("toml with border flag", func(t *testing.T) {
		path := writeFile(t, "t.toml", "header = [\"Key\"]\nrows = [[\"v\"]]\n")
		r := run(t, "", "table", "--file", path, "--border", "ascii")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "Key")
		assert.NotContains(t, r.stdout, "─")
	})

	t.Run("stdin with format", func(t *testing.T) {
		r := run(t, "rows:\n  - [x]\n", "table", "--file", "-", "--format", "yaml")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "x")
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeFile(t, "t.txt", "rows: []\n")
		r := run(t, "", "table", "--file", path)
		require.Error(t, r.err)
		assert.True(t, errors.IsErrorCode(r.err, errors.ErrInvalidInput))
		assert.Contains(t, r.err.Error(), "--format")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "t.yaml", "rows: [\n")
		r := run(t, "", "table", "--file", path)
		require.Error(t, r.err)
		assert.True(t, errors.IsErrorCode(r.err, errors.ErrInvalidInput))
	})

	t.Run("missing file flag", func(t *testing.T) {
		r := run(t, "", "table")
		require.Error(t, r.err)
	})
}

func TestSpinCommand(t *testing.T) {
	t.Run("not a terminal prints once", func(t *testing.T) {
		r := run(t, "", "spin", "--steps", "2", "--message", "Fetching", "--final", "Fetched")
		require.NoError(t, r.err)
		assert.Empty(t, r.stdout)
		assert.Contains(t, r.stderr, "Fetching")
		assert.Contains(t, r.stderr, "Fetched")
	})

	t.Run("list", func(t *testing.T) {
		r := run(t, "", "spin", "--list")
		require.NoError(t, r.err)
		assert.Contains(t, strings.Split(r.stdout, "\n"), "dots")
	})

	t.Run("unknown preset", func(t *testing.T) {
		r := run(t, "", "spin", "--preset", "nope")
		require.Error(t, r.err)
		assert.True(t, errors.IsErrorCode(r.err, errors.ErrUnknownPreset))
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("effective", func(t *testing.T) {
		r := run(t, "", "--width", "50", "config")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "[table]")
		assert.Contains(t, r.stdout, "width = 50")
	})

	t.Run("defaults", func(t *testing.T) {
		r := run(t, "", "config", "--defaults")
		require.NoError(t, r.err)
		assert.Equal(t, config.DefaultContent(), r.stdout)
	})

	t.Run("missing file", func(t *testing.T) {
		r := run(t, "", "--config", filepath.Join(t.TempDir(), "absent.toml"), "version")
		require.Error(t, r.err)
		assert.Contains(t, r.err.Error(), "failed to load configuration")
	})
}

func TestMiscCommands(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		r := run(t, "", "version")
		require.NoError(t, r.err)
		assert.True(t, strings.HasPrefix(r.stdout, "termrender version "))
	})

	t.Run("help topic", func(t *testing.T) {
		r := run(t, "", "help", "tables")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "Tables")
	})

	t.Run("topics list", func(t *testing.T) {
		r := run(t, "", "topics")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "size-tokens")
	})

	t.Run("completion", func(t *testing.T) {
		r := run(t, "", "completion", "bash")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "termrender")
	})

	t.Run("no command", func(t *testing.T) {
		r := run(t, "")
		require.Error(t, r.err)
		assert.Contains(t, r.err.Error(), MsgErrNoCommand)
	})
}
