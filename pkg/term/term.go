// Package term detects what the attached terminal supports. Rendering
// packages never call it: the CLI detects once and passes plain values down.
package term

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// DefaultColumns is used when the width cannot be determined.
const DefaultColumns = 80

// Capabilities of an output stream.
type Capabilities struct {
	// ColorLevel is 0 (none), 1 (16), 2 (256) or 3 (truecolor).
	ColorLevel     int
	Interactive    bool
	Hyperlinks     bool
	Unicode        bool
	Columns        int
	DarkBackground bool
	CI             bool
}

// Detector holds the probes Detect uses. Nil fields use the real
// environment and terminal.
type Detector struct {
	Getenv     func(key string) string
	IsTerminal func(fd uintptr) bool
	Size       func(fd int) (width, height int, err error)
	Profile    func(f *os.File) termenv.Profile
	Dark       func(f *os.File) bool
}

var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "BUILDKITE", "JENKINS_URL", "TF_BUILD", "CIRCLECI"}

var hyperlinkTerminals = []string{"iterm.app", "wezterm", "vscode", "ghostty", "hyper"}

// Detect probes f with the real environment.
func Detect(f *os.File) Capabilities {
	return Detector{}.Detect(f)
}

// Detect probes f. A nil f is treated as a pipe.
func (d Detector) Detect(f *os.File) Capabilities {
	d = d.withDefaults()

	var caps Capabilities
	if f != nil {
		caps.Interactive = d.IsTerminal(f.Fd())
	}
	caps.CI = d.ci()
	caps.ColorLevel = d.colorLevel(f, caps.Interactive)
	caps.Unicode = d.unicode(caps.Interactive)
	caps.Hyperlinks = d.hyperlinks(caps.Interactive, caps.CI)
	caps.Columns = d.columns(f, caps.Interactive)
	caps.DarkBackground = d.dark(f, caps.Interactive && !caps.CI)
	return caps
}

func (d Detector) withDefaults() Detector {
	if d.Getenv == nil {
		d.Getenv = os.Getenv
	}
	if d.IsTerminal == nil {
		d.IsTerminal = func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}
	}
	if d.Size == nil {
		d.Size = xterm.GetSize
	}
	if d.Profile == nil {
		d.Profile = func(f *os.File) termenv.Profile {
			return termenv.NewOutput(f).EnvColorProfile()
		}
	}
	if d.Dark == nil {
		d.Dark = func(f *os.File) bool {
			return termenv.NewOutput(f).HasDarkBackground()
		}
	}
	return d
}

func (d Detector) ci() bool {
	for _, v := range ciVars {
		if d.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// colorLevel honors NO_COLOR, then FORCE_COLOR, then the terminal profile.
func (d Detector) colorLevel(f *os.File, interactive bool) int {
	if d.Getenv("NO_COLOR") != "" {
		return 0
	}
	if force := strings.ToLower(d.Getenv("FORCE_COLOR")); force != "" {
		switch force {
		case "0", "false":
			return 0
		case "2":
			return 2
		case "3":
			return 3
		}
		return 1
	}
	if !interactive || f == nil {
		return 0
	}
	switch d.Profile(f) {
	case termenv.TrueColor:
		return 3
	case termenv.ANSI256:
		return 2
	case termenv.ANSI:
		return 1
	}
	return 0
}

// unicode reads the first locale variable set. With none set, interactive
// terminals are assumed to cope.
func (d Detector) unicode(interactive bool) bool {
	if d.Getenv("TERM") == "linux" {
		return false
	}
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := strings.ToLower(d.Getenv(key)); v != "" {
			return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
		}
	}
	return interactive || d.Getenv("WT_SESSION") != ""
}

func (d Detector) hyperlinks(interactive, ci bool) bool {
	switch d.Getenv("FORCE_HYPERLINK") {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	if !interactive || ci {
		return false
	}
	if d.Getenv("WT_SESSION") != "" || d.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	program := strings.ToLower(d.Getenv("TERM_PROGRAM"))
	for _, name := range hyperlinkTerminals {
		if program == name {
			return true
		}
	}
	if vte, err := strconv.Atoi(d.Getenv("VTE_VERSION")); err == nil && vte >= 5000 {
		return true
	}
	return false
}

func (d Detector) columns(f *os.File, interactive bool) int {
	if interactive && f != nil {
		if w, _, err := d.Size(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(d.Getenv("COLUMNS"))); err == nil && n > 0 {
		return n
	}
	return DefaultColumns
}

// dark prefers COLORFGBG ("fg;bg"), then a terminal query when allowed,
// and defaults to dark.
func (d Detector) dark(f *os.File, query bool) bool {
	if v := d.Getenv("COLORFGBG"); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			return bg < 7 || bg == 8
		}
	}
	if query && f != nil {
		return d.Dark(f)
	}
	return true
}
