package termrender

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termrender/internal/version"
	"github.com/arthur-debert/termrender/pkg/cobrax/topics"
	"github.com/arthur-debert/termrender/pkg/logging"
	"github.com/arthur-debert/termrender/pkg/output"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var flags globalFlags
	s := &session{}

	rootCmd := &cobra.Command{
		Use:     "termrender",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerTo(flags.verbosity, output.Stderr)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return s.init(cmd, &flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&flags.configPath, "config", "", MsgFlagConfig)
	pf.StringVar(&flags.color, "color", "auto", MsgFlagColor)
	pf.IntVar(&flags.width, "width", 0, MsgFlagWidth)
	pf.StringVar(&flags.theme, "theme", "default", MsgFlagTheme)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "render",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStripCmd(s))
	rootCmd.AddCommand(newWrapCmd(s))
	rootCmd.AddCommand(newLineCmd(s))
	rootCmd.AddCommand(newDividerCmd(s))
	rootCmd.AddCommand(newBannerCmd(s))
	rootCmd.AddCommand(newLinkCmd(s))
	rootCmd.AddCommand(newTableCmd(s))
	rootCmd.AddCommand(newMarkupCmd(s))
	rootCmd.AddCommand(newSpinCmd(s))
	rootCmd.AddCommand(newConfigCmd(s))
	rootCmd.AddCommand(newVersionCmd(s))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, rendered with the session's colors once known
	helpFiles, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{Renderer: &topicRenderer{s: s}}
		if _, err := topics.Initialize(rootCmd, helpFiles, opts); err == nil {
			rootCmd.SetHelpCommandGroupID("misc")
		}
	}

	return rootCmd
}

// topicRenderer picks the glamour style from the session's terminal.
type topicRenderer struct {
	s *session
}

func (r *topicRenderer) Render(content string, ext string) string {
	caps := r.s.caps
	if !r.s.ready {
		f, _ := output.Stdout.File()
		caps = detect(f)
	}
	dark := caps.DarkBackground
	if r.s.ready {
		dark = r.s.theme.Options().DarkBackground
	}
	return topics.NewGlamourRenderer(caps.ColorLevel > 0, dark, caps.Columns).Render(content, ext)
}

func newVersionCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := s.out.WriteString(version.String("termrender"))
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.RunE != nil {
				return helpCmd.RunE(helpCmd, []string{"topics"})
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
