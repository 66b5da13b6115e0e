package termrender

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/markup"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/size"
	"github.com/arthur-debert/termrender/pkg/theme"
	"github.com/arthur-debert/termrender/pkg/wrap"
)

func newStripCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "strip [text...]",
		Short:   MsgStripShort,
		Example: "  ls --color=always | termrender strip",
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			_, err = s.out.WriteString(ansi.Strip(text) + "\n")
			return err
		},
	}
}

func newWrapCmd(s *session) *cobra.Command {
	var width string
	cmd := &cobra.Command{
		Use:     "wrap [text...]",
		Short:   MsgWrapShort,
		Example: "  termrender wrap --to half \"$(cat notes.txt)\"",
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			w, err := size.Resolve(width, s.caps.Columns)
			if err != nil {
				return err
			}
			_, err = s.out.WriteString(wrap.String(text, w) + "\n")
			return err
		},
	}
	cmd.Flags().StringVar(&width, "to", "full", "Wrap width as a size token (see help size-tokens)")
	return cmd
}

func newLineCmd(s *session) *cobra.Command {
	var (
		padding int
		role    string
		width   string
		kind    string
	)
	cmd := &cobra.Command{
		Use:     "line [text...]",
		Short:   MsgLineShort,
		Example: "  termrender line --padding 2 --role success \"All done\"\n  termrender line --kind warning \"Disk almost full\"",
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			if kind != "" {
				k, err := parseKind(kind)
				if err != nil {
					return err
				}
				text = output.FormatMessage(s.theme, k, text)
			}

			color := theme.Role(strings.ToLower(role))
			if _, _, err := s.theme.StyleErr(color); err != nil {
				return err
			}
			opts := output.LineOptions{Padding: padding, Color: color, Theme: s.theme}
			if width != "" {
				if opts.Width, err = size.Resolve(width, s.caps.Columns); err != nil {
					return err
				}
			}
			return output.WriteLine(s.out, text, opts)
		},
	}
	cmd.Flags().IntVar(&padding, "padding", 0, "Spaces before the text")
	cmd.Flags().StringVar(&role, "role", "", "Color role (primary, success, muted, ...)")
	cmd.Flags().StringVar(&width, "wrap", "", "Wrap at this size token, padding included")
	cmd.Flags().StringVar(&kind, "kind", "", "Prefix a status icon: success, error, warning, info or help")
	return cmd
}

func parseKind(name string) (theme.Kind, error) {
	for _, k := range theme.Kinds {
		if string(k) == strings.ToLower(name) {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown message kind %q", name).WithDetail("kind", name)
}

func newDividerCmd(s *session) *cobra.Command {
	var opts output.DividerOptions
	cmd := &cobra.Command{
		Use:     "divider [title]",
		Short:   MsgDividerShort,
		Example: "  termrender divider\n  termrender divider --char = --to half Results",
		Args:    cobra.MaximumNArgs(1),
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Title = args[0]
			}
			opts.Columns = s.caps.Columns
			return output.Divider(s.out, s.theme, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Char, "char", "", "Character to repeat")
	cmd.Flags().StringVar(&opts.Width, "to", "full", "Width as a size token")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Color variant: primary, secondary or tertiary")
	cmd.Flags().IntVar(&opts.Padding, "padding", 0, "Spaces before the rule")
	return cmd
}

func newBannerCmd(s *session) *cobra.Command {
	var (
		opts  output.BannerOptions
		align string
	)
	cmd := &cobra.Command{
		Use:     "banner [text...]",
		Short:   MsgBannerShort,
		Example: "  termrender banner --border double --variant primary \"Release 1.4\"",
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			a, ok := output.ParseAlign(align)
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown alignment %q", align).WithDetail("align", align)
			}
			opts.Align = a
			opts.Columns = s.caps.Columns
			return output.Banner(s.out, s.theme, text, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Border, "border", "rounded", "Border preset: single, rounded, double, heavy, ascii")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Border color variant")
	cmd.Flags().IntVar(&opts.Padding, "padding", 1, "Spaces between border and text")
	cmd.Flags().StringVar(&opts.Width, "to", "", "Width as a size token; empty fits the text")
	cmd.Flags().StringVar(&align, "align", "left", "Text alignment: left, right or center")
	return cmd
}

func newLinkCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "link URL [text...]",
		Short:   MsgLinkShort,
		Example: "  termrender link https://example.com \"the docs\"",
		Args:    cobra.MinimumNArgs(1),
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			_, err := s.out.WriteString(output.Link(s.theme, args[0], text) + "\n")
			return err
		},
	}
}

func newMarkupCmd(s *session) *cobra.Command {
	var strip bool
	cmd := &cobra.Command{
		Use:     "markup [text...]",
		Short:   MsgMarkupShort,
		Example: "  termrender markup \"<primary>Build</primary> <success>passed</success>\"",
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			if strip {
				text = markup.Strip(text)
			} else if text, err = markup.Expand(text, s.theme); err != nil {
				return err
			}
			_, err = s.out.WriteString(text + "\n")
			return err
		},
	}
	cmd.Flags().BoolVar(&strip, "strip", false, "Remove the tags instead of painting them")
	return cmd
}
