package termrender

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termrender/pkg/config"
	"github.com/arthur-debert/termrender/pkg/errors"
)

func newConfigCmd(s *session) *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    "Prints the effective configuration as TOML, after the defaults, the\nconfig file, TERMRENDER_ environment variables and flags are merged.",
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := s.out.WriteString(config.DefaultContent())
				return err
			}
			data, err := toml.Marshal(s.cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
			}
			_, err = s.out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead")
	return cmd
}
