package termrender

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termrender/pkg/logging"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/spinner"
)

// sleep is swapped in tests.
var sleep = time.Sleep

func newSpinCmd(s *session) *cobra.Command {
	var (
		message  string
		preset   string
		duration time.Duration
		steps    int
		final    string
		list     bool
	)
	cmd := &cobra.Command{
		Use:     "spin",
		Short:   MsgSpinShort,
		Long:    MsgSpinLong,
		Example: MsgSpinExample,
		Args:    cobra.NoArgs,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range spinner.Presets() {
					if _, err := fmt.Fprintln(s.out, name); err != nil {
						return err
					}
				}
				return nil
			}
			if preset == "" {
				preset = s.cfg.Spinner.Preset
			}
			if steps < 1 {
				steps = 1
			}

			sp, err := spinner.New(spinner.Options{
				Preset:        preset,
				Interval:      s.cfg.Spinner.Interval(),
				Message:       message,
				Theme:         s.theme,
				Channel:       output.Stderr,
				Interactive:   s.stderrInteractive(),
				Columns:       s.caps.Columns,
				HandleSignals: true,
			})
			if err != nil {
				return err
			}

			logger := logging.GetLogger("spin")
			if err := sp.Start(); err != nil {
				return err
			}
			step := duration / time.Duration(steps)
			for i := 1; i <= steps; i++ {
				sleep(step)
				logger.Info().Int("step", i).Int("of", steps).Msg("Step finished")
				if i < steps {
					sp.SetMessage(fmt.Sprintf("%s (%d/%d)", message, i+1, steps))
				}
			}
			return sp.Success(final)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "Working", "Message shown next to the spinner")
	cmd.Flags().StringVar(&preset, "preset", "", "Frame preset, see --list")
	cmd.Flags().DurationVar(&duration, "duration", 2*time.Second, "How long to spin")
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of steps the duration is split into")
	cmd.Flags().StringVar(&final, "final", "Done", "Success message printed when finished")
	cmd.Flags().BoolVar(&list, "list", false, "List the frame presets")
	return cmd
}
