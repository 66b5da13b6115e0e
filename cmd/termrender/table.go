package termrender

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/table"
)

func newTableCmd(s *session) *cobra.Command {
	var (
		file   string
		format string
		width  string
		border string
	)
	cmd := &cobra.Command{
		Use:     "table --file FILE",
		Short:   MsgTableShort,
		Long:    MsgTableLong,
		Example: MsgTableExample,
		Args:    cobra.NoArgs,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readTableFile(cmd, file)
			if err != nil {
				return err
			}
			kind := tableFormat(file, format)
			if kind == "" {
				return errors.Newf(errors.ErrInvalidInput, MsgErrTableFormat, file).WithDetail("path", file)
			}
			raw, err := decodeTable(data, kind)
			if err != nil {
				return err
			}
			opts, err := table.FromMap(raw)
			if err != nil {
				return err
			}

			opts.Style = opts.Style.Inherit(s.tableStyle())
			if border != "" {
				opts.Style.Border.Preset = border
			}
			if width != "" {
				opts.Width = width
			}
			opts.Columns = s.caps.Columns
			return table.Table(s.out, opts, s.theme)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or TOML table file, - for standard input")
	cmd.Flags().StringVar(&format, "format", "", "File format when it cannot be told from the name: yaml or toml")
	cmd.Flags().StringVar(&width, "to", "", "Table width as a size token")
	cmd.Flags().StringVar(&border, "border", "", "Border preset for every cell")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// tableStyle is the configured default cell style.
func (s *session) tableStyle() table.Style {
	t := s.cfg.Table
	style := table.Style{
		Padding: table.Int(t.Padding),
		Align:   t.Align,
		Border:  table.BorderSpec{Preset: t.Border},
	}
	if t.MaxWidth > 0 {
		style.MaxWidth = table.Int(t.MaxWidth)
	}
	return style
}

func readTableFile(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read standard input")
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to read %s", file).WithDetail("path", file)
	}
	return data, nil
}

func tableFormat(file, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}

func decodeTable(data []byte, format string) (map[string]any, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &raw)
	case "toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown table format %q", format).WithDetail("format", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid %s table", format)
	}
	return raw, nil
}
