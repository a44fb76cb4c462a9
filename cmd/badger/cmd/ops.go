package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/badger/pkg/graphics"
	badgertest "github.com/go-drift/badger/pkg/testing"
)

var opsFlags badgeFlags

func init() {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Print a badge's draw operations as YAML",
		Long: `Record a badge paint pass and print the draw operations.

The output lists each canvas call with its geometry and colors, which is
useful for checking gravity, shape and text placement without a display.`,
		Example: `  badger ops --style inbox --count 7`,
		Args:    cobra.NoArgs,
		RunE:    runOps,
	}
	opsFlags.register(cmd)
	RegisterCommand(cmd)
}

type opsReport struct {
	Style  string                 `yaml:"style"`
	Shape  string                 `yaml:"shape"`
	Text   string                 `yaml:"text"`
	Width  float64                `yaml:"width"`
	Height float64                `yaml:"height"`
	Params string                 `yaml:"params"`
	Ops    []badgertest.DisplayOp `yaml:"ops"`
}

func runOps(cmd *cobra.Command, args []string) error {
	fonts, err := graphics.DefaultFontManagerErr()
	if err != nil {
		return err
	}
	b, err := opsFlags.build(fonts)
	if err != nil {
		return err
	}
	size := opsFlags.size(b)

	report := opsReport{
		Style:  b.Node().ID(),
		Shape:  b.Style().Shape.String(),
		Text:   b.Text(),
		Width:  size.Width,
		Height: size.Height,
		Params: b.Params().String(),
		Ops:    badgertest.SerializeDisplayList(b.Record(size)),
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
