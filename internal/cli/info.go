package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/go-ecc/internal/output"
)

// infoCmd shows the parameters of the configured code.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show code parameters",
	Long: `Display the parameters of the configured Reed-Solomon code: the field,
its irreducible modulus and primitive element, and the derived length,
dimension and correction radius.

Example:
  ecc info -m 4 -d 5
  ecc info -o json`,
	RunE: runInfo,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(infoCmd)
	addCodeFlags(infoCmd)
}

// infoJSON is the JSON shape of the info command output.
type infoJSON struct {
	FieldSize int    `json:"field_size"`
	Modulus   string `json:"modulus"`
	Generator uint32 `json:"generator"`
	Length    int    `json:"length"`
	Dimension int    `json:"dimension"`
	Distance  int    `json:"distance"`
	Radius    int    `json:"radius"`
}

func runInfo(cmd *cobra.Command, _ []string) error {
	codec, err := buildRS()
	if err != nil {
		return err
	}
	f := codec.Field()

	logger.Debug("info: m=%d d=%d modulus=%s", f.M(), codec.D(), f.Modulus())

	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		return writeJSON(w, infoJSON{
			FieldSize: f.M(),
			Modulus:   f.Modulus().String(),
			Generator: uint32(f.Generator()),
			Length:    codec.N(),
			Dimension: codec.K(),
			Distance:  codec.D(),
			Radius:    codec.T(),
		})
	}

	table := output.NewTable("parameter", "value")
	table.AddRow("field", fmt.Sprintf("GF(2^%d)", f.M()))
	table.AddRow("modulus", f.Modulus().String())
	table.AddRow("generator", fmt.Sprintf("%d", uint32(f.Generator())))
	table.AddRow("length n", fmt.Sprintf("%d", codec.N()))
	table.AddRow("dimension k", fmt.Sprintf("%d", codec.K()))
	table.AddRow("distance d", fmt.Sprintf("%d", codec.D()))
	table.AddRow("radius t", fmt.Sprintf("%d", codec.T()))
	return table.Render(w)
}
