package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-ecc/internal/metrics"
	"github.com/mrz1836/go-ecc/pkg/field"
)

// encodeCmd Reed-Solomon encodes a message.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var encodeCmd = &cobra.Command{
	Use:   "encode <symbol>...",
	Short: "Encode a message into a codeword",
	Long: `Encode message symbols into a Reed-Solomon codeword.

Each argument is one field element value (decimal or 0x-prefixed hex),
lowest coefficient first. The message may carry at most k = n - d + 1
symbols; the output is the full codeword of n symbols.

Example:
  ecc encode -m 4 -d 5 3 0 5 1
  ecc encode -m 4 -d 5 -o json 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(encodeCmd)
	addCodeFlags(encodeCmd)
}

// codewordJSON is the JSON shape of the encode command output.
type codewordJSON struct {
	Message  []uint32 `json:"message"`
	Codeword []uint32 `json:"codeword"`
}

func runEncode(cmd *cobra.Command, args []string) error {
	codec, err := buildRS()
	if err != nil {
		return err
	}

	symbols, err := parseSymbols(codec.Field(), args)
	if err != nil {
		return err
	}

	codeword, err := codec.Encode(field.NewPoly(codec.Field(), symbols...))
	if err != nil {
		return wrapCodeError(err)
	}
	metrics.Global.RecordEncode()

	logger.Debug("encode: %d message symbols into length %d", len(symbols), codeword.Len())

	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		return writeJSON(w, codewordJSON{
			Message:  symbolValues(symbols),
			Codeword: symbolValues(codeword.Coeffs()),
		})
	}
	outln(w, formatSymbols(codeword.Coeffs()))
	return nil
}

// symbolValues extracts the raw values of a symbol slice.
func symbolValues(symbols []field.Element) []uint32 {
	values := make([]uint32, len(symbols))
	for i, s := range symbols {
		values[i] = s.Value()
	}
	return values
}
