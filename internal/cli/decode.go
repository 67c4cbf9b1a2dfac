package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-ecc/internal/metrics"
	"github.com/mrz1836/go-ecc/internal/output"
	"github.com/mrz1836/go-ecc/pkg/field"
)

// decodeCmd Reed-Solomon decodes a received word.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var decodeCmd = &cobra.Command{
	Use:   "decode <symbol>...",
	Short: "Decode a received word back to its message",
	Long: `Decode a received word of exactly n symbols, correcting up to
floor((d-1)/2) corrupted positions.

Each argument is one field element value (decimal or 0x-prefixed hex),
position 0 first. Corrected positions are reported alongside the
recovered message.

Example:
  ecc decode -m 4 -d 5 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(decodeCmd)
	addCodeFlags(decodeCmd)
}

// decodeJSON is the JSON shape of the decode command output.
type decodeJSON struct {
	Message   []uint32 `json:"message"`
	Corrected []int    `json:"corrected_positions"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	codec, err := buildRS()
	if err != nil {
		return err
	}

	symbols, err := parseSymbols(codec.Field(), args)
	if err != nil {
		return err
	}
	received := field.NewPoly(codec.Field(), symbols...)

	message, err := codec.Decode(received)
	if err != nil {
		metrics.Global.RecordDecode(0, err)
		return wrapCodeError(err)
	}

	// Re-encoding the recovered message reveals which positions were
	// corrected.
	codeword, err := codec.Encode(message)
	if err != nil {
		return wrapCodeError(err)
	}
	var corrected []int
	for i := 0; i < codec.N(); i++ {
		if !received.Coeff(i).Equal(codeword.Coeff(i)) {
			corrected = append(corrected, i)
		}
	}

	metrics.Global.RecordDecode(len(corrected), nil)
	logger.Debug("decode: recovered %d symbols, corrected %d positions", message.Len(), len(corrected))

	messageSymbols := make([]field.Element, codec.K())
	for i := range messageSymbols {
		messageSymbols[i] = message.Coeff(i)
	}

	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		return writeJSON(w, decodeJSON{
			Message:   symbolValues(messageSymbols),
			Corrected: corrected,
		})
	}
	outln(w, formatSymbols(messageSymbols))
	if len(corrected) > 0 && cfg.Output.Verbose {
		output.Warnf("corrected positions: %v", corrected)
	}
	return nil
}
