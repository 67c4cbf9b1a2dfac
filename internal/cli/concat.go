package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-ecc/internal/metrics"
	"github.com/mrz1836/go-ecc/pkg/concat"
	"github.com/mrz1836/go-ecc/pkg/field"
	"github.com/mrz1836/go-ecc/pkg/gf2"
)

// concatCmd is the parent command for concatenated coding.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var concatCmd = &cobra.Command{
	Use:   "concat",
	Short: "Concatenated Reed-Solomon over BCH coding",
	Long: `Encode and decode with the concatenated code: an outer Reed-Solomon
code whose symbols are each protected by an inner binary BCH code.

The outer code comes from the code section of the configuration (or the
shared flags), the inner code from the inner section.`,
}

// concatEncodeCmd encodes a message with the concatenated code.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var concatEncodeCmd = &cobra.Command{
	Use:   "encode <symbol>...",
	Short: "Encode a message into inner codewords",
	Long: `Encode message symbols with the outer code, then protect every
codeword symbol with the inner code. The output is one inner codeword
per outer position.

Example:
  ecc concat encode -m 4 -d 3 2 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConcatEncode,
}

// concatDecodeCmd decodes inner codewords back to the message.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var concatDecodeCmd = &cobra.Command{
	Use:   "decode <word>...",
	Short: "Decode inner codewords back to the message",
	Long: `Decode one inner codeword per outer position, written as binary
strings or 0x-prefixed hex. Inner words beyond the inner code's radius
fall back to their raw bits and count against the outer code's radius.

Example:
  ecc concat decode -m 4 -d 3 <15 binary words>`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConcatDecode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(concatCmd)
	concatCmd.AddCommand(concatEncodeCmd)
	concatCmd.AddCommand(concatDecodeCmd)
	addCodeFlags(concatEncodeCmd)
	addCodeFlags(concatDecodeCmd)
}

// buildConcat constructs the concatenated code from configuration.
func buildConcat() (*concat.Code, error) {
	outer, err := buildRS()
	if err != nil {
		return nil, err
	}
	inner, err := buildInnerBCH()
	if err != nil {
		return nil, err
	}

	code, err := concat.New(outer, inner)
	if err != nil {
		return nil, wrapCodeError(err)
	}
	return code, nil
}

// concatJSON is the JSON shape of the concat command outputs.
type concatJSON struct {
	Message []uint32 `json:"message,omitempty"`
	Words   []string `json:"words,omitempty"`
}

func runConcatEncode(cmd *cobra.Command, args []string) error {
	code, err := buildConcat()
	if err != nil {
		return err
	}

	symbols, err := parseSymbols(code.Outer().Field(), args)
	if err != nil {
		return err
	}
	words, err := code.Encode(field.NewPoly(code.Outer().Field(), symbols...))
	if err != nil {
		return wrapCodeError(err)
	}
	metrics.Global.RecordEncode()

	logger.Debug("concat encode: %d symbols into %d inner words", len(symbols), len(words))

	rendered := make([]string, len(words))
	for i, word := range words {
		rendered[i] = word.String()
	}

	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		return writeJSON(w, concatJSON{Message: symbolValues(symbols), Words: rendered})
	}
	for _, word := range rendered {
		outln(w, word)
	}
	return nil
}

func runConcatDecode(cmd *cobra.Command, args []string) error {
	code, err := buildConcat()
	if err != nil {
		return err
	}

	words := make([]gf2.Poly, len(args))
	for i, arg := range args {
		if words[i], err = parseBits(arg); err != nil {
			return err
		}
	}

	message, err := code.Decode(words)
	if err != nil {
		metrics.Global.RecordDecode(0, err)
		return wrapCodeError(err)
	}
	metrics.Global.RecordDecode(0, nil)

	messageSymbols := make([]field.Element, code.Outer().K())
	for i := range messageSymbols {
		messageSymbols[i] = message.Coeff(i)
	}

	w := cmd.OutOrStdout()
	if formatter.IsJSON() {
		return writeJSON(w, concatJSON{Message: symbolValues(messageSymbols)})
	}
	outln(w, formatSymbols(messageSymbols))
	return nil
}
