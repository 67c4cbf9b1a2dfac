package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-ecc/pkg/bch"
	"github.com/mrz1836/go-ecc/pkg/concat"
	eccerr "github.com/mrz1836/go-ecc/pkg/errors"
	"github.com/mrz1836/go-ecc/pkg/field"
	"github.com/mrz1836/go-ecc/pkg/gf2"
	"github.com/mrz1836/go-ecc/pkg/rs"
)

// out is a helper for CLI output.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

// writeJSON encodes the value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Code parameter flags shared by the encode/decode/info commands. Zero
// values fall back to the loaded configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	flagFieldSize int
	flagDistance  int
	flagModulus   uint32
	flagGenerator uint32
)

// addCodeFlags registers the shared code parameter flags on a command.
func addCodeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&flagFieldSize, "field-size", "m", 0, "extension degree m of GF(2^m)")
	cmd.Flags().IntVarP(&flagDistance, "distance", "d", 0, "minimum distance of the code")
	cmd.Flags().Uint32Var(&flagModulus, "modulus", 0, "irreducible polynomial bit-vector (default: auto)")
	cmd.Flags().Uint32Var(&flagGenerator, "generator", 0, "primitive element value (default: smallest)")
}

// buildField constructs the working field from flags and configuration.
func buildField() (*field.Field, error) {
	m := flagFieldSize
	if m == 0 {
		m = cfg.Code.FieldSize
	}
	modulus := flagModulus
	if modulus == 0 {
		modulus = cfg.Code.Modulus
	}
	generator := flagGenerator
	if generator == 0 {
		generator = cfg.Code.Generator
	}

	var (
		f   *field.Field
		err error
	)
	if modulus != 0 && generator != 0 {
		f, err = field.NewWithParams(m, gf2.Poly(modulus), gf2.Poly(generator))
	} else {
		f, err = field.New(m)
	}
	if err != nil {
		return nil, wrapCodeError(err)
	}
	return f, nil
}

// buildRS constructs the Reed-Solomon codec from flags and configuration.
func buildRS() (*rs.Codec, error) {
	f, err := buildField()
	if err != nil {
		return nil, err
	}

	d := flagDistance
	if d == 0 {
		d = cfg.Code.Distance
	}
	codec, err := rs.New(f, d)
	if err != nil {
		return nil, wrapCodeError(err)
	}
	return codec, nil
}

// buildInnerBCH constructs the inner BCH codec for concatenated coding.
func buildInnerBCH() (*bch.Codec, error) {
	f, err := field.New(cfg.Inner.FieldSize)
	if err != nil {
		return nil, wrapCodeError(err)
	}
	codec, err := bch.New(f, cfg.Inner.Distance)
	if err != nil {
		return nil, wrapCodeError(err)
	}
	return codec, nil
}

// wrapCodeError maps library errors onto the structured CLI error set so
// exit codes and suggestions survive to the top level.
func wrapCodeError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case eccerr.Is(err, rs.ErrTooManyErrors), eccerr.Is(err, rs.ErrRootCountMismatch),
		eccerr.Is(err, bch.ErrTooManyErrors):
		return eccerr.WithSuggestion(
			eccerr.WithDetails(eccerr.ErrUncorrectable, map[string]string{"cause": err.Error()}),
			"retransmit the word or use a code with a larger minimum distance",
		)
	case eccerr.Is(err, rs.ErrDistance), eccerr.Is(err, bch.ErrDistance),
		eccerr.Is(err, field.ErrInvalidSize), eccerr.Is(err, field.ErrNotPrimitive),
		eccerr.Is(err, concat.ErrIncompatible):
		return eccerr.WithDetails(eccerr.ErrInvalidParameters, map[string]string{"cause": err.Error()})
	case eccerr.Is(err, rs.ErrMessageTooLong), eccerr.Is(err, rs.ErrWrongLength),
		eccerr.Is(err, bch.ErrMessageTooLong), eccerr.Is(err, bch.ErrWrongLength),
		eccerr.Is(err, concat.ErrWrongLength):
		return eccerr.WithDetails(eccerr.ErrInvalidInput, map[string]string{"cause": err.Error()})
	default:
		return eccerr.Wrap(err, "coding operation failed")
	}
}

// parseSymbols parses decimal or 0x-prefixed symbol values into elements
// of f, rejecting values outside the field.
func parseSymbols(f *field.Field, args []string) ([]field.Element, error) {
	symbols := make([]field.Element, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(strings.TrimSpace(arg), 0, 32)
		if err != nil || v >= uint64(f.Size()) {
			return nil, eccerr.WithDetails(eccerr.ErrInvalidInput, map[string]string{
				"symbol": arg,
				"valid":  fmt.Sprintf("0 .. %d", f.Size()-1),
			})
		}
		symbols[i] = f.ElementFromValue(uint32(v))
	}
	return symbols, nil
}

// formatSymbols renders elements as space-separated decimal values.
func formatSymbols(symbols []field.Element) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = strconv.FormatUint(uint64(s.Value()), 10)
	}
	return strings.Join(parts, " ")
}

// parseBits parses a binary string like 11011 (or 0x-prefixed hex) into a
// bit-vector polynomial.
func parseBits(s string) (gf2.Poly, error) {
	s = strings.TrimSpace(s)
	base := 2
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return gf2.Zero, eccerr.WithDetails(eccerr.ErrInvalidInput, map[string]string{"word": s})
	}
	return gf2.Poly(v), nil
}

// closest returns the candidate with the smallest edit distance to the
// input, for "did you mean" suggestions on unknown keys.
func closest(input string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(input, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
