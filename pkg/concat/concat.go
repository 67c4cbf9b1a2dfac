// Package concat composes an outer Reed-Solomon code over GF(2^m) with an
// inner binary BCH code. Every outer codeword symbol is tagged with a
// marker bit and encoded by the inner code, so a transmitted message
// survives both scattered bit errors (fixed by the inner code) and whole
// corrupted symbols (fixed by the outer code).
package concat

import (
	"errors"
	"fmt"

	"github.com/mrz1836/go-ecc/pkg/bch"
	"github.com/mrz1836/go-ecc/pkg/field"
	"github.com/mrz1836/go-ecc/pkg/gf2"
	"github.com/mrz1836/go-ecc/pkg/rs"
)

// ErrIncompatible is returned when the inner code's dimension cannot hold
// an outer symbol plus the marker bit.
var ErrIncompatible = errors.New("inner code dimension too small for outer symbols")

// ErrWrongLength is returned when the number of inner words does not
// match the outer code length.
var ErrWrongLength = errors.New("wrong number of inner codewords")

// Code chains an outer Reed-Solomon codec with an inner BCH codec.
type Code struct {
	outer  *rs.Codec
	inner  *bch.Codec
	marker gf2.Poly // bit above the outer symbol width, keeps inner messages full length
}

// New validates that the inner code can carry one outer symbol plus the
// marker bit and returns the composed code.
func New(outer *rs.Codec, inner *bch.Codec) (*Code, error) {
	symbolBits := outer.Field().M()
	if symbolBits+1 > inner.K() {
		return nil, fmt.Errorf("outer symbols need %d bits, inner dimension is %d: %w",
			symbolBits+1, inner.K(), ErrIncompatible)
	}
	return &Code{
		outer:  outer,
		inner:  inner,
		marker: gf2.One << symbolBits,
	}, nil
}

// Outer returns the outer Reed-Solomon codec.
func (c *Code) Outer() *rs.Codec { return c.outer }

// Inner returns the inner BCH codec.
func (c *Code) Inner() *bch.Codec { return c.inner }

// Encode outer-encodes the message and inner-encodes each of the
// resulting symbols, returning one inner codeword per outer position.
func (c *Code) Encode(message field.Poly) ([]gf2.Poly, error) {
	codeword, err := c.outer.Encode(message)
	if err != nil {
		return nil, fmt.Errorf("outer encode: %w", err)
	}

	words := make([]gf2.Poly, c.outer.N())
	for i := range words {
		symbol := codeword.Coeff(i).Poly().Add(c.marker)
		if words[i], err = c.inner.Encode(symbol); err != nil {
			return nil, fmt.Errorf("inner encode symbol %d: %w", i, err)
		}
	}
	return words, nil
}

// Decode inner-decodes each word and outer-decodes the recovered symbol
// sequence. An inner word the BCH decoder gives up on falls back to its
// raw systematic bits; the outer code then treats the bad symbol as one
// of its correctable errors.
func (c *Code) Decode(words []gf2.Poly) (field.Poly, error) {
	if len(words) != c.outer.N() {
		return field.Poly{}, fmt.Errorf("%d inner codewords, want %d: %w", len(words), c.outer.N(), ErrWrongLength)
	}

	f := c.outer.Field()
	symbols := make([]field.Element, len(words))
	for i, w := range words {
		bits, err := c.inner.Decode(w)
		if err != nil {
			bits = gf2.Poly(uint32(w) >> c.inner.Generator().Degree())
		}
		// Strip the marker and anything above it; a mangled fallback
		// symbol is the outer code's problem.
		symbols[i] = f.ElementFromValue(uint32(bits) & (uint32(c.marker) - 1))
	}

	message, err := c.outer.Decode(field.NewPoly(f, symbols...))
	if err != nil {
		return field.Poly{}, fmt.Errorf("outer decode: %w", err)
	}
	return message, nil
}
