// Package bch implements binary BCH codes of length 2^m - 1. The
// generator polynomial is the least common multiple of the minimal
// polynomials of alpha^1 .. alpha^(d-1), encoding is systematic (message
// bits ride in the high positions, parity in the low positions), and
// decoding solves Peterson's syndrome system for the error locator before
// a Chien search pins down the flipped bits. Because the code is binary,
// locating an error is correcting it.
package bch

import (
	"fmt"

	"github.com/mrz1836/go-ecc/pkg/field"
	"github.com/mrz1836/go-ecc/pkg/gf2"
	"github.com/mrz1836/go-ecc/pkg/matrix"
)

// MaxM bounds the field size: codewords are gf2.Poly bit-vectors, so the
// code length 2^m - 1 must fit in 31 bits of headroom.
const MaxM = 5

// Codec is a binary BCH code over GF(2^m) with design distance d.
type Codec struct {
	fd        *field.Field
	n         int // codeword length 2^m - 1
	k         int // message dimension n - deg(generator)
	d         int // design distance
	t         int // correction radius floor((d-1)/2)
	generator gf2.Poly
}

// New constructs a BCH codec over f with the given design distance.
func New(f *field.Field, distance int) (*Codec, error) {
	if f.M() > MaxM {
		return nil, fmt.Errorf("field size %d exceeds %d: %w", f.M(), MaxM, ErrDistance)
	}
	n := f.Order()
	if distance < 2 || distance > n {
		return nil, fmt.Errorf("distance %d for length %d: %w", distance, n, ErrDistance)
	}

	// g(x) = lcm of the minimal polynomials of alpha^1 .. alpha^(d-1).
	// Conjugate powers share a minimal polynomial, so the lcm collapses
	// the duplicates.
	generator := gf2.One
	for i := 1; i < distance; i++ {
		generator = generator.Lcm(f.Exp(i).MinimalPoly())
	}

	k := n - generator.Degree()
	if k < 1 {
		return nil, fmt.Errorf("generator degree %d leaves no message bits in length %d: %w",
			generator.Degree(), n, ErrDistance)
	}
	return &Codec{
		fd:        f,
		n:         n,
		k:         k,
		d:         distance,
		t:         (distance - 1) / 2,
		generator: generator,
	}, nil
}

// Field returns the codec's field context.
func (c *Codec) Field() *field.Field { return c.fd }

// N returns the codeword length in bits.
func (c *Codec) N() int { return c.n }

// K returns the message dimension in bits.
func (c *Codec) K() int { return c.k }

// D returns the design distance.
func (c *Codec) D() int { return c.d }

// T returns the guaranteed correction radius floor((d-1)/2).
func (c *Codec) T() int { return c.t }

// Generator returns the generator polynomial.
func (c *Codec) Generator() gf2.Poly { return c.generator }

// Encode maps a message of up to k bits to a systematic codeword:
// message * x^deg(g) minus its remainder modulo g, which makes the result
// divisible by the generator while keeping the message bits intact.
func (c *Codec) Encode(message gf2.Poly) (gf2.Poly, error) {
	if message.Degree()+1 > c.k {
		return gf2.Zero, fmt.Errorf("message of %d bits, dimension %d: %w", message.Degree()+1, c.k, ErrMessageTooLong)
	}
	padded := message.Mul(gf2.One << c.generator.Degree())
	return padded.Sub(padded.Mod(c.generator)), nil
}

// Decode corrects up to t bit errors in a received word and returns the
// message bits. It fails with ErrTooManyErrors when no error pattern
// within the radius is consistent with the syndromes.
func (c *Codec) Decode(received gf2.Poly) (gf2.Poly, error) {
	if received.Degree() >= c.n {
		return gf2.Zero, fmt.Errorf("received degree %d for length %d: %w", received.Degree(), c.n, ErrWrongLength)
	}

	// Lift the bits into the extension field to evaluate syndromes
	// S_j = r(alpha^j) for j = 1..d-1.
	coeffs := make([]field.Element, c.n)
	for i := 0; i < c.n; i++ {
		coeffs[i] = c.fd.ElementFromValue(received.Bit(i))
	}
	word := field.NewPoly(c.fd, coeffs...)

	syndromes := make([]field.Element, c.d-1)
	clean := true
	for j := 1; j < c.d; j++ {
		syndromes[j-1] = word.Eval(c.fd.Exp(j))
		if !syndromes[j-1].IsZero() {
			clean = false
		}
	}
	if clean {
		return gf2.Poly(uint32(received) >> c.generator.Degree()), nil
	}

	pattern, err := c.errorPattern(syndromes)
	if err != nil {
		return gf2.Zero, err
	}
	corrected := received.Add(pattern)
	return gf2.Poly(uint32(corrected) >> c.generator.Degree()), nil
}

// errorPattern solves Peterson's system for each error-count hypothesis
// v = t..1: the Hankel matrix of syndromes against the next v syndromes
// yields the locator coefficients when v matches the true error count,
// and is singular for larger v. The reversed locator's roots are the
// error positions alpha^i directly.
func (c *Codec) errorPattern(syndromes []field.Element) (gf2.Poly, error) {
	f := c.fd
	for v := c.t; v >= 1; v-- {
		m := matrix.New(f, v, v)
		rhs := make([]field.Element, v)
		for i := 0; i < v; i++ {
			for j := 0; j < v; j++ {
				m.Set(i, j, syndromes[i+j])
			}
			rhs[i] = syndromes[v+i]
		}

		solution, err := m.Solve(rhs)
		if err != nil {
			continue
		}

		// solution is (sigma_v .. sigma_1); appending the monic leading
		// term gives the locator with roots at the error locations.
		locator := field.NewPoly(f, append(solution, f.One())...)
		positions := c.chienSearch(locator)
		if len(positions) != v {
			continue
		}

		var pattern gf2.Poly
		for _, pos := range positions {
			pattern |= gf2.One << pos
		}
		if c.patternMatches(pattern, syndromes) {
			return pattern, nil
		}
	}
	return gf2.Zero, ErrTooManyErrors
}

// chienSearch returns the positions i whose locator evaluation at
// alpha^i vanishes.
func (c *Codec) chienSearch(locator field.Poly) []int {
	var positions []int
	for i := 0; i < c.n; i++ {
		if locator.Eval(c.fd.Exp(i)).IsZero() {
			positions = append(positions, i)
		}
	}
	return positions
}

// patternMatches verifies that flipping the pattern's bits reproduces
// every syndrome, rejecting locator hypotheses that only partially
// explain the received word.
func (c *Codec) patternMatches(pattern gf2.Poly, syndromes []field.Element) bool {
	for j := 1; j < c.d; j++ {
		s := c.fd.Zero()
		for i := 0; i < c.n; i++ {
			if pattern.Bit(i) != 0 {
				s = s.Add(c.fd.Exp(j * i))
			}
		}
		if !s.Equal(syndromes[j-1]) {
			return false
		}
	}
	return true
}
