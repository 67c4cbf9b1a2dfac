// Package rs implements a Reed-Solomon codec over GF(2^m) with evaluation
// encoding: the codeword is the tuple of the message polynomial's values
// at the n = 2^m - 1 points alpha^0 .. alpha^(n-1), where alpha is the
// field's primitive element. Decoding is syndrome based: Berlekamp-Massey
// derives the error locator, a Chien search finds its roots, Forney's
// formula produces the error magnitudes, and Lagrange interpolation
// inverts the evaluation map back to the message coefficients.
//
// A codec holds only its construction-time parameters and a reference to
// the immutable field context, so concurrent Encode/Decode calls need no
// coordination.
package rs

import (
	"fmt"

	"github.com/mrz1836/go-ecc/pkg/field"
)

// Codec is a Reed-Solomon code of length n = 2^m - 1, minimum distance d
// and dimension k = n - d + 1 over a GF(2^m) field.
type Codec struct {
	fd *field.Field
	n  int // codeword length
	k  int // message dimension
	d  int // minimum distance
	t  int // correction radius floor((d-1)/2)
}

// New constructs a codec over f with the given minimum distance.
// The distance must satisfy 1 <= d <= n.
func New(f *field.Field, distance int) (*Codec, error) {
	n := f.Order()
	if distance < 1 || distance > n {
		return nil, fmt.Errorf("distance %d for length %d: %w", distance, n, ErrDistance)
	}
	return &Codec{
		fd: f,
		n:  n,
		k:  n - distance + 1,
		d:  distance,
		t:  (distance - 1) / 2,
	}, nil
}

// Field returns the codec's field context.
func (c *Codec) Field() *field.Field { return c.fd }

// N returns the codeword length.
func (c *Codec) N() int { return c.n }

// K returns the message dimension.
func (c *Codec) K() int { return c.k }

// D returns the minimum distance.
func (c *Codec) D() int { return c.d }

// T returns the guaranteed correction radius floor((d-1)/2).
func (c *Codec) T() int { return c.t }

// Encode maps a message polynomial of degree < k to its codeword: symbol
// i is message evaluated at alpha^i. The returned polynomial always
// carries exactly n coefficients so symbol positions survive trailing
// zero values.
func (c *Codec) Encode(message field.Poly) (field.Poly, error) {
	if message.Degree() >= c.k {
		return field.Poly{}, fmt.Errorf("message degree %d, dimension %d: %w", message.Degree(), c.k, ErrMessageTooLong)
	}

	symbols := make([]field.Element, c.n)
	for i := 0; i < c.n; i++ {
		symbols[i] = message.Eval(c.fd.Exp(i))
	}
	return field.NewPoly(c.fd, symbols...), nil
}

// Decode corrects up to t symbol errors in a received word of exactly n
// symbols and returns the original message polynomial. Words with more
// than t errors fail with ErrTooManyErrors or ErrRootCountMismatch
// whenever the excess is detectable.
func (c *Codec) Decode(received field.Poly) (field.Poly, error) {
	if received.Len() != c.n {
		return field.Poly{}, fmt.Errorf("received %d symbols, want %d: %w", received.Len(), c.n, ErrWrongLength)
	}

	// Stage 1: syndromes S_j = r(alpha^j) for j = 1..d-1. A codeword
	// evaluates to zero on all of them.
	syndromes := make([]field.Element, c.d-1)
	clean := true
	for j := 1; j < c.d; j++ {
		syndromes[j-1] = received.Eval(c.fd.Exp(j))
		if !syndromes[j-1].IsZero() {
			clean = false
		}
	}
	if clean {
		return c.recoverMessage(received)
	}

	// Stage 2: error locator via Berlekamp-Massey.
	locator := c.berlekampMassey(syndromes)
	errCount := locator.Degree()
	if errCount > c.t {
		return field.Poly{}, fmt.Errorf("locator degree %d exceeds radius %d: %w", errCount, c.t, ErrTooManyErrors)
	}

	// Stage 3: Chien search. Every non-zero field element is alpha^(-i)
	// for exactly one position i, so scanning positions covers all
	// candidate roots.
	positions := c.chienSearch(locator)
	if len(positions) != errCount {
		return field.Poly{}, fmt.Errorf("%d roots for locator degree %d: %w", len(positions), errCount, ErrRootCountMismatch)
	}

	// Stages 4-5: Forney magnitudes and correction.
	corrected, err := c.correct(received, syndromes, locator, positions)
	if err != nil {
		return field.Poly{}, err
	}

	// The corrected word must be a codeword; a residual syndrome means
	// the error pattern was outside the decoding radius after all.
	for j := 1; j < c.d; j++ {
		if !corrected.Eval(c.fd.Exp(j)).IsZero() {
			return field.Poly{}, fmt.Errorf("corrected word fails syndrome check: %w", ErrTooManyErrors)
		}
	}

	return c.recoverMessage(corrected)
}

// berlekampMassey runs the discrepancy-driven recurrence over the
// syndrome sequence and returns the minimal locator polynomial
// Lambda(x) = prod (1 - X_i x), whose roots' reciprocals are the error
// locations.
func (c *Codec) berlekampMassey(syndromes []field.Element) field.Poly {
	f := c.fd
	locator := field.NewPoly(f, f.One())
	prev := field.NewPoly(f, f.One())

	for i := range syndromes {
		// Discrepancy: difference between the next syndrome and the
		// value the current locator predicts for it.
		delta := syndromes[i]
		for j := 1; j <= locator.Degree() && j <= i; j++ {
			delta = delta.Add(locator.Coeff(j).Mul(syndromes[i-j]))
		}

		prev = prev.MulX(1)
		if delta.IsZero() {
			continue
		}

		if prev.Degree() > locator.Degree() {
			// The correction term outgrew the locator: swap roles,
			// rescaling so the old locator can serve as the next
			// correction term.
			deltaInv, _ := delta.Inverse()
			locator, prev = prev.MulScalar(delta), locator.MulScalar(deltaInv)
		}
		locator = locator.Add(prev.MulScalar(delta))
	}
	return locator
}

// chienSearch returns every position i in 0..n-1 for which alpha^(-i) is
// a root of the locator.
func (c *Codec) chienSearch(locator field.Poly) []int {
	var positions []int
	for i := 0; i < c.n; i++ {
		if locator.Eval(c.fd.Exp(-i)).IsZero() {
			positions = append(positions, i)
		}
	}
	return positions
}

// correct computes error magnitudes with Forney's formula and adds them
// onto the received word. With syndromes starting at alpha^1 the formula
// is e_i = Omega(X_i^-1) / Lambda'(X_i^-1); characteristic 2 absorbs the
// textbook minus sign.
func (c *Codec) correct(received field.Poly, syndromes []field.Element, locator field.Poly, positions []int) (field.Poly, error) {
	f := c.fd

	// Error evaluator Omega(x) = S(x) * Lambda(x) mod x^(d-1).
	syndromePoly := field.NewPoly(f, syndromes...)
	omega := syndromePoly.Mul(locator).TruncateTo(c.d - 1)
	locatorPrime := locator.Derivative()

	symbols := received.Coeffs()
	for _, pos := range positions {
		xInv := f.Exp(-pos)
		denom := locatorPrime.Eval(xInv)
		magnitude, err := omega.Eval(xInv).Div(denom)
		if err != nil || magnitude.IsZero() {
			// A located error with no magnitude is inconsistent with the
			// locator; treat it like a failed root count.
			return field.Poly{}, fmt.Errorf("degenerate magnitude at position %d: %w", pos, ErrRootCountMismatch)
		}
		symbols[pos] = symbols[pos].Add(magnitude)
	}
	return field.NewPoly(f, symbols...), nil
}

// recoverMessage inverts the evaluation map: the corrected symbols are
// the message's values at alpha^0..alpha^(n-1), and the message has
// degree < k, so interpolating the first k points reconstructs it.
func (c *Codec) recoverMessage(codeword field.Poly) (field.Poly, error) {
	xs := make([]field.Element, c.k)
	ys := make([]field.Element, c.k)
	for i := 0; i < c.k; i++ {
		xs[i] = c.fd.Exp(i)
		ys[i] = codeword.Coeff(i)
	}
	message, err := field.Interpolate(c.fd, xs, ys)
	if err != nil {
		return field.Poly{}, fmt.Errorf("message recovery: %w", err)
	}
	return message, nil
}
