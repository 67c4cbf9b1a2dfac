// Package field implements arithmetic in the Galois fields GF(2^m) for
// m between 1 and 16. A field is an explicit immutable context value: the
// irreducible modulus, a primitive element, and log/antilog tables built
// once at construction. Elements and polynomials carry a reference to
// their field, so no package-level state exists and independent fields
// can be used side by side.
//
// Multiplication and inversion go through the log/antilog tables: every
// non-zero element is alpha^i for the field's primitive element alpha, so
// a*b = alpha^(log a + log b) and a^-1 = alpha^(order - log a). The tables
// are read-only after construction and safe for concurrent use.
package field

import (
	"fmt"

	"github.com/mrz1836/go-ecc/pkg/gf2"
)

// MaxM is the largest supported field size exponent. Field elements are
// residues of uint32-backed polynomials, and products of two degree-15
// residues still fit in 32 bits before reduction.
const MaxM = 16

// Field is an immutable GF(2^m) context. Construct one with New or
// NewWithParams and share it by reference; all methods are safe for
// concurrent use once the constructor returns.
type Field struct {
	m         int
	modulus   gf2.Poly // irreducible polynomial of degree m
	generator gf2.Poly // primitive element generating the multiplicative group
	order     int      // 2^m - 1

	logTbl []int32  // logTbl[v] = i such that generator^i = v; -1 for v = 0
	expTbl []uint32 // expTbl[i] = generator^i, doubled for wraparound
}

// New constructs GF(2^m) using the lexicographically smallest irreducible
// polynomial of degree m and the smallest primitive element for it.
func New(m int) (*Field, error) {
	if m < 1 || m > MaxM {
		return nil, fmt.Errorf("field size %d: %w", m, ErrInvalidSize)
	}
	modulus := gf2.Irreducible(m)

	// Probe candidates in value order; a primitive element always exists.
	// GF(2) has the trivial group, where 1 itself is the generator.
	for g := gf2.One; g < gf2.Poly(1)<<m; g++ {
		f, err := NewWithParams(m, modulus, g)
		if err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("field size %d: no primitive element modulo %s: %w", m, modulus, ErrNotPrimitive)
}

// NewWithParams constructs GF(2^m) from an explicit irreducible modulus and
// generator. It returns ErrNotPrimitive if the generator's multiplicative
// order is not 2^m - 1, and ErrInvalidSize if the modulus degree is not m.
func NewWithParams(m int, modulus, generator gf2.Poly) (*Field, error) {
	if m < 1 || m > MaxM {
		return nil, fmt.Errorf("field size %d: %w", m, ErrInvalidSize)
	}
	if modulus.Degree() != m {
		return nil, fmt.Errorf("modulus %s has degree %d, want %d: %w", modulus, modulus.Degree(), m, ErrInvalidSize)
	}

	f := &Field{
		m:         m,
		modulus:   modulus,
		generator: generator.Mod(modulus),
		order:     (1 << m) - 1,
	}
	if err := f.buildTables(); err != nil {
		return nil, err
	}
	return f, nil
}

// buildTables walks the cyclic multiplicative group generated by the
// field's generator, recording the exponent-to-element bijection. Hitting
// the identity before all 2^m - 1 non-zero elements were visited means the
// generator's order is too small.
func (f *Field) buildTables() error {
	f.logTbl = make([]int32, f.order+1)
	f.expTbl = make([]uint32, 2*f.order)
	for i := range f.logTbl {
		f.logTbl[i] = -1
	}

	x := gf2.One
	for i := 0; i < f.order; i++ {
		if i > 0 && x == gf2.One {
			return fmt.Errorf("generator %s has order %d over modulus %s: %w",
				f.generator, i, f.modulus, ErrNotPrimitive)
		}
		f.expTbl[i] = uint32(x)
		f.expTbl[i+f.order] = uint32(x)
		f.logTbl[uint32(x)] = int32(i)
		x = x.Mul(f.generator).Mod(f.modulus)
	}
	if x != gf2.One {
		// The walk did not close back onto the identity, so either the
		// modulus is reducible or the generator lies outside the group.
		return fmt.Errorf("generator %s does not close the cycle over modulus %s: %w",
			f.generator, f.modulus, ErrNotPrimitive)
	}
	return nil
}

// M returns the field size exponent m.
func (f *Field) M() int { return f.m }

// Size returns the number of field elements, 2^m.
func (f *Field) Size() int { return f.order + 1 }

// Order returns the size of the multiplicative group, 2^m - 1.
func (f *Field) Order() int { return f.order }

// Modulus returns the irreducible polynomial defining the field.
func (f *Field) Modulus() gf2.Poly { return f.modulus }

// Generator returns the primitive element used for the tables.
func (f *Field) Generator() gf2.Poly { return f.generator }

// Element reduces an arbitrary binary polynomial into the field.
func (f *Field) Element(p gf2.Poly) Element {
	return Element{fd: f, v: uint32(p.Mod(f.modulus))}
}

// ElementFromValue reduces a raw bit pattern into the field.
func (f *Field) ElementFromValue(v uint32) Element {
	return f.Element(gf2.Poly(v))
}

// Zero returns the additive identity.
func (f *Field) Zero() Element { return Element{fd: f} }

// One returns the multiplicative identity.
func (f *Field) One() Element { return Element{fd: f, v: 1} }

// Alpha returns the field's primitive element as an Element.
func (f *Field) Alpha() Element { return Element{fd: f, v: uint32(f.generator)} }

// Exp returns alpha^i. Negative exponents wrap around the group order.
func (f *Field) Exp(i int) Element {
	idx := i % f.order
	if idx < 0 {
		idx += f.order
	}
	return Element{fd: f, v: f.expTbl[idx]}
}

// Log returns the discrete logarithm of e base alpha.
// It returns ErrDivisionByZero for the zero element, which has no logarithm.
func (f *Field) Log(e Element) (int, error) {
	f.check(e)
	if e.v == 0 {
		return 0, fmt.Errorf("log of zero: %w", ErrDivisionByZero)
	}
	return int(f.logTbl[e.v]), nil
}

// check panics when e belongs to a different field instance. Mixing
// elements across fields is a programming error, not a runtime condition.
func (f *Field) check(e Element) {
	if e.fd != f {
		panic("field: element belongs to a different field")
	}
}

// Element is a residue class of a binary polynomial modulo the field's
// irreducible polynomial. The zero value of the type is only valid as a
// product of Field constructors; operations on elements from different
// Field instances panic.
type Element struct {
	fd *Field
	v  uint32
}

// Field returns the field the element belongs to.
func (e Element) Field() *Field { return e.fd }

// Value returns the element's bit pattern (coefficients of its residue).
func (e Element) Value() uint32 { return e.v }

// Poly returns the element's residue as a binary polynomial.
func (e Element) Poly() gf2.Poly { return gf2.Poly(e.v) }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.v == 0 }

// Equal reports whether two elements of the same field are equal.
func (e Element) Equal(o Element) bool {
	e.fd.check(o)
	return e.v == o.v
}

// Add returns e + o. Addition in characteristic 2 is coefficient-wise XOR.
func (e Element) Add(o Element) Element {
	e.fd.check(o)
	return Element{fd: e.fd, v: e.v ^ o.v}
}

// Sub returns e - o, which equals e + o in characteristic 2.
func (e Element) Sub(o Element) Element {
	return e.Add(o)
}

// Mul returns e * o via the log/antilog tables.
func (e Element) Mul(o Element) Element {
	e.fd.check(o)
	if e.v == 0 || o.v == 0 {
		return Element{fd: e.fd}
	}
	f := e.fd
	return Element{fd: f, v: f.expTbl[f.logTbl[e.v]+f.logTbl[o.v]]}
}

// Inverse returns the multiplicative inverse of e, or ErrDivisionByZero
// when e is the additive identity.
func (e Element) Inverse() (Element, error) {
	if e.v == 0 {
		return Element{fd: e.fd}, ErrDivisionByZero
	}
	f := e.fd
	return Element{fd: f, v: f.expTbl[int32(f.order)-f.logTbl[e.v]]}, nil
}

// Div returns e / o, or ErrDivisionByZero when o is the additive identity.
func (e Element) Div(o Element) (Element, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Element{fd: e.fd}, err
	}
	return e.Mul(inv), nil
}

// Pow returns e^n. Negative exponents invert first; 0^0 is defined as 1
// and 0^n is 0 for positive n. 0 raised to a negative power panics, since
// the caller asked for an inverse of zero without an error path.
func (e Element) Pow(n int) Element {
	f := e.fd
	if e.v == 0 {
		if n == 0 {
			return f.One()
		}
		if n < 0 {
			panic("field: zero to a negative power")
		}
		return f.Zero()
	}
	logE := int64(f.logTbl[e.v])
	idx := (logE * int64(n)) % int64(f.order)
	if idx < 0 {
		idx += int64(f.order)
	}
	return Element{fd: f, v: f.expTbl[idx]}
}

// MinimalPoly returns the minimal polynomial of e over GF(2): the monic
// product of (x - c) over the conjugates c = e^(2^i). The coefficients of
// the product all lie in the prime subfield, so the result folds down to
// a binary polynomial. Used by the BCH generator construction.
func (e Element) MinimalPoly() gf2.Poly {
	f := e.fd

	// Collect the distinct conjugates e, e^2, e^4, ...
	seen := make(map[uint32]bool, f.m)
	conjugates := make([]Element, 0, f.m)
	c := e
	for i := 0; i < f.m; i++ {
		if !seen[c.v] {
			seen[c.v] = true
			conjugates = append(conjugates, c)
		}
		c = c.Mul(c)
	}

	// Multiply out prod (x + c) as a polynomial with field coefficients.
	prod := NewPoly(f, f.One())
	for _, c := range conjugates {
		prod = prod.Mul(NewPoly(f, c, f.One()))
	}

	// Fold to GF(2): each coefficient is 0 or 1 by Galois theory.
	var out gf2.Poly
	for i := 0; i <= prod.Degree(); i++ {
		out |= gf2.Poly(prod.Coeff(i).v&1) << i
	}
	return out
}

// String renders the element's bit pattern in binary.
func (e Element) String() string {
	return fmt.Sprintf("%b", e.v)
}
