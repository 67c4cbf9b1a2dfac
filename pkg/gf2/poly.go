// Package gf2 implements polynomials over GF(2), the binary field.
// A polynomial is stored as a bit-vector: bit i is the coefficient of x^i.
// Addition is XOR, multiplication is carry-less shift-and-xor, and division
// is schoolbook long division. These polynomials are the raw material for
// the extension fields in pkg/field and the systematic encoding in pkg/bch.
package gf2

import (
	"fmt"
	"math/bits"
)

// Poly is a polynomial over GF(2) packed into a uint32.
// Bit i holds the coefficient of x^i, so the zero value is the zero
// polynomial. Poly supports degrees up to 31; products of two operands
// whose degrees sum past 31 overflow silently, which callers avoid by
// keeping field sizes at or below 16 bits.
type Poly uint32

// Zero is the zero polynomial.
const Zero Poly = 0

// One is the constant polynomial 1.
const One Poly = 1

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p == 0
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return bits.Len32(uint32(p)) - 1
}

// Bit returns the coefficient of x^i (0 or 1).
func (p Poly) Bit(i int) uint32 {
	return (uint32(p) >> i) & 1
}

// Add returns p + q. Coefficients add without carry, so this is XOR.
func (p Poly) Add(q Poly) Poly {
	return p ^ q
}

// Sub returns p - q. Subtraction equals addition in characteristic 2.
func (p Poly) Sub(q Poly) Poly {
	return p ^ q
}

// Mul returns the carry-less product p * q.
func (p Poly) Mul(q Poly) Poly {
	var result uint32
	a := uint32(p)
	b := uint32(q)
	for b > 0 {
		if b&1 != 0 {
			result ^= a
		}
		a <<= 1
		b >>= 1
	}
	return Poly(result)
}

// DivMod returns the quotient and remainder of p divided by q.
// Panics if q is the zero polynomial; at this layer a zero divisor is a
// programming error, not a recoverable condition.
func (p Poly) DivMod(q Poly) (quotient, remainder Poly) {
	if q.IsZero() {
		panic("gf2: division by zero polynomial")
	}

	var quot uint32
	rem := uint32(p)
	div := uint32(q)

	for rem != 0 && bits.Len32(rem) >= bits.Len32(div) {
		shift := bits.Len32(rem) - bits.Len32(div)
		quot ^= 1 << shift
		rem ^= div << shift
	}
	return Poly(quot), Poly(rem)
}

// Div returns the quotient of p / q.
func (p Poly) Div(q Poly) Poly {
	quot, _ := p.DivMod(q)
	return quot
}

// Mod returns the remainder of p / q.
func (p Poly) Mod(q Poly) Poly {
	_, rem := p.DivMod(q)
	return rem
}

// Pow returns p raised to the n-th power by repeated multiplication.
func (p Poly) Pow(n int) Poly {
	result := One
	for i := 0; i < n; i++ {
		result = result.Mul(p)
	}
	return result
}

// Gcd returns the greatest common divisor of p and q via the Euclidean
// algorithm. Gcd(0, 0) is 0.
func (p Poly) Gcd(q Poly) Poly {
	a, b := p, q
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

// Lcm returns the least common multiple of p and q.
func (p Poly) Lcm(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Zero
	}
	return p.Mul(q).Div(p.Gcd(q))
}

// Eval evaluates p at a GF(2) point (only the low bit of x matters).
// At x=1 every term contributes its coefficient, so the value is the
// parity of the coefficient count.
func (p Poly) Eval(x uint32) uint32 {
	if x&1 == 0 {
		return uint32(p) & 1
	}
	return uint32(bits.OnesCount32(uint32(p)) & 1)
}

// Irreducible returns the lexicographically smallest irreducible polynomial
// of the given degree, found by trial division against every lower-degree
// candidate. Degrees up to 16 stay fast; the result for common degrees
// matches the tables in standard references (e.g. x^4+x+1 for degree 4).
func Irreducible(degree int) Poly {
	if degree < 1 {
		return Zero
	}
	for candidate := Poly(1) << degree; candidate <= Poly(1)<<(degree+1); candidate++ {
		if candidate.irreducible() {
			return candidate
		}
	}
	return Zero
}

func (p Poly) irreducible() bool {
	for q := Poly(2); q.Degree() <= p.Degree()/2; q++ {
		if p.Mod(q).IsZero() {
			return false
		}
	}
	return true
}

// String renders p in binary with the highest-degree coefficient first.
func (p Poly) String() string {
	return fmt.Sprintf("%b", uint32(p))
}
