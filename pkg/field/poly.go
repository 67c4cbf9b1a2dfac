package field

import (
	"fmt"
	"strings"
)

// Poly is a polynomial with coefficients in a single GF(2^m) field.
// Coefficient i holds the term of x^i. The stored length is preserved so a
// codeword keeps its positional symbols even when high coefficients are
// zero; Degree and Equal look through trailing zeros, and Trim produces
// the canonical form with no trailing zero coefficients.
type Poly struct {
	fd     *Field
	coeffs []Element
}

// NewPoly builds a polynomial from coefficients in ascending-degree order.
// The coefficient slice is copied. Coefficients from a different field
// panic, matching Element semantics.
func NewPoly(f *Field, coeffs ...Element) Poly {
	cs := make([]Element, len(coeffs))
	for i, c := range coeffs {
		f.check(c)
		cs[i] = c
	}
	return Poly{fd: f, coeffs: cs}
}

// NewPolyFromValues builds a polynomial from raw bit patterns, reducing
// each into the field.
func NewPolyFromValues(f *Field, values ...uint32) Poly {
	cs := make([]Element, len(values))
	for i, v := range values {
		cs[i] = f.ElementFromValue(v)
	}
	return Poly{fd: f, coeffs: cs}
}

// ZeroPoly returns the zero polynomial over f.
func ZeroPoly(f *Field) Poly {
	return Poly{fd: f}
}

// Field returns the coefficient field.
func (p Poly) Field() *Field { return p.fd }

// Len returns the stored coefficient count, including trailing zeros.
func (p Poly) Len() int { return len(p.coeffs) }

// Degree returns the degree of p, ignoring trailing zero coefficients,
// or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if !p.coeffs[i].IsZero() {
			return i
		}
	}
	return -1
}

// IsZero reports whether every coefficient is zero.
func (p Poly) IsZero() bool { return p.Degree() < 0 }

// Coeff returns the coefficient of x^i; indexes past the stored length
// read as zero.
func (p Poly) Coeff(i int) Element {
	if i < 0 || i >= len(p.coeffs) {
		return p.fd.Zero()
	}
	return p.coeffs[i]
}

// Coeffs returns a copy of the stored coefficients.
func (p Poly) Coeffs() []Element {
	out := make([]Element, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Lead returns the leading (highest-degree non-zero) coefficient, or zero
// for the zero polynomial.
func (p Poly) Lead() Element {
	d := p.Degree()
	if d < 0 {
		return p.fd.Zero()
	}
	return p.coeffs[d]
}

// Trim returns the canonical form of p with trailing zero coefficients
// removed. The zero polynomial trims to an empty coefficient sequence.
func (p Poly) Trim() Poly {
	return Poly{fd: p.fd, coeffs: p.coeffs[:p.Degree()+1]}
}

// Equal reports whether p and q represent the same polynomial, regardless
// of trailing zeros.
func (p Poly) Equal(q Poly) bool {
	if p.fd != q.fd {
		panic("field: polynomials over different fields")
	}
	d := p.Degree()
	if d != q.Degree() {
		return false
	}
	for i := 0; i <= d; i++ {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates p at x by Horner's method, costing one add and one
// multiply per coefficient.
func (p Poly) Eval(x Element) Element {
	p.fd.check(x)
	if len(p.coeffs) == 0 {
		return p.fd.Zero()
	}
	acc := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Add returns p + q, trimmed to canonical form.
func (p Poly) Add(q Poly) Poly {
	if p.fd != q.fd {
		panic("field: polynomials over different fields")
	}
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]Element, n)
	for i := range out {
		out[i] = p.Coeff(i).Add(q.Coeff(i))
	}
	return Poly{fd: p.fd, coeffs: out}.Trim()
}

// Sub returns p - q, identical to Add in characteristic 2.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q)
}

// Mul returns the product of p and q by convolving coefficient sequences,
// trimmed to canonical form.
func (p Poly) Mul(q Poly) Poly {
	if p.fd != q.fd {
		panic("field: polynomials over different fields")
	}
	dp, dq := p.Degree(), q.Degree()
	if dp < 0 || dq < 0 {
		return ZeroPoly(p.fd)
	}
	out := make([]Element, dp+dq+1)
	for i := range out {
		out[i] = p.fd.Zero()
	}
	for i := 0; i <= dp; i++ {
		if p.coeffs[i].IsZero() {
			continue
		}
		for j := 0; j <= dq; j++ {
			out[i+j] = out[i+j].Add(p.coeffs[i].Mul(q.coeffs[j]))
		}
	}
	return Poly{fd: p.fd, coeffs: out}
}

// MulScalar returns p with every coefficient multiplied by c.
func (p Poly) MulScalar(c Element) Poly {
	p.fd.check(c)
	out := make([]Element, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a.Mul(c)
	}
	return Poly{fd: p.fd, coeffs: out}.Trim()
}

// MulX returns p * x^n, shifting every coefficient up by n places.
func (p Poly) MulX(n int) Poly {
	d := p.Degree()
	if d < 0 {
		return ZeroPoly(p.fd)
	}
	out := make([]Element, d+1+n)
	for i := 0; i < n; i++ {
		out[i] = p.fd.Zero()
	}
	copy(out[n:], p.coeffs[:d+1])
	return Poly{fd: p.fd, coeffs: out}
}

// DivMod divides p by q with schoolbook long division, returning quotient
// and remainder with deg(remainder) < deg(q). A zero divisor yields
// ErrDivisionByZero.
func (p Poly) DivMod(q Poly) (quotient, remainder Poly, err error) {
	if p.fd != q.fd {
		panic("field: polynomials over different fields")
	}
	dq := q.Degree()
	if dq < 0 {
		return Poly{}, Poly{}, fmt.Errorf("polynomial division: %w", ErrDivisionByZero)
	}
	dp := p.Degree()
	if dp < dq {
		return ZeroPoly(p.fd), p.Trim(), nil
	}

	// The divisor's leading coefficient is non-zero here, so the inverse
	// cannot fail.
	leadInv, _ := q.coeffs[dq].Inverse()

	rem := make([]Element, dp+1)
	copy(rem, p.coeffs[:dp+1])
	quot := make([]Element, dp-dq+1)
	for i := range quot {
		quot[i] = p.fd.Zero()
	}

	for i := dp; i >= dq; i-- {
		if rem[i].IsZero() {
			continue
		}
		factor := rem[i].Mul(leadInv)
		quot[i-dq] = factor
		for j := 0; j <= dq; j++ {
			rem[i-dq+j] = rem[i-dq+j].Add(factor.Mul(q.coeffs[j]))
		}
	}
	return Poly{fd: p.fd, coeffs: quot}.Trim(), Poly{fd: p.fd, coeffs: rem[:dq]}.Trim(), nil
}

// Mod returns the remainder of p divided by q.
func (p Poly) Mod(q Poly) (Poly, error) {
	_, rem, err := p.DivMod(q)
	return rem, err
}

// TruncateTo returns p mod x^n: the low n coefficients, trimmed.
func (p Poly) TruncateTo(n int) Poly {
	if n >= len(p.coeffs) {
		return p.Trim()
	}
	if n < 0 {
		n = 0
	}
	out := make([]Element, n)
	copy(out, p.coeffs[:n])
	return Poly{fd: p.fd, coeffs: out}.Trim()
}

// Derivative returns the formal derivative of p. In characteristic 2 the
// term i*a_i*x^(i-1) survives only for odd i, where the integer factor
// reduces to 1.
func (p Poly) Derivative() Poly {
	d := p.Degree()
	if d < 1 {
		return ZeroPoly(p.fd)
	}
	out := make([]Element, d)
	for i := range out {
		out[i] = p.fd.Zero()
	}
	for i := 1; i <= d; i += 2 {
		out[i-1] = p.coeffs[i]
	}
	return Poly{fd: p.fd, coeffs: out}.Trim()
}

// String renders the polynomial as a coefficient list, lowest degree first.
func (p Poly) String() string {
	if p.IsZero() {
		return "[0]"
	}
	parts := make([]string, p.Degree()+1)
	for i := range parts {
		parts[i] = p.coeffs[i].String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through the points (xs[i], ys[i]), built from the Lagrange basis. The x
// coordinates must be pairwise distinct.
func Interpolate(f *Field, xs, ys []Element) (Poly, error) {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return Poly{}, fmt.Errorf("interpolate: %d x values for %d y values: %w", len(xs), len(ys), ErrInterpolation)
	}

	result := make([]Element, n)
	for i := range result {
		result[i] = f.Zero()
	}

	for i := 0; i < n; i++ {
		// Denominator prod_{j != i} (xs[i] - xs[j]).
		denom := f.One()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := xs[i].Sub(xs[j])
			if d.IsZero() {
				return Poly{}, fmt.Errorf("interpolate: duplicate point %s: %w", xs[i], ErrInterpolation)
			}
			denom = denom.Mul(d)
		}
		factor, err := ys[i].Div(denom)
		if err != nil {
			return Poly{}, err
		}
		if factor.IsZero() {
			continue
		}

		// Numerator basis prod_{j != i} (x - xs[j]), scaled by factor.
		basis := NewPoly(f, factor)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			basis = basis.Mul(NewPoly(f, xs[j], f.One()))
		}
		for k := 0; k <= basis.Degree() && k < n; k++ {
			result[k] = result[k].Add(basis.Coeff(k))
		}
	}
	return Poly{fd: f, coeffs: result}.Trim(), nil
}
