package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyDegreeAndLen(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	// Trailing zeros count toward Len but not Degree.
	p := NewPolyFromValues(f, 3, 0, 5, 0, 0)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 2, p.Degree())

	assert.Equal(t, -1, ZeroPoly(f).Degree())
	assert.True(t, ZeroPoly(f).IsZero())

	trimmed := p.Trim()
	assert.Equal(t, 3, trimmed.Len())
	assert.True(t, trimmed.Equal(p))
}

func TestPolyCoeffOutOfRange(t *testing.T) {
	t.Parallel()

	f := gf16(t)
	p := NewPolyFromValues(f, 1, 2)

	assert.True(t, p.Coeff(5).IsZero())
	assert.True(t, p.Coeff(-1).IsZero())
	assert.Equal(t, uint32(2), p.Coeff(1).Value())
}

func TestPolyEval(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	// p(x) = 3 + x + 5x^2 at alpha: 3 + 2 + 5*4.
	p := NewPolyFromValues(f, 3, 1, 5)
	alpha := f.Alpha()
	want := f.ElementFromValue(3).
		Add(alpha).
		Add(f.ElementFromValue(5).Mul(alpha).Mul(alpha))
	assert.True(t, p.Eval(alpha).Equal(want))

	// Evaluation at zero reads the constant term.
	assert.Equal(t, uint32(3), p.Eval(f.Zero()).Value())
	assert.True(t, ZeroPoly(f).Eval(alpha).IsZero())
}

func TestPolyAddSub(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	p := NewPolyFromValues(f, 1, 2, 3)
	q := NewPolyFromValues(f, 5, 2)

	sum := p.Add(q)
	assert.Equal(t, uint32(4), sum.Coeff(0).Value())
	assert.Equal(t, uint32(0), sum.Coeff(1).Value())
	assert.Equal(t, uint32(3), sum.Coeff(2).Value())

	// Addition cancels to zero; Sub is the same operation.
	assert.True(t, p.Add(p).IsZero())
	assert.True(t, p.Sub(q).Equal(sum))
}

func TestPolyMul(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	// (1 + x)(1 + x) = 1 + x^2 in characteristic 2.
	p := NewPolyFromValues(f, 1, 1)
	square := p.Mul(p)
	assert.True(t, square.Equal(NewPolyFromValues(f, 1, 0, 1)))

	assert.True(t, p.Mul(ZeroPoly(f)).IsZero())

	// Degree adds on multiplication.
	q := NewPolyFromValues(f, 7, 0, 0, 2)
	assert.Equal(t, p.Degree()+q.Degree(), p.Mul(q).Degree())
}

func TestPolyMulScalarAndMulX(t *testing.T) {
	t.Parallel()

	f := gf16(t)
	p := NewPolyFromValues(f, 1, 2, 3)

	doubled := p.MulScalar(f.ElementFromValue(2))
	assert.Equal(t, uint32(2), doubled.Coeff(0).Value())
	assert.Equal(t, uint32(4), doubled.Coeff(1).Value())
	assert.Equal(t, uint32(6), doubled.Coeff(2).Value())

	shifted := p.MulX(2)
	assert.Equal(t, 4, shifted.Degree())
	assert.True(t, shifted.Coeff(0).IsZero())
	assert.True(t, shifted.Coeff(1).IsZero())
	assert.Equal(t, uint32(1), shifted.Coeff(2).Value())
}

func TestPolyDivMod(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	t.Run("RoundTrip", func(t *testing.T) {
		t.Parallel()
		p := NewPolyFromValues(f, 7, 3, 0, 9, 1)
		q := NewPolyFromValues(f, 2, 5, 1)

		quot, rem, err := p.DivMod(q)
		require.NoError(t, err)
		assert.Less(t, rem.Degree(), q.Degree())
		assert.True(t, quot.Mul(q).Add(rem).Equal(p))
	})

	t.Run("SmallerDividend", func(t *testing.T) {
		t.Parallel()
		p := NewPolyFromValues(f, 4)
		q := NewPolyFromValues(f, 1, 1, 1)

		quot, rem, err := p.DivMod(q)
		require.NoError(t, err)
		assert.True(t, quot.IsZero())
		assert.True(t, rem.Equal(p))
	})

	t.Run("ZeroDivisor", func(t *testing.T) {
		t.Parallel()
		p := NewPolyFromValues(f, 1, 2)
		_, _, err := p.DivMod(ZeroPoly(f))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestPolyTruncateTo(t *testing.T) {
	t.Parallel()

	f := gf16(t)
	p := NewPolyFromValues(f, 1, 2, 3, 4)

	low := p.TruncateTo(2)
	assert.Equal(t, 1, low.Degree())
	assert.Equal(t, uint32(2), low.Coeff(1).Value())

	assert.True(t, p.TruncateTo(10).Equal(p))
	assert.True(t, p.TruncateTo(0).IsZero())
}

func TestPolyDerivative(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	// d/dx (a + bx + cx^2 + dx^3) = b + dx^2: odd terms survive.
	p := NewPolyFromValues(f, 9, 7, 6, 5)
	d := p.Derivative()
	assert.Equal(t, uint32(7), d.Coeff(0).Value())
	assert.True(t, d.Coeff(1).IsZero())
	assert.Equal(t, uint32(5), d.Coeff(2).Value())

	assert.True(t, NewPolyFromValues(f, 3).Derivative().IsZero())
	assert.True(t, ZeroPoly(f).Derivative().IsZero())
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	t.Run("RecoversPolynomial", func(t *testing.T) {
		t.Parallel()
		p := NewPolyFromValues(f, 3, 0, 5, 1)

		xs := make([]Element, 6)
		ys := make([]Element, 6)
		for i := range xs {
			xs[i] = f.Exp(i)
			ys[i] = p.Eval(xs[i])
		}

		got, err := Interpolate(f, xs, ys)
		require.NoError(t, err)
		assert.True(t, got.Equal(p))
	})

	t.Run("DuplicatePoints", func(t *testing.T) {
		t.Parallel()
		xs := []Element{f.One(), f.One()}
		ys := []Element{f.Zero(), f.Zero()}
		_, err := Interpolate(f, xs, ys)
		require.ErrorIs(t, err, ErrInterpolation)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		t.Parallel()
		_, err := Interpolate(f, []Element{f.One()}, nil)
		require.ErrorIs(t, err, ErrInterpolation)
	})

	t.Run("SinglePoint", func(t *testing.T) {
		t.Parallel()
		got, err := Interpolate(f, []Element{f.Alpha()}, []Element{f.ElementFromValue(9)})
		require.NoError(t, err)
		assert.Equal(t, uint32(9), got.Coeff(0).Value())
		assert.LessOrEqual(t, got.Degree(), 0)
	})
}
