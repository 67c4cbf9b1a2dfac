package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/go-ecc/pkg/gf2"
)

// gf16 builds GF(2^4) with modulus x^4+x+1 and generator alpha = x.
func gf16(t *testing.T) *Field {
	t.Helper()
	f, err := NewWithParams(4, 0b10011, 0b10)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("SmallSizes", func(t *testing.T) {
		t.Parallel()
		for m := 1; m <= 10; m++ {
			f, err := New(m)
			require.NoError(t, err, "m=%d", m)
			assert.Equal(t, m, f.M())
			assert.Equal(t, 1<<m, f.Size())
			assert.Equal(t, (1<<m)-1, f.Order())
			assert.Equal(t, m, f.Modulus().Degree())
		}
	})

	t.Run("InvalidSize", func(t *testing.T) {
		t.Parallel()
		for _, m := range []int{0, -1, MaxM + 1} {
			_, err := New(m)
			require.ErrorIs(t, err, ErrInvalidSize, "m=%d", m)
		}
	})

	t.Run("DefaultGF16Modulus", func(t *testing.T) {
		t.Parallel()
		f, err := New(4)
		require.NoError(t, err)
		assert.Equal(t, gf2.Poly(0b10011), f.Modulus())
		assert.Equal(t, gf2.Poly(0b10), f.Generator())
	})
}

func TestNewWithParams(t *testing.T) {
	t.Parallel()

	t.Run("WrongModulusDegree", func(t *testing.T) {
		t.Parallel()
		_, err := NewWithParams(4, 0b1011, 0b10)
		require.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("NonPrimitiveGenerator", func(t *testing.T) {
		t.Parallel()
		// alpha^5 = 6 has order 3 and alpha^3 = 8 has order 5 in GF(16).
		for _, g := range []gf2.Poly{6, 8} {
			_, err := NewWithParams(4, 0b10011, g)
			require.ErrorIs(t, err, ErrNotPrimitive, "generator %d", g)
		}
	})

	t.Run("OneIsNotPrimitive", func(t *testing.T) {
		t.Parallel()
		_, err := NewWithParams(4, 0b10011, gf2.One)
		require.ErrorIs(t, err, ErrNotPrimitive)
	})
}

func TestAlphaPowers(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	// Hand-computed powers of alpha = x modulo x^4+x+1.
	want := []uint32{1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9}
	for i, v := range want {
		assert.Equal(t, v, f.Exp(i).Value(), "alpha^%d", i)
	}

	// Exponents wrap around the group order in both directions.
	assert.Equal(t, f.Exp(3).Value(), f.Exp(18).Value())
	assert.Equal(t, f.Exp(12).Value(), f.Exp(-3).Value())
}

func TestLog(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	for i := 0; i < f.Order(); i++ {
		log, err := f.Log(f.Exp(i))
		require.NoError(t, err)
		assert.Equal(t, i, log)
	}

	_, err := f.Log(f.Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestFieldLaws(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	for a := uint32(0); a < uint32(f.Size()); a++ {
		ea := f.ElementFromValue(a)

		// Additive and multiplicative identities.
		assert.True(t, ea.Add(f.Zero()).Equal(ea))
		assert.True(t, ea.Mul(f.One()).Equal(ea))

		// Every element is its own additive inverse.
		assert.True(t, ea.Add(ea).IsZero())

		for b := uint32(0); b < uint32(f.Size()); b++ {
			eb := f.ElementFromValue(b)

			// Commutativity.
			assert.True(t, ea.Add(eb).Equal(eb.Add(ea)))
			assert.True(t, ea.Mul(eb).Equal(eb.Mul(ea)))

			// Distributivity over a fixed third element.
			ec := f.Exp(7)
			left := ea.Add(eb).Mul(ec)
			right := ea.Mul(ec).Add(eb.Mul(ec))
			assert.True(t, left.Equal(right))
		}
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	for v := uint32(1); v < uint32(f.Size()); v++ {
		e := f.ElementFromValue(v)
		inv, err := e.Inverse()
		require.NoError(t, err)
		assert.True(t, e.Mul(inv).Equal(f.One()), "v=%d", v)
	}

	_, err := f.Zero().Inverse()
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDiv(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	a, b := f.ElementFromValue(9), f.ElementFromValue(5)
	q, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, q.Mul(b).Equal(a))

	_, err = a.Div(f.Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPow(t *testing.T) {
	t.Parallel()

	f := gf16(t)
	alpha := f.Alpha()

	assert.True(t, alpha.Pow(0).Equal(f.One()))
	assert.True(t, alpha.Pow(4).Equal(f.ElementFromValue(3)))
	assert.True(t, alpha.Pow(15).Equal(f.One()))

	// Negative exponent inverts.
	inv, err := alpha.Inverse()
	require.NoError(t, err)
	assert.True(t, alpha.Pow(-1).Equal(inv))

	// Zero base conventions.
	assert.True(t, f.Zero().Pow(0).Equal(f.One()))
	assert.True(t, f.Zero().Pow(5).IsZero())
	assert.Panics(t, func() { f.Zero().Pow(-1) })
}

func TestElementReduction(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	// x^4 reduces to x+1 modulo x^4+x+1.
	assert.Equal(t, uint32(0b11), f.ElementFromValue(0b10000).Value())
	// In-range values pass through.
	assert.Equal(t, uint32(13), f.ElementFromValue(13).Value())
}

func TestCrossFieldPanics(t *testing.T) {
	t.Parallel()

	f1 := gf16(t)
	f2, err := New(3)
	require.NoError(t, err)

	assert.Panics(t, func() { f1.One().Add(f2.One()) })
	assert.Panics(t, func() { f1.One().Mul(f2.One()) })
}

func TestMinimalPoly(t *testing.T) {
	t.Parallel()

	f := gf16(t)

	// Classic GF(16) minimal polynomial table for alpha^i.
	tests := []struct {
		exp  int
		want gf2.Poly
	}{
		{1, 0b10011},  // x^4+x+1
		{2, 0b10011},  // conjugate of alpha
		{3, 0b11111},  // x^4+x^3+x^2+x+1
		{5, 0b111},    // x^2+x+1
		{7, 0b11001},  // x^4+x^3+1
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Exp(tt.exp).MinimalPoly(), "alpha^%d", tt.exp)
	}

	// The minimal polynomial of zero is x, of one is x+1.
	assert.Equal(t, gf2.Poly(0b10), f.Zero().MinimalPoly())
	assert.Equal(t, gf2.Poly(0b11), f.One().MinimalPoly())
}
