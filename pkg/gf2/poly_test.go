package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Poly
		want int
	}{
		{"Zero", Zero, -1},
		{"One", One, 0},
		{"X", 0b10, 1},
		{"Cubic", 0b1011, 3},
		{"Degree31", 1 << 31, 31},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.p.Degree())
		})
	}
}

func TestAddIsXor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Poly(0b011), Poly(0b101).Add(0b110))
	assert.Equal(t, Poly(0b101), Poly(0b101).Add(Zero))
	assert.Equal(t, Zero, Poly(0b101).Add(0b101))
	// Subtraction is the same operation in characteristic 2.
	assert.Equal(t, Poly(0b101).Add(0b110), Poly(0b101).Sub(0b110))
}

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Poly
		want Poly
	}{
		{"ByZero", 0b101, Zero, Zero},
		{"ByOne", 0b101, One, 0b101},
		{"SquarePlusOneTimesXSquarePlusX", 0b101, 0b110, 0b11110},
		{"SquarePlusOneTimesFull", 0b101, 0b111, 0b11011},
		{"XTimesX", 0b10, 0b10, 0b100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Mul(tt.b))
			assert.Equal(t, tt.want, tt.b.Mul(tt.a))
		})
	}
}

func TestDivMod(t *testing.T) {
	t.Parallel()

	t.Run("QuotientAndRemainder", func(t *testing.T) {
		t.Parallel()
		quot, rem := Poly(0b11011).DivMod(0b101)
		assert.Equal(t, Poly(0b111), quot)
		assert.Equal(t, Zero, rem)
	})

	t.Run("RemainderDegreeBelowDivisor", func(t *testing.T) {
		t.Parallel()
		for p := Poly(0); p < 256; p++ {
			for q := Poly(1); q < 32; q++ {
				quot, rem := p.DivMod(q)
				assert.Less(t, rem.Degree(), q.Degree(), "p=%s q=%s", p, q)
				assert.Equal(t, p, quot.Mul(q).Add(rem), "p=%s q=%s", p, q)
			}
		}
	})

	t.Run("ZeroDivisorPanics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { Poly(0b101).DivMod(Zero) })
	})
}

func TestPow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, One, Poly(0b10).Pow(0))
	assert.Equal(t, Poly(0b100), Poly(0b10).Pow(2))
	assert.Equal(t, Poly(0b10000), Poly(0b10).Pow(4))
	assert.Equal(t, Zero, Zero.Pow(3))
}

func TestGcdLcm(t *testing.T) {
	t.Parallel()

	t.Run("Gcd", func(t *testing.T) {
		t.Parallel()
		a := Poly(0b101).Mul(0b111)
		b := Poly(0b101).Mul(0b11)
		assert.Equal(t, Poly(0b101), a.Gcd(b))
		assert.Equal(t, Zero, Zero.Gcd(Zero))
		assert.Equal(t, Poly(0b11), Zero.Gcd(0b11))
	})

	t.Run("Lcm", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Poly(0b101).Mul(0b111), Poly(0b101).Lcm(0b111))
		// Lcm of a polynomial with itself is itself.
		assert.Equal(t, Poly(0b1011), Poly(0b1011).Lcm(0b1011))
		assert.Equal(t, Zero, Poly(0b101).Lcm(Zero))
	})
}

func TestEval(t *testing.T) {
	t.Parallel()

	// x^2 + 1 has an even number of terms: zero at x=1.
	assert.Equal(t, uint32(0), Poly(0b101).Eval(1))
	// x^2 + x + 1 has odd parity: one at x=1.
	assert.Equal(t, uint32(1), Poly(0b111).Eval(1))
	// At x=0 only the constant term matters.
	assert.Equal(t, uint32(1), Poly(0b111).Eval(0))
	assert.Equal(t, uint32(0), Poly(0b110).Eval(0))
}

func TestIrreducible(t *testing.T) {
	t.Parallel()

	// Smallest irreducible polynomials per degree, matching standard tables.
	tests := []struct {
		degree int
		want   Poly
	}{
		{1, 0b10},
		{2, 0b111},
		{3, 0b1011},
		{4, 0b10011},
		{5, 0b100101},
		{8, 0b100011011},
	}

	for _, tt := range tests {
		got := Irreducible(tt.degree)
		require.Equal(t, tt.want, got, "degree %d", tt.degree)
		assert.Equal(t, tt.degree, got.Degree())
	}

	assert.Equal(t, Zero, Irreducible(0))
}

func TestIrreducibleHasNoSmallFactors(t *testing.T) {
	t.Parallel()

	p := Irreducible(10)
	require.Equal(t, 10, p.Degree())
	for q := Poly(2); q.Degree() <= 5; q++ {
		assert.False(t, p.Mod(q).IsZero(), "divisible by %s", q)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10011", Poly(0b10011).String())
	assert.Equal(t, "0", Zero.String())
}
