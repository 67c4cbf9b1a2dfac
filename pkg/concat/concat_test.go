package concat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/go-ecc/pkg/bch"
	"github.com/mrz1836/go-ecc/pkg/field"
	"github.com/mrz1836/go-ecc/pkg/gf2"
	"github.com/mrz1836/go-ecc/pkg/rs"
)

// testCode pairs an outer (15, 13) Reed-Solomon code over GF(2^4) with
// the inner (15, 5) BCH code: 4 symbol bits plus the marker fill the
// inner dimension exactly.
func testCode(t *testing.T) *Code {
	t.Helper()
	f, err := field.New(4)
	require.NoError(t, err)

	outer, err := rs.New(f, 3)
	require.NoError(t, err)
	inner, err := bch.New(f, 7)
	require.NoError(t, err)

	code, err := New(outer, inner)
	require.NoError(t, err)
	return code
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("Compatible", func(t *testing.T) {
		t.Parallel()
		code := testCode(t)
		assert.Equal(t, 15, code.Outer().N())
		assert.Equal(t, 5, code.Inner().K())
	})

	t.Run("InnerTooSmall", func(t *testing.T) {
		t.Parallel()
		f, err := field.New(4)
		require.NoError(t, err)

		outer, err := rs.New(f, 3)
		require.NoError(t, err)
		// Distance 9 leaves the inner code a single message bit.
		inner, err := bch.New(f, 9)
		require.NoError(t, err)

		_, err = New(outer, inner)
		require.ErrorIs(t, err, ErrIncompatible)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	code := testCode(t)
	f := code.Outer().Field()

	words, err := code.Encode(field.NewPolyFromValues(f, 2, 3))
	require.NoError(t, err)
	require.Len(t, words, 15)

	for i, w := range words {
		// Every inner word is a valid BCH codeword whose message part
		// carries the marker bit above the symbol bits.
		bits, err := code.Inner().Decode(w)
		require.NoError(t, err, "word %d", i)
		assert.Equal(t, uint32(1), bits.Bit(4), "word %d marker", i)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	code := testCode(t)
	f := code.Outer().Field()

	message := field.NewPolyFromValues(f, 2, 3)

	words, err := code.Encode(message)
	require.NoError(t, err)

	got, err := code.Decode(words)
	require.NoError(t, err)
	assert.True(t, got.Equal(message))
}

func TestDecodeScatteredBitErrors(t *testing.T) {
	t.Parallel()

	code := testCode(t)
	f := code.Outer().Field()

	message := field.NewPolyFromValues(f, 7, 0, 11, 1, 9)
	words, err := code.Encode(message)
	require.NoError(t, err)

	// Up to three flips per word stay within the inner radius.
	words[0] = words[0].Add(0b101)
	words[4] = words[4].Add(gf2.One << 14)
	words[9] = words[9].Add(0b10010000000100)

	got, err := code.Decode(words)
	require.NoError(t, err)
	assert.True(t, got.Equal(message))
}

func TestDecodeWholeWordCorruption(t *testing.T) {
	t.Parallel()

	code := testCode(t)
	f := code.Outer().Field()

	message := field.NewPolyFromValues(f, 2, 3)
	words, err := code.Encode(message)
	require.NoError(t, err)

	// Destroy one word completely; the inner decoder gives up and the
	// outer code (t=1) repairs the symbol.
	words[6] = 0b1111

	got, err := code.Decode(words)
	require.NoError(t, err)
	assert.True(t, got.Equal(message))
}

func TestDecodeMixedCorruption(t *testing.T) {
	t.Parallel()

	code := testCode(t)
	f := code.Outer().Field()

	message := field.NewPolyFromValues(f, 5, 12)
	words, err := code.Encode(message)
	require.NoError(t, err)

	// One obliterated word plus correctable flips elsewhere.
	words[2] = 0b1111
	words[10] = words[10].Add(0b11)

	got, err := code.Decode(words)
	require.NoError(t, err)
	assert.True(t, got.Equal(message))
}

func TestDecodeWrongLength(t *testing.T) {
	t.Parallel()

	code := testCode(t)

	_, err := code.Decode(make([]gf2.Poly, 3))
	require.ErrorIs(t, err, ErrWrongLength)
}
