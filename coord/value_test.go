package coord_test

import (
	"testing"
	"time"

	"github.com/highperformancecoder/civita/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Ordering verifies within-kind natural order and cross-kind
// ordering by kind rank: strings before times before numbers.
func TestValue_Ordering(t *testing.T) {
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	assert.True(t, coord.Str("a").Less(coord.Str("b")), "string natural order")
	assert.True(t, coord.Time(t0).Less(coord.Time(t1)), "time natural order")
	assert.True(t, coord.Num(1).Less(coord.Num(2)), "numeric natural order")

	assert.True(t, coord.Str("z").Less(coord.Time(t0)), "string ranks before time")
	assert.True(t, coord.Time(t1).Less(coord.Num(-1e9)), "time ranks before number")
	assert.False(t, coord.Num(0).Less(coord.Str("")), "number never before string")
}

// TestValue_DefaultIsEmpty verifies that the zero Value is the empty
// string.
func TestValue_DefaultIsEmpty(t *testing.T) {
	var v coord.Value
	assert.Equal(t, coord.KindString, v.Kind())
	assert.True(t, v.IsEmpty())
	assert.False(t, coord.Str("x").IsEmpty())
	assert.False(t, coord.Num(0).IsEmpty())
}

// TestValue_Hash verifies payload-sensitive hashing.
func TestValue_Hash(t *testing.T) {
	assert.Equal(t, coord.Str("apples").Hash(), coord.Str("apples").Hash())
	assert.NotEqual(t, coord.Str("apples").Hash(), coord.Str("oranges").Hash())
	assert.NotEqual(t, coord.Num(1).Hash(), coord.Num(2).Hash())
}

// TestInterpolate covers all kinds plus the mismatched-kind fallback.
func TestInterpolate(t *testing.T) {
	assert.InDelta(t, 2.5, coord.Interpolate(coord.Num(1), coord.Num(4), 0.5).Number(), 1e-12)

	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	mid := coord.Interpolate(coord.Time(t0), coord.Time(t0.Add(2*time.Hour)), 0.5)
	assert.Equal(t, t0.Add(time.Hour), mid.Instant())

	assert.Equal(t, "lo", coord.Interpolate(coord.Str("lo"), coord.Str("hi"), 0.5).Text())
	assert.Equal(t, "hi", coord.Interpolate(coord.Str("lo"), coord.Str("hi"), 0.6).Text())

	// mismatched kinds return x unchanged
	assert.Equal(t, coord.Num(3), coord.Interpolate(coord.Num(3), coord.Str("x"), 0.9))
}

// TestDiff covers the signed distance for every kind.
func TestDiff(t *testing.T) {
	d, err := coord.Diff(coord.Num(5), coord.Num(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	// one substitution, x sorts before y: negative Hamming
	d, err = coord.Diff(coord.Str("abc"), coord.Str("abd"))
	require.NoError(t, err)
	assert.Equal(t, -1.0, d)

	// length difference counts, x sorts after y: positive
	d, err = coord.Diff(coord.Str("abcd"), coord.Str("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d, err = coord.Diff(coord.Time(t0.Add(1500*time.Nanosecond)), coord.Time(t0))
	require.NoError(t, err)
	assert.InDelta(t, 1.5e-6, d, 1e-15)

	d, err = coord.Diff(coord.Time(t0), coord.Time(t0.Add(time.Hour)))
	require.NoError(t, err)
	assert.InDelta(t, -3600, d, 1e-9)

	_, err = coord.Diff(coord.Num(1), coord.Str("1"))
	assert.ErrorIs(t, err, coord.ErrKindMismatch)
}

// TestConversions_Convert exercises identity, forward, reverse and
// unrelated units.
func TestConversions_Convert(t *testing.T) {
	c := coord.Conversions{"km:m": 1000}

	v, err := c.Convert(2, "km", "km")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = c.Convert(2, "km", "m")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, v)

	v, err = c.Convert(500, "m", "km")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	_, err = c.Convert(1, "kg", "m")
	assert.ErrorIs(t, err, coord.ErrInconvertibleUnits)
}
