package coord_test

import (
	"testing"
	"time"

	"github.com/highperformancecoder/civita/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormat covers every kind: strings verbatim, numbers through the
// standard decimal conversion, timestamps through ISO-8601, strftime
// patterns and the quarter splice.
func TestFormat(t *testing.T) {
	s, err := coord.Format(coord.Str("apples"), "%d")
	require.NoError(t, err)
	assert.Equal(t, "apples", s, "strings ignore the format")

	s, err = coord.Format(coord.Num(8), "")
	require.NoError(t, err)
	assert.Equal(t, "8", s)

	s, err = coord.Format(coord.Num(2.5), "")
	require.NoError(t, err)
	assert.Equal(t, "2.5", s)

	at := coord.Time(time.Date(2020, time.March, 15, 13, 45, 5, 0, time.UTC))
	s, err = coord.Format(at, "")
	require.NoError(t, err)
	assert.Equal(t, "2020-03-15T13:45:05", s, "empty format is ISO-8601 extended")

	s, err = coord.Format(at, "%d/%m/%Y")
	require.NoError(t, err)
	assert.Equal(t, "15/03/2020", s)

	s, err = coord.Format(at, "%b %Y")
	require.NoError(t, err)
	assert.Equal(t, "Mar 2020", s)
}

// TestFormat_QuarterSplice verifies %Q rendering in both field orders
// and the year-field requirement.
func TestFormat_QuarterSplice(t *testing.T) {
	aug := coord.Time(time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC))

	s, err := coord.Format(aug, "%Y-Q%Q")
	require.NoError(t, err)
	assert.Equal(t, "2020-Q3", s)

	s, err = coord.Format(aug, "Q%Q %Y")
	require.NoError(t, err)
	assert.Equal(t, "Q3 2020", s)

	_, err = coord.Format(aug, "Q%Q")
	assert.ErrorIs(t, err, coord.ErrBadValue)
}
