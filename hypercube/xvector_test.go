package hypercube_test

import (
	"testing"
	"time"

	"github.com/highperformancecoder/civita/coord"
	"github.com/highperformancecoder/civita/hypercube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestXVector_PushBack parses labels through the axis dimension.
func TestXVector_PushBack(t *testing.T) {
	xv := hypercube.XVector{Name: "price", Dimension: coord.Dimension{Type: coord.KindValue}}
	require.NoError(t, xv.PushBack("3.5"))
	require.NoError(t, xv.PushBack("4"))
	assert.Equal(t, 2, xv.Size())
	assert.Equal(t, 3.5, xv.Values[0].Number())

	tv := hypercube.XVector{Name: "when", Dimension: coord.Dimension{Type: coord.KindTime, Units: "%Y"}}
	require.NoError(t, tv.PushBack("2020"))
	assert.Equal(t, 2020, tv.Values[0].Instant().Year())

	assert.Error(t, xv.PushBack("many"))
}

// TestXVector_TimeFormat walks the span thresholds from years down to
// epoch seconds.
func TestXVector_TimeFormat(t *testing.T) {
	t0 := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		span   time.Duration
		format string
	}{
		{6 * 365 * 24 * time.Hour, "%Y"},
		{2 * 365 * 24 * time.Hour, "%b %Y"},
		{8 * 30 * 24 * time.Hour, "%b"},
		{2 * 30 * 24 * time.Hour, "%d %b"},
		{3 * 24 * time.Hour, "%d %H:%M"},
		{2 * time.Hour, "%H:%M"},
		{2 * time.Minute, "%M:%S"},
		{30 * time.Second, "%s"},
	}
	for _, tc := range cases {
		xv := hypercube.NewXVector("t", coord.Dimension{Type: coord.KindTime},
			coord.Time(t0), coord.Time(t0.Add(tc.span)))
		assert.Equal(t, tc.format, xv.TimeFormat(), "span %v", tc.span)
	}

	// non-temporal and empty axes have no format hint
	num := hypercube.NewXVector("n", coord.Dimension{Type: coord.KindValue}, coord.Num(1))
	assert.Equal(t, "", num.TimeFormat())
	empty := hypercube.NewXVector("t", coord.Dimension{Type: coord.KindTime})
	assert.Equal(t, "", empty.TimeFormat())
}

// TestXVector_ImposeDimension re-parses entries whose kind disagrees
// with the dimension.
func TestXVector_ImposeDimension(t *testing.T) {
	xv := hypercube.NewXVector("n", coord.Dimension{Type: coord.KindValue},
		coord.Str("1"), coord.Str("2.5"))
	require.NoError(t, xv.ImposeDimension())
	assert.Equal(t, []coord.Value{coord.Num(1), coord.Num(2.5)}, xv.Values)

	// already conformant entries are untouched
	require.NoError(t, xv.ImposeDimension())
	assert.Equal(t, 2.5, xv.Values[1].Number())
}

// TestXVector_SliceLabels renders entries through the dimension's
// units pattern, the serialization boundary's textual form.
func TestXVector_SliceLabels(t *testing.T) {
	xv := hypercube.NewXVector("q", coord.Dimension{Type: coord.KindTime, Units: "%Y-Q%Q"},
		coord.Time(time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC)),
		coord.Time(time.Date(2020, time.October, 1, 0, 0, 0, 0, time.UTC)))
	labels, err := xv.SliceLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-Q3", "2020-Q4"}, labels)
}
