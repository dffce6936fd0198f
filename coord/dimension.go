package coord

import "fmt"

// Dimension describes the typed labeling of one tensor axis: the kind
// of its coordinate values and a units string. For timestamp
// dimensions the units string is a strftime-style pattern (with the %Q
// quarter extension) used for both parsing and display; for numeric
// dimensions it names physical units subject to Conversions.
type Dimension struct {
	Type  Kind
	Units string
}

// Dimensions maps axis names to their dimension descriptors.
type Dimensions map[string]Dimension

// Conversions is a table of multiplicative unit conversions, keyed
// "from:to". A missing direct entry is satisfied by the reverse entry
// "to:from" via division.
type Conversions map[string]float64

// Convert converts val from one unit to another. Identity conversions
// are free; anything else requires a table entry in either direction.
// Returns ErrInconvertibleUnits when no relation is registered.
func (c Conversions) Convert(val float64, from, to string) (float64, error) {
	if from == to {
		return val, nil
	}
	if m, ok := c[from+":"+to]; ok {
		return m * val, nil
	}
	if m, ok := c[to+":"+from]; ok {
		return val / m, nil
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrInconvertibleUnits, from, to)
}
