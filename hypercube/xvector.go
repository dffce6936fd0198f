package hypercube

import (
	"time"

	"github.com/highperformancecoder/civita/coord"
)

// XVector is one axis of a hypercube: a named, ordered sequence of
// coordinate values sharing a single dimension descriptor.
type XVector struct {
	Name      string
	Dimension coord.Dimension
	Values    []coord.Value
}

// NewXVector builds an axis from ready-made coordinate values.
func NewXVector(name string, dim coord.Dimension, values ...coord.Value) XVector {
	return XVector{Name: name, Dimension: dim, Values: values}
}

// Size returns the number of coordinate labels on the axis.
func (x *XVector) Size() int { return len(x.Values) }

// Clone returns a deep copy of the axis.
func (x *XVector) Clone() XVector {
	c := *x
	c.Values = append([]coord.Value(nil), x.Values...)
	return c
}

// PushBack parses a textual label through the axis dimension and
// appends the resulting value.
func (x *XVector) PushBack(label string) error {
	v, err := coord.NewParser(x.Dimension).Parse(label)
	if err != nil {
		return err
	}
	x.Values = append(x.Values, v)
	return nil
}

// SliceLabels renders every coordinate through the dimension's units
// pattern, the form an external serialization adapter needs to rebuild
// the axis with PushBack.
func (x *XVector) SliceLabels() ([]string, error) {
	labels := make([]string, 0, len(x.Values))
	for _, v := range x.Values {
		s, err := coord.Format(v, x.Dimension.Units)
		if err != nil {
			return nil, err
		}
		labels = append(labels, s)
	}
	return labels, nil
}

// ImposeDimension re-parses any entry whose kind disagrees with the
// axis dimension, rendering it with the default format first. Entries
// already of the right kind are untouched.
func (x *XVector) ImposeDimension() error {
	ok := true
	for _, v := range x.Values {
		if v.Kind() != x.Dimension.Type {
			ok = false
			break
		}
	}
	if ok {
		return nil
	}
	p := coord.NewParser(x.Dimension)
	for i, v := range x.Values {
		if v.Kind() == x.Dimension.Type {
			continue
		}
		s, err := coord.Format(v, "")
		if err != nil {
			return err
		}
		nv, err := p.Parse(s)
		if err != nil {
			return err
		}
		x.Values[i] = nv
	}
	return nil
}

// TimeFormat picks a display format for a temporal axis based on the
// range it spans, from bare years down to epoch seconds. Non-temporal
// or empty axes yield the empty format.
func (x *XVector) TimeFormat() string {
	if x.Dimension.Type != coord.KindTime || len(x.Values) == 0 {
		return ""
	}
	const (
		day   = 24 * time.Hour
		month = 30 * day
		year  = 365 * day
	)
	f, b := x.Values[0].Instant(), x.Values[len(x.Values)-1].Instant()
	if f.After(b) {
		f, b = b, f
	}
	dt := b.Sub(f)
	switch {
	case dt > 5*year:
		return "%Y"
	case dt > year:
		return "%b %Y"
	case dt > 6*month:
		return "%b"
	case dt > month:
		return "%d %b"
	case dt > day:
		return "%d %H:%M"
	case dt > time.Hour:
		return "%H:%M"
	case dt > time.Minute:
		return "%M:%S"
	}
	return "%s"
}
