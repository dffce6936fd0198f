package coord

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/zeebo/xxh3"
)

// Kind identifies the variant held by a Value and the type of a
// Dimension. The declaration order fixes the cross-kind ordering rank:
// strings sort before timestamps, timestamps before numbers.
type Kind int

const (
	// KindString labels categorical string coordinates.
	KindString Kind = iota

	// KindTime labels timestamp coordinates.
	KindTime

	// KindValue labels numeric coordinates.
	KindValue
)

// String returns the kind name used in dimension summaries.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindValue:
		return "value"
	}
	return "unknown"
}

// Value is a coordinate label: a tagged union of string, timestamp and
// number. The zero Value is the empty string and reports IsEmpty.
// Values are immutable; build them with Str, Time and Num.
type Value struct {
	kind Kind
	str  string
	t    time.Time
	num  float64
}

// Str returns a string-kind Value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Time returns a timestamp-kind Value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Num returns a numeric-kind Value.
func Num(x float64) Value { return Value{kind: KindValue, num: x} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload; zero for other kinds.
func (v Value) Text() string { return v.str }

// Instant returns the timestamp payload; zero for other kinds.
func (v Value) Instant() time.Time { return v.t }

// Number returns the numeric payload; zero for other kinds.
func (v Value) Number() float64 { return v.num }

// IsEmpty reports whether v is a default-constructed value: the empty
// string.
func (v Value) IsEmpty() bool { return v.kind == KindString && v.str == "" }

// Less orders values: within a kind by natural order, across kinds by
// kind rank.
func (v Value) Less(o Value) bool {
	if v.kind == o.kind {
		switch v.kind {
		case KindString:
			return v.str < o.str
		case KindTime:
			return v.t.Before(o.t)
		case KindValue:
			return v.num < o.num
		}
	}
	return v.kind < o.kind
}

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindTime:
		return v.t.Equal(o.t)
	case KindValue:
		return v.num == o.num
	}
	return false
}

// Hash returns a 64-bit hash of the payload, suitable for value-keyed
// lookup tables.
func (v Value) Hash() uint64 {
	switch v.kind {
	case KindString:
		return xxh3.HashString(v.str)
	case KindTime:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(v.t.UnixNano()))
		return xxh3.Hash(b[:])
	default:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.num))
		return xxh3.Hash(b[:])
	}
}

// Interpolate blends x and y with fraction a in [0,1]. Numbers blend
// linearly, timestamps by scaled duration, strings snap to the nearer
// endpoint. Mismatched kinds return x.
func Interpolate(x, y Value, a float64) Value {
	if x.kind != y.kind {
		return x
	}
	switch x.kind {
	case KindString:
		if a <= 0.5 {
			return x
		}
		return y
	case KindValue:
		return Num(y.num*a + x.num*(1-a))
	case KindTime:
		d := y.t.Sub(x.t)
		return Time(x.t.Add(time.Duration(float64(d) * a)))
	}
	return x
}

// String renders v with its default format, implementing fmt.Stringer.
func (v Value) String() string {
	s, _ := Format(v, "")
	return s
}
