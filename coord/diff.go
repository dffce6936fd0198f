package coord

import "math"

// hourCutoff is the magnitude, in hours, above which time differences
// fall back from nanosecond to microsecond resolution. A million hours
// is a little over a century, well below the int64 nanosecond range.
const hourCutoff = 1e6

// Diff returns a real-valued signed distance between x and y.
//
//   - numbers: plain difference x−y
//   - strings: signed Hamming distance, counting the length difference
//     plus mismatched positions, negative when x sorts before y
//   - timestamps: difference in seconds at nanosecond resolution,
//     dropping to microsecond resolution above ~10⁶ hours
//
// Values of different kinds yield ErrKindMismatch.
func Diff(x, y Value) (float64, error) {
	if x.kind != y.kind {
		return 0, ErrKindMismatch
	}
	switch x.kind {
	case KindString:
		r := math.Abs(float64(len(x.str)) - float64(len(y.str)))
		for i := 0; i < len(x.str) && i < len(y.str); i++ {
			if x.str[i] != y.str[i] {
				r++
			}
		}
		if x.str < y.str {
			return -r, nil
		}
		return r, nil
	case KindValue:
		return x.num - y.num, nil
	case KindTime:
		secs := float64(x.t.Unix() - y.t.Unix())
		if math.Abs(secs) < hourCutoff*3600 {
			return 1e-9 * float64(x.t.Sub(y.t).Nanoseconds()), nil
		}
		return secs + 1e-6*float64(x.t.Nanosecond()/1000-y.t.Nanosecond()/1000), nil
	}
	return 0, nil
}
