package coord

import (
	"fmt"
	"strconv"
	"strings"

	timefmt "github.com/itchyny/timefmt-go"
)

// isoExtended is the layout used for timestamps when no format is
// given, matching ISO-8601 extended form.
const isoExtended = "2006-01-02T15:04:05"

// Format renders a coordinate value as text. Strings are returned
// verbatim and numbers through the standard decimal conversion; the
// format argument only affects timestamps:
//
//   - empty format: ISO-8601 extended
//   - format containing %Q: the quarter splice — %Q and %Y are
//     rewritten to %d and filled positionally with the calendar
//     quarter and year (a year directive is required)
//   - anything else: strftime-style formatting honoring the exact
//     pattern
func Format(v Value, format string) (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindValue:
		return strconv.FormatFloat(v.num, 'g', -1, 64), nil
	case KindTime:
		if format == "" {
			return v.t.Format(isoExtended), nil
		}
		if pq := strings.Index(format, "%Q"); pq >= 0 {
			py := strings.Index(format, "%Y")
			if py < 0 {
				return "", fmt.Errorf("%w: year not specified in format %q", ErrBadValue, format)
			}
			spliced := strings.NewReplacer("%Q", "%d", "%Y", "%d").Replace(format)
			quarter := (int(v.t.Month())-1)/3 + 1
			if pq < py {
				return fmt.Sprintf(spliced, quarter, v.t.Year()), nil
			}
			return fmt.Sprintf(spliced, v.t.Year(), quarter), nil
		}
		return timefmt.Format(v.t, format), nil
	}
	return "", nil
}
