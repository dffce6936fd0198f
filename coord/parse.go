package coord

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
)

// timeMode selects how a timestamp dimension's pattern is interpreted.
type timeMode int

const (
	modeQuarter  timeMode = iota // pattern contains %Q
	modePosition                 // simple separated fields, digit-run scan
	modeDelegate                 // full strftime pattern, delegated parser
)

// nonStandardTime matches patterns that the positional digit-run scan
// cannot handle: a directive outside {%m %d %y %Y %H %M %S}, or two
// directives abutting with no separator between them.
var nonStandardTime = regexp.MustCompile(`%[^mdyYHMS]|%[mdyYHMS]%[mdyYHMS]`)

// fieldDirective extracts the field letters of a positional pattern in
// order of appearance.
var fieldDirective = regexp.MustCompile(`%([mdyYHMS])`)

// quarterMonth maps a calendar quarter 1..4 to its first month.
var quarterMonth = [4]time.Month{time.January, time.April, time.July, time.October}

// Parser converts textual labels into Values under one Dimension. It
// is compiled once per dimension and reused for every label of an
// axis.
type Parser struct {
	dim    Dimension
	mode   timeMode
	pq     int    // byte offset of %Q in the pattern, quarter mode only
	fields []byte // positional field letters, position mode only
}

// NewParser compiles a parser for dim. Construction never fails; any
// problem with the pattern surfaces from Parse.
// Complexity: O(len(units)).
func NewParser(dim Dimension) *Parser {
	p := &Parser{dim: dim}
	if dim.Type != KindTime {
		return p
	}
	if pq := strings.Index(dim.Units, "%Q"); pq >= 0 {
		p.mode = modeQuarter
		p.pq = pq
		return p
	}
	if !nonStandardTime.MatchString(dim.Units) {
		p.mode = modePosition
		pattern := dim.Units
		if pattern == "" {
			pattern = "%Y %m %d %H %M %S"
		}
		for _, m := range fieldDirective.FindAllStringSubmatch(pattern, -1) {
			p.fields = append(p.fields, m[1][0])
		}
		return p
	}
	p.mode = modeDelegate
	return p
}

// Parse converts one label into a Value of the parser's dimension
// kind. Empty labels take the kind's reserved empty representation: a
// single blank for strings (the empty string itself is reserved), NaN
// for numbers, and the zero time for timestamps.
func (p *Parser) Parse(s string) (Value, error) {
	switch p.dim.Type {
	case KindString:
		if s == "" {
			return Str(" "), nil
		}
		return Str(s), nil
	case KindValue:
		if s == "" {
			return Num(math.NaN()), nil
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrBadValue, s)
		}
		return Num(x), nil
	case KindTime:
		if s == "" {
			return Time(time.Time{}), nil
		}
		switch p.mode {
		case modeQuarter:
			return p.parseQuarter(s)
		case modePosition:
			return p.parsePositional(s)
		default:
			t, err := timefmt.Parse(s, p.dim.Units)
			if err != nil {
				return Value{}, fmt.Errorf("%w: invalid date/time %q for format %q", ErrBadValue, s, p.dim.Units)
			}
			return Time(t.UTC()), nil
		}
	}
	return Value{}, nil
}

// parseQuarter handles year-quarter patterns. The first year directive
// (%Y or %y) and the first %Q are replaced with capture groups; the
// rest of the pattern passes through to the regular expression engine,
// so complicated surrounding text can still be matched.
func (p *Parser) parseQuarter(s string) (Value, error) {
	py := strings.Index(p.dim.Units, "%Y")
	yearRe, short := `(\d{4})`, false
	if py < 0 {
		py = strings.Index(p.dim.Units, "%y")
		yearRe, short = `(\d{1,2})`, true
	}
	if py < 0 {
		return Value{}, fmt.Errorf("%w: year not specified in format %q", ErrBadValue, p.dim.Units)
	}
	var year, quarter int
	var err error
	if p.pq < py {
		year, quarter, err = extractPair(p.dim.Units, s, p.pq, `(\d)`, py, yearRe)
		year, quarter = quarter, year
	} else {
		year, quarter, err = extractPair(p.dim.Units, s, py, yearRe, p.pq, `(\d)`)
	}
	if err != nil {
		return Value{}, err
	}
	if short {
		if year > 99 {
			return Value{}, fmt.Errorf("%w: %d is out of range for %%y", ErrBadValue, year)
		}
		year = pivotYear(year)
	}
	if quarter < 1 || quarter > 4 {
		return Value{}, fmt.Errorf("%w: invalid quarter %d", ErrBadValue, quarter)
	}
	return Time(time.Date(year, quarterMonth[quarter-1], 1, 0, 0, 0, 0, time.UTC)), nil
}

// extractPair matches data against fmt with the two directives at byte
// offsets pos1 < pos2 replaced by the capture expressions re1 and re2,
// and returns the two captured integers in pattern order.
func extractPair(format, data string, pos1 int, re1 string, pos2 int, re2 string) (int, int, error) {
	pat := `\s*` + format[:pos1] + re1 + format[pos1+2:pos2] + re2 + format[pos2+2:] + `\s*`
	re, err := regexp.Compile(`^` + pat + `$`)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad format %q", ErrBadValue, format)
	}
	m := re.FindStringSubmatch(data)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: data %q fails to match pattern %q", ErrBadValue, data, pat)
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	return a, b, nil
}

// pivotYear expands a two-digit year with the 1969 pivot: 00–68 map to
// 2000–2068, 69–99 to 1969–1999.
func pivotYear(y int) int {
	if y > 68 {
		return y + 1900
	}
	return y + 2000
}

// parsePositional matches digit runs in s against the pattern's field
// letters in order. Missing trailing fields take calendar defaults
// (day and month 1, the rest 0) when the pattern was defaulted; an
// explicit pattern with missing fields is an error.
func (p *Parser) parsePositional(s string) (Value, error) {
	day, month, year, hours, minutes, seconds := 1, 1, 0, 0, 0, 0
	pos, i := 0, 0
	for ; i < len(p.fields); i++ {
		for pos < len(s) && !isDigit(s[pos]) {
			pos++
		}
		if pos == len(s) {
			break
		}
		start := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		v, _ := strconv.Atoi(s[start:pos])
		switch p.fields[i] {
		case 'd':
			day = v
		case 'm':
			month = v
		case 'y':
			if v > 99 {
				return Value{}, fmt.Errorf("%w: %d is out of range for %%y", ErrBadValue, v)
			}
			year = pivotYear(v)
		case 'Y':
			year = v
		case 'H':
			hours = v
		case 'M':
			minutes = v
		case 'S':
			seconds = v
		}
	}
	if p.dim.Units != "" && i < len(p.fields) {
		return Value{}, fmt.Errorf("%w: invalid date/time %q for format %q", ErrBadValue, s, p.dim.Units)
	}
	return Time(time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, time.UTC)), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
