// Package coord defines the coordinate layer of the tensor algebra:
// typed coordinate values, dimension descriptors, textual label parsing
// and formatting, and unit conversions.
//
// A Value is a tagged union of {string, timestamp, number}. Values are
// totally ordered — within a kind by natural order, across kinds by
// kind rank — hashable, and interpolatable, which lets axis coordinate
// vectors mix freely in set operations and display logic.
//
// A Dimension pairs a value kind with a units string; for timestamp
// dimensions the units string doubles as a strftime-style parse and
// display pattern, extended with %Q for calendar quarters.
//
// Parsing of textual labels is done by a Parser compiled from a
// Dimension. Three timestamp parse modes exist:
//
//   - quarter:    the pattern contains %Q; year and quarter are pulled
//     out with an anchored regular expression
//   - positional: the pattern is empty or made only of simple fields
//     (%Y %y %m %d %H %M %S), each separated from the next by some
//     non-directive text; digit runs are matched to the fields in
//     order, missing fields take calendar defaults
//   - delegate:   anything else goes to a strftime-compatible parser
//     that honors the exact pattern
//
// Errors:
//
//	ErrBadValue           - unparseable label, bad quarter, bad format
//	ErrInconvertibleUnits - unit conversion between unrelated units
//	ErrKindMismatch       - diff of values of different kinds
package coord
