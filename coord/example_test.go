package coord_test

import (
	"fmt"

	"github.com/highperformancecoder/civita/coord"
)

// Quarter labels parse into the first day of the quarter and render
// back through the same pattern.
func ExampleParser_Parse() {
	dim := coord.Dimension{Type: coord.KindTime, Units: "%Y-Q%Q"}
	v, _ := coord.NewParser(dim).Parse("2021-Q3")
	label, _ := coord.Format(v, dim.Units)
	fmt.Println(v, label)
	// Output: 2021-07-01T00:00:00 2021-Q3
}

func ExampleConversions_Convert() {
	c := coord.Conversions{"year:month": 12}
	months, _ := c.Convert(2.5, "year", "month")
	fmt.Println(months)
	// Output: 30
}
