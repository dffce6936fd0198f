package tensor_test

import (
	"fmt"

	"github.com/highperformancecoder/civita/tensor"
)

// A scan is a lazy, cached prefix accumulation along one axis.
func Example() {
	tv, _ := tensor.NewTensorValDims(5)
	for i := 0; i < tv.Size(); i++ {
		tv.Set(i, float64(i+1))
	}

	scan := tensor.NewScan(tensor.SumFold)
	_ = scan.SetArgument(tv, tensor.Args{Dimension: "0"})

	data, _ := tensor.Data(scan)
	fmt.Println(data)
	// Output: [1 3 6 10 15]
}

// Reductions drop the folded axis from the result shape.
func ExampleReduction() {
	tv, _ := tensor.NewTensorValDims(3, 2)
	for i := 0; i < tv.Size(); i++ {
		tv.Set(i, 1)
	}

	sum := tensor.NewReduction(tensor.SumFold, 0)
	_ = sum.SetArgument(tv, tensor.Args{Dimension: "0"})

	data, _ := tensor.Data(sum)
	fmt.Println(sum.Shape(), data)
	// Output: [2] [3 3]
}
