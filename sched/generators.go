package sched

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// Generators for property tests. Work amounts and quanta are kept small so
// generated simulations finish well inside the default tick cap.

// GopterGenWorkMs generates a single job's total work in milliseconds.
func GopterGenWorkMs() gopter.Gen {
	return gen.IntRange(1, 500)
}

// GopterGenWorkMsList generates the work amounts for a whole workload,
// in creation order.
func GopterGenWorkMsList() gopter.Gen {
	return gen.IntRange(1, 40).FlatMap(func(n interface{}) gopter.Gen {
		return gen.SliceOfN(n.(int), GopterGenWorkMs())
	}, reflect.TypeOf([]int{}))
}

// GopterGenQuanta generates a per-level quantum list, highest priority
// first.
func GopterGenQuanta() gopter.Gen {
	return gen.IntRange(1, 5).FlatMap(func(n interface{}) gopter.Gen {
		return gen.SliceOfN(n.(int), gen.IntRange(1, 5))
	}, reflect.TypeOf([]int{}))
}
