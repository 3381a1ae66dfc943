package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Set is the common contract of the unordered HashSet and the
// insertion ordered OrderedSet. The algebra operators on both
// implementations accept any Set as their right hand operand.
type Set[K comparable] interface {
	Insert(key K) (modified bool)
	Remove(key K) bool
	Has(key K) bool
	Toggle(key K) bool
	Clear()
	Len() int
	Items() []K
}

// Ordering is the result of comparing two sets by inclusion.
type Ordering int8

const (
	Less    Ordering = iota - 1 // strict subset
	Equal                       // identical elements
	Greater                     // strict superset
)

// Sorted returns the items of s in ascending order.
func Sorted[K constraints.Ordered](s Set[K]) []K {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	return items
}
