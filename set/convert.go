package set

// Of builds an unordered set from its arguments.
func Of[K comparable](items ...K) *HashSet[K] {
	s := New[K]()
	s.InsertSlice(items)
	return s
}

// FromSlice clones the elements of items into a new set.
func FromSlice[K comparable](items []K) *HashSet[K] {
	return Of(items...)
}

// FromString collects the characters of s into a set of runes.
func FromString(s string) *HashSet[rune] {
	result := New[rune]()
	for _, r := range s {
		result.Insert(r)
	}
	return result
}

// FromMap copies a native set container. Together with Raw it round
// trips a set through its native representation.
func FromMap[K comparable](m map[K]struct{}) *HashSet[K] {
	result := New[K]()
	for item := range m {
		result.m[item] = struct{}{}
	}
	return result
}
