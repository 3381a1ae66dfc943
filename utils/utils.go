package utils

// Pair is a single key value entry of a map container.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func GetZero[T any]() T {
	var result T
	return result
}
