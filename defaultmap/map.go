package defaultmap

import (
	"context"
	"maps"

	"github.com/acheronfail/easy-collections/utils"
)

type (
	// Predicate filters key value pairs.
	Predicate[K comparable, V any] func(key K, value V) bool

	// ValueTransformer produces a replacement value for a key value pair.
	ValueTransformer[K comparable, V any] func(key K, value V) V

	// Reducer takes a carry from the previous iteration plus a key and a
	// value and returns a new version of the carry.
	Reducer[K comparable, V, R any] func(carry R, key K, value V) R
)

// DefaultMap - a map with a fallback value for missing keys. Reads
// through Get never fail and never mutate; reads through GetOrInsert
// materialize the fallback for absent keys.
type DefaultMap[K comparable, V any] struct {
	m   map[K]V
	def V
}

// New creates an empty map whose fallback is the zero value of V.
func New[K comparable, V any]() *DefaultMap[K, V] {
	return NewWithDefault[K](utils.GetZero[V]())
}

// NewWithDefault creates an empty map with an explicit fallback value.
func NewWithDefault[K comparable, V any](def V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{
		m:   make(map[K]V),
		def: def,
	}
}

// FromPairs builds a map by inserting pairs in argument order, so a
// later duplicate key overwrites an earlier one. The fallback is the
// zero value of V.
func FromPairs[K comparable, V any](pairs ...utils.Pair[K, V]) *DefaultMap[K, V] {
	return FromPairsWithDefault(utils.GetZero[V](), pairs...)
}

// FromPairsWithDefault is FromPairs with an explicit fallback value.
// Keeping the fallback and the pairs in separate parameters removes the
// "single value or single pair" ambiguity of a combined literal form.
func FromPairsWithDefault[K comparable, V any](def V, pairs ...utils.Pair[K, V]) *DefaultMap[K, V] {
	result := NewWithDefault[K](def)
	for _, p := range pairs {
		result.m[p.Key] = p.Value
	}
	return result
}

// FromMap copies a native map. The fallback is the zero value of V.
func FromMap[K comparable, V any](m map[K]V) *DefaultMap[K, V] {
	result := New[K, V]()
	for k, v := range m {
		result.m[k] = v
	}
	return result
}

// Insert adds or overwrites key and returns the previous value if the
// key existed.
func (m *DefaultMap[K, V]) Insert(key K, value V) (prev V, existed bool) {
	prev, existed = m.m[key]
	m.m[key] = value
	return prev, existed
}

// Set - the assignment form of Insert.
func (m *DefaultMap[K, V]) Set(key K, value V) {
	m.m[key] = value
}

// Remove deletes key if present and returns the removed value.
func (m *DefaultMap[K, V]) Remove(key K) (V, bool) {
	v, existed := m.m[key]
	if !existed {
		return utils.GetZero[V](), false
	}

	delete(m.m, key)
	return v, true
}

// Get returns the stored value for key, or the fallback when key is
// absent. It never mutates the map and is total over all keys.
func (m *DefaultMap[K, V]) Get(key K) V {
	if v, found := m.m[key]; found {
		return v
	}

	return m.def
}

// HasGet is Get with an explicit presence report; an absent key still
// yields the fallback.
func (m *DefaultMap[K, V]) HasGet(key K) (V, bool) {
	if v, found := m.m[key]; found {
		return v, true
	}

	return m.def, false
}

// GetOrInsert returns the stored value for key, first inserting a copy
// of the fallback when the key is absent. The key is present afterwards
// even when the caller discards the returned value.
func (m *DefaultMap[K, V]) GetOrInsert(key K) V {
	if v, found := m.m[key]; found {
		return v
	}

	m.m[key] = m.def
	return m.def
}

func (m *DefaultMap[K, V]) Has(key K) bool {
	_, found := m.m[key]
	return found
}

func (m *DefaultMap[K, V]) Len() int {
	return len(m.m)
}

// Default returns the fallback value.
func (m *DefaultMap[K, V]) Default() V {
	return m.def
}

// Raw exposes the underlying native container. Callers may iterate and
// query it directly but must not mutate it.
func (m *DefaultMap[K, V]) Raw() map[K]V {
	return m.m
}

func (m *DefaultMap[K, V]) Clone() *DefaultMap[K, V] {
	return &DefaultMap[K, V]{
		m:   maps.Clone(m.m),
		def: m.def,
	}
}

func (m *DefaultMap[K, V]) ForEach(f func(key K, value V)) {
	for k, v := range m.m {
		f(k, v)
	}
}

// Pairs streams the entries of the map in unspecified order until the
// map is exhausted or ctx is done.
func (m *DefaultMap[K, V]) Pairs(ctx context.Context) <-chan utils.Pair[K, V] {
	resultCh := make(chan utils.Pair[K, V])

	go func() {
		defer close(resultCh)

		for k, v := range m.m {
			select {
			case resultCh <- utils.Pair[K, V]{Key: k, Value: v}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

// Filter returns a new map with the entries the predicate keeps. The
// fallback carries over.
func (m *DefaultMap[K, V]) Filter(pred Predicate[K, V]) *DefaultMap[K, V] {
	result := NewWithDefault[K](m.def)
	for k, v := range m.m {
		if pred(k, v) {
			result.m[k] = v
		}
	}
	return result
}

// Transform returns a new map with every value replaced by the
// transformer's result. The fallback carries over.
func (m *DefaultMap[K, V]) Transform(vt ValueTransformer[K, V]) *DefaultMap[K, V] {
	result := NewWithDefault[K](m.def)
	for k, v := range m.m {
		result.m[k] = vt(k, v)
	}
	return result
}

// Reduce folds the entries of m into a single value, visiting them in
// unspecified order.
func Reduce[K comparable, V, R any](m *DefaultMap[K, V], reducer Reducer[K, V, R]) R {
	var r R
	for k, v := range m.m {
		r = reducer(r, k, v)
	}
	return r
}

// Equal reports whether two maps hold the same entries and the same
// fallback value.
func Equal[K, V comparable](a, b *DefaultMap[K, V]) bool {
	if a.def != b.def {
		return false
	}
	return maps.Equal(a.m, b.m)
}
