package set

import "context"

// HashSet - is an unordered set with Python style algebra operators
type HashSet[K comparable] struct {
	m map[K]struct{}
}

var _ Set[int] = (*HashSet[int])(nil)

func New[K comparable]() *HashSet[K] {
	return &HashSet[K]{
		m: make(map[K]struct{}),
	}
}

func (s *HashSet[K]) Insert(key K) (modified bool) {
	if _, found := s.m[key]; !found {
		s.m[key] = struct{}{}
		modified = true
	}

	return modified
}

func (s *HashSet[K]) Remove(key K) bool {
	if _, found := s.m[key]; found {
		delete(s.m, key)
		return true
	}

	return false
}

func (s *HashSet[K]) Has(key K) bool {
	_, ok := s.m[key]
	return ok
}

// Toggle flips membership of key and reports whether it was present
// before the flip.
func (s *HashSet[K]) Toggle(key K) bool {
	if s.Has(key) {
		s.Remove(key)
		return true
	}

	s.Insert(key)
	return false
}

func (s *HashSet[K]) Clear() {
	s.m = nil
	s.m = make(map[K]struct{})
}

func (s *HashSet[K]) Len() int {
	return len(s.m)
}

func (s *HashSet[K]) Items() []K {
	items := make([]K, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// Raw exposes the underlying native container. Callers may iterate and
// query it directly but must not mutate it.
func (s *HashSet[K]) Raw() map[K]struct{} {
	return s.m
}

func (s *HashSet[K]) Clone() *HashSet[K] {
	result := New[K]()
	for item := range s.m {
		result.m[item] = struct{}{}
	}
	return result
}

// Intersect returns a new set with the keys present in both s and other.
func (s *HashSet[K]) Intersect(other Set[K]) *HashSet[K] {
	result := New[K]()
	for item := range s.m {
		if other.Has(item) {
			result.m[item] = struct{}{}
		}
	}
	return result
}

// Union returns a new set with the keys present in either s or other.
func (s *HashSet[K]) Union(other Set[K]) *HashSet[K] {
	result := s.Clone()
	for _, item := range other.Items() {
		result.m[item] = struct{}{}
	}
	return result
}

// SymmetricDiff returns a new set with the keys present in exactly one
// of s and other.
func (s *HashSet[K]) SymmetricDiff(other Set[K]) *HashSet[K] {
	result := New[K]()
	for item := range s.m {
		if !other.Has(item) {
			result.m[item] = struct{}{}
		}
	}
	for _, item := range other.Items() {
		if !s.Has(item) {
			result.m[item] = struct{}{}
		}
	}
	return result
}

// Diff returns a new set with the keys present in s but not in other.
func (s *HashSet[K]) Diff(other Set[K]) *HashSet[K] {
	result := New[K]()
	for item := range s.m {
		if !other.Has(item) {
			result.m[item] = struct{}{}
		}
	}
	return result
}

// InsertSet merges other into s, an in place union.
func (s *HashSet[K]) InsertSet(other Set[K]) (modified bool) {
	for _, item := range other.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

// RetainSet drops every key of s that other does not have, an in place
// intersection.
func (s *HashSet[K]) RetainSet(other Set[K]) (modified bool) {
	for item := range s.m {
		if !other.Has(item) {
			delete(s.m, item)
			modified = true
		}
	}

	return modified
}

// RemoveSet drops every key of other from s, an in place difference.
func (s *HashSet[K]) RemoveSet(other Set[K]) (modified bool) {
	for _, item := range other.Items() {
		if s.Remove(item) {
			modified = true
		}
	}

	return modified
}

// ToggleSet flips membership of every key of other, an in place
// symmetric difference.
func (s *HashSet[K]) ToggleSet(other Set[K]) (modified bool) {
	for _, item := range other.Items() {
		s.Toggle(item)
		modified = true
	}

	return modified
}

func (s *HashSet[K]) InsertSlice(items []K) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

// SubsetOf reports whether every key of s is in other.
func (s *HashSet[K]) SubsetOf(other Set[K]) bool {
	for item := range s.m {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// SupersetOf reports whether s has every key of other.
func (s *HashSet[K]) SupersetOf(other Set[K]) bool {
	for _, item := range other.Items() {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

func (s *HashSet[K]) Equal(other Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	return s.SubsetOf(other)
}

// Compare orders two sets by inclusion: Less for a strict subset,
// Greater for a strict superset, Equal for identical sets. Sets that
// are neither subset nor superset of one another have no relation, and
// ok is false.
func (s *HashSet[K]) Compare(other Set[K]) (ord Ordering, ok bool) {
	sub := s.SubsetOf(other)
	super := s.SupersetOf(other)

	switch {
	case sub && super:
		return Equal, true
	case sub:
		return Less, true
	case super:
		return Greater, true
	default:
		return Equal, false
	}
}

func (s *HashSet[K]) ForEach(f func(key K)) {
	for item := range s.m {
		f(item)
	}
}

// Values streams the keys of s in unspecified order until the set is
// exhausted or ctx is done.
func (s *HashSet[K]) Values(ctx context.Context) <-chan K {
	resultCh := make(chan K)

	go func() {
		defer close(resultCh)

		for item := range s.m {
			select {
			case resultCh <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}
