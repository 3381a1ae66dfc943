package set

import (
	"github.com/denismitr/dll"
)

// OrderedSet - keeps its keys in insertion order. Algebra results
// preserve the order of the left operand first, then the right one.
type OrderedSet[K comparable] struct {
	m    map[K]*dll.Element[K]
	list *dll.DoublyLinkedList[K]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[K comparable]() *OrderedSet[K] {
	return &OrderedSet[K]{
		m:    make(map[K]*dll.Element[K]),
		list: dll.New[K](),
	}
}

// OrderedOf builds an insertion ordered set from its arguments.
func OrderedOf[K comparable](items ...K) *OrderedSet[K] {
	s := NewOrderedSet[K]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

func (s *OrderedSet[K]) Insert(key K) (modified bool) {
	if _, found := s.m[key]; !found {
		newEl := dll.NewElement(key)
		s.m[key] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[K]) Remove(key K) bool {
	if el, found := s.m[key]; found {
		delete(s.m, key)
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[K]) Has(key K) bool {
	_, ok := s.m[key]
	return ok
}

// Toggle flips membership of key and reports whether it was present
// before the flip.
func (s *OrderedSet[K]) Toggle(key K) bool {
	if s.Has(key) {
		s.Remove(key)
		return true
	}

	s.Insert(key)
	return false
}

func (s *OrderedSet[K]) Clear() {
	s.m = nil
	s.m = make(map[K]*dll.Element[K])
	s.list = nil
	s.list = dll.New[K]()
}

func (s *OrderedSet[K]) Len() int {
	return len(s.m)
}

func (s *OrderedSet[K]) Items() []K {
	items := make([]K, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[K]) Clone() *OrderedSet[K] {
	result := NewOrderedSet[K]()
	curr := s.list.Head()
	for curr != nil {
		result.Insert(curr.Value())
		curr = curr.Next()
	}
	return result
}

// Intersect returns a new set with the keys present in both s and
// other, in the order they appear in s.
func (s *OrderedSet[K]) Intersect(other Set[K]) *OrderedSet[K] {
	result := NewOrderedSet[K]()
	curr := s.list.Head()
	for curr != nil {
		if other.Has(curr.Value()) {
			result.Insert(curr.Value())
		}
		curr = curr.Next()
	}
	return result
}

// Union returns a new set with the keys of s in order, followed by the
// keys only other has, in other's order.
func (s *OrderedSet[K]) Union(other Set[K]) *OrderedSet[K] {
	result := s.Clone()
	for _, item := range other.Items() {
		result.Insert(item)
	}
	return result
}

// SymmetricDiff returns a new set with the keys present in exactly one
// of s and other.
func (s *OrderedSet[K]) SymmetricDiff(other Set[K]) *OrderedSet[K] {
	result := NewOrderedSet[K]()
	curr := s.list.Head()
	for curr != nil {
		if !other.Has(curr.Value()) {
			result.Insert(curr.Value())
		}
		curr = curr.Next()
	}
	for _, item := range other.Items() {
		if !s.Has(item) {
			result.Insert(item)
		}
	}
	return result
}

// Diff returns a new set with the keys present in s but not in other.
func (s *OrderedSet[K]) Diff(other Set[K]) *OrderedSet[K] {
	result := NewOrderedSet[K]()
	curr := s.list.Head()
	for curr != nil {
		if !other.Has(curr.Value()) {
			result.Insert(curr.Value())
		}
		curr = curr.Next()
	}
	return result
}

// InsertSet merges other into s, an in place union.
func (s *OrderedSet[K]) InsertSet(other Set[K]) (modified bool) {
	for _, item := range other.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[K]) Equal(other Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for item := range s.m {
		if !other.Has(item) {
			return false
		}
	}
	return true
}
