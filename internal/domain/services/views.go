package services

import "sort"

// FilterView is an observable projection of an entity list under a live
// predicate. The view is the store-order subsequence of entities satisfying
// the predicate; an optional ordering re-sorts the projection (used by the
// schedule command). Consumers must treat Items as a read-only snapshot valid
// until the next mutation.
type FilterView[T any] struct {
	predicate func(T) bool
	less      func(a, b T) bool
	items     []T
}

// NewFilterView creates a view with the accept-all predicate.
func NewFilterView[T any]() *FilterView[T] {
	return &FilterView[T]{predicate: func(T) bool { return true }}
}

// SetPredicate installs a new predicate and clears any ordering. A nil
// predicate resets to accept-all.
func (v *FilterView[T]) SetPredicate(p func(T) bool) {
	if p == nil {
		p = func(T) bool { return true }
	}
	v.predicate = p
	v.less = nil
}

// SetOrderedPredicate installs a predicate together with an ordering applied
// to the filtered subsequence.
func (v *FilterView[T]) SetOrderedPredicate(p func(T) bool, less func(a, b T) bool) {
	v.SetPredicate(p)
	v.less = less
}

// Refresh recomputes the projection from the source list.
func (v *FilterView[T]) Refresh(source []T) {
	items := make([]T, 0, len(source))
	for _, item := range source {
		if v.predicate(item) {
			items = append(items, item)
		}
	}
	if v.less != nil {
		sort.SliceStable(items, func(i, j int) bool { return v.less(items[i], items[j]) })
	}
	v.items = items
}

// Items returns a copy of the current projection.
func (v *FilterView[T]) Items() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// At returns the item at the zero-based index, or false if out of range.
func (v *FilterView[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(v.items) {
		return zero, false
	}
	return v.items[i], true
}

// Len returns the size of the current projection.
func (v *FilterView[T]) Len() int { return len(v.items) }
