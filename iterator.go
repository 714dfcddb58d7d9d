package covector

// Iterator is a random-access cursor into a Vector (spec.md C7). It
// supports pointer-like arithmetic and comparison; dereferencing goes
// through At/Get, so it inherits their bounds panics and detach behavior.
// Like the original, any mutating call on the underlying Vector
// invalidates every Iterator obtained before it -- this is not checked.
type Iterator[T any] struct {
	v   *Vector[T]
	idx int
}

// Begin returns an Iterator to the first element, forcing a COW detach
// first if v is Shared (spec.md 4.6: non-const begin/end detach).
func (v *Vector[T]) Begin() (Iterator[T], error) {
	const op = "begin"
	if err := detachIfShared(v, op); err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{v: v, idx: 0}, nil
}

// End returns an Iterator one past the last element, forcing a COW detach
// first if v is Shared.
func (v *Vector[T]) End() (Iterator[T], error) {
	const op = "end"
	if err := detachIfShared(v, op); err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{v: v, idx: v.Len()}, nil
}

// CBegin returns a const Iterator to the first element, without detaching.
func (v *Vector[T]) CBegin() Iterator[T] {
	return Iterator[T]{v: v, idx: 0}
}

// CEnd returns a const Iterator one past the last element, without
// detaching.
func (v *Vector[T]) CEnd() Iterator[T] {
	return Iterator[T]{v: v, idx: v.Len()}
}

// Next returns the Iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{v: it.v, idx: it.idx + 1} }

// Prev returns the Iterator retreated by one position.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{v: it.v, idx: it.idx - 1} }

// Add returns the Iterator advanced by n positions (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{v: it.v, idx: it.idx + n} }

// Index returns the Iterator's current position.
func (it Iterator[T]) Index() int { return it.idx }

// Diff returns it.Index() - other.Index(), the distance between the two
// iterators.
func (it Iterator[T]) Diff(other Iterator[T]) int { return it.idx - other.idx }

// Equal reports whether it and other refer to the same Vector and
// position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.idx == other.idx
}

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.idx < other.idx }

// Value returns a copy of the element it refers to, without detaching.
func (it Iterator[T]) Value() T { return it.v.Get(it.idx) }

// Set assigns x to the element it refers to, detaching first if needed.
func (it Iterator[T]) Set(x T) error { return it.v.Set(it.idx, x) }

// ReverseIterator adapts an Iterator to walk back-to-front: Next moves
// toward index 0 (spec.md 4.6, "reverse iterators are adapters over the
// forward iterators"). Its logical position is the element at Base().Prev().
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a ReverseIterator to the last element, detaching first.
func (v *Vector[T]) RBegin() (ReverseIterator[T], error) {
	end, err := v.End()
	if err != nil {
		return ReverseIterator[T]{}, err
	}
	return ReverseIterator[T]{base: end}, nil
}

// REnd returns a ReverseIterator one before the first element, detaching
// first.
func (v *Vector[T]) REnd() (ReverseIterator[T], error) {
	begin, err := v.Begin()
	if err != nil {
		return ReverseIterator[T]{}, err
	}
	return ReverseIterator[T]{base: begin}, nil
}

// CRBegin returns a const ReverseIterator to the last element, without
// detaching.
func (v *Vector[T]) CRBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.CEnd()}
}

// CREnd returns a const ReverseIterator one before the first element,
// without detaching.
func (v *Vector[T]) CREnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.CBegin()}
}

// Base returns the underlying forward Iterator, pointing one past the
// element this ReverseIterator refers to (the usual reverse_iterator
// relationship: &*rit == &*(rit.Base().Prev())).
func (rit ReverseIterator[T]) Base() Iterator[T] { return rit.base }

// Next returns the ReverseIterator advanced by one position (toward the
// front of the Vector).
func (rit ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: rit.base.Prev()}
}

// Prev returns the ReverseIterator retreated by one position (toward the
// back of the Vector).
func (rit ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: rit.base.Next()}
}

// Equal reports whether rit and other refer to the same position.
func (rit ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return rit.base.Equal(other.base)
}

// Value returns a copy of the element rit refers to, without detaching.
func (rit ReverseIterator[T]) Value() T { return rit.base.Prev().Value() }

// Set assigns x to the element rit refers to, detaching first if needed.
func (rit ReverseIterator[T]) Set(x T) error { return rit.base.Prev().Set(x) }
