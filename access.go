package covector

// At returns a pointer to the element at index i, forcing a COW detach
// first if v is Shared and not uniquely owned (spec.md 4.6: non-const
// access is a potential write, so it must not observe or corrupt a buffer
// shared with another Vector). Panics if i is out of [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	const op = "at"
	n := v.Len()
	if i < 0 || i >= n {
		panic("covector: at: index out of range")
	}
	if v.state == stateInline {
		return &v.inline, nil
	}
	if err := detachIfShared(v, op); err != nil {
		return nil, err
	}
	return &v.buf.data[i], nil
}

// Get returns a copy of the element at index i without detaching (spec.md
// 4.6: the const accessor). Panics if i is out of [0, Len()).
//
// This is a copy, not a reference: for an element type whose identity is
// tied to its own address (e.g. package covectest's Counted), inspect it
// through ConstAt instead, which hands back a pointer into the live
// element rather than a detached copy.
func (v *Vector[T]) Get(i int) T {
	return *v.ConstAt(i)
}

// ConstAt returns a pointer to the element at index i without detaching
// (the const counterpart of At). Do not mutate through it, and do not
// retain it across any call that mutates v. Panics if i is out of
// [0, Len()).
func (v *Vector[T]) ConstAt(i int) *T {
	n := v.Len()
	if i < 0 || i >= n {
		panic("covector: get: index out of range")
	}
	if v.state == stateInline {
		return &v.inline
	}
	return &v.buf.data[i]
}

// Set assigns x to the element at index i, through the same copy-assign
// hook used internally (so an element type's CovectorCopyFrom still
// participates in fault injection via Set). Forces a COW detach first.
func (v *Vector[T]) Set(i int, x T) error {
	ptr, err := v.At(i)
	if err != nil {
		return err
	}
	return assignElement(ptr, &x, "set", i)
}

// Front returns a pointer to the first element, detaching first. Panics if
// v is empty.
func (v *Vector[T]) Front() (*T, error) {
	return v.At(0)
}

// Back returns a pointer to the last element, detaching first. Panics if v
// is empty.
func (v *Vector[T]) Back() (*T, error) {
	return v.At(v.Len() - 1)
}

// FrontValue returns a copy of the first element without detaching. Panics
// if v is empty.
func (v *Vector[T]) FrontValue() T {
	return v.Get(0)
}

// BackValue returns a copy of the last element without detaching. Panics
// if v is empty.
func (v *Vector[T]) BackValue() T {
	return v.Get(v.Len() - 1)
}

// Data returns v's elements as a slice, detaching first if Shared. For the
// Empty state this is nil; for the Inline state, storage is not a slice at
// all (there is no separate backing array for a single inline element), so
// the returned slice is a length-1 copy rather than a live alias -- mutate
// through At or Set in that state instead, or PushBack a second element to
// force promotion to a true backing array.
func (v *Vector[T]) Data() ([]T, error) {
	const op = "data"
	switch v.state {
	case stateEmpty:
		return nil, nil
	case stateInline:
		return []T{v.inline}, nil
	default:
		if err := detachIfShared(v, op); err != nil {
			return nil, err
		}
		return v.buf.data[:v.buf.size], nil
	}
}

// ConstData returns v's elements as a read-only view, without detaching.
// The slice aliases shared storage when v is Shared: do not mutate it, and
// do not retain it across a call that mutates v.
func (v *Vector[T]) ConstData() []T {
	switch v.state {
	case stateEmpty:
		return nil
	case stateInline:
		return []T{v.inline}
	default:
		return v.buf.data[:v.buf.size]
	}
}
