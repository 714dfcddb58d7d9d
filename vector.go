package covector

// state is the storage discriminator (spec.md C1): the container is always
// in exactly one of three states.
type state uint8

const (
	stateEmpty state = iota
	stateInline
	stateShared
)

// defaultCapacity is the capacity a Vector grows to the first time it needs
// heap storage (spec.md 4.4, "Inline -> heap transition").
const defaultCapacity = 2

// Vector is a dynamic sequence with inline storage for length <= 1 and
// reference-counted, copy-on-write heap storage beyond that. The zero value
// is a ready-to-use, empty Vector. See the package doc comment for the
// assignment-versus-Clone caveat.
type Vector[T any] struct {
	state  state
	inline T
	buf    *buffer[T]
}

// NewFromSlice constructs a Vector from a slice of elements, copying each
// one. A one-element slice yields the Inline state; every other length,
// including zero, yields the Shared state with size == capacity == len(s)
// (spec.md 3.4) -- matching the original's iterator-pair constructor, which
// can only special-case a length-one range by comparing first+1 == last and
// otherwise always allocates a heap buffer, even an empty one.
func NewFromSlice[T any](s []T) (Vector[T], error) {
	if len(s) == 1 {
		var v Vector[T]
		if err := copyElement(&v.inline, &s[0], "new_from_slice", 0); err != nil {
			return Vector[T]{}, err
		}
		v.state = stateInline
		return v, nil
	}

	buf, err := newBuffer[T](len(s), "new_from_slice")
	if err != nil {
		return Vector[T]{}, err
	}
	for i := range s {
		if err := copyElement(&buf.data[i], &s[i], "new_from_slice", i); err != nil {
			_ = destroyRange(buf.data, 0, i, "new_from_slice")
			return Vector[T]{}, err
		}
	}
	buf.size = len(s)
	return Vector[T]{state: stateShared, buf: buf}, nil
}

// Clone returns an independent copy of v. In the Shared state this is a
// cheap reference-count bump (no element is copied, matching the COW
// contract); the returned Vector and v observe the same contents until one
// of them is mutated, at which point the mutator privatizes its own buffer.
// In the Empty and Inline states, Clone copies the (at most one) element
// directly; on failure -- only possible if T implements a copy hook that
// can fail, see package covectest.Counted -- the returned Vector is the
// zero value and err is non-nil (Strong guarantee: v itself is untouched).
func (v *Vector[T]) Clone() (Vector[T], error) {
	switch v.state {
	case stateEmpty:
		return Vector[T]{}, nil
	case stateInline:
		var out Vector[T]
		if err := copyElement(&out.inline, &v.inline, "clone", 0); err != nil {
			return Vector[T]{}, err
		}
		out.state = stateInline
		return out, nil
	default: // stateShared
		v.buf.acquire()
		return Vector[T]{state: stateShared, buf: v.buf}, nil
	}
}

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int {
	switch v.state {
	case stateEmpty:
		return 0
	case stateInline:
		return 1
	default:
		return v.buf.size
	}
}

// Cap returns the current capacity of v (spec.md invariant 5).
func (v *Vector[T]) Cap() int {
	switch v.state {
	case stateShared:
		return v.buf.cap
	default:
		return 1
	}
}

// IsEmpty reports whether v holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Clear releases any held buffer and returns v to the Empty state. Never
// returns an error unless an element's destroy hook fails (spec.md 4.5:
// noexcept except via element destructor).
func (v *Vector[T]) Clear() error {
	var err error
	switch v.state {
	case stateShared:
		err = v.buf.release("clear")
	case stateInline:
		err = destroyElement(&v.inline, "clear", 0)
	}
	*v = Vector[T]{}
	return err
}
