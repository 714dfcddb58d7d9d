package covector

// PushBack appends x to the end of v. Strong guarantee: on any error v is
// left exactly as it was before the call (spec.md 4.5).
//
// Because Go always passes x by value, any aliasing of the form
// v.PushBack(v.Get(i)) is already safe -- the caller's Get(i) materializes an
// independent copy of the element before PushBack ever runs, unlike the
// original C++ API where the same call must guard against the source
// reference being invalidated by the container's own reallocation.
func (v *Vector[T]) PushBack(x T) error {
	const op = "push_back"
	switch v.state {
	case stateEmpty:
		if err := copyElement(&v.inline, &x, op, 0); err != nil {
			return err
		}
		v.state = stateInline
		return nil

	case stateInline:
		buf, err := buildBufferFromInlinePlusOne(&v.inline, &x, defaultCapacity, op)
		if err != nil {
			return err
		}
		v.state = stateShared
		v.buf = buf
		return destroyElement(&v.inline, op, 0)

	default: // stateShared
		if v.buf.size == v.buf.cap {
			buf, err := buildBufferFromSharedPlusOne(v.buf, doubleCapacity(v.buf.cap), &x, op)
			if err != nil {
				return err
			}
			old := v.buf
			v.buf = buf
			return old.release(op)
		}
		if v.buf.isUnique() {
			if err := copyElement(&v.buf.data[v.buf.size], &x, op, v.buf.size); err != nil {
				return err
			}
			v.buf.size++
			return nil
		}
		// shared, has slack: build a same-capacity private copy plus x,
		// leaving the still-shared original completely untouched on failure.
		buf, err := buildBufferFromSharedPlusOne(v.buf, v.buf.cap, &x, op)
		if err != nil {
			return err
		}
		old := v.buf
		v.buf = buf
		return old.release(op)
	}
}

// PopBack removes the last element. Panics if v is empty, mirroring the
// undefined-behavior-on-empty contract of the original (spec.md 4.5, C7
// bounds conventions).
func (v *Vector[T]) PopBack() error {
	const op = "pop_back"
	switch v.state {
	case stateEmpty:
		panic("covector: pop_back: vector is empty")
	case stateInline:
		err := destroyElement(&v.inline, op, 0)
		*v = Vector[T]{}
		return err
	default: // stateShared
		if err := detachIfShared(v, op); err != nil {
			return err
		}
		idx := v.buf.size - 1
		err := destroyElement(&v.buf.data[idx], op, idx)
		v.buf.size--
		return err
	}
}

// Insert inserts x before index pos, returning the index it ends up at
// (always pos). Panics if pos is out of [0, Len()] (spec.md C7 bounds
// conventions). Strong guarantee throughout (spec.md 4.5).
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	const op = "insert"
	n := v.Len()
	if pos < 0 || pos > n {
		panic("covector: insert: position out of range")
	}
	if pos == n {
		if err := v.PushBack(x); err != nil {
			return pos, err
		}
		return pos, nil
	}

	switch v.state {
	case stateInline:
		// pos < n == 1, so pos must be 0: insert before the sole element.
		buf, err := buildInsertInlineBuffer(&v.inline, &x, defaultCapacity, op)
		if err != nil {
			return pos, err
		}
		v.state = stateShared
		v.buf = buf
		return pos, destroyElement(&v.inline, op, 0)

	default: // stateShared, pos strictly inside [0, size)
		newCap := v.buf.cap
		if v.buf.size == v.buf.cap {
			newCap = doubleCapacity(v.buf.cap)
		}
		buf, err := buildInsertBuffer(v.buf, pos, &x, newCap, op)
		if err != nil {
			return pos, err
		}
		old := v.buf
		v.buf = buf
		return pos, old.release(op)
	}
}

// Erase removes the single element at pos. Equivalent to
// EraseRange(pos, pos+1).
func (v *Vector[T]) Erase(pos int) (int, error) {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last), returning the index the
// following element now occupies (== first). Strong guarantee when last ==
// Len() (pure truncation, no tail shift); Basic otherwise, since the tail
// shift uses copy-assignment, which can fail (spec.md 4.5, erase).
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	const op = "erase"
	n := v.Len()
	if first < 0 || last > n || first > last {
		panic("covector: erase: invalid range")
	}
	if first == last {
		return first, nil
	}
	if v.state == stateInline {
		// the only possible range is [0, 1): removes the sole element.
		if err := v.Clear(); err != nil {
			return 0, err
		}
		return 0, nil
	}

	if err := detachIfShared(v, op); err != nil {
		return first, err
	}
	data := v.buf.data
	size := v.buf.size
	eraseLen := last - first

	if err := destroyRange(data, first, last, op); err != nil {
		// [first, last) is already fully destroyed (destroyRange always
		// finishes its run before reporting), but the tail [last, size)
		// hasn't been shifted down yet. Leaving it in place while reporting
		// size == first would orphan it: Len() would no longer reach it, and
		// buffer.release only ever walks [0, size), so it would never be
		// destroyed either. Destroy it too before giving up, the same way
		// the shift-loop failure branch below does.
		_ = destroyRange(data, last, size, op)
		v.buf.size = first
		return first, err
	}
	for i := last; i < size; i++ {
		if err := assignElement(&data[i-eraseLen], &data[i], op, i-eraseLen); err != nil {
			_ = destroyRange(data, i, size, op)
			v.buf.size = i - eraseLen
			return first, err
		}
	}
	// the final eraseLen slots now hold stale duplicates of elements that
	// were just relocated earlier in the array by the shift above; they
	// must go through the destroy hook like any other retired element,
	// not be dropped by a raw overwrite.
	destroyErr := destroyRange(data, size-eraseLen, size, op)
	v.buf.size = size - eraseLen
	return first, destroyErr
}

// Assign replaces v's contents with copies of s. Strong guarantee: s is
// fully copy-constructed into a fresh Vector before v is touched, exactly
// the same temporary-then-swap shape as the original's iterator-pair
// assign (spec.md 4.5).
func (v *Vector[T]) Assign(s []T) error {
	tmp, err := NewFromSlice(s)
	if err != nil {
		return err
	}
	v.Swap(&tmp)
	return tmp.Clear()
}

// Resize grows or shrinks v to exactly n elements. Growing default-
// constructs the new tail elements (spec.md 4.5); shrinking destroys the
// elements beyond n. Panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	const op = "resize"
	if n < 0 {
		panic("covector: resize: negative size")
	}
	cur := v.Len()
	if n == cur {
		return nil
	}
	if n < cur {
		if v.state == stateInline {
			return v.Clear() // n must be 0
		}
		if err := detachIfShared(v, op); err != nil {
			return err
		}
		if err := destroyRange(v.buf.data, n, v.buf.size, op); err != nil {
			v.buf.size = n
			return err
		}
		v.buf.size = n
		return nil
	}

	// n > cur: grow, default-constructing the tail. The new storage is
	// built fully off to the side; v is only touched once every
	// construction has succeeded (Strong guarantee).
	switch v.state {
	case stateEmpty:
		if n == 1 {
			if err := constructElement(&v.inline, op, 0); err != nil {
				return err
			}
			v.state = stateInline
			return nil
		}
		buf, err := newBuffer[T](n, op)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := constructElement(&buf.data[i], op, i); err != nil {
				_ = destroyRange(buf.data, 0, i, op)
				_ = buf.release(op)
				return err
			}
		}
		buf.size = n
		v.state = stateShared
		v.buf = buf
		return nil

	case stateInline:
		buf, err := newBuffer[T](n, op)
		if err != nil {
			return err
		}
		if err := copyElement(&buf.data[0], &v.inline, op, 0); err != nil {
			_ = buf.release(op)
			return err
		}
		for i := 1; i < n; i++ {
			if err := constructElement(&buf.data[i], op, i); err != nil {
				_ = destroyRange(buf.data, 0, i, op)
				_ = buf.release(op)
				return err
			}
		}
		buf.size = n
		v.state = stateShared
		v.buf = buf
		return destroyElement(&v.inline, op, 0)

	default: // stateShared
		newCap := n
		if v.buf.cap > newCap {
			newCap = v.buf.cap
		}
		old := v.buf
		buf, err := newBuffer[T](newCap, op)
		if err != nil {
			return err
		}
		for i := 0; i < old.size; i++ {
			if err := copyElement(&buf.data[i], &old.data[i], op, i); err != nil {
				_ = destroyRange(buf.data, 0, i, op)
				_ = buf.release(op)
				return err
			}
		}
		for i := old.size; i < n; i++ {
			if err := constructElement(&buf.data[i], op, i); err != nil {
				_ = destroyRange(buf.data, 0, i, op)
				_ = buf.release(op)
				return err
			}
		}
		buf.size = n
		if err := old.release(op); err != nil {
			v.buf = buf
			return err
		}
		v.buf = buf
		return nil
	}
}

// Reserve ensures v's capacity is at least n, without changing Len or
// contents. A no-op if n <= Cap() (spec.md 4.4).
func (v *Vector[T]) Reserve(n int) error {
	const op = "reserve"
	if n <= v.Cap() {
		return nil
	}
	switch v.state {
	case stateEmpty:
		return growEmptyToHeap(v, n, op)
	case stateInline:
		return growInlineToHeap(v, n, op)
	default:
		return reallocate(v, n, op)
	}
}

// ShrinkToFit reduces v's capacity to fit its current length exactly,
// demoting a Shared Vector of length 1 back to Inline and a Shared Vector
// of length 0 to Empty (spec.md 4.4). A no-op if capacity already equals
// length.
func (v *Vector[T]) ShrinkToFit() error {
	const op = "shrink_to_fit"
	if v.state != stateShared || v.buf.size == v.buf.cap {
		return nil
	}
	if v.buf.size == 0 {
		return v.Clear()
	}
	if v.buf.size == 1 {
		old := v.buf
		if err := copyElement(&v.inline, &old.data[0], op, 0); err != nil {
			return err
		}
		v.state = stateInline
		v.buf = nil
		return old.release(op)
	}
	return reallocate(v, v.buf.size, op)
}

// Swap exchanges the contents of v and other. Unlike the original's
// std::variant-based swap -- which must build a temporary and can fail
// (throw) whenever the two operands are in different variant alternatives
// -- exchanging Go struct fields directly can never fail: both v and other
// remain fully valid regardless of their states going in. This resolves
// the "swap of two Inline vectors" question strictly better than either
// discussed original behavior (neither operand is ever left null).
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}
