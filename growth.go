package covector

// doubleCapacity implements the doubling policy of spec.md 4.4: when more
// room is needed, new capacity is max(2, 2*capacity).
func doubleCapacity(capacity int) int {
	return max(defaultCapacity, 2*capacity)
}

// growEmptyToHeap transitions an Empty Vector straight to the Shared state
// with an empty (size 0) buffer of the given capacity. On failure v is left
// unchanged (still Empty) -- Strong guarantee.
func growEmptyToHeap[T any](v *Vector[T], newCap int, op string) error {
	buf, err := newBuffer[T](newCap, op)
	if err != nil {
		return err
	}
	v.state = stateShared
	v.buf = buf
	return nil
}

// growInlineToHeap transitions an Inline Vector to the Shared state,
// allocating newCap capacity and copy-constructing the single inline
// element into slot 0 (spec.md 4.4, "Inline -> heap transition"). On any
// failure the original remains Inline, unchanged (Strong guarantee).
func growInlineToHeap[T any](v *Vector[T], newCap int, op string) error {
	buf, err := newBuffer[T](newCap, op)
	if err != nil {
		return err
	}
	if err := copyElement(&buf.data[0], &v.inline, op, 0); err != nil {
		_ = buf.release(op)
		return err
	}
	buf.size = 1
	v.state = stateShared
	v.buf = buf
	// the old inline instance is now a separate, redundant copy from the
	// one just installed at buf.data[0]; retire it through the destroy
	// hook so an instance tracker sees it actually go away, rather than
	// being silently overwritten by a raw struct assignment.
	return destroyElement(&v.inline, op, 0)
}

// reallocate builds a fresh buffer of the given capacity containing copies
// of all of v's current live elements (v must be Shared), then installs it
// on v and releases the old buffer. It is the single workhorse behind
// Reserve's growth path, the COW privatizer (detachIfShared), and
// ShrinkToFit's Shared -> Shared path. On failure, v is left referencing
// its original, untouched buffer -- Strong guarantee.
func reallocate[T any](v *Vector[T], newCap int, op string) error {
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
	buf.size = old.size
	if err := old.release(op); err != nil {
		// the new buffer is fully valid and becomes v's storage regardless;
		// a destruction error on the buffer being replaced is reported but
		// never blocks installing the (already successfully built) new one.
		v.buf = buf
		return err
	}
	v.buf = buf
	return nil
}

// detachIfShared is the gate for every mutation of a Shared Vector
// (spec.md 4.3, the COW privatizer). If v's buffer is uniquely owned it is
// a no-op; otherwise a same-capacity private copy is made and installed.
func detachIfShared[T any](v *Vector[T], op string) error {
	if v.state != stateShared || v.buf.isUnique() {
		return nil
	}
	return reallocate(v, v.buf.cap, op)
}

// buildBufferFromInlinePlusOne builds -- without touching v -- a fresh
// 2-element buffer holding inlineVal at slot 0 and extra at slot 1. Used by
// PushBack's Inline -> Shared transition: nothing is committed to v until
// both copies succeed, so a failure at either step leaves v's original
// Inline value completely untouched (Strong guarantee).
func buildBufferFromInlinePlusOne[T any](inlineVal, extra *T, newCap int, op string) (*buffer[T], error) {
	buf, err := newBuffer[T](newCap, op)
	if err != nil {
		return nil, err
	}
	if err := copyElement(&buf.data[0], inlineVal, op, 0); err != nil {
		_ = buf.release(op)
		return nil, err
	}
	if err := copyElement(&buf.data[1], extra, op, 1); err != nil {
		_ = destroyRange(buf.data, 0, 1, op)
		_ = buf.release(op)
		return nil, err
	}
	buf.size = 2
	return buf, nil
}

// buildBufferFromSharedPlusOne builds -- without touching old -- a fresh
// buffer of newCap capacity holding copies of all of old's elements
// followed by extra. Used by PushBack's Shared-state growth and
// shared-with-slack paths; on failure the caller's existing buffer is
// completely untouched (Strong guarantee).
func buildBufferFromSharedPlusOne[T any](old *buffer[T], newCap int, extra *T, op string) (*buffer[T], error) {
	buf, err := newBuffer[T](newCap, op)
	if err != nil {
		return nil, err
	}
	for i := 0; i < old.size; i++ {
		if err := copyElement(&buf.data[i], &old.data[i], op, i); err != nil {
			_ = destroyRange(buf.data, 0, i, op)
			_ = buf.release(op)
			return nil, err
		}
	}
	if err := copyElement(&buf.data[old.size], extra, op, old.size); err != nil {
		_ = destroyRange(buf.data, 0, old.size, op)
		_ = buf.release(op)
		return nil, err
	}
	buf.size = old.size + 1
	return buf, nil
}

// buildInsertInlineBuffer builds a fresh 2-element buffer holding x before
// oldInline, for Insert(0, x) on an Inline Vector.
func buildInsertInlineBuffer[T any](oldInline, x *T, newCap int, op string) (*buffer[T], error) {
	buf, err := newBuffer[T](newCap, op)
	if err != nil {
		return nil, err
	}
	if err := copyElement(&buf.data[0], x, op, 0); err != nil {
		_ = buf.release(op)
		return nil, err
	}
	if err := copyElement(&buf.data[1], oldInline, op, 1); err != nil {
		_ = destroyRange(buf.data, 0, 1, op)
		_ = buf.release(op)
		return nil, err
	}
	buf.size = 2
	return buf, nil
}

// buildInsertBuffer builds a fresh buffer of newCap capacity holding
// old[0:pos], then x, then old[pos:size] (spec.md 4.5, insert). Used for
// every Insert on a Shared Vector where pos is strictly before end().
func buildInsertBuffer[T any](old *buffer[T], pos int, x *T, newCap int, op string) (*buffer[T], error) {
	buf, err := newBuffer[T](newCap, op)
	if err != nil {
		return nil, err
	}
	i := 0
	for ; i < pos; i++ {
		if err := copyElement(&buf.data[i], &old.data[i], op, i); err != nil {
			_ = destroyRange(buf.data, 0, i, op)
			_ = buf.release(op)
			return nil, err
		}
	}
	if err := copyElement(&buf.data[pos], x, op, pos); err != nil {
		_ = destroyRange(buf.data, 0, pos, op)
		_ = buf.release(op)
		return nil, err
	}
	for j := pos; j < old.size; j++ {
		if err := copyElement(&buf.data[j+1], &old.data[j], op, j+1); err != nil {
			_ = destroyRange(buf.data, 0, j+1, op)
			_ = buf.release(op)
			return nil, err
		}
	}
	buf.size = old.size + 1
	return buf, nil
}
