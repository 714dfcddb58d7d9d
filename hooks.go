package covector

import "github.com/covector/covector/faultinject"

// Element construction, copying and destruction are external collaborators
// (spec.md section 1, "Out of scope"): the container is generic over them
// and must tolerate any failure behavior they choose to exhibit. Go has no
// user-defined copy constructors or destructors, so plain assignment of a T
// can never itself fail. To let a T still participate in the documented
// fault-injection protocol (as package covectest's Counted does, mirroring
// the original counted test type's throwing constructors), a T may
// optionally implement any of the hook interfaces below; types that don't
// implement a given hook get the trivial zero-cost Go behavior (plain
// assignment / zero value), matching plain int or string element types used
// by scenarios S1-S3.
//
// The interfaces are declared locally, inside the generic helper functions
// below, because a method set that mentions the enclosing function's type
// parameter can only be named from within that function's scope.

func constructElement[T any](dst *T, op string, index int) error {
	type constructor interface{ CovectorConstruct() error }
	if c, ok := any(dst).(constructor); ok {
		if err := c.CovectorConstruct(); err != nil {
			return &ElementConstructionError{Op: op, Index: index, Err: err}
		}
		return nil
	}
	var zero T
	*dst = zero
	return nil
}

func copyElement[T any](dst, src *T, op string, index int) error {
	type copier interface{ CovectorCopyFrom(src *T) error }
	if c, ok := any(dst).(copier); ok {
		if err := c.CovectorCopyFrom(src); err != nil {
			return &ElementConstructionError{Op: op, Index: index, Err: err}
		}
		return nil
	}
	*dst = *src
	return nil
}

// assignElement performs the copy-assignment used by the middle-erase tail
// shift (spec.md 4.5, erase): a failure here is an ElementAssignmentError,
// not an ElementConstructionError, since the destination slot already held a
// live element being overwritten rather than being newly constructed.
func assignElement[T any](dst, src *T, op string, index int) error {
	type copier interface{ CovectorCopyFrom(src *T) error }
	if c, ok := any(dst).(copier); ok {
		if err := c.CovectorCopyFrom(src); err != nil {
			return &ElementAssignmentError{Op: op, Index: index, Err: err}
		}
		return nil
	}
	*dst = *src
	return nil
}

func destroyElement[T any](dst *T, op string, index int) error {
	type destroyer interface{ CovectorDestroy() error }
	var firstErr error
	if d, ok := any(dst).(destroyer); ok {
		if err := d.CovectorDestroy(); err != nil {
			firstErr = &ElementDestructionError{Op: op, Index: index, Err: err}
		}
	}
	var zero T
	*dst = zero
	return firstErr
}

// allocationPoint is the single injection point AllocationError originates
// from: every buffer allocation or growth in this package passes through it
// first, before any element is constructed or copied into the new storage.
func allocationPoint(op string) error {
	if err := faultinject.InjectionPoint("covector." + op + ".alloc"); err != nil {
		return &AllocationError{Op: op, Err: err}
	}
	return nil
}
