package covectest

import (
	"unsafe"

	"github.com/covector/covector/faultinject"
)

// Counted is a container element type for exercising package covector's
// element-hook and fault-injection protocol, grounded on the original
// source's instance-tracked counted test type. A Counted becomes tracked
// -- registered by its own address in the package's live-instance set,
// and subject to the address-keyed transcoding described below -- only
// once it becomes resident in a Vector via CovectorConstruct or
// CovectorCopyFrom. An ephemeral scratch value built with NewCounted is
// never tracked: Go has no destructor to ever unregister it, so treating
// every Counted as tracked from the moment it's created would manifest as
// a permanent false "leak" for every local variable and function
// argument that merely passes through a value on its way into a Vector.
//
// A tracked instance's logical value is stored XOR'd with a key derived
// from its own address, so that a misplaced byte-level copy (bypassing
// CovectorCopyFrom, e.g. a raw memcpy of the backing array) decodes to
// the wrong value once read back at its new address, instead of silently
// producing the right answer for the wrong reason.
type Counted struct {
	store   int
	tracked bool
}

// NewCounted returns an untracked scratch value holding value. Pass it to
// Vector methods like PushBack or Insert; it becomes tracked only once
// the container actually copy-constructs it into a slot.
func NewCounted(value int) Counted {
	return Counted{store: value}
}

// Value returns c's logical value.
func (c *Counted) Value() int {
	return c.logical()
}

func (c *Counted) logical() int {
	if !c.tracked {
		return c.store
	}
	return c.store ^ transcodeKey(c)
}

func transcodeKey(c *Counted) int {
	return int(uintptr(unsafe.Pointer(c))) / int(unsafe.Sizeof(*c))
}

// track installs value as c's logical value, registering c as a new live
// instance the first time it becomes resident.
func (c *Counted) track(value int) {
	if !c.tracked {
		register(unsafe.Pointer(c))
		c.tracked = true
	}
	c.store = value ^ transcodeKey(c)
}

// CovectorConstruct default-constructs c in place with logical value 0,
// as used by Vector.Resize when growing. Injects a fault before touching
// c, so a failure leaves c exactly as it was (typically its Go zero
// value).
func (c *Counted) CovectorConstruct() error {
	if err := faultinject.InjectionPoint("covectest.counted.construct"); err != nil {
		return err
	}
	c.track(0)
	return nil
}

// CovectorCopyFrom copies src's logical value into c. If c is not yet
// tracked, this is a copy-construction and c becomes a newly tracked
// instance; if c is already tracked (the middle-Erase tail shift reuses
// this hook for assignment), its value is simply overwritten in place. A
// fault is injected before either outcome, so failure leaves c untouched.
func (c *Counted) CovectorCopyFrom(src *Counted) error {
	if err := faultinject.InjectionPoint("covectest.counted.copy"); err != nil {
		return err
	}
	c.track(src.logical())
	return nil
}

// CovectorDestroy unregisters c if it was tracked, then reports any fault
// injected at "covectest.counted.destroy". Unregistration always happens
// first, unconditionally -- mirroring package covector's own
// destroyElement, which always clears a slot regardless of whether the
// hook errors, since Go has no notion of a destructor that leaves storage
// half-freed. A reported failure here models an external side effect of
// destruction failing (e.g. a resource close), not the instance actually
// staying live; callers must still treat the element as destroyed.
func (c *Counted) CovectorDestroy() error {
	if !c.tracked {
		return nil
	}
	unregister(unsafe.Pointer(c))
	c.tracked = false
	c.store = 0
	return faultinject.InjectionPoint("covectest.counted.destroy")
}
