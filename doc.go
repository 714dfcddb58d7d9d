// Package covector implements a dynamic sequence container that fuses two
// optimizations into a single value layout: small-object (inline) storage
// for sequences of at most one element, and reference-counted, copy-on-write
// heap storage for everything larger.
//
// A zero-value Vector[T] is an empty, ready-to-use sequence. Vector holds at
// most one element directly (no allocation); once a second element arrives,
// storage is promoted to a reference-counted heap buffer shared between
// copies produced by Clone, and privatized (cloned) on first mutation after
// a share.
//
// Vector must not be copied by plain Go assignment once it may hold a shared
// buffer: use [Vector.Clone] to obtain an independent, COW-sharing copy.
// Copying an Empty or single-element (Inline) Vector by assignment is safe,
// since no shared pointer is involved in either of those states, but relying
// on that is fragile once a Vector has ever held more than one element -- a
// later mutation can promote it back to Shared behind your back. Prefer
// Clone everywhere.
//
// See package faultinject for the fault-injection harness used by this
// package's own tests, and package covectest for the instance-tracked test
// element type (Counted) and leak-detection guard built on top of it.
package covector
