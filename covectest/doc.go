// Package covectest provides a process-wide instance tracker and an
// instance-tracked element type (Counted) for exercising package
// covector's element-hook and fault-injection protocol in tests.
//
// Counted plugs into covector.Vector[Counted] via the optional
// CovectorConstruct/CovectorCopyFrom/CovectorDestroy hooks. Every time one
// becomes resident in a Vector it is registered by its own address in a
// package-level live-instance set; every time one stops being resident it
// is unregistered. A NoNewInstancesGuard snapshots that set and later
// asserts it is unchanged, catching both leaks (an instance that should
// have been destroyed wasn't) and double-frees or stray constructions.
//
// Tracker mutations run with package faultinject's injection suppressed,
// so bookkeeping can never itself be the thing a test's fault injection
// causes to fail.
package covectest
