// Package faultinject implements the deterministic fault-injection harness
// used by package covector's own test suite (and available to any caller
// exercising the same pattern against their own code).
//
// The model is a single counter: once armed, the next N calls to
// InjectionPoint succeed, and the (N+1)th fails with ErrInjectedFault. A
// scoped Disable suppresses injection re-entrantly, for internal
// bookkeeping (e.g. an instance tracker) that must never itself be the
// thing that fails. FaultyRun drives a function through every possible
// failure point it contains, one at a time, by replaying it with the
// counter set to 0, 1, 2, ... until a full run succeeds with no injected
// fault.
//
// State is package-level and not safe for concurrent use from more than
// one goroutine at a time -- matching the single-threaded-per-test-case
// model the harness is specified against.
package faultinject
