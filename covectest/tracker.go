package covectest

import (
	"fmt"
	"unsafe"

	"github.com/covector/covector/faultinject"
)

var live = make(map[unsafe.Pointer]struct{})

// register records p as holding a live, tracked instance. It panics if p
// is already registered: that would mean two instances share one address
// while both are alive, which cannot happen for an ordinary Go value
// unless a tracked Counted was copied by raw assignment instead of going
// through CovectorCopyFrom.
func register(p unsafe.Pointer) {
	d := faultinject.NewDisable()
	defer d.Close()
	if _, ok := live[p]; ok {
		panic(fmt.Sprintf("covectest: address %p already registered as live", p))
	}
	live[p] = struct{}{}
}

// unregister removes p from the live set. It panics if p was not
// registered, which would indicate a double-destroy.
func unregister(p unsafe.Pointer) {
	d := faultinject.NewDisable()
	defer d.Close()
	if _, ok := live[p]; !ok {
		panic(fmt.Sprintf("covectest: address %p not registered as live", p))
	}
	delete(live, p)
}

func snapshot() map[unsafe.Pointer]struct{} {
	d := faultinject.NewDisable()
	defer d.Close()
	out := make(map[unsafe.Pointer]struct{}, len(live))
	for p := range live {
		out[p] = struct{}{}
	}
	return out
}

// LiveCount returns the number of currently-tracked instances. Mostly
// useful for ad-hoc diagnostics; prefer NoNewInstancesGuard for assertions.
func LiveCount() int {
	return len(snapshot())
}

// TestingT is the subset of *testing.T that NoNewInstancesGuard needs,
// satisfied by *testing.T and *testing.B without importing "testing"
// here.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// NoNewInstancesGuard snapshots the live-instance set at construction and
// later asserts nothing changed (spec.md 4.8): no leaked instance, and no
// stray instance surviving that wasn't there before.
type NoNewInstancesGuard struct {
	at map[unsafe.Pointer]struct{}
}

// NewNoNewInstancesGuard snapshots the current live-instance set.
func NewNoNewInstancesGuard() *NoNewInstancesGuard {
	return &NoNewInstancesGuard{at: snapshot()}
}

// ExpectNoInstances asserts the live-instance set is identical to the one
// captured at construction, reporting every discrepancy via t.Errorf
// rather than stopping at the first one.
func (g *NoNewInstancesGuard) ExpectNoInstances(t TestingT) {
	t.Helper()
	now := snapshot()
	for p := range now {
		if _, ok := g.at[p]; !ok {
			t.Errorf("covectest: stray live instance at %p not present in snapshot", p)
		}
	}
	for p := range g.at {
		if _, ok := now[p]; !ok {
			t.Errorf("covectest: instance at %p from snapshot is no longer live", p)
		}
	}
}

// Close is an alias for ExpectNoInstances, for use with defer at the top
// of a test alongside NewNoNewInstancesGuard.
func (g *NoNewInstancesGuard) Close(t TestingT) {
	g.ExpectNoInstances(t)
}
