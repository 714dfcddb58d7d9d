package covector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covector/covector/covectest"
	"github.com/covector/covector/faultinject"
)

// buildS1 runs scenario S1: push (42+i) mod 13 for i in [0,20).
func buildS1(t *testing.T) *Vector[int] {
	t.Helper()
	var v Vector[int]
	for i := 0; i < 20; i++ {
		require.NoError(t, v.PushBack((42+i)%13))
	}
	return &v
}

func TestScenarioS1_PushBackDoubling(t *testing.T) {
	v := buildS1(t)
	require.Equal(t, 20, v.Len())
	for i := 0; i < 20; i++ {
		assert.Equal(t, (42+i)%13, v.Get(i))
	}
}

// buildS2 runs scenario S2: the insert cascade.
func buildS2(t *testing.T) *Vector[int] {
	t.Helper()
	var v Vector[int]
	steps := []struct {
		pos int
		x   int
	}{
		{0, 15}, {1, 42}, {1, 16}, {2, 23}, {0, 4}, {1, 8},
	}
	for _, s := range steps {
		_, err := v.Insert(s.pos, s.x)
		require.NoError(t, err)
	}
	return &v
}

func TestScenarioS2_InsertCascade(t *testing.T) {
	v := buildS2(t)
	assert.Equal(t, []int{4, 8, 15, 16, 23, 42}, v.ConstData())
}

func TestScenarioS3_MiddleRangeErase(t *testing.T) {
	v := buildS2(t)
	idx, err := v.EraseRange(2, v.Len()-1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, []int{4, 8, 42}, v.ConstData())
}

func TestScenarioS4_COWIndependence(t *testing.T) {
	c, err := NewFromSlice([]int{1, 2, 3})
	require.NoError(t, err)
	d, err := c.Clone()
	require.NoError(t, err)

	require.NoError(t, d.Set(2, 10))
	assert.Equal(t, 3, c.Get(2))
	assert.Equal(t, 10, d.Get(2))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, d.Len())

	require.NoError(t, d.PushBack(4))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 4, d.Len())
}

// TestScenarioS5_SelfAssignmentNoOp models the original's "c = c" as
// Assign(c.ConstData()): Go has no assignment-operator overload, so a
// literal `c = c` is always a trivial, zero-cost struct self-copy that
// never touches the buffer. Assign-from-own-contents is the closest
// operation that actually exercises the COW/allocation machinery the way
// self-assignment does in the original.
func TestScenarioS5_SelfAssignmentNoOp(t *testing.T) {
	guard := covectest.NewNoNewInstancesGuard()
	defer guard.Close(t)

	c, err := NewFromSlice([]covectest.Counted{
		covectest.NewCounted(1), covectest.NewCounted(2), covectest.NewCounted(3),
	})
	require.NoError(t, err)

	require.NoError(t, c.Assign(c.ConstData()))
	assert.Equal(t, 3, c.Len())
	for i, want := range []int{1, 2, 3} {
		assert.Equal(t, want, c.ConstAt(i).Value())
	}

	require.NoError(t, c.Clear())
}

func TestScenarioS6_PushBackOfOwnElement(t *testing.T) {
	v, err := NewFromSlice([]int{0, 1})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.NoError(t, v.PushBack(v.Get(v.Len()-2)))
	}
	require.Equal(t, 22, v.Len())
	for i := 0; i < 22; i++ {
		assert.Equal(t, i%2, v.Get(i))
	}
}

// TestScenarios_Faulty wraps each scenario in the replay driver, per
// spec.md 8's "fault-injection scenarios" requirement: every countdown
// value either reproduces the expected result or raises ErrInjectedFault
// while leaving the live-instance set untouched.
func TestScenarios_Faulty(t *testing.T) {
	t.Run("S1", func(t *testing.T) {
		guard := covectest.NewNoNewInstancesGuard()
		defer guard.Close(t)

		err := faultinject.FaultyRun(func() error {
			var v Vector[covectest.Counted]
			for i := 0; i < 20; i++ {
				if err := v.PushBack(covectest.NewCounted((42 + i) % 13)); err != nil {
					_ = v.Clear()
					return err
				}
			}
			return v.Clear()
		})
		require.NoError(t, err)
	})

	t.Run("S2", func(t *testing.T) {
		guard := covectest.NewNoNewInstancesGuard()
		defer guard.Close(t)

		steps := []struct {
			pos int
			x   int
		}{
			{0, 15}, {1, 42}, {1, 16}, {2, 23}, {0, 4}, {1, 8},
		}
		err := faultinject.FaultyRun(func() error {
			var v Vector[covectest.Counted]
			for _, s := range steps {
				if _, err := v.Insert(s.pos, covectest.NewCounted(s.x)); err != nil {
					_ = v.Clear()
					return err
				}
			}
			return v.Clear()
		})
		require.NoError(t, err)
	})

	t.Run("S3", func(t *testing.T) {
		guard := covectest.NewNoNewInstancesGuard()
		defer guard.Close(t)

		steps := []struct {
			pos int
			x   int
		}{
			{0, 15}, {1, 42}, {1, 16}, {2, 23}, {0, 4}, {1, 8},
		}
		err := faultinject.FaultyRun(func() error {
			var v Vector[covectest.Counted]
			for _, s := range steps {
				if _, err := v.Insert(s.pos, covectest.NewCounted(s.x)); err != nil {
					_ = v.Clear()
					return err
				}
			}
			if _, err := v.EraseRange(2, v.Len()-1); err != nil {
				_ = v.Clear()
				return err
			}
			return v.Clear()
		})
		require.NoError(t, err)
	})

	t.Run("S4", func(t *testing.T) {
		guard := covectest.NewNoNewInstancesGuard()
		defer guard.Close(t)

		err := faultinject.FaultyRun(func() error {
			c, err := NewFromSlice([]covectest.Counted{
				covectest.NewCounted(1), covectest.NewCounted(2), covectest.NewCounted(3),
			})
			if err != nil {
				return err
			}
			d, err := c.Clone()
			if err != nil {
				_ = c.Clear()
				return err
			}
			if err := d.Set(2, covectest.NewCounted(10)); err != nil {
				_ = c.Clear()
				_ = d.Clear()
				return err
			}
			if err := d.PushBack(covectest.NewCounted(4)); err != nil {
				_ = c.Clear()
				_ = d.Clear()
				return err
			}
			_ = c.Clear()
			return d.Clear()
		})
		require.NoError(t, err)
	})

	t.Run("S5", func(t *testing.T) {
		guard := covectest.NewNoNewInstancesGuard()
		defer guard.Close(t)

		err := faultinject.FaultyRun(func() error {
			c, err := NewFromSlice([]covectest.Counted{
				covectest.NewCounted(1), covectest.NewCounted(2), covectest.NewCounted(3),
			})
			if err != nil {
				return err
			}
			if err := c.Assign(c.ConstData()); err != nil {
				_ = c.Clear()
				return err
			}
			return c.Clear()
		})
		require.NoError(t, err)
	})

	t.Run("S6", func(t *testing.T) {
		// plain int elements: S6's point is exercising the aliasing rule
		// during allocation/growth, not per-element hooks, and a tracked
		// covectest.Counted can't safely round-trip through a bare T-typed
		// local the way Get's return value forces here (see access.go's
		// Get-vs-ConstAt doc comment).
		err := faultinject.FaultyRun(func() error {
			v, err := NewFromSlice([]int{0, 1})
			if err != nil {
				return err
			}
			for i := 0; i < 20; i++ {
				if err := v.PushBack(v.Get(v.Len() - 2)); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)
	})
}
