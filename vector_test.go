package covector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covector/covector/covectest"
	"github.com/covector/covector/faultinject"
)

func TestVector_ZeroValue(t *testing.T) {
	var v Vector[int]
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 1, v.Cap())
	assert.True(t, v.IsEmpty())
}

func TestNewFromSlice(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		v, err := NewFromSlice[int](nil)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
	})
	t.Run("single element is inline", func(t *testing.T) {
		v, err := NewFromSlice([]int{7})
		require.NoError(t, err)
		assert.Equal(t, 1, v.Len())
		assert.Equal(t, stateInline, v.state)
		assert.Equal(t, 7, v.Get(0))
	})
	t.Run("multiple elements are shared with size == cap", func(t *testing.T) {
		v, err := NewFromSlice([]int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 3, v.Cap())
		assert.Equal(t, []int{1, 2, 3}, v.ConstData())
	})
}

func TestVector_Clone_CopyOnWrite(t *testing.T) {
	v, err := NewFromSlice([]int{1, 2, 3})
	require.NoError(t, err)

	clone, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, v.buf, clone.buf, "clone shares the same buffer pointer")
	assert.Equal(t, 2, v.buf.refcount)

	// mutating the clone must not be observed by the original.
	require.NoError(t, clone.Set(0, 99))
	assert.Equal(t, 1, v.Get(0), "original untouched after clone mutated")
	assert.Equal(t, 99, clone.Get(0))
	assert.NotEqual(t, v.buf, clone.buf, "clone privatized its own buffer on write")
}

func TestVector_Clone_InlineIsIndependent(t *testing.T) {
	v, err := NewFromSlice([]int{5})
	require.NoError(t, err)
	clone, err := v.Clone()
	require.NoError(t, err)
	require.NoError(t, clone.Set(0, 6))
	assert.Equal(t, 5, v.Get(0))
	assert.Equal(t, 6, clone.Get(0))
}

func TestVector_Clear(t *testing.T) {
	guard := covectest.NewNoNewInstancesGuard()
	defer guard.Close(t)

	v, err := NewFromSlice([]covectest.Counted{covectest.NewCounted(1), covectest.NewCounted(2)})
	require.NoError(t, err)
	require.NoError(t, v.Clear())
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 1, v.Cap())
}

func TestVector_Equal(t *testing.T) {
	a, _ := NewFromSlice([]int{1, 2, 3})
	b, _ := NewFromSlice([]int{1, 2, 3})
	c, _ := NewFromSlice([]int{1, 2})
	assert.True(t, Equal(&a, &b))
	assert.False(t, Equal(&a, &c))
}

func TestVector_Compare(t *testing.T) {
	a, _ := NewFromSlice([]int{1, 2})
	b, _ := NewFromSlice([]int{1, 2, 3})
	assert.Equal(t, -1, Compare(&a, &b))
	assert.Equal(t, 1, Compare(&b, &a))
	assert.True(t, Less(&a, &b))
	assert.True(t, GreaterOrEqual(&b, &a))
}

// TestVector_Clone_Faulty exercises Clone itself under replay, not just
// the NewFromSlice fixture it's built from: Clone's Inline branch
// copy-constructs into a fresh Vector and is the only Clone path with an
// injectable failure point (the Shared branch is a bare refcount bump,
// which cannot fail).
func TestVector_Clone_Faulty(t *testing.T) {
	guard := covectest.NewNoNewInstancesGuard()
	defer guard.Close(t)

	err := faultinject.FaultyRun(func() error {
		v, err := NewFromSlice([]covectest.Counted{covectest.NewCounted(5)})
		if err != nil {
			return err
		}
		clone, err := v.Clone()
		if err != nil {
			_ = v.Clear()
			return err
		}
		_ = v.Clear()
		return clone.Clear()
	})
	require.NoError(t, err)
}

// TestVector_NewFromSlice_Faulty exercises NewFromSlice's allocation and per-element
// copy-construct injection points through every possible failure index.
func TestVector_NewFromSlice_Faulty(t *testing.T) {
	guard := covectest.NewNoNewInstancesGuard()
	defer guard.Close(t)

	err := faultinject.FaultyRun(func() error {
		v, err := NewFromSlice([]covectest.Counted{
			covectest.NewCounted(1),
			covectest.NewCounted(2),
			covectest.NewCounted(3),
		})
		if err != nil {
			return err
		}
		return v.Clear()
	})
	require.NoError(t, err)
}
