package covector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold the same length and elementwise-equal
// sequences (spec.md 4.6). Neither operand is modified: comparison reads
// through the const accessors, so a Shared buffer is never detached just
// because it was compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.ConstData(), b.ConstData())
}

// EqualFunc reports whether a and b hold the same length and are
// elementwise equal under eq, for element types with no native ==
// (spec.md 4.6).
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.ConstData(), b.ConstData(), eq)
}

// Compare lexicographically orders a against b, returning -1, 0, or 1
// (spec.md 4.6). Shorter sequences sort before longer ones when one is a
// prefix of the other, matching standard lexicographic comparison.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.ConstData(), b.ConstData())
}

// CompareFunc lexicographically orders a against b using cmp for
// element types with no native ordering.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	return slices.CompareFunc(a.ConstData(), b.ConstData(), cmp)
}

// Less reports whether a sorts strictly before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a sorts before or equal to b.
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a sorts strictly after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a sorts after or equal to b.
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }

// Swap exchanges the contents of a and b (free-function form of
// [Vector.Swap], matching the original's free swap(a, b) overload).
func Swap[T any](a, b *Vector[T]) { a.Swap(b) }
