package compare

import (
	"cmp"
	"iter"
	"sort"

	"github.com/pseudomuto/unitdiff/pkg/codepath"
)

type (
	// Fn is a recursive comparator over a pair of values. The two sides may
	// have different concrete types, which allows comparing trees produced by
	// structurally different but name-compatible schemas (e.g. two versions
	// of the unit format).
	//
	// A Fn either succeeds (nil) or returns exactly one *Error; it never
	// mutates its inputs and holds no state across calls.
	Fn[A, B any] func(path *codepath.Path, a A, b B) error

	// Named is the capability required of elements reconciled by name. Every
	// element of a keyed collection must expose a stable name unique within
	// that collection; if a side contains a duplicate name, the last element
	// wins when building the lookup (deterministic, but callers should not
	// rely on it).
	Named interface {
		EntityName() string
	}
)

// Eq compares two directly-comparable leaf values and fails with a Mismatch
// carrying debug renderings of both when they are unequal. This is the base
// case of all recursion.
//
// Example:
//
//	err := compare.Eq(path.Field("flags"), a.Flags, b.Flags)
func Eq[T comparable](path *codepath.Path, a, b T) error {
	if a != b {
		return failValues(path, a, b)
	}

	return nil
}

// EqFunc compares two leaf values under a caller-supplied equality, for types
// whose notion of equivalence is domain-defined rather than structural.
func EqFunc[A, B any](path *codepath.Path, a A, b B, eq func(A, B) bool) error {
	if !eq(a, b) {
		return failValues(path, a, b)
	}

	return nil
}

// Option lifts a comparator over optional values represented as pointers.
//
// Both nil succeeds. Both present recurses with a "deref" qualifier appended
// to the path, propagating any failure unchanged. Exactly one present fails
// with a Mismatch at path without descending further, since there is nothing
// to recurse into on the absent side.
func Option[A, B any](path *codepath.Path, a *A, b *B, eq Fn[A, B]) error {
	switch {
	case a == nil && b == nil:
		return nil
	case a != nil && b == nil:
		return failf(Mismatch, path, "left is %#v, right is absent", *a)
	case a == nil && b != nil:
		return failf(Mismatch, path, "left is absent, right is %#v", *b)
	default:
		return eq(path.Qualified("deref"), *a, *b)
	}
}

// Slice walks two ordered sequences in lock-step, recursing with a
// position-qualified path. Comparison short-circuits on the first element
// failure; a length difference is reported as a LengthMismatch at path,
// naming the side that ran long.
func Slice[A, B any](path *codepath.Path, a []A, b []B, eq Fn[A, B]) error {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if err := eq(path.Index(i), a[i], b[i]); err != nil {
			return err
		}
	}

	switch {
	case len(a) > len(b):
		return failf(LengthMismatch, path, "left side is longer (%d vs %d)", len(a), len(b))
	case len(b) > len(a):
		return failf(LengthMismatch, path, "right side is longer (%d vs %d)", len(b), len(a))
	}

	return nil
}

// Seq is Slice over lazy sequences. Neither sequence is buffered, so it is
// safe to use with effectively-once-traversable sequences; equal length is
// established implicitly by simultaneous exhaustion.
func Seq[A, B any](path *codepath.Path, a iter.Seq[A], b iter.Seq[B], eq Fn[A, B]) error {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for i := 0; ; i++ {
		av, aok := nextA()
		bv, bok := nextB()

		switch {
		case !aok && !bok:
			return nil
		case aok && !bok:
			return failf(LengthMismatch, path, "left side is longer (right exhausted after %d)", i)
		case !aok && bok:
			return failf(LengthMismatch, path, "right side is longer (left exhausted after %d)", i)
		}

		if err := eq(path.Index(i), av, bv); err != nil {
			return err
		}
	}
}

// ByName reconciles two keyed collections of named entities. Matching is done
// by name rather than position, so the result is insensitive to element
// ordering (compiler output reorders declarations between runs) while
// remaining sensitive to added or removed entities and to content differences
// within a matched pair.
//
// Each name present on both sides is recursed into with a key-qualified path,
// in sorted name order so failures are reproducible; the first recursive
// failure is propagated unchanged. After the shared names pass, the smallest
// left-only name (if any) is reported as ExtraOnLeft, then the smallest
// right-only name as ExtraOnRight. At most one offending key is reported per
// invocation.
func ByName[A, B Named](path *codepath.Path, a []A, b []B, eq Fn[A, B]) error {
	aIdx := indexByName(a)
	bIdx := indexByName(b)

	shared := make([]string, 0, min(len(aIdx), len(bIdx)))
	for name := range aIdx {
		if _, ok := bIdx[name]; ok {
			shared = append(shared, name)
		}
	}
	sort.Strings(shared)

	for _, name := range shared {
		if err := eq(path.Key(name), aIdx[name], bIdx[name]); err != nil {
			return err
		}
	}

	if name, ok := firstOnly(aIdx, bIdx); ok {
		return failf(ExtraOnLeft, path, "left has key %s but right does not", name)
	}

	if name, ok := firstOnly(bIdx, aIdx); ok {
		return failf(ExtraOnRight, path, "right has key %s but left does not", name)
	}

	return nil
}

// Set performs a symmetric-difference check over two collections treated as
// unordered sets of simple values. The smallest element present on only one
// side is reported as a SetDifference; left-only elements are checked first.
// Used for flat multisets of scalars, as opposed to named structured
// entities, which use ByName.
func Set[T cmp.Ordered](path *codepath.Path, a, b []T) error {
	aSet := toSet(a)
	bSet := toSet(b)

	if v, ok := firstOnly(aSet, bSet); ok {
		return failf(SetDifference, path, "left has value %#v but right does not", v)
	}

	if v, ok := firstOnly(bSet, aSet); ok {
		return failf(SetDifference, path, "right has value %#v but left does not", v)
	}

	return nil
}

// indexByName builds the name lookup for one side of a keyed collection.
// Duplicate names within a side are not expected; the last element wins.
func indexByName[T Named](elems []T) map[string]T {
	idx := make(map[string]T, len(elems))
	for _, e := range elems {
		idx[e.EntityName()] = e
	}

	return idx
}

func toSet[T comparable](elems []T) map[T]struct{} {
	set := make(map[T]struct{}, len(elems))
	for _, e := range elems {
		set[e] = struct{}{}
	}

	return set
}

// firstOnly returns the smallest key of a that is absent from b.
func firstOnly[K cmp.Ordered, V, W any](a map[K]V, b map[K]W) (K, bool) {
	var smallest K
	found := false

	for k := range a {
		if _, ok := b[k]; ok {
			continue
		}
		if !found || k < smallest {
			smallest = k
			found = true
		}
	}

	return smallest, found
}
