package compare_test

import (
	"iter"
	"testing"

	"github.com/pseudomuto/unitdiff/pkg/codepath"
	. "github.com/pseudomuto/unitdiff/pkg/compare"
	"github.com/stretchr/testify/require"
)

type entity struct {
	name  string
	value int
}

func (e entity) EntityName() string { return e.name }

// compareEntity is the recursive comparator used by the ByName tests.
func compareEntity(path *codepath.Path, a, b entity) error {
	return Eq(path.Field("value"), a.value, b.value)
}

func TestEq(t *testing.T) {
	path := codepath.Root().Field("flags")

	require.NoError(t, Eq(path, 42, 42))
	require.NoError(t, Eq(path, "abstract", "abstract"))

	err := Eq(path, "Int", "String")
	require.Error(t, err)
	require.Equal(t, Mismatch, KindOf(err))
	require.Equal(t, "flags", PathOf(err))
	require.Contains(t, err.Error(), `"Int"`)
	require.Contains(t, err.Error(), `"String"`)
}

func TestEqFunc(t *testing.T) {
	path := codepath.Root().Field("body")
	caseless := func(a, b string) bool { return len(a) == len(b) }

	require.NoError(t, EqFunc(path, "abc", "xyz", caseless))
	require.Equal(t, Mismatch, KindOf(EqFunc(path, "abc", "wxyz", caseless)))
}

func TestOption(t *testing.T) {
	five := 5
	six := 6
	path := codepath.Root().Field("return_type")

	tests := []struct {
		name string
		a, b *int
		kind Kind
	}{
		{
			name: "both absent",
			a:    nil,
			b:    nil,
		},
		{
			name: "both present and equal",
			a:    &five,
			b:    &five,
		},
		{
			name: "both present and unequal",
			a:    &five,
			b:    &six,
			kind: Mismatch,
		},
		{
			name: "left present only",
			a:    &five,
			b:    nil,
			kind: Mismatch,
		},
		{
			name: "right present only",
			a:    nil,
			b:    &five,
			kind: Mismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Option(path, tt.a, tt.b, Eq[int])
			require.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestOptionPathQualification(t *testing.T) {
	five := 5
	six := 6
	path := codepath.Root().Field("return_type")

	// A content mismatch is located below the optional, under the deref
	// qualifier appended on descent.
	err := Option(path, &five, &six, Eq[int])
	require.Equal(t, "return_type.deref", PathOf(err))

	// A presence mismatch is located at the optional itself; the absent side
	// is never unwrapped.
	err = Option(path, &five, nil, Eq[int])
	require.Equal(t, "return_type", PathOf(err))
}

func TestSlice(t *testing.T) {
	path := codepath.Root().Field("params")

	require.NoError(t, Slice(path, []int{1, 2, 3}, []int{1, 2, 3}, Eq[int]))
	require.NoError(t, Slice(path, nil, []int{}, Eq[int]))

	// Content mismatch is reported at the offending index.
	err := Slice(path, []int{1, 2, 3}, []int{1, 9, 3}, Eq[int])
	require.Equal(t, Mismatch, KindOf(err))
	require.Equal(t, "params[1]", PathOf(err))

	// Length mismatch is detected after the common prefix matches.
	err = Slice(path, []int{1, 2, 3}, []int{1, 2}, Eq[int])
	require.Equal(t, LengthMismatch, KindOf(err))
	require.Equal(t, "params", PathOf(err))
	require.Contains(t, err.Error(), "left side is longer")
}

func TestSliceShortCircuits(t *testing.T) {
	calls := 0
	counting := func(path *codepath.Path, a, b int) error {
		calls++
		return Eq(path, a, b)
	}

	err := Slice(codepath.Root(), []int{1, 9, 9}, []int{1, 2, 3}, counting)
	require.Error(t, err)
	require.Equal(t, 2, calls, "no elements compared past the first mismatch")
}

func seqOf(vals ...int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

func TestSeq(t *testing.T) {
	path := codepath.Root().Field("instrs")

	require.NoError(t, Seq(path, seqOf(1, 2, 3), seqOf(1, 2, 3), Eq[int]))
	require.NoError(t, Seq(path, seqOf(), seqOf(), Eq[int]))

	err := Seq(path, seqOf(1, 2, 3), seqOf(1, 2), Eq[int])
	require.Equal(t, LengthMismatch, KindOf(err))
	require.Contains(t, err.Error(), "left side is longer")

	err = Seq(path, seqOf(1), seqOf(1, 2), Eq[int])
	require.Equal(t, LengthMismatch, KindOf(err))
	require.Contains(t, err.Error(), "right side is longer")

	err = Seq(path, seqOf(1, 2), seqOf(1, 5), Eq[int])
	require.Equal(t, Mismatch, KindOf(err))
	require.Equal(t, "instrs[1]", PathOf(err))
}

func TestByName(t *testing.T) {
	path := codepath.Root().Field("classes")

	a := []entity{{"Foo", 1}, {"Bar", 2}, {"Baz", 3}}

	t.Run("identical collections succeed", func(t *testing.T) {
		require.NoError(t, ByName(path, a, a, compareEntity))
	})

	t.Run("order independence", func(t *testing.T) {
		shuffled := []entity{{"Baz", 3}, {"Foo", 1}, {"Bar", 2}}
		require.NoError(t, ByName(path, a, shuffled, compareEntity))
		require.NoError(t, ByName(path, shuffled, a, compareEntity))
	})

	t.Run("content difference located under key", func(t *testing.T) {
		b := []entity{{"Foo", 1}, {"Bar", 9}, {"Baz", 3}}
		err := ByName(path, a, b, compareEntity)
		require.Equal(t, Mismatch, KindOf(err))
		require.Equal(t, "classes[Bar].value", PathOf(err))
	})

	t.Run("removed entity reported as extra on left", func(t *testing.T) {
		b := []entity{{"Foo", 1}, {"Baz", 3}}
		err := ByName(path, a, b, compareEntity)
		require.Equal(t, ExtraOnLeft, KindOf(err))
		require.Equal(t, "classes", PathOf(err))
		require.Contains(t, err.Error(), "left has key Bar")
	})

	t.Run("added entity reported as extra on right", func(t *testing.T) {
		b := []entity{{"Foo", 1}, {"Bar", 2}, {"Baz", 3}, {"Qux", 4}}
		err := ByName(path, a, b, compareEntity)
		require.Equal(t, ExtraOnRight, KindOf(err))
		require.Contains(t, err.Error(), "right has key Qux")
	})

	t.Run("left extras win over right extras", func(t *testing.T) {
		err := ByName(path, []entity{{"A", 1}}, []entity{{"B", 1}}, compareEntity)
		require.Equal(t, ExtraOnLeft, KindOf(err))
	})

	t.Run("smallest offending key reported", func(t *testing.T) {
		b := []entity{{"Foo", 1}}
		err := ByName(path, a, b, compareEntity)
		require.Contains(t, err.Error(), "left has key Bar", "Bar sorts before Baz")
	})

	t.Run("duplicate names last wins", func(t *testing.T) {
		dup := []entity{{"Foo", 9}, {"Foo", 1}, {"Bar", 2}, {"Baz", 3}}
		require.NoError(t, ByName(path, dup, a, compareEntity))
	})
}

func TestByNameFirstFailureLocality(t *testing.T) {
	path := codepath.Root().Field("classes")

	// Two independent divergences; the one reached first in sorted key order
	// is reported, never both.
	a := []entity{{"Alpha", 1}, {"Omega", 2}}
	b := []entity{{"Alpha", 10}, {"Omega", 20}}

	err := ByName(path, a, b, compareEntity)
	require.Equal(t, "classes[Alpha].value", PathOf(err))
}

func TestByNameCrossType(t *testing.T) {
	// The two sides need not share a concrete type, only name compatibility.
	a := []namedOnly{{"Foo"}}
	b := []entity{{"Foo", 0}}

	require.NoError(t, ByName(codepath.Root(), a, b, func(path *codepath.Path, _ namedOnly, _ entity) error {
		return nil
	}))
}

type namedOnly struct{ name string }

func (n namedOnly) EntityName() string { return n.name }

func TestSet(t *testing.T) {
	path := codepath.Root().Field("implements")

	tests := []struct {
		name   string
		a, b   []string
		kind   Kind
		detail string
	}{
		{
			name: "equal sets",
			a:    []string{"Countable", "Serializable"},
			b:    []string{"Serializable", "Countable"},
		},
		{
			name: "both empty",
		},
		{
			name:   "left only element",
			a:      []string{"Countable", "Serializable"},
			b:      []string{"Countable"},
			kind:   SetDifference,
			detail: `left has value "Serializable"`,
		},
		{
			name:   "right only element",
			a:      []string{"Countable"},
			b:      []string{"Countable", "Traversable"},
			kind:   SetDifference,
			detail: `right has value "Traversable"`,
		},
		{
			name: "duplicates collapse",
			a:    []string{"Countable", "Countable"},
			b:    []string{"Countable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set(path, tt.a, tt.b)
			require.Equal(t, tt.kind, KindOf(err))
			if tt.detail != "" {
				require.Contains(t, err.Error(), tt.detail)
			}
		})
	}
}
