package unit_test

import (
	"testing"

	. "github.com/pseudomuto/unitdiff/pkg/unit"
	"github.com/stretchr/testify/require"
)

func TestAttributePredicates(t *testing.T) {
	attrs := []*Attribute{
		{Name: AttrConst},
		{Name: AttrMemoizeLSB, Arguments: []string{"KeyedByIC"}},
		{Name: AttrDeprecated, Arguments: []string{"use newThing() instead", "1"}},
	}

	require.True(t, Has(attrs, AttrConst))
	require.False(t, Has(attrs, AttrSealed))

	require.True(t, HasMemoize(attrs))
	require.True(t, IsKeyedByICMemoize(attrs))
	require.True(t, HasConst(attrs))
	require.False(t, HasDynamicallyCallable(attrs))
	require.False(t, HasFoldable(attrs))
	require.False(t, HasEnumClass(attrs))

	require.Equal(t, []string{"use newThing() instead", "1"}, DeprecationInfo(attrs))
	require.Nil(t, DeprecationInfo(nil))
}

func TestMemoizeVariants(t *testing.T) {
	tests := []struct {
		name    string
		attrs   []*Attribute
		memo    bool
		keyedIC bool
	}{
		{
			name:  "plain memoize",
			attrs: []*Attribute{{Name: AttrMemoize}},
			memo:  true,
		},
		{
			name:  "memoize LSB",
			attrs: []*Attribute{{Name: AttrMemoizeLSB}},
			memo:  true,
		},
		{
			name:    "memoize keyed by IC",
			attrs:   []*Attribute{{Name: AttrMemoize, Arguments: []string{"KeyedByIC"}}},
			memo:    true,
			keyedIC: true,
		},
		{
			name:  "keyed arg on unrelated attribute",
			attrs: []*Attribute{{Name: AttrSealed, Arguments: []string{"KeyedByIC"}}},
		},
		{
			name: "no attributes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.memo, HasMemoize(tt.attrs))
			require.Equal(t, tt.keyedIC, IsKeyedByICMemoize(tt.attrs))
		})
	}
}

func TestFlagSets(t *testing.T) {
	flags := ClassAbstract | ClassFinal

	require.True(t, flags.Is(ClassAbstract))
	require.True(t, flags.Is(ClassAbstract|ClassFinal))
	require.False(t, flags.Is(ClassInterface))
	require.False(t, flags.Is(ClassAbstract|ClassInterface))

	require.True(t, (FuncStatic | FuncAsync).Is(FuncAsync))
	require.False(t, FuncFlags(0).Is(FuncFinal))
}

func TestTypeInfo(t *testing.T) {
	str := "HH\\string"
	intTy := "HH\\int"

	tests := []struct {
		name     string
		a, b     TypeInfo
		expected bool
	}{
		{
			name:     "both empty",
			expected: true,
		},
		{
			name:     "same user type",
			a:        TypeInfo{UserType: &str, Constraint: &str},
			b:        TypeInfo{UserType: &str, Constraint: &str},
			expected: true,
		},
		{
			name: "different user type",
			a:    TypeInfo{UserType: &str},
			b:    TypeInfo{UserType: &intTy},
		},
		{
			name: "presence asymmetry",
			a:    TypeInfo{UserType: &str},
			b:    TypeInfo{},
		},
		{
			name: "flag difference",
			a:    TypeInfo{UserType: &str, Flags: ConstraintNullable},
			b:    TypeInfo{UserType: &str},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.a.Equal(tt.b))
			require.Equal(t, tt.expected, tt.b.Equal(tt.a))
		})
	}
}

func TestTypeInfoString(t *testing.T) {
	str := "string"

	require.Equal(t, "_", TypeInfo{}.String())
	require.Equal(t, "string", TypeInfo{UserType: &str}.String())
	require.Equal(t, "?string", TypeInfo{UserType: &str, Flags: ConstraintNullable}.String())
	require.Equal(t, "string", TypeInfo{Constraint: &str}.String())
}
