package codepath_test

import (
	"testing"

	. "github.com/pseudomuto/unitdiff/pkg/codepath"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		path     *Path
		expected string
	}{
		{
			name:     "root is empty",
			path:     Root(),
			expected: "",
		},
		{
			name:     "single field",
			path:     Root().Field("classes"),
			expected: "classes",
		},
		{
			name:     "field then key",
			path:     Root().Field("classes").Key("Foo"),
			expected: "classes[Foo]",
		},
		{
			name:     "nested collections",
			path:     Root().Field("classes").Key("Foo").Field("methods").Key("bar").Field("params").Index(3),
			expected: "classes[Foo].methods[bar].params[3]",
		},
		{
			name:     "qualifier renders as field",
			path:     Root().Field("functions").Key("main").Field("return_type").Qualified("deref"),
			expected: "functions[main].return_type.deref",
		},
		{
			name:     "index directly under root",
			path:     Root().Index(0),
			expected: "[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.path.String())
		})
	}
}

func TestAppendDoesNotMutateParent(t *testing.T) {
	parent := Root().Field("classes").Key("Foo")
	rendered := parent.String()

	// Two divergent children off the same parent.
	left := parent.Field("methods").Key("a")
	right := parent.Field("properties").Key("b")

	require.Equal(t, rendered, parent.String())
	require.Equal(t, "classes[Foo].methods[a]", left.String())
	require.Equal(t, "classes[Foo].properties[b]", right.String())
}
