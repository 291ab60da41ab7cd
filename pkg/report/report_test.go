package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/compare"
	. "github.com/pseudomuto/unitdiff/pkg/report"
	"github.com/pseudomuto/unitdiff/pkg/semdiff"
	"github.com/pseudomuto/unitdiff/pkg/unit"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenOutput(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "equal",
		},
		{
			name: "leaf_mismatch",
			err: &compare.Error{
				Kind:   compare.Mismatch,
				Path:   "classes[Foo].flags",
				Detail: "6 != 2",
				Left:   "6",
				Right:  "2",
			},
		},
		{
			name: "body_diff",
			err: &compare.Error{
				Kind:   compare.Mismatch,
				Path:   "functions[main].body",
				Detail: "bodies differ",
				Left:   "Int 0\nString 'x'\nRetC",
				Right:  "Int 1\nString 'x'\nRetC",
			},
		},
		{
			name: "extra_on_left",
			err: &compare.Error{
				Kind:   compare.ExtraOnLeft,
				Path:   "classes",
				Detail: "left has key Bar but right does not",
			},
		},
		{
			name: "plain_error",
			err:  errors.New("reading a.unit: no such file"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Print(&buf, Defaults, tt.err))
			golden.Assert(t, buf.String(), tt.name+".golden")
		})
	}
}

func TestPrintComparison(t *testing.T) {
	a := &unit.Unit{Functions: []*unit.Function{{Name: "main", Body: "Int 0\nRetC"}}}
	b := &unit.Unit{Functions: []*unit.Function{{Name: "main", Body: "Int 1\nRetC"}}}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Defaults, semdiff.Units(a, b)))

	out := buf.String()
	require.Contains(t, out, "mismatch in functions[main].body")
	require.Contains(t, out, "-Int 0")
	require.Contains(t, out, "+Int 1")
	require.Contains(t, out, " RetC")
}

func TestColoredOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, &Options{Color: true}, nil))
	require.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, Print(&buf, Defaults, nil))
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestBatchLines(t *testing.T) {
	p := New(Defaults)

	var buf bytes.Buffer
	require.NoError(t, p.Pass(&buf, "lib/a.unit"))
	require.NoError(t, p.Diff(&buf, "lib/b.unit", &compare.Error{
		Kind:   compare.Mismatch,
		Path:   "constants[X]",
		Detail: `"1" != "2"`,
	}))
	require.NoError(t, p.Fail(&buf, "lib/c.unit", errors.New("parsing unit: unexpected token")))

	expected := strings.Join([]string{
		"ok   lib/a.unit",
		`diff lib/b.unit: mismatch in constants[X]: "1" != "2"`,
		"err  lib/c.unit: parsing unit: unexpected token",
	}, "\n") + "\n"
	require.Equal(t, expected, buf.String())
}

func TestFailureWithoutPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Defaults).Failure(&buf, &compare.Error{
		Kind:   compare.Mismatch,
		Detail: "left is nil",
	}))

	require.Equal(t, "mismatch\n    left is nil\n", buf.String())
}
