package clickhouse_test

import (
	"context"
	"testing"
	"time"

	. "github.com/pseudomuto/unitdiff/pkg/clickhouse"
	"github.com/pseudomuto/unitdiff/pkg/compare"
	"github.com/pseudomuto/unitdiff/pkg/runner"
	"github.com/stretchr/testify/require"
	tcclickhouse "github.com/testcontainers/testcontainers-go/modules/clickhouse"
)

func TestSink(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := tcclickhouse.Run(ctx,
		"clickhouse/clickhouse-server:25.7-alpine",
		tcclickhouse.WithUsername("default"),
		tcclickhouse.WithPassword(""),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := NewClient(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sink := NewSink(client, "unitdiff_verdicts", "test")
	require.NoError(t, sink.Bootstrap(ctx))
	require.NoError(t, sink.Bootstrap(ctx), "bootstrap is idempotent")

	results := []*runner.Result{
		{
			Name:     "lib/a.unit",
			Status:   runner.StatusEquivalent,
			Duration: 5 * time.Millisecond,
		},
		{
			Name:   "lib/b.unit",
			Status: runner.StatusDivergent,
			Err: &compare.Error{
				Kind:   compare.Mismatch,
				Path:   "functions[f].body",
				Detail: "bodies differ",
			},
		},
	}
	require.NoError(t, sink.Record(ctx, "20250818121530", results))

	rows, err := client.Query(ctx,
		"SELECT name, status, path FROM unitdiff_verdicts WHERE run_id = ? ORDER BY name",
		"20250818121530",
	)
	require.NoError(t, err)
	defer rows.Close()

	type row struct{ name, status, path string }

	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.name, &r.status, &r.path))
		got = append(got, r)
	}

	require.Equal(t, []row{
		{name: "lib/a.unit", status: "equivalent", path: ""},
		{name: "lib/b.unit", status: "divergent", path: "functions[f].body"},
	}, got)
}
