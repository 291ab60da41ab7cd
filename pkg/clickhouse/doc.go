// Package clickhouse provides the optional ClickHouse verdict sink.
//
// When a batch run is configured with a sink, every per-pair verdict is
// recorded into a MergeTree table keyed by run, which lets CI query for
// regressions between compiler versions over time:
//
//	SELECT name, status, path
//	FROM unitdiff_verdicts
//	WHERE run_id = '20250818121530' AND status != 'equivalent'
//	ORDER BY name;
//
// The package exposes a thin connection wrapper (Client) and the sink
// itself (Sink), which implements runner.Sink.
package clickhouse
