package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/compare"
	"github.com/pseudomuto/unitdiff/pkg/runner"
)

// Sink records batch comparison verdicts into a ClickHouse table so CI can
// track compiler regressions across runs. It implements runner.Sink.
type Sink struct {
	client  *Client
	table   string
	version string
}

// NewSink creates a verdict sink writing to the named table. The version is
// recorded with every verdict so results can be attributed to the unitdiff
// build that produced them.
//
// Example:
//
//	sink := clickhouse.NewSink(client, "unitdiff_verdicts", version)
//	if err := sink.Bootstrap(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	r := runner.New(runner.Config{Sink: sink})
func NewSink(client *Client, table, version string) *Sink {
	return &Sink{
		client:  client,
		table:   table,
		version: version,
	}
}

// Bootstrap creates the verdict table if it does not exist.
func (s *Sink) Bootstrap(ctx context.Context) error {
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    run_id String COMMENT 'Identifier shared by every verdict in one run',
    name String COMMENT 'Relative unit-dump file name',
    status String COMMENT 'equivalent, divergent, or error',
    path String COMMENT 'Canonical divergence path (empty unless divergent)',
    detail String COMMENT 'Failure description (empty when equivalent)',
    duration_ms UInt64 COMMENT 'How long the pair took to load and compare',
    recorded_at DateTime(3, 'UTC') COMMENT 'The UTC time the verdict was recorded',
    unitdiff_version String COMMENT 'The unitdiff build that produced the verdict'
)
ENGINE = MergeTree()
ORDER BY (run_id, name)
PARTITION BY toYYYYMM(recorded_at)
COMMENT 'Batch comparison verdicts for compiler regression tracking'`, s.table)

	if err := s.client.conn.Exec(ctx, ddl); err != nil {
		return errors.Wrapf(err, "failed to create table %s", s.table)
	}

	return nil
}

// Record writes one row per result. All rows of a run share the run
// identifier and timestamp.
func (s *Sink) Record(ctx context.Context, runID string, results []*runner.Result) error {
	batch, err := s.client.conn.PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s", s.table))
	if err != nil {
		return errors.Wrapf(err, "failed to prepare insert into %s", s.table)
	}

	recordedAt := time.Now().UTC()

	for _, result := range results {
		var detail string
		if result.Err != nil {
			detail = result.Err.Error()
		}

		err := batch.Append(
			runID,
			result.Name,
			string(result.Status),
			compare.PathOf(result.Err),
			detail,
			uint64(result.Duration.Milliseconds()),
			recordedAt,
			s.version,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to append verdict for %s", result.Name)
		}
	}

	return errors.Wrap(batch.Send(), "failed to send verdict batch")
}
