package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/clickhouse"
	"github.com/pseudomuto/unitdiff/pkg/report"
	"github.com/pseudomuto/unitdiff/pkg/runner"
	"github.com/urfave/cli/v3"
)

// batchCmd creates the batch command for comparing whole corpora: every
// unit-dump file under one directory against the same relative name under
// another. When the config names a ClickHouse DSN, verdicts are recorded
// there for regression tracking across runs.
//
// Examples:
//
//	# Compare the outputs of two compiler versions
//	unitdiff batch out/base out/candidate
//
//	# Tune concurrency for this run
//	unitdiff batch --workers 16 out/base out/candidate
//
// The command exits non-zero when any pair diverges or fails to compare.
func batchCmd(version *Version) *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Compare two directories of unit dumps",
		ArgsUsage: "<left-dir> <right-dir>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Override the configured comparison concurrency",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return errors.New("exactly two directory arguments are required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			workers := cfg.Compare.Workers
			if cmd.Int("workers") > 0 {
				workers = int(cmd.Int("workers"))
			}

			var sink runner.Sink
			if cfg.ClickHouse.Enabled() {
				client, err := clickhouse.NewClient(ctx, cfg.ClickHouse.DSN)
				if err != nil {
					return err
				}
				defer func() { _ = client.Close() }()

				chSink := clickhouse.NewSink(client, cfg.ClickHouse.Table, version.Version)
				if err := chSink.Bootstrap(ctx); err != nil {
					return err
				}
				sink = chSink
			}

			r := runner.New(runner.Config{
				Workers: workers,
				Options: cfg.Compare.Options(),
				Sink:    sink,
			})

			results, err := r.Run(ctx, cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}

			p := report.New(&report.Options{Color: cmd.Bool("color")})

			failed := 0
			for _, result := range results {
				switch result.Status {
				case runner.StatusEquivalent:
					err = p.Pass(cmd.Writer, result.Name)
				case runner.StatusDivergent:
					failed++
					err = p.Diff(cmd.Writer, result.Name, result.Err)
				case runner.StatusError:
					failed++
					err = p.Fail(cmd.Writer, result.Name, result.Err)
				}
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.Writer, "\n%d pairs compared, %d divergent or failed\n", len(results), failed)

			if failed > 0 {
				return errors.Errorf("%d of %d pairs differ", failed, len(results))
			}

			return nil
		},
	}
}
