package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/consts"
	"github.com/pseudomuto/unitdiff/pkg/report"
	"github.com/pseudomuto/unitdiff/pkg/semdiff"
	"github.com/urfave/cli/v3"
)

// compareCmd creates the compare command for checking two unit dumps for
// semantic equivalence. The comparison policy (ignored attributes, bodies,
// docs, parallelism) comes from the project config.
//
// Examples:
//
//	# Compare two dumps
//	unitdiff compare base/foo.unit candidate/foo.unit
//
//	# Write the report to a file
//	unitdiff compare -o report.txt base/foo.unit candidate/foo.unit
//
// The command exits non-zero when the units diverge.
func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two unit dumps",
		ArgsUsage: "<left> <right>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the report to a file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return errors.New("exactly two unit dump arguments are required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			left, err := loadUnit(cmd.Args().Get(0))
			if err != nil {
				return err
			}

			right, err := loadUnit(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			writer, closer, err := reportWriter(cmd)
			if err != nil {
				return err
			}
			defer closer()

			diffErr := semdiff.Units(left, right, cfg.Compare.Options()...)
			opts := &report.Options{Color: cmd.Bool("color")}
			if err := report.Print(writer, opts, diffErr); err != nil {
				return err
			}

			if diffErr != nil {
				return errors.New("units differ")
			}

			return nil
		},
	}
}

// reportWriter returns the destination for the report: the --out file when
// set, otherwise the command writer.
func reportWriter(cmd *cli.Command) (io.Writer, func(), error) {
	out := cmd.String("out")
	if out == "" {
		return cmd.Writer, func() {}, nil
	}

	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.ModeFile)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create report file: %s", out)
	}

	return f, func() { _ = f.Close() }, nil
}
