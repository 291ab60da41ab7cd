package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/unit"
	"github.com/urfave/cli/v3"
)

// parseCmd creates the parse command, which parses a single unit dump and
// prints an outline of its contents. Useful for checking what the comparison
// will actually see, and for debugging malformed dumps.
//
// Example:
//
//	unitdiff parse out/base/foo.unit
func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a unit dump and print its contents",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one unit dump argument is required")
			}

			u, err := loadUnit(cmd.Args().First())
			if err != nil {
				return err
			}

			return printUnit(cmd.Writer, u)
		},
	}
}

// printUnit writes a one-line-per-entity outline of the unit.
func printUnit(w io.Writer, u *unit.Unit) error {
	line := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format+"\n", args...)
		return err
	}

	if u.ModuleUse != nil {
		if err := line("use module %s", *u.ModuleUse); err != nil {
			return err
		}
	}

	for _, m := range u.Modules {
		if err := line("module %s", m.Name); err != nil {
			return err
		}
	}

	for _, c := range u.Constants {
		if err := line("const %s", c.Name); err != nil {
			return err
		}
	}

	for _, td := range u.Typedefs {
		if err := line("typedef %s = %s", td.Name, td.Type.String()); err != nil {
			return err
		}
	}

	for _, fn := range u.Functions {
		if err := line("function %s (%d params)", fn.Name, len(fn.Params)); err != nil {
			return err
		}
	}

	for _, cls := range u.Classes {
		err := line("class %s (%d methods, %d properties, %d constants)",
			cls.Name, len(cls.Methods), len(cls.Properties), len(cls.Constants))
		if err != nil {
			return err
		}
	}

	return nil
}
