package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pseudomuto/unitdiff/pkg/config"
	"github.com/pseudomuto/unitdiff/pkg/consts"
	"github.com/urfave/cli/v3"
)

// Version carries build information recorded by the release pipeline.
type Version struct {
	Version   string
	Commit    string
	Timestamp string
}

// Run creates and executes the main unitdiff CLI application with the given
// version and command-line arguments.
//
// Global Flags:
//   - --config, -c: project configuration file (defaults to unitdiff.yaml)
//   - --color: colorize output
//
// Example usage:
//
//	err := cmd.Run(ctx, version, []string{"unitdiff", "compare", "a.unit", "b.unit"})
func Run(ctx context.Context, version *Version, args []string) error {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", version.Timestamp)
	}

	app := &cli.Command{
		Name:  "unitdiff",
		Usage: "Semantic comparison of compiled unit dumps",
		Description: `unitdiff compares the compiled output of two compiler versions entity by
entity (functions, classes, constants, typedefs, modules) and reports the
first divergence with a precise path, ignoring incidental differences such
as declaration order.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the unitdiff config file",
				Sources: cli.EnvVars("UNITDIFF_CONFIG"),
				Value:   consts.ConfigFile,
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "colorize output",
			},
		},
		Commands: []*cli.Command{
			compareCmd(),
			batchCmd(version),
			parseCmd(),
		},
	}

	return app.Run(ctx, args)
}

// loadConfig reads the configured file. A missing file is not an error; the
// defaults apply so the tool works without a project config.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.LoadConfig(strings.NewReader("{}"))
	}

	return config.LoadConfigFile(path)
}
