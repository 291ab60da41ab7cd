package main

import (
	"context"
	"log"
	"os"

	"github.com/pseudomuto/unitdiff/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	err := cmd.Run(context.Background(), &cmd.Version{
		Version:   version,
		Commit:    commit,
		Timestamp: date,
	}, os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
