package cmd

import (
	"github.com/pseudomuto/unitdiff/pkg/parser"
	"github.com/pseudomuto/unitdiff/pkg/unit"
)

// loadUnit parses a unit-dump file into the comparison model.
func loadUnit(path string) (*unit.Unit, error) {
	program, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return program.Unit()
}
