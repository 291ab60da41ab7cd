// Package report renders comparison outcomes for terminals.
//
// A compare.Error carries a kind, a canonical path, and the raw values at
// the point of divergence; this package turns that into readable output.
// Single-line values are shown side by side, multi-line values (instruction
// bodies) as a line diff. Color is decided per Printer and is off by
// default, so piped output and golden files are byte-stable.
//
// Example:
//
//	err := semdiff.Units(a, b)
//	if printErr := report.Print(os.Stdout, report.Defaults, err); printErr != nil {
//	    return printErr
//	}
package report
