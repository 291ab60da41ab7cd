// Package consts provides shared constants used throughout unitdiff.
package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the default project configuration file name
	ConfigFile = "unitdiff.yaml"

	// UnitExt is the file extension batch comparison scans for
	UnitExt = ".unit"

	// DefaultWorkers is the concurrency used for batch comparison and
	// parallel fan-out when the configuration does not set one
	DefaultWorkers = 4

	// DefaultVerdictTable is the ClickHouse table batch verdicts are
	// recorded into when the configuration does not name one
	DefaultVerdictTable = "unitdiff_verdicts"
)
