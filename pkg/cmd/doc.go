// Package cmd provides the unitdiff command line interface.
//
// The CLI exposes three commands: compare (two dumps), batch (two directory
// trees of dumps, with optional ClickHouse verdict recording), and parse
// (outline a single dump). Global flags select the project config file and
// colorized output.
package cmd
