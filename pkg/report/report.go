package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/compare"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type (
	// Options controls rendering behavior.
	Options struct {
		// Color enables ANSI color escapes. Disabled by default so piped
		// output and golden files stay byte-stable.
		Color bool
	}

	// Printer renders comparison outcomes to a writer. A Printer is safe for
	// reuse across comparisons; color state is fixed at construction.
	Printer struct {
		kind *color.Color
		path *color.Color
		del  *color.Color
		ins  *color.Color
		ok   *color.Color
	}
)

// Defaults is the standard rendering configuration: plain output, no color.
var Defaults = &Options{}

// New creates a Printer with the specified options. Passing nil uses
// Defaults.
func New(opts *Options) *Printer {
	if opts == nil {
		opts = Defaults
	}

	p := &Printer{
		kind: color.New(color.FgRed, color.Bold),
		path: color.New(color.FgCyan),
		del:  color.New(color.FgRed),
		ins:  color.New(color.FgGreen),
		ok:   color.New(color.FgGreen),
	}

	// Color is decided per Printer rather than by the package-global
	// NoColor, so output is deterministic under test.
	for _, c := range []*color.Color{p.kind, p.path, p.del, p.ins, p.ok} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print renders the outcome of one unit comparison (convenience function).
// A nil error prints the success line; anything else prints the failure.
func Print(w io.Writer, opts *Options, err error) error {
	p := New(opts)
	if err == nil {
		return p.Equal(w)
	}

	return p.Failure(w, err)
}

// Equal prints the success line for two equivalent units.
func (p *Printer) Equal(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.ok.Sprint("units are equivalent"))
	return errors.Wrap(err, "writing report")
}

// Failure renders a comparison failure: the kind, the divergence path, and
// the differing values. Multi-line values (instruction bodies) are shown as
// a line diff; structural failures print their description. Errors that are
// not comparison failures are printed verbatim.
func (p *Printer) Failure(w io.Writer, err error) error {
	var cmpErr *compare.Error
	if !errors.As(err, &cmpErr) {
		_, werr := fmt.Fprintln(w, err.Error())
		return errors.Wrap(werr, "writing report")
	}

	header := p.kind.Sprint(cmpErr.Kind)
	if cmpErr.Path != "" {
		header = fmt.Sprintf("%s in %s", p.kind.Sprint(cmpErr.Kind), p.path.Sprint(cmpErr.Path))
	}
	if _, werr := fmt.Fprintln(w, header); werr != nil {
		return errors.Wrap(werr, "writing report")
	}

	switch {
	case strings.Contains(cmpErr.Left, "\n") || strings.Contains(cmpErr.Right, "\n"):
		return p.lineDiff(w, cmpErr.Left, cmpErr.Right)
	case cmpErr.Left != "" || cmpErr.Right != "":
		_, werr := fmt.Fprintf(w, "    left:  %s\n    right: %s\n", p.del.Sprint(cmpErr.Left), p.ins.Sprint(cmpErr.Right))
		return errors.Wrap(werr, "writing report")
	default:
		_, werr := fmt.Fprintf(w, "    %s\n", cmpErr.Detail)
		return errors.Wrap(werr, "writing report")
	}
}

// Pass prints one batch line for an equivalent pair.
func (p *Printer) Pass(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%s %s\n", p.ok.Sprint("ok  "), name)
	return errors.Wrap(err, "writing report")
}

// Diff prints one batch line for a divergent pair.
func (p *Printer) Diff(w io.Writer, name string, cause error) error {
	_, err := fmt.Fprintf(w, "%s %s: %s\n", p.kind.Sprint("diff"), name, cause)
	return errors.Wrap(err, "writing report")
}

// Fail prints one batch line for a pair that could not be compared.
func (p *Printer) Fail(w io.Writer, name string, cause error) error {
	_, err := fmt.Fprintf(w, "%s %s: %s\n", p.del.Sprint("err "), name, cause)
	return errors.Wrap(err, "writing report")
}

// lineDiff renders a line-oriented diff of two multi-line values, one output
// line per value line, prefixed "-", "+", or " ".
func (p *Printer) lineDiff(w io.Writer, left, right string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		prefix, paint := " ", (*color.Color)(nil)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", p.del
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", p.ins
		}

		for _, line := range splitLines(d.Text) {
			out := prefix + line
			if paint != nil {
				out = paint.Sprint(out)
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return errors.Wrap(err, "writing report")
			}
		}
	}

	return nil
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
