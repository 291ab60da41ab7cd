package parser

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// unitLexer defines the lexer for the textual unit-dump format.
	unitLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\r\n]*`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
		{Name: "Number", Pattern: `\d+(\.\d*)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\\]*`},
		{Name: "Ellipsis", Pattern: `\.\.\.`},
		{Name: "Punct", Pattern: `[(){}\[\],;:=<>?|]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// unitParser is the participle parser instance for the unit-dump grammar
	unitParser = participle.MustBuild[Program](
		participle.Lexer(unitLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(4),
	)
)

type (
	// Program is the parse tree of one unit-dump file.
	Program struct {
		Statements []*Statement `parser:"@@*"`
	}

	// Statement is any top-level declaration in a unit dump.
	Statement struct {
		FileAttrs *FileAttrsStmt `parser:"@@"`
		UseModule *UseModuleStmt `parser:"| @@"`
		Module    *ModuleStmt    `parser:"| @@"`
		Const     *ConstStmt     `parser:"| @@"`
		Typedef   *TypedefStmt   `parser:"| @@"`
		Function  *FunctionStmt  `parser:"| @@"`
		Class     *ClassStmt     `parser:"| @@"`
	}
)

// Parse parses a unit dump from an io.Reader and returns the parse tree.
//
// Example:
//
//	program, err := parser.Parse(f)
//	if err != nil {
//	    return err
//	}
//
//	u, err := program.Unit()
func Parse(r io.Reader) (*Program, error) {
	program, err := unitParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse unit dump")
	}

	return program, nil
}

// ParseString parses a unit dump from a string.
//
// Example:
//
//	program, err := parser.ParseString(`
//	    function main(): int body 'Int 0
//	    RetC';
//	`)
func ParseString(src string) (*Program, error) {
	return Parse(strings.NewReader(src))
}

// ParseFile parses the unit dump at path.
func ParseFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	program, err := unitParser.Parse(path, f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse unit dump: %s", path)
	}

	return program, nil
}
