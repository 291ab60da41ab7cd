// Package parser parses the textual unit-dump format into the pkg/unit
// comparison model.
//
// A unit dump is a declarative description of one compiled program unit: one
// statement per top-level declaration, with class members nested in braces.
// Opaque compiler output (instruction bodies, constant values, defaults) is
// carried in single-quoted strings and never interpreted.
//
//	# a minimal dump
//	use module core;
//
//	const VERSION = '3';
//
//	function main(argv: vec<string>): int flags [async] body 'Int 0
//	RetC';
//
//	class Foo flags [final] extends Base implements (Countable) {
//	    const LIMIT = '100';
//	    property items: vec<int> flags [private] = 'vec[]';
//	    method count(): int body 'Int 1
//	RetC';
//	}
//
// The grammar is defined with participle struct tags; see the *Stmt types.
// Program.Unit converts a parse tree into a *unit.Unit ready for comparison.
package parser
