package parser

type (
	// FunctionStmt declares a top-level function.
	// Syntax: function name(params) [: type] [flags [...]] [attrs [...]]
	//         [coeffects [...]] [body '...'];
	FunctionStmt struct {
		Name      string      `parser:"'function' @Ident"`
		Params    []*ParamDef `parser:"'(' (@@ (',' @@)*)? ')'"`
		Return    *TypeRef    `parser:"(':' @@)?"`
		Flags     []string    `parser:"('flags' '[' @Ident* ']')?"`
		Attrs     *AttrList   `parser:"('attrs' @@)?"`
		Coeffects []string    `parser:"('coeffects' '[' @Ident* ']')?"`
		Body      *string     `parser:"('body' @String)? ';'"`
	}

	// MethodStmt declares a method inside a class body. Visibility is given
	// in the flags list (public when omitted).
	// Syntax: method name(params) [: type] [flags [...]] [attrs [...]]
	//         [coeffects [...]] [body '...'];
	MethodStmt struct {
		Name      string      `parser:"'method' @Ident"`
		Params    []*ParamDef `parser:"'(' (@@ (',' @@)*)? ')'"`
		Return    *TypeRef    `parser:"(':' @@)?"`
		Flags     []string    `parser:"('flags' '[' @Ident* ']')?"`
		Attrs     *AttrList   `parser:"('attrs' @@)?"`
		Coeffects []string    `parser:"('coeffects' '[' @Ident* ']')?"`
		Body      *string     `parser:"('body' @String)? ';'"`
	}
)
