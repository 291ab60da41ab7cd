package parser

type (
	// FileAttrsStmt declares attributes applied to the file as a whole.
	// Syntax: file attrs [Name('arg'), ...];
	FileAttrsStmt struct {
		Attrs *AttrList `parser:"'file' 'attrs' @@ ';'"`
	}

	// UseModuleStmt declares the module this unit belongs to.
	// Syntax: use module name;
	UseModuleStmt struct {
		Name string `parser:"'use' 'module' @Ident ';'"`
	}

	// ModuleStmt declares a module.
	// Syntax: module name [attrs [...]] [doc '...'];
	ModuleStmt struct {
		Name  string    `parser:"'module' @Ident"`
		Attrs *AttrList `parser:"('attrs' @@)?"`
		Doc   *string   `parser:"('doc' @String)? ';'"`
	}

	// ConstStmt declares a constant, top-level or inside a class body.
	// Syntax: [abstract] const name [= 'value'];
	ConstStmt struct {
		Abstract bool    `parser:"@'abstract'?"`
		Name     string  `parser:"'const' @Ident"`
		Value    *string `parser:"('=' @String)? ';'"`
	}

	// TypedefStmt declares a type alias.
	// Syntax: typedef [case] name = type [attrs [...]];
	TypedefStmt struct {
		Case  bool      `parser:"'typedef' @'case'?"`
		Name  string    `parser:"@Ident"`
		Type  *TypeRef  `parser:"'=' @@"`
		Attrs *AttrList `parser:"('attrs' @@)? ';'"`
	}
)
