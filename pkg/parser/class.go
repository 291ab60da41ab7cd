package parser

type (
	// ClassStmt declares a class-like entity: class, interface, trait, or
	// enum.
	// Syntax: class name [flags [...]] [extends base]
	//         [implements (I0, I1)] [uses (T0, T1)] [attrs [...]]
	//         [doc '...'] { members }
	ClassStmt struct {
		Kind       string        `parser:"@('class' | 'interface' | 'trait' | 'enum')"`
		Name       string        `parser:"@Ident"`
		Flags      []string      `parser:"('flags' '[' @Ident* ']')?"`
		Extends    *string       `parser:"('extends' @Ident)?"`
		Implements []string      `parser:"('implements' '(' @Ident (',' @Ident)* ')')?"`
		Uses       []string      `parser:"('uses' '(' @Ident (',' @Ident)* ')')?"`
		Attrs      *AttrList     `parser:"('attrs' @@)?"`
		Doc        *string       `parser:"('doc' @String)?"`
		Members    []*MemberStmt `parser:"'{' @@* '}'"`
	}

	// MemberStmt is any declaration inside a class body.
	MemberStmt struct {
		Require   *RequireStmt   `parser:"@@"`
		Upper     *UpperStmt     `parser:"| @@"`
		TypeConst *TypeConstStmt `parser:"| @@"`
		Const     *ConstStmt     `parser:"| @@"`
		Property  *PropertyStmt  `parser:"| @@"`
		Method    *MethodStmt    `parser:"| @@"`
	}

	// RequireStmt declares a trait/interface requirement.
	// Syntax: require extends|implements|class name;
	RequireStmt struct {
		Kind string `parser:"'require' @('extends' | 'implements' | 'class')"`
		Name string `parser:"@Ident ';'"`
	}

	// UpperStmt declares the upper bounds of one generic type parameter.
	// Syntax: upper T as (type0, type1);
	UpperStmt struct {
		Name   string     `parser:"'upper' @Ident"`
		Bounds []*TypeRef `parser:"'as' '(' @@ (',' @@)* ')' ';'"`
	}

	// TypeConstStmt declares a class type constant.
	// Syntax: [abstract] typeconst name [= 'initializer'];
	TypeConstStmt struct {
		Abstract    bool    `parser:"@'abstract'?"`
		Name        string  `parser:"'typeconst' @Ident"`
		Initializer *string `parser:"('=' @String)? ';'"`
	}

	// PropertyStmt declares a class property. Visibility and the static
	// marker are given in the flags list (public when omitted).
	// Syntax: property name [: type] [flags [...]] [attrs [...]]
	//         [= 'value'] [doc '...'];
	PropertyStmt struct {
		Name  string    `parser:"'property' @Ident"`
		Type  *TypeRef  `parser:"(':' @@)?"`
		Flags []string  `parser:"('flags' '[' @Ident* ']')?"`
		Attrs *AttrList `parser:"('attrs' @@)?"`
		Value *string   `parser:"('=' @String)?"`
		Doc   *string   `parser:"('doc' @String)? ';'"`
	}
)
