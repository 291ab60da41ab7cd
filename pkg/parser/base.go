package parser

import "strings"

type (
	// AttrList is a bracketed user-attribute list.
	// Syntax: [Name('arg0', 'arg1'), Other]
	AttrList struct {
		Attrs []*Attr `parser:"'[' (@@ (',' @@)*)? ']'"`
	}

	// Attr is one user attribute with optional string arguments.
	Attr struct {
		Name string   `parser:"@Ident"`
		Args []string `parser:"('(' (@String (',' @String)*)? ')')?"`
	}

	// TypeRef is a type annotation.
	// Syntax: ?name<arg0, arg1>
	TypeRef struct {
		Nullable bool       `parser:"@'?'?"`
		Name     string     `parser:"@Ident"`
		Args     []*TypeRef `parser:"('<' @@ (',' @@)* '>')?"`
	}

	// ParamDef is one function/method parameter.
	// Syntax: [inout] [readonly] [...]name [: type] [= 'default']
	ParamDef struct {
		Inout    bool     `parser:"@'inout'?"`
		Readonly bool     `parser:"@'readonly'?"`
		Variadic bool     `parser:"@Ellipsis?"`
		Name     string   `parser:"@Ident"`
		Type     *TypeRef `parser:"(':' @@)?"`
		Default  *string  `parser:"('=' @String)?"`
	}
)

// String renders the type in canonical form, e.g. "?vec<string>".
func (t *TypeRef) String() string {
	var sb strings.Builder
	if t.Nullable {
		sb.WriteByte('?')
	}
	sb.WriteString(t.Name)

	if len(t.Args) > 0 {
		sb.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteByte('>')
	}

	return sb.String()
}

// unquote strips the surrounding single quotes from a String token and
// resolves the \' and \\ escapes. Newlines inside the literal are kept as-is,
// which is how multi-line instruction bodies are written.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}

	var sb strings.Builder
	sb.Grow(len(s))

	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			sb.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

func unquoteAll(vals []string) []string {
	if vals == nil {
		return nil
	}

	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = unquote(v)
	}

	return out
}

func unquotePtr(s *string) *string {
	if s == nil {
		return nil
	}

	v := unquote(*s)
	return &v
}
