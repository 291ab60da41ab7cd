package parser

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/unit"
)

// Unit converts the parse tree into the comparison model. The conversion is
// purely structural; names are kept verbatim and opaque values (bodies,
// constant values, defaults) are unquoted but otherwise untouched.
//
// Example:
//
//	program, err := parser.ParseFile("a.unit")
//	if err != nil {
//	    return err
//	}
//
//	u, err := program.Unit()
func (p *Program) Unit() (*unit.Unit, error) {
	u := &unit.Unit{}

	for _, stmt := range p.Statements {
		switch {
		case stmt.Function != nil:
			fn, err := convertFunction(stmt.Function)
			if err != nil {
				return nil, err
			}
			u.Functions = append(u.Functions, fn)

		case stmt.Class != nil:
			cls, err := convertClass(stmt.Class)
			if err != nil {
				return nil, err
			}
			u.Classes = append(u.Classes, cls)

		case stmt.Const != nil:
			u.Constants = append(u.Constants, convertConst(stmt.Const))

		case stmt.Typedef != nil:
			u.Typedefs = append(u.Typedefs, &unit.Typedef{
				Name:       stmt.Typedef.Name,
				Attributes: convertAttrs(stmt.Typedef.Attrs),
				Type:       convertType(stmt.Typedef.Type),
				CaseType:   stmt.Typedef.Case,
			})

		case stmt.Module != nil:
			u.Modules = append(u.Modules, &unit.Module{
				Name:       stmt.Module.Name,
				Attributes: convertAttrs(stmt.Module.Attrs),
				Doc:        unquotePtr(stmt.Module.Doc),
			})

		case stmt.FileAttrs != nil:
			u.FileAttributes = append(u.FileAttributes, convertAttrs(stmt.FileAttrs.Attrs)...)

		case stmt.UseModule != nil:
			name := stmt.UseModule.Name
			u.ModuleUse = &name
		}
	}

	return u, nil
}

func convertFunction(stmt *FunctionStmt) (*unit.Function, error) {
	flags, vis, err := funcFlags(stmt.Flags)
	if err != nil {
		return nil, errors.Wrapf(err, "function %s", stmt.Name)
	}
	if vis != "" {
		return nil, errors.Errorf("function %s: visibility %s is only valid on methods", stmt.Name, vis)
	}

	return &unit.Function{
		Name:       stmt.Name,
		Flags:      flags,
		Attributes: convertAttrs(stmt.Attrs),
		Params:     convertParams(stmt.Params),
		ReturnType: convertTypePtr(stmt.Return),
		Coeffects:  stmt.Coeffects,
		Body:       bodyOf(stmt.Body),
	}, nil
}

func convertMethod(stmt *MethodStmt) (*unit.Method, error) {
	flags, vis, err := funcFlags(stmt.Flags)
	if err != nil {
		return nil, errors.Wrapf(err, "method %s", stmt.Name)
	}
	if vis == "" {
		vis = unit.Public
	}

	return &unit.Method{
		Name:       stmt.Name,
		Visibility: vis,
		Flags:      flags,
		Attributes: convertAttrs(stmt.Attrs),
		Params:     convertParams(stmt.Params),
		ReturnType: convertTypePtr(stmt.Return),
		Coeffects:  stmt.Coeffects,
		Body:       bodyOf(stmt.Body),
	}, nil
}

func convertClass(stmt *ClassStmt) (*unit.Class, error) {
	flags, err := classFlags(stmt.Kind, stmt.Flags)
	if err != nil {
		return nil, errors.Wrapf(err, "class %s", stmt.Name)
	}

	cls := &unit.Class{
		Name:       stmt.Name,
		Flags:      flags,
		Base:       stmt.Extends,
		Implements: stmt.Implements,
		Uses:       stmt.Uses,
		Attributes: convertAttrs(stmt.Attrs),
		Doc:        unquotePtr(stmt.Doc),
	}

	for _, member := range stmt.Members {
		switch {
		case member.Method != nil:
			m, err := convertMethod(member.Method)
			if err != nil {
				return nil, errors.Wrapf(err, "class %s", stmt.Name)
			}
			cls.Methods = append(cls.Methods, m)

		case member.Property != nil:
			prop, err := convertProperty(member.Property)
			if err != nil {
				return nil, errors.Wrapf(err, "class %s", stmt.Name)
			}
			cls.Properties = append(cls.Properties, prop)

		case member.Const != nil:
			cls.Constants = append(cls.Constants, convertConst(member.Const))

		case member.TypeConst != nil:
			cls.TypeConstants = append(cls.TypeConstants, &unit.TypeConstant{
				Name:        member.TypeConst.Name,
				Initializer: unquotePtr(member.TypeConst.Initializer),
				Abstract:    member.TypeConst.Abstract,
			})

		case member.Require != nil:
			cls.Requirements = append(cls.Requirements, &unit.Requirement{
				Name: member.Require.Name,
				Kind: unit.RequirementKind(member.Require.Kind),
			})

		case member.Upper != nil:
			bounds := make([]unit.TypeInfo, len(member.Upper.Bounds))
			for i, b := range member.Upper.Bounds {
				bounds[i] = convertType(b)
			}
			cls.UpperBounds = append(cls.UpperBounds, &unit.UpperBound{
				Name:   member.Upper.Name,
				Bounds: bounds,
			})
		}
	}

	return cls, nil
}

func convertProperty(stmt *PropertyStmt) (*unit.Property, error) {
	vis := unit.Visibility("")
	static := false

	for _, flag := range stmt.Flags {
		switch flag {
		case "public", "protected", "private":
			vis = unit.Visibility(flag)
		case "static":
			static = true
		default:
			return nil, errors.Errorf("property %s: unknown flag %q", stmt.Name, flag)
		}
	}
	if vis == "" {
		vis = unit.Public
	}

	return &unit.Property{
		Name:         stmt.Name,
		Visibility:   vis,
		Static:       static,
		Attributes:   convertAttrs(stmt.Attrs),
		Type:         convertTypePtr(stmt.Type),
		InitialValue: unquotePtr(stmt.Value),
		Doc:          unquotePtr(stmt.Doc),
	}, nil
}

func convertConst(stmt *ConstStmt) *unit.Constant {
	return &unit.Constant{
		Name:     stmt.Name,
		Value:    unquotePtr(stmt.Value),
		Abstract: stmt.Abstract,
	}
}

func convertParams(params []*ParamDef) []*unit.Param {
	out := make([]*unit.Param, len(params))
	for i, p := range params {
		out[i] = &unit.Param{
			Name:         p.Name,
			Type:         convertTypePtr(p.Type),
			DefaultValue: unquotePtr(p.Default),
			Variadic:     p.Variadic,
			Inout:        p.Inout,
			Readonly:     p.Readonly,
		}
	}

	return out
}

func convertAttrs(list *AttrList) []*unit.Attribute {
	if list == nil {
		return nil
	}

	out := make([]*unit.Attribute, len(list.Attrs))
	for i, a := range list.Attrs {
		out[i] = &unit.Attribute{
			Name:      a.Name,
			Arguments: unquoteAll(a.Args),
		}
	}

	return out
}

// convertType renders the structured type reference back into the model's
// canonical string spelling. The nullable marker becomes a constraint flag.
func convertType(ref *TypeRef) unit.TypeInfo {
	name := ref.String()
	if ref.Nullable {
		name = name[1:] // flag carries the marker
	}

	info := unit.TypeInfo{
		UserType:   &name,
		Constraint: &name,
	}
	if ref.Nullable {
		info.Flags |= unit.ConstraintNullable
	}

	return info
}

func convertTypePtr(ref *TypeRef) *unit.TypeInfo {
	if ref == nil {
		return nil
	}

	info := convertType(ref)
	return &info
}

func classFlags(kind string, flags []string) (unit.ClassFlags, error) {
	var out unit.ClassFlags

	switch kind {
	case "class":
	case "interface":
		out |= unit.ClassInterface
	case "trait":
		out |= unit.ClassTrait
	case "enum":
		out |= unit.ClassEnum
	}

	for _, flag := range flags {
		switch flag {
		case "abstract":
			out |= unit.ClassAbstract
		case "final":
			out |= unit.ClassFinal
		case "sealed":
			out |= unit.ClassSealed
		default:
			return 0, errors.Errorf("unknown class flag %q", flag)
		}
	}

	return out, nil
}

// funcFlags parses a method/function flag list, splitting out visibility.
func funcFlags(flags []string) (unit.FuncFlags, unit.Visibility, error) {
	var (
		out unit.FuncFlags
		vis unit.Visibility
	)

	for _, flag := range flags {
		switch flag {
		case "abstract":
			out |= unit.FuncAbstract
		case "final":
			out |= unit.FuncFinal
		case "static":
			out |= unit.FuncStatic
		case "async":
			out |= unit.FuncAsync
		case "generator":
			out |= unit.FuncGenerator
		case "memoized":
			out |= unit.FuncMemoized
		case "public", "protected", "private":
			vis = unit.Visibility(flag)
		default:
			return 0, "", errors.Errorf("unknown flag %q", flag)
		}
	}

	return out, vis, nil
}

func bodyOf(s *string) string {
	if s == nil {
		return ""
	}

	return unquote(*s)
}
