package unit

type (
	// Unit is the root of a compiled program unit: the full set of top-level
	// declarations produced by compiling one source file. Units are immutable
	// snapshots; nothing in this module mutates one after construction.
	//
	// Ordering within the declaration collections is not significant.
	// Compilers reorder declarations between runs, which is why comparison
	// reconciles them by name rather than position.
	Unit struct {
		// Functions holds the top-level function declarations
		Functions []*Function

		// Classes holds the class-like declarations (classes, interfaces,
		// traits, enums)
		Classes []*Class

		// Constants holds the top-level constant declarations
		Constants []*Constant

		// Typedefs holds the type alias declarations
		Typedefs []*Typedef

		// Modules holds the module declarations
		Modules []*Module

		// FileAttributes holds attributes applied to the file as a whole
		FileAttributes []*Attribute

		// ModuleUse names the module this unit belongs to, if any
		ModuleUse *string
	}

	// Constant is a named constant declaration. The value is carried as the
	// compiler's opaque rendering of the typed value; two constants are equal
	// when their renderings are byte-identical.
	Constant struct {
		// Name is the constant name
		Name string

		// Value is the opaque rendered value (absent for abstract constants)
		Value *string

		// Abstract marks a constant declared without a value
		Abstract bool
	}

	// Typedef is a named type alias declaration.
	Typedef struct {
		// Name is the alias name
		Name string

		// Attributes holds the user attributes on the alias
		Attributes []*Attribute

		// Type is the aliased type
		Type TypeInfo

		// CaseType marks a case type alias (a union of variants)
		CaseType bool
	}

	// Module is a named module declaration.
	Module struct {
		// Name is the module name
		Name string

		// Attributes holds the user attributes on the module
		Attributes []*Attribute

		// Doc is the doc comment attached to the declaration, if any
		Doc *string
	}
)

// EntityName returns the reconciliation key for a constant.
func (c *Constant) EntityName() string { return c.Name }

// EntityName returns the reconciliation key for a typedef.
func (t *Typedef) EntityName() string { return t.Name }

// EntityName returns the reconciliation key for a module.
func (m *Module) EntityName() string { return m.Name }
