package unit

const (
	// Public visibility
	Public Visibility = "public"
	// Protected visibility
	Protected Visibility = "protected"
	// Private visibility
	Private Visibility = "private"
)

const (
	// FuncAbstract marks a method without a body
	FuncAbstract FuncFlags = 1 << iota
	// FuncFinal marks a method that cannot be overridden
	FuncFinal
	// FuncStatic marks a static method
	FuncStatic
	// FuncAsync marks an async function
	FuncAsync
	// FuncGenerator marks a generator function
	FuncGenerator
	// FuncMemoized marks a function compiled with a memoization wrapper
	FuncMemoized
)

type (
	// Visibility is a member visibility level.
	Visibility string

	// FuncFlags is the bitset of function/method modifiers.
	FuncFlags uint16

	// Function is a top-level function declaration.
	Function struct {
		// Name is the function name
		Name string

		// Flags holds the function modifiers
		Flags FuncFlags

		// Attributes holds the user attributes on the function
		Attributes []*Attribute

		// Params holds the parameters in declaration order
		Params []*Param

		// ReturnType is the declared return type, if any
		ReturnType *TypeInfo

		// Coeffects holds the coeffect names (unordered)
		Coeffects []string

		// Body is the opaque rendered instruction stream. Two bodies are
		// equal when their renderings are byte-identical; instruction-level
		// equivalence under reordering is out of scope.
		Body string
	}

	// Method is a class method declaration. It mirrors Function with a
	// visibility level added.
	Method struct {
		// Name is the method name
		Name string

		// Visibility is the declared visibility
		Visibility Visibility

		// Flags holds the method modifiers
		Flags FuncFlags

		// Attributes holds the user attributes on the method
		Attributes []*Attribute

		// Params holds the parameters in declaration order
		Params []*Param

		// ReturnType is the declared return type, if any
		ReturnType *TypeInfo

		// Coeffects holds the coeffect names (unordered)
		Coeffects []string

		// Body is the opaque rendered instruction stream
		Body string
	}

	// Param is a single function/method parameter. Parameters are compared
	// positionally, not by name: renaming a parameter is significant only if
	// the caller's equality says so.
	Param struct {
		// Name is the parameter name
		Name string

		// Type is the declared parameter type, if any
		Type *TypeInfo

		// DefaultValue is the opaque rendered default, if any
		DefaultValue *string

		// Variadic marks a "...$args" parameter
		Variadic bool

		// Inout marks an inout parameter
		Inout bool

		// Readonly marks a readonly parameter
		Readonly bool
	}
)

// EntityName returns the reconciliation key for a function.
func (f *Function) EntityName() string { return f.Name }

// EntityName returns the reconciliation key for a method.
func (m *Method) EntityName() string { return m.Name }

// Is reports whether all of the given flags are set.
func (f FuncFlags) Is(flags FuncFlags) bool { return f&flags == flags }
