package unit

const (
	// RequireExtends constrains users of a trait/interface to extend a class
	RequireExtends RequirementKind = "extends"
	// RequireImplements constrains users of a trait to implement an interface
	RequireImplements RequirementKind = "implements"
	// RequireClass constrains a trait to being used by one specific class
	RequireClass RequirementKind = "class"
)

const (
	// ClassAbstract marks a class that cannot be instantiated directly
	ClassAbstract ClassFlags = 1 << iota
	// ClassFinal marks a class that cannot be extended
	ClassFinal
	// ClassInterface marks an interface declaration
	ClassInterface
	// ClassTrait marks a trait declaration
	ClassTrait
	// ClassEnum marks an enum declaration
	ClassEnum
	// ClassSealed marks a class whose direct subtypes are enumerated
	ClassSealed
)

type (
	// ClassFlags is the bitset of class-level modifiers.
	ClassFlags uint16

	// RequirementKind distinguishes the kinds of trait/interface requirement.
	RequirementKind string

	// Class is a class-like declaration: class, interface, trait, or enum.
	// Its member collections are keyed by name; ordering is not significant.
	Class struct {
		// Name is the class name
		Name string

		// Flags holds the class-level modifiers
		Flags ClassFlags

		// Base is the extended base class, if any
		Base *string

		// Implements holds the implemented interface names (unordered)
		Implements []string

		// Uses holds the used trait names (unordered)
		Uses []string

		// Attributes holds the user attributes on the class
		Attributes []*Attribute

		// Doc is the doc comment attached to the declaration, if any
		Doc *string

		// Methods holds the method declarations, keyed by name
		Methods []*Method

		// Properties holds the property declarations, keyed by name
		Properties []*Property

		// Constants holds the class constant declarations, keyed by name
		Constants []*Constant

		// TypeConstants holds the type constant declarations, keyed by name
		TypeConstants []*TypeConstant

		// Requirements holds the trait/interface requirements, keyed by name
		Requirements []*Requirement

		// UpperBounds holds the generic upper-bound declarations, keyed by
		// type parameter name
		UpperBounds []*UpperBound
	}

	// Property is a named class property.
	Property struct {
		// Name is the property name
		Name string

		// Visibility is the declared visibility (public, protected, private)
		Visibility Visibility

		// Static marks a static property
		Static bool

		// Attributes holds the user attributes on the property
		Attributes []*Attribute

		// Type is the declared property type, if any
		Type *TypeInfo

		// InitialValue is the opaque rendered initializer, if any
		InitialValue *string

		// Doc is the doc comment attached to the declaration, if any
		Doc *string
	}

	// TypeConstant is a named class type constant.
	TypeConstant struct {
		// Name is the type constant name
		Name string

		// Initializer is the opaque rendered type initializer (absent for
		// abstract type constants)
		Initializer *string

		// Abstract marks a type constant declared without an initializer
		Abstract bool
	}

	// Requirement records a single trait/interface requirement.
	Requirement struct {
		// Name is the required class or interface name
		Name string

		// Kind is the requirement kind
		Kind RequirementKind
	}

	// UpperBound records the bounds declared for one generic type parameter.
	UpperBound struct {
		// Name is the type parameter name
		Name string

		// Bounds holds the constraining types, in declaration order
		Bounds []TypeInfo
	}
)

// EntityName returns the reconciliation key for a class.
func (c *Class) EntityName() string { return c.Name }

// EntityName returns the reconciliation key for a property.
func (p *Property) EntityName() string { return p.Name }

// EntityName returns the reconciliation key for a type constant.
func (t *TypeConstant) EntityName() string { return t.Name }

// EntityName returns the reconciliation key for a requirement.
func (r *Requirement) EntityName() string { return r.Name }

// EntityName returns the reconciliation key for an upper bound.
func (u *UpperBound) EntityName() string { return u.Name }

// Is reports whether all of the given flags are set.
func (f ClassFlags) Is(flags ClassFlags) bool { return f&flags == flags }
