package unit

// Well-known user attribute names recognized by the predicates below.
const (
	AttrConst                 = "__Const"
	AttrDeprecated            = "__Deprecated"
	AttrDynamicallyCallable   = "__DynamicallyCallable"
	AttrDynamicallyReferenced = "__DynamicallyReferenced"
	AttrEnumClass             = "__EnumClass"
	AttrIsFoldable            = "__IsFoldable"
	AttrMemoize               = "__Memoize"
	AttrMemoizeLSB            = "__MemoizeLSB"
	AttrSealed                = "__Sealed"
)

type (
	// Attribute is a user attribute: a well-known name plus a series of
	// opaque rendered arguments. Comparison callers consult attributes to
	// decide how to compare two matched entities (e.g. skip fields expected
	// to differ when a particular attribute is present); the comparators
	// themselves treat attributes as plain data.
	Attribute struct {
		// Name is the attribute name
		Name string

		// Arguments holds the opaque rendered attribute arguments
		Arguments []string
	}
)

// EntityName returns the reconciliation key for an attribute. Attribute lists
// are keyed collections: declaration order is not significant.
func (a *Attribute) EntityName() string { return a.Name }

// Is reports whether the attribute has the given name.
func (a *Attribute) Is(name string) bool { return a.Name == name }

// HasStringArg reports whether any argument equals arg.
func (a *Attribute) HasStringArg(arg string) bool {
	for _, v := range a.Arguments {
		if v == arg {
			return true
		}
	}

	return false
}

// Has reports whether attrs contains an attribute named name.
func Has(attrs []*Attribute, name string) bool {
	return Find(attrs, name) != nil
}

// Find returns the first attribute named name, or nil.
func Find(attrs []*Attribute, name string) *Attribute {
	for _, a := range attrs {
		if a.Is(name) {
			return a
		}
	}

	return nil
}

// HasMemoize reports whether attrs carries either memoization attribute.
func HasMemoize(attrs []*Attribute) bool {
	return Has(attrs, AttrMemoize) || Has(attrs, AttrMemoizeLSB)
}

// IsKeyedByICMemoize reports whether attrs carries a memoization attribute
// keyed by implicit context.
func IsKeyedByICMemoize(attrs []*Attribute) bool {
	for _, a := range attrs {
		if (a.Is(AttrMemoize) || a.Is(AttrMemoizeLSB)) && a.HasStringArg("KeyedByIC") {
			return true
		}
	}

	return false
}

// HasDynamicallyCallable reports whether attrs marks the entity as callable
// through a dynamic name.
func HasDynamicallyCallable(attrs []*Attribute) bool {
	return Has(attrs, AttrDynamicallyCallable)
}

// HasSealed reports whether attrs seals the entity's subtype set.
func HasSealed(attrs []*Attribute) bool { return Has(attrs, AttrSealed) }

// HasFoldable reports whether attrs marks the entity as compile-time
// foldable.
func HasFoldable(attrs []*Attribute) bool { return Has(attrs, AttrIsFoldable) }

// HasConst reports whether attrs marks the entity as const.
func HasConst(attrs []*Attribute) bool { return Has(attrs, AttrConst) }

// HasEnumClass reports whether attrs marks a class as an enum class.
func HasEnumClass(attrs []*Attribute) bool { return Has(attrs, AttrEnumClass) }

// DeprecationInfo returns the arguments of the deprecation attribute, or nil
// when the entity is not deprecated.
func DeprecationInfo(attrs []*Attribute) []string {
	if a := Find(attrs, AttrDeprecated); a != nil {
		return a.Arguments
	}

	return nil
}
