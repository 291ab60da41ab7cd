package unit

const (
	// ConstraintNullable marks a nullable type ("?T")
	ConstraintNullable ConstraintFlags = 1 << iota
	// ConstraintSoft marks a soft type hint
	ConstraintSoft
	// ConstraintTypeVar marks a reference to a generic type parameter
	ConstraintTypeVar
	// ConstraintUpperBound marks a type constrained by upper bounds
	ConstraintUpperBound
)

type (
	// ConstraintFlags is the bitset of type constraint modifiers.
	ConstraintFlags uint16

	// TypeInfo is a compiled type annotation: the user-visible type name plus
	// the runtime constraint derived from it. Either may be absent for
	// untyped positions.
	TypeInfo struct {
		// UserType is the type as written in source, if preserved
		UserType *string

		// Constraint is the runtime-enforced constraint name, if any
		Constraint *string

		// Flags holds the constraint modifiers
		Flags ConstraintFlags
	}
)

// Is reports whether all of the given flags are set.
func (f ConstraintFlags) Is(flags ConstraintFlags) bool { return f&flags == flags }

// Equal reports whether two type annotations are identical.
func (t TypeInfo) Equal(other TypeInfo) bool {
	if t.Flags != other.Flags {
		return false
	}
	if (t.UserType == nil) != (other.UserType == nil) {
		return false
	}
	if t.UserType != nil && *t.UserType != *other.UserType {
		return false
	}
	if (t.Constraint == nil) != (other.Constraint == nil) {
		return false
	}
	if t.Constraint != nil && *t.Constraint != *other.Constraint {
		return false
	}

	return true
}

// String renders the annotation for diagnostics, preferring the user-visible
// spelling.
func (t TypeInfo) String() string {
	name := "_"
	switch {
	case t.UserType != nil:
		name = *t.UserType
	case t.Constraint != nil:
		name = *t.Constraint
	}

	if t.Flags.Is(ConstraintNullable) {
		return "?" + name
	}

	return name
}
