package unit

// Ptr returns a pointer to the provided value v. Useful for building optional
// fields from literals.
func Ptr[T any](v T) *T {
	return &v
}
