// Package codepath provides the immutable path type used to report where in
// a pair of compared unit trees a divergence was found.
//
// A path is an append-only trail of segments (fields, indices, keys, and
// free-form qualifiers). Appending returns a new path sharing its prefix with
// the parent, so paths can be extended on every recursive descent without
// copying and discarded on return without affecting siblings.
//
// Paths carry no comparison semantics of their own; they exist purely so that
// failure messages can point at the exact entity and field that differed:
//
//	classes[UserStore].methods[get].params[1].type
package codepath
