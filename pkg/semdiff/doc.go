// Package semdiff composes the compare primitives into a full comparison of
// two compiled program units.
//
// The traversal order is canonical: top-level functions, classes, constants,
// typedefs, modules, file attributes, then the module-use marker. Within a
// class: flags, base, implements, uses, attributes, doc, methods, properties,
// constants, type constants, requirements, upper bounds. Named collections
// are reconciled by key independent of element order; parameters and
// attribute arguments are positional; implements/uses/coeffects are treated
// as unordered sets.
//
// Options tune the equality policy without touching the traversal: bodies
// and docs can be skipped wholesale, individual user attributes can be
// ignored, and the top-level loops can be fanned out across workers with
// results identical to the sequential run.
//
// Comparison stops at the first divergence; the returned error carries the
// canonical path (e.g. "classes[Bar].methods[get].return_type.deref") and a
// description of the differing values.
package semdiff
