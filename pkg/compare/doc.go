// Package compare provides the generic comparator primitives used to decide
// whether two unit trees are semantically equivalent, and to report the exact
// location of the first divergence when they are not.
//
// The primitives are composed bottom-up by callers (see pkg/semdiff): Eq and
// EqFunc compare leaves, Option lifts a comparator over optional values,
// Slice and Seq walk ordered sequences in lock-step, Set checks unordered
// multisets of scalars, and ByName — the central algorithm — reconciles
// keyed collections of named entities independent of element order.
//
// Every comparator is a pure function from (path, left, right) to either
// success or a single *Error carrying the canonical path and a description
// of what differed. There is no multi-divergence reporting: the contract is
// first-failure-wins, and enclosing comparators propagate a child failure
// unchanged.
//
// ByNameParallel fans the shared-key loop out across worker goroutines while
// keeping results byte-for-byte identical to the sequential comparator.
package compare
