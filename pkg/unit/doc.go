// Package unit defines the in-memory model of a compiled program unit: the
// tree of named declarations (functions, classes, constants, typedefs,
// modules, and per-class members) that the diff engine reconciles.
//
// Every declaration participating in a keyed collection implements
// compare.Named via EntityName. Scalar fields are compared by leaf equality;
// values the compiler renders opaquely (constant values, initializers,
// instruction bodies) are carried as strings and compared byte-for-byte.
//
// The package also provides the user-attribute predicates (HasMemoize,
// HasDynamicallyCallable, DeprecationInfo, ...) that comparison callers use
// to decide how strictly to compare two matched entities.
package unit
