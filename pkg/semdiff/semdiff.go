package semdiff

import (
	"github.com/pseudomuto/unitdiff/pkg/codepath"
	"github.com/pseudomuto/unitdiff/pkg/compare"
	"github.com/pseudomuto/unitdiff/pkg/unit"
)

type (
	// Option configures a comparison run.
	Option func(*differ)

	// differ carries the comparison policy. All methods are pure; a single
	// differ can be shared across invocations and goroutines.
	differ struct {
		ignoreBodies bool
		ignoreDocs   bool
		ignoreAttrs  map[string]struct{}
		workers      int
	}
)

// IgnoreBodies skips comparison of function and method instruction bodies.
// Useful when two compiler versions are expected to emit different code for
// semantically identical declarations.
func IgnoreBodies() Option {
	return func(d *differ) { d.ignoreBodies = true }
}

// IgnoreDocs skips comparison of doc comments.
func IgnoreDocs() Option {
	return func(d *differ) { d.ignoreDocs = true }
}

// IgnoreAttribute removes the named user attribute from both sides before
// attribute lists are compared, so entities differing only by that attribute
// compare equal.
func IgnoreAttribute(name string) Option {
	return func(d *differ) {
		if d.ignoreAttrs == nil {
			d.ignoreAttrs = make(map[string]struct{})
		}
		d.ignoreAttrs[name] = struct{}{}
	}
}

// Parallel fans the top-level declaration loops out across the given number
// of workers. Results are identical to the sequential comparison; see
// compare.ByNameParallel.
func Parallel(workers int) Option {
	return func(d *differ) { d.workers = workers }
}

// Units compares two compiled program units and returns nil when they are
// semantically equivalent under the configured policy, or the single first
// divergence found along the canonical traversal order.
//
// The traversal reconciles every named collection by key (order-independent)
// and bottoms out at leaf equality over scalar and opaque fields. Neither
// unit is mutated.
//
// Example:
//
//	err := semdiff.Units(a, b, semdiff.IgnoreAttribute("__Deprecated"))
//	if err != nil {
//	    fmt.Println(err) // mismatch in classes[Foo].methods[bar].return_type.deref: ...
//	}
func Units(a, b *unit.Unit, opts ...Option) error {
	d := &differ{}
	for _, opt := range opts {
		opt(d)
	}

	return d.units(codepath.Root(), a, b)
}

func (d *differ) units(path *codepath.Path, a, b *unit.Unit) error {
	if err := compare.ByNameParallel(path.Field("functions"), a.Functions, b.Functions, d.workers, d.function); err != nil {
		return err
	}

	if err := compare.ByNameParallel(path.Field("classes"), a.Classes, b.Classes, d.workers, d.class); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("constants"), a.Constants, b.Constants, d.constant); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("typedefs"), a.Typedefs, b.Typedefs, d.typedef); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("modules"), a.Modules, b.Modules, d.module); err != nil {
		return err
	}

	if err := d.attributes(path.Field("file_attributes"), a.FileAttributes, b.FileAttributes); err != nil {
		return err
	}

	return compare.Option(path.Field("module_use"), a.ModuleUse, b.ModuleUse, compare.Eq)
}

func (d *differ) constant(path *codepath.Path, a, b *unit.Constant) error {
	if err := compare.Eq(path.Field("abstract"), a.Abstract, b.Abstract); err != nil {
		return err
	}

	return compare.Option(path.Field("value"), a.Value, b.Value, compare.Eq)
}

func (d *differ) typedef(path *codepath.Path, a, b *unit.Typedef) error {
	if err := d.attributes(path.Field("attributes"), a.Attributes, b.Attributes); err != nil {
		return err
	}

	if err := d.typeInfo(path.Field("type"), a.Type, b.Type); err != nil {
		return err
	}

	return compare.Eq(path.Field("case_type"), a.CaseType, b.CaseType)
}

func (d *differ) module(path *codepath.Path, a, b *unit.Module) error {
	if err := d.attributes(path.Field("attributes"), a.Attributes, b.Attributes); err != nil {
		return err
	}

	return d.doc(path.Field("doc"), a.Doc, b.Doc)
}

// attributes reconciles two user-attribute lists as keyed collections,
// dropping any attributes the policy ignores before indexing.
func (d *differ) attributes(path *codepath.Path, a, b []*unit.Attribute) error {
	return compare.ByName(path, d.keptAttrs(a), d.keptAttrs(b), d.attribute)
}

func (d *differ) attribute(path *codepath.Path, a, b *unit.Attribute) error {
	return compare.Slice(path.Field("arguments"), a.Arguments, b.Arguments, compare.Eq)
}

func (d *differ) keptAttrs(attrs []*unit.Attribute) []*unit.Attribute {
	if len(d.ignoreAttrs) == 0 {
		return attrs
	}

	kept := make([]*unit.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if _, ok := d.ignoreAttrs[a.Name]; !ok {
			kept = append(kept, a)
		}
	}

	return kept
}

// typeInfo compares two type annotations. The rendered spelling is compared
// first so the common failure reads like source ("?Foo" != "Bar"); the
// field-wise checks catch annotations that render alike but differ in
// structure.
func (d *differ) typeInfo(path *codepath.Path, a, b unit.TypeInfo) error {
	if err := compare.Eq(path, a.String(), b.String()); err != nil {
		return err
	}

	if err := compare.Option(path.Field("user_type"), a.UserType, b.UserType, compare.Eq); err != nil {
		return err
	}

	if err := compare.Option(path.Field("constraint"), a.Constraint, b.Constraint, compare.Eq); err != nil {
		return err
	}

	return compare.Eq(path.Field("flags"), a.Flags, b.Flags)
}

func (d *differ) doc(path *codepath.Path, a, b *string) error {
	if d.ignoreDocs {
		return nil
	}

	return compare.Option(path, a, b, compare.Eq)
}
