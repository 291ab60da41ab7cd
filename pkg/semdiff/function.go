package semdiff

import (
	"github.com/pseudomuto/unitdiff/pkg/codepath"
	"github.com/pseudomuto/unitdiff/pkg/compare"
	"github.com/pseudomuto/unitdiff/pkg/unit"
)

func (d *differ) function(path *codepath.Path, a, b *unit.Function) error {
	if err := compare.Eq(path.Field("flags"), a.Flags, b.Flags); err != nil {
		return err
	}

	if err := d.attributes(path.Field("attributes"), a.Attributes, b.Attributes); err != nil {
		return err
	}

	if err := compare.Slice(path.Field("params"), a.Params, b.Params, d.param); err != nil {
		return err
	}

	if err := compare.Option(path.Field("return_type"), a.ReturnType, b.ReturnType, d.typeInfo); err != nil {
		return err
	}

	if err := compare.Set(path.Field("coeffects"), a.Coeffects, b.Coeffects); err != nil {
		return err
	}

	return d.body(path.Field("body"), a.Body, b.Body)
}

func (d *differ) method(path *codepath.Path, a, b *unit.Method) error {
	if err := compare.Eq(path.Field("visibility"), a.Visibility, b.Visibility); err != nil {
		return err
	}

	if err := compare.Eq(path.Field("flags"), a.Flags, b.Flags); err != nil {
		return err
	}

	if err := d.attributes(path.Field("attributes"), a.Attributes, b.Attributes); err != nil {
		return err
	}

	if err := compare.Slice(path.Field("params"), a.Params, b.Params, d.param); err != nil {
		return err
	}

	if err := compare.Option(path.Field("return_type"), a.ReturnType, b.ReturnType, d.typeInfo); err != nil {
		return err
	}

	if err := compare.Set(path.Field("coeffects"), a.Coeffects, b.Coeffects); err != nil {
		return err
	}

	return d.body(path.Field("body"), a.Body, b.Body)
}

// param compares one positional parameter pair. Parameters are matched by
// position (see compare.Slice in the callers), so the name is an ordinary
// leaf field here.
func (d *differ) param(path *codepath.Path, a, b *unit.Param) error {
	if err := compare.Eq(path.Field("name"), a.Name, b.Name); err != nil {
		return err
	}

	if err := compare.Option(path.Field("type"), a.Type, b.Type, d.typeInfo); err != nil {
		return err
	}

	if err := compare.Option(path.Field("default_value"), a.DefaultValue, b.DefaultValue, compare.Eq); err != nil {
		return err
	}

	if err := compare.Eq(path.Field("variadic"), a.Variadic, b.Variadic); err != nil {
		return err
	}

	if err := compare.Eq(path.Field("inout"), a.Inout, b.Inout); err != nil {
		return err
	}

	return compare.Eq(path.Field("readonly"), a.Readonly, b.Readonly)
}

func (d *differ) body(path *codepath.Path, a, b string) error {
	if d.ignoreBodies {
		return nil
	}

	return compare.Eq(path, a, b)
}
