package semdiff

import (
	"github.com/pseudomuto/unitdiff/pkg/codepath"
	"github.com/pseudomuto/unitdiff/pkg/compare"
	"github.com/pseudomuto/unitdiff/pkg/unit"
)

func (d *differ) class(path *codepath.Path, a, b *unit.Class) error {
	if err := compare.Eq(path.Field("flags"), a.Flags, b.Flags); err != nil {
		return err
	}

	if err := compare.Option(path.Field("base"), a.Base, b.Base, compare.Eq); err != nil {
		return err
	}

	if err := compare.Set(path.Field("implements"), a.Implements, b.Implements); err != nil {
		return err
	}

	if err := compare.Set(path.Field("uses"), a.Uses, b.Uses); err != nil {
		return err
	}

	if err := d.attributes(path.Field("attributes"), a.Attributes, b.Attributes); err != nil {
		return err
	}

	if err := d.doc(path.Field("doc"), a.Doc, b.Doc); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("methods"), a.Methods, b.Methods, d.method); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("properties"), a.Properties, b.Properties, d.property); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("constants"), a.Constants, b.Constants, d.constant); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("typeconstants"), a.TypeConstants, b.TypeConstants, d.typeConstant); err != nil {
		return err
	}

	if err := compare.ByName(path.Field("requirements"), a.Requirements, b.Requirements, d.requirement); err != nil {
		return err
	}

	return compare.ByName(path.Field("upper_bounds"), a.UpperBounds, b.UpperBounds, d.upperBound)
}

func (d *differ) property(path *codepath.Path, a, b *unit.Property) error {
	if err := compare.Eq(path.Field("visibility"), a.Visibility, b.Visibility); err != nil {
		return err
	}

	if err := compare.Eq(path.Field("static"), a.Static, b.Static); err != nil {
		return err
	}

	if err := d.attributes(path.Field("attributes"), a.Attributes, b.Attributes); err != nil {
		return err
	}

	if err := compare.Option(path.Field("type"), a.Type, b.Type, d.typeInfo); err != nil {
		return err
	}

	if err := compare.Option(path.Field("initial_value"), a.InitialValue, b.InitialValue, compare.Eq); err != nil {
		return err
	}

	return d.doc(path.Field("doc"), a.Doc, b.Doc)
}

func (d *differ) typeConstant(path *codepath.Path, a, b *unit.TypeConstant) error {
	if err := compare.Eq(path.Field("abstract"), a.Abstract, b.Abstract); err != nil {
		return err
	}

	return compare.Option(path.Field("initializer"), a.Initializer, b.Initializer, compare.Eq)
}

func (d *differ) requirement(path *codepath.Path, a, b *unit.Requirement) error {
	return compare.Eq(path.Field("kind"), a.Kind, b.Kind)
}

func (d *differ) upperBound(path *codepath.Path, a, b *unit.UpperBound) error {
	return compare.Slice(path.Field("bounds"), a.Bounds, b.Bounds, d.typeInfo)
}
