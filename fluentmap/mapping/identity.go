package mapping

import (
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type IdentityPart struct {
	member    model.Member
	mapping   *model.Id
	generator *model.Generator
}

func newIdentityPart(entity reflect.Type, member model.Member) *IdentityPart {
	return &IdentityPart{
		member:  member,
		mapping: &model.Id{ContainingEntity: entity, Member: member},
	}
}

func (i *IdentityPart) Column(name string) *IdentityPart {
	return i.Columns().Clear().Columns().Add(name)
}

func (i *IdentityPart) Columns() *Columns[*IdentityPart] {
	return newColumns(i, &i.mapping.Columns)
}

func (i *IdentityPart) Access() AccessStrategy[*IdentityPart] {
	return AccessStrategy[*IdentityPart]{parent: i, set: i.mapping.Access.Set}
}

func (i *IdentityPart) UnsavedValue(value string) *IdentityPart {
	i.mapping.UnsavedValue.Set(value)
	return i
}

func (i *IdentityPart) CustomType(name string) *IdentityPart {
	i.mapping.Type.Set(model.TypeReferenceByName(name))
	return i
}

// GeneratedBy replaces the default generator, which is picked from the
// member type.
func (i *IdentityPart) GeneratedBy() *GeneratorBuilder {
	i.generator = &model.Generator{}
	return &GeneratorBuilder{parent: i, mapping: i.generator}
}

func (i *IdentityPart) idMapping() *model.Id {
	m := i.mapping
	m.ReplaceDefaultColumns(model.DefaultColumn(i.member.Name))
	m.Name.SetDefault(i.member.Name)
	if i.member.Type != nil {
		m.Type.SetDefault(model.NewTypeReference(i.member.Type))
	}
	if i.generator != nil {
		m.Generator = i.generator
	} else {
		g := &model.Generator{}
		g.Class.SetDefault(defaultGenerator(i.member.Type))
		m.Generator = g
	}
	return m
}

func defaultGenerator(t reflect.Type) string {
	t = model.Deref(t)
	if t == nil {
		return "assigned"
	}
	switch t {
	case reflect.TypeFor[uuid.UUID]():
		return "guid.comb"
	case reflect.TypeFor[ulid.ULID]():
		return "assigned"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "identity"
	}
	return "assigned"
}

type GeneratorBuilder struct {
	parent  *IdentityPart
	mapping *model.Generator
}

func (g *GeneratorBuilder) class(name string, params ...model.Param) *IdentityPart {
	g.mapping.Class.Set(name)
	g.mapping.Params = params
	return g.parent
}

func (g *GeneratorBuilder) Assigned() *IdentityPart {
	return g.class("assigned")
}

func (g *GeneratorBuilder) Identity() *IdentityPart {
	return g.class("identity")
}

func (g *GeneratorBuilder) Native() *IdentityPart {
	return g.class("native")
}

func (g *GeneratorBuilder) Increment() *IdentityPart {
	return g.class("increment")
}

func (g *GeneratorBuilder) Guid() *IdentityPart {
	return g.class("guid")
}

func (g *GeneratorBuilder) GuidComb() *IdentityPart {
	return g.class("guid.comb")
}

func (g *GeneratorBuilder) UuidHex(format string) *IdentityPart {
	return g.class("uuid.hex", model.Param{Name: "format", Value: format})
}

func (g *GeneratorBuilder) Sequence(name string) *IdentityPart {
	return g.class("sequence", model.Param{Name: "sequence", Value: name})
}

func (g *GeneratorBuilder) HiLo(table, column string, maxLo int) *IdentityPart {
	return g.class("hilo",
		model.Param{Name: "table", Value: table},
		model.Param{Name: "column", Value: column},
		model.Param{Name: "max_lo", Value: strconv.Itoa(maxLo)},
	)
}

// Foreign takes the id from the entity referenced by property.
func (g *GeneratorBuilder) Foreign(property string) *IdentityPart {
	return g.class("foreign", model.Param{Name: "property", Value: property})
}

func (g *GeneratorBuilder) Custom(class string, params map[string]string) *IdentityPart {
	g.class(class)
	for _, name := range slices.Sorted(maps.Keys(params)) {
		g.mapping.Params = append(g.mapping.Params, model.Param{Name: name, Value: params[name]})
	}
	return g.parent
}

type VersionPart struct {
	member  model.Member
	mapping *model.Version
}

func newVersionPart(entity reflect.Type, member model.Member) *VersionPart {
	return &VersionPart{
		member:  member,
		mapping: &model.Version{ContainingEntity: entity, Member: member},
	}
}

func (v *VersionPart) Column(name string) *VersionPart {
	return v.Columns().Clear().Columns().Add(name)
}

func (v *VersionPart) Columns() *Columns[*VersionPart] {
	return newColumns(v, &v.mapping.Columns)
}

func (v *VersionPart) Access() AccessStrategy[*VersionPart] {
	return AccessStrategy[*VersionPart]{parent: v, set: v.mapping.Access.Set}
}

func (v *VersionPart) Generated() Generated[*VersionPart] {
	return Generated[*VersionPart]{parent: v, set: v.mapping.Generated.Set}
}

func (v *VersionPart) UnsavedValue(value string) *VersionPart {
	v.mapping.UnsavedValue.Set(value)
	return v
}

func (v *VersionPart) CustomType(name string) *VersionPart {
	v.mapping.Type.Set(model.TypeReferenceByName(name))
	return v
}

func (v *VersionPart) versionMapping() *model.Version {
	m := v.mapping
	m.ReplaceDefaultColumns(model.DefaultColumn(v.member.Name))
	m.Name.SetDefault(v.member.Name)
	if v.member.Type != nil {
		m.Type.SetDefault(model.NewTypeReference(v.member.Type))
	}
	return m
}
