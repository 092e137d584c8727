package mapping

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type PropertyPart struct {
	member           model.Member
	mapping          *model.Property
	columnAttributes model.ColumnAttributes
	not              bool
}

func newPropertyPart(entity reflect.Type, member model.Member) *PropertyPart {
	return &PropertyPart{
		member:  member,
		mapping: &model.Property{ContainingEntity: entity, Member: member},
	}
}

func (p *PropertyPart) flag() bool {
	v := !p.not
	p.not = false
	return v
}

// Not inverts the next boolean setting.
func (p *PropertyPart) Not() *PropertyPart {
	p.not = !p.not
	return p
}

// Column replaces all columns with a single one.
func (p *PropertyPart) Column(name string) *PropertyPart {
	return p.Columns().Clear().Columns().Add(name)
}

func (p *PropertyPart) Columns() *Columns[*PropertyPart] {
	return newColumns(p, &p.mapping.Columns)
}

func (p *PropertyPart) Access() AccessStrategy[*PropertyPart] {
	return AccessStrategy[*PropertyPart]{parent: p, set: p.mapping.Access.Set}
}

func (p *PropertyPart) Generated() Generated[*PropertyPart] {
	return Generated[*PropertyPart]{parent: p, set: p.mapping.Generated.Set}
}

func (p *PropertyPart) Insert() *PropertyPart {
	p.mapping.Insert.Set(p.flag())
	return p
}

func (p *PropertyPart) Update() *PropertyPart {
	p.mapping.Update.Set(p.flag())
	return p
}

func (p *PropertyPart) ReadOnly() *PropertyPart {
	v := !p.flag()
	p.mapping.Insert.Set(v)
	p.mapping.Update.Set(v)
	return p
}

func (p *PropertyPart) LazyLoad() *PropertyPart {
	p.mapping.Lazy.Set(p.flag())
	return p
}

func (p *PropertyPart) OptimisticLock() *PropertyPart {
	p.mapping.OptimisticLock.Set(p.flag())
	return p
}

// Formula maps the member to an SQL expression; the property then has no
// columns.
func (p *PropertyPart) Formula(formula string) *PropertyPart {
	p.mapping.Formula.Set(formula)
	return p
}

func (p *PropertyPart) CustomType(name string) *PropertyPart {
	p.mapping.Type.Set(model.TypeReferenceByName(name))
	return p
}

func (p *PropertyPart) CustomTypeFor(t reflect.Type) *PropertyPart {
	p.mapping.Type.Set(model.NewTypeReference(t))
	return p
}

func (p *PropertyPart) Length(length int) *PropertyPart {
	p.columnAttributes.Length.Set(length)
	return p
}

func (p *PropertyPart) Nullable() *PropertyPart {
	p.columnAttributes.NotNull.Set(!p.flag())
	return p
}

func (p *PropertyPart) Unique() *PropertyPart {
	p.columnAttributes.Unique.Set(p.flag())
	return p
}

func (p *PropertyPart) UniqueKey(key string) *PropertyPart {
	p.columnAttributes.UniqueKey.Set(key)
	return p
}

func (p *PropertyPart) Index(index string) *PropertyPart {
	p.columnAttributes.Index.Set(index)
	return p
}

func (p *PropertyPart) CustomSqlType(sqlType string) *PropertyPart {
	p.columnAttributes.SqlType.Set(sqlType)
	return p
}

func (p *PropertyPart) Check(constraint string) *PropertyPart {
	p.columnAttributes.Check.Set(constraint)
	return p
}

func (p *PropertyPart) Default(value string) *PropertyPart {
	p.columnAttributes.Default.Set(value)
	return p
}

func (p *PropertyPart) Precision(precision int) *PropertyPart {
	p.columnAttributes.Precision.Set(precision)
	return p
}

func (p *PropertyPart) Scale(scale int) *PropertyPart {
	p.columnAttributes.Scale.Set(scale)
	return p
}

func (p *PropertyPart) propertyMapping() *model.Property {
	m := p.mapping
	if m.Formula.IsSpecified() {
		m.ClearColumns()
	} else {
		m.ReplaceDefaultColumns(model.DefaultColumn(p.member.Name))
	}
	for _, col := range m.ColumnList() {
		if !col.NotNull.IsSpecified() && model.IsNullable(p.member.Type) {
			col.NotNull.SetDefault(false)
		}
		col.MergeAttributes(p.columnAttributes)
	}
	m.Name.SetDefault(p.member.Name)
	if p.member.Type != nil {
		m.Type.SetDefault(model.NewTypeReference(p.member.Type))
	}
	return m
}
