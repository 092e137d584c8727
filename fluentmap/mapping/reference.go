package mapping

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type ManyToOnePart struct {
	member           model.Member
	mapping          *model.ManyToOne
	columnAttributes model.ColumnAttributes
	not              bool
}

func newManyToOnePart(entity reflect.Type, member model.Member) *ManyToOnePart {
	return &ManyToOnePart{
		member:  member,
		mapping: &model.ManyToOne{ContainingEntity: entity, Member: member},
	}
}

func (m *ManyToOnePart) flag() bool {
	v := !m.not
	m.not = false
	return v
}

func (m *ManyToOnePart) Not() *ManyToOnePart {
	m.not = !m.not
	return m
}

func (m *ManyToOnePart) Column(name string) *ManyToOnePart {
	return m.Columns().Clear().Columns().Add(name)
}

func (m *ManyToOnePart) Columns() *Columns[*ManyToOnePart] {
	return newColumns(m, &m.mapping.Columns)
}

func (m *ManyToOnePart) Access() AccessStrategy[*ManyToOnePart] {
	return AccessStrategy[*ManyToOnePart]{parent: m, set: m.mapping.Access.Set}
}

func (m *ManyToOnePart) Cascade() Cascade[*ManyToOnePart] {
	return Cascade[*ManyToOnePart]{parent: m, set: m.mapping.Cascade.Set}
}

func (m *ManyToOnePart) Fetch() FetchType[*ManyToOnePart] {
	return FetchType[*ManyToOnePart]{parent: m, set: m.mapping.Fetch.Set}
}

func (m *ManyToOnePart) NotFound() NotFound[*ManyToOnePart] {
	return NotFound[*ManyToOnePart]{parent: m, set: m.mapping.NotFound.Set}
}

// Class overrides the referenced entity, which defaults to the member type.
func (m *ManyToOnePart) Class(t reflect.Type) *ManyToOnePart {
	m.mapping.Class.Set(model.NewTypeReference(t))
	return m
}

func (m *ManyToOnePart) ClassName(name string) *ManyToOnePart {
	m.mapping.Class.Set(model.TypeReferenceByName(name))
	return m
}

func (m *ManyToOnePart) LazyLoad() *ManyToOnePart {
	if m.flag() {
		m.mapping.Lazy.Set("proxy")
	} else {
		m.mapping.Lazy.Set("false")
	}
	return m
}

func (m *ManyToOnePart) ForeignKey(name string) *ManyToOnePart {
	m.mapping.ForeignKey.Set(name)
	return m
}

func (m *ManyToOnePart) PropertyRef(property string) *ManyToOnePart {
	m.mapping.PropertyRef.Set(property)
	return m
}

func (m *ManyToOnePart) Formula(formula string) *ManyToOnePart {
	m.mapping.Formula.Set(formula)
	return m
}

func (m *ManyToOnePart) EntityName(name string) *ManyToOnePart {
	m.mapping.EntityName.Set(name)
	return m
}

func (m *ManyToOnePart) Insert() *ManyToOnePart {
	m.mapping.Insert.Set(m.flag())
	return m
}

func (m *ManyToOnePart) Update() *ManyToOnePart {
	m.mapping.Update.Set(m.flag())
	return m
}

func (m *ManyToOnePart) ReadOnly() *ManyToOnePart {
	v := !m.flag()
	m.mapping.Insert.Set(v)
	m.mapping.Update.Set(v)
	return m
}

func (m *ManyToOnePart) OptimisticLock() *ManyToOnePart {
	m.mapping.OptimisticLock.Set(m.flag())
	return m
}

func (m *ManyToOnePart) Nullable() *ManyToOnePart {
	m.columnAttributes.NotNull.Set(!m.flag())
	return m
}

func (m *ManyToOnePart) Unique() *ManyToOnePart {
	m.columnAttributes.Unique.Set(m.flag())
	return m
}

func (m *ManyToOnePart) UniqueKey(key string) *ManyToOnePart {
	m.columnAttributes.UniqueKey.Set(key)
	return m
}

func (m *ManyToOnePart) Index(index string) *ManyToOnePart {
	m.columnAttributes.Index.Set(index)
	return m
}

func (m *ManyToOnePart) manyToOneMapping() *model.ManyToOne {
	r := m.mapping
	if r.Formula.IsSpecified() {
		r.ClearColumns()
	} else {
		r.ReplaceDefaultColumns(model.DefaultColumn(m.member.Name + "_id"))
	}
	for _, col := range r.ColumnList() {
		col.MergeAttributes(m.columnAttributes)
	}
	r.Name.SetDefault(m.member.Name)
	if m.member.Type != nil {
		r.Class.SetDefault(model.NewTypeReference(m.member.Type))
	}
	return r
}

type OneToOnePart struct {
	member  model.Member
	mapping *model.OneToOne
	not     bool
}

func newOneToOnePart(entity reflect.Type, member model.Member) *OneToOnePart {
	return &OneToOnePart{
		member:  member,
		mapping: &model.OneToOne{ContainingEntity: entity, Member: member},
	}
}

func (o *OneToOnePart) flag() bool {
	v := !o.not
	o.not = false
	return v
}

func (o *OneToOnePart) Not() *OneToOnePart {
	o.not = !o.not
	return o
}

func (o *OneToOnePart) Access() AccessStrategy[*OneToOnePart] {
	return AccessStrategy[*OneToOnePart]{parent: o, set: o.mapping.Access.Set}
}

func (o *OneToOnePart) Cascade() Cascade[*OneToOnePart] {
	return Cascade[*OneToOnePart]{parent: o, set: o.mapping.Cascade.Set}
}

func (o *OneToOnePart) Fetch() FetchType[*OneToOnePart] {
	return FetchType[*OneToOnePart]{parent: o, set: o.mapping.Fetch.Set}
}

func (o *OneToOnePart) Class(t reflect.Type) *OneToOnePart {
	o.mapping.Class.Set(model.NewTypeReference(t))
	return o
}

func (o *OneToOnePart) Constrained() *OneToOnePart {
	o.mapping.Constrained.Set(o.flag())
	return o
}

func (o *OneToOnePart) ForeignKey(name string) *OneToOnePart {
	o.mapping.ForeignKey.Set(name)
	return o
}

func (o *OneToOnePart) PropertyRef(property string) *OneToOnePart {
	o.mapping.PropertyRef.Set(property)
	return o
}

func (o *OneToOnePart) LazyLoad() *OneToOnePart {
	if o.flag() {
		o.mapping.Lazy.Set("proxy")
	} else {
		o.mapping.Lazy.Set("false")
	}
	return o
}

func (o *OneToOnePart) EntityName(name string) *OneToOnePart {
	o.mapping.EntityName.Set(name)
	return o
}

func (o *OneToOnePart) oneToOneMapping() *model.OneToOne {
	m := o.mapping
	m.Name.SetDefault(o.member.Name)
	if o.member.Type != nil {
		m.Class.SetDefault(model.NewTypeReference(o.member.Type))
	}
	return m
}
