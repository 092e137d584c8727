package mapping

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type KeyBuilder struct {
	mapping *model.Key
	not     bool
}

func NewKeyBuilder(mapping *model.Key) *KeyBuilder {
	return &KeyBuilder{mapping: mapping}
}

func (k *KeyBuilder) flag() bool {
	v := !k.not
	k.not = false
	return v
}

func (k *KeyBuilder) Not() *KeyBuilder {
	k.not = !k.not
	return k
}

func (k *KeyBuilder) Column(name string) *KeyBuilder {
	k.mapping.AddColumn(model.NewColumn(name))
	return k
}

func (k *KeyBuilder) Columns() *Columns[*KeyBuilder] {
	return newColumns(k, &k.mapping.Columns)
}

func (k *KeyBuilder) ForeignKey(name string) *KeyBuilder {
	k.mapping.ForeignKey.Set(name)
	return k
}

func (k *KeyBuilder) CascadeOnDelete() *KeyBuilder {
	k.mapping.OnDelete.Set("cascade")
	return k
}

func (k *KeyBuilder) PropertyRef(property string) *KeyBuilder {
	k.mapping.PropertyRef.Set(property)
	return k
}

func (k *KeyBuilder) Nullable() *KeyBuilder {
	k.mapping.NotNull.Set(!k.flag())
	return k
}

func (k *KeyBuilder) Update() *KeyBuilder {
	k.mapping.Update.Set(k.flag())
	return k
}

func (k *KeyBuilder) Unique() *KeyBuilder {
	k.mapping.Unique.Set(k.flag())
	return k
}

type IndexBuilder struct {
	mapping *model.Index
}

func NewIndexBuilder(mapping *model.Index) *IndexBuilder {
	return &IndexBuilder{mapping: mapping}
}

func (i *IndexBuilder) AsManyToMany() *IndexBuilder {
	i.mapping.IsManyToMany = true
	return i
}

func (i *IndexBuilder) AsOneToMany() *IndexBuilder {
	i.mapping.IsManyToMany = false
	return i
}

func (i *IndexBuilder) Column(name string) *IndexBuilder {
	i.mapping.AddColumn(model.NewColumn(name))
	return i
}

func (i *IndexBuilder) Columns() *Columns[*IndexBuilder] {
	return newColumns(i, &i.mapping.Columns)
}

func (i *IndexBuilder) Type(t reflect.Type) *IndexBuilder {
	i.mapping.Type.Set(model.NewTypeReference(t))
	return i
}

func (i *IndexBuilder) TypeName(name string) *IndexBuilder {
	i.mapping.Type.Set(model.TypeReferenceByName(name))
	return i
}

// Offset sets the base of a list index.
func (i *IndexBuilder) Offset(base int) *IndexBuilder {
	i.mapping.Offset.Set(base)
	return i
}

func (i *IndexBuilder) ForeignKey(name string) *IndexBuilder {
	i.mapping.ForeignKey.Set(name)
	return i
}

type ElementBuilder struct {
	mapping *model.Element
}

func NewElementBuilder(mapping *model.Element) *ElementBuilder {
	return &ElementBuilder{mapping: mapping}
}

func (e *ElementBuilder) Type(t reflect.Type) *ElementBuilder {
	e.mapping.Type.Set(model.NewTypeReference(t))
	return e
}

func (e *ElementBuilder) TypeName(name string) *ElementBuilder {
	e.mapping.Type.Set(model.TypeReferenceByName(name))
	return e
}

func (e *ElementBuilder) Column(name string) *ElementBuilder {
	e.mapping.AddColumn(model.NewColumn(name))
	return e
}

func (e *ElementBuilder) Columns() *Columns[*ElementBuilder] {
	return newColumns(e, &e.mapping.Columns)
}

func (e *ElementBuilder) Length(length int) *ElementBuilder {
	e.mapping.Length.Set(length)
	return e
}

func (e *ElementBuilder) Formula(formula string) *ElementBuilder {
	e.mapping.Formula.Set(formula)
	return e
}

type ManyToManyBuilder struct {
	mapping *model.ManyToMany
}

func NewManyToManyBuilder(mapping *model.ManyToMany) *ManyToManyBuilder {
	return &ManyToManyBuilder{mapping: mapping}
}

func (m *ManyToManyBuilder) Type(t reflect.Type) *ManyToManyBuilder {
	m.mapping.Class.Set(model.NewTypeReference(t))
	return m
}

func (m *ManyToManyBuilder) TypeName(name string) *ManyToManyBuilder {
	m.mapping.Class.Set(model.TypeReferenceByName(name))
	return m
}

func (m *ManyToManyBuilder) Column(name string) *ManyToManyBuilder {
	m.mapping.AddColumn(model.NewColumn(name))
	return m
}

func (m *ManyToManyBuilder) Columns() *Columns[*ManyToManyBuilder] {
	return newColumns(m, &m.mapping.Columns)
}

func (m *ManyToManyBuilder) ForeignKey(name string) *ManyToManyBuilder {
	m.mapping.ForeignKey.Set(name)
	return m
}

func (m *ManyToManyBuilder) PropertyRef(property string) *ManyToManyBuilder {
	m.mapping.PropertyRef.Set(property)
	return m
}

func (m *ManyToManyBuilder) EntityName(name string) *ManyToManyBuilder {
	m.mapping.EntityName.Set(name)
	return m
}

func (m *ManyToManyBuilder) NotFound() NotFound[*ManyToManyBuilder] {
	return NotFound[*ManyToManyBuilder]{parent: m, set: m.mapping.NotFound.Set}
}

type OneToManyBuilder struct {
	mapping *model.OneToMany
}

func NewOneToManyBuilder(mapping *model.OneToMany) *OneToManyBuilder {
	return &OneToManyBuilder{mapping: mapping}
}

func (o *OneToManyBuilder) Type(t reflect.Type) *OneToManyBuilder {
	o.mapping.Class.Set(model.NewTypeReference(t))
	return o
}

func (o *OneToManyBuilder) TypeName(name string) *OneToManyBuilder {
	o.mapping.Class.Set(model.TypeReferenceByName(name))
	return o
}

func (o *OneToManyBuilder) EntityName(name string) *OneToManyBuilder {
	o.mapping.EntityName.Set(name)
	return o
}

func (o *OneToManyBuilder) NotFound() NotFound[*OneToManyBuilder] {
	return NotFound[*OneToManyBuilder]{parent: o, set: o.mapping.NotFound.Set}
}

type CacheBuilder struct {
	mapping *model.Cache
}

func NewCacheBuilder(mapping *model.Cache) *CacheBuilder {
	return &CacheBuilder{mapping: mapping}
}

func (c *CacheBuilder) ReadWrite() *CacheBuilder {
	return c.CustomUsage("read-write")
}

func (c *CacheBuilder) NonStrictReadWrite() *CacheBuilder {
	return c.CustomUsage("nonstrict-read-write")
}

func (c *CacheBuilder) ReadOnly() *CacheBuilder {
	return c.CustomUsage("read-only")
}

func (c *CacheBuilder) Transactional() *CacheBuilder {
	return c.CustomUsage("transactional")
}

func (c *CacheBuilder) CustomUsage(usage string) *CacheBuilder {
	c.mapping.Usage.Set(usage)
	return c
}

func (c *CacheBuilder) Region(name string) *CacheBuilder {
	c.mapping.Region.Set(name)
	return c
}

func (c *CacheBuilder) IncludeAll() *CacheBuilder {
	return c.CustomInclude("all")
}

func (c *CacheBuilder) IncludeNonLazy() *CacheBuilder {
	return c.CustomInclude("non-lazy")
}

func (c *CacheBuilder) CustomInclude(include string) *CacheBuilder {
	c.mapping.Include.Set(include)
	return c
}

type FilterBuilder struct {
	mapping *model.Filter
}

func NewFilterBuilder(mapping *model.Filter) *FilterBuilder {
	return &FilterBuilder{mapping: mapping}
}

func (f *FilterBuilder) Name(name string) *FilterBuilder {
	f.mapping.Name.Set(name)
	return f
}

func (f *FilterBuilder) Condition(condition string) *FilterBuilder {
	f.mapping.Condition.Set(condition)
	return f
}

func newFilter(name string, condition []string) *model.Filter {
	f := &model.Filter{}
	b := NewFilterBuilder(f).Name(name)
	if len(condition) > 0 && condition[0] != "" {
		b.Condition(condition[0])
	}
	return f
}
