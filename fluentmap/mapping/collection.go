package mapping

import (
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// childOf returns the element type of a collection member and the kind it
// maps to when nothing else is said: maps used as sets become sets,
// everything else a bag.
func childOf(t reflect.Type) (reflect.Type, model.CollectionKind) {
	t = model.Deref(t)
	if t == nil {
		return nil, model.Bag
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return model.Deref(t.Elem()), model.Bag
	case reflect.Map:
		if isSetValue(t.Elem()) {
			return model.Deref(t.Key()), model.Set
		}
		return model.Deref(t.Elem()), model.Bag
	}
	return t, model.Bag
}

func isSetValue(t reflect.Type) bool {
	return t.Kind() == reflect.Bool || (t.Kind() == reflect.Struct && t.NumField() == 0)
}

// collectionPart is embedded by OneToManyPart and ManyToManyPart. P is the
// embedding part, returned from every chained call.
type collectionPart[P any] struct {
	self        P
	entity      reflect.Type
	member      model.Member
	childType   reflect.Type
	defaultKind model.CollectionKind
	mapping     *model.Collection
	key         *model.Key
	index       *model.Index
	indexColumn string
	indexType   reflect.Type
	element     *model.Element
	composite   *CompositeElementBuilder
	cache       *model.Cache
	filters     []*model.Filter
	entityName  attr.Attr[string]
	not         bool
	errs        []error
}

func newCollectionPart[P any](self P, entity reflect.Type, member model.Member) collectionPart[P] {
	child, kind := childOf(member.Type)
	return collectionPart[P]{
		self:        self,
		entity:      entity,
		member:      member,
		childType:   child,
		defaultKind: kind,
		mapping:     &model.Collection{ContainingEntity: entity, Member: member, ChildType: child},
		key:         &model.Key{ContainingEntity: entity},
	}
}

func (c *collectionPart[P]) flag() bool {
	v := !c.not
	c.not = false
	return v
}

func (c *collectionPart[P]) Not() P {
	c.not = !c.not
	return c.self
}

func (c *collectionPart[P]) Key(fn func(*KeyBuilder)) P {
	fn(NewKeyBuilder(c.key))
	return c.self
}

func (c *collectionPart[P]) KeyColumn(name string) P {
	return c.Key(func(k *KeyBuilder) {
		k.Columns().Clear().Column(name)
	})
}

func (c *collectionPart[P]) KeyColumns() *Columns[P] {
	return newColumns(c.self, &c.key.Columns)
}

func (c *collectionPart[P]) PropertyRef(property string) P {
	c.key.PropertyRef.Set(property)
	return c.self
}

func (c *collectionPart[P]) ForeignKeyCascadeOnDelete() P {
	c.key.OnDelete.Set("cascade")
	return c.self
}

func (c *collectionPart[P]) Cache() *CacheBuilder {
	if c.cache == nil {
		c.cache = &model.Cache{}
	}
	return NewCacheBuilder(c.cache)
}

func (c *collectionPart[P]) LazyLoad() P {
	if c.flag() {
		c.mapping.Lazy.Set("true")
	} else {
		c.mapping.Lazy.Set("false")
	}
	return c.self
}

func (c *collectionPart[P]) ExtraLazyLoad() P {
	if c.flag() {
		c.mapping.Lazy.Set("extra")
	} else {
		c.mapping.Lazy.Set("true")
	}
	return c.self
}

func (c *collectionPart[P]) Inverse() P {
	c.mapping.Inverse.Set(c.flag())
	return c.self
}

func (c *collectionPart[P]) Cascade() Cascade[P] {
	return Cascade[P]{parent: c.self, set: c.mapping.Cascade.Set}
}

func (c *collectionPart[P]) Fetch() FetchType[P] {
	return FetchType[P]{parent: c.self, set: c.mapping.Fetch.Set}
}

func (c *collectionPart[P]) Access() AccessStrategy[P] {
	return AccessStrategy[P]{parent: c.self, set: c.mapping.Access.Set}
}

func (c *collectionPart[P]) OptimisticLock() P {
	c.mapping.OptimisticLock.Set(c.flag())
	return c.self
}

func (c *collectionPart[P]) AsBag() P {
	c.mapping.Kind.Set(model.Bag)
	return c.self
}

func (c *collectionPart[P]) AsSet() P {
	c.mapping.Kind.Set(model.Set)
	return c.self
}

// AsSetSorted maps a sorted set; sort is "natural" or a comparator name.
func (c *collectionPart[P]) AsSetSorted(sort string) P {
	c.mapping.Kind.Set(model.Set)
	c.mapping.Sort.Set(sort)
	return c.self
}

func (c *collectionPart[P]) AsList(fn ...func(*IndexBuilder)) P {
	c.mapping.Kind.Set(model.List)
	c.newIndex("Index", nil, fn)
	return c.self
}

// AsArray maps an array indexed by the child member indexMember.
func (c *collectionPart[P]) AsArray(indexMember string, fn ...func(*IndexBuilder)) P {
	c.mapping.Kind.Set(model.Array)
	m, err := model.MemberOf(c.childType, indexMember)
	if err != nil {
		c.errs = append(c.errs, err)
	}
	c.newIndex(indexMember, m.Type, fn)
	return c.self
}

// AsMap maps a map whose index is stored in indexColumn, "Key" when empty.
func (c *collectionPart[P]) AsMap(indexColumn string, fn ...func(*IndexBuilder)) P {
	c.mapping.Kind.Set(model.Map)
	if indexColumn == "" {
		indexColumn = "Key"
	}
	var keyType reflect.Type
	if t := model.Deref(c.member.Type); t != nil && t.Kind() == reflect.Map {
		keyType = t.Key()
	}
	c.newIndex(indexColumn, keyType, fn)
	return c.self
}

func (c *collectionPart[P]) newIndex(column string, typ reflect.Type, fn []func(*IndexBuilder)) {
	c.index = &model.Index{ContainingEntity: c.entity}
	c.indexColumn = column
	c.indexType = typ
	b := NewIndexBuilder(c.index)
	for _, f := range fn {
		f(b)
	}
}

// Element maps the collection as a collection of values.
func (c *collectionPart[P]) Element(column string, fn ...func(*ElementBuilder)) P {
	c.element = &model.Element{ContainingEntity: c.entity}
	c.composite = nil
	b := NewElementBuilder(c.element)
	if column != "" {
		b.Column(column)
	}
	for _, f := range fn {
		f(b)
	}
	return c.self
}

// Component maps the collection as a collection of composite values.
func (c *collectionPart[P]) Component(fn func(*CompositeElementBuilder)) P {
	c.composite = NewCompositeElementBuilder(c.childType, c.entity)
	c.element = nil
	fn(c.composite)
	return c.self
}

func (c *collectionPart[P]) Table(name string) P {
	c.mapping.Table.Set(name)
	return c.self
}

func (c *collectionPart[P]) Schema(name string) P {
	c.mapping.Schema.Set(name)
	return c.self
}

func (c *collectionPart[P]) Persister(name string) P {
	c.mapping.Persister.Set(name)
	return c.self
}

func (c *collectionPart[P]) Check(constraint string) P {
	c.mapping.Check.Set(constraint)
	return c.self
}

func (c *collectionPart[P]) Generic() P {
	c.mapping.Generic.Set(c.flag())
	return c.self
}

func (c *collectionPart[P]) Where(where string) P {
	c.mapping.Where.Set(where)
	return c.self
}

func (c *collectionPart[P]) BatchSize(size int) P {
	c.mapping.BatchSize.Set(size)
	return c.self
}

func (c *collectionPart[P]) CollectionType(name string) P {
	c.mapping.CollectionType.Set(name)
	return c.self
}

func (c *collectionPart[P]) EntityName(name string) P {
	c.entityName.Set(name)
	return c.self
}

func (c *collectionPart[P]) ApplyFilter(name string, condition ...string) P {
	c.filters = append(c.filters, newFilter(name, condition))
	return c.self
}

func (c *collectionPart[P]) OrderBy(orderBy string) P {
	c.mapping.OrderBy.Set(orderBy)
	return c.self
}

func (c *collectionPart[P]) ReadOnly() P {
	c.mapping.Mutable.Set(!c.flag())
	return c.self
}

func (c *collectionPart[P]) Subselect(subselect string) P {
	c.mapping.Subselect.Set(subselect)
	return c.self
}

func (c *collectionPart[P]) ensureMap() (reflect.Type, bool) {
	t := model.Deref(c.member.Type)
	if t == nil || t.Kind() != reflect.Map {
		c.errs = append(c.errs, notDictionary(c.entity, c.member))
		return nil, false
	}
	return t, true
}

func (c *collectionPart[P]) build(rel model.Relationship) (*model.Collection, error) {
	var result *multierror.Error
	result = multierror.Append(result, c.errs...)

	m := c.mapping
	m.Kind.SetDefault(c.defaultKind)
	m.Name.SetDefault(model.DefaultCollectionName(c.member))
	c.key.ReplaceDefaultColumns(model.DefaultColumn(model.EntityName(c.entity) + "_id"))
	m.Key = c.key
	m.Cache = c.cache
	m.Filters = c.filters
	m.Relationship = rel
	m.Element = nil
	m.CompositeElement = nil

	m.Index = nil
	if c.index != nil && m.Kind.Get().IsIndexed() {
		c.index.ReplaceDefaultColumns(model.DefaultColumn(c.indexColumn))
		if c.indexType != nil {
			c.index.Type.SetDefault(model.NewTypeReference(c.indexType))
		}
		m.Index = c.index
	}

	switch {
	case c.composite != nil:
		ce, err := c.composite.compositeElementMapping()
		if err != nil {
			result = multierror.Append(result, err)
		}
		m.CompositeElement = ce
		m.Relationship = nil
	case c.element != nil:
		c.element.ReplaceDefaultColumns(model.DefaultColumn("Value"))
		if c.childType != nil {
			c.element.Type.SetDefault(model.NewTypeReference(c.childType))
		}
		m.Element = c.element
		m.Relationship = nil
	}
	return m, result.ErrorOrNil()
}

// OneToManyPart maps a collection of entities owning a foreign key to the
// containing entity.
type OneToManyPart struct {
	collectionPart[*OneToManyPart]
	relationship *model.OneToMany
	ternaryIndex *model.Index
}

func newOneToManyPart(entity reflect.Type, member model.Member) *OneToManyPart {
	p := &OneToManyPart{}
	p.collectionPart = newCollectionPart(p, entity, member)
	p.relationship = &model.OneToMany{ContainingEntity: entity, ChildType: p.childType}
	return p
}

func (p *OneToManyPart) NotFound() NotFound[*OneToManyPart] {
	return NotFound[*OneToManyPart]{parent: p, set: p.relationship.NotFound.Set}
}

func (p *OneToManyPart) ForeignKeyConstraintName(name string) *OneToManyPart {
	p.key.ForeignKey.Set(name)
	return p
}

// AsTernaryAssociation indexes the map by its key entity, stored in a
// KeyType_id column.
func (p *OneToManyPart) AsTernaryAssociation() *OneToManyPart {
	t, ok := p.ensureMap()
	if !ok {
		return p
	}
	return p.AsTernaryAssociationWith(model.EntityName(t.Key()) + "_id")
}

func (p *OneToManyPart) AsTernaryAssociationWith(indexColumn string) *OneToManyPart {
	t, ok := p.ensureMap()
	if !ok {
		return p
	}
	p.mapping.Kind.Set(model.Map)
	p.ternaryIndex = &model.Index{ContainingEntity: p.entity, IsManyToMany: true}
	NewIndexBuilder(p.ternaryIndex).Column(indexColumn).Type(t.Key())
	return p
}

func (p *OneToManyPart) AsEntityMap() *OneToManyPart {
	return p.AsMap("").AsTernaryAssociation()
}

func (p *OneToManyPart) AsEntityMapWith(indexColumn string) *OneToManyPart {
	return p.AsMap("").AsTernaryAssociationWith(indexColumn)
}

func (p *OneToManyPart) collectionMapping() (*model.Collection, error) {
	rel := p.relationship
	if p.childType != nil {
		rel.Class.SetDefault(model.NewTypeReference(p.childType))
	}
	rel.EntityName.Merge(p.entityName)
	m, err := p.build(rel)
	if p.ternaryIndex != nil && m.Kind.Get() == model.Map {
		m.Index = p.ternaryIndex
	}
	return m, err
}

// ManyToManyPart maps a collection of entities through a link table.
type ManyToManyPart struct {
	collectionPart[*ManyToManyPart]
	relationship *model.ManyToMany
	ternaryIndex *model.Index
	childFilters []*model.Filter
}

func newManyToManyPart(entity reflect.Type, member model.Member) *ManyToManyPart {
	p := &ManyToManyPart{}
	p.collectionPart = newCollectionPart(p, entity, member)
	p.relationship = &model.ManyToMany{
		ContainingEntity: entity,
		ParentType:       entity,
		ChildType:        p.childType,
	}
	return p
}

func (p *ManyToManyPart) ChildKeyColumn(name string) *ManyToManyPart {
	return p.ChildKeyColumns().Clear().ChildKeyColumns().Add(name)
}

func (p *ManyToManyPart) ChildKeyColumns() *Columns[*ManyToManyPart] {
	return newColumns(p, &p.relationship.Columns)
}

func (p *ManyToManyPart) ParentKeyColumn(name string) *ManyToManyPart {
	return p.KeyColumn(name)
}

func (p *ManyToManyPart) ParentKeyColumns() *Columns[*ManyToManyPart] {
	return p.KeyColumns()
}

func (p *ManyToManyPart) ForeignKeyConstraintNames(parent, child string) *ManyToManyPart {
	p.key.ForeignKey.Set(parent)
	p.relationship.ForeignKey.Set(child)
	return p
}

func (p *ManyToManyPart) ChildPropertyRef(property string) *ManyToManyPart {
	p.relationship.PropertyRef.Set(property)
	return p
}

func (p *ManyToManyPart) ChildOrderBy(orderBy string) *ManyToManyPart {
	p.relationship.OrderBy.Set(orderBy)
	return p
}

func (p *ManyToManyPart) ChildWhere(where string) *ManyToManyPart {
	p.relationship.Where.Set(where)
	return p
}

func (p *ManyToManyPart) ApplyChildFilter(name string, condition ...string) *ManyToManyPart {
	p.childFilters = append(p.childFilters, newFilter(name, condition))
	return p
}

func (p *ManyToManyPart) NotFound() NotFound[*ManyToManyPart] {
	return NotFound[*ManyToManyPart]{parent: p, set: p.relationship.NotFound.Set}
}

// AsTernaryAssociation maps map[K]V with entity keys and values, using
// K_id and V_id columns.
func (p *ManyToManyPart) AsTernaryAssociation() *ManyToManyPart {
	t, ok := p.ensureMap()
	if !ok {
		return p
	}
	return p.AsTernaryAssociationWith(model.EntityName(t.Key())+"_id", model.EntityName(t.Elem())+"_id")
}

func (p *ManyToManyPart) AsTernaryAssociationWith(indexColumn, valueColumn string, fn ...func(*IndexBuilder)) *ManyToManyPart {
	t, ok := p.ensureMap()
	if !ok {
		return p
	}
	p.mapping.Kind.Set(model.Map)
	p.ternaryIndex = &model.Index{ContainingEntity: p.entity, IsManyToMany: true}
	b := NewIndexBuilder(p.ternaryIndex).Column(indexColumn).Type(t.Key())
	for _, f := range fn {
		f(b)
	}
	return p.ChildKeyColumn(valueColumn)
}

// AsSimpleAssociation maps map[K]V with a simple key and an entity value.
func (p *ManyToManyPart) AsSimpleAssociation() *ManyToManyPart {
	t, ok := p.ensureMap()
	if !ok {
		return p
	}
	return p.AsSimpleAssociationWith(model.EntityName(t.Key())+"_id", model.EntityName(t.Elem())+"_id")
}

func (p *ManyToManyPart) AsSimpleAssociationWith(indexColumn, valueColumn string) *ManyToManyPart {
	t, ok := p.ensureMap()
	if !ok {
		return p
	}
	p.mapping.Kind.Set(model.Map)
	p.index = &model.Index{ContainingEntity: p.entity}
	p.indexColumn = indexColumn
	p.indexType = nil
	NewIndexBuilder(p.index).Column(indexColumn).Type(t.Key())
	return p.ChildKeyColumn(valueColumn)
}

func (p *ManyToManyPart) AsEntityMap() *ManyToManyPart {
	return p.AsMap("").AsTernaryAssociation()
}

func (p *ManyToManyPart) AsEntityMapWith(indexColumn, valueColumn string) *ManyToManyPart {
	return p.AsMap("").AsTernaryAssociationWith(indexColumn, valueColumn)
}

func (p *ManyToManyPart) collectionMapping() (*model.Collection, error) {
	rel := p.relationship
	child := model.EntityName(p.childType)
	rel.ReplaceDefaultColumns(model.DefaultColumn(child + "_id"))
	if p.childType != nil {
		rel.Class.SetDefault(model.NewTypeReference(p.childType))
	}
	rel.EntityName.Merge(p.entityName)
	rel.Filters = p.childFilters
	p.mapping.Table.SetDefault(model.EntityName(p.entity) + "To" + child)
	m, err := p.build(rel)
	if p.ternaryIndex != nil && m.Kind.Get() == model.Map {
		m.Index = p.ternaryIndex
	}
	return m, err
}
