package mapping

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type mapValue int

const (
	elementValue mapValue = iota
	manyToManyValue
	oneToManyValue
	compositeValue
)

// MapBuilder maps a Go map member. The shape of the mapping follows the
// key and value types:
//
//	simple value  -> <element column="Value">
//	entity value  -> <many-to-many column="Value_id">
//	simple key    -> <index column="Key">
//	entity key    -> <index-many-to-many column="Key_id">
type MapBuilder struct {
	entity    reflect.Type
	member    model.Member
	keyType   reflect.Type
	valueType reflect.Type

	mapping        *model.Collection
	key            *model.Key
	index          *model.Index
	compositeIndex *CompositeIndexBuilder
	element        *model.Element
	manyToMany     *model.ManyToMany
	oneToMany      *model.OneToMany
	composite      *CompositeElementBuilder
	value          mapValue
	cache          *model.Cache
	filters        []*model.Filter
	not            bool
	errs           []error
}

func newMapBuilder(entity reflect.Type, member model.Member) *MapBuilder {
	b := &MapBuilder{
		entity:  entity,
		member:  member,
		mapping: &model.Collection{ContainingEntity: entity, Member: member},
		key:     &model.Key{ContainingEntity: entity},
		index:   &model.Index{ContainingEntity: entity},
	}
	b.mapping.Kind.Set(model.Map)
	if t := model.Deref(member.Type); t != nil && t.Kind() == reflect.Map {
		b.keyType = t.Key()
		b.valueType = t.Elem()
		b.mapping.ChildType = model.Deref(b.valueType)
	}
	if b.valueType == nil || model.IsSimpleType(b.valueType) {
		b.element = &model.Element{ContainingEntity: entity}
		b.value = elementValue
	} else {
		b.manyToMany = b.newManyToMany()
		b.value = manyToManyValue
	}
	if b.keyType != nil && !model.IsSimpleType(b.keyType) {
		b.index.IsManyToMany = true
	}
	return b
}

func (b *MapBuilder) newManyToMany() *model.ManyToMany {
	return &model.ManyToMany{
		ContainingEntity: b.entity,
		ParentType:       b.entity,
		ChildType:        model.Deref(b.valueType),
	}
}

func (b *MapBuilder) flag() bool {
	v := !b.not
	b.not = false
	return v
}

func (b *MapBuilder) Not() *MapBuilder {
	b.not = !b.not
	return b
}

func (b *MapBuilder) Name(name string) *MapBuilder {
	b.mapping.Name.Set(name)
	return b
}

func (b *MapBuilder) Table(name string) *MapBuilder {
	b.mapping.Table.Set(name)
	return b
}

func (b *MapBuilder) Schema(name string) *MapBuilder {
	b.mapping.Schema.Set(name)
	return b
}

// Index configures a plain index, replacing any composite index.
func (b *MapBuilder) Index(fn func(*IndexBuilder)) *MapBuilder {
	b.compositeIndex = nil
	fn(NewIndexBuilder(b.index))
	return b
}

func (b *MapBuilder) IndexColumn(name string) *MapBuilder {
	return b.Index(func(ix *IndexBuilder) { ix.Column(name) })
}

func (b *MapBuilder) IndexType(t reflect.Type) *MapBuilder {
	return b.Index(func(ix *IndexBuilder) { ix.Type(t) })
}

// ComponentIndex maps the map key as a composite of its members.
func (b *MapBuilder) ComponentIndex(fn func(*CompositeIndexBuilder)) *MapBuilder {
	if b.compositeIndex == nil {
		b.compositeIndex = NewCompositeIndexBuilder(b.keyType)
	}
	fn(b.compositeIndex)
	return b
}

// Element stores values in an element column, dropping any relationship.
func (b *MapBuilder) Element(fn func(*ElementBuilder)) *MapBuilder {
	if b.element == nil {
		b.element = &model.Element{ContainingEntity: b.entity}
	}
	b.value = elementValue
	fn(NewElementBuilder(b.element))
	return b
}

func (b *MapBuilder) ElementColumn(name string) *MapBuilder {
	return b.Element(func(el *ElementBuilder) { el.Column(name) })
}

func (b *MapBuilder) ElementType(t reflect.Type) *MapBuilder {
	return b.Element(func(el *ElementBuilder) { el.Type(t) })
}

func (b *MapBuilder) Key(fn func(*KeyBuilder)) *MapBuilder {
	fn(NewKeyBuilder(b.key))
	return b
}

func (b *MapBuilder) KeyColumn(name string) *MapBuilder {
	return b.Key(func(k *KeyBuilder) { k.Column(name) })
}

// Component stores values as composite elements, replacing the element or
// relationship.
func (b *MapBuilder) Component(fn func(*CompositeElementBuilder)) *MapBuilder {
	b.composite = NewCompositeElementBuilder(b.valueType, b.entity)
	b.value = compositeValue
	fn(b.composite)
	return b
}

func (b *MapBuilder) OneToMany(fn ...func(*OneToManyBuilder)) *MapBuilder {
	if b.oneToMany == nil {
		b.oneToMany = &model.OneToMany{ContainingEntity: b.entity, ChildType: model.Deref(b.valueType)}
	}
	b.value = oneToManyValue
	ob := NewOneToManyBuilder(b.oneToMany)
	for _, f := range fn {
		f(ob)
	}
	return b
}

func (b *MapBuilder) ManyToMany(fn ...func(*ManyToManyBuilder)) *MapBuilder {
	if b.manyToMany == nil {
		b.manyToMany = b.newManyToMany()
	}
	b.value = manyToManyValue
	mb := NewManyToManyBuilder(b.manyToMany)
	for _, f := range fn {
		f(mb)
	}
	return b
}

func (b *MapBuilder) Sort() Sort[*MapBuilder] {
	return Sort[*MapBuilder]{parent: b, set: b.mapping.Sort.Set}
}

func (b *MapBuilder) LazyLoad() *MapBuilder {
	if b.flag() {
		b.mapping.Lazy.Set("true")
	} else {
		b.mapping.Lazy.Set("false")
	}
	return b
}

func (b *MapBuilder) Inverse() *MapBuilder {
	b.mapping.Inverse.Set(b.flag())
	return b
}

func (b *MapBuilder) ReadOnly() *MapBuilder {
	b.mapping.Mutable.Set(!b.flag())
	return b
}

func (b *MapBuilder) Cascade() Cascade[*MapBuilder] {
	return Cascade[*MapBuilder]{parent: b, set: b.mapping.Cascade.Set}
}

func (b *MapBuilder) Fetch() FetchType[*MapBuilder] {
	return FetchType[*MapBuilder]{parent: b, set: b.mapping.Fetch.Set}
}

func (b *MapBuilder) Access() AccessStrategy[*MapBuilder] {
	return AccessStrategy[*MapBuilder]{parent: b, set: b.mapping.Access.Set}
}

func (b *MapBuilder) Cache() *CacheBuilder {
	if b.cache == nil {
		b.cache = &model.Cache{}
	}
	return NewCacheBuilder(b.cache)
}

func (b *MapBuilder) Where(where string) *MapBuilder {
	b.mapping.Where.Set(where)
	return b
}

func (b *MapBuilder) BatchSize(size int) *MapBuilder {
	b.mapping.BatchSize.Set(size)
	return b
}

func (b *MapBuilder) ApplyFilter(name string, condition ...string) *MapBuilder {
	b.filters = append(b.filters, newFilter(name, condition))
	return b
}

func (b *MapBuilder) collectionMapping() (*model.Collection, error) {
	var result *multierror.Error
	result = multierror.Append(result, b.errs...)

	entityName := model.EntityName(b.entity)
	m := b.mapping
	m.Name.SetDefault(b.member.Name)
	m.Table.SetDefault(entityName + b.member.Name)
	b.key.ReplaceDefaultColumns(model.DefaultColumn(entityName + "_id"))
	m.Key = b.key
	m.Cache = b.cache
	m.Filters = b.filters

	m.Index, m.CompositeIndex = nil, nil
	if b.compositeIndex != nil {
		ci, err := b.compositeIndex.compositeIndexMapping()
		if err != nil {
			result = multierror.Append(result, err)
		}
		m.CompositeIndex = ci
	} else {
		if b.index.IsManyToMany {
			b.index.ReplaceDefaultColumns(model.DefaultColumn(model.EntityName(b.keyType) + "_id"))
		} else {
			b.index.ReplaceDefaultColumns(model.DefaultColumn("Key"))
		}
		if b.keyType != nil {
			b.index.Type.SetDefault(model.NewTypeReference(b.keyType))
		}
		m.Index = b.index
	}

	m.Element, m.CompositeElement, m.Relationship = nil, nil, nil
	switch b.value {
	case elementValue:
		b.element.ReplaceDefaultColumns(model.DefaultColumn("Value"))
		if b.valueType != nil {
			b.element.Type.SetDefault(model.NewTypeReference(b.valueType))
		}
		m.Element = b.element
	case manyToManyValue:
		b.manyToMany.ReplaceDefaultColumns(model.DefaultColumn(model.EntityName(b.valueType) + "_id"))
		if b.valueType != nil {
			b.manyToMany.Class.SetDefault(model.NewTypeReference(b.valueType))
		}
		m.Relationship = b.manyToMany
	case oneToManyValue:
		if b.valueType != nil {
			b.oneToMany.Class.SetDefault(model.NewTypeReference(b.valueType))
		}
		m.Relationship = b.oneToMany
	case compositeValue:
		ce, err := b.composite.compositeElementMapping()
		if err != nil {
			result = multierror.Append(result, err)
		}
		m.CompositeElement = ce
	}
	return m, result.ErrorOrNil()
}

// Dictionary is HasManyMap for a member declared as map[K]V. A member of any
// other map type is reported as ErrNotDictionary when the mapping is built.
func Dictionary[K comparable, V any](c Classlike, name string) *MapBuilder {
	b := c.HasManyMap(name)
	t := model.Deref(b.member.Type)
	if t == nil || t.Kind() != reflect.Map {
		return b
	}
	if t.Key() != reflect.TypeFor[K]() || t.Elem() != reflect.TypeFor[V]() {
		b.errs = append(b.errs, errors.Wrapf(ErrNotDictionary, "%s.%s is %s, not map[%s]%s",
			model.EntityName(c.EntityType()), name, t, reflect.TypeFor[K](), reflect.TypeFor[V]()))
	}
	return b
}
