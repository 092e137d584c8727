package model

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
)

type CollectionKind string

const (
	Bag   CollectionKind = "bag"
	Set   CollectionKind = "set"
	List  CollectionKind = "list"
	Array CollectionKind = "array"
	Map   CollectionKind = "map"
)

// IsIndexed reports whether the collection stores an index column.
func (k CollectionKind) IsIndexed() bool {
	return k == List || k == Array || k == Map
}

type Key struct {
	ContainingEntity reflect.Type

	ForeignKey  attr.Attr[string]
	OnDelete    attr.Attr[string]
	PropertyRef attr.Attr[string]
	NotNull     attr.Attr[bool]
	Update      attr.Attr[bool]
	Unique      attr.Attr[bool]
	Columns
}

func (k *Key) Accept(v Visitor) error {
	return v.VisitKey(k)
}

// Index is the index of a list, array or map. A map keyed by an entity uses
// an index-many-to-many, in which case Type holds the key entity.
type Index struct {
	ContainingEntity reflect.Type

	Type         attr.Attr[TypeReference]
	Offset       attr.Attr[int]
	ForeignKey   attr.Attr[string]
	EntityName   attr.Attr[string]
	IsManyToMany bool
	Columns
}

func (i *Index) Accept(v Visitor) error {
	return v.VisitIndex(i)
}

type CompositeIndex struct {
	ContainingEntity reflect.Type

	Class         attr.Attr[TypeReference]
	KeyProperties []*Property
	KeyReferences []*ManyToOne
}

func (i *CompositeIndex) Accept(v Visitor) error {
	return v.VisitCompositeIndex(i)
}

type Element struct {
	ContainingEntity reflect.Type

	Type    attr.Attr[TypeReference]
	Length  attr.Attr[int]
	Formula attr.Attr[string]
	Columns
}

func (e *Element) Accept(v Visitor) error {
	return v.VisitElement(e)
}

// Relationship is the entity side of a collection: one-to-many or many-to-many.
type Relationship interface {
	Node
	ChildClass() TypeReference
}

type OneToMany struct {
	ContainingEntity reflect.Type
	ChildType        reflect.Type

	Class      attr.Attr[TypeReference]
	NotFound   attr.Attr[string]
	EntityName attr.Attr[string]
}

func (o *OneToMany) Accept(v Visitor) error {
	return v.VisitOneToMany(o)
}

func (o *OneToMany) ChildClass() TypeReference {
	return o.Class.Get()
}

type ManyToMany struct {
	ContainingEntity reflect.Type
	ParentType       reflect.Type
	ChildType        reflect.Type

	Class       attr.Attr[TypeReference]
	ForeignKey  attr.Attr[string]
	Fetch       attr.Attr[string]
	Lazy        attr.Attr[string]
	NotFound    attr.Attr[string]
	Where       attr.Attr[string]
	OrderBy     attr.Attr[string]
	PropertyRef attr.Attr[string]
	EntityName  attr.Attr[string]
	Formula     attr.Attr[string]
	Filters     []*Filter
	Columns
}

func (m *ManyToMany) Accept(v Visitor) error {
	return v.VisitManyToMany(m)
}

func (m *ManyToMany) ChildClass() TypeReference {
	return m.Class.Get()
}

type CompositeElement struct {
	ContainingEntity reflect.Type

	Name       attr.Attr[string]
	Class      attr.Attr[TypeReference]
	Parent     attr.Attr[string]
	Properties []*Property
	References []*ManyToOne
	Nested     []*CompositeElement
}

func (c *CompositeElement) Accept(v Visitor) error {
	return v.VisitCompositeElement(c)
}

type Collection struct {
	ContainingEntity reflect.Type
	Member           Member
	ChildType        reflect.Type

	Kind           attr.Attr[CollectionKind]
	Name           attr.Attr[string]
	Access         attr.Attr[string]
	Table          attr.Attr[string]
	Schema         attr.Attr[string]
	Lazy           attr.Attr[string]
	Inverse        attr.Attr[bool]
	Cascade        attr.Attr[string]
	Fetch          attr.Attr[string]
	OptimisticLock attr.Attr[bool]
	Persister      attr.Attr[string]
	Check          attr.Attr[string]
	Generic        attr.Attr[bool]
	Where          attr.Attr[string]
	BatchSize      attr.Attr[int]
	CollectionType attr.Attr[string]
	Mutable        attr.Attr[bool]
	OrderBy        attr.Attr[string]
	Sort           attr.Attr[string]
	Subselect      attr.Attr[string]

	Key              *Key
	Index            *Index
	CompositeIndex   *CompositeIndex
	Element          *Element
	CompositeElement *CompositeElement
	Relationship     Relationship
	Cache            *Cache
	Filters          []*Filter
}

func (c *Collection) Accept(v Visitor) error {
	return v.VisitCollection(c)
}
