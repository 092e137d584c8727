package model

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
)

type ManyToOne struct {
	ContainingEntity reflect.Type
	Member           Member

	Name           attr.Attr[string]
	Access         attr.Attr[string]
	Class          attr.Attr[TypeReference]
	Cascade        attr.Attr[string]
	Fetch          attr.Attr[string]
	Lazy           attr.Attr[string]
	NotFound       attr.Attr[string]
	ForeignKey     attr.Attr[string]
	PropertyRef    attr.Attr[string]
	Formula        attr.Attr[string]
	EntityName     attr.Attr[string]
	Insert         attr.Attr[bool]
	Update         attr.Attr[bool]
	OptimisticLock attr.Attr[bool]
	Columns
}

func (m *ManyToOne) Accept(v Visitor) error {
	return v.VisitManyToOne(m)
}

type OneToOne struct {
	ContainingEntity reflect.Type
	Member           Member

	Name        attr.Attr[string]
	Access      attr.Attr[string]
	Class       attr.Attr[TypeReference]
	Cascade     attr.Attr[string]
	Constrained attr.Attr[bool]
	Fetch       attr.Attr[string]
	ForeignKey  attr.Attr[string]
	PropertyRef attr.Attr[string]
	Lazy        attr.Attr[string]
	EntityName  attr.Attr[string]
}

func (o *OneToOne) Accept(v Visitor) error {
	return v.VisitOneToOne(o)
}

// Members is the content shared by classes, components and joins.
type Members struct {
	Properties        []*Property
	References        []*ManyToOne
	OneToOnes         []*OneToOne
	Components        []*Component
	DynamicComponents []*DynamicComponent
	Collections       []*Collection
}

func (m *Members) nodes() []Node {
	var nodes []Node
	for _, p := range m.Properties {
		nodes = append(nodes, p)
	}
	for _, r := range m.References {
		nodes = append(nodes, r)
	}
	for _, o := range m.OneToOnes {
		nodes = append(nodes, o)
	}
	for _, c := range m.Components {
		nodes = append(nodes, c)
	}
	for _, d := range m.DynamicComponents {
		nodes = append(nodes, d)
	}
	for _, c := range m.Collections {
		nodes = append(nodes, c)
	}
	return nodes
}

type Component struct {
	ContainingEntity reflect.Type
	Member           Member

	Name           attr.Attr[string]
	Access         attr.Attr[string]
	Class          attr.Attr[TypeReference]
	Insert         attr.Attr[bool]
	Update         attr.Attr[bool]
	Lazy           attr.Attr[bool]
	Unique         attr.Attr[bool]
	OptimisticLock attr.Attr[bool]
	Parent         attr.Attr[string]
	Members
}

func (c *Component) Accept(v Visitor) error {
	return v.VisitComponent(c)
}

type DynamicComponent struct {
	ContainingEntity reflect.Type
	Member           Member

	Name           attr.Attr[string]
	Access         attr.Attr[string]
	Insert         attr.Attr[bool]
	Update         attr.Attr[bool]
	Unique         attr.Attr[bool]
	OptimisticLock attr.Attr[bool]
	Members
}

func (d *DynamicComponent) Accept(v Visitor) error {
	return v.VisitDynamicComponent(d)
}
