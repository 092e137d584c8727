package model

import "github.com/pkg/errors"

// ErrSkipChildren may be returned by a Visitor method to make Walk skip the
// children of the current node.
var ErrSkipChildren = errors.New("model: skip children")

type Node interface {
	Accept(Visitor) error
}

type Visitor interface {
	VisitHibernateMapping(*HibernateMapping) error
	VisitClass(*Class) error
	VisitId(*Id) error
	VisitVersion(*Version) error
	VisitProperty(*Property) error
	VisitColumn(*Column) error
	VisitManyToOne(*ManyToOne) error
	VisitOneToOne(*OneToOne) error
	VisitComponent(*Component) error
	VisitDynamicComponent(*DynamicComponent) error
	VisitCollection(*Collection) error
	VisitKey(*Key) error
	VisitIndex(*Index) error
	VisitCompositeIndex(*CompositeIndex) error
	VisitElement(*Element) error
	VisitOneToMany(*OneToMany) error
	VisitManyToMany(*ManyToMany) error
	VisitCompositeElement(*CompositeElement) error
	VisitCache(*Cache) error
	VisitFilter(*Filter) error
	VisitJoin(*Join) error
	VisitStoredProcedure(*StoredProcedure) error
}

// BaseVisitor implements every Visitor method as a no-op. Embed it and
// override what is needed.
type BaseVisitor struct{}

func (BaseVisitor) VisitHibernateMapping(*HibernateMapping) error { return nil }
func (BaseVisitor) VisitClass(*Class) error                       { return nil }
func (BaseVisitor) VisitId(*Id) error                             { return nil }
func (BaseVisitor) VisitVersion(*Version) error                   { return nil }
func (BaseVisitor) VisitProperty(*Property) error                 { return nil }
func (BaseVisitor) VisitColumn(*Column) error                     { return nil }
func (BaseVisitor) VisitManyToOne(*ManyToOne) error               { return nil }
func (BaseVisitor) VisitOneToOne(*OneToOne) error                 { return nil }
func (BaseVisitor) VisitComponent(*Component) error               { return nil }
func (BaseVisitor) VisitDynamicComponent(*DynamicComponent) error { return nil }
func (BaseVisitor) VisitCollection(*Collection) error             { return nil }
func (BaseVisitor) VisitKey(*Key) error                           { return nil }
func (BaseVisitor) VisitIndex(*Index) error                       { return nil }
func (BaseVisitor) VisitCompositeIndex(*CompositeIndex) error     { return nil }
func (BaseVisitor) VisitElement(*Element) error                   { return nil }
func (BaseVisitor) VisitOneToMany(*OneToMany) error               { return nil }
func (BaseVisitor) VisitManyToMany(*ManyToMany) error             { return nil }
func (BaseVisitor) VisitCompositeElement(*CompositeElement) error { return nil }
func (BaseVisitor) VisitCache(*Cache) error                       { return nil }
func (BaseVisitor) VisitFilter(*Filter) error                     { return nil }
func (BaseVisitor) VisitJoin(*Join) error                         { return nil }
func (BaseVisitor) VisitStoredProcedure(*StoredProcedure) error   { return nil }

// Walk visits node and then its children, depth first.
func Walk(v Visitor, node Node) error {
	if node == nil {
		return nil
	}
	if err := node.Accept(v); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}
	for _, child := range Children(node) {
		if err := Walk(v, child); err != nil {
			return err
		}
	}
	return nil
}

// Children lists the direct children of node in document order.
func Children(node Node) []Node {
	var nodes []Node
	add := func(n Node, ok bool) {
		if ok {
			nodes = append(nodes, n)
		}
	}
	switch n := node.(type) {
	case *HibernateMapping:
		for _, c := range n.Classes {
			nodes = append(nodes, c)
		}
	case *Class:
		add(n.Cache, n.Cache != nil)
		add(n.Id, n.Id != nil)
		add(n.Version, n.Version != nil)
		nodes = append(nodes, n.Members.nodes()...)
		for _, j := range n.Joins {
			nodes = append(nodes, j)
		}
		for _, sp := range n.StoredProcedures {
			nodes = append(nodes, sp)
		}
		for _, f := range n.Filters {
			nodes = append(nodes, f)
		}
	case *Id:
		nodes = columnNodes(&n.Columns)
	case *Version:
		nodes = columnNodes(&n.Columns)
	case *Property:
		nodes = columnNodes(&n.Columns)
	case *ManyToOne:
		nodes = columnNodes(&n.Columns)
	case *Component:
		nodes = n.Members.nodes()
	case *DynamicComponent:
		nodes = n.Members.nodes()
	case *Join:
		add(n.Key, n.Key != nil)
		nodes = append(nodes, n.Members.nodes()...)
	case *Collection:
		add(n.Cache, n.Cache != nil)
		add(n.Key, n.Key != nil)
		add(n.Index, n.Index != nil)
		add(n.CompositeIndex, n.CompositeIndex != nil)
		add(n.Element, n.Element != nil)
		add(n.CompositeElement, n.CompositeElement != nil)
		add(n.Relationship, n.Relationship != nil)
		for _, f := range n.Filters {
			nodes = append(nodes, f)
		}
	case *Key:
		nodes = columnNodes(&n.Columns)
	case *Index:
		nodes = columnNodes(&n.Columns)
	case *Element:
		nodes = columnNodes(&n.Columns)
	case *ManyToMany:
		nodes = columnNodes(&n.Columns)
		for _, f := range n.Filters {
			nodes = append(nodes, f)
		}
	case *CompositeIndex:
		for _, p := range n.KeyProperties {
			nodes = append(nodes, p)
		}
		for _, r := range n.KeyReferences {
			nodes = append(nodes, r)
		}
	case *CompositeElement:
		for _, p := range n.Properties {
			nodes = append(nodes, p)
		}
		for _, r := range n.References {
			nodes = append(nodes, r)
		}
		for _, c := range n.Nested {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

func columnNodes(c *Columns) []Node {
	cols := c.ColumnList()
	nodes := make([]Node, 0, len(cols))
	for _, col := range cols {
		nodes = append(nodes, col)
	}
	return nodes
}
