package model

import "slices"

// Clone methods copy a record and everything it owns. Type references and
// reflect types are shared, they never change.

func cloneAll[T interface{ Clone() T }](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (c *Columns) clone() Columns {
	return Columns{defaults: cloneAll(c.defaults), explicit: cloneAll(c.explicit)}
}

func (c *Cache) Clone() *Cache {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (f *Filter) Clone() *Filter {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}

func (s *StoredProcedure) Clone() *StoredProcedure {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

func (g *Generator) Clone() *Generator {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Params = slices.Clone(g.Params)
	return &cp
}

func (i *Id) Clone() *Id {
	if i == nil {
		return nil
	}
	cp := *i
	cp.Generator = i.Generator.Clone()
	cp.Columns = i.Columns.clone()
	return &cp
}

func (ver *Version) Clone() *Version {
	if ver == nil {
		return nil
	}
	cp := *ver
	cp.Columns = ver.Columns.clone()
	return &cp
}

func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Columns = p.Columns.clone()
	return &cp
}

func (m *ManyToOne) Clone() *ManyToOne {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Columns = m.Columns.clone()
	return &cp
}

func (o *OneToOne) Clone() *OneToOne {
	if o == nil {
		return nil
	}
	cp := *o
	return &cp
}

func (m *Members) clone() Members {
	return Members{
		Properties:        cloneAll(m.Properties),
		References:        cloneAll(m.References),
		OneToOnes:         cloneAll(m.OneToOnes),
		Components:        cloneAll(m.Components),
		DynamicComponents: cloneAll(m.DynamicComponents),
		Collections:       cloneAll(m.Collections),
	}
}

func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Members = c.Members.clone()
	return &cp
}

func (d *DynamicComponent) Clone() *DynamicComponent {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Members = d.Members.clone()
	return &cp
}

func (k *Key) Clone() *Key {
	if k == nil {
		return nil
	}
	cp := *k
	cp.Columns = k.Columns.clone()
	return &cp
}

func (i *Index) Clone() *Index {
	if i == nil {
		return nil
	}
	cp := *i
	cp.Columns = i.Columns.clone()
	return &cp
}

func (i *CompositeIndex) Clone() *CompositeIndex {
	if i == nil {
		return nil
	}
	cp := *i
	cp.KeyProperties = cloneAll(i.KeyProperties)
	cp.KeyReferences = cloneAll(i.KeyReferences)
	return &cp
}

func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Columns = e.Columns.clone()
	return &cp
}

func (o *OneToMany) Clone() *OneToMany {
	if o == nil {
		return nil
	}
	cp := *o
	return &cp
}

func (m *ManyToMany) Clone() *ManyToMany {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Filters = cloneAll(m.Filters)
	cp.Columns = m.Columns.clone()
	return &cp
}

func (c *CompositeElement) Clone() *CompositeElement {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Properties = cloneAll(c.Properties)
	cp.References = cloneAll(c.References)
	cp.Nested = cloneAll(c.Nested)
	return &cp
}

func cloneRelationship(r Relationship) Relationship {
	switch r := r.(type) {
	case *OneToMany:
		return r.Clone()
	case *ManyToMany:
		return r.Clone()
	}
	return r
}

func (c *Collection) Clone() *Collection {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Key = c.Key.Clone()
	cp.Index = c.Index.Clone()
	cp.CompositeIndex = c.CompositeIndex.Clone()
	cp.Element = c.Element.Clone()
	cp.CompositeElement = c.CompositeElement.Clone()
	cp.Relationship = cloneRelationship(c.Relationship)
	cp.Cache = c.Cache.Clone()
	cp.Filters = cloneAll(c.Filters)
	return &cp
}

func (j *Join) Clone() *Join {
	if j == nil {
		return nil
	}
	cp := *j
	cp.Key = j.Key.Clone()
	cp.Members = j.Members.clone()
	return &cp
}

func (c *Class) Clone() *Class {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Id = c.Id.Clone()
	cp.Version = c.Version.Clone()
	cp.Cache = c.Cache.Clone()
	cp.Joins = cloneAll(c.Joins)
	cp.StoredProcedures = cloneAll(c.StoredProcedures)
	cp.Filters = cloneAll(c.Filters)
	cp.Members = c.Members.clone()
	return &cp
}

func (h *HibernateMapping) Clone() *HibernateMapping {
	if h == nil {
		return nil
	}
	cp := *h
	cp.Classes = cloneAll(h.Classes)
	return &cp
}
