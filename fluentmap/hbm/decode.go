package hbm

import (
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// decoder turns the XML form back into a model. Every attribute present in
// the document becomes an explicit value.
type decoder struct {
	errs *multierror.Error
}

func (d *decoder) fail(err error) {
	d.errs = multierror.Append(d.errs, err)
}

// text keeps attributes that are present but empty, such as default="".
func (d *decoder) text(a *attr.Attr[string], s *string) {
	if s != nil {
		a.Set(*s)
	}
}

func (d *decoder) boolean(a *attr.Attr[bool], name string, s *string) {
	if s == nil {
		return
	}
	v, err := strconv.ParseBool(*s)
	if err != nil {
		d.fail(errors.Wrapf(ErrInvalidDocument, "attribute %s: %q is not a boolean", name, *s))
		return
	}
	a.Set(v)
}

func (d *decoder) integer(a *attr.Attr[int], name string, s *string) {
	if s == nil {
		return
	}
	v, err := strconv.Atoi(*s)
	if err != nil {
		d.fail(errors.Wrapf(ErrInvalidDocument, "attribute %s: %q is not an integer", name, *s))
		return
	}
	a.Set(v)
}

func (d *decoder) typeRef(a *attr.Attr[model.TypeReference], s *string) {
	if s != nil && *s != "" {
		a.Set(model.TypeReferenceByName(*s))
	}
}

func (d *decoder) document(x *hibernateMappingXML) *model.HibernateMapping {
	doc := &model.HibernateMapping{}
	d.text(&doc.DefaultAccess, x.DefaultAccess)
	d.text(&doc.DefaultCascade, x.DefaultCascade)
	d.boolean(&doc.DefaultLazy, "default-lazy", x.DefaultLazy)
	d.boolean(&doc.AutoImport, "auto-import", x.AutoImport)
	d.text(&doc.Schema, x.Schema)
	d.text(&doc.Catalog, x.Catalog)
	d.text(&doc.Namespace, x.Namespace)
	d.text(&doc.Assembly, x.Assembly)
	for i := range x.Classes {
		doc.AddClass(d.class(&x.Classes[i]))
	}
	return doc
}

func (d *decoder) class(x *classXML) *model.Class {
	c := &model.Class{}
	d.text(&c.Name, x.Name)
	d.text(&c.Table, x.Table)
	d.text(&c.Schema, x.Schema)
	d.boolean(&c.Lazy, "lazy", x.Lazy)
	d.boolean(&c.Mutable, "mutable", x.Mutable)
	d.boolean(&c.DynamicUpdate, "dynamic-update", x.DynamicUpdate)
	d.boolean(&c.DynamicInsert, "dynamic-insert", x.DynamicInsert)
	d.boolean(&c.SelectBeforeUpdate, "select-before-update", x.SelectBeforeUpdate)
	d.integer(&c.BatchSize, "batch-size", x.BatchSize)
	d.text(&c.Where, x.Where)
	d.text(&c.Polymorphism, x.Polymorphism)
	d.text(&c.OptimisticLock, x.OptimisticLock)
	d.text(&c.Persister, x.Persister)
	c.Cache = d.cache(x.Cache)
	if x.Id != nil {
		c.Id = d.id(x.Id)
	}
	if x.Version != nil {
		v := &model.Version{}
		d.text(&v.Name, x.Version.Name)
		d.text(&v.Access, x.Version.Access)
		d.typeRef(&v.Type, x.Version.Type)
		d.text(&v.UnsavedValue, x.Version.UnsavedValue)
		d.text(&v.Generated, x.Version.Generated)
		d.columns(&v.Columns, x.Version.Columns)
		c.Version = v
	}
	c.Members = d.members(&x.membersXML)
	for i := range x.Joins {
		jx := &x.Joins[i]
		j := &model.Join{Key: d.key(jx.Key)}
		d.text(&j.Table, jx.Table)
		d.text(&j.Schema, jx.Schema)
		d.boolean(&j.Optional, "optional", jx.Optional)
		d.boolean(&j.Inverse, "inverse", jx.Inverse)
		d.text(&j.Fetch, jx.Fetch)
		j.Members = d.members(&jx.membersXML)
		c.Joins = append(c.Joins, j)
	}
	for _, sp := range []struct {
		element string
		x       *sqlXML
	}{
		{"sql-insert", x.SqlInsert},
		{"sql-update", x.SqlUpdate},
		{"sql-delete", x.SqlDelete},
		{"sql-delete-all", x.SqlDeleteAll},
	} {
		if sp.x == nil {
			continue
		}
		s := &model.StoredProcedure{Element: sp.element, Query: sp.x.Query}
		d.text(&s.Check, sp.x.Check)
		c.StoredProcedures = append(c.StoredProcedures, s)
	}
	c.Filters = d.filters(x.Filters)
	return c
}

func (d *decoder) id(x *idXML) *model.Id {
	id := &model.Id{}
	d.text(&id.Name, x.Name)
	d.text(&id.Access, x.Access)
	d.typeRef(&id.Type, x.Type)
	d.text(&id.UnsavedValue, x.UnsavedValue)
	d.columns(&id.Columns, x.Columns)
	if x.Generator != nil {
		g := &model.Generator{}
		if x.Generator.Class != "" {
			g.Class.Set(x.Generator.Class)
		}
		for _, p := range x.Generator.Params {
			g.Params = append(g.Params, model.Param{Name: p.Name, Value: p.Value})
		}
		id.Generator = g
	}
	return id
}

func (d *decoder) columns(holder *model.Columns, xs []columnXML) {
	for _, x := range xs {
		col := &model.Column{}
		d.text(&col.Name, x.Name)
		d.integer(&col.Length, "length", x.Length)
		d.boolean(&col.NotNull, "not-null", x.NotNull)
		d.boolean(&col.Unique, "unique", x.Unique)
		d.text(&col.UniqueKey, x.UniqueKey)
		d.text(&col.Index, x.Index)
		d.text(&col.SqlType, x.SqlType)
		d.text(&col.Check, x.Check)
		d.text(&col.Default, x.Default)
		d.integer(&col.Precision, "precision", x.Precision)
		d.integer(&col.Scale, "scale", x.Scale)
		holder.AddColumn(col)
	}
}

func (d *decoder) cache(x *cacheXML) *model.Cache {
	if x == nil {
		return nil
	}
	c := &model.Cache{}
	d.text(&c.Usage, x.Usage)
	d.text(&c.Region, x.Region)
	d.text(&c.Include, x.Include)
	return c
}

func (d *decoder) filters(xs []filterXML) []*model.Filter {
	var filters []*model.Filter
	for _, x := range xs {
		f := &model.Filter{}
		f.Name.Set(x.Name)
		d.text(&f.Condition, x.Condition)
		filters = append(filters, f)
	}
	return filters
}

func (d *decoder) members(x *membersXML) model.Members {
	var m model.Members
	for i := range x.Properties {
		m.Properties = append(m.Properties, d.property(&x.Properties[i]))
	}
	for i := range x.ManyToOnes {
		m.References = append(m.References, d.manyToOne(&x.ManyToOnes[i]))
	}
	for _, ox := range x.OneToOnes {
		o := &model.OneToOne{}
		d.text(&o.Name, ox.Name)
		d.text(&o.Access, ox.Access)
		d.typeRef(&o.Class, ox.Class)
		d.text(&o.Cascade, ox.Cascade)
		d.boolean(&o.Constrained, "constrained", ox.Constrained)
		d.text(&o.Fetch, ox.Fetch)
		d.text(&o.ForeignKey, ox.ForeignKey)
		d.text(&o.PropertyRef, ox.PropertyRef)
		d.text(&o.Lazy, ox.Lazy)
		d.text(&o.EntityName, ox.EntityName)
		m.OneToOnes = append(m.OneToOnes, o)
	}
	for i := range x.Components {
		cx := &x.Components[i]
		c := &model.Component{}
		d.text(&c.Name, cx.Name)
		d.text(&c.Access, cx.Access)
		d.typeRef(&c.Class, cx.Class)
		d.boolean(&c.Insert, "insert", cx.Insert)
		d.boolean(&c.Update, "update", cx.Update)
		d.boolean(&c.Lazy, "lazy", cx.Lazy)
		d.boolean(&c.Unique, "unique", cx.Unique)
		d.boolean(&c.OptimisticLock, "optimistic-lock", cx.OptimisticLock)
		if cx.Parent != nil {
			c.Parent.Set(cx.Parent.Name)
		}
		c.Members = d.members(&cx.membersXML)
		m.Components = append(m.Components, c)
	}
	for i := range x.DynamicComponents {
		dx := &x.DynamicComponents[i]
		dc := &model.DynamicComponent{}
		d.text(&dc.Name, dx.Name)
		d.text(&dc.Access, dx.Access)
		d.boolean(&dc.Insert, "insert", dx.Insert)
		d.boolean(&dc.Update, "update", dx.Update)
		d.boolean(&dc.Unique, "unique", dx.Unique)
		d.boolean(&dc.OptimisticLock, "optimistic-lock", dx.OptimisticLock)
		dc.Members = d.members(&dx.membersXML)
		m.DynamicComponents = append(m.DynamicComponents, dc)
	}
	for i := range x.Collections {
		if c := d.collection(&x.Collections[i]); c != nil {
			m.Collections = append(m.Collections, c)
		}
	}
	return m
}

func (d *decoder) property(x *propertyXML) *model.Property {
	p := &model.Property{}
	d.text(&p.Name, x.Name)
	d.text(&p.Access, x.Access)
	d.typeRef(&p.Type, x.Type)
	d.text(&p.Formula, x.Formula)
	d.boolean(&p.Insert, "insert", x.Insert)
	d.boolean(&p.Update, "update", x.Update)
	d.boolean(&p.Lazy, "lazy", x.Lazy)
	d.boolean(&p.OptimisticLock, "optimistic-lock", x.OptimisticLock)
	d.text(&p.Generated, x.Generated)
	d.columns(&p.Columns, x.Columns)
	return p
}

func (d *decoder) manyToOne(x *manyToOneXML) *model.ManyToOne {
	r := &model.ManyToOne{}
	d.text(&r.Name, x.Name)
	d.text(&r.Access, x.Access)
	d.typeRef(&r.Class, x.Class)
	d.text(&r.Cascade, x.Cascade)
	d.text(&r.Fetch, x.Fetch)
	d.text(&r.Lazy, x.Lazy)
	d.text(&r.NotFound, x.NotFound)
	d.text(&r.ForeignKey, x.ForeignKey)
	d.text(&r.PropertyRef, x.PropertyRef)
	d.text(&r.Formula, x.Formula)
	d.text(&r.EntityName, x.EntityName)
	d.boolean(&r.Insert, "insert", x.Insert)
	d.boolean(&r.Update, "update", x.Update)
	d.boolean(&r.OptimisticLock, "optimistic-lock", x.OptimisticLock)
	d.columns(&r.Columns, x.Columns)
	return r
}

func (d *decoder) key(x *keyXML) *model.Key {
	if x == nil {
		return nil
	}
	k := &model.Key{}
	d.text(&k.ForeignKey, x.ForeignKey)
	d.text(&k.OnDelete, x.OnDelete)
	d.text(&k.PropertyRef, x.PropertyRef)
	d.boolean(&k.NotNull, "not-null", x.NotNull)
	d.boolean(&k.Update, "update", x.Update)
	d.boolean(&k.Unique, "unique", x.Unique)
	d.columns(&k.Columns, x.Columns)
	return k
}

func (d *decoder) collection(x *collectionXML) *model.Collection {
	kind := model.CollectionKind(x.XMLName.Local)
	switch kind {
	case model.Bag, model.Set, model.List, model.Array, model.Map:
	default:
		d.fail(errors.Wrapf(ErrUnknownElement, "<%s>", x.XMLName.Local))
		return nil
	}
	c := &model.Collection{}
	c.Kind.Set(kind)
	d.text(&c.Name, x.Name)
	d.text(&c.Access, x.Access)
	d.text(&c.Table, x.Table)
	d.text(&c.Schema, x.Schema)
	d.text(&c.Lazy, x.Lazy)
	d.boolean(&c.Inverse, "inverse", x.Inverse)
	d.text(&c.Cascade, x.Cascade)
	d.text(&c.Fetch, x.Fetch)
	d.boolean(&c.OptimisticLock, "optimistic-lock", x.OptimisticLock)
	d.text(&c.Persister, x.Persister)
	d.text(&c.Check, x.Check)
	d.boolean(&c.Generic, "generic", x.Generic)
	d.text(&c.Where, x.Where)
	d.integer(&c.BatchSize, "batch-size", x.BatchSize)
	d.text(&c.CollectionType, x.CollectionType)
	d.boolean(&c.Mutable, "mutable", x.Mutable)
	d.text(&c.OrderBy, x.OrderBy)
	d.text(&c.Sort, x.Sort)
	d.text(&c.Subselect, x.Subselect)
	c.Cache = d.cache(x.Cache)
	c.Key = d.key(x.Key)

	switch {
	case x.IndexManyToMany != nil:
		i := &model.Index{IsManyToMany: true}
		d.typeRef(&i.Type, x.IndexManyToMany.Class)
		d.text(&i.ForeignKey, x.IndexManyToMany.ForeignKey)
		d.text(&i.EntityName, x.IndexManyToMany.EntityName)
		d.columns(&i.Columns, x.IndexManyToMany.Columns)
		c.Index = i
	case x.ListIndex != nil:
		i := &model.Index{}
		d.integer(&i.Offset, "base", x.ListIndex.Base)
		d.columns(&i.Columns, x.ListIndex.Columns)
		c.Index = i
	case x.Index != nil:
		i := &model.Index{}
		d.typeRef(&i.Type, x.Index.Type)
		d.columns(&i.Columns, x.Index.Columns)
		c.Index = i
	}
	if cx := x.CompositeIndex; cx != nil {
		ci := &model.CompositeIndex{}
		d.typeRef(&ci.Class, cx.Class)
		for i := range cx.KeyProperties {
			ci.KeyProperties = append(ci.KeyProperties, d.property(&cx.KeyProperties[i]))
		}
		for i := range cx.KeyManyToOnes {
			ci.KeyReferences = append(ci.KeyReferences, d.manyToOne(&cx.KeyManyToOnes[i]))
		}
		c.CompositeIndex = ci
	}
	if ex := x.Element; ex != nil {
		e := &model.Element{}
		d.typeRef(&e.Type, ex.Type)
		d.integer(&e.Length, "length", ex.Length)
		d.text(&e.Formula, ex.Formula)
		d.columns(&e.Columns, ex.Columns)
		c.Element = e
	}
	if x.CompositeElement != nil {
		c.CompositeElement = d.compositeElement(x.CompositeElement)
	}
	switch {
	case x.OneToMany != nil:
		r := &model.OneToMany{}
		d.typeRef(&r.Class, x.OneToMany.Class)
		d.text(&r.NotFound, x.OneToMany.NotFound)
		d.text(&r.EntityName, x.OneToMany.EntityName)
		c.Relationship = r
	case x.ManyToMany != nil:
		mx := x.ManyToMany
		r := &model.ManyToMany{}
		d.typeRef(&r.Class, mx.Class)
		d.text(&r.ForeignKey, mx.ForeignKey)
		d.text(&r.Fetch, mx.Fetch)
		d.text(&r.Lazy, mx.Lazy)
		d.text(&r.NotFound, mx.NotFound)
		d.text(&r.Where, mx.Where)
		d.text(&r.OrderBy, mx.OrderBy)
		d.text(&r.PropertyRef, mx.PropertyRef)
		d.text(&r.EntityName, mx.EntityName)
		d.text(&r.Formula, mx.Formula)
		d.columns(&r.Columns, mx.Columns)
		r.Filters = d.filters(mx.Filters)
		c.Relationship = r
	}
	c.Filters = d.filters(x.Filters)
	return c
}

func (d *decoder) compositeElement(x *compositeElementXML) *model.CompositeElement {
	ce := &model.CompositeElement{}
	d.text(&ce.Name, x.Name)
	d.typeRef(&ce.Class, x.Class)
	if x.Parent != nil {
		ce.Parent.Set(x.Parent.Name)
	}
	for i := range x.Properties {
		ce.Properties = append(ce.Properties, d.property(&x.Properties[i]))
	}
	for i := range x.ManyToOnes {
		ce.References = append(ce.References, d.manyToOne(&x.ManyToOnes[i]))
	}
	for i := range x.Nested {
		ce.Nested = append(ce.Nested, d.compositeElement(&x.Nested[i]))
	}
	return ce
}
