package hbm

import (
	"encoding/xml"
	"strconv"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// Optional attributes are written when they hold a value. An explicit
// empty string is a value; an empty default is not.

func text(a attr.Attr[string]) *string {
	v := a.Get()
	if v == "" && !a.IsSpecified() {
		return nil
	}
	return &v
}

func boolText(a attr.Attr[bool]) *string {
	if !a.HasValue() {
		return nil
	}
	v := strconv.FormatBool(a.Get())
	return &v
}

func intText(a attr.Attr[int]) *string {
	if !a.HasValue() {
		return nil
	}
	v := strconv.Itoa(a.Get())
	return &v
}

func typeText(a attr.Attr[model.TypeReference]) *string {
	if a.Get().Name == "" {
		return nil
	}
	v := a.Get().Name
	return &v
}

func encodeDocument(doc *model.HibernateMapping) *hibernateMappingXML {
	x := &hibernateMappingXML{
		DefaultAccess:  text(doc.DefaultAccess),
		DefaultCascade: text(doc.DefaultCascade),
		DefaultLazy:    boolText(doc.DefaultLazy),
		AutoImport:     boolText(doc.AutoImport),
		Schema:         text(doc.Schema),
		Catalog:        text(doc.Catalog),
		Namespace:      text(doc.Namespace),
		Assembly:       text(doc.Assembly),
	}
	for _, c := range doc.Classes {
		x.Classes = append(x.Classes, encodeClass(c))
	}
	return x
}

func encodeClass(c *model.Class) classXML {
	x := classXML{
		Name:               text(c.Name),
		Table:              text(c.Table),
		Schema:             text(c.Schema),
		Lazy:               boolText(c.Lazy),
		Mutable:            boolText(c.Mutable),
		DynamicUpdate:      boolText(c.DynamicUpdate),
		DynamicInsert:      boolText(c.DynamicInsert),
		SelectBeforeUpdate: boolText(c.SelectBeforeUpdate),
		BatchSize:          intText(c.BatchSize),
		Where:              text(c.Where),
		Polymorphism:       text(c.Polymorphism),
		OptimisticLock:     text(c.OptimisticLock),
		Persister:          text(c.Persister),
		Cache:              encodeCache(c.Cache),
		membersXML:         encodeMembers(&c.Members),
		Filters:            encodeFilters(c.Filters),
	}
	if c.Id != nil {
		x.Id = encodeId(c.Id)
	}
	if c.Version != nil {
		x.Version = &versionXML{
			Name:         text(c.Version.Name),
			Access:       text(c.Version.Access),
			Type:         typeText(c.Version.Type),
			UnsavedValue: text(c.Version.UnsavedValue),
			Generated:    text(c.Version.Generated),
			Columns:      encodeColumns(&c.Version.Columns),
		}
	}
	for _, j := range c.Joins {
		x.Joins = append(x.Joins, joinXML{
			Table:      text(j.Table),
			Schema:     text(j.Schema),
			Optional:   boolText(j.Optional),
			Inverse:    boolText(j.Inverse),
			Fetch:      text(j.Fetch),
			Key:        encodeKey(j.Key),
			membersXML: encodeMembers(&j.Members),
		})
	}
	for _, sp := range c.StoredProcedures {
		s := &sqlXML{Check: text(sp.Check), Query: sp.Query}
		switch sp.Element {
		case "sql-insert":
			x.SqlInsert = s
		case "sql-update":
			x.SqlUpdate = s
		case "sql-delete":
			x.SqlDelete = s
		case "sql-delete-all":
			x.SqlDeleteAll = s
		}
	}
	return x
}

func encodeId(id *model.Id) *idXML {
	x := &idXML{
		Name:         text(id.Name),
		Access:       text(id.Access),
		Type:         typeText(id.Type),
		UnsavedValue: text(id.UnsavedValue),
		Columns:      encodeColumns(&id.Columns),
	}
	if g := id.Generator; g != nil && g.Class.HasValue() {
		x.Generator = &generatorXML{Class: g.Class.Get()}
		for _, p := range g.Params {
			x.Generator.Params = append(x.Generator.Params, paramXML{Name: p.Name, Value: p.Value})
		}
	}
	return x
}

func encodeColumns(c *model.Columns) []columnXML {
	var cols []columnXML
	for _, col := range c.ColumnList() {
		cols = append(cols, columnXML{
			Name:      text(col.Name),
			Length:    intText(col.Length),
			NotNull:   boolText(col.NotNull),
			Unique:    boolText(col.Unique),
			UniqueKey: text(col.UniqueKey),
			Index:     text(col.Index),
			SqlType:   text(col.SqlType),
			Check:     text(col.Check),
			Default:   text(col.Default),
			Precision: intText(col.Precision),
			Scale:     intText(col.Scale),
		})
	}
	return cols
}

func encodeCache(c *model.Cache) *cacheXML {
	if c == nil {
		return nil
	}
	return &cacheXML{Usage: text(c.Usage), Region: text(c.Region), Include: text(c.Include)}
}

func encodeFilters(filters []*model.Filter) []filterXML {
	var xs []filterXML
	for _, f := range filters {
		xs = append(xs, filterXML{Name: f.Name.Get(), Condition: text(f.Condition)})
	}
	return xs
}

func encodeMembers(m *model.Members) membersXML {
	var x membersXML
	for _, p := range m.Properties {
		x.Properties = append(x.Properties, encodeProperty(p))
	}
	for _, r := range m.References {
		x.ManyToOnes = append(x.ManyToOnes, encodeManyToOne(r))
	}
	for _, o := range m.OneToOnes {
		x.OneToOnes = append(x.OneToOnes, oneToOneXML{
			Name:        text(o.Name),
			Access:      text(o.Access),
			Class:       typeText(o.Class),
			Cascade:     text(o.Cascade),
			Constrained: boolText(o.Constrained),
			Fetch:       text(o.Fetch),
			ForeignKey:  text(o.ForeignKey),
			PropertyRef: text(o.PropertyRef),
			Lazy:        text(o.Lazy),
			EntityName:  text(o.EntityName),
		})
	}
	for _, c := range m.Components {
		cx := componentXML{
			Name:           text(c.Name),
			Access:         text(c.Access),
			Class:          typeText(c.Class),
			Insert:         boolText(c.Insert),
			Update:         boolText(c.Update),
			Lazy:           boolText(c.Lazy),
			Unique:         boolText(c.Unique),
			OptimisticLock: boolText(c.OptimisticLock),
			membersXML:     encodeMembers(&c.Members),
		}
		if c.Parent.HasValue() {
			cx.Parent = &parentXML{Name: c.Parent.Get()}
		}
		x.Components = append(x.Components, cx)
	}
	for _, d := range m.DynamicComponents {
		x.DynamicComponents = append(x.DynamicComponents, dynamicComponentXML{
			Name:           text(d.Name),
			Access:         text(d.Access),
			Insert:         boolText(d.Insert),
			Update:         boolText(d.Update),
			Unique:         boolText(d.Unique),
			OptimisticLock: boolText(d.OptimisticLock),
			membersXML:     encodeMembers(&d.Members),
		})
	}
	for _, c := range m.Collections {
		x.Collections = append(x.Collections, encodeCollection(c))
	}
	return x
}

func encodeProperty(p *model.Property) propertyXML {
	return propertyXML{
		Name:           text(p.Name),
		Access:         text(p.Access),
		Type:           typeText(p.Type),
		Formula:        text(p.Formula),
		Insert:         boolText(p.Insert),
		Update:         boolText(p.Update),
		Lazy:           boolText(p.Lazy),
		OptimisticLock: boolText(p.OptimisticLock),
		Generated:      text(p.Generated),
		Columns:        encodeColumns(&p.Columns),
	}
}

func encodeManyToOne(r *model.ManyToOne) manyToOneXML {
	return manyToOneXML{
		Name:           text(r.Name),
		Access:         text(r.Access),
		Class:          typeText(r.Class),
		Cascade:        text(r.Cascade),
		Fetch:          text(r.Fetch),
		Lazy:           text(r.Lazy),
		NotFound:       text(r.NotFound),
		ForeignKey:     text(r.ForeignKey),
		PropertyRef:    text(r.PropertyRef),
		Formula:        text(r.Formula),
		EntityName:     text(r.EntityName),
		Insert:         boolText(r.Insert),
		Update:         boolText(r.Update),
		OptimisticLock: boolText(r.OptimisticLock),
		Columns:        encodeColumns(&r.Columns),
	}
}

func encodeKey(k *model.Key) *keyXML {
	if k == nil {
		return nil
	}
	return &keyXML{
		ForeignKey:  text(k.ForeignKey),
		OnDelete:    text(k.OnDelete),
		PropertyRef: text(k.PropertyRef),
		NotNull:     boolText(k.NotNull),
		Update:      boolText(k.Update),
		Unique:      boolText(k.Unique),
		Columns:     encodeColumns(&k.Columns),
	}
}

func encodeCollection(c *model.Collection) collectionXML {
	kind := c.Kind.GetOr(model.Bag)
	x := collectionXML{
		XMLName:        xml.Name{Local: string(kind)},
		Name:           text(c.Name),
		Access:         text(c.Access),
		Table:          text(c.Table),
		Schema:         text(c.Schema),
		Lazy:           text(c.Lazy),
		Inverse:        boolText(c.Inverse),
		Cascade:        text(c.Cascade),
		Fetch:          text(c.Fetch),
		OptimisticLock: boolText(c.OptimisticLock),
		Persister:      text(c.Persister),
		Check:          text(c.Check),
		Generic:        boolText(c.Generic),
		Where:          text(c.Where),
		BatchSize:      intText(c.BatchSize),
		CollectionType: text(c.CollectionType),
		Mutable:        boolText(c.Mutable),
		OrderBy:        text(c.OrderBy),
		Sort:           text(c.Sort),
		Subselect:      text(c.Subselect),
		Cache:          encodeCache(c.Cache),
		Key:            encodeKey(c.Key),
		Filters:        encodeFilters(c.Filters),
	}
	if i := c.Index; i != nil {
		switch {
		case i.IsManyToMany:
			x.IndexManyToMany = &indexManyToManyXML{
				Class:      typeText(i.Type),
				ForeignKey: text(i.ForeignKey),
				EntityName: text(i.EntityName),
				Columns:    encodeColumns(&i.Columns),
			}
		case kind == model.List || kind == model.Array:
			x.ListIndex = &listIndexXML{Base: intText(i.Offset), Columns: encodeColumns(&i.Columns)}
		default:
			x.Index = &indexXML{Type: typeText(i.Type), Columns: encodeColumns(&i.Columns)}
		}
	}
	if ci := c.CompositeIndex; ci != nil {
		cx := &compositeIndexXML{Class: typeText(ci.Class)}
		for _, p := range ci.KeyProperties {
			cx.KeyProperties = append(cx.KeyProperties, encodeProperty(p))
		}
		for _, r := range ci.KeyReferences {
			cx.KeyManyToOnes = append(cx.KeyManyToOnes, encodeManyToOne(r))
		}
		x.CompositeIndex = cx
	}
	if e := c.Element; e != nil {
		x.Element = &elementXML{
			Type:    typeText(e.Type),
			Length:  intText(e.Length),
			Formula: text(e.Formula),
			Columns: encodeColumns(&e.Columns),
		}
	}
	if ce := c.CompositeElement; ce != nil {
		x.CompositeElement = encodeCompositeElement(ce)
	}
	switch r := c.Relationship.(type) {
	case *model.OneToMany:
		x.OneToMany = &oneToManyXML{
			Class:      typeText(r.Class),
			NotFound:   text(r.NotFound),
			EntityName: text(r.EntityName),
		}
	case *model.ManyToMany:
		x.ManyToMany = &manyToManyXML{
			Class:       typeText(r.Class),
			ForeignKey:  text(r.ForeignKey),
			Fetch:       text(r.Fetch),
			Lazy:        text(r.Lazy),
			NotFound:    text(r.NotFound),
			Where:       text(r.Where),
			OrderBy:     text(r.OrderBy),
			PropertyRef: text(r.PropertyRef),
			EntityName:  text(r.EntityName),
			Formula:     text(r.Formula),
			Columns:     encodeColumns(&r.Columns),
			Filters:     encodeFilters(r.Filters),
		}
	}
	return x
}

func encodeCompositeElement(ce *model.CompositeElement) *compositeElementXML {
	x := &compositeElementXML{Name: text(ce.Name), Class: typeText(ce.Class)}
	if ce.Parent.HasValue() {
		x.Parent = &parentXML{Name: ce.Parent.Get()}
	}
	for _, p := range ce.Properties {
		x.Properties = append(x.Properties, encodeProperty(p))
	}
	for _, r := range ce.References {
		x.ManyToOnes = append(x.ManyToOnes, encodeManyToOne(r))
	}
	for _, n := range ce.Nested {
		x.Nested = append(x.Nested, *encodeCompositeElement(n))
	}
	return x
}
