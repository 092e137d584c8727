package conventions

import "github.com/krew-solutions/fluent-mapping-go/fluentmap/model"

type classFunc struct {
	name string
	fn   func(*model.Class)
}

func (c classFunc) Name() string {
	return c.name
}

func (c classFunc) ApplyClass(class *model.Class) {
	c.fn(class)
}

// ForClasses turns fn into a class convention.
func ForClasses(name string, fn func(*model.Class)) ClassConvention {
	return classFunc{name: name, fn: fn}
}

type propertyFunc struct {
	name string
	fn   func(*model.Property)
}

func (p propertyFunc) Name() string {
	return p.name
}

func (p propertyFunc) ApplyProperty(prop *model.Property) {
	p.fn(prop)
}

func ForProperties(name string, fn func(*model.Property)) PropertyConvention {
	return propertyFunc{name: name, fn: fn}
}

type referenceFunc struct {
	name string
	fn   func(*model.ManyToOne)
}

func (r referenceFunc) Name() string {
	return r.name
}

func (r referenceFunc) ApplyReference(m *model.ManyToOne) {
	r.fn(m)
}

func ForReferences(name string, fn func(*model.ManyToOne)) ReferenceConvention {
	return referenceFunc{name: name, fn: fn}
}

type collectionFunc struct {
	name string
	fn   func(*model.Collection)
}

func (c collectionFunc) Name() string {
	return c.name
}

func (c collectionFunc) ApplyCollection(coll *model.Collection) {
	c.fn(coll)
}

func ForCollections(name string, fn func(*model.Collection)) CollectionConvention {
	return collectionFunc{name: name, fn: fn}
}
