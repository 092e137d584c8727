package mapping

import (
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// CompositeElementBuilder maps the members of a value type stored in a
// collection table.
type CompositeElementBuilder struct {
	element    reflect.Type
	owner      reflect.Type
	mapping    *model.CompositeElement
	properties []*PropertyPart
	references []*ManyToOnePart
	nested     []*CompositeElementBuilder
	errs       []error
}

func NewCompositeElementBuilder(element, owner reflect.Type) *CompositeElementBuilder {
	return &CompositeElementBuilder{
		element: model.Deref(element),
		owner:   owner,
		mapping: &model.CompositeElement{ContainingEntity: owner},
	}
}

func (c *CompositeElementBuilder) resolve(name string) (model.Member, bool) {
	m, err := model.MemberOf(c.element, name)
	if err != nil {
		c.errs = append(c.errs, err)
		return model.Member{Name: name}, false
	}
	return m, true
}

func (c *CompositeElementBuilder) Map(name string, columns ...string) *PropertyPart {
	m, ok := c.resolve(name)
	part := newPropertyPart(c.element, m)
	part.Columns().Add(columns...)
	if ok {
		c.properties = append(c.properties, part)
	}
	return part
}

func (c *CompositeElementBuilder) References(name string, columns ...string) *ManyToOnePart {
	m, ok := c.resolve(name)
	part := newManyToOnePart(c.element, m)
	part.Columns().Add(columns...)
	if ok {
		c.references = append(c.references, part)
	}
	return part
}

func (c *CompositeElementBuilder) ParentReference(name string) *CompositeElementBuilder {
	c.mapping.Parent.Set(name)
	return c
}

// Component maps a nested value type held in member name.
func (c *CompositeElementBuilder) Component(name string, fn func(*CompositeElementBuilder)) *CompositeElementBuilder {
	m, ok := c.resolve(name)
	nested := NewCompositeElementBuilder(m.Type, c.owner)
	nested.mapping.Name.Set(name)
	fn(nested)
	if ok {
		c.nested = append(c.nested, nested)
	}
	return c
}

func (c *CompositeElementBuilder) compositeElementMapping() (*model.CompositeElement, error) {
	var result *multierror.Error
	result = multierror.Append(result, c.errs...)
	m := c.mapping
	m.Properties, m.References, m.Nested = nil, nil, nil
	for _, p := range c.properties {
		m.Properties = append(m.Properties, p.propertyMapping())
	}
	for _, r := range c.references {
		m.References = append(m.References, r.manyToOneMapping())
	}
	for _, n := range c.nested {
		nm, err := n.compositeElementMapping()
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		m.Nested = append(m.Nested, nm)
	}
	if c.element != nil {
		m.Class.SetDefault(model.NewTypeReference(c.element))
	}
	return m, result.ErrorOrNil()
}

// CompositeIndexBuilder maps a struct used as a map key.
type CompositeIndexBuilder struct {
	entity     reflect.Type
	mapping    *model.CompositeIndex
	properties []*PropertyPart
	references []*ManyToOnePart
	errs       []error
}

func NewCompositeIndexBuilder(entity reflect.Type) *CompositeIndexBuilder {
	entity = model.Deref(entity)
	return &CompositeIndexBuilder{
		entity:  entity,
		mapping: &model.CompositeIndex{ContainingEntity: entity},
	}
}

func (c *CompositeIndexBuilder) KeyProperty(name string, columns ...string) *CompositeIndexBuilder {
	m, err := model.MemberOf(c.entity, name)
	if err != nil {
		c.errs = append(c.errs, err)
		return c
	}
	part := newPropertyPart(c.entity, m)
	part.Columns().Add(columns...)
	c.properties = append(c.properties, part)
	return c
}

func (c *CompositeIndexBuilder) KeyReference(name string, columns ...string) *CompositeIndexBuilder {
	m, err := model.MemberOf(c.entity, name)
	if err != nil {
		c.errs = append(c.errs, err)
		return c
	}
	part := newManyToOnePart(c.entity, m)
	part.Columns().Add(columns...)
	c.references = append(c.references, part)
	return c
}

func (c *CompositeIndexBuilder) compositeIndexMapping() (*model.CompositeIndex, error) {
	var result *multierror.Error
	result = multierror.Append(result, c.errs...)
	m := c.mapping
	m.KeyProperties, m.KeyReferences = nil, nil
	for _, p := range c.properties {
		m.KeyProperties = append(m.KeyProperties, p.propertyMapping())
	}
	for _, r := range c.references {
		m.KeyReferences = append(m.KeyReferences, r.manyToOneMapping())
	}
	if c.entity != nil {
		m.Class.SetDefault(model.NewTypeReference(c.entity))
	}
	return m, result.ErrorOrNil()
}
