package mapping

import (
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// ComponentPart maps a value object stored in the columns of its owner.
type ComponentPart struct {
	classlike
	member  model.Member
	mapping *model.Component
	not     bool
}

func newComponentPart(entity reflect.Type, member model.Member) *ComponentPart {
	return &ComponentPart{
		classlike: newClasslike(member.Type),
		member:    member,
		mapping:   &model.Component{ContainingEntity: entity, Member: member},
	}
}

func (c *ComponentPart) flag() bool {
	v := !c.not
	c.not = false
	return v
}

func (c *ComponentPart) Not() *ComponentPart {
	c.not = !c.not
	return c
}

// ParentReference names the component member pointing back at the owner.
func (c *ComponentPart) ParentReference(name string) *ComponentPart {
	c.mapping.Parent.Set(name)
	return c
}

func (c *ComponentPart) Access() AccessStrategy[*ComponentPart] {
	return AccessStrategy[*ComponentPart]{parent: c, set: c.mapping.Access.Set}
}

func (c *ComponentPart) Insert() *ComponentPart {
	c.mapping.Insert.Set(c.flag())
	return c
}

func (c *ComponentPart) Update() *ComponentPart {
	c.mapping.Update.Set(c.flag())
	return c
}

func (c *ComponentPart) ReadOnly() *ComponentPart {
	v := !c.flag()
	c.mapping.Insert.Set(v)
	c.mapping.Update.Set(v)
	return c
}

func (c *ComponentPart) LazyLoad() *ComponentPart {
	c.mapping.Lazy.Set(c.flag())
	return c
}

func (c *ComponentPart) Unique() *ComponentPart {
	c.mapping.Unique.Set(c.flag())
	return c
}

func (c *ComponentPart) OptimisticLock() *ComponentPart {
	c.mapping.OptimisticLock.Set(c.flag())
	return c
}

func (c *ComponentPart) componentMapping() (*model.Component, error) {
	m := c.mapping
	m.Members = model.Members{}
	if err := c.buildMembers(&m.Members); err != nil {
		return nil, err
	}
	m.Name.SetDefault(c.member.Name)
	if c.member.Type != nil {
		m.Class.SetDefault(model.NewTypeReference(c.member.Type))
	}
	return m, nil
}

// DynamicComponentPart maps a map member whose keys become properties.
type DynamicComponentPart struct {
	entity     reflect.Type
	member     model.Member
	mapping    *model.DynamicComponent
	properties []*PropertyPart
	not        bool
}

func newDynamicComponentPart(entity reflect.Type, member model.Member) *DynamicComponentPart {
	return &DynamicComponentPart{
		entity:  entity,
		member:  member,
		mapping: &model.DynamicComponent{ContainingEntity: entity, Member: member},
	}
}

func (d *DynamicComponentPart) flag() bool {
	v := !d.not
	d.not = false
	return v
}

func (d *DynamicComponentPart) Not() *DynamicComponentPart {
	d.not = !d.not
	return d
}

// Map adds an entry stored under key with the given value type.
func (d *DynamicComponentPart) Map(key string, t reflect.Type) *PropertyPart {
	part := newPropertyPart(d.entity, model.Member{Name: key, Type: t})
	d.properties = append(d.properties, part)
	return part
}

func (d *DynamicComponentPart) Access() AccessStrategy[*DynamicComponentPart] {
	return AccessStrategy[*DynamicComponentPart]{parent: d, set: d.mapping.Access.Set}
}

func (d *DynamicComponentPart) Insert() *DynamicComponentPart {
	d.mapping.Insert.Set(d.flag())
	return d
}

func (d *DynamicComponentPart) Update() *DynamicComponentPart {
	d.mapping.Update.Set(d.flag())
	return d
}

func (d *DynamicComponentPart) ReadOnly() *DynamicComponentPart {
	v := !d.flag()
	d.mapping.Insert.Set(v)
	d.mapping.Update.Set(v)
	return d
}

func (d *DynamicComponentPart) Unique() *DynamicComponentPart {
	d.mapping.Unique.Set(d.flag())
	return d
}

func (d *DynamicComponentPart) OptimisticLock() *DynamicComponentPart {
	d.mapping.OptimisticLock.Set(d.flag())
	return d
}

func (d *DynamicComponentPart) dynamicComponentMapping() (*model.DynamicComponent, error) {
	var result *multierror.Error
	if d.member.Type != nil && d.member.Type.Kind() != reflect.Map {
		result = multierror.Append(result, notDictionary(d.entity, d.member))
	}
	m := d.mapping
	m.Members = model.Members{}
	for _, p := range d.properties {
		m.Properties = append(m.Properties, p.propertyMapping())
	}
	m.Name.SetDefault(d.member.Name)
	return m, result.ErrorOrNil()
}
