package mapping

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

var ErrNotDictionary = errors.New("mapping: member is not a map")

// Classlike is anything that maps members of an entity: class maps,
// components and joins.
type Classlike interface {
	EntityType() reflect.Type
	Map(name string, columns ...string) *PropertyPart
	References(name string, columns ...string) *ManyToOnePart
	HasMany(name string) *OneToManyPart
	HasManyToMany(name string) *ManyToManyPart
	HasManyMap(name string) *MapBuilder
}

func notDictionary(entity reflect.Type, m model.Member) error {
	return errors.Wrapf(ErrNotDictionary, "%s.%s is %v", model.EntityName(entity), m.Name, m.Type)
}

type collectionProvider interface {
	collectionMapping() (*model.Collection, error)
}

// classlike holds the member parts shared by ClassMap, ComponentPart and
// JoinPart.
type classlike struct {
	entity            reflect.Type
	errs              []error
	properties        []*PropertyPart
	references        []*ManyToOnePart
	oneToOnes         []*OneToOnePart
	components        []*ComponentPart
	dynamicComponents []*DynamicComponentPart
	collections       []collectionProvider
}

func newClasslike(entity reflect.Type) classlike {
	return classlike{entity: model.Deref(entity)}
}

func (c *classlike) EntityType() reflect.Type {
	return c.entity
}

func (c *classlike) resolve(name string) (model.Member, bool) {
	m, err := model.MemberOf(c.entity, name)
	if err != nil {
		c.errs = append(c.errs, err)
		return model.Member{Name: name}, false
	}
	return m, true
}

// Map maps a simple member to one or more columns.
func (c *classlike) Map(name string, columns ...string) *PropertyPart {
	m, ok := c.resolve(name)
	part := newPropertyPart(c.entity, m)
	part.Columns().Add(columns...)
	if ok {
		c.properties = append(c.properties, part)
	}
	return part
}

func (c *classlike) References(name string, columns ...string) *ManyToOnePart {
	m, ok := c.resolve(name)
	part := newManyToOnePart(c.entity, m)
	part.Columns().Add(columns...)
	if ok {
		c.references = append(c.references, part)
	}
	return part
}

func (c *classlike) HasOne(name string) *OneToOnePart {
	m, ok := c.resolve(name)
	part := newOneToOnePart(c.entity, m)
	if ok {
		c.oneToOnes = append(c.oneToOnes, part)
	}
	return part
}

func (c *classlike) Component(name string, fn func(*ComponentPart)) *ComponentPart {
	m, ok := c.resolve(name)
	part := newComponentPart(c.entity, m)
	if fn != nil {
		fn(part)
	}
	if ok {
		c.components = append(c.components, part)
	}
	return part
}

func (c *classlike) DynamicComponent(name string, fn func(*DynamicComponentPart)) *DynamicComponentPart {
	m, ok := c.resolve(name)
	part := newDynamicComponentPart(c.entity, m)
	if fn != nil {
		fn(part)
	}
	if ok {
		c.dynamicComponents = append(c.dynamicComponents, part)
	}
	return part
}

func (c *classlike) HasMany(name string) *OneToManyPart {
	m, ok := c.resolve(name)
	part := newOneToManyPart(c.entity, m)
	if ok {
		c.collections = append(c.collections, part)
	}
	return part
}

func (c *classlike) HasManyToMany(name string) *ManyToManyPart {
	m, ok := c.resolve(name)
	part := newManyToManyPart(c.entity, m)
	if ok {
		c.collections = append(c.collections, part)
	}
	return part
}

// HasManyMap maps a map member as a dictionary, inferring element or
// many-to-many values and plain or many-to-many indexes from its key and
// value types.
func (c *classlike) HasManyMap(name string) *MapBuilder {
	m, ok := c.resolve(name)
	if ok && m.Type.Kind() != reflect.Map {
		c.errs = append(c.errs, notDictionary(c.entity, m))
		ok = false
	}
	b := newMapBuilder(c.entity, m)
	if ok {
		c.collections = append(c.collections, b)
	}
	return b
}

func (c *classlike) buildMembers(into *model.Members) error {
	var result *multierror.Error
	result = multierror.Append(result, c.errs...)
	for _, p := range c.properties {
		into.Properties = append(into.Properties, p.propertyMapping())
	}
	for _, r := range c.references {
		into.References = append(into.References, r.manyToOneMapping())
	}
	for _, o := range c.oneToOnes {
		into.OneToOnes = append(into.OneToOnes, o.oneToOneMapping())
	}
	for _, comp := range c.components {
		m, err := comp.componentMapping()
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		into.Components = append(into.Components, m)
	}
	for _, d := range c.dynamicComponents {
		m, err := d.dynamicComponentMapping()
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		into.DynamicComponents = append(into.DynamicComponents, m)
	}
	for _, coll := range c.collections {
		m, err := coll.collectionMapping()
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		into.Collections = append(into.Collections, m)
	}
	return result.ErrorOrNil()
}
