package hbm

import "encoding/xml"

// Namespace of NHibernate mapping documents, schema version 2.2.
const Namespace = "urn:nhibernate-mapping-2.2"

type hibernateMappingXML struct {
	XMLName        xml.Name   `xml:"urn:nhibernate-mapping-2.2 hibernate-mapping"`
	DefaultAccess  *string     `xml:"default-access,attr,omitempty"`
	DefaultCascade *string     `xml:"default-cascade,attr,omitempty"`
	DefaultLazy    *string     `xml:"default-lazy,attr,omitempty"`
	AutoImport     *string     `xml:"auto-import,attr,omitempty"`
	Schema         *string     `xml:"schema,attr,omitempty"`
	Catalog        *string     `xml:"catalog,attr,omitempty"`
	Namespace      *string     `xml:"namespace,attr,omitempty"`
	Assembly       *string     `xml:"assembly,attr,omitempty"`
	Classes        []classXML `xml:"class"`
}

type classXML struct {
	Name               *string     `xml:"name,attr,omitempty"`
	Table              *string     `xml:"table,attr,omitempty"`
	Schema             *string     `xml:"schema,attr,omitempty"`
	Lazy               *string     `xml:"lazy,attr,omitempty"`
	Mutable            *string     `xml:"mutable,attr,omitempty"`
	DynamicUpdate      *string     `xml:"dynamic-update,attr,omitempty"`
	DynamicInsert      *string     `xml:"dynamic-insert,attr,omitempty"`
	SelectBeforeUpdate *string     `xml:"select-before-update,attr,omitempty"`
	BatchSize          *string     `xml:"batch-size,attr,omitempty"`
	Where              *string     `xml:"where,attr,omitempty"`
	Polymorphism       *string     `xml:"polymorphism,attr,omitempty"`
	OptimisticLock     *string     `xml:"optimistic-lock,attr,omitempty"`
	Persister          *string     `xml:"persister,attr,omitempty"`
	Cache              *cacheXML  `xml:"cache"`
	Id                 *idXML     `xml:"id"`
	Version            *versionXML `xml:"version"`
	membersXML
	Joins        []joinXML  `xml:"join"`
	SqlInsert    *sqlXML    `xml:"sql-insert"`
	SqlUpdate    *sqlXML    `xml:"sql-update"`
	SqlDelete    *sqlXML    `xml:"sql-delete"`
	SqlDeleteAll *sqlXML    `xml:"sql-delete-all"`
	Filters      []filterXML `xml:"filter"`
}

// membersXML is shared by classes, components and joins. Collections are
// kept in one list, named by their kind, so their order survives a round
// trip.
type membersXML struct {
	Properties        []propertyXML         `xml:"property"`
	ManyToOnes        []manyToOneXML        `xml:"many-to-one"`
	OneToOnes         []oneToOneXML         `xml:"one-to-one"`
	Components        []componentXML        `xml:"component"`
	DynamicComponents []dynamicComponentXML `xml:"dynamic-component"`
	Collections       []collectionXML       `xml:",any"`
}

type columnXML struct {
	Name      *string `xml:"name,attr,omitempty"`
	Length    *string `xml:"length,attr,omitempty"`
	NotNull   *string `xml:"not-null,attr,omitempty"`
	Unique    *string `xml:"unique,attr,omitempty"`
	UniqueKey *string `xml:"unique-key,attr,omitempty"`
	Index     *string `xml:"index,attr,omitempty"`
	SqlType   *string `xml:"sql-type,attr,omitempty"`
	Check     *string `xml:"check,attr,omitempty"`
	Default   *string `xml:"default,attr,omitempty"`
	Precision *string `xml:"precision,attr,omitempty"`
	Scale     *string `xml:"scale,attr,omitempty"`
}

type cacheXML struct {
	Usage   *string `xml:"usage,attr,omitempty"`
	Region  *string `xml:"region,attr,omitempty"`
	Include *string `xml:"include,attr,omitempty"`
}

type filterXML struct {
	Name      string `xml:"name,attr"`
	Condition *string `xml:"condition,attr,omitempty"`
}

type sqlXML struct {
	Check *string `xml:"check,attr,omitempty"`
	Query string `xml:",chardata"`
}

type paramXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type generatorXML struct {
	Class  string     `xml:"class,attr"`
	Params []paramXML `xml:"param"`
}

type idXML struct {
	Name         *string        `xml:"name,attr,omitempty"`
	Access       *string        `xml:"access,attr,omitempty"`
	Type         *string        `xml:"type,attr,omitempty"`
	UnsavedValue *string        `xml:"unsaved-value,attr,omitempty"`
	Columns      []columnXML   `xml:"column"`
	Generator    *generatorXML `xml:"generator"`
}

type versionXML struct {
	Name         *string      `xml:"name,attr,omitempty"`
	Access       *string      `xml:"access,attr,omitempty"`
	Type         *string      `xml:"type,attr,omitempty"`
	UnsavedValue *string      `xml:"unsaved-value,attr,omitempty"`
	Generated    *string      `xml:"generated,attr,omitempty"`
	Columns      []columnXML `xml:"column"`
}

type propertyXML struct {
	Name           *string      `xml:"name,attr,omitempty"`
	Access         *string      `xml:"access,attr,omitempty"`
	Type           *string      `xml:"type,attr,omitempty"`
	Formula        *string      `xml:"formula,attr,omitempty"`
	Insert         *string      `xml:"insert,attr,omitempty"`
	Update         *string      `xml:"update,attr,omitempty"`
	Lazy           *string      `xml:"lazy,attr,omitempty"`
	OptimisticLock *string      `xml:"optimistic-lock,attr,omitempty"`
	Generated      *string      `xml:"generated,attr,omitempty"`
	Columns        []columnXML `xml:"column"`
}

type manyToOneXML struct {
	Name           *string      `xml:"name,attr,omitempty"`
	Access         *string      `xml:"access,attr,omitempty"`
	Class          *string      `xml:"class,attr,omitempty"`
	Cascade        *string      `xml:"cascade,attr,omitempty"`
	Fetch          *string      `xml:"fetch,attr,omitempty"`
	Lazy           *string      `xml:"lazy,attr,omitempty"`
	NotFound       *string      `xml:"not-found,attr,omitempty"`
	ForeignKey     *string      `xml:"foreign-key,attr,omitempty"`
	PropertyRef    *string      `xml:"property-ref,attr,omitempty"`
	Formula        *string      `xml:"formula,attr,omitempty"`
	EntityName     *string      `xml:"entity-name,attr,omitempty"`
	Insert         *string      `xml:"insert,attr,omitempty"`
	Update         *string      `xml:"update,attr,omitempty"`
	OptimisticLock *string      `xml:"optimistic-lock,attr,omitempty"`
	Columns        []columnXML `xml:"column"`
}

type oneToOneXML struct {
	Name        *string `xml:"name,attr,omitempty"`
	Access      *string `xml:"access,attr,omitempty"`
	Class       *string `xml:"class,attr,omitempty"`
	Cascade     *string `xml:"cascade,attr,omitempty"`
	Constrained *string `xml:"constrained,attr,omitempty"`
	Fetch       *string `xml:"fetch,attr,omitempty"`
	ForeignKey  *string `xml:"foreign-key,attr,omitempty"`
	PropertyRef *string `xml:"property-ref,attr,omitempty"`
	Lazy        *string `xml:"lazy,attr,omitempty"`
	EntityName  *string `xml:"entity-name,attr,omitempty"`
}

type parentXML struct {
	Name string `xml:"name,attr"`
}

type componentXML struct {
	Name           *string     `xml:"name,attr,omitempty"`
	Access         *string     `xml:"access,attr,omitempty"`
	Class          *string     `xml:"class,attr,omitempty"`
	Insert         *string     `xml:"insert,attr,omitempty"`
	Update         *string     `xml:"update,attr,omitempty"`
	Lazy           *string     `xml:"lazy,attr,omitempty"`
	Unique         *string     `xml:"unique,attr,omitempty"`
	OptimisticLock *string     `xml:"optimistic-lock,attr,omitempty"`
	Parent         *parentXML `xml:"parent"`
	membersXML
}

type dynamicComponentXML struct {
	Name           *string `xml:"name,attr,omitempty"`
	Access         *string `xml:"access,attr,omitempty"`
	Insert         *string `xml:"insert,attr,omitempty"`
	Update         *string `xml:"update,attr,omitempty"`
	Unique         *string `xml:"unique,attr,omitempty"`
	OptimisticLock *string `xml:"optimistic-lock,attr,omitempty"`
	membersXML
}

type joinXML struct {
	Table    *string  `xml:"table,attr,omitempty"`
	Schema   *string  `xml:"schema,attr,omitempty"`
	Optional *string  `xml:"optional,attr,omitempty"`
	Inverse  *string  `xml:"inverse,attr,omitempty"`
	Fetch    *string  `xml:"fetch,attr,omitempty"`
	Key      *keyXML `xml:"key"`
	membersXML
}

type keyXML struct {
	ForeignKey  *string      `xml:"foreign-key,attr,omitempty"`
	OnDelete    *string      `xml:"on-delete,attr,omitempty"`
	PropertyRef *string      `xml:"property-ref,attr,omitempty"`
	NotNull     *string      `xml:"not-null,attr,omitempty"`
	Update      *string      `xml:"update,attr,omitempty"`
	Unique      *string      `xml:"unique,attr,omitempty"`
	Columns     []columnXML `xml:"column"`
}

type indexXML struct {
	Type    *string      `xml:"type,attr,omitempty"`
	Columns []columnXML `xml:"column"`
}

type listIndexXML struct {
	Base    *string      `xml:"base,attr,omitempty"`
	Columns []columnXML `xml:"column"`
}

type indexManyToManyXML struct {
	Class      *string      `xml:"class,attr,omitempty"`
	ForeignKey *string      `xml:"foreign-key,attr,omitempty"`
	EntityName *string      `xml:"entity-name,attr,omitempty"`
	Columns    []columnXML `xml:"column"`
}

type compositeIndexXML struct {
	Class         *string         `xml:"class,attr,omitempty"`
	KeyProperties []propertyXML  `xml:"key-property"`
	KeyManyToOnes []manyToOneXML `xml:"key-many-to-one"`
}

type elementXML struct {
	Type    *string      `xml:"type,attr,omitempty"`
	Length  *string      `xml:"length,attr,omitempty"`
	Formula *string      `xml:"formula,attr,omitempty"`
	Columns []columnXML `xml:"column"`
}

type compositeElementXML struct {
	Name       *string                `xml:"name,attr,omitempty"`
	Class      *string                `xml:"class,attr,omitempty"`
	Parent     *parentXML            `xml:"parent"`
	Properties []propertyXML         `xml:"property"`
	ManyToOnes []manyToOneXML        `xml:"many-to-one"`
	Nested     []compositeElementXML `xml:"nested-composite-element"`
}

type oneToManyXML struct {
	Class      *string `xml:"class,attr,omitempty"`
	NotFound   *string `xml:"not-found,attr,omitempty"`
	EntityName *string `xml:"entity-name,attr,omitempty"`
}

type manyToManyXML struct {
	Class       *string      `xml:"class,attr,omitempty"`
	ForeignKey  *string      `xml:"foreign-key,attr,omitempty"`
	Fetch       *string      `xml:"fetch,attr,omitempty"`
	Lazy        *string      `xml:"lazy,attr,omitempty"`
	NotFound    *string      `xml:"not-found,attr,omitempty"`
	Where       *string      `xml:"where,attr,omitempty"`
	OrderBy     *string      `xml:"order-by,attr,omitempty"`
	PropertyRef *string      `xml:"property-ref,attr,omitempty"`
	EntityName  *string      `xml:"entity-name,attr,omitempty"`
	Formula     *string      `xml:"formula,attr,omitempty"`
	Columns     []columnXML `xml:"column"`
	Filters     []filterXML `xml:"filter"`
}

type collectionXML struct {
	XMLName          xml.Name
	Name             *string               `xml:"name,attr,omitempty"`
	Access           *string               `xml:"access,attr,omitempty"`
	Table            *string               `xml:"table,attr,omitempty"`
	Schema           *string               `xml:"schema,attr,omitempty"`
	Lazy             *string               `xml:"lazy,attr,omitempty"`
	Inverse          *string               `xml:"inverse,attr,omitempty"`
	Cascade          *string               `xml:"cascade,attr,omitempty"`
	Fetch            *string               `xml:"fetch,attr,omitempty"`
	OptimisticLock   *string               `xml:"optimistic-lock,attr,omitempty"`
	Persister        *string               `xml:"persister,attr,omitempty"`
	Check            *string               `xml:"check,attr,omitempty"`
	Generic          *string               `xml:"generic,attr,omitempty"`
	Where            *string               `xml:"where,attr,omitempty"`
	BatchSize        *string               `xml:"batch-size,attr,omitempty"`
	CollectionType   *string               `xml:"collection-type,attr,omitempty"`
	Mutable          *string               `xml:"mutable,attr,omitempty"`
	OrderBy          *string               `xml:"order-by,attr,omitempty"`
	Sort             *string               `xml:"sort,attr,omitempty"`
	Subselect        *string               `xml:"subselect,attr,omitempty"`
	Cache            *cacheXML            `xml:"cache"`
	Key              *keyXML              `xml:"key"`
	Index            *indexXML            `xml:"index"`
	ListIndex        *listIndexXML        `xml:"list-index"`
	IndexManyToMany  *indexManyToManyXML  `xml:"index-many-to-many"`
	CompositeIndex   *compositeIndexXML   `xml:"composite-index"`
	Element          *elementXML          `xml:"element"`
	CompositeElement *compositeElementXML `xml:"composite-element"`
	OneToMany        *oneToManyXML        `xml:"one-to-many"`
	ManyToMany       *manyToManyXML       `xml:"many-to-many"`
	Filters          []filterXML          `xml:"filter"`
}
