package model

import (
	"reflect"
	"strings"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
)

type Cache struct {
	Usage   attr.Attr[string]
	Region  attr.Attr[string]
	Include attr.Attr[string]
}

func (c *Cache) Accept(v Visitor) error {
	return v.VisitCache(c)
}

type Filter struct {
	Name      attr.Attr[string]
	Condition attr.Attr[string]
}

func (f *Filter) Accept(v Visitor) error {
	return v.VisitFilter(f)
}

// StoredProcedure overrides the SQL used for one write operation.
// Element is one of sql-insert, sql-update, sql-delete, sql-delete-all.
type StoredProcedure struct {
	Element string
	Query   string
	Check   attr.Attr[string]
}

func (s *StoredProcedure) Accept(v Visitor) error {
	return v.VisitStoredProcedure(s)
}

type Join struct {
	ContainingEntity reflect.Type

	Table    attr.Attr[string]
	Schema   attr.Attr[string]
	Optional attr.Attr[bool]
	Inverse  attr.Attr[bool]
	Fetch    attr.Attr[string]
	Key      *Key
	Members
}

func (j *Join) Accept(v Visitor) error {
	return v.VisitJoin(j)
}

type Class struct {
	Type reflect.Type

	Name               attr.Attr[string]
	Table              attr.Attr[string]
	Schema             attr.Attr[string]
	Lazy               attr.Attr[bool]
	Mutable            attr.Attr[bool]
	DynamicUpdate      attr.Attr[bool]
	DynamicInsert      attr.Attr[bool]
	SelectBeforeUpdate attr.Attr[bool]
	BatchSize          attr.Attr[int]
	Where              attr.Attr[string]
	Polymorphism       attr.Attr[string]
	OptimisticLock     attr.Attr[string]
	Persister          attr.Attr[string]

	Id               *Id
	Version          *Version
	Cache            *Cache
	Joins            []*Join
	StoredProcedures []*StoredProcedure
	Filters          []*Filter
	Members
}

func (c *Class) Accept(v Visitor) error {
	return v.VisitClass(c)
}

// EntityName is the short name of the mapped type, used for file names and
// registry keys. Classes read back from a document have no Type, so the
// package qualifier is cut from their name instead.
func (c *Class) EntityName() string {
	if c.Type != nil {
		return EntityName(c.Type)
	}
	name := c.Name.Get()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// HibernateMapping is the root of one mapping document.
type HibernateMapping struct {
	DefaultAccess  attr.Attr[string]
	DefaultCascade attr.Attr[string]
	DefaultLazy    attr.Attr[bool]
	AutoImport     attr.Attr[bool]
	Schema         attr.Attr[string]
	Catalog        attr.Attr[string]
	Namespace      attr.Attr[string]
	Assembly       attr.Attr[string]
	Classes        []*Class
}

func (h *HibernateMapping) Accept(v Visitor) error {
	return v.VisitHibernateMapping(h)
}

func (h *HibernateMapping) AddClass(c *Class) {
	h.Classes = append(h.Classes, c)
}
