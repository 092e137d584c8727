package model

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
)

type Property struct {
	ContainingEntity reflect.Type
	Member           Member

	Name           attr.Attr[string]
	Access         attr.Attr[string]
	Type           attr.Attr[TypeReference]
	Formula        attr.Attr[string]
	Insert         attr.Attr[bool]
	Update         attr.Attr[bool]
	Lazy           attr.Attr[bool]
	OptimisticLock attr.Attr[bool]
	Generated      attr.Attr[string]
	Columns
}

func (p *Property) Accept(v Visitor) error {
	return v.VisitProperty(p)
}

type Param struct {
	Name  string
	Value string
}

type Generator struct {
	Class  attr.Attr[string]
	Params []Param
}

type Id struct {
	ContainingEntity reflect.Type
	Member           Member

	Name         attr.Attr[string]
	Access       attr.Attr[string]
	Type         attr.Attr[TypeReference]
	UnsavedValue attr.Attr[string]
	Generator    *Generator
	Columns
}

func (i *Id) Accept(v Visitor) error {
	return v.VisitId(i)
}

type Version struct {
	ContainingEntity reflect.Type
	Member           Member

	Name         attr.Attr[string]
	Access       attr.Attr[string]
	Type         attr.Attr[TypeReference]
	UnsavedValue attr.Attr[string]
	Generated    attr.Attr[string]
	Columns
}

func (ver *Version) Accept(v Visitor) error {
	return v.VisitVersion(ver)
}
