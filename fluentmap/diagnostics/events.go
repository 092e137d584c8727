package diagnostics

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type MappingsRegistered struct {
	Types []reflect.Type
}

type ConventionApplied struct {
	Convention string
	Class      string
	Node       string
}

type ClassBuilt struct {
	Class *model.Class
}

type DocumentExported struct {
	Class string
	Path  string
	Size  int
}

type DocumentAdded struct {
	Name string
	Size int
}
