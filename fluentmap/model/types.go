package model

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	ulidType     = reflect.TypeOf(ulid.ULID{})
	bytesType    = reflect.TypeOf([]byte(nil))
)

func specialTypeName(t reflect.Type) (string, bool) {
	switch t {
	case timeType:
		return "DateTime", true
	case durationType:
		return "TimeSpan", true
	case uuidType:
		return "Guid", true
	case ulidType:
		return "AnsiString", true
	case bytesType:
		return "Binary", true
	}
	return "", false
}

var kindNames = map[reflect.Kind]string{
	reflect.String:  "String",
	reflect.Bool:    "Boolean",
	reflect.Int:     "Int64",
	reflect.Int64:   "Int64",
	reflect.Int32:   "Int32",
	reflect.Int16:   "Int16",
	reflect.Int8:    "SByte",
	reflect.Uint:    "UInt64",
	reflect.Uint64:  "UInt64",
	reflect.Uint32:  "UInt32",
	reflect.Uint16:  "UInt16",
	reflect.Uint8:   "Byte",
	reflect.Float32: "Single",
	reflect.Float64: "Double",
}

// TypeReference names a type in a mapping document. Type is nil when the
// reference was created from a bare name, e.g. a custom user type.
type TypeReference struct {
	Name string
	Type reflect.Type
}

func NewTypeReference(t reflect.Type) TypeReference {
	t = Deref(t)
	return TypeReference{Name: TypeName(t), Type: t}
}

func TypeReferenceOf[T any]() TypeReference {
	return NewTypeReference(reflect.TypeFor[T]())
}

func TypeReferenceByName(name string) TypeReference {
	return TypeReference{Name: name}
}

func (r TypeReference) IsEmpty() bool {
	return r.Name == "" && r.Type == nil
}

func (r TypeReference) Equal(other TypeReference) bool {
	if r.Type != nil && other.Type != nil {
		return r.Type == other.Type
	}
	return r.Name == other.Name
}

func (r TypeReference) String() string {
	return r.Name
}

// TypeName returns the name the mapping document uses for t.
func TypeName(t reflect.Type) string {
	t = Deref(t)
	if t == nil {
		return ""
	}
	if name, ok := specialTypeName(t); ok {
		return name
	}
	if t.PkgPath() == "" {
		if name, ok := kindNames[t.Kind()]; ok {
			return name
		}
	}
	return t.String()
}

// IsSimpleType reports whether values of t are stored in a plain column
// rather than mapped as an entity or component.
func IsSimpleType(t reflect.Type) bool {
	t = Deref(t)
	if t == nil {
		return false
	}
	if _, ok := specialTypeName(t); ok {
		return true
	}
	if _, ok := kindNames[t.Kind()]; ok {
		return true
	}
	return false
}

// EntityName is the unqualified name used when deriving table and column names.
func EntityName(t reflect.Type) string {
	t = Deref(t)
	if t == nil {
		return ""
	}
	return t.Name()
}

func Deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func IsNullable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return true
	}
	return false
}
