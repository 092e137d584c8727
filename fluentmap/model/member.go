package model

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var ErrMemberNotFound = errors.New("model: member not found")

type MemberKind int

const (
	FieldMember MemberKind = iota
	MethodMember
)

// Member is a field or accessor method of a mapped type.
type Member struct {
	Name string
	Type reflect.Type
	Kind MemberKind
}

func (m Member) IsMethod() bool {
	return m.Kind == MethodMember
}

func (m Member) IsZero() bool {
	return m.Name == "" && m.Type == nil
}

// MemberOf resolves an exported field (promoted fields included) or a
// niladic single-result method of entity.
func MemberOf(entity reflect.Type, name string) (Member, error) {
	t := Deref(entity)
	if t == nil || t.Kind() != reflect.Struct {
		return Member{}, errors.Wrapf(ErrMemberNotFound, "%s on non-struct type %v", name, entity)
	}
	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return Member{Name: name, Type: f.Type, Kind: FieldMember}, nil
	}
	if m, ok := reflect.PointerTo(t).MethodByName(name); ok {
		if m.Type.NumIn() == 1 && m.Type.NumOut() == 1 {
			return Member{Name: name, Type: m.Type.Out(0), Kind: MethodMember}, nil
		}
	}
	return Member{}, errors.Wrapf(ErrMemberNotFound, "%s.%s", t.Name(), name)
}

// DefaultCollectionName guesses the backing name for accessor methods:
// GetPosts -> posts.
func DefaultCollectionName(m Member) string {
	if m.IsMethod() && strings.HasPrefix(m.Name, "Get") && len(m.Name) > 3 {
		rest := []rune(m.Name[3:])
		if unicode.IsUpper(rest[0]) {
			rest[0] = unicode.ToLower(rest[0])
		}
		return string(rest)
	}
	return m.Name
}
