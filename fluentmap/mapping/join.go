package mapping

import (
	"reflect"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// JoinPart maps members of the entity stored in a secondary table.
type JoinPart struct {
	classlike
	mapping *model.Join
	key     *model.Key
	not     bool
}

func newJoinPart(entity reflect.Type, table string) *JoinPart {
	j := &JoinPart{
		classlike: newClasslike(entity),
		mapping:   &model.Join{ContainingEntity: entity},
		key:       &model.Key{ContainingEntity: entity},
	}
	j.mapping.Table.SetDefault(table)
	return j
}

func (j *JoinPart) flag() bool {
	v := !j.not
	j.not = false
	return v
}

func (j *JoinPart) Not() *JoinPart {
	j.not = !j.not
	return j
}

func (j *JoinPart) Table(name string) *JoinPart {
	j.mapping.Table.Set(name)
	return j
}

func (j *JoinPart) Schema(name string) *JoinPart {
	j.mapping.Schema.Set(name)
	return j
}

func (j *JoinPart) Key(fn func(*KeyBuilder)) *JoinPart {
	fn(NewKeyBuilder(j.key))
	return j
}

func (j *JoinPart) KeyColumn(name string) *JoinPart {
	return j.Key(func(k *KeyBuilder) { k.Column(name) })
}

func (j *JoinPart) Optional() *JoinPart {
	j.mapping.Optional.Set(j.flag())
	return j
}

func (j *JoinPart) Inverse() *JoinPart {
	j.mapping.Inverse.Set(j.flag())
	return j
}

func (j *JoinPart) Fetch() FetchType[*JoinPart] {
	return FetchType[*JoinPart]{parent: j, set: j.mapping.Fetch.Set}
}

func (j *JoinPart) joinMapping() (*model.Join, error) {
	m := j.mapping
	m.Members = model.Members{}
	err := j.buildMembers(&m.Members)
	j.key.ReplaceDefaultColumns(model.DefaultColumn(model.EntityName(j.entity) + "_id"))
	m.Key = j.key
	return m, err
}

type StoredProcedurePart struct {
	mapping *model.StoredProcedure
}

func newStoredProcedurePart(element, query string) *StoredProcedurePart {
	return &StoredProcedurePart{mapping: &model.StoredProcedure{Element: element, Query: query}}
}

func (s *StoredProcedurePart) Check() StoredProcedureCheck {
	return StoredProcedureCheck{parent: s}
}

type StoredProcedureCheck struct {
	parent *StoredProcedurePart
}

func (c StoredProcedureCheck) None() *StoredProcedurePart {
	c.parent.mapping.Check.Set("none")
	return c.parent
}

func (c StoredProcedureCheck) RowCount() *StoredProcedurePart {
	c.parent.mapping.Check.Set("rowcount")
	return c.parent
}

func (c StoredProcedureCheck) Param() *StoredProcedurePart {
	c.parent.mapping.Check.Set("param")
	return c.parent
}
