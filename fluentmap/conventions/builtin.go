package conventions

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type tableName struct {
	name string
	fn   func(reflect.Type) string
}

func (t tableName) Name() string { return t.name }

func (t tableName) ApplyClass(c *model.Class) {
	if name := t.fn(c.Type); name != "" {
		c.Table.SetDefault(name)
	}
}

// TableName derives class tables from the entity type.
func TableName(fn func(reflect.Type) string) ClassConvention {
	return tableName{name: "table-name", fn: fn}
}

// PluralizedTableNames names tables after the plural of the entity name:
// Post -> Posts, Category -> Categories.
func PluralizedTableNames() ClassConvention {
	return tableName{name: "pluralized-table-names", fn: func(t reflect.Type) string {
		return inflection.Plural(model.EntityName(t))
	}}
}

type foreignKeySuffix struct {
	suffix string
}

// ForeignKeySuffix names foreign key columns Entity+suffix instead of
// Entity_id. It covers many-to-one columns, collection keys, entity
// indexes, many-to-many columns and join keys.
func ForeignKeySuffix(suffix string) Convention {
	return foreignKeySuffix{suffix: suffix}
}

func (f foreignKeySuffix) Name() string { return "foreign-key-suffix" }

func (f foreignKeySuffix) rename(cols []*model.Column, base string) {
	if base == "" {
		return
	}
	for _, col := range cols {
		if !col.Name.IsSpecified() {
			col.Name.SetDefault(base + f.suffix)
		}
	}
}

func (f foreignKeySuffix) ApplyReference(r *model.ManyToOne) {
	f.rename(r.ColumnList(), r.Name.Get())
}

func (f foreignKeySuffix) ApplyCollection(c *model.Collection) {
	if c.Key != nil {
		f.rename(c.Key.ColumnList(), model.EntityName(c.ContainingEntity))
	}
	if c.Index != nil && c.Index.IsManyToMany {
		f.rename(c.Index.ColumnList(), model.EntityName(c.Index.Type.Get().Type))
	}
	if mtm, ok := c.Relationship.(*model.ManyToMany); ok {
		f.rename(mtm.ColumnList(), model.EntityName(mtm.ChildType))
	}
}

func (f foreignKeySuffix) ApplyClass(c *model.Class) {
	for _, j := range c.Joins {
		if j.Key != nil {
			f.rename(j.Key.ColumnList(), model.EntityName(c.Type))
		}
	}
}

type defaultLazy bool

// DefaultLazy sets the lazy flag of classes that do not set one.
func DefaultLazy(lazy bool) ClassConvention {
	return defaultLazy(lazy)
}

func (d defaultLazy) Name() string { return "default-lazy" }

func (d defaultLazy) ApplyClass(c *model.Class) {
	c.Lazy.SetDefault(bool(d))
}

type defaultCascade string

// DefaultCascade sets the cascade of references and collections.
func DefaultCascade(cascade string) Convention {
	return defaultCascade(cascade)
}

func (d defaultCascade) Name() string { return "default-cascade" }

func (d defaultCascade) ApplyReference(r *model.ManyToOne) {
	r.Cascade.SetDefault(string(d))
}

func (d defaultCascade) ApplyCollection(c *model.Collection) {
	c.Cascade.SetDefault(string(d))
}

type defaultAccess string

// DefaultAccess sets the access strategy of properties, references and
// collections.
func DefaultAccess(access string) Convention {
	return defaultAccess(access)
}

func (d defaultAccess) Name() string { return "default-access" }

func (d defaultAccess) ApplyProperty(p *model.Property) {
	p.Access.SetDefault(string(d))
}

func (d defaultAccess) ApplyReference(r *model.ManyToOne) {
	r.Access.SetDefault(string(d))
}

func (d defaultAccess) ApplyCollection(c *model.Collection) {
	c.Access.SetDefault(string(d))
}

type columnName struct {
	name string
	fn   func(string) string
}

func (c columnName) Name() string { return c.name }

func (c columnName) ApplyColumn(col *model.Column) {
	if col.Name.IsSpecified() {
		return
	}
	col.Name.SetDefault(c.fn(col.Name.Get()))
}

// ColumnName rewrites every column name that was not given explicitly.
func ColumnName(fn func(string) string) ColumnConvention {
	return columnName{name: "column-name", fn: fn}
}

func SnakeCaseColumns() ColumnConvention {
	return columnName{name: "snake-case-columns", fn: SnakeCase}
}

// SnakeCase turns PostId into post_id. Runs of capitals are kept together,
// so HTTPStatus becomes http_status.
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && runes[i-1] != '_' {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

type collectionTable struct {
	fn func(*model.Collection) string
}

// CollectionTable names collection tables. Returning "" keeps the current
// default.
func CollectionTable(fn func(*model.Collection) string) CollectionConvention {
	return collectionTable{fn: fn}
}

func (c collectionTable) Name() string { return "collection-table" }

func (c collectionTable) ApplyCollection(coll *model.Collection) {
	if name := c.fn(coll); name != "" {
		coll.Table.SetDefault(name)
	}
}
