// Package schemacheck compares the tables and columns a set of mapping
// documents expects with those of a live database.
package schemacheck

import (
	"slices"
	"sort"
	"strings"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// Table is a table the mappings write to, with the columns they use.
// Schema is empty when the mappings leave it to the database default.
type Table struct {
	Schema  string
	Name    string
	Columns []string
}

func (t Table) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

type tableKey struct {
	schema, name string
}

type expectation struct {
	tables  map[tableKey]map[string]bool
	classes map[string]*model.Class
	schemas map[*model.Class]string
}

func (e *expectation) add(schema, table string, cols ...[]string) {
	if table == "" {
		return
	}
	k := tableKey{schema, table}
	set, ok := e.tables[k]
	if !ok {
		set = make(map[string]bool)
		e.tables[k] = set
	}
	for _, names := range cols {
		for _, name := range names {
			if name != "" {
				set[name] = true
			}
		}
	}
}

// Expect lists the tables used by docs, sorted by qualified name.
func Expect(docs ...*model.HibernateMapping) []Table {
	e := &expectation{
		tables:  make(map[tableKey]map[string]bool),
		classes: make(map[string]*model.Class),
		schemas: make(map[*model.Class]string),
	}
	for _, doc := range docs {
		for _, c := range doc.Classes {
			e.classes[c.Name.Get()] = c
			e.schemas[c] = c.Schema.GetOr(doc.Schema.Get())
		}
	}
	for _, doc := range docs {
		for _, c := range doc.Classes {
			e.class(c)
		}
	}

	tables := make([]Table, 0, len(e.tables))
	for k, set := range e.tables {
		cols := make([]string, 0, len(set))
		for col := range set {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		tables = append(tables, Table{Schema: k.schema, Name: k.name, Columns: cols})
	}
	slices.SortFunc(tables, func(a, b Table) int {
		return strings.Compare(a.QualifiedName(), b.QualifiedName())
	})
	return tables
}

func (e *expectation) class(c *model.Class) {
	schema := e.schemas[c]
	table := c.Table.Get()
	e.add(schema, table)
	if c.Id != nil {
		e.add(schema, table, c.Id.ColumnNames())
	}
	if c.Version != nil {
		e.add(schema, table, c.Version.ColumnNames())
	}
	e.members(schema, table, &c.Members)
	for _, j := range c.Joins {
		js := j.Schema.GetOr(schema)
		if j.Key != nil {
			e.add(js, j.Table.Get(), j.Key.ColumnNames())
		}
		e.members(js, j.Table.Get(), &j.Members)
	}
}

func (e *expectation) members(schema, table string, m *model.Members) {
	for _, p := range m.Properties {
		e.add(schema, table, p.ColumnNames())
	}
	for _, r := range m.References {
		e.add(schema, table, r.ColumnNames())
	}
	for _, c := range m.Components {
		e.members(schema, table, &c.Members)
	}
	for _, d := range m.DynamicComponents {
		e.members(schema, table, &d.Members)
	}
	for _, c := range m.Collections {
		e.collection(schema, c)
	}
}

func (e *expectation) collection(schema string, c *model.Collection) {
	schema = c.Schema.GetOr(schema)
	table := c.Table.Get()
	if otm, ok := c.Relationship.(*model.OneToMany); ok {
		// the key lives in the child's table
		child, found := e.classes[otm.ChildClass().Name]
		if !found || c.Key == nil {
			return
		}
		e.add(e.schemas[child], child.Table.Get(), c.Key.ColumnNames())
		if c.Index != nil {
			e.add(e.schemas[child], child.Table.Get(), c.Index.ColumnNames())
		}
		return
	}
	if table == "" {
		return
	}
	if c.Key != nil {
		e.add(schema, table, c.Key.ColumnNames())
	}
	if c.Index != nil {
		e.add(schema, table, c.Index.ColumnNames())
	}
	if ci := c.CompositeIndex; ci != nil {
		for _, p := range ci.KeyProperties {
			e.add(schema, table, p.ColumnNames())
		}
		for _, r := range ci.KeyReferences {
			e.add(schema, table, r.ColumnNames())
		}
	}
	if c.Element != nil {
		e.add(schema, table, c.Element.ColumnNames())
	}
	if c.CompositeElement != nil {
		e.compositeElement(schema, table, c.CompositeElement)
	}
	if mtm, ok := c.Relationship.(*model.ManyToMany); ok {
		e.add(schema, table, mtm.ColumnNames())
	}
}

func (e *expectation) compositeElement(schema, table string, ce *model.CompositeElement) {
	for _, p := range ce.Properties {
		e.add(schema, table, p.ColumnNames())
	}
	for _, r := range ce.References {
		e.add(schema, table, r.ColumnNames())
	}
	for _, n := range ce.Nested {
		e.compositeElement(schema, table, n)
	}
}
