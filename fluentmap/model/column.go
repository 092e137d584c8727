package model

import "github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"

// ColumnAttributes are the column settings a part can apply to all of its
// columns at once.
type ColumnAttributes struct {
	Length    attr.Attr[int]
	NotNull   attr.Attr[bool]
	Unique    attr.Attr[bool]
	UniqueKey attr.Attr[string]
	Index     attr.Attr[string]
	SqlType   attr.Attr[string]
	Check     attr.Attr[string]
	Default   attr.Attr[string]
	Precision attr.Attr[int]
	Scale     attr.Attr[int]
}

func (c *ColumnAttributes) MergeAttributes(other ColumnAttributes) {
	c.Length.Merge(other.Length)
	c.NotNull.Merge(other.NotNull)
	c.Unique.Merge(other.Unique)
	c.UniqueKey.Merge(other.UniqueKey)
	c.Index.Merge(other.Index)
	c.SqlType.Merge(other.SqlType)
	c.Check.Merge(other.Check)
	c.Default.Merge(other.Default)
	c.Precision.Merge(other.Precision)
	c.Scale.Merge(other.Scale)
}

type Column struct {
	Name attr.Attr[string]
	ColumnAttributes
}

func NewColumn(name string) *Column {
	c := &Column{}
	c.Name.Set(name)
	return c
}

// DefaultColumn creates a column whose name is only a default, so
// conventions may still rename it.
func DefaultColumn(name string) *Column {
	c := &Column{}
	c.Name.SetDefault(name)
	return c
}

func (c *Column) Accept(v Visitor) error {
	return v.VisitColumn(c)
}

// Columns keeps default columns apart from explicitly added ones. As soon as
// one explicit column exists the defaults are no longer reported.
type Columns struct {
	defaults []*Column
	explicit []*Column
}

func (c *Columns) AddColumn(col *Column) {
	c.explicit = append(c.explicit, col)
}

func (c *Columns) AddDefaultColumn(col *Column) {
	c.defaults = append(c.defaults, col)
}

// ReplaceDefaultColumns swaps the default layer, leaving explicit columns alone.
func (c *Columns) ReplaceDefaultColumns(cols ...*Column) {
	c.defaults = cols
}

func (c *Columns) ClearColumns() {
	c.defaults = nil
	c.explicit = nil
}

func (c *Columns) HasExplicitColumns() bool {
	return len(c.explicit) > 0
}

func (c *Columns) ColumnList() []*Column {
	if len(c.explicit) > 0 {
		return c.explicit
	}
	return c.defaults
}

func (c *Columns) ColumnNames() []string {
	cols := c.ColumnList()
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name.Get())
	}
	return names
}

func (c *Columns) IsEmpty() bool {
	return len(c.ColumnList()) == 0
}

type ColumnHolder interface {
	AddColumn(*Column)
	AddDefaultColumn(*Column)
	ClearColumns()
	ColumnList() []*Column
}
