package mapping

import "github.com/krew-solutions/fluent-mapping-go/fluentmap/model"

// Columns edits the explicit columns of a mapping and returns to the part
// it came from.
type Columns[P any] struct {
	parent P
	holder model.ColumnHolder
}

func newColumns[P any](parent P, holder model.ColumnHolder) *Columns[P] {
	return &Columns[P]{parent: parent, holder: holder}
}

func (c *Columns[P]) Add(names ...string) P {
	for _, name := range names {
		c.holder.AddColumn(model.NewColumn(name))
	}
	return c.parent
}

// AddWith adds one column and lets fn configure it.
func (c *Columns[P]) AddWith(name string, fn func(*ColumnPart)) P {
	col := model.NewColumn(name)
	fn(&ColumnPart{mapping: col})
	c.holder.AddColumn(col)
	return c.parent
}

func (c *Columns[P]) AddColumn(col *model.Column) P {
	c.holder.AddColumn(col)
	return c.parent
}

func (c *Columns[P]) Clear() P {
	c.holder.ClearColumns()
	return c.parent
}

func (c *Columns[P]) Count() int {
	return len(c.holder.ColumnList())
}

type ColumnPart struct {
	mapping *model.Column
	not     bool
}

func (c *ColumnPart) flag() bool {
	v := !c.not
	c.not = false
	return v
}

func (c *ColumnPart) Not() *ColumnPart {
	c.not = !c.not
	return c
}

func (c *ColumnPart) Name(name string) *ColumnPart {
	c.mapping.Name.Set(name)
	return c
}

func (c *ColumnPart) Length(length int) *ColumnPart {
	c.mapping.Length.Set(length)
	return c
}

func (c *ColumnPart) Nullable() *ColumnPart {
	c.mapping.NotNull.Set(!c.flag())
	return c
}

func (c *ColumnPart) Unique() *ColumnPart {
	c.mapping.Unique.Set(c.flag())
	return c
}

func (c *ColumnPart) UniqueKey(key string) *ColumnPart {
	c.mapping.UniqueKey.Set(key)
	return c
}

func (c *ColumnPart) Index(index string) *ColumnPart {
	c.mapping.Index.Set(index)
	return c
}

func (c *ColumnPart) SqlType(sqlType string) *ColumnPart {
	c.mapping.SqlType.Set(sqlType)
	return c
}

func (c *ColumnPart) Check(constraint string) *ColumnPart {
	c.mapping.Check.Set(constraint)
	return c
}

func (c *ColumnPart) Default(value string) *ColumnPart {
	c.mapping.Default.Set(value)
	return c
}

func (c *ColumnPart) Precision(precision int) *ColumnPart {
	c.mapping.Precision.Set(precision)
	return c
}

func (c *ColumnPart) Scale(scale int) *ColumnPart {
	c.mapping.Scale.Set(scale)
	return c
}
