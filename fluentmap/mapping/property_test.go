package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

func buildUserProperty(t *testing.T, fn func(cm *ClassMap[User])) *model.Property {
	t.Helper()
	cm := NewClassMap[User]()
	cm.Id("Id")
	fn(cm)
	class, err := cm.ClassMapping()
	require.NoError(t, err)
	require.Len(t, class.Properties, 1)
	return class.Properties[0]
}

func TestPropertyFormulaClearsColumns(t *testing.T) {
	p := buildUserProperty(t, func(cm *ClassMap[User]) {
		cm.Map("Name", "name").Formula("upper(name)")
	})

	assert.Equal(t, "upper(name)", p.Formula.Get())
	assert.True(t, p.IsEmpty())
}

func TestPropertyColumnAttributesApplyToEveryColumn(t *testing.T) {
	p := buildUserProperty(t, func(cm *ClassMap[User]) {
		cm.Map("Name").
			Columns().Add("first_name", "last_name").
			Length(100).
			Unique().
			UniqueKey("uk_name").
			Index("ix_name").
			CustomSqlType("varchar(100)").
			Check("length(first_name) > 0").
			Default("''").
			Precision(3).
			Scale(1)
	})

	require.Len(t, p.ColumnList(), 2)
	for _, col := range p.ColumnList() {
		assert.Equal(t, 100, col.Length.Get())
		assert.True(t, col.Unique.Get())
		assert.Equal(t, "uk_name", col.UniqueKey.Get())
		assert.Equal(t, "ix_name", col.Index.Get())
		assert.Equal(t, "varchar(100)", col.SqlType.Get())
		assert.Equal(t, "length(first_name) > 0", col.Check.Get())
		assert.Equal(t, "''", col.Default.Get())
		assert.Equal(t, 3, col.Precision.Get())
		assert.Equal(t, 1, col.Scale.Get())
	}
}

func TestPropertyColumnSettingsCombineWithPartSettings(t *testing.T) {
	p := buildUserProperty(t, func(cm *ClassMap[User]) {
		cm.Map("Name").
			Columns().AddWith("name", func(c *ColumnPart) {
				c.Not().Nullable().Check("name <> ''")
			}).
			Length(255)
	})

	col := p.ColumnList()[0]
	assert.Equal(t, "name", col.Name.Get())
	assert.Equal(t, 255, col.Length.Get())
	assert.True(t, col.NotNull.Get())
	assert.Equal(t, "name <> ''", col.Check.Get())
}

func TestPropertyNullableDefaults(t *testing.T) {
	t.Run("pointer defaults to nullable", func(t *testing.T) {
		p := buildUserProperty(t, func(cm *ClassMap[User]) {
			cm.Map("Email")
		})
		col := p.ColumnList()[0]
		assert.True(t, col.NotNull.HasValue())
		assert.False(t, col.NotNull.IsSpecified())
		assert.False(t, col.NotNull.Get())
	})

	t.Run("explicit not-null on a pointer", func(t *testing.T) {
		p := buildUserProperty(t, func(cm *ClassMap[User]) {
			cm.Map("Email").Not().Nullable()
		})
		assert.True(t, p.ColumnList()[0].NotNull.Get())
	})
}

func TestPropertyColumnReplacesDefault(t *testing.T) {
	p := buildUserProperty(t, func(cm *ClassMap[User]) {
		cm.Map("Name").Column("a").Column("b")
	})

	assert.Equal(t, []string{"b"}, p.ColumnNames())
}

func TestPropertyAttributes(t *testing.T) {
	p := buildUserProperty(t, func(cm *ClassMap[User]) {
		cm.Map("Name").
			ReadOnly().
			Not().LazyLoad().
			OptimisticLock().
			Access().ReadOnlyPropertyThroughCamelCaseField(MUnderscore).
			Generated().Insert().
			CustomType("AnsiString")
	})

	assert.False(t, p.Insert.Get())
	assert.False(t, p.Update.Get())
	assert.False(t, p.Lazy.Get())
	assert.True(t, p.OptimisticLock.Get())
	assert.Equal(t, "nosetter.camelcase-m-underscore", p.Access.Get())
	assert.Equal(t, "insert", p.Generated.Get())
	assert.Equal(t, "AnsiString", p.Type.Get().Name)
	assert.Nil(t, p.Type.Get().Type)
}

func TestPropertyCustomTypeFor(t *testing.T) {
	p := buildUserProperty(t, func(cm *ClassMap[User]) {
		cm.Map("Name").CustomTypeFor(reflect.TypeFor[[]byte]())
	})

	assert.Equal(t, "Binary", p.Type.Get().Name)
}

func TestReferenceAttributes(t *testing.T) {
	cm := NewClassMap[Post]()
	cm.Id("Id")
	cm.References("Author").
		Not().LazyLoad().
		Cascade().SaveUpdate().
		Fetch().Join().
		NotFound().Exception().
		ForeignKey("fk_author").
		PropertyRef("Name").
		Not().Nullable().
		Unique()

	class, err := cm.ClassMapping()
	require.NoError(t, err)
	r := class.References[0]
	assert.Equal(t, "false", r.Lazy.Get())
	assert.Equal(t, "save-update", r.Cascade.Get())
	assert.Equal(t, "join", r.Fetch.Get())
	assert.Equal(t, "exception", r.NotFound.Get())
	assert.Equal(t, "fk_author", r.ForeignKey.Get())
	assert.Equal(t, "Name", r.PropertyRef.Get())
	col := r.ColumnList()[0]
	assert.Equal(t, "Author_id", col.Name.Get())
	assert.True(t, col.NotNull.Get())
	assert.True(t, col.Unique.Get())
}

func TestReferenceFormula(t *testing.T) {
	cm := NewClassMap[Post]()
	cm.Id("Id")
	cm.References("Author").Formula("(select 1)")

	class, err := cm.ClassMapping()
	require.NoError(t, err)
	assert.True(t, class.References[0].IsEmpty())
}

func TestVersionDefaults(t *testing.T) {
	cm := NewClassMap[Post]()
	cm.Id("Id")
	cm.Version("Version").Generated().Always().UnsavedValue("0")

	class, err := cm.ClassMapping()
	require.NoError(t, err)
	v := class.Version
	assert.Equal(t, "Version", v.Name.Get())
	assert.Equal(t, []string{"Version"}, v.ColumnNames())
	assert.Equal(t, "Int64", v.Type.Get().Name)
	assert.Equal(t, "always", v.Generated.Get())
	assert.Equal(t, "0", v.UnsavedValue.Get())
}
