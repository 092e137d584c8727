package mapping

import (
	"reflect"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"syreclabs.com/go/faker"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/attr"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

func newPostMap() *ClassMap[Post] {
	cm := NewClassMap[Post]()
	cm.Id("Id")
	cm.Map("Title")
	cm.Map("Body")
	cm.References("Author")
	cm.HasMany("Comments")
	cm.HasManyToMany("Tags")
	cm.Version("Version")
	return cm
}

func TestClassMapDefaults(t *testing.T) {
	class, err := newPostMap().ClassMapping()
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeFor[Post](), class.Type)
	assert.Equal(t, model.TypeName(reflect.TypeFor[Post]()), class.Name.Get())
	assert.Equal(t, "Post", class.Table.Get())
	assert.False(t, class.Table.IsSpecified())
	assert.Equal(t, "Post", class.EntityName())

	require.NotNil(t, class.Id)
	assert.Equal(t, []string{"Id"}, class.Id.ColumnNames())
	assert.Equal(t, "identity", class.Id.Generator.Class.Get())
	assert.Equal(t, "Int64", class.Id.Type.Get().Name)

	require.NotNil(t, class.Version)
	assert.Equal(t, []string{"Version"}, class.Version.ColumnNames())

	require.Len(t, class.Properties, 2)
	title := class.Properties[0]
	assert.Equal(t, "Title", title.Name.Get())
	assert.Equal(t, []string{"Title"}, title.ColumnNames())
	assert.Equal(t, "String", title.Type.Get().Name)
	assert.False(t, title.ColumnList()[0].NotNull.HasValue())

	body := class.Properties[1]
	assert.Equal(t, attr.Default, body.ColumnList()[0].NotNull.State())
	assert.False(t, body.ColumnList()[0].NotNull.Get())

	require.Len(t, class.References, 1)
	assert.Equal(t, []string{"Author_id"}, class.References[0].ColumnNames())
	assert.Equal(t, reflect.TypeFor[User](), class.References[0].Class.Get().Type)

	require.Len(t, class.Collections, 2)
	comments := class.Collections[0]
	assert.Equal(t, model.Bag, comments.Kind.Get())
	assert.Equal(t, "Comments", comments.Name.Get())
	assert.Equal(t, []string{"Post_id"}, comments.Key.ColumnNames())
	otm, ok := comments.Relationship.(*model.OneToMany)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[Comment](), otm.Class.Get().Type)

	tags := class.Collections[1]
	assert.Equal(t, "PostToTag", tags.Table.Get())
	mtm, ok := tags.Relationship.(*model.ManyToMany)
	require.True(t, ok)
	assert.Equal(t, []string{"Tag_id"}, mtm.ColumnNames())
	assert.Equal(t, reflect.TypeFor[Post](), mtm.ParentType)
}

func TestClassMapExplicitWins(t *testing.T) {
	table := faker.Lorem().Word() + "_posts"
	titleColumn := faker.Lorem().Word() + "_title"
	authorColumn := faker.Lorem().Word() + "_author"

	cm := NewClassMap[Post]()
	cm.Table(table).Schema("blog").Not().LazyLoad().DynamicUpdate().BatchSize(25)
	cm.Id("Id").Column("post_id").GeneratedBy().Sequence("post_seq")
	cm.Map("Title", titleColumn).Length(200).Not().Nullable()
	cm.References("Author").Column(authorColumn)
	cm.HasMany("Comments").KeyColumn("parent_id").Inverse().AsSet()

	class, err := cm.ClassMapping()
	require.NoError(t, err)

	assert.Equal(t, table, class.Table.Get())
	assert.True(t, class.Table.IsSpecified())
	assert.Equal(t, "blog", class.Schema.Get())
	assert.False(t, class.Lazy.Get())
	assert.True(t, class.Lazy.IsSpecified())
	assert.True(t, class.DynamicUpdate.Get())
	assert.Equal(t, 25, class.BatchSize.Get())

	assert.Equal(t, []string{"post_id"}, class.Id.ColumnNames())
	assert.Equal(t, "sequence", class.Id.Generator.Class.Get())
	assert.Equal(t, []model.Param{{Name: "sequence", Value: "post_seq"}}, class.Id.Generator.Params)

	title := class.Properties[0]
	assert.Equal(t, []string{titleColumn}, title.ColumnNames())
	assert.Equal(t, 200, title.ColumnList()[0].Length.Get())
	assert.True(t, title.ColumnList()[0].NotNull.Get())

	assert.Equal(t, []string{authorColumn}, class.References[0].ColumnNames())

	comments := class.Collections[0]
	assert.Equal(t, model.Set, comments.Kind.Get())
	assert.True(t, comments.Inverse.Get())
	assert.Equal(t, []string{"parent_id"}, comments.Key.ColumnNames())
}

func TestClassMappingIsRepeatable(t *testing.T) {
	cm := newPostMap()
	first, err := cm.ClassMapping()
	require.NoError(t, err)
	firstColumns := first.Properties[0].ColumnNames()

	second, err := cm.ClassMapping()
	require.NoError(t, err)

	assert.Len(t, second.Properties, 2)
	assert.Len(t, second.Collections, 2)
	assert.Equal(t, firstColumns, second.Properties[0].ColumnNames())
	assert.Len(t, second.Collections[0].Key.ColumnList(), 1)
}

func TestClassMapCollectsMemberErrors(t *testing.T) {
	cm := NewClassMap[Post]()
	cm.Id("Id")
	cm.Map("Missing")
	cm.References("Nobody")
	cm.Map("Title")

	class, err := cm.ClassMapping()
	require.Error(t, err)
	assert.Nil(t, class)
	assert.ErrorIs(t, err, model.ErrMemberNotFound)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
}

func TestClassMapGeneratorDefaults(t *testing.T) {
	cm := NewClassMap[Blog]()
	cm.Id("Id")
	class, err := cm.ClassMapping()
	require.NoError(t, err)
	assert.Equal(t, "guid.comb", class.Id.Generator.Class.Get())
	assert.Equal(t, "Guid", class.Id.Type.Get().Name)
	assert.False(t, class.Id.Generator.Class.IsSpecified())
}

func TestClassMapCustomGenerator(t *testing.T) {
	cm := NewClassMap[Blog]()
	cm.Id("Id").GeneratedBy().Custom("my.Generator", map[string]string{"b": "2", "a": "1"})
	class, err := cm.ClassMapping()
	require.NoError(t, err)
	assert.Equal(t, "my.Generator", class.Id.Generator.Class.Get())
	assert.Equal(t, []model.Param{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}, class.Id.Generator.Params)
}

func TestClassMapAttributes(t *testing.T) {
	cm := NewClassMap[Post]()
	cm.Id("Id")
	cm.ReadOnly().SelectBeforeUpdate().Where("deleted = 0").Persister("custom")
	cm.Polymorphism().Explicit()
	cm.OptimisticLock().Dirty()
	cm.Cache().ReadWrite().Region("posts")
	cm.ApplyFilter("tenant", "tenant_id = :tenant")
	cm.SqlInsert("exec insert_post ?").Check().None()
	cm.SqlDelete("exec delete_post ?")
	cm.Defaults().DefaultAccess().Field().Not().DefaultLazy().Schema("blog")

	class, err := cm.ClassMapping()
	require.NoError(t, err)

	assert.False(t, class.Mutable.Get())
	assert.True(t, class.SelectBeforeUpdate.Get())
	assert.Equal(t, "deleted = 0", class.Where.Get())
	assert.Equal(t, "custom", class.Persister.Get())
	assert.Equal(t, "explicit", class.Polymorphism.Get())
	assert.Equal(t, "dirty", class.OptimisticLock.Get())
	require.NotNil(t, class.Cache)
	assert.Equal(t, "read-write", class.Cache.Usage.Get())
	assert.Equal(t, "posts", class.Cache.Region.Get())
	require.Len(t, class.Filters, 1)
	assert.Equal(t, "tenant", class.Filters[0].Name.Get())
	assert.Equal(t, "tenant_id = :tenant", class.Filters[0].Condition.Get())

	require.Len(t, class.StoredProcedures, 2)
	assert.Equal(t, "sql-insert", class.StoredProcedures[0].Element)
	assert.Equal(t, "none", class.StoredProcedures[0].Check.Get())
	assert.Equal(t, "sql-delete", class.StoredProcedures[1].Element)
	assert.Equal(t, "exec delete_post ?", class.StoredProcedures[1].Query)

	doc := cm.HibernateMapping()
	assert.Equal(t, "field", doc.DefaultAccess.Get())
	assert.False(t, doc.DefaultLazy.Get())
	assert.True(t, doc.DefaultLazy.IsSpecified())
	assert.Equal(t, "blog", doc.Schema.Get())
}

func TestClassMapComponent(t *testing.T) {
	cm := NewClassMap[User]()
	cm.Id("Id")
	cm.Component("Address", func(c *ComponentPart) {
		c.Map("Street")
		c.Map("City", "town")
	})

	class, err := cm.ClassMapping()
	require.NoError(t, err)
	require.Len(t, class.Components, 1)
	comp := class.Components[0]
	assert.Equal(t, "Address", comp.Name.Get())
	assert.Equal(t, reflect.TypeFor[Address](), comp.Class.Get().Type)
	require.Len(t, comp.Properties, 2)
	assert.Equal(t, []string{"Street"}, comp.Properties[0].ColumnNames())
	assert.Equal(t, []string{"town"}, comp.Properties[1].ColumnNames())
}

func TestClassMapComponentMemberError(t *testing.T) {
	cm := NewClassMap[User]()
	cm.Id("Id")
	cm.Component("Address", func(c *ComponentPart) {
		c.Map("Zip")
	})

	_, err := cm.ClassMapping()
	assert.ErrorIs(t, err, model.ErrMemberNotFound)
}

func TestClassMapHasOne(t *testing.T) {
	cm := NewClassMap[User]()
	cm.Id("Id")
	cm.HasOne("Profile").Constrained().Cascade().All()

	class, err := cm.ClassMapping()
	require.NoError(t, err)
	require.Len(t, class.OneToOnes, 1)
	one := class.OneToOnes[0]
	assert.Equal(t, "Profile", one.Name.Get())
	assert.True(t, one.Constrained.Get())
	assert.Equal(t, "all", one.Cascade.Get())
	assert.Equal(t, reflect.TypeFor[Profile](), one.Class.Get().Type)
}

func TestClassMapJoin(t *testing.T) {
	cm := NewClassMap[User]()
	cm.Id("Id")
	cm.Join("UserDetails", func(j *JoinPart) {
		j.Map("Name")
		j.Optional().Fetch().Select()
	})

	class, err := cm.ClassMapping()
	require.NoError(t, err)
	require.Len(t, class.Joins, 1)
	join := class.Joins[0]
	assert.Equal(t, "UserDetails", join.Table.Get())
	assert.True(t, join.Optional.Get())
	assert.Equal(t, "select", join.Fetch.Get())
	assert.Equal(t, []string{"User_id"}, join.Key.ColumnNames())
	require.Len(t, join.Properties, 1)
	assert.Equal(t, "Name", join.Properties[0].Name.Get())
}

func TestClassMapDynamicComponent(t *testing.T) {
	cm := NewClassMap[EntityWithDictionaries]()
	cm.Id("Id")
	cm.DynamicComponent("Extra", func(d *DynamicComponentPart) {
		d.Map("Color", reflect.TypeFor[string]()).Length(20)
		d.Map("Size", reflect.TypeFor[int]())
	})

	class, err := cm.ClassMapping()
	require.NoError(t, err)
	require.Len(t, class.DynamicComponents, 1)
	dyn := class.DynamicComponents[0]
	assert.Equal(t, "Extra", dyn.Name.Get())
	require.Len(t, dyn.Properties, 2)
	assert.Equal(t, []string{"Color"}, dyn.Properties[0].ColumnNames())
	assert.Equal(t, "Int64", dyn.Properties[1].Type.Get().Name)
}

func TestClassMapDynamicComponentOnSlice(t *testing.T) {
	cm := NewClassMap[EntityWithDictionaries]()
	cm.Id("Id")
	cm.DynamicComponent("Tags", func(d *DynamicComponentPart) {})

	_, err := cm.ClassMapping()
	assert.ErrorIs(t, err, ErrNotDictionary)
}

func TestPassThroughProvider(t *testing.T) {
	class := &model.Class{Type: reflect.TypeFor[Tag]()}
	p := NewPassThroughProvider(class)

	got, err := p.ClassMapping()
	require.NoError(t, err)
	assert.Same(t, class, got)
	assert.Equal(t, reflect.TypeFor[Tag](), p.EntityType())
	assert.NotNil(t, p.HibernateMapping())
}

func TestClassMappingReturnsNewRecords(t *testing.T) {
	cm := newPostMap()
	first, err := cm.ClassMapping()
	require.NoError(t, err)

	t.Run("later builder calls do not reach a built class", func(t *testing.T) {
		cm.Table("posts")
		cm.Schema("blog")

		second, err := cm.ClassMapping()
		require.NoError(t, err)
		assert.Equal(t, "posts", second.Table.Get())
		assert.Equal(t, "blog", second.Schema.Get())
		assert.Equal(t, "Post", first.Table.Get())
		assert.False(t, first.Schema.HasValue())
	})

	t.Run("changes to a built class do not reach the builder", func(t *testing.T) {
		first.Lazy.SetDefault(false)
		first.Collections[0].Cascade.SetDefault("all")
		first.Properties[0].ColumnList()[0].Name.SetDefault("title")

		again, err := cm.ClassMapping()
		require.NoError(t, err)
		assert.False(t, again.Lazy.HasValue())
		assert.False(t, again.Collections[0].Cascade.HasValue())
		assert.Equal(t, "Title", again.Properties[0].ColumnList()[0].Name.Get())
	})
}
