package model

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Address struct {
	Street string
}

type Author struct {
	Id       int
	Name     string
	Nickname *string
	Home     Address
	Posts    []*Post
	tags     []string
}

func (a *Author) GetTags() []string {
	return a.tags
}

func (a *Author) Rename(name string) {
	a.Name = name
}

type Post struct {
	Id     uuid.UUID
	Author *Author
}

type Audited struct {
	CreatedAt time.Time
}

type Invoice struct {
	Audited
	Number ulid.ULID
}

type Status int

func TestTypeName(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		name string
	}{
		{reflect.TypeFor[string](), "String"},
		{reflect.TypeFor[bool](), "Boolean"},
		{reflect.TypeFor[int](), "Int64"},
		{reflect.TypeFor[int32](), "Int32"},
		{reflect.TypeFor[int8](), "SByte"},
		{reflect.TypeFor[uint8](), "Byte"},
		{reflect.TypeFor[float32](), "Single"},
		{reflect.TypeFor[float64](), "Double"},
		{reflect.TypeFor[*string](), "String"},
		{reflect.TypeFor[time.Time](), "DateTime"},
		{reflect.TypeFor[time.Duration](), "TimeSpan"},
		{reflect.TypeFor[[]byte](), "Binary"},
		{reflect.TypeFor[uuid.UUID](), "Guid"},
		{reflect.TypeFor[ulid.ULID](), "AnsiString"},
		{reflect.TypeFor[Status](), "model.Status"},
		{reflect.TypeFor[*Author](), "model.Author"},
	}
	for _, c := range cases {
		t.Run(c.typ.String(), func(t *testing.T) {
			assert.Equal(t, c.name, TypeName(c.typ))
		})
	}
}

func TestIsSimpleType(t *testing.T) {
	assert.True(t, IsSimpleType(reflect.TypeFor[string]()))
	assert.True(t, IsSimpleType(reflect.TypeFor[*int]()))
	assert.True(t, IsSimpleType(reflect.TypeFor[Status]()))
	assert.True(t, IsSimpleType(reflect.TypeFor[time.Time]()))
	assert.True(t, IsSimpleType(reflect.TypeFor[uuid.UUID]()))
	assert.False(t, IsSimpleType(reflect.TypeFor[Author]()))
	assert.False(t, IsSimpleType(reflect.TypeFor[*Post]()))
	assert.False(t, IsSimpleType(reflect.TypeFor[[]string]()))
	assert.False(t, IsSimpleType(reflect.TypeFor[map[string]int]()))
}

func TestTypeReference(t *testing.T) {
	ref := TypeReferenceOf[*Author]()
	assert.Equal(t, "model.Author", ref.String())
	assert.Equal(t, reflect.TypeFor[Author](), ref.Type)
	assert.True(t, ref.Equal(NewTypeReference(reflect.TypeFor[Author]())))
	assert.True(t, TypeReferenceByName("String").Equal(TypeReferenceOf[string]()))
	assert.False(t, ref.Equal(TypeReferenceOf[Post]()))
	assert.True(t, TypeReference{}.IsEmpty())
}

func TestMemberOf(t *testing.T) {
	authorType := reflect.TypeFor[Author]()

	t.Run("field", func(t *testing.T) {
		m, err := MemberOf(authorType, "Name")
		require.NoError(t, err)
		assert.Equal(t, FieldMember, m.Kind)
		assert.Equal(t, reflect.TypeFor[string](), m.Type)
	})

	t.Run("pointer entity", func(t *testing.T) {
		m, err := MemberOf(reflect.TypeFor[*Author](), "Nickname")
		require.NoError(t, err)
		assert.True(t, IsNullable(m.Type))
	})

	t.Run("promoted field", func(t *testing.T) {
		m, err := MemberOf(reflect.TypeFor[Invoice](), "CreatedAt")
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[time.Time](), m.Type)
	})

	t.Run("accessor method", func(t *testing.T) {
		m, err := MemberOf(authorType, "GetTags")
		require.NoError(t, err)
		assert.True(t, m.IsMethod())
		assert.Equal(t, reflect.TypeFor[[]string](), m.Type)
		assert.Equal(t, "tags", DefaultCollectionName(m))
	})

	t.Run("method with arguments is not a member", func(t *testing.T) {
		_, err := MemberOf(authorType, "Rename")
		assert.True(t, errors.Is(err, ErrMemberNotFound))
	})

	t.Run("unexported field", func(t *testing.T) {
		_, err := MemberOf(authorType, "tags")
		assert.True(t, errors.Is(err, ErrMemberNotFound))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := MemberOf(authorType, "Missing")
		assert.ErrorIs(t, err, ErrMemberNotFound)
		assert.Contains(t, err.Error(), "Author.Missing")
	})
}

func TestDefaultCollectionName(t *testing.T) {
	assert.Equal(t, "Posts", DefaultCollectionName(Member{Name: "Posts"}))
	assert.Equal(t, "Get", DefaultCollectionName(Member{Name: "Get", Kind: MethodMember}))
	assert.Equal(t, "GetPosts", DefaultCollectionName(Member{Name: "GetPosts"}))
}

func TestColumns(t *testing.T) {
	t.Run("defaults are reported until an explicit column arrives", func(t *testing.T) {
		var cols Columns
		cols.AddDefaultColumn(NewColumn("Name"))
		assert.Equal(t, []string{"Name"}, cols.ColumnNames())

		cols.AddColumn(NewColumn("full_name"))
		assert.Equal(t, []string{"full_name"}, cols.ColumnNames())
		assert.True(t, cols.HasExplicitColumns())

		cols.AddDefaultColumn(NewColumn("Other"))
		assert.Equal(t, []string{"full_name"}, cols.ColumnNames())
	})

	t.Run("replace defaults keeps explicit columns", func(t *testing.T) {
		var cols Columns
		cols.AddColumn(NewColumn("a"))
		cols.ReplaceDefaultColumns(NewColumn("b"))
		assert.Equal(t, []string{"a"}, cols.ColumnNames())
	})

	t.Run("clear", func(t *testing.T) {
		var cols Columns
		cols.AddDefaultColumn(NewColumn("a"))
		cols.AddColumn(NewColumn("b"))
		cols.ClearColumns()
		assert.True(t, cols.IsEmpty())
	})
}

func TestColumnMergeAttributes(t *testing.T) {
	col := NewColumn("Title")
	col.Length.SetDefault(255)
	col.NotNull.Set(false)

	var attrs ColumnAttributes
	attrs.Length.Set(100)
	attrs.Unique.Set(true)
	col.MergeAttributes(attrs)

	assert.Equal(t, 100, col.Length.Get())
	assert.True(t, col.Unique.Get())
	assert.True(t, col.NotNull.IsSpecified())
	assert.False(t, col.NotNull.Get())
}

type recordingVisitor struct {
	BaseVisitor
	visited []string
	skip    bool
}

func (v *recordingVisitor) VisitHibernateMapping(*HibernateMapping) error {
	v.visited = append(v.visited, "hibernate-mapping")
	return nil
}

func (v *recordingVisitor) VisitClass(c *Class) error {
	v.visited = append(v.visited, "class:"+c.Name.Get())
	return nil
}

func (v *recordingVisitor) VisitId(*Id) error {
	v.visited = append(v.visited, "id")
	return nil
}

func (v *recordingVisitor) VisitProperty(p *Property) error {
	v.visited = append(v.visited, "property:"+p.Name.Get())
	return nil
}

func (v *recordingVisitor) VisitColumn(c *Column) error {
	v.visited = append(v.visited, "column:"+c.Name.Get())
	return nil
}

func (v *recordingVisitor) VisitCollection(c *Collection) error {
	v.visited = append(v.visited, "collection:"+c.Name.Get())
	if v.skip {
		return ErrSkipChildren
	}
	return nil
}

func (v *recordingVisitor) VisitKey(*Key) error {
	v.visited = append(v.visited, "key")
	return nil
}

func (v *recordingVisitor) VisitOneToMany(*OneToMany) error {
	v.visited = append(v.visited, "one-to-many")
	return nil
}

func sampleDocument() *HibernateMapping {
	id := &Id{}
	id.Name.Set("Id")
	id.AddDefaultColumn(NewColumn("Id"))

	name := &Property{}
	name.Name.Set("Name")
	name.AddDefaultColumn(NewColumn("Name"))

	key := &Key{}
	key.AddDefaultColumn(NewColumn("Author_id"))
	posts := &Collection{Key: key, Relationship: &OneToMany{}}
	posts.Name.Set("Posts")

	class := &Class{Id: id}
	class.Name.Set("Author")
	class.Properties = append(class.Properties, name)
	class.Collections = append(class.Collections, posts)

	doc := &HibernateMapping{}
	doc.AddClass(class)
	return doc
}

func TestWalk(t *testing.T) {
	t.Run("pre-order", func(t *testing.T) {
		v := &recordingVisitor{}
		require.NoError(t, Walk(v, sampleDocument()))
		assert.Equal(t, []string{
			"hibernate-mapping",
			"class:Author",
			"id",
			"column:Id",
			"property:Name",
			"column:Name",
			"collection:Posts",
			"key",
			"column:Author_id",
			"one-to-many",
		}, v.visited)
	})

	t.Run("skip children", func(t *testing.T) {
		v := &recordingVisitor{skip: true}
		require.NoError(t, Walk(v, sampleDocument()))
		assert.Equal(t, "collection:Posts", v.visited[len(v.visited)-1])
	})

	t.Run("error stops the walk", func(t *testing.T) {
		boom := errors.New("boom")
		v := &failingVisitor{err: boom}
		err := Walk(v, sampleDocument())
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, v.calls)
	})
}

type failingVisitor struct {
	BaseVisitor
	err   error
	calls int
}

func (v *failingVisitor) VisitProperty(*Property) error {
	v.calls++
	return v.err
}

func TestClassEntityName(t *testing.T) {
	c := &Class{Type: reflect.TypeFor[Author]()}
	assert.Equal(t, "Author", c.EntityName())

	named := &Class{}
	named.Name.Set("Legacy")
	assert.Equal(t, "Legacy", named.EntityName())

	qualified := &Class{}
	qualified.Name.Set("billing.Invoice")
	assert.Equal(t, "Invoice", qualified.EntityName())
}

func TestCollectionKindIsIndexed(t *testing.T) {
	assert.False(t, Bag.IsIndexed())
	assert.False(t, Set.IsIndexed())
	assert.True(t, List.IsIndexed())
	assert.True(t, Array.IsIndexed())
	assert.True(t, Map.IsIndexed())
}

func TestClassClone(t *testing.T) {
	class := &Class{}
	class.Name.Set("shop.Order")
	class.Id = &Id{Generator: &Generator{Params: []Param{{Name: "sequence", Value: "order_seq"}}}}
	class.Id.AddColumn(NewColumn("order_id"))
	prop := &Property{}
	prop.AddDefaultColumn(DefaultColumn("Total"))
	class.Properties = append(class.Properties, prop)
	coll := &Collection{Key: &Key{}, Relationship: &OneToMany{}}
	coll.Key.AddDefaultColumn(DefaultColumn("Order_id"))
	class.Collections = append(class.Collections, coll)

	cp := class.Clone()
	cp.Name.Set("shop.Invoice")
	cp.Id.Generator.Params[0].Value = "invoice_seq"
	cp.Id.ColumnList()[0].Name.Set("invoice_id")
	cp.Properties[0].ColumnList()[0].Name.SetDefault("total")
	cp.Collections[0].Key.ColumnList()[0].Name.SetDefault("order_ref")
	cp.Collections[0].Relationship.(*OneToMany).NotFound.Set("ignore")

	assert.Equal(t, "shop.Order", class.Name.Get())
	assert.Equal(t, "order_seq", class.Id.Generator.Params[0].Value)
	assert.Equal(t, []string{"order_id"}, class.Id.ColumnNames())
	assert.Equal(t, []string{"Total"}, class.Properties[0].ColumnNames())
	assert.Equal(t, []string{"Order_id"}, class.Collections[0].Key.ColumnNames())
	assert.False(t, class.Collections[0].Relationship.(*OneToMany).NotFound.HasValue())
	assert.Nil(t, (*Class)(nil).Clone())
}
