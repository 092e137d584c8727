package schemacheck

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/icrowley/fake"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/mapping"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/persistence"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/utils/testutils"
)

type Address struct {
	Street string
	City   string
}

type Publisher struct {
	Id      int64
	Name    string
	Address Address
	Books   []*Book
	Phones  map[string]string
}

type Book struct {
	Id        int64
	Title     string
	Publisher *Publisher
	Version   int
}

func buildDocuments(t *testing.T, fn ...func(*mapping.ClassMap[Publisher])) []*model.HibernateMapping {
	t.Helper()
	publisher := mapping.NewClassMap[Publisher]()
	publisher.Id("Id")
	publisher.Map("Name")
	publisher.Component("Address", func(c *mapping.ComponentPart) {
		c.Map("Street")
		c.Map("City")
	})
	publisher.HasMany("Books")
	publisher.HasManyMap("Phones")
	for _, f := range fn {
		f(publisher)
	}

	book := mapping.NewClassMap[Book]()
	book.Id("Id")
	book.Map("Title")
	book.References("Publisher")
	book.Version("Version")

	docs, err := persistence.NewModel().Add(publisher, book).BuildMappings()
	require.NoError(t, err)
	return docs
}

func TestExpect(t *testing.T) {
	want := []Table{
		{Name: "Book", Columns: []string{"Id", "Publisher_id", "Title", "Version"}},
		{Name: "Publisher", Columns: []string{"City", "Id", "Name", "Street"}},
		{Name: "PublisherPhones", Columns: []string{"Key", "Publisher_id", "Value"}},
	}
	if diff := cmp.Diff(want, Expect(buildDocuments(t)...)); diff != "" {
		t.Errorf("Expect() mismatch (-want +got):\n%s", diff)
	}
}

func TestExpectSchema(t *testing.T) {
	tables := Expect(buildDocuments(t, func(cm *mapping.ClassMap[Publisher]) {
		cm.Schema("sales")
	})...)
	require.Len(t, tables, 3)
	assert.Equal(t, "Book", tables[0].QualifiedName())
	assert.Equal(t, "sales.Publisher", tables[1].QualifiedName())
	assert.Equal(t, "sales.PublisherPhones", tables[2].QualifiedName())
}

func TestExpectSkipsFormulaColumns(t *testing.T) {
	book := mapping.NewClassMap[Book]()
	book.Id("Id")
	book.Map("Title").Formula("upper(title)")
	book.References("Publisher").Formula("(select 1)")

	docs, err := persistence.NewModel().Add(book).BuildMappings()
	require.NoError(t, err)
	assert.Equal(t, []Table{{Name: "Book", Columns: []string{"Id"}}}, Expect(docs...))
}

func publicColumns(table string, columns ...string) [][]any {
	var rows [][]any
	for _, c := range columns {
		rows = append(rows, []any{"public", table, c})
	}
	return rows
}

func TestCheck(t *testing.T) {
	docs := buildDocuments(t)

	t.Run("schema matches", func(t *testing.T) {
		var rows [][]any
		rows = append(rows, publicColumns("book", "id", "title", "publisher_id", "version")...)
		rows = append(rows, publicColumns("publisher", "id", "name", "street", "city")...)
		rows = append(rows, publicColumns("publisherphones", "publisher_id", "key", "value")...)
		stub := testutils.NewDbSessionStub(testutils.NewRowsStub(rows...))

		require.NoError(t, NewChecker().Check(stub, docs...))
		assert.Equal(t, columnsQuery, stub.ActualQuery)
		assert.True(t, stub.Rows.Closed)
	})

	t.Run("missing table and column", func(t *testing.T) {
		var rows [][]any
		rows = append(rows, publicColumns("book", "id", "title", "publisher_id", "version")...)
		rows = append(rows, publicColumns("publisher", "id", "name", "street")...)
		stub := testutils.NewDbSessionStub(testutils.NewRowsStub(rows...))

		err := NewChecker().Check(stub, docs...)
		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		require.Len(t, merr.Errors, 2)
		assert.True(t, errors.Is(merr.Errors[0], ErrMissingColumn))
		assert.Contains(t, merr.Errors[0].Error(), "public.Publisher.City")
		assert.True(t, errors.Is(merr.Errors[1], ErrMissingTable))
		assert.Contains(t, merr.Errors[1].Error(), "public.PublisherPhones")
	})

	t.Run("tables in another schema do not count", func(t *testing.T) {
		var rows [][]any
		for _, r := range publicColumns("book", "id", "title", "publisher_id", "version") {
			rows = append(rows, []any{"archive", r[1], r[2]})
		}
		stub := testutils.NewDbSessionStub(testutils.NewRowsStub(rows...))

		err := NewChecker().Check(stub, docs[1])
		assert.True(t, errors.Is(err, ErrMissingTable))
	})

	t.Run("query error", func(t *testing.T) {
		boom := errors.New("connection reset")
		stub := testutils.NewDbSessionStub(testutils.NewRowsStub())
		stub.QueryErr = boom

		err := NewChecker().Check(stub, docs...)
		assert.True(t, errors.Is(err, boom))
	})
}

func TestCheckPool(t *testing.T) {
	docs := buildDocuments(t)
	stub := testutils.NewDbSessionStub(testutils.NewRowsStub())
	pool := testutils.NewSessionPoolStub(stub)

	err := NewChecker().CheckPool(context.Background(), pool, docs...)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
}

func TestCheckIntegration(t *testing.T) {
	if _, ok := testutils.DSN(); !ok {
		t.Skip("set FLUENTMAP_DSN or DB_HOST to run against PostgreSQL")
	}
	pool, err := testutils.NewPgSessionPool()
	require.NoError(t, err)

	err = NewChecker().CheckPool(context.Background(), pool, buildDocuments(t)...)
	if err != nil {
		assert.True(t, errors.Is(err, ErrMissingTable) || errors.Is(err, ErrMissingColumn), err.Error())
	}
}

const generatedDocument = `<hibernate-mapping xmlns="urn:nhibernate-mapping-2.2">
  <class name="Gen.Item" table="%s">
    <id name="Id"><column name="id"/></id>
    <property name="Value"><column name="%s"/></property>
  </class>
</hibernate-mapping>`

func TestCheckIgnoresCase(t *testing.T) {
	table, column := "t_"+fake.Word(), "c_"+fake.Word()
	doc, err := hbm.Unmarshal([]byte(fmt.Sprintf(generatedDocument, table, column)))
	require.NoError(t, err)

	stub := testutils.NewDbSessionStub(testutils.NewRowsStub(
		[]any{"PUBLIC", strings.ToUpper(table), "ID"},
		[]any{"Public", strings.ToUpper(table), strings.ToUpper(column)},
	))
	assert.NoError(t, NewChecker().Check(stub, doc))
}
