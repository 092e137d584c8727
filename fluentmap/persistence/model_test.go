package persistence

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/conventions"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/diagnostics"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/mapping"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

type Customer struct {
	Id     int64
	Name   string
	Orders []*Order
}

type Order struct {
	Id       int64
	Customer *Customer
	Total    float64
}

type Note struct {
	Text string
}

func customerMap() *mapping.ClassMap[Customer] {
	cm := mapping.NewClassMap[Customer]()
	cm.Id("Id")
	cm.Map("Name")
	cm.HasMany("Orders").Inverse()
	return cm
}

func orderMap() *mapping.ClassMap[Order] {
	cm := mapping.NewClassMap[Order]()
	cm.Id("Id")
	cm.References("Customer")
	cm.Map("Total")
	return cm
}

func TestBuildMappings(t *testing.T) {
	docs, err := NewModel().Add(customerMap(), orderMap()).BuildMappings()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	require.Len(t, docs[0].Classes, 1)
	assert.Equal(t, "Customer", docs[0].Classes[0].EntityName())
	assert.Equal(t, "Customer", docs[0].Classes[0].Table.Get())
	require.Len(t, docs[1].Classes, 1)
	assert.Equal(t, "Order", docs[1].Classes[0].EntityName())
}

func TestBuildMappingsAppliesConventions(t *testing.T) {
	orders := orderMap()
	orders.Table("purchase_orders")

	m := NewModel().
		Add(customerMap(), orders).
		Conventions(conventions.PluralizedTableNames(), conventions.ForeignKeySuffix("Id"))

	var applied []diagnostics.ConventionApplied
	m.Diagnostics().ConventionApplied().Attach(func(e diagnostics.ConventionApplied) {
		applied = append(applied, e)
	})

	docs, err := m.BuildMappings()
	require.NoError(t, err)

	customer := docs[0].Classes[0]
	assert.Equal(t, "Customers", customer.Table.Get())
	assert.Equal(t, []string{"CustomerId"}, customer.Collections[0].Key.ColumnNames())

	order := docs[1].Classes[0]
	assert.Equal(t, "purchase_orders", order.Table.Get())
	assert.Equal(t, []string{"CustomerId"}, order.References[0].ColumnNames())

	require.NotEmpty(t, applied)
	assert.Equal(t, "pluralized-table-names", applied[0].Convention)
	assert.Equal(t, customer.Name.Get(), applied[0].Class)
	assert.Equal(t, "*model.Class", applied[0].Node)
}

func TestBuildMappingsIsRepeatable(t *testing.T) {
	m := NewModel().Add(customerMap()).Conventions(conventions.SnakeCaseColumns())
	first, err := m.BuildMappings()
	require.NoError(t, err)
	firstXML, err := hbm.Marshal(first[0])
	require.NoError(t, err)

	second, err := m.BuildMappings()
	require.NoError(t, err)
	secondXML, err := hbm.Marshal(second[0])
	require.NoError(t, err)

	assert.Equal(t, string(firstXML), string(secondXML))
}

func TestBuildMappingsAreIsolated(t *testing.T) {
	cm := customerMap()

	withConventions := NewModel().Add(cm).Conventions(
		conventions.PluralizedTableNames(),
		conventions.DefaultLazy(false),
		conventions.DefaultCascade("all"),
	)
	first, err := withConventions.BuildMappings()
	require.NoError(t, err)
	firstXML, err := hbm.Marshal(first[0])
	require.NoError(t, err)

	plain, err := NewModel().Add(cm).BuildMappings()
	require.NoError(t, err)
	class := plain[0].Classes[0]
	assert.Equal(t, "Customer", class.Table.Get())
	assert.False(t, class.Lazy.HasValue())
	assert.False(t, class.Collections[0].Cascade.HasValue())

	customers := first[0].Classes[0]
	assert.Equal(t, "Customers", customers.Table.Get())
	assert.False(t, customers.Lazy.Get())
	assert.True(t, customers.Lazy.HasValue())
	assert.Equal(t, "all", customers.Collections[0].Cascade.Get())

	afterXML, err := hbm.Marshal(first[0])
	require.NoError(t, err)
	assert.Equal(t, string(firstXML), string(afterXML))
}

func TestMergeMappings(t *testing.T) {
	docs, err := NewModel().Add(customerMap(), orderMap()).MergeMappings().BuildMappings()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Len(t, docs[0].Classes, 2)
	assert.Equal(t, "Customer", docs[0].Classes[0].EntityName())
	assert.Equal(t, "Order", docs[0].Classes[1].EntityName())
}

func TestDocumentDefaultsComeFromProvider(t *testing.T) {
	cm := customerMap()
	cm.Defaults().Schema("sales").Not().AutoImport()

	docs, err := NewModel().Add(cm).BuildMappings()
	require.NoError(t, err)
	assert.Equal(t, "sales", docs[0].Schema.Get())
	assert.True(t, docs[0].AutoImport.IsSpecified())
	assert.False(t, docs[0].AutoImport.Get())
}

func TestBuildMappingsCollectsErrors(t *testing.T) {
	noId := mapping.NewClassMap[Note]()
	noId.Map("Text")

	broken := mapping.NewClassMap[Order]()
	broken.Id("Id")
	broken.Map("Missing")

	docs, err := NewModel().Add(customerMap(), customerMap(), noId, broken).BuildMappings()
	assert.Nil(t, docs)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
	assert.True(t, errors.Is(merr.Errors[0], ErrDuplicateClass))
	assert.True(t, errors.Is(merr.Errors[1], ErrMissingId))
	assert.True(t, errors.Is(merr.Errors[2], model.ErrMemberNotFound))
}

func TestBuildMappingFor(t *testing.T) {
	m := NewModel().Add(customerMap(), orderMap())

	class, err := BuildMappingFor[Order](m)
	require.NoError(t, err)
	assert.Equal(t, "Order", class.EntityName())

	_, err = BuildMappingFor[Note](m)
	assert.True(t, errors.Is(err, ErrNoMapping))
}

func TestPassThroughProvider(t *testing.T) {
	class, err := customerMap().ClassMapping()
	require.NoError(t, err)

	docs, err := NewModel().Add(mapping.NewPassThroughProvider(class)).BuildMappings()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Same(t, class, docs[0].Classes[0])
}

func TestWriteMappingsTo(t *testing.T) {
	t.Run("one file per class", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "hbm")
		m := NewModel().Add(customerMap(), orderMap())

		var exported []diagnostics.DocumentExported
		m.Diagnostics().DocumentExported().Attach(func(e diagnostics.DocumentExported) {
			exported = append(exported, e)
		})

		paths, err := m.WriteMappingsTo(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "Customer.hbm.xml"),
			filepath.Join(dir, "Order.hbm.xml"),
		}, paths)

		data, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		doc, err := hbm.Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, "Customer", doc.Classes[0].Table.Get())

		require.Len(t, exported, 2)
		assert.Equal(t, paths[1], exported[1].Path)
		assert.Positive(t, exported[0].Size)
	})

	t.Run("merged", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := NewModel().Add(customerMap(), orderMap()).MergeMappings().WriteMappingsTo(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, MergedFileName)}, paths)
	})

	t.Run("build errors write nothing", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := NewModel().Add(mapping.NewClassMap[Note]()).WriteMappingsTo(dir)
		assert.True(t, errors.Is(err, ErrMissingId))
		assert.Empty(t, paths)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	m := NewModel().Add(customerMap())
	m.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := m.BuildMappings()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "mappings registered")
	assert.Contains(t, buf.String(), "class built")

	buf.Reset()
	m.SetLogger(nil)
	_, err = m.BuildMappings()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(customerMap())
	r.Register(orderMap())
	assert.Equal(t, 2, r.Len())

	providers := r.Providers()
	providers[0] = nil
	assert.NotNil(t, r.Providers()[0])

	docs, err := NewModel().AddFromRegistry(r).BuildMappings()
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	before := DefaultRegistry.Len()
	Register(customerMap())
	assert.Equal(t, before+1, DefaultRegistry.Len())
}
