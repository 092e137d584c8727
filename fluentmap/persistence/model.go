// Package persistence turns registered class maps into mapping documents.
package persistence

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/conventions"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/diagnostics"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/mapping"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/signals"
)

var (
	ErrDuplicateClass = errors.New("persistence: class mapped more than once")
	ErrMissingId      = errors.New("persistence: class has no id")
	ErrNoMapping      = errors.New("persistence: no mapping for type")
)

// MergedFileName is the file written by WriteMappingsTo when mappings are
// merged into one document.
const MergedFileName = "FluentMappings.hbm.xml"

type Model struct {
	providers   []mapping.Provider
	conventions []conventions.Convention
	merge       bool
	dispatcher  *diagnostics.Dispatcher
	logger      signals.Subscription
}

func NewModel() *Model {
	return &Model{dispatcher: diagnostics.NewDispatcher()}
}

func (m *Model) Add(providers ...mapping.Provider) *Model {
	m.providers = append(m.providers, providers...)
	return m
}

func (m *Model) AddFromRegistry(r *Registry) *Model {
	return m.Add(r.Providers()...)
}

func (m *Model) Conventions(cs ...conventions.Convention) *Model {
	m.conventions = append(m.conventions, cs...)
	return m
}

// MergeMappings puts every class into a single document.
func (m *Model) MergeMappings() *Model {
	m.merge = true
	return m
}

// SetLogger routes diagnostics to logger, replacing any earlier one.
// A nil logger detaches logging.
func (m *Model) SetLogger(logger *slog.Logger) {
	if m.logger != nil {
		m.logger.Dispose()
		m.logger = nil
	}
	if logger != nil {
		m.logger = diagnostics.NewSlogLogger(logger).Attach(m.dispatcher)
	}
}

func (m *Model) Diagnostics() *diagnostics.Dispatcher {
	return m.dispatcher
}

func (m *Model) Len() int {
	return len(m.providers)
}

func (m *Model) entityTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(m.providers))
	for _, p := range m.providers {
		types = append(types, p.EntityType())
	}
	return types
}

// buildClass runs the provider and the conventions and checks the result.
func (m *Model) buildClass(p mapping.Provider) (*model.Class, error) {
	class, err := p.ClassMapping()
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", entityLabel(p))
	}
	applier := conventions.NewApplier(m.conventions, func(c conventions.Convention, node model.Node) {
		m.dispatcher.ConventionApplied().Notify(diagnostics.ConventionApplied{
			Convention: c.Name(),
			Class:      class.Name.Get(),
			Node:       fmt.Sprintf("%T", node),
		})
	})
	if err := applier.Apply(class); err != nil {
		return nil, errors.Wrapf(err, "conventions for %s", class.Name.Get())
	}
	if class.Id == nil {
		return nil, errors.Wrapf(ErrMissingId, "%s", class.Name.Get())
	}
	m.dispatcher.ClassBuilt().Notify(diagnostics.ClassBuilt{Class: class})
	return class, nil
}

func entityLabel(p mapping.Provider) string {
	if t := p.EntityType(); t != nil {
		return model.TypeName(t)
	}
	return fmt.Sprintf("%T", p)
}

func classKey(c *model.Class) any {
	if c.Type != nil {
		return c.Type
	}
	return c.Name.Get()
}

func newDocument(defaults *model.HibernateMapping) *model.HibernateMapping {
	doc := &model.HibernateMapping{}
	if defaults == nil {
		return doc
	}
	doc.DefaultAccess = defaults.DefaultAccess
	doc.DefaultCascade = defaults.DefaultCascade
	doc.DefaultLazy = defaults.DefaultLazy
	doc.AutoImport = defaults.AutoImport
	doc.Schema = defaults.Schema
	doc.Catalog = defaults.Catalog
	doc.Namespace = defaults.Namespace
	doc.Assembly = defaults.Assembly
	return doc
}

// BuildMappings builds every added provider. Each class gets its own
// document unless MergeMappings was called. All problems found are
// returned together.
func (m *Model) BuildMappings() ([]*model.HibernateMapping, error) {
	m.dispatcher.MappingsRegistered().Notify(diagnostics.MappingsRegistered{Types: m.entityTypes()})

	var result *multierror.Error
	var docs []*model.HibernateMapping
	seen := make(map[any]bool, len(m.providers))
	for _, p := range m.providers {
		class, err := m.buildClass(p)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		key := classKey(class)
		if seen[key] {
			result = multierror.Append(result, errors.Wrapf(ErrDuplicateClass, "%s", class.Name.Get()))
			continue
		}
		seen[key] = true

		if m.merge && len(docs) > 0 {
			docs[0].AddClass(class)
			continue
		}
		doc := newDocument(p.HibernateMapping())
		doc.AddClass(class)
		docs = append(docs, doc)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return docs, nil
}

// BuildMappingFor builds the class mapped for t.
func (m *Model) BuildMappingFor(t reflect.Type) (*model.Class, error) {
	for _, p := range m.providers {
		if p.EntityType() == t {
			return m.buildClass(p)
		}
	}
	return nil, errors.Wrapf(ErrNoMapping, "%v", t)
}

func BuildMappingFor[T any](m *Model) (*model.Class, error) {
	return m.BuildMappingFor(reflect.TypeFor[T]())
}

// WriteMappingsTo builds the mappings and writes one hbm.xml file per
// document into dir, creating it when needed. It returns the written paths.
func (m *Model) WriteMappingsTo(dir string) ([]string, error) {
	docs, err := m.BuildMappings()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}
	var paths []string
	for _, doc := range docs {
		name, err := hbm.FileName(doc)
		if err != nil {
			return paths, err
		}
		if m.merge {
			name = MergedFileName
		}
		data, err := hbm.Marshal(doc)
		if err != nil {
			return paths, errors.Wrapf(err, "render %s", name)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, errors.Wrapf(err, "write %s", path)
		}
		paths = append(paths, path)
		m.dispatcher.DocumentExported().Notify(diagnostics.DocumentExported{
			Class: doc.Classes[0].Name.Get(),
			Path:  path,
			Size:  len(data),
		})
	}
	return paths, nil
}
