package cfg

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/conventions"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/diagnostics"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/mapping"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/persistence"
)

const hbmSuffix = ".hbm.xml"

// FluentMappings collects class maps written with the fluent builders.
type FluentMappings struct {
	model     *persistence.Model
	exportDir string
}

func (f *FluentMappings) Add(providers ...mapping.Provider) *FluentMappings {
	f.model.Add(providers...)
	return f
}

func (f *FluentMappings) AddFromRegistry(r *persistence.Registry) *FluentMappings {
	f.model.AddFromRegistry(r)
	return f
}

func (f *FluentMappings) Conventions(cs ...conventions.Convention) *FluentMappings {
	f.model.Conventions(cs...)
	return f
}

// ExportTo also writes the rendered documents into dir.
func (f *FluentMappings) ExportTo(dir string) *FluentMappings {
	f.exportDir = dir
	return f
}

type document struct {
	name string
	data []byte
}

// HbmMappings collects existing hbm.xml documents, passed on unchanged.
type HbmMappings struct {
	documents []document
	errs      []error
}

func (h *HbmMappings) AddDocument(name string, data []byte) *HbmMappings {
	h.documents = append(h.documents, document{name: name, data: data})
	return h
}

// AddFromDir adds every *.hbm.xml file of dir, sorted by name. Read errors
// are reported by Apply.
func (h *HbmMappings) AddFromDir(dir string) *HbmMappings {
	entries, err := os.ReadDir(dir)
	if err != nil {
		h.errs = append(h.errs, errors.Wrapf(err, "read %s", dir))
		return h
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), hbmSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			h.errs = append(h.errs, errors.Wrapf(err, "read %s", name))
			continue
		}
		h.AddDocument(name, data)
	}
	return h
}

// MappingConfiguration gathers fluent and hbm mappings and hands them to a
// Configuration.
type MappingConfiguration struct {
	FluentMappings *FluentMappings
	HbmMappings    *HbmMappings
	merge          bool
}

func NewMappingConfiguration() *MappingConfiguration {
	return &MappingConfiguration{
		FluentMappings: &FluentMappings{model: persistence.NewModel()},
		HbmMappings:    &HbmMappings{},
	}
}

// MergeMappings renders all fluent mappings into a single document.
func (m *MappingConfiguration) MergeMappings() *MappingConfiguration {
	m.merge = true
	m.FluentMappings.model.MergeMappings()
	return m
}

func (m *MappingConfiguration) Model() *persistence.Model {
	return m.FluentMappings.model
}

func (m *MappingConfiguration) Diagnostics() *diagnostics.Dispatcher {
	return m.FluentMappings.model.Diagnostics()
}

// WasUsed reports whether any mapping was added.
func (m *MappingConfiguration) WasUsed() bool {
	return m.FluentMappings.model.Len() > 0 || len(m.HbmMappings.documents) > 0
}

// Apply builds the fluent mappings and adds them, then the hbm documents,
// to sink. Nothing is added when the fluent mappings fail to build.
func (m *MappingConfiguration) Apply(sink Configuration) error {
	var result *multierror.Error
	result = multierror.Append(result, m.HbmMappings.errs...)

	docs, err := m.FluentMappings.model.BuildMappings()
	if err != nil {
		return multierror.Append(result, err)
	}

	var rendered []document
	for _, doc := range docs {
		name, err := hbm.FileName(doc)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if m.merge {
			name = persistence.MergedFileName
		}
		data, err := hbm.Marshal(doc)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "render %s", name))
			continue
		}
		rendered = append(rendered, document{name: name, data: data})
	}
	if dir := m.FluentMappings.exportDir; dir != "" {
		if err := m.export(dir, rendered); err != nil {
			result = multierror.Append(result, err)
		}
	}

	dispatcher := m.Diagnostics()
	for _, doc := range append(rendered, m.HbmMappings.documents...) {
		if err := sink.AddDocument(doc.name, doc.data); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		dispatcher.DocumentAdded().Notify(diagnostics.DocumentAdded{Name: doc.name, Size: len(doc.data)})
	}
	return result.ErrorOrNil()
}

func (m *MappingConfiguration) export(dir string, docs []document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	dispatcher := m.Diagnostics()
	for _, doc := range docs {
		path := filepath.Join(dir, doc.name)
		if err := os.WriteFile(path, doc.data, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		dispatcher.DocumentExported().Notify(diagnostics.DocumentExported{
			Class: strings.TrimSuffix(doc.name, hbmSuffix),
			Path:  path,
			Size:  len(doc.data),
		})
	}
	return nil
}
