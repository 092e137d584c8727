package mapping

import (
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// Provider supplies the mapping of one class.
type Provider interface {
	EntityType() reflect.Type
	ClassMapping() (*model.Class, error)
	HibernateMapping() *model.HibernateMapping
}

// ClassMap is the fluent mapping of entity T.
type ClassMap[T any] struct {
	classlike
	mapping          *model.Class
	hibernate        *model.HibernateMapping
	id               *IdentityPart
	version          *VersionPart
	cache            *model.Cache
	joins            []*JoinPart
	storedProcedures []*StoredProcedurePart
	filters          []*model.Filter
	not              bool
}

func NewClassMap[T any]() *ClassMap[T] {
	entity := reflect.TypeFor[T]()
	cm := &ClassMap[T]{
		classlike: newClasslike(entity),
		hibernate: &model.HibernateMapping{},
	}
	cm.mapping = &model.Class{Type: cm.entity}
	return cm
}

func (cm *ClassMap[T]) flag() bool {
	v := !cm.not
	cm.not = false
	return v
}

func (cm *ClassMap[T]) Not() *ClassMap[T] {
	cm.not = !cm.not
	return cm
}

func (cm *ClassMap[T]) Table(name string) *ClassMap[T] {
	cm.mapping.Table.Set(name)
	return cm
}

func (cm *ClassMap[T]) Schema(name string) *ClassMap[T] {
	cm.mapping.Schema.Set(name)
	return cm
}

func (cm *ClassMap[T]) LazyLoad() *ClassMap[T] {
	cm.mapping.Lazy.Set(cm.flag())
	return cm
}

func (cm *ClassMap[T]) ReadOnly() *ClassMap[T] {
	cm.mapping.Mutable.Set(!cm.flag())
	return cm
}

func (cm *ClassMap[T]) DynamicUpdate() *ClassMap[T] {
	cm.mapping.DynamicUpdate.Set(cm.flag())
	return cm
}

func (cm *ClassMap[T]) DynamicInsert() *ClassMap[T] {
	cm.mapping.DynamicInsert.Set(cm.flag())
	return cm
}

func (cm *ClassMap[T]) SelectBeforeUpdate() *ClassMap[T] {
	cm.mapping.SelectBeforeUpdate.Set(cm.flag())
	return cm
}

func (cm *ClassMap[T]) BatchSize(size int) *ClassMap[T] {
	cm.mapping.BatchSize.Set(size)
	return cm
}

func (cm *ClassMap[T]) Where(where string) *ClassMap[T] {
	cm.mapping.Where.Set(where)
	return cm
}

func (cm *ClassMap[T]) Persister(name string) *ClassMap[T] {
	cm.mapping.Persister.Set(name)
	return cm
}

func (cm *ClassMap[T]) Polymorphism() Polymorphism[*ClassMap[T]] {
	return Polymorphism[*ClassMap[T]]{parent: cm, set: cm.mapping.Polymorphism.Set}
}

func (cm *ClassMap[T]) OptimisticLock() OptimisticLock[*ClassMap[T]] {
	return OptimisticLock[*ClassMap[T]]{parent: cm, set: cm.mapping.OptimisticLock.Set}
}

func (cm *ClassMap[T]) Cache() *CacheBuilder {
	if cm.cache == nil {
		cm.cache = &model.Cache{}
	}
	return NewCacheBuilder(cm.cache)
}

func (cm *ClassMap[T]) ApplyFilter(name string, condition ...string) *ClassMap[T] {
	cm.filters = append(cm.filters, newFilter(name, condition))
	return cm
}

// Defaults edits the attributes of the enclosing mapping document.
func (cm *ClassMap[T]) Defaults() *HibernateMappingPart {
	return &HibernateMappingPart{mapping: cm.hibernate}
}

func (cm *ClassMap[T]) Id(name string) *IdentityPart {
	m, _ := cm.resolve(name)
	cm.id = newIdentityPart(cm.entity, m)
	return cm.id
}

func (cm *ClassMap[T]) Version(name string) *VersionPart {
	m, _ := cm.resolve(name)
	cm.version = newVersionPart(cm.entity, m)
	return cm.version
}

func (cm *ClassMap[T]) Join(table string, fn func(*JoinPart)) *ClassMap[T] {
	j := newJoinPart(cm.entity, table)
	fn(j)
	cm.joins = append(cm.joins, j)
	return cm
}

func (cm *ClassMap[T]) SqlInsert(query string) *StoredProcedurePart {
	return cm.storedProcedure("sql-insert", query)
}

func (cm *ClassMap[T]) SqlUpdate(query string) *StoredProcedurePart {
	return cm.storedProcedure("sql-update", query)
}

func (cm *ClassMap[T]) SqlDelete(query string) *StoredProcedurePart {
	return cm.storedProcedure("sql-delete", query)
}

func (cm *ClassMap[T]) SqlDeleteAll(query string) *StoredProcedurePart {
	return cm.storedProcedure("sql-delete-all", query)
}

func (cm *ClassMap[T]) storedProcedure(element, query string) *StoredProcedurePart {
	sp := newStoredProcedurePart(element, query)
	cm.storedProcedures = append(cm.storedProcedures, sp)
	return sp
}

func (cm *ClassMap[T]) HibernateMapping() *model.HibernateMapping {
	return cm.hibernate
}

// ClassMapping builds the class. Members that could not be resolved and
// misuse of dictionary mappings are reported here, all at once. Every call
// returns a new record; later changes to the map do not reach it.
func (cm *ClassMap[T]) ClassMapping() (*model.Class, error) {
	var result *multierror.Error
	m := cm.mapping
	m.Members = model.Members{}
	if err := cm.buildMembers(&m.Members); err != nil {
		result = multierror.Append(result, err)
	}
	m.Name.SetDefault(model.TypeName(cm.entity))
	m.Table.SetDefault(model.EntityName(cm.entity))
	m.Id, m.Version = nil, nil
	if cm.id != nil {
		m.Id = cm.id.idMapping()
	}
	if cm.version != nil {
		m.Version = cm.version.versionMapping()
	}
	m.Cache = cm.cache
	m.Filters = cm.filters
	m.Joins = nil
	for _, j := range cm.joins {
		jm, err := j.joinMapping()
		if err != nil {
			result = multierror.Append(result, err)
		}
		m.Joins = append(m.Joins, jm)
	}
	m.StoredProcedures = nil
	for _, sp := range cm.storedProcedures {
		m.StoredProcedures = append(m.StoredProcedures, sp.mapping)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return m.Clone(), nil
}

// HibernateMappingPart sets document wide defaults.
type HibernateMappingPart struct {
	mapping *model.HibernateMapping
	not     bool
}

func (h *HibernateMappingPart) flag() bool {
	v := !h.not
	h.not = false
	return v
}

func (h *HibernateMappingPart) Not() *HibernateMappingPart {
	h.not = !h.not
	return h
}

func (h *HibernateMappingPart) DefaultAccess() AccessStrategy[*HibernateMappingPart] {
	return AccessStrategy[*HibernateMappingPart]{parent: h, set: h.mapping.DefaultAccess.Set}
}

func (h *HibernateMappingPart) DefaultCascade() Cascade[*HibernateMappingPart] {
	return Cascade[*HibernateMappingPart]{parent: h, set: h.mapping.DefaultCascade.Set}
}

func (h *HibernateMappingPart) DefaultLazy() *HibernateMappingPart {
	h.mapping.DefaultLazy.Set(h.flag())
	return h
}

func (h *HibernateMappingPart) AutoImport() *HibernateMappingPart {
	h.mapping.AutoImport.Set(h.flag())
	return h
}

func (h *HibernateMappingPart) Schema(name string) *HibernateMappingPart {
	h.mapping.Schema.Set(name)
	return h
}

func (h *HibernateMappingPart) Catalog(name string) *HibernateMappingPart {
	h.mapping.Catalog.Set(name)
	return h
}

func (h *HibernateMappingPart) Namespace(name string) *HibernateMappingPart {
	h.mapping.Namespace.Set(name)
	return h
}

// PassThroughProvider hands out a class that was built elsewhere, for
// example read back from an hbm document.
type PassThroughProvider struct {
	class     *model.Class
	hibernate *model.HibernateMapping
}

func NewPassThroughProvider(class *model.Class) *PassThroughProvider {
	return &PassThroughProvider{class: class, hibernate: &model.HibernateMapping{}}
}

func (p *PassThroughProvider) EntityType() reflect.Type {
	return p.class.Type
}

func (p *PassThroughProvider) ClassMapping() (*model.Class, error) {
	return p.class, nil
}

func (p *PassThroughProvider) HibernateMapping() *model.HibernateMapping {
	return p.hibernate
}
