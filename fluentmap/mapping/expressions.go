package mapping

// AccessStrategy chooses how the ORM reads and writes a member.
type AccessStrategy[P any] struct {
	parent P
	set    func(string)
}

// Prefix is the naming prefix of a backing field.
type Prefix string

const (
	NoPrefix    Prefix = ""
	Underscore  Prefix = "underscore"
	M           Prefix = "m"
	MUnderscore Prefix = "m-underscore"
)

func (a AccessStrategy[P]) Property() P {
	return a.Using("property")
}

func (a AccessStrategy[P]) Field() P {
	return a.Using("field")
}

func (a AccessStrategy[P]) BackField() P {
	return a.Using("backfield")
}

func (a AccessStrategy[P]) ReadOnly() P {
	return a.Using("readonly")
}

func (a AccessStrategy[P]) NoOp() P {
	return a.Using("noop")
}

func (a AccessStrategy[P]) CamelCaseField(prefix Prefix) P {
	return a.Using(naming("field.camelcase", prefix))
}

func (a AccessStrategy[P]) LowerCaseField(prefix Prefix) P {
	return a.Using(naming("field.lowercase", prefix))
}

func (a AccessStrategy[P]) PascalCaseField(prefix Prefix) P {
	return a.Using(naming("field.pascalcase", prefix))
}

func (a AccessStrategy[P]) ReadOnlyPropertyThroughCamelCaseField(prefix Prefix) P {
	return a.Using(naming("nosetter.camelcase", prefix))
}

// Using sets a custom accessor name.
func (a AccessStrategy[P]) Using(access string) P {
	a.set(access)
	return a.parent
}

func naming(strategy string, prefix Prefix) string {
	if prefix == NoPrefix {
		return strategy
	}
	return strategy + "-" + string(prefix)
}

type FetchType[P any] struct {
	parent P
	set    func(string)
}

func (f FetchType[P]) Join() P {
	f.set("join")
	return f.parent
}

func (f FetchType[P]) Select() P {
	f.set("select")
	return f.parent
}

func (f FetchType[P]) Subselect() P {
	f.set("subselect")
	return f.parent
}

type Cascade[P any] struct {
	parent P
	set    func(string)
}

func (c Cascade[P]) All() P {
	return c.Using("all")
}

func (c Cascade[P]) None() P {
	return c.Using("none")
}

func (c Cascade[P]) SaveUpdate() P {
	return c.Using("save-update")
}

func (c Cascade[P]) Delete() P {
	return c.Using("delete")
}

func (c Cascade[P]) AllDeleteOrphan() P {
	return c.Using("all-delete-orphan")
}

func (c Cascade[P]) DeleteOrphan() P {
	return c.Using("delete-orphan")
}

func (c Cascade[P]) Merge() P {
	return c.Using("merge")
}

func (c Cascade[P]) Refresh() P {
	return c.Using("refresh")
}

func (c Cascade[P]) Lock() P {
	return c.Using("lock")
}

func (c Cascade[P]) Evict() P {
	return c.Using("evict")
}

func (c Cascade[P]) Replicate() P {
	return c.Using("replicate")
}

func (c Cascade[P]) Using(style string) P {
	c.set(style)
	return c.parent
}

type NotFound[P any] struct {
	parent P
	set    func(string)
}

func (n NotFound[P]) Ignore() P {
	n.set("ignore")
	return n.parent
}

func (n NotFound[P]) Exception() P {
	n.set("exception")
	return n.parent
}

type OptimisticLock[P any] struct {
	parent P
	set    func(string)
}

func (o OptimisticLock[P]) None() P {
	o.set("none")
	return o.parent
}

func (o OptimisticLock[P]) Version() P {
	o.set("version")
	return o.parent
}

func (o OptimisticLock[P]) Dirty() P {
	o.set("dirty")
	return o.parent
}

func (o OptimisticLock[P]) All() P {
	o.set("all")
	return o.parent
}

// Generated tells the ORM the database produces the value.
type Generated[P any] struct {
	parent P
	set    func(string)
}

func (g Generated[P]) Never() P {
	g.set("never")
	return g.parent
}

func (g Generated[P]) Insert() P {
	g.set("insert")
	return g.parent
}

func (g Generated[P]) Always() P {
	g.set("always")
	return g.parent
}

type Sort[P any] struct {
	parent P
	set    func(string)
}

func (s Sort[P]) Unsorted() P {
	s.set("unsorted")
	return s.parent
}

func (s Sort[P]) Natural() P {
	s.set("natural")
	return s.parent
}

// Custom names a comparator type.
func (s Sort[P]) Custom(comparator string) P {
	s.set(comparator)
	return s.parent
}

type Polymorphism[P any] struct {
	parent P
	set    func(string)
}

func (p Polymorphism[P]) Implicit() P {
	p.set("implicit")
	return p.parent
}

func (p Polymorphism[P]) Explicit() P {
	p.set("explicit")
	return p.parent
}
