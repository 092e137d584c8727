package conventions

import "github.com/krew-solutions/fluent-mapping-go/fluentmap/model"

// AppliedFunc is told about every convention that ran on a node.
type AppliedFunc func(c Convention, node model.Node)

// Applier walks a mapping tree and runs the conventions matching each node.
type Applier struct {
	model.BaseVisitor
	conventions []Convention
	applied     AppliedFunc
}

func NewApplier(conventions []Convention, applied AppliedFunc) *Applier {
	return &Applier{conventions: conventions, applied: applied}
}

func (a *Applier) Apply(node model.Node) error {
	if len(a.conventions) == 0 {
		return nil
	}
	return model.Walk(a, node)
}

func (a *Applier) notify(c Convention, node model.Node) {
	if a.applied != nil {
		a.applied(c, node)
	}
}

func (a *Applier) VisitClass(class *model.Class) error {
	for _, c := range a.conventions {
		if cc, ok := c.(ClassConvention); ok {
			cc.ApplyClass(class)
			a.notify(c, class)
		}
	}
	return nil
}

func (a *Applier) VisitProperty(p *model.Property) error {
	for _, c := range a.conventions {
		if pc, ok := c.(PropertyConvention); ok {
			pc.ApplyProperty(p)
			a.notify(c, p)
		}
	}
	return nil
}

func (a *Applier) VisitManyToOne(r *model.ManyToOne) error {
	for _, c := range a.conventions {
		if rc, ok := c.(ReferenceConvention); ok {
			rc.ApplyReference(r)
			a.notify(c, r)
		}
	}
	return nil
}

func (a *Applier) VisitCollection(coll *model.Collection) error {
	for _, c := range a.conventions {
		if cc, ok := c.(CollectionConvention); ok {
			cc.ApplyCollection(coll)
			a.notify(c, coll)
		}
	}
	return nil
}

func (a *Applier) VisitColumn(col *model.Column) error {
	for _, c := range a.conventions {
		if cc, ok := c.(ColumnConvention); ok {
			cc.ApplyColumn(col)
			a.notify(c, col)
		}
	}
	return nil
}

// Apply runs conventions over node and everything below it.
func Apply(node model.Node, conventions ...Convention) error {
	return NewApplier(conventions, nil).Apply(node)
}
