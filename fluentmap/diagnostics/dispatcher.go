package diagnostics

import (
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/signals"
)

// Dispatcher fans diagnostic events out to whoever listens: loggers,
// tests, tooling.
type Dispatcher struct {
	mappingsRegistered *signals.SignalImp[MappingsRegistered]
	conventionApplied  *signals.SignalImp[ConventionApplied]
	classBuilt         *signals.SignalImp[ClassBuilt]
	documentExported   *signals.SignalImp[DocumentExported]
	documentAdded      *signals.SignalImp[DocumentAdded]
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		mappingsRegistered: signals.NewSignal[MappingsRegistered](),
		conventionApplied:  signals.NewSignal[ConventionApplied](),
		classBuilt:         signals.NewSignal[ClassBuilt](),
		documentExported:   signals.NewSignal[DocumentExported](),
		documentAdded:      signals.NewSignal[DocumentAdded](),
	}
}

func (d *Dispatcher) MappingsRegistered() signals.Signal[MappingsRegistered] {
	return d.mappingsRegistered
}

func (d *Dispatcher) ConventionApplied() signals.Signal[ConventionApplied] {
	return d.conventionApplied
}

func (d *Dispatcher) ClassBuilt() signals.Signal[ClassBuilt] {
	return d.classBuilt
}

func (d *Dispatcher) DocumentExported() signals.Signal[DocumentExported] {
	return d.documentExported
}

func (d *Dispatcher) DocumentAdded() signals.Signal[DocumentAdded] {
	return d.documentAdded
}
