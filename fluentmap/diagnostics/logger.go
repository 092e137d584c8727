package diagnostics

import (
	"context"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/signals"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                8,
}

// Dump renders v for debug output.
func Dump(v any) string {
	return dumper.Sdump(v)
}

// SlogLogger writes diagnostic events to a slog.Logger. Built classes are
// dumped in full at debug level.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Attach subscribes the logger to every signal of d.
func (l *SlogLogger) Attach(d *Dispatcher) signals.Subscription {
	return signals.Subscriptions{
		d.MappingsRegistered().Attach(l.mappingsRegistered, l),
		d.ConventionApplied().Attach(l.conventionApplied, l),
		d.ClassBuilt().Attach(l.classBuilt, l),
		d.DocumentExported().Attach(l.documentExported, l),
		d.DocumentAdded().Attach(l.documentAdded, l),
	}
}

func (l *SlogLogger) mappingsRegistered(e MappingsRegistered) {
	names := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		names = append(names, model.EntityName(t))
	}
	l.logger.Info("mappings registered", "count", len(e.Types), "types", names)
}

func (l *SlogLogger) conventionApplied(e ConventionApplied) {
	l.logger.Debug("convention applied", "convention", e.Convention, "class", e.Class, "node", e.Node)
}

func (l *SlogLogger) classBuilt(e ClassBuilt) {
	l.logger.Info("class built", "class", e.Class.Name.Get(), "table", e.Class.Table.Get())
	if l.logger.Enabled(context.Background(), slog.LevelDebug) {
		l.logger.Debug("class mapping", "class", e.Class.Name.Get(), "dump", Dump(e.Class))
	}
}

func (l *SlogLogger) documentExported(e DocumentExported) {
	l.logger.Info("document exported", "class", e.Class, "path", e.Path, "bytes", e.Size)
}

func (l *SlogLogger) documentAdded(e DocumentAdded) {
	l.logger.Info("document added", "name", e.Name, "bytes", e.Size)
}
