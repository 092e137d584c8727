// Package cfg is the entry point for configuring mappings: it collects
// fluent and hbm mappings, applies settings, and feeds the rendered
// documents to a Configuration.
package cfg

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type FluentConfiguration struct {
	settings  *Settings
	logger    *slog.Logger
	logOutput io.Writer
	mappings []func(*MappingConfiguration)
	expose   []func(Configuration)
}

func Fluently() *FluentConfiguration {
	return &FluentConfiguration{}
}

// Settings applies s before any Mappings callback runs, so callbacks can
// override what it sets.
func (f *FluentConfiguration) Settings(s *Settings) *FluentConfiguration {
	f.settings = s
	return f
}

// Logger sets where diagnostics go. A log_level from Settings still
// filters what reaches it; with a level but no logger, text logs are
// written to stderr.
func (f *FluentConfiguration) Logger(logger *slog.Logger) *FluentConfiguration {
	f.logger = logger
	return f
}

func (f *FluentConfiguration) effectiveLogger() *slog.Logger {
	s := f.settings
	if s == nil || s.LogLevel == "" {
		return f.logger
	}
	if f.logger == nil {
		out := f.logOutput
		if out == nil {
			out = os.Stderr
		}
		return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: s.Level()}))
	}
	return slog.New(levelHandler{Handler: f.logger.Handler(), level: s.Level()})
}

func (f *FluentConfiguration) Mappings(fn func(*MappingConfiguration)) *FluentConfiguration {
	f.mappings = append(f.mappings, fn)
	return f
}

// ExposeConfiguration registers fn to be called with the sink once all
// documents were added.
func (f *FluentConfiguration) ExposeConfiguration(fn func(Configuration)) *FluentConfiguration {
	f.expose = append(f.expose, fn)
	return f
}

func (f *FluentConfiguration) Apply(sink Configuration) error {
	mc := NewMappingConfiguration()
	if logger := f.effectiveLogger(); logger != nil {
		mc.Model().SetLogger(logger)
	}
	if s := f.settings; s != nil {
		mc.FluentMappings.Conventions(s.Conventions.Conventions()...)
		if s.MergeMappings {
			mc.MergeMappings()
		}
		if s.ExportDir != "" {
			mc.FluentMappings.ExportTo(s.ExportDir)
		}
	}
	for _, fn := range f.mappings {
		fn(mc)
	}
	if err := mc.Apply(sink); err != nil {
		return err
	}
	for _, fn := range f.expose {
		fn(sink)
	}
	return nil
}

// BuildConfiguration applies everything to a new in-memory configuration.
func (f *FluentConfiguration) BuildConfiguration() (*InMemoryConfiguration, error) {
	sink := NewInMemoryConfiguration()
	if err := f.Apply(sink); err != nil {
		return nil, err
	}
	return sink, nil
}

// levelHandler drops records below level before they reach Handler.
type levelHandler struct {
	slog.Handler
	level slog.Level
}

func (h levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.Handler.Enabled(ctx, level)
}

func (h levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h levelHandler) WithGroup(name string) slog.Handler {
	return levelHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}
