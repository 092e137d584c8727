package cfg

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/conventions"
)

// Environment variables that override the settings file.
const (
	EnvDSN       = "FLUENTMAP_DSN"
	EnvExportDir = "FLUENTMAP_EXPORT_DIR"
)

// Settings is the YAML form of a mapping configuration.
type Settings struct {
	DSN           string             `yaml:"dsn"`
	ExportDir     string             `yaml:"export_dir"`
	MergeMappings bool               `yaml:"merge_mappings"`
	LogLevel      string             `yaml:"log_level"`
	Conventions   ConventionSettings `yaml:"conventions"`
}

type ConventionSettings struct {
	PluralizeTables  bool   `yaml:"pluralize_tables"`
	SnakeCaseColumns bool   `yaml:"snake_case_columns"`
	ForeignKeySuffix string `yaml:"foreign_key_suffix"`
	DefaultLazy      *bool  `yaml:"default_lazy"`
	DefaultCascade   string `yaml:"default_cascade"`
	DefaultAccess    string `yaml:"default_access"`
}

// Conventions returns the built-in conventions the settings turn on, in a
// fixed order.
func (s ConventionSettings) Conventions() []conventions.Convention {
	var cs []conventions.Convention
	if s.PluralizeTables {
		cs = append(cs, conventions.PluralizedTableNames())
	}
	if s.ForeignKeySuffix != "" {
		cs = append(cs, conventions.ForeignKeySuffix(s.ForeignKeySuffix))
	}
	if s.SnakeCaseColumns {
		cs = append(cs, conventions.SnakeCaseColumns())
	}
	if s.DefaultLazy != nil {
		cs = append(cs, conventions.DefaultLazy(*s.DefaultLazy))
	}
	if s.DefaultCascade != "" {
		cs = append(cs, conventions.DefaultCascade(s.DefaultCascade))
	}
	if s.DefaultAccess != "" {
		cs = append(cs, conventions.DefaultAccess(s.DefaultAccess))
	}
	return cs
}

// Level parses LogLevel, falling back to info.
func (s *Settings) Level() slog.Level {
	var level slog.Level
	if s.LogLevel == "" || level.UnmarshalText([]byte(s.LogLevel)) != nil {
		return slog.LevelInfo
	}
	return level
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read settings %s", path)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings and applies the environment
// overrides.
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse settings")
	}
	s.applyEnv()
	return &s, nil
}

func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv(EnvDSN); ok {
		s.DSN = v
	}
	if v, ok := os.LookupEnv(EnvExportDir); ok {
		s.ExportDir = v
	}
}
