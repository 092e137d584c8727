package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/mapping"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/persistence"
)

type lintConfig struct {
	*cli.Command
	Quiet bool `cli:"name=quiet aliases=q desc='only print problems'"`
}

func LintCommand() *cli.Command {
	cfg := &lintConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "lint").
		WithSynopsis("lint [--quiet] <file>... - validate mapping documents").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *lintConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lint requires at least one file", cli.ErrUsage)
	}
	if problems := lintFiles(cc.Out, args, cfg.Quiet); problems > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// lintFiles reads every file, checks its name and validates all classes
// together, so a class mapped in two files is reported. It returns the
// number of problems printed.
func lintFiles(w io.Writer, paths []string, quiet bool) int {
	problems := 0
	report := func(format string, args ...any) {
		problems++
		fmt.Fprintf(w, format+"\n", args...)
	}

	m := persistence.NewModel()
	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			report("%v", err)
			continue
		}
		name, err := hbm.FileName(doc)
		if err != nil {
			report("%s: %v", path, err)
			continue
		}
		if base := filepath.Base(path); base != name && base != persistence.MergedFileName {
			report("%s: expected file name %s", path, name)
		}
		for _, class := range doc.Classes {
			m.Add(mapping.NewPassThroughProvider(class))
		}
	}
	if _, err := m.BuildMappings(); err != nil {
		for _, e := range errorList(err) {
			report("%v", e)
		}
	}
	if problems == 0 && !quiet {
		fmt.Fprintf(w, "%d documents ok\n", len(paths))
	}
	return problems
}
