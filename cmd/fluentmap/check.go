package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/scott-cotton/cli"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/cfg"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/schemacheck"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/session"
	pgxsession "github.com/krew-solutions/fluent-mapping-go/fluentmap/session/pgx"
)

type checkConfig struct {
	*cli.Command
	Config string `cli:"name=config aliases=c desc='settings file (yaml)'"`
	Schema string `cli:"name=schema aliases=s desc='schema of tables whose mapping names none'"`
}

func CheckCommand() *cli.Command {
	c := &checkConfig{}
	opts, _ := cli.StructOpts(c)
	return cli.NewCommandAt(&c.Command, "check").
		WithSynopsis("check [--config f] [--schema s] <file>... - compare mapping documents with a database").
		WithOpts(opts...).
		WithRun(c.run)
}

func (c *checkConfig) settings() (*cfg.Settings, error) {
	if c.Config != "" {
		return cfg.LoadSettings(c.Config)
	}
	return cfg.ParseSettings(nil)
}

func (c *checkConfig) run(cc *cli.Context, args []string) error {
	args, err := c.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	s, err := c.settings()
	if err != nil {
		return err
	}
	if s.DSN == "" {
		return fmt.Errorf("%w: no database, set dsn in the settings file or %s", cli.ErrUsage, cfg.EnvDSN)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: s.Level()}))

	ctx := context.Background()
	pool, err := pgxsession.Connect(ctx, s.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger.Debug("checking schema", "files", len(args))
	ok, err := checkFiles(ctx, cc.Out, pool, c.Schema, args)
	if err != nil {
		return err
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkFiles prints every table or column the database lacks and reports
// whether there were none.
func checkFiles(ctx context.Context, w io.Writer, pool session.SessionPool, schema string, paths []string) (bool, error) {
	docs, err := readDocuments(paths)
	if err != nil {
		return false, err
	}
	checker := schemacheck.NewChecker()
	if schema != "" {
		checker.DefaultSchema = schema
	}
	tables := schemacheck.Expect(docs...)
	err = checker.CheckPool(ctx, pool, docs...)
	if err == nil {
		fmt.Fprintf(w, "%d tables ok\n", len(tables))
		return true, nil
	}
	missing := errorList(err)
	for _, e := range missing {
		if !isSchemaMismatch(e) {
			return false, err
		}
	}
	for _, e := range missing {
		fmt.Fprintln(w, e)
	}
	return false, nil
}

func isSchemaMismatch(err error) bool {
	return errors.Is(err, schemacheck.ErrMissingTable) || errors.Is(err, schemacheck.ErrMissingColumn)
}
