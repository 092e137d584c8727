package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

const usageText = `fluentmap - inspect hbm.xml mapping documents

Usage:
  fluentmap diff <a.hbm.xml> <b.hbm.xml>            Show differences between two documents
  fluentmap lint <file>...                          Validate documents
  fluentmap check [--config f] [--schema s] <file>...  Compare documents with a database

The database of check is taken from the settings file or FLUENTMAP_DSN.`

func MainCommand() *cli.Command {
	return cli.NewCommand("fluentmap").
		WithSynopsis("fluentmap - inspect hbm.xml mapping documents").
		WithDescription(usageText).
		WithSubs(
			DiffCommand(),
			LintCommand(),
			CheckCommand(),
		)
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
