package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
)

type diffConfig struct {
	*cli.Command
	Color bool `cli:"name=color desc='colorize output even when not writing to a terminal'"`
}

func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff [--color] <a> <b> - show differences between two mapping documents").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	differs, err := diffFiles(cc.Out, args[0], args[1], cfg.Color || isTerminal(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// diffFiles compares the documents as they render, so formatting and
// attribute order in the files do not count.
func diffFiles(w io.Writer, a, b string, colorize bool) (bool, error) {
	left, err := readDocument(a)
	if err != nil {
		return false, err
	}
	right, err := readDocument(b)
	if err != nil {
		return false, err
	}
	diff, err := hbm.Diff(left, right)
	if err != nil {
		return false, err
	}
	if diff == "" {
		return false, nil
	}
	fmt.Fprintf(w, "--- %s\n+++ %s\n", a, b)
	if colorize {
		diff = colorizeDiff(diff)
	}
	_, err = io.WriteString(w, diff)
	return true, err
}

func colorizeDiff(diff string) string {
	removed := color.New(color.FgRed)
	removed.EnableColor()
	added := color.New(color.FgGreen)
	added.EnableColor()

	var sb strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "- "):
			sb.WriteString(removed.Sprint(body))
		case strings.HasPrefix(line, "+ "):
			sb.WriteString(added.Sprint(body))
		default:
			sb.WriteString(body)
		}
		if body != line {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
