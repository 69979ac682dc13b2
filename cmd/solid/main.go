// Command solid runs the SOLID principle demos from the command line.
//
//	solid run            # every demo, in SOLID order
//	solid run lsp dip    # just these, in this order
//	solid list
//	solid version
package main

import (
	"context"
	"io"
	"os"

	"github.com/altRush/solid-design-principles/cmd/solid/list"
	"github.com/altRush/solid-design-principles/cmd/solid/run"
	"github.com/altRush/solid-design-principles/cmd/solid/version"
	"github.com/altRush/solid-design-principles/internal/config"
	"github.com/altRush/solid-design-principles/internal/log"
	"github.com/urfave/cli/v3"
)

func newApp(out io.Writer, cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "solid",
		Usage: "SOLID design principles, one small demo each",
		Commands: []*cli.Command{
			run.GetCommand(out, cfg),
			list.GetCommand(out, cfg),
			version.GetCommand(out),
		},
	}
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}

	if err := newApp(os.Stdout, cfg).Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
