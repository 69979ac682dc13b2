// Package run provides the run command, which prints the narration of one or
// more principle demos.
package run

import (
	"context"
	"io"

	"github.com/altRush/solid-design-principles/catalog"
	"github.com/altRush/solid-design-principles/cmd/solid/shared"
	"github.com/altRush/solid-design-principles/internal/config"
	"github.com/altRush/solid-design-principles/internal/log"
	"github.com/urfave/cli/v3"
)

// GetCommand returns the run command. Narration goes to out; cfg supplies
// the default demo selection when no names are given.
func GetCommand(out io.Writer, cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run principle demos (all of them by default)",
		ArgsUsage: "[demo...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := shared.Apply(cmd, cfg)

			names := cmd.Args().Slice()
			if len(names) == 0 {
				names = opts.Demos
			}

			c := catalog.Default()
			if opts.Verbose {
				if len(names) == 0 {
					log.InfoMsg("Running all %d demos\n", len(c.Names()))
				} else {
					log.InfoMsg("Running %v\n", names)
				}
			}

			return c.Run(out, names...)
		},
		Flags: shared.GetFlags(),
	}
}
