// Package list provides the list command, which prints the available demos.
package list

import (
	"context"
	"fmt"
	"io"

	"github.com/altRush/solid-design-principles/catalog"
	"github.com/altRush/solid-design-principles/cmd/solid/shared"
	"github.com/altRush/solid-design-principles/internal/config"
	"github.com/urfave/cli/v3"
)

// GetCommand returns the list command writing to out.
func GetCommand(out io.Writer, cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List available demos",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shared.Apply(cmd, cfg)

			demos, err := catalog.Default().Select()
			if err != nil {
				return err
			}
			for _, d := range demos {
				fmt.Fprintf(out, "%s\t%s\n", d.Name, d.Principle)
			}
			return nil
		},
		Flags: shared.GetFlags(),
	}
}
