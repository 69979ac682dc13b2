package version

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X .../version.Version=...".
var Version = "unknown"

func GetCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(out, Version)
			return nil
		},
		Flags: []cli.Flag{},
	}
}
