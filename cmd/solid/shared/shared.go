// Package shared holds flag definitions used by several solid subcommands.
package shared

import (
	"github.com/altRush/solid-design-principles/internal/config"
	"github.com/altRush/solid-design-principles/internal/log"
	"github.com/urfave/cli/v3"
)

const categoryOutput = "output"

// NoColorFlag disables coloured banners and status messages.
const NoColorFlag = "no-color"

// VerboseFlag enables [+] status messages on stderr.
const VerboseFlag = "verbose"

// GetFlags returns the output flags shared by run and list.
func GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     NoColorFlag,
			Usage:    "Disable coloured output (also SOLID_NO_COLOR / NO_COLOR)",
			Category: categoryOutput,
			Value:    false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Print status messages to stderr (also SOLID_VERBOSE)",
			Category: categoryOutput,
			Value:    false,
		},
	}
}

// Apply merges command-line flags over cfg and configures console output.
// Flags can only switch options on; env values stay in force otherwise.
func Apply(cmd *cli.Command, cfg config.Config) config.Config {
	cfg.NoColor = cfg.NoColor || cmd.Bool(NoColorFlag)
	cfg.Verbose = cfg.Verbose || cmd.Bool(VerboseFlag)
	log.Setup(cfg.NoColor)
	return cfg
}
