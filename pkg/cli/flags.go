package cli

import (
	"fmt"
	"strings"

	"github.com/mchmarny/captcha/pkg/captcha"
	"github.com/mchmarny/captcha/pkg/config"
	"github.com/urfave/cli/v3"
)

const (
	debugFlagName    = "debug"
	logLevelFlagName = "log-level"
	formatFlagName   = "format"
	configFlagName   = "config"
	strictFlagName   = "strict"
)

// newFlags returns fresh flag instances; urfave/cli v3 flags keep parse
// state and cannot be shared between commands.
func newFlags(v captcha.Variant) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:  debugFlagName,
			Usage: "Prints verbose logs (optional, default: false)",
		},
		&cli.StringFlag{
			Name:  logLevelFlagName,
			Usage: "Log level [debug, info, warn, error]",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  formatFlagName,
			Usage: fmt.Sprintf("Output format [%s]", strings.Join(config.Formats, ", ")),
			Value: config.FormatText,
		},
		&cli.StringFlag{
			Name:  configFlagName,
			Usage: "Path to the YAML options file (optional)",
		},
	}

	if v.Name == captcha.Half.Name {
		flags = append(flags, &cli.BoolFlag{
			Name:  strictFlagName,
			Usage: "Reject input with an odd number of digits (optional, default: false)",
		})
	}
	return flags
}

// resolveOptions loads the options file and applies flags set on the
// command line over it.
func resolveOptions(c *cli.Command) (*config.Options, error) {
	opts, err := config.Load(c.String(configFlagName))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if c.IsSet(formatFlagName) {
		opts.Format = c.String(formatFlagName)
	}
	if c.IsSet(logLevelFlagName) {
		opts.LogLevel = c.String(logLevelFlagName)
	}
	if c.IsSet(strictFlagName) {
		opts.Strict = c.Bool(strictFlagName)
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}
