package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/captcha/pkg/captcha"
	"github.com/mchmarny/captcha/pkg/config"
	"github.com/mchmarny/captcha/pkg/logging"
	"github.com/urfave/cli/v3"
)

const (
	appName = "captcha"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Execute creates and runs the combined CLI with one subcommand per variant.
func Execute() {
	run(newApp())
}

// ExecuteVariant creates and runs a standalone CLI for the named variant.
func ExecuteVariant(name string) {
	logging.SetDefaultCLILogger("info")

	app, err := newVariantApp(name)
	if err != nil {
		fatalErr(err)
	}
	run(app)
}

func run(app *cli.Command) {
	logging.SetDefaultCLILogger("info")

	if err := app.Run(context.Background(), os.Args); err != nil {
		fatalErr(err)
	}
}

func fatalErr(err error) {
	slog.Error("fatal error", "error", err)
	os.Exit(1)
}

func versionString() string {
	return fmt.Sprintf("%s (%s - %s)", version, commit, date)
}

func newApp() *cli.Command {
	cmds := make([]*cli.Command, 0, len(captcha.Variants))
	for _, v := range captcha.Variants {
		cmds = append(cmds, newVariantCommand(v))
	}

	return &cli.Command{
		Name:            appName,
		Version:         versionString(),
		Usage:           "Digit-pair checksum calculator",
		HideHelpCommand: true,
		Commands:        cmds,
	}
}

func newVariantApp(name string) (*cli.Command, error) {
	v, err := captcha.VariantByName(name)
	if err != nil {
		return nil, fmt.Errorf("building %s app: %w", appName, err)
	}

	c := newVariantCommand(v)
	c.Name = appName + "-" + v.Name
	c.Version = versionString()
	return c, nil
}

func newVariantCommand(v captcha.Variant) *cli.Command {
	return &cli.Command{
		Name:            v.Name,
		Usage:           v.Usage,
		ArgsUsage:       "<file>",
		HideHelpCommand: true,
		Flags:           newFlags(v),
		Action: func(ctx context.Context, c *cli.Command) error {
			return cmdChecksum(ctx, c, v)
		},
	}
}

func initLogging(opts *config.Options, debug bool) {
	level := opts.LogLevel
	if debug {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level)
}
