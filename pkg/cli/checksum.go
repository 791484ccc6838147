package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/mchmarny/captcha/pkg/captcha"
	"github.com/mchmarny/captcha/pkg/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Result is the structured output of a single run.
type Result struct {
	Variant  string `json:"variant" yaml:"variant"`
	Input    string `json:"input" yaml:"input"`
	Digits   int    `json:"digits" yaml:"digits"`
	Checksum int    `json:"checksum" yaml:"checksum"`
}

func cmdChecksum(_ context.Context, c *cli.Command, v captcha.Variant) error {
	if n := c.Args().Len(); n != 1 {
		return fmt.Errorf("expected exactly one input file argument, got %d", n)
	}

	opts, err := resolveOptions(c)
	if err != nil {
		return err
	}
	initLogging(opts, c.Bool(debugFlagName))

	path := c.Args().First()
	log := slog.Default().With("variant", v.Name)
	log.Debug("computing checksum", "path", path, "format", opts.Format, "strict", opts.Strict)

	d, err := captcha.Load(path)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	if opts.Strict {
		v = v.Strict()
	}

	sum, err := v.Sum(d)
	if err != nil {
		return fmt.Errorf("computing %s checksum: %w", v.Name, err)
	}
	log.Debug("checksum computed", "digits", len(d), "checksum", sum)

	r := &Result{
		Variant:  v.Name,
		Input:    path,
		Digits:   len(d),
		Checksum: sum,
	}

	if err := encode(c.Root().Writer, opts.Format, r); err != nil {
		return fmt.Errorf("encoding %s result: %w", opts.Format, err)
	}
	return nil
}

func encode(w io.Writer, format string, r *Result) error {
	switch format {
	case config.FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(r)
	case config.FormatYAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(r); err != nil {
			return err
		}
		return e.Close()
	default:
		_, err := fmt.Fprintln(w, r.Checksum)
		return err
	}
}
