package config

import (
	"os"
	"slices"
	"strings"

	"github.com/mchmarny/captcha/pkg/logging"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// FormatText prints only the checksum.
	FormatText = "text"
	// FormatJSON prints the result as indented JSON.
	FormatJSON = "json"
	// FormatYAML prints the result as YAML.
	FormatYAML = "yaml"

	fileMode = 0600
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Options holds the run options that can be set from a YAML file.
type Options struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Strict   bool   `yaml:"strict"`
}

// Default returns the options used when no file is given.
func Default() *Options {
	return &Options{
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Validate normalizes the options and checks their values.
func (o *Options) Validate() error {
	o.Format = NormalizeFormat(o.Format)
	if !slices.Contains(Formats, o.Format) {
		return errors.Errorf("unsupported format: %s (valid: %s)", o.Format, strings.Join(Formats, ", "))
	}
	if !logging.IsLogLevel(o.LogLevel) {
		return errors.Errorf("unsupported log level: %s", o.LogLevel)
	}
	return nil
}

// NormalizeFormat lower-cases the format and maps aliases.
func NormalizeFormat(f string) string {
	f = strings.ToLower(strings.TrimSpace(f))
	switch f {
	case "":
		return FormatText
	case "yml":
		return FormatYAML
	case "txt":
		return FormatText
	}
	return f
}

// Load reads options from the YAML file at path. Values missing from the
// file keep their defaults. An empty path returns the defaults.
func Load(path string) (*Options, error) {
	o := Default()
	if path == "" {
		return o, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	if err := yaml.Unmarshal(b, o); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}

	if err := o.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}
	return o, nil
}

// Save writes options to the YAML file at path.
func Save(path string, o *Options) error {
	if path == "" {
		return errors.New("config path required")
	}
	if o == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(o)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}
