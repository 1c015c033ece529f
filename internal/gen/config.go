package gen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"runtime"
	"strings"
	"unicode"

	"github.com/on-the-ground/cie1931/lut"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPackage = "tables"
	DefaultType    = "uint8"
)

var ErrInvalidConfig = errors.New("invalid generator config")

// TableSpec describes one table to generate.
type TableSpec struct {
	Name      string `yaml:"name"`
	InputMax  uint   `yaml:"input_max"`
	OutputMax uint64 `yaml:"output_max"`
	Type      string `yaml:"type"`
	Output    string `yaml:"output"`
}

// Config is the batch description read from a YAML file.
type Config struct {
	Package string      `yaml:"package"`
	Workers int         `yaml:"workers"`
	Tables  []TableSpec `yaml:"tables"`
}

// LoadConfig reads and validates the YAML config at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig decodes a YAML config, fills in defaults and validates it.
// Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithDefaults returns a copy of c with every omitted field filled in.
func (c Config) WithDefaults() Config {
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	tables := make([]TableSpec, len(c.Tables))
	for i, s := range c.Tables {
		tables[i] = s.WithDefaults()
	}
	c.Tables = tables
	return c
}

// Validate reports every problem with the config, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if !token.IsIdentifier(c.Package) {
		invalid("package %q is not an identifier", c.Package)
	}
	if len(c.Tables) == 0 {
		invalid("no tables")
	}

	names := make(map[string]struct{}, len(c.Tables))
	outputs := make(map[string]struct{}, len(c.Tables))
	for i, s := range c.Tables {
		if !token.IsIdentifier(s.Name) || !token.IsExported(s.Name) {
			invalid("table %d: name %q is not an exported identifier", i, s.Name)
		}
		if _, dup := names[s.Name]; dup {
			invalid("table %d: duplicate name %q", i, s.Name)
		}
		names[s.Name] = struct{}{}

		if _, dup := outputs[s.Output]; dup {
			invalid("table %d: duplicate output %q", i, s.Output)
		}
		outputs[s.Output] = struct{}{}

		if _, perr := s.Params(); perr != nil {
			for _, e := range multierr.Errors(perr) {
				invalid("table %d (%s): %w", i, s.Name, e)
			}
		}
	}
	return err
}

// WithDefaults returns a copy of s with the type, name and output filled in.
func (s TableSpec) WithDefaults() TableSpec {
	if s.Type == "" {
		s.Type = DefaultType
	}
	if s.Name == "" {
		s.Name = fmt.Sprintf("Lightness%dx%d", s.InputMax, s.OutputMax)
	}
	if s.Output == "" {
		s.Output = strings.ToLower(s.Name) + ".go"
	}
	return s
}

// Params converts the spec into validated table parameters.
func (s TableSpec) Params() (lut.Params, error) {
	kind, err := lut.ParseKind(s.Type)
	if err != nil {
		return lut.Params{}, err
	}
	p := lut.Params{InputMax: s.InputMax, OutputMax: s.OutputMax, Kind: kind}
	if err := p.Validate(); err != nil {
		return lut.Params{}, err
	}
	return p, nil
}

// unexported turns an exported identifier into the prefix of its private constants.
func unexported(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
