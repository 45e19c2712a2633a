package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/format"
)

const (
	// AppDirName is the directory under the XDG config home
	AppDirName = "phony"

	// EnvPrefix prefixes environment overrides
	EnvPrefix = "PHONY_"
)

// Outputs lists the accepted output encodings
var Outputs = []string{"text", "json", "yaml", "xml"}

// Config holds all settings
type Config struct {
	Country     string      `koanf:"country"`
	Output      string      `koanf:"output"`
	Workers     int         `koanf:"workers"`
	Format      Format      `koanf:"format"`
	Definitions Definitions `koanf:"definitions"`
}

// Format holds rendering settings
type Format struct {
	Style       string `koanf:"style"`
	Spaces      string `koanf:"spaces"`
	LocalSpaces string `koanf:"local_spaces"`
	Parentheses bool   `koanf:"parentheses"`
}

// Definitions selects the rule sets to load
type Definitions struct {
	// Builtin names embedded sets
	Builtin []string `koanf:"builtin"`
	// Paths are extra TOML or YAML files
	Paths []string `koanf:"paths"`
}

// Options controls Load
type Options struct {
	// Path is an explicit config file; it must exist
	Path string

	// Overrides are applied last, keyed by dotted path ("format.style")
	Overrides map[string]interface{}

	// SkipUser ignores the user config file
	SkipUser bool
}

// FormatOptions converts the format settings for rendering
func (c *Config) FormatOptions() (format.Options, error) {
	style, err := format.ParseStyle(c.Format.Style)
	if err != nil {
		return format.Options{}, err
	}
	return format.Options{
		Style:       style,
		Spaces:      c.Format.Spaces,
		LocalSpaces: c.Format.LocalSpaces,
		Parentheses: c.Format.Parentheses,
	}, nil
}

// Load builds the configuration from every layer
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config if it exists
	if !opts.SkipUser {
		if path := UserConfigPath(); path != "" {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
		}
	}

	// 3. Explicit config file
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.Path).
				WithDetail("path", opts.Path)
		}
		if err := loadFile(k, opts.Path); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if c.Country != "" && !validCountry(c.Country) {
		return errors.Newf(errors.ErrConfigValid, "country %q must be a calling code of one to three digits", c.Country).
			WithDetail("key", "country")
	}
	if !contains(Outputs, c.Output) {
		return errors.Newf(errors.ErrConfigValid, "output %q must be one of %s", c.Output, strings.Join(Outputs, ", ")).
			WithDetail("key", "output")
	}
	if c.Workers < 0 {
		return errors.Newf(errors.ErrConfigValid, "workers must not be negative, got %d", c.Workers).
			WithDetail("key", "workers")
	}
	if _, err := format.ParseStyle(c.Format.Style); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "format.style").WithDetail("key", "format.style")
	}
	return nil
}

// UserConfigPath returns the first existing user config file, or ""
func UserConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = xdg.ConfigHome
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, AppDirName, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config file %s", path).WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps PHONY_FORMAT_LOCAL_SPACES to format.local_spaces: the first
// underscore separates the section. PHONY_LOG_* belongs to the logger and
// is skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if strings.HasPrefix(key, "log_") {
		return ""
	}
	return strings.Replace(key, "_", ".", 1)
}

func validCountry(code string) bool {
	if len(code) > 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
