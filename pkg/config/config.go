package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override file values
const EnvPrefix = "DOTLINK_"

// Variable names made available to path expansion after resolution
const (
	VarRepository = "clone_repository"
	VarDotdir     = "dotdir"
)

// Config is the configuration file as written, before any expansion
type Config struct {
	Repository string   `koanf:"clone_repository"`
	Dotdir     string   `koanf:"dotdir"`
	Linkfiles  []string `koanf:"linkfiles"`
	CreateDirs bool     `koanf:"create_dirs"`

	// Path is the file the configuration was read from
	Path string `koanf:"-"`
}

// defaults returns the values used when neither the file nor the
// environment set a key.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"create_dirs": true,
		"linkfiles":   []string{},
	}
}

// Load reads the configuration file at path and applies environment
// overrides.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read configuration file %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load configuration defaults")
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse configuration file %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid configuration in %s", path).
			WithDetail("path", path)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("repository", cfg.Repository).
		Str("dotdir", cfg.Dotdir).
		Strs("linkfiles", cfg.Linkfiles).
		Bool("createDirs", cfg.CreateDirs).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps DOTLINK_CREATE_DIRS to create_dirs. DOTLINK_CONFIG selects
// the file itself and is not a key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if s == paths.EnvConfig {
		return ""
	}
	return key
}

// Validate checks that the configuration names somewhere to link from
func (c *Config) Validate() error {
	if c.Dotdir == "" && c.Repository == "" {
		return errors.New(errors.ErrConfigInvalid, "configuration must set dotdir or clone_repository").
			WithDetail("path", c.Path)
	}
	for i, lf := range c.Linkfiles {
		if strings.TrimSpace(lf) == "" {
			return errors.Newf(errors.ErrConfigInvalid, "linkfiles[%d] is empty", i).
				WithDetail("path", c.Path)
		}
	}
	return nil
}
