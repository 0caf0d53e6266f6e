package config

import (
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config.
// A double underscore separates nesting levels: DICTATOR_RUN__DRY_RUN.
const EnvPrefix = "DICTATOR_"

// listKeys are split on commas when they come from the environment
var listKeys = map[string]bool{
	"paths.unit_files": true,
}

// Config is the resolved runtime configuration
type Config struct {
	Paths  PathsConfig
	Run    RunConfig
	Output OutputConfig
	Watch  WatchConfig
}

type PathsConfig struct {
	UnitsDir  string   `validate:"required"`
	UnitFiles []string `validate:"min=1,dive,required"`
}

type RunConfig struct {
	DryRun    bool
	KeepGoing bool
}

type OutputConfig struct {
	Format string `validate:"oneof=auto term text json"`
}

type WatchConfig struct {
	Debounce time.Duration `validate:"gt=0"`
}

// Sources lists the optional config files layered over the defaults.
// Missing files are skipped.
type Sources struct {
	UserConfig string
	RootConfig string
}

// Load builds the koanf instance from all layers in precedence order
func Load(src Sources) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, 3. root config
	for _, path := range []string{src.UserConfig, src.RootConfig} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	// 4. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
	}

	return k, nil
}

// envKey maps DICTATOR_OUTPUT__FORMAT to output.format
func envKey(key, value string) (string, interface{}) {
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	name = strings.ReplaceAll(name, "__", ".")
	if listKeys[name] {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return name, out
	}
	return name, value
}

// FromKoanf extracts and validates a Config
func FromKoanf(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		Paths: PathsConfig{
			UnitsDir:  k.String("paths.units_dir"),
			UnitFiles: k.Strings("paths.unit_files"),
		},
		Run: RunConfig{
			DryRun:    k.Bool("run.dry_run"),
			KeepGoing: k.Bool("run.keep_going"),
		},
		Output: OutputConfig{
			Format: k.String("output.format"),
		},
		Watch: WatchConfig{
			Debounce: k.Duration("watch.debounce"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}
	return cfg, nil
}

// New loads every layer and returns the resolved Config
func New(src Sources) (*Config, error) {
	k, err := Load(src)
	if err != nil {
		return nil, err
	}
	return FromKoanf(k)
}

// Default returns the configuration built from embedded defaults only
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	cfg, err := FromKoanf(k)
	if err != nil {
		panic(err)
	}
	return cfg
}
