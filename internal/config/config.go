// Package config loads server settings from defaults, an optional YAML
// file, a .env file, POKEDEX_* environment variables and command flags, in
// increasing order of precedence.
package config

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// EnvPrefix namespaces environment overrides, e.g. POKEDEX_REDIS_ADDR
const EnvPrefix = "POKEDEX"

// Config is the complete server configuration
type Config struct {
	HTTPPort               int    `mapstructure:"http_port"`
	GRPCPort               int    `mapstructure:"grpc_port"`
	Language               string `mapstructure:"language"`
	PageSize               int    `mapstructure:"page_size"`
	DescriptionPlaceholder string `mapstructure:"description_placeholder"`

	PokeAPI PokeAPI `mapstructure:"pokeapi"`
	Redis   Redis   `mapstructure:"redis"`
	Log     Log     `mapstructure:"log"`
}

// PokeAPI configures the upstream client
type PokeAPI struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
}

// Redis configures the translation cache. An empty Addr disables it.
type Redis struct {
	Addr string        `mapstructure:"addr"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// CacheEnabled reports whether a Redis address was configured
func (r Redis) CacheEnabled() bool {
	return r.Addr != ""
}

// Log configures the process logger
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names onto config keys
var flagKeys = map[string]string{
	"http-port":       "http_port",
	"grpc-port":       "grpc_port",
	"lang":            "language",
	"page-size":       "page_size",
	"pokeapi-url":     "pokeapi.base_url",
	"pokeapi-timeout": "pokeapi.timeout",
	"redis-addr":      "redis.addr",
	"log-level":       "log.level",
	"log-format":      "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_port", 8080)
	v.SetDefault("grpc_port", 50051)
	v.SetDefault("language", "fr")
	v.SetDefault("page_size", 20)
	v.SetDefault("description_placeholder", "Description non disponible")
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2/")
	v.SetDefault("pokeapi.timeout", "15s")
	v.SetDefault("pokeapi.max_concurrency", 16)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// RegisterFlags adds the overridable settings to a command's flag set
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Int("http-port", 8080, "HTTP port for pages and the JSON API")
	flags.Int("grpc-port", 50051, "gRPC port for the health service")
	flags.String("lang", "fr", "Default display language")
	flags.Int("page-size", 20, "Entries per list page")
	flags.String("pokeapi-url", "https://pokeapi.co/api/v2/", "PokeAPI base URL")
	flags.Duration("pokeapi-timeout", 15*time.Second, "Timeout for each PokeAPI request")
	flags.String("redis-addr", "", "Redis address for the translation cache (empty disables it)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console or json)")
	flags.String("config", "", "Path to a YAML config file")
	flags.String("env-file", ".env", "Path to a dotenv file")
}

// LoadOptions locates the optional sources
type LoadOptions struct {
	// Flags registered with RegisterFlags (optional)
	Flags *pflag.FlagSet
	// ConfigFile overrides the config/pokedex.yaml lookup (optional)
	ConfigFile string
	// EnvFile is loaded into the environment when it exists (optional)
	EnvFile string
}

// Load resolves the configuration and validates it
func Load(opts *LoadOptions) (*Config, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	if opts.Flags != nil {
		if f := opts.Flags.Lookup("config"); f != nil && f.Changed {
			opts.ConfigFile = f.Value.String()
		}
		if f := opts.Flags.Lookup("env-file"); f != nil && opts.EnvFile == "" {
			opts.EnvFile = f.Value.String()
		}
	}

	if opts.EnvFile != "" {
		// Existing environment variables win over the file
		if err := godotenv.Load(opts.EnvFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to load %s", opts.EnvFile)
		}
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("pokedex")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to bind flag %s", name)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) || opts.ConfigFile != "" {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks ranges and formats
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("http_port", c.HTTPPort, 1, 65535, vb)
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	if c.HTTPPort == c.GRPCPort {
		vb.Field("grpc_port", "must differ from http_port")
	}
	errors.ValidateRange("page_size", c.PageSize, 1, 100, vb)
	if _, err := language.Parse(c.Language); err != nil {
		vb.Fieldf("language", "invalid language tag %q", c.Language)
	}
	errors.ValidateRequired("description_placeholder", c.DescriptionPlaceholder, vb)

	errors.ValidateAbsoluteURL("pokeapi.base_url", c.PokeAPI.BaseURL, vb)
	if c.PokeAPI.Timeout <= 0 {
		vb.Field("pokeapi.timeout", "must be positive")
	}
	errors.ValidateRange("pokeapi.max_concurrency", c.PokeAPI.MaxConcurrency, 1, 256, vb)

	if c.Redis.CacheEnabled() && c.Redis.TTL <= 0 {
		vb.Field("redis.ttl", "must be positive when the cache is enabled")
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		vb.Field("log.format", "must be console or json")
	}
	return vb.Build()
}
