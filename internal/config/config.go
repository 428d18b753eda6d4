package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable seqtool reads.
const EnvPrefix = "SEQTOOL"

// DefaultEnvFile is read when no env file is named and it exists.
const DefaultEnvFile = ".env"

// Viper keys.
const (
	KeyInput     = "input"
	KeyLimit     = "limit"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

var keys = []string{KeyInput, KeyLimit, KeyLogLevel, KeyLogFormat}

// Log contains logging configuration.
type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// ApplyDefaults fills unset logging fields.
func (l *Log) ApplyDefaults() {
	if l.Level == "" {
		l.Level = "warn"
	}
	if l.Format == "" {
		l.Format = "console"
	}
}

// Config is the resolved configuration of one seqtool invocation.
type Config struct {
	// Input is a file path, or "-" for standard input.
	Input string `mapstructure:"input" validate:"required"`
	// Limit caps the number of results a command writes; 0 means no cap.
	Limit int `mapstructure:"limit" validate:"gte=0"`
	Log   Log `mapstructure:"log"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = "-"
	}
	c.Log.ApplyDefaults()
}

// Validate checks c against its struct tags.
func (c *Config) Validate() error {
	return Validate(c)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// EnvName returns the environment variable that sets key.
func EnvName(key string) string {
	return EnvPrefix + "_" + envReplacer.Replace(strings.ToUpper(key))
}

var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// NewViper returns a viper instance that reads SEQTOOL_* variables and
// falls back to the values of Default.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyLimit, d.Limit)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	return v
}

// ReadEnvFile layers the SEQTOOL_* entries of a .env file under the process
// environment of v. The process environment is left untouched. An empty
// path reads DefaultEnvFile if it exists; a named file must exist.
func ReadEnvFile(v *viper.Viper, path string) error {
	required := path != ""
	if !required {
		path = DefaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read env file %s: %w", path, err)
	}

	for _, key := range keys {
		val, ok := values[EnvName(key)]
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(EnvName(key)); set {
			continue
		}
		v.SetDefault(key, val)
	}
	return nil
}

// Load unmarshals, defaults and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
