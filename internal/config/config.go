// SPDX-License-Identifier: MIT

// Package config resolves the CLI settings from, in increasing priority,
// built-in defaults, an optional config file, INTMAT_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. INTMAT_MODE.
const EnvPrefix = "INTMAT"

// Execution modes.
const (
	ModeStrict = "strict"
	ModeLegacy = "legacy"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Keys and the flags bound to them.
const (
	KeyMode          = "mode"
	KeyFormat        = "format"
	KeyOverflowCheck = "overflow_check"
	KeyScalars       = "scalars"
	KeyDebug         = "debug"

	FlagMode          = "mode"
	FlagFormat        = "format"
	FlagOverflowCheck = "overflow-check"
	FlagScalar        = "scalar"
	FlagDebug         = "debug"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the resolved CLI configuration.
type Config struct {
	Mode          string `mapstructure:"mode" validate:"oneof=strict legacy"`
	Format        string `mapstructure:"format" validate:"oneof=table yaml json"`
	OverflowCheck bool   `mapstructure:"overflow_check"`
	Scalars       []int  `mapstructure:"scalars" validate:"max=32"`
	Debug         bool   `mapstructure:"debug"`
}

// GetDefaultConfig returns the built-in defaults.
func GetDefaultConfig() *Config {
	return &Config{
		Mode:    ModeStrict,
		Format:  FormatTable,
		Scalars: []int{2, -1},
	}
}

var flagKeys = map[string]string{
	FlagMode:          KeyMode,
	FlagFormat:        KeyFormat,
	FlagOverflowCheck: KeyOverflowCheck,
	FlagScalar:        KeyScalars,
	FlagDebug:         KeyDebug,
}

// BindFlags binds whichever of the known flags exist in flagSet.
func BindFlags(v *viper.Viper, flagSet *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flagSet.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load resolves the configuration. path names an optional config file
// (any format viper reads); an empty path skips it.
func Load(v *viper.Viper, path string) (*Config, error) {
	def := GetDefaultConfig()
	v.SetDefault(KeyMode, def.Mode)
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyOverflowCheck, def.OverflowCheck)
	v.SetDefault(KeyScalars, def.Scalars)
	v.SetDefault(KeyDebug, def.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		if fe.Param() == "" {
			return fmt.Sprintf("%s=%v fails %s", fe.Field(), fe.Value(), fe.Tag())
		}
		return fmt.Sprintf("%s=%v fails %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
	})

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
