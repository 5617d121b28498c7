// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intmat.yaml")
	text := "mode: legacy\nformat: json\noverflow_check: true\nscalars: [3, -2]\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, cfg.Mode)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.OverflowCheck)
	assert.Equal(t, []int{3, -2}, cfg.Scalars)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("INTMAT_MODE", "legacy")
	t.Setenv("INTMAT_FORMAT", "yaml")
	t.Setenv("INTMAT_OVERFLOW_CHECK", "true")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, cfg.Mode)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.True(t, cfg.OverflowCheck)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("INTMAT_MODE", "legacy")

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String(FlagMode, ModeStrict, "")
	flagSet.String(FlagFormat, FormatTable, "")
	flagSet.IntSlice(FlagScalar, nil, "")
	require.NoError(t, flagSet.Parse([]string{"--mode", "strict", "--scalar", "5", "--scalar", "-3"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, flagSet))
	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, cfg.Mode)
	assert.Equal(t, FormatTable, cfg.Format)
	assert.Equal(t, []int{5, -3}, cfg.Scalars)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("INTMAT_MODE", "fast")
	t.Setenv("INTMAT_FORMAT", "xml")

	_, err := Load(viper.New(), "")
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Mode=fast fails oneof=strict legacy")
	assert.Contains(t, err.Error(), "Format=xml fails oneof=table yaml json")
}

func TestValidate(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Scalars = make([]int, 33)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
