package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/collect_ive_go/config"
)

const yamlConfig = `
config:
  collect:
    log:
      level: warn
    memo:
      table_size: 64
`

func TestFromViper(t *testing.T) {
	defer config.Reset()

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yamlConfig)))

	opts, err := config.FromViper(v)
	require.NoError(t, err)
	config.Configure(opts...)

	assert.Equal(t, uint32(64), config.Current().MemoTableSize)
	assert.True(t, config.Logger().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, config.Logger().Core().Enabled(zapcore.InfoLevel))
}

func TestFromViper_Empty(t *testing.T) {
	opts, err := config.FromViper(viper.New())
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestFromViper_InvalidLevel(t *testing.T) {
	v := viper.New()
	v.Set(config.ConfigCollectLogLevel, "loud")
	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	defer config.Reset()

	path := filepath.Join(t.TempDir(), "collect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o600))
	t.Setenv("COLLECT_CONFIG_COLLECT_MEMO_TABLE_SIZE", "128")

	require.NoError(t, config.LoadFile(path))
	assert.Equal(t, uint32(128), config.Current().MemoTableSize)
}

func TestLoadFile_Missing(t *testing.T) {
	err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
