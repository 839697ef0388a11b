package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables LoadFile binds, so that
// COLLECT_CONFIG_COLLECT_LOG_LEVEL overrides config.collect.log.level.
const EnvPrefix = "COLLECT"

// FromViper reads the dotted keys from v and returns the matching options.
func FromViper(v *viper.Viper) ([]Option, error) {
	values := make(map[string]any, 2)
	if v.IsSet(ConfigCollectLogLevel) {
		values[ConfigCollectLogLevel] = v.GetString(ConfigCollectLogLevel)
	}
	if v.IsSet(ConfigCollectMemoTableSize) {
		values[ConfigCollectMemoTableSize] = v.GetInt64(ConfigCollectMemoTableSize)
	}
	return FromMap(values)
}

// LoadFile reads a config file of any format viper understands, lets the
// environment override it, and installs the result with Configure.
func LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(delimiter, "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	opts, err := FromViper(v)
	if err != nil {
		return err
	}
	Configure(opts...)
	return nil
}
