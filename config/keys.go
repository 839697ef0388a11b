package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigCollectPrefix = ConfigPrefix + delimiter + "collect"

	ConfigCollectLogPrefix = ConfigCollectPrefix + delimiter + "log"
	ConfigCollectLogLevel  = ConfigCollectLogPrefix + delimiter + "level"

	ConfigCollectMemoPrefix    = ConfigCollectPrefix + delimiter + "memo"
	ConfigCollectMemoTableSize = ConfigCollectMemoPrefix + delimiter + "table_size"
)
