package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/accountregistry/internal/flagx"
	"github.com/dmitrijs2005/accountregistry/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// Go duration strings ("5s") or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string          `json:"endpoint_addr_grpc"`
	MetricsAddr      string          `json:"metrics_addr"`
	StorageType      string          `json:"storage_type"`
	DatabaseDSN      string          `json:"database_dsn"`
	RedisURL         string          `json:"redis_url"`
	RedisKeyPrefix   string          `json:"redis_key_prefix"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	LogLevel         string          `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c/-config (or
// $ACCOUNTREGISTRY_CONFIG) onto config. Keys absent from the file keep their
// current values. An unreadable or malformed file panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.StorageType, c.StorageType)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.RedisURL, c.RedisURL)
	setString(&config.RedisKeyPrefix, c.RedisKeyPrefix)
	setString(&config.LogLevel, c.LogLevel)
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
