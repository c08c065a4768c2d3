package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090"), empty disables
//	-t string   storage backend: postgres, redis or memory
//	-d string   PostgreSQL DSN
//	-r string   Redis URL
//	-o int      request timeout, seconds
//	-l string   log level
//
// Args are filtered through flagx.FilterArgs first, so -c/-config and other
// foreign flags are ignored here. RequestTimeout is only overwritten when -o
// is given, so a sub-second value from JSON survives.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-t", "-d", "-r", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to expose metrics")
	fs.StringVar(&config.StorageType, "t", config.StorageType, "storage type (postgres, redis, memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL")

	requestTimeout := fs.Int("o", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
