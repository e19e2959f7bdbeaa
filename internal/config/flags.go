package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-db-host database host
//	-db-port database port
//	-db-user database user
//	-db-name database name
//	-db-ca-file path to the CA certificate for the database TLS connection
//	-c/-config json file path with configs
//
// The database password deliberately has no flag; it is taken from the
// environment or the JSON file so it does not leak into process listings.
func ParseFlags() *Config {
	var serverAddress string
	var requestTimeout time.Duration
	var dbHost string
	var dbPort int
	var dbUser string
	var dbName string
	var dbCAFile string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&dbHost, "db-host", "", "Database host")
	flag.IntVar(&dbPort, "db-port", 0, "Database port")
	flag.StringVar(&dbUser, "db-user", "", "Database user")
	flag.StringVar(&dbName, "db-name", "", "Database name")
	flag.StringVar(&dbCAFile, "db-ca-file", "", "CA certificate file for the database TLS connection")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Server: Server{
			Address:        serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Host:      dbHost,
				Port:      dbPort,
				User:      dbUser,
				Database:  dbName,
				SSLCAFile: dbCAFile,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
