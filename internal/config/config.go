package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config is the top-level configuration container for the ufo-sightings
// service. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// Address is the TCP address on which the HTTP server listens, in
	// "host:port" format (e.g. ":3000").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds reads and writes of a single inbound request
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups persistence configuration.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the PostgreSQL store. The connection is
// always made over TLS; SSLCA or SSLCAFile supplies the CA certificate the
// server presents its chain against.
type DB struct {
	// Host of the database server. Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// Port of the database server. Env: STORAGE_DB_PORT
	Port int `env:"PORT"`

	// User to authenticate as. Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password for User. Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Database name to connect to. Env: STORAGE_DB_DATABASE
	Database string `env:"DATABASE"`

	// SSLCA is the CA certificate in PEM form, passed inline. When set it
	// takes precedence over SSLCAFile.
	// Env: STORAGE_DB_SSL_CA
	SSLCA string `env:"SSL_CA"`

	// SSLCAFile is a path to the CA certificate file used when SSLCA is
	// empty. Env: STORAGE_DB_SSL_CA_FILE
	SSLCAFile string `env:"SSL_CA_FILE"`
}

// Defaults applied by the builder for fields left unset by every source.
const (
	DefaultAddress        = ":3000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDBPort         = 5432
	DefaultSSLCAFile      = "./ca.pem"
)

// DSN assembles the PostgreSQL connection string. TLS is mandatory: the
// server certificate is verified against the configured CA. An inline CA
// value is materialised into a temporary file because the driver accepts
// sslrootcert only as a path.
func (db DB) DSN() (string, error) {
	caFile := db.SSLCAFile
	if db.SSLCA != "" {
		f, err := os.CreateTemp("", "ufo-ca-*.pem")
		if err != nil {
			return "", fmt.Errorf("error materialising inline CA certificate: %w", err)
		}
		if _, err := f.WriteString(db.SSLCA); err != nil {
			f.Close()
			return "", fmt.Errorf("error writing inline CA certificate: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("error closing CA certificate file: %w", err)
		}
		caFile = f.Name()
	}

	query := url.Values{}
	query.Set("sslmode", "verify-full")
	query.Set("sslrootcert", caFile)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:     db.Database,
		RawQuery: query.Encode(),
	}

	return u.String(), nil
}

// GetConfig loads, merges, and validates the service configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
