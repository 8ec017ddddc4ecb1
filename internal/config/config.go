package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string         // Env is the current environment: local, development, production.
	Postgres   PostgresConfig // Postgres holds the database configuration
	HTTP       HTTPConfig     // HTTP holds the API and monitoring servers configuration
	Monitoring int            // Monitoring is the port of the /metrics and /healthz server
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// HTTPConfig struct holds the configuration of the public API server.
type HTTPConfig struct {
	Port            int           // Port is the API server port.
	ShutdownTimeout time.Duration // ShutdownTimeout bounds the graceful shutdown of the servers.
}

// URL builds the connection string for the pgx pool.
func (p PostgresConfig) URL() string {
	dbURL := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.Dbname,
		RawQuery: "sslmode=disable",
	}

	return dbURL.String()
}

// MustLoad loads the configuration from environment variables and, when CONFIG_PATH is set,
// from a YAML file. Environment variables take precedence over the file.
func MustLoad() *Config {
	vpr := viper.New()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("http.port", 8000)
	vpr.SetDefault("http.shutdown_timeout", "10s")
	vpr.SetDefault("monitoring.port", 8080)

	bindings := map[string]string{
		"env":                   "EMPLOYEES_ENV",
		"postgres.host":         "DB_HOST",
		"postgres.port":         "DB_PORT",
		"postgres.user":         "DB_USERNAME",
		"postgres.password":     "DB_PASSWORD",
		"postgres.db_name":      "DB_NAME",
		"http.port":             "HTTP_PORT",
		"http.shutdown_timeout": "HTTP_SHUTDOWN_TIMEOUT",
		"monitoring.port":       "MONITORING_PORT",
	}
	for key, env := range bindings {
		if err := vpr.BindEnv(key, env); err != nil {
			panic(fmt.Sprintf("failed to bind %s to %s: %v", key, env, err))
		}
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		vpr.SetConfigType("yaml")
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	shutdownTimeout, err := time.ParseDuration(vpr.GetString("http.shutdown_timeout"))
	if err != nil {
		panic("failed to parse shutdown timeout from configuration")
	}

	return &Config{
		Env: vpr.GetString("env"),
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		HTTP: HTTPConfig{
			Port:            vpr.GetInt("http.port"),
			ShutdownTimeout: shutdownTimeout,
		},
		Monitoring: vpr.GetInt("monitoring.port"),
	}
}
