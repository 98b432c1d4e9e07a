package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Supported database drivers and engines
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnginePGX  = "pgx"
	EngineGorm = "gorm"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig holds storage settings. Env names follow DB_HOST, DB_PORT,
// DB_USERNAME, DB_PASSWORD, DB_NAME.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	Engine          string        `yaml:"engine"`
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"sslmode"`
	MaxConns        int           `yaml:"max_conns" split_words:"true"`
	MinConns        int           `yaml:"min_conns" split_words:"true"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" split_words:"true"`
	SQLitePath      string        `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
	AutoMigrate     bool          `yaml:"auto_migrate" split_words:"true"`
	Seed            bool          `yaml:"seed"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" split_words:"true"`
}

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	CORS     CORSConfig     `yaml:"cors"`
}

// envSections maps env prefixes to the section they override
func (c *Config) envSections() map[string]interface{} {
	return map[string]interface{}{
		"SERVER": &c.Server,
		"DB":     &c.Database,
		"LOG":    &c.Logging,
		"CORS":   &c.CORS,
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at
// configPath (optional), .env files and the process environment, in that
// order of increasing precedence.
func LoadConfig(configPath string, envFiles ...string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if err := loadFromFile(config, configPath); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(envFiles); err != nil {
		return nil, err
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	normalize(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.IdleTimeout = 120 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second

	config.Database.Driver = DriverPostgres
	config.Database.Engine = EnginePGX
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.Username = "postgres"
	config.Database.Password = "postgres"
	config.Database.Name = "courses"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 20
	config.Database.MinConns = 2
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.SQLitePath = "courses.db"
	config.Database.AutoMigrate = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.CORS.AllowedOrigins = []string{"*"}
}

func loadFromFile(config *Config, configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// loadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func loadDotEnv(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	for prefix, section := range config.envSections() {
		if err := envconfig.Process(prefix, section); err != nil {
			return err
		}
	}
	return nil
}

func normalize(config *Config) {
	config.Server.Mode = strings.ToLower(strings.TrimSpace(config.Server.Mode))
	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))
	config.Database.Engine = strings.ToLower(strings.TrimSpace(config.Database.Engine))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	// SQLite is only reachable through gorm
	if config.Database.Driver == DriverSQLite {
		config.Database.Engine = EngineGorm
	}
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if config.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown_timeout must be positive")
	}

	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if config.Database.Name == "" {
			return fmt.Errorf("database name is required")
		}
	case DriverSQLite:
		if config.Database.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if config.Database.Engine != EnginePGX && config.Database.Engine != EngineGorm {
		return fmt.Errorf("unsupported database engine %q", config.Database.Engine)
	}

	if config.Database.MaxConns < 1 {
		return fmt.Errorf("database max_conns must be positive")
	}
	if config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("database min_conns must be between 0 and max_conns")
	}

	if config.Logging.Format != "json" && config.Logging.Format != "text" {
		return fmt.Errorf("unsupported log format %q", config.Logging.Format)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.Username, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}
