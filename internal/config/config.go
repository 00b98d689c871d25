package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-dice-registry/internal/domain"
	"github.com/feral-file/ff-dice-registry/internal/registry"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration.
// An empty host selects the in-memory store.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey      string   `mapstructure:"jwt_public_key"`
	APIKeys           []string `mapstructure:"api_keys"`
	AllowCallerHeader bool     `mapstructure:"allow_caller_header"`
}

// EngineConfig holds the deployment parameters of the contracts
type EngineConfig struct {
	Deployer     string `mapstructure:"deployer"`
	Operator     string `mapstructure:"operator"`
	MinMintPrice string `mapstructure:"min_mint_price"` // wei or denominated, e.g. "0.01 ether"
	Commission   uint64 `mapstructure:"commission"`     // in price units
	PriceUnit    string `mapstructure:"price_unit"`     // wei or denominated, e.g. "1 finney"

	// Accounts credited with GenesisBalance on start when they hold nothing
	GenesisAccounts []string `mapstructure:"genesis_accounts"`
	GenesisBalance  string   `mapstructure:"genesis_balance"`
}

// EmitterConfig holds the event relay configuration
type EmitterConfig struct {
	CursorName           string        `mapstructure:"cursor_name"`
	BatchSize            int           `mapstructure:"batch_size"`
	PollInterval         time.Duration `mapstructure:"poll_interval"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
	RetryMaxInterval     time.Duration `mapstructure:"retry_max_interval"`
	RetryMaxElapsedTime  time.Duration `mapstructure:"retry_max_elapsed_time"`
}

// DiceNodeConfig holds configuration for dice-node.
// When nats.url is set the node also relays its journal to NATS.
type DiceNodeConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Engine     EngineConfig   `mapstructure:"engine"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Emitter    EmitterConfig  `mapstructure:"emitter"`
}

// EventEmitterConfig holds configuration for event-emitter
type EventEmitterConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Emitter    EmitterConfig  `mapstructure:"emitter"`
}

// LoadDiceNodeConfig loads configuration for dice-node
func LoadDiceNodeConfig(configFile string, envPath string) (*DiceNodeConfig, error) {
	v := configureViper("dice-node", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("auth.allow_caller_header", false)
	v.SetDefault("engine.min_mint_price", "0.01 ether")
	v.SetDefault("engine.commission", domain.DEFAULT_COMMISSION)
	v.SetDefault("engine.price_unit", "1 finney")
	v.SetDefault("engine.genesis_balance", "100 ether")
	setNATSDefaults(v, "dice-node")
	setEmitterDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config DiceNodeConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadEventEmitterConfig loads configuration for event-emitter
func LoadEventEmitterConfig(configFile string, envPath string) (*EventEmitterConfig, error) {
	v := configureViper("event-emitter", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	setNATSDefaults(v, "dice-event-emitter")
	setEmitterDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config EventEmitterConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Host == "" {
		return nil, errors.New("database.host is required by the event emitter")
	}
	if config.NATS.URL == "" {
		return nil, errors.New("nats.url is required by the event emitter")
	}

	return &config, nil
}

func setNATSDefaults(v *viper.Viper, connectionName string) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "DICE_EVENTS")
	v.SetDefault("nats.connection_name", connectionName)
}

func setEmitterDefaults(v *viper.Viper) {
	v.SetDefault("emitter.cursor_name", "nats")
	v.SetDefault("emitter.batch_size", 100)
	v.SetDefault("emitter.poll_interval", "1s")
	v.SetDefault("emitter.retry_initial_interval", "500ms")
	v.SetDefault("emitter.retry_max_interval", "30s")
	v.SetDefault("emitter.retry_max_elapsed_time", "0s")
}

// readConfig reads the config file, falling back to environment variables when there is none
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/dice-node/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_DICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.allow_caller_header",
		// Engine
		"engine.deployer",
		"engine.operator",
		"engine.min_mint_price",
		"engine.commission",
		"engine.price_unit",
		"engine.genesis_accounts",
		"engine.genesis_balance",
		// Emitter
		"emitter.cursor_name",
		"emitter.batch_size",
		"emitter.poll_interval",
		"emitter.retry_initial_interval",
		"emitter.retry_max_interval",
		"emitter.retry_max_elapsed_time",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// InMemory reports whether the in-memory store is selected
func (c *DatabaseConfig) InMemory() bool {
	return c.Host == ""
}

// RegistryConfig parses the engine parameters into a deployment configuration
func (c *EngineConfig) RegistryConfig() (registry.Config, error) {
	deployer, err := domain.ParseAddress(c.Deployer)
	if err != nil {
		return registry.Config{}, fmt.Errorf("engine.deployer: %w", err)
	}

	var operator common.Address
	if c.Operator != "" {
		operator, err = domain.ParseAddress(c.Operator)
		if err != nil {
			return registry.Config{}, fmt.Errorf("engine.operator: %w", err)
		}
	}

	minMintPrice, err := domain.ParseAmount(c.MinMintPrice)
	if err != nil {
		return registry.Config{}, fmt.Errorf("engine.min_mint_price: %w", err)
	}

	priceUnit, err := domain.ParseAmount(c.PriceUnit)
	if err != nil {
		return registry.Config{}, fmt.Errorf("engine.price_unit: %w", err)
	}
	if priceUnit.IsZero() {
		return registry.Config{}, errors.New("engine.price_unit must be positive")
	}

	return registry.Config{
		Deployer:     deployer,
		Operator:     operator,
		MinMintPrice: minMintPrice,
		Commission:   c.Commission,
		PriceUnit:    priceUnit,
	}, nil
}

// Genesis parses the genesis accounts and the balance each of them starts with
func (c *EngineConfig) Genesis() ([]common.Address, *uint256.Int, error) {
	if len(c.GenesisAccounts) == 0 {
		return nil, nil, nil
	}

	balance, err := domain.ParseAmount(c.GenesisBalance)
	if err != nil {
		return nil, nil, fmt.Errorf("engine.genesis_balance: %w", err)
	}

	accounts := make([]common.Address, 0, len(c.GenesisAccounts))
	for _, s := range c.GenesisAccounts {
		account, err := domain.ParseAddress(strings.TrimSpace(s))
		if err != nil {
			return nil, nil, fmt.Errorf("engine.genesis_accounts: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, balance, nil
}
