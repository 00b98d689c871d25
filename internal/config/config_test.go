package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dice-registry/internal/domain"
)

func TestLoadDiceNodeConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *DiceNodeConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  allowed_origins:
    - "https://dice.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
auth:
  jwt_public_key: "test-key"
  api_keys:
    - "key-1"
    - "key-2"
  allow_caller_header: true
engine:
  deployer: "0x1111111111111111111111111111111111111111"
  operator: "0x2222222222222222222222222222222222222222"
  min_mint_price: "1 ether"
  commission: 3
  price_unit: "1 finney"
nats:
  url: "nats://localhost:4222"
emitter:
  batch_size: 10
  poll_interval: "250ms"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DiceNodeConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, []string{"https://dice.example.com"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.False(t, cfg.Database.InMemory())
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.True(t, cfg.Auth.AllowCallerHeader)
				assert.Equal(t, "1 ether", cfg.Engine.MinMintPrice)
				assert.Equal(t, uint64(3), cfg.Engine.Commission)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, 10, cfg.Emitter.BatchSize)
				assert.Equal(t, 250*time.Millisecond, cfg.Emitter.PollInterval)
			},
		},
		{
			name: "config with defaults",
			configFile: `
engine:
  deployer: "0x1111111111111111111111111111111111111111"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DiceNodeConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.True(t, cfg.Database.InMemory())
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.False(t, cfg.Auth.AllowCallerHeader)
				assert.Equal(t, "0.01 ether", cfg.Engine.MinMintPrice)
				assert.Equal(t, uint64(domain.DEFAULT_COMMISSION), cfg.Engine.Commission)
				assert.Equal(t, "1 finney", cfg.Engine.PriceUnit)
				assert.Empty(t, cfg.NATS.URL)
				assert.Equal(t, "DICE_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "dice-node", cfg.NATS.ConnectionName)
				assert.Equal(t, "nats", cfg.Emitter.CursorName)
				assert.Equal(t, 100, cfg.Emitter.BatchSize)
				assert.Equal(t, time.Second, cfg.Emitter.PollInterval)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *DiceNodeConfig) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.True(t, cfg.Database.InMemory())
			},
		},
		{
			name: "invalid yaml",
			configFile: `
server:
  port: [not, a, port
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid port type",
			configFile: `
server:
  port: "not-a-number"
`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadDiceNodeConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadEventEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EventEmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
emitter:
  cursor_name: "archive"
  batch_size: 500
  retry_max_elapsed_time: "1m"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventEmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 5, cfg.NATS.MaxReconnects)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "test-connection", cfg.NATS.ConnectionName)
				assert.Equal(t, "archive", cfg.Emitter.CursorName)
				assert.Equal(t, 500, cfg.Emitter.BatchSize)
				assert.Equal(t, time.Minute, cfg.Emitter.RetryMaxElapsedTime)
				assert.Equal(t, 500*time.Millisecond, cfg.Emitter.RetryInitialInterval)
			},
		},
		{
			name: "missing database host",
			configFile: `
nats:
  url: "nats://localhost:4222"
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "missing nats url",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadEventEmitterConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				tt.validate(t, cfg)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestEngineConfig_RegistryConfig(t *testing.T) {
	deployer := "0x1111111111111111111111111111111111111111"

	tests := []struct {
		name        string
		config      EngineConfig
		expectError bool
		validate    func(*testing.T, EngineConfig)
	}{
		{
			name: "denominated amounts",
			config: EngineConfig{
				Deployer:     deployer,
				MinMintPrice: "1 ether",
				Commission:   1,
				PriceUnit:    "1 finney",
			},
			validate: func(t *testing.T, c EngineConfig) {
				cfg, err := c.RegistryConfig()
				require.NoError(t, err)
				assert.Equal(t, common.HexToAddress(deployer), cfg.Deployer)
				assert.Equal(t, common.Address{}, cfg.Operator) // defaults to the deployer at deploy time
				assert.Equal(t, "1000000000000000000", cfg.MinMintPrice.Dec())
				assert.Equal(t, "1000000000000000", cfg.PriceUnit.Dec())
				assert.Equal(t, uint64(1), cfg.Commission)
			},
		},
		{
			name: "explicit operator",
			config: EngineConfig{
				Deployer:     deployer,
				Operator:     "0x2222222222222222222222222222222222222222",
				MinMintPrice: "1000",
				PriceUnit:    "1",
			},
			validate: func(t *testing.T, c EngineConfig) {
				cfg, err := c.RegistryConfig()
				require.NoError(t, err)
				assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), cfg.Operator)
			},
		},
		{
			name:        "missing deployer",
			config:      EngineConfig{MinMintPrice: "1", PriceUnit: "1"},
			expectError: true,
		},
		{
			name:        "invalid min mint price",
			config:      EngineConfig{Deployer: deployer, MinMintPrice: "lots", PriceUnit: "1"},
			expectError: true,
		},
		{
			name:        "zero price unit",
			config:      EngineConfig{Deployer: deployer, MinMintPrice: "1", PriceUnit: "0"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectError {
				_, err := tt.config.RegistryConfig()
				assert.Error(t, err)
				return
			}
			tt.validate(t, tt.config)
		})
	}
}

func TestEngineConfig_Genesis(t *testing.T) {
	accounts, balance, err := (&EngineConfig{}).Genesis()
	require.NoError(t, err)
	assert.Nil(t, accounts)
	assert.Nil(t, balance)

	accounts, balance, err = (&EngineConfig{
		GenesisAccounts: []string{"0x1111111111111111111111111111111111111111", " 0x2222222222222222222222222222222222222222"},
		GenesisBalance:  "1.5 ether",
	}).Genesis()
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), accounts[1])
	assert.Equal(t, "1500000000000000000", balance.Dec())

	_, _, err = (&EngineConfig{
		GenesisAccounts: []string{domain.ETHEREUM_ZERO_ADDRESS},
		GenesisBalance:  "1 ether",
	}).Genesis()
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Viper uses FF_DICE_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `FF_DICE_DEBUG=true
FF_DICE_DATABASE_HOST=env-host
FF_DICE_DATABASE_PORT=3306
FF_DICE_AUTH_API_KEYS=env-key-1,env-key-2
FF_DICE_ENGINE_COMMISSION=7
FF_DICE_ENGINE_DEPLOYER=0x3333333333333333333333333333333333333333
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// godotenv.Overload sets process variables, clear them for the other tests
	t.Cleanup(func() {
		for _, key := range []string{
			"FF_DICE_DEBUG",
			"FF_DICE_DATABASE_HOST",
			"FF_DICE_DATABASE_PORT",
			"FF_DICE_AUTH_API_KEYS",
			"FF_DICE_ENGINE_COMMISSION",
			"FF_DICE_ENGINE_DEPLOYER",
		} {
			_ = os.Unsetenv(key)
		}
	})

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
engine:
  deployer: "0x1111111111111111111111111111111111111111"
  commission: 1
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadDiceNodeConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, []string{"env-key-1", "env-key-2"}, cfg.Auth.APIKeys)
	assert.Equal(t, uint64(7), cfg.Engine.Commission)
	assert.Equal(t, "0x3333333333333333333333333333333333333333", cfg.Engine.Deployer)
}
