// Package config describes the configuration for a tweakstack instance and
// the logic for loading it from a file and/or environment variables.
package config

import (
	ct "github.com/launchdarkly/go-configtypes"
)

const (
	defaultRedisHost  = "localhost"
	defaultRedisPort  = 6379
	defaultConsulHost = "localhost"
)

// Config describes the configuration for a tweak provider stack.
//
// If you are configuring the stack programmatically rather than from a file,
// start from the zero value and set only the fields you need; the zero value
// describes a stack containing only the in-memory launch-flag provider.
type Config struct {
	Main      MainConfig
	LocalFile LocalFileConfig
	Redis     RedisConfig
	Consul    ConsulConfig
	DynamoDB  DynamoDBConfig
}

// MainConfig contains global configuration options.
//
// This corresponds to the [Main] section in the configuration file.
type MainConfig struct {
	LogLevel OptLogLevel `conf:"LOG_LEVEL"`
}

// LocalFileConfig configures the optional bundled-defaults provider, which
// reads tweak values from a local JSON or YAML file. It is enabled if
// FilePath is non-empty.
//
// This corresponds to the [LocalFile] section in the configuration file.
type LocalFileConfig struct {
	FilePath string `conf:"TWEAKS_FILE"`
	Watch    bool   `conf:"TWEAKS_FILE_WATCH"`
}

// RedisConfig configures the optional Redis persisted-tweak store.
//
// Redis is enabled if URL or Host is non-empty or if Port is set. If only
// Host or Port is set, the other value defaults to defaultRedisHost or
// defaultRedisPort. It is an error to set Host or Port if URL is also set.
//
// This corresponds to the [Redis] section in the configuration file.
type RedisConfig struct {
	Host     string                   `conf:"REDIS_HOST"`
	Port     ct.OptIntGreaterThanZero `conf:"REDIS_PORT"`
	URL      ct.OptURLAbsolute        `conf:"REDIS_URL"`
	Username string                   `conf:"REDIS_USERNAME"`
	Password string                   `conf:"REDIS_PASSWORD"`
	TLS      bool                     `conf:"REDIS_TLS"`
	Prefix   string                   `conf:"REDIS_PREFIX"`
}

// ConsulConfig configures the optional Consul persisted-tweak store, which
// is enabled if Host is non-empty.
//
// This corresponds to the [Consul] section in the configuration file.
type ConsulConfig struct {
	Host      string `conf:"CONSUL_HOST"`
	Token     string `conf:"CONSUL_TOKEN"`
	TokenFile string `conf:"CONSUL_TOKEN_FILE"`
	Prefix    string `conf:"CONSUL_PREFIX"`
}

// DynamoDBConfig configures the optional DynamoDB persisted-tweak store,
// which is used only if Enabled is true.
//
// This corresponds to the [DynamoDB] section in the configuration file.
type DynamoDBConfig struct {
	Enabled   bool              `conf:"USE_DYNAMODB"`
	TableName string            `conf:"DYNAMODB_TABLE"`
	URL       ct.OptURLAbsolute `conf:"DYNAMODB_URL"`
	Prefix    string            `conf:"DYNAMODB_PREFIX"`
}
