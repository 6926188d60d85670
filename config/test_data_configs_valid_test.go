package config

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"
)

type testDataValidConfig struct {
	name        string
	makeConfig  func(c *Config)
	envVars     map[string]string
	fileContent string
	warnings    []string
}

func (tdc testDataValidConfig) assertResult(t *testing.T, actualConfig Config, mockLog *ldlogtest.MockLog) {
	var expectedConfig Config
	tdc.makeConfig(&expectedConfig)
	assert.Equal(t, expectedConfig, actualConfig)
	for _, message := range tdc.warnings {
		mockLog.AssertMessageMatch(t, true, ldlog.Warn, regexp.QuoteMeta(message))
	}
}

func mustOptIntGreaterThanZero(n int) ct.OptIntGreaterThanZero {
	o, err := ct.NewOptIntGreaterThanZero(n)
	if err != nil {
		panic(err)
	}
	return o
}

func newOptURLAbsoluteMustBeValid(urlString string) ct.OptURLAbsolute {
	o, err := ct.NewOptURLAbsoluteFromString(urlString)
	if err != nil {
		panic(err)
	}
	return o
}

func makeValidConfigs() []testDataValidConfig {
	return []testDataValidConfig{
		makeValidConfigAllBaseProperties(),
		makeValidConfigLocalFileMinimal(),
		makeValidConfigLocalFileWatch(),
		makeValidConfigRedisMinimal(),
		makeValidConfigRedisHostPort(),
		makeValidConfigRedisAll(),
		makeValidConfigConsulMinimal(),
		makeValidConfigConsulAll(),
		makeValidConfigDynamoDBMinimal(),
		makeValidConfigDynamoDBAll(),
	}
}

func makeValidConfigAllBaseProperties() testDataValidConfig {
	c := testDataValidConfig{name: "all base properties"}
	c.makeConfig = func(c *Config) {
		c.Main = MainConfig{
			LogLevel: NewOptLogLevel(ldlog.Warn),
		}
	}
	c.envVars = map[string]string{
		"LOG_LEVEL": "warn",
	}
	c.fileContent = `
[Main]
LogLevel = "warn"
`
	return c
}

func makeValidConfigLocalFileMinimal() testDataValidConfig {
	c := testDataValidConfig{name: "local file - minimal"}
	c.makeConfig = func(c *Config) {
		c.LocalFile.FilePath = "./defaults.json"
	}
	c.envVars = map[string]string{
		"TWEAKS_FILE": "./defaults.json",
	}
	c.fileContent = `
[LocalFile]
FilePath = "./defaults.json"
`
	return c
}

func makeValidConfigLocalFileWatch() testDataValidConfig {
	c := testDataValidConfig{name: "local file - watched"}
	c.makeConfig = func(c *Config) {
		c.LocalFile.FilePath = "./defaults.yaml"
		c.LocalFile.Watch = true
	}
	c.envVars = map[string]string{
		"TWEAKS_FILE":       "./defaults.yaml",
		"TWEAKS_FILE_WATCH": "1",
	}
	c.fileContent = `
[LocalFile]
FilePath = "./defaults.yaml"
Watch = 1
`
	return c
}

func makeValidConfigRedisMinimal() testDataValidConfig {
	c := testDataValidConfig{name: "Redis - minimal"}
	c.makeConfig = func(c *Config) {
		c.Redis.URL = newOptURLAbsoluteMustBeValid("redis://localhost:6379")
	}
	c.envVars = map[string]string{
		"USE_REDIS": "1",
	}
	c.fileContent = `
[Redis]
Host = "localhost"
`
	return c
}

func makeValidConfigRedisHostPort() testDataValidConfig {
	c := testDataValidConfig{name: "Redis - host and port"}
	c.makeConfig = func(c *Config) {
		c.Redis.URL = newOptURLAbsoluteMustBeValid("redis://redishost:2222")
	}
	c.envVars = map[string]string{
		"USE_REDIS":  "1",
		"REDIS_HOST": "redishost",
		"REDIS_PORT": "2222",
	}
	c.fileContent = `
[Redis]
Host = "redishost"
Port = 2222
`
	return c
}

func makeValidConfigRedisAll() testDataValidConfig {
	c := testDataValidConfig{name: "Redis - all properties"}
	c.makeConfig = func(c *Config) {
		c.Redis.URL = newOptURLAbsoluteMustBeValid("redis://redishost:6379")
		c.Redis.Username = "lucy"
		c.Redis.Password = "very-secret-password"
		c.Redis.TLS = true
		c.Redis.Prefix = "testrun1"
	}
	c.envVars = map[string]string{
		"USE_REDIS":      "1",
		"REDIS_URL":      "redis://redishost:6379",
		"REDIS_USERNAME": "lucy",
		"REDIS_PASSWORD": "very-secret-password",
		"REDIS_TLS":      "1",
		"REDIS_PREFIX":   "testrun1",
	}
	c.fileContent = `
[Redis]
Url = "redis://redishost:6379"
Username = "lucy"
Password = "very-secret-password"
Tls = 1
Prefix = "testrun1"
`
	return c
}

func makeValidConfigConsulMinimal() testDataValidConfig {
	c := testDataValidConfig{name: "Consul - minimal"}
	c.makeConfig = func(c *Config) {
		c.Consul.Host = defaultConsulHost
	}
	c.envVars = map[string]string{
		"USE_CONSUL": "1",
	}
	c.fileContent = `
[Consul]
Host = "localhost"
`
	return c
}

func makeValidConfigConsulAll() testDataValidConfig {
	c := testDataValidConfig{name: "Consul - all properties"}
	c.makeConfig = func(c *Config) {
		c.Consul.Host = "consulhost"
		c.Consul.Token = "abc"
		c.Consul.Prefix = "testrun1"
	}
	c.envVars = map[string]string{
		"USE_CONSUL":    "1",
		"CONSUL_HOST":   "consulhost",
		"CONSUL_TOKEN":  "abc",
		"CONSUL_PREFIX": "testrun1",
	}
	c.fileContent = `
[Consul]
Host = "consulhost"
Token = "abc"
Prefix = "testrun1"
`
	return c
}

func makeValidConfigDynamoDBMinimal() testDataValidConfig {
	c := testDataValidConfig{name: "DynamoDB - minimal"}
	c.makeConfig = func(c *Config) {
		c.DynamoDB.Enabled = true
		c.DynamoDB.TableName = "tweaks-table"
	}
	c.envVars = map[string]string{
		"USE_DYNAMODB":   "1",
		"DYNAMODB_TABLE": "tweaks-table",
	}
	c.fileContent = `
[DynamoDB]
Enabled = 1
TableName = "tweaks-table"
`
	return c
}

func makeValidConfigDynamoDBAll() testDataValidConfig {
	c := testDataValidConfig{name: "DynamoDB - all properties"}
	c.makeConfig = func(c *Config) {
		c.DynamoDB.Enabled = true
		c.DynamoDB.TableName = "tweaks-table"
		c.DynamoDB.URL = newOptURLAbsoluteMustBeValid("http://localhost:8000")
		c.DynamoDB.Prefix = "testrun1"
	}
	c.envVars = map[string]string{
		"USE_DYNAMODB":    "1",
		"DYNAMODB_TABLE":  "tweaks-table",
		"DYNAMODB_URL":    "http://localhost:8000",
		"DYNAMODB_PREFIX": "testrun1",
	}
	c.fileContent = `
[DynamoDB]
Enabled = 1
TableName = "tweaks-table"
Url = "http://localhost:8000"
Prefix = "testrun1"
`
	return c
}
