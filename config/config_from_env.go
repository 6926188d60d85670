package config

import (
	ct "github.com/launchdarkly/go-configtypes"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// LoadConfigFromEnvironment sets parameters in a Config struct from
// environment variables.
//
// The Config parameter should be initialized with default values first.
func LoadConfigFromEnvironment(c *Config, loggers ldlog.Loggers) error {
	reader := ct.NewVarReaderFromEnvironment()

	reader.ReadStruct(&c.Main, false)
	reader.ReadStruct(&c.LocalFile, false)

	useRedis := false
	reader.Read("USE_REDIS", &useRedis)
	if useRedis || c.Redis.Host != "" || c.Redis.URL.IsDefined() {
		reader.ReadStruct(&c.Redis, false)
		if !c.Redis.URL.IsDefined() && c.Redis.Host == "" && !c.Redis.Port.IsDefined() {
			// all they specified was USE_REDIS
			c.Redis.Host = defaultRedisHost
		}
	}

	useConsul := false
	reader.Read("USE_CONSUL", &useConsul)
	if useConsul {
		c.Consul.Host = defaultConsulHost
		reader.ReadStruct(&c.Consul, false)
	}

	reader.Read("USE_DYNAMODB", &c.DynamoDB.Enabled)
	if c.DynamoDB.Enabled {
		reader.ReadStruct(&c.DynamoDB, false)
	}

	if !reader.Result().OK() {
		return reader.Result().GetError()
	}

	return ValidateConfig(c, loggers)
}
