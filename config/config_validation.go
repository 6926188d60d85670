package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ct "github.com/launchdarkly/go-configtypes"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

var (
	errRedisURLWithHostAndPort = errors.New("please specify Redis URL or host/port, but not both")
	errRedisBadHostname        = errors.New("invalid Redis hostname")
	errConsulTokenAndTokenFile = errors.New("Consul token must be specified as either an inline value or a file, but not both") //nolint:stylecheck
	errConsulTokenFileNotFound = errors.New("Consul token file not found")                                                      //nolint:stylecheck
	errWatchWithoutFilePath    = errors.New("LocalFile.Watch requires LocalFile.FilePath to be set")
	errDynamoDBWithNoTableName = errors.New("TableName is required if DynamoDB is enabled")
)

func errMultipleDatabases(databases []string) error {
	return fmt.Errorf("multiple databases are enabled (%s); only one is allowed", strings.Join(databases, ", "))
}

// ValidateConfig ensures that the configuration does not contain
// contradictory properties.
//
// This method covers validation rules that can't be enforced on a per-field
// basis (for instance, if either field A or field B can be specified but it's
// invalid to specify both). It is allowed to modify the Config struct in
// order to canonicalize settings (for instance, converting Redis host/port
// settings into a Redis URL).
//
// LoadConfigFromEnvironment and LoadConfigFile both call this method as a
// last step, but it is also called again by NewStackFromConfig because it is
// possible for application code to construct a Config programmatically.
func ValidateConfig(c *Config, loggers ldlog.Loggers) error {
	var result ct.ValidationResult

	validateConfigLocalFile(&result, c)
	validateConfigDatabases(&result, c, loggers)

	return result.GetError()
}

func validateConfigLocalFile(result *ct.ValidationResult, c *Config) {
	if c.LocalFile.Watch && c.LocalFile.FilePath == "" {
		result.AddError(nil, errWatchWithoutFilePath)
	}
}

func validateConfigDatabases(result *ct.ValidationResult, c *Config, loggers ldlog.Loggers) {
	normalizeRedisConfig(result, c)

	databases := []string{}
	if c.Redis.URL.IsDefined() {
		databases = append(databases, "Redis")
	}
	if c.Consul.Host != "" {
		databases = append(databases, "Consul")
	}
	if c.DynamoDB.Enabled {
		databases = append(databases, "DynamoDB")
	}

	if len(databases) > 1 {
		result.AddError(nil, errMultipleDatabases(databases))
		return // no point doing further database config validation if it's in this state
	}

	if c.Consul.Host != "" {
		switch {
		case c.Consul.Token != "" && c.Consul.TokenFile != "":
			result.AddError(nil, errConsulTokenAndTokenFile)
		case c.Consul.TokenFile != "":
			if _, err := os.Stat(c.Consul.TokenFile); os.IsNotExist(err) {
				result.AddError(nil, errConsulTokenFileNotFound)
			}
		}
	}

	if c.DynamoDB.Enabled && c.DynamoDB.TableName == "" {
		result.AddError(nil, errDynamoDBWithNoTableName)
	}
}

func normalizeRedisConfig(result *ct.ValidationResult, c *Config) {
	if c.Redis.URL.IsDefined() {
		if c.Redis.Host != "" || c.Redis.Port.IsDefined() {
			result.AddError(nil, errRedisURLWithHostAndPort)
		}
	} else if c.Redis.Host != "" || c.Redis.Port.IsDefined() {
		host := c.Redis.Host
		if host == "" {
			host = defaultRedisHost
		}
		port := c.Redis.Port.GetOrElse(defaultRedisPort)
		url, err := ct.NewOptURLAbsoluteFromString(fmt.Sprintf("redis://%s:%d", host, port))
		if err != nil {
			result.AddError(nil, errRedisBadHostname)
		}
		c.Redis.URL = url
		c.Redis.Host = ""
		c.Redis.Port = ct.OptIntGreaterThanZero{}
	}
}
