package config

type testDataInvalidConfig struct {
	name         string
	envVarsError string
	envVars      map[string]string
	fileError    string
	fileContent  string
}

func makeInvalidConfigs() []testDataInvalidConfig {
	return []testDataInvalidConfig{
		makeInvalidConfigBadLogLevel(),
		makeInvalidConfigWatchWithoutFilePath(),
		makeInvalidConfigRedisURLWithHostAndPort(),
		makeInvalidConfigMultipleDatabases(),
		makeInvalidConfigConsulTokenAndTokenFile(),
		makeInvalidConfigDynamoDBWithNoTableName(),
	}
}

func makeInvalidConfigBadLogLevel() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "bad log level"}
	c.envVarsError = `"wrong" is not a valid log level`
	c.envVars = map[string]string{"LOG_LEVEL": "wrong"}
	c.fileError = c.envVarsError
	c.fileContent = `
[Main]
LogLevel = "wrong"
`
	return c
}

func makeInvalidConfigWatchWithoutFilePath() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "Watch without FilePath"}
	c.envVarsError = errWatchWithoutFilePath.Error()
	c.envVars = map[string]string{"TWEAKS_FILE_WATCH": "1"}
	c.fileError = c.envVarsError
	c.fileContent = `
[LocalFile]
Watch = 1
`
	return c
}

func makeInvalidConfigRedisURLWithHostAndPort() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "Redis URL with host/port"}
	c.envVarsError = errRedisURLWithHostAndPort.Error()
	c.envVars = map[string]string{
		"USE_REDIS":  "1",
		"REDIS_URL":  "redis://redishost:6379",
		"REDIS_HOST": "redishost",
	}
	c.fileError = c.envVarsError
	c.fileContent = `
[Redis]
Url = "redis://redishost:6379"
Host = "redishost"
`
	return c
}

func makeInvalidConfigMultipleDatabases() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "multiple databases"}
	c.envVarsError = "multiple databases are enabled (Redis, Consul, DynamoDB); only one is allowed"
	c.envVars = map[string]string{
		"USE_REDIS":      "1",
		"USE_CONSUL":     "1",
		"USE_DYNAMODB":   "1",
		"DYNAMODB_TABLE": "tweaks-table",
	}
	c.fileError = c.envVarsError
	c.fileContent = `
[Redis]
Host = "localhost"

[Consul]
Host = "localhost"

[DynamoDB]
Enabled = 1
TableName = "tweaks-table"
`
	return c
}

func makeInvalidConfigConsulTokenAndTokenFile() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "Consul token and token file"}
	c.envVarsError = errConsulTokenAndTokenFile.Error()
	c.envVars = map[string]string{
		"USE_CONSUL":        "1",
		"CONSUL_TOKEN":      "abc",
		"CONSUL_TOKEN_FILE": "token-file",
	}
	c.fileError = c.envVarsError
	c.fileContent = `
[Consul]
Host = "localhost"
Token = "abc"
TokenFile = "token-file"
`
	return c
}

func makeInvalidConfigDynamoDBWithNoTableName() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "DynamoDB without table name"}
	c.envVarsError = errDynamoDBWithNoTableName.Error()
	c.envVars = map[string]string{
		"USE_DYNAMODB": "1",
	}
	c.fileError = c.envVarsError
	c.fileContent = `
[DynamoDB]
Enabled = 1
`
	return c
}
