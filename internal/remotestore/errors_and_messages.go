package remotestore

// All log messages for this package should be collected here, except for
// debug logging.

const (
	logMsgStoreReadFailed = "Persisted tweak store read failed for key %q: %s"
	logMsgBadStoredValue  = "Ignoring value stored under key %q: not a valid tweak value"
	logMsgUsingRedis      = "Using Redis tweak store: %s with prefix: %s"
	logMsgUsingConsul     = "Using Consul tweak store: %s with prefix: %s"
	logMsgUsingDynamoDB   = "Using DynamoDB table %s with prefix: %s"
)
