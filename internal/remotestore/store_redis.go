package remotestore

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack/config"
	"github.com/uitweaks/tweakstack/internal/util"
)

// redisStore implements kvStore for Redis.
type redisStore struct {
	client redis.UniversalClient
}

// NewRedisProvider creates a persisted tweak provider backed by Redis. The
// configuration must already be validated and normalized, so the Redis
// parameters are always in URL form.
func NewRedisProvider(dbConfig config.RedisConfig, loggers ldlog.Loggers) (*Provider, error) {
	redisURL := dbConfig.URL.String()
	if dbConfig.TLS && strings.HasPrefix(redisURL, "redis:") {
		redisURL = "rediss:" + strings.TrimPrefix(redisURL, "redis:")
	}

	parsed, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	opts := redis.UniversalOptions{}
	opts.DB = parsed.DB
	opts.Addrs = []string{parsed.Addr}
	opts.Username = parsed.Username
	opts.Password = parsed.Password
	opts.TLSConfig = parsed.TLSConfig
	if dbConfig.Username != "" {
		opts.Username = dbConfig.Username
	}
	if dbConfig.Password != "" {
		opts.Password = dbConfig.Password
	}

	provider := newProvider(&redisStore{client: redis.NewUniversalClient(&opts)}, dbConfig.Prefix, loggers)
	provider.loggers.SetPrefix("RedisTweakStore:")
	provider.loggers.Infof(logMsgUsingRedis, util.RedactURL(redisURL), provider.prefix)
	return provider, nil
}

func (s *redisStore) get(key string) (string, bool, error) {
	value, err := s.client.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *redisStore) set(key string, value string) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}

func (s *redisStore) delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

func (s *redisStore) close() error {
	return s.client.Close()
}
