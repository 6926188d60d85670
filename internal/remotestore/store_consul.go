package remotestore

import (
	consul "github.com/hashicorp/consul/api"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack/config"
)

// consulStore implements kvStore for the Consul KV store.
type consulStore struct {
	kv *consul.KV
}

// NewConsulProvider creates a persisted tweak provider backed by Consul.
func NewConsulProvider(dbConfig config.ConsulConfig, loggers ldlog.Loggers) (*Provider, error) {
	consulConfig := consul.DefaultConfig()
	if dbConfig.Token != "" {
		consulConfig.Token = dbConfig.Token
	} else if dbConfig.TokenFile != "" {
		consulConfig.TokenFile = dbConfig.TokenFile
	}
	// The address is set last so it is not overridden by DefaultConfig's
	// environment handling.
	consulConfig.Address = dbConfig.Host

	client, err := consul.NewClient(consulConfig)
	if err != nil {
		return nil, err
	}

	provider := newProvider(&consulStore{kv: client.KV()}, dbConfig.Prefix, loggers)
	provider.loggers.SetPrefix("ConsulTweakStore:")
	provider.loggers.Infof(logMsgUsingConsul, dbConfig.Host, provider.prefix)
	return provider, nil
}

func (s *consulStore) get(key string) (string, bool, error) {
	pair, _, err := s.kv.Get(key, nil)
	if err != nil {
		return "", false, err
	}
	if pair == nil {
		return "", false, nil
	}
	return string(pair.Value), true, nil
}

func (s *consulStore) set(key string, value string) error {
	_, err := s.kv.Put(&consul.KVPair{Key: key, Value: []byte(value)}, nil)
	return err
}

func (s *consulStore) delete(key string) error {
	_, err := s.kv.Delete(key, nil)
	return err
}

func (s *consulStore) close() error {
	return nil
}
