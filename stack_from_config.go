package tweakstack

import (
	"io"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack/config"
	"github.com/uitweaks/tweakstack/internal/localfile"
	"github.com/uitweaks/tweakstack/internal/remotestore"
	"github.com/uitweaks/tweakstack/tweaks"
)

// NewStackFromConfig assembles the standard provider stack from a validated
// configuration, in descending priority order:
//
//  1. a MemoryProvider over launchFlags, the caller-owned map of ephemeral
//     test-injected flags (a nil map is allowed and yields an empty store);
//  2. at most one persisted store (Redis, Consul, or DynamoDB), if one is
//     configured;
//  3. bundled file defaults, if [LocalFile] is configured.
//
// The configuration is validated again here because application code may
// construct a Config programmatically rather than loading it through the
// config package.
func NewStackFromConfig(c config.Config, launchFlags map[string]interface{}, loggers ldlog.Loggers) (*Stack, error) {
	if err := config.ValidateConfig(&c, loggers); err != nil {
		return nil, err
	}

	providers := []tweaks.Provider{NewMemoryProvider(launchFlags)}

	persisted, err := NewPersistedProvider(c, loggers)
	if err != nil {
		return nil, err
	}
	if persisted != nil {
		providers = append(providers, persisted)
	}

	if c.LocalFile.FilePath != "" {
		fileProvider, err := localfile.NewProvider(c.LocalFile.FilePath, c.LocalFile.Watch, loggers)
		if err != nil {
			return nil, err
		}
		providers = append(providers, fileProvider)
	}

	return NewStack(loggers, providers...), nil
}

// NewPersistedProvider creates just the persisted-store provider described
// by the configuration: Redis if a Redis URL is defined (config validation
// normalizes host/port settings into a URL), else Consul if a Consul host is
// set, else DynamoDB if enabled. It returns (nil, nil) if the configuration
// names no database.
//
// This is exposed separately from NewStackFromConfig for tooling that needs
// to write to the persisted store directly, without an ephemeral provider in
// front of it.
func NewPersistedProvider(c config.Config, loggers ldlog.Loggers) (tweaks.MutableProvider, error) {
	switch {
	case c.Redis.URL.IsDefined():
		return remotestore.NewRedisProvider(c.Redis, loggers)
	case c.Consul.Host != "":
		return remotestore.NewConsulProvider(c.Consul, loggers)
	case c.DynamoDB.Enabled:
		return remotestore.NewDynamoDBProvider(c.DynamoDB, loggers)
	}
	return nil, nil
}

// Close releases any resources held by the stack's providers, such as
// database clients and file watchers. Providers that hold no resources are
// unaffected.
func (s *Stack) Close() {
	for _, p := range s.providers {
		switch c := p.(type) {
		case io.Closer:
			_ = c.Close()
		case interface{ Close() }:
			c.Close()
		}
	}
}
