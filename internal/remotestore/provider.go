package remotestore

import (
	"encoding/json"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/uitweaks/tweakstack/tweaks"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "tweaks"

// kvStore is the minimal surface a database backend must provide. Keys are
// full (already prefixed) store keys; values are the JSON encoding of a
// tweak value.
type kvStore interface {
	get(key string) (value string, found bool, err error)
	set(key string, value string) error
	delete(key string) error
	close() error
}

// Provider presents a persisted key-value database as a tweak configuration
// provider. It satisfies tweaks.MutableProvider: a test harness can seed the
// database through Set/DeleteValue and the application resolves the values
// through the usual read contract.
//
// Reads follow the permissive-provider policy: a database error, a missing
// key, or stored data that does not parse as a boolean, string, or number
// all yield an absent result (with a logged warning for errors), so that
// lower-priority sources in the stack still get a chance to answer.
type Provider struct {
	store   kvStore
	prefix  string
	loggers ldlog.Loggers
}

func newProvider(store kvStore, prefix string, loggers ldlog.Loggers) *Provider {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Provider{store: store, prefix: prefix, loggers: loggers}
}

// IsFeatureEnabled returns true only if the store holds a boolean true under
// the feature key.
func (p *Provider) IsFeatureEnabled(feature string) bool {
	value, ok := p.getValue(feature)
	return ok && value.Type() == tweaks.BoolType && value.BoolValue()
}

// TweakWith resolves the typed value stored under the variable key.
func (p *Provider) TweakWith(feature, variable string) (tweaks.Tweak, bool) {
	value, ok := p.getValue(variable)
	if !ok {
		return tweaks.Tweak{}, false
	}
	return tweaks.Tweak{Feature: feature, Variable: variable, Value: value}, true
}

// ActiveVariation always returns ("", false); persisted stores do not
// support multi-arm experiment assignment.
func (p *Provider) ActiveVariation(experiment string) (string, bool) {
	return "", false
}

// SetLoggers replaces the loggers used for store diagnostics.
func (p *Provider) SetLoggers(loggers ldlog.Loggers) {
	p.loggers = loggers
}

// Set writes the JSON encoding of value under the prefixed variable key,
// overwriting any existing entry.
func (p *Provider) Set(value tweaks.Value, feature, variable string) error {
	return p.store.set(p.prefixedKey(variable), value.AsLDValue().JSONString())
}

// DeleteValue removes the entry keyed by variable. Deleting an absent key is
// not an error.
func (p *Provider) DeleteValue(feature, variable string) error {
	return p.store.delete(p.prefixedKey(variable))
}

// Close releases the underlying database client.
func (p *Provider) Close() error {
	return p.store.close()
}

func (p *Provider) getValue(key string) (tweaks.Value, bool) {
	data, found, err := p.store.get(p.prefixedKey(key))
	if err != nil {
		p.loggers.Warnf(logMsgStoreReadFailed, key, err)
		return tweaks.Value{}, false
	}
	if !found {
		return tweaks.Value{}, false
	}
	var parsed ldvalue.Value
	if err := json.Unmarshal([]byte(data), &parsed); err != nil {
		p.loggers.Warnf(logMsgBadStoredValue, key)
		return tweaks.Value{}, false
	}
	value, ok := tweaks.ValueFromLDValue(parsed)
	if !ok {
		p.loggers.Warnf(logMsgBadStoredValue, key)
		return tweaks.Value{}, false
	}
	return value, true
}

func (p *Provider) prefixedKey(key string) string {
	return p.prefix + ":" + key
}
