package tweakstack

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack/tweaks"
)

// MemoryProvider presents a mutable in-memory key-value store as a tweak
// configuration provider. It is the standard source for ephemeral,
// test-injected flags: the map is typically seeded once at process start
// from unmarshalled launch arguments and then queried through the stack.
//
// The provider borrows the map; it does not own its lifecycle and holds no
// state of its own. It performs no synchronization, so if the map is shared
// across goroutines the owner is responsible for serializing access.
type MemoryProvider struct {
	store map[string]interface{}
}

// NewMemoryProvider creates a MemoryProvider over the given store. The map
// may hold values of any type; only booleans, strings, and numbers are
// resolvable, and anything else is treated as absent. If store is nil, the
// provider creates its own empty map.
func NewMemoryProvider(store map[string]interface{}) *MemoryProvider {
	if store == nil {
		store = make(map[string]interface{})
	}
	return &MemoryProvider{store: store}
}

// IsFeatureEnabled returns true only if the store holds a boolean true under
// the feature key. Any other stored type, or absence of the key, yields
// false. This is deliberately fail-closed: a feature is off unless a boolean
// true says otherwise.
func (p *MemoryProvider) IsFeatureEnabled(feature string) bool {
	enabled, ok := p.store[feature].(bool)
	return ok && enabled
}

// TweakWith looks up the value stored under the variable key and converts it
// to a typed value. The conversion happens once here, at the store boundary;
// stored values outside the closed set of tweak types yield no record even
// though a value exists under the key.
func (p *MemoryProvider) TweakWith(feature, variable string) (tweaks.Tweak, bool) {
	raw, ok := p.store[variable]
	if !ok {
		return tweaks.Tweak{}, false
	}
	value, ok := tweaks.ValueFromArbitrary(raw)
	if !ok {
		return tweaks.Tweak{}, false
	}
	return tweaks.Tweak{Feature: feature, Variable: variable, Value: value}, true
}

// ActiveVariation always returns ("", false); this provider does not support
// multi-arm experiment assignment.
func (p *MemoryProvider) ActiveVariation(experiment string) (string, bool) {
	return "", false
}

// SetLoggers discards the assignment; every operation here is a plain map
// access and the provider never logs.
func (p *MemoryProvider) SetLoggers(loggers ldlog.Loggers) {}

// Set writes value into the store under the variable key, overwriting any
// existing entry. The value is stored in its plain Go representation so that
// other readers of the map see an ordinary bool, string, or float64.
func (p *MemoryProvider) Set(value tweaks.Value, feature, variable string) error {
	p.store[variable] = value.AsArbitrary()
	return nil
}

// DeleteValue removes the entry keyed by variable. Deleting an absent key is
// a no-op, not an error.
func (p *MemoryProvider) DeleteValue(feature, variable string) error {
	delete(p.store, variable)
	return nil
}
