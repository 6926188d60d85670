package tweaks

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// Provider is the read contract shared by every tweak configuration source.
//
// Providers are deliberately permissive: a missing key, a value of the wrong
// type, or a backing-store failure all degrade to a "false"/absent result
// rather than an error. A provider is normally one of several sources in a
// Stack, and returning absent is what lets lower-priority sources get a
// chance to answer.
type Provider interface {
	// IsFeatureEnabled returns true only if the provider holds a boolean
	// true under the key named by feature. Absence and any non-boolean
	// stored value both yield false; the two cases are indistinguishable at
	// this layer.
	IsFeatureEnabled(feature string) bool

	// TweakWith resolves the typed value stored under the key named by
	// variable. The lookup is keyed by variable, not feature: multiple
	// features can share a variable namespace, so the caller must supply
	// both. The second return is false if no value is stored under the key,
	// or if the stored value is not a boolean, string, or number.
	TweakWith(feature, variable string) (Tweak, bool)

	// ActiveVariation returns the variation assigned for a multi-arm
	// experiment, if the provider supports experiment assignment. None of
	// the providers in this module do; they return ("", false)
	// unconditionally.
	ActiveVariation(experiment string) (string, bool)

	// SetLoggers supplies the loggers a provider should use for diagnostic
	// output. Providers that never log, such as MemoryProvider, discard the
	// assignment.
	SetLoggers(loggers ldlog.Loggers)
}

// MutableProvider is implemented by tweak sources that can also be written
// to. Write operations return errors because some implementations are backed
// by external stores; purely in-memory implementations always return nil.
type MutableProvider interface {
	Provider

	// Set writes value under the key named by variable, overwriting any
	// existing entry. The feature name is accepted for symmetry with
	// TweakWith but does not affect the store key.
	Set(value Value, feature, variable string) error

	// DeleteValue removes the entry keyed by variable. Deleting a key that
	// is not present is not an error, so the operation is idempotent. The
	// feature name is accepted for symmetry and unused.
	DeleteValue(feature, variable string) error
}
