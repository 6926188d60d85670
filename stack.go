package tweakstack

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack/tweaks"
)

// Stack is an ordered composition of tweak providers, queried by priority
// until one answers. It implements tweaks.MutableProvider itself, so a stack
// can be used anywhere a single provider can (including inside another
// stack, although there is rarely a reason to).
//
// Reads follow the "first configured source wins" rule: IsFeatureEnabled
// returns the first true, defaulting to false; TweakWith and ActiveVariation
// return the first non-absent answer. Writes are delegated to the
// highest-priority provider that is mutable.
type Stack struct {
	providers []tweaks.Provider
	loggers   ldlog.Loggers
}

// NewStack creates a Stack over the given providers, in descending priority
// order (the first provider is consulted first).
func NewStack(loggers ldlog.Loggers, providers ...tweaks.Provider) *Stack {
	s := &Stack{
		providers: append([]tweaks.Provider(nil), providers...),
		loggers:   loggers,
	}
	s.loggers.SetPrefix("TweakStack:")
	return s
}

// Providers returns the stack's providers in priority order.
func (s *Stack) Providers() []tweaks.Provider {
	return append([]tweaks.Provider(nil), s.providers...)
}

// IsFeatureEnabled queries each provider in priority order and returns the
// first true answer, or false if no provider asserts the flag. A provider
// that cannot answer returns false, which is what lets the query fall
// through to the next source.
func (s *Stack) IsFeatureEnabled(feature string) bool {
	for _, p := range s.providers {
		if p.IsFeatureEnabled(feature) {
			return true
		}
	}
	return false
}

// TweakWith queries each provider in priority order and returns the first
// non-absent record.
func (s *Stack) TweakWith(feature, variable string) (tweaks.Tweak, bool) {
	for _, p := range s.providers {
		if t, ok := p.TweakWith(feature, variable); ok {
			return t, ok
		}
	}
	return tweaks.Tweak{}, false
}

// ActiveVariation queries each provider in priority order and returns the
// first non-absent variation.
func (s *Stack) ActiveVariation(experiment string) (string, bool) {
	for _, p := range s.providers {
		if v, ok := p.ActiveVariation(experiment); ok {
			return v, ok
		}
	}
	return "", false
}

// SetLoggers replaces the loggers used by the stack itself. Providers keep
// the loggers they were constructed with.
func (s *Stack) SetLoggers(loggers ldlog.Loggers) {
	s.loggers = loggers
	s.loggers.SetPrefix("TweakStack:")
}

// Set writes the value through the highest-priority mutable provider. It
// returns an error if the stack has no mutable provider.
func (s *Stack) Set(value tweaks.Value, feature, variable string) error {
	mp := s.topMutableProvider()
	if mp == nil {
		return errNoMutableProvider()
	}
	s.loggers.Debugf("Setting %s (feature %s) = %s", variable, feature, value)
	return mp.Set(value, feature, variable)
}

// DeleteValue removes the value through the highest-priority mutable
// provider. It returns an error if the stack has no mutable provider;
// deleting a key the provider does not hold is not an error.
func (s *Stack) DeleteValue(feature, variable string) error {
	mp := s.topMutableProvider()
	if mp == nil {
		return errNoMutableProvider()
	}
	s.loggers.Debugf("Deleting %s (feature %s)", variable, feature)
	return mp.DeleteValue(feature, variable)
}

func (s *Stack) topMutableProvider() tweaks.MutableProvider {
	for _, p := range s.providers {
		if mp, ok := p.(tweaks.MutableProvider); ok {
			return mp
		}
	}
	return nil
}
