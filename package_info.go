// Package tweakstack composes prioritized feature-flag and tweak
// configuration sources into a single stack.
//
// A UI-test process injects launch-time flags into an application as an
// untyped key-value map; the application wraps that map in a MemoryProvider
// and places it at the top of a Stack, ahead of lower-priority sources such
// as a persisted store or bundled file defaults. Queries walk the stack in
// order and the first source that can answer wins.
//
// Use NewStackFromConfig to assemble the standard stack from a config.Config,
// or NewStack to compose providers directly.
package tweakstack
