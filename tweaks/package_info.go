// Package tweaks contains the basic types of the tweakstack model: the typed
// tweak value, the tweak record, and the configuration-provider contract that
// every tweak source implements.
//
// Putting these in their own package, instead of in the packages that use
// them, lets provider implementations and shared test code reference them
// without import cycles. It also provides a convenient way to see the whole
// contract in one place.
package tweaks
