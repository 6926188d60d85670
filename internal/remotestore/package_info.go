// Package remotestore implements the persisted tweak provider: a tweak
// configuration source backed by an external key-value database (Redis,
// Consul, or DynamoDB).
//
// All backends store the same representation - the JSON encoding of the
// typed tweak value under a prefixed key - so a test harness can seed any of
// them with the tweakstack CLI and the application reads them identically.
package remotestore
