package tweaks

// Tweak is the result of a successful tweak lookup: the feature and variable
// names the caller asked for, plus the typed value that was found. A Tweak is
// only ever constructed when a value exists and converts cleanly; absence is
// represented by a false second return from TweakWith, never by a Tweak with
// an empty value.
type Tweak struct {
	// Feature is the feature name supplied by the caller. Multiple features
	// can share a variable namespace, so the feature name is carried along
	// for identification rather than used as the store key.
	Feature string

	// Variable is the variable name, which is also the key the value was
	// stored under.
	Variable string

	// Value is the typed value that was resolved.
	Value Value
}
