package tweakstack

import "errors"

// All error singletons and error constructors for this package should be
// collected here.

var errStackHasNoMutableProvider = errors.New("stack contains no mutable provider to write to")

func errNoMutableProvider() error {
	return errStackHasNoMutableProvider
}
