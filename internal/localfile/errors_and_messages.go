package localfile

import "fmt"

// All log messages, error singletons, and error constructors for this
// package should be collected here, except for debug logging.

const (
	logMsgReloadedData                 = "Reloaded tweaks from %s"
	logMsgReloadError                  = "Tweaks file reload failed; file is invalid or possibly incomplete (error: %s)"
	logMsgReloadFileNotFound           = "Tweaks file stat failed; file not found"
	logMsgReloadUnchangedRetry         = "Tweaks file has not changed since last failed reload; will retry"
	logMsgReloadUnchangedNoMoreRetries = "Tweaks file has not changed since last failed reload; giving up (error: %s)"
	logMsgBadEntry                     = "Ignoring entry %q in tweaks file: not a boolean, string, or number"
)

func errCannotOpenTweaksFile(filePath string, err error) error {
	return fmt.Errorf("unable to read tweaks file %s: %w", filePath, err)
}

func errBadTweaksFile(filePath string, err error) error {
	return fmt.Errorf("tweaks file %s is not a valid JSON or YAML document of scalar values: %w", filePath, err)
}

func errCreateWatcherFailed(filePath string, err error) error {
	return fmt.Errorf("unable to watch tweaks file %s: %w", filePath, err)
}
