package windgen

import (
	"errors"
	"fmt"
)

// ErrUnknownToken is returned by Theme.Resolve when a category/key pair is
// not present in the resolved theme. Candidates hitting this are dropped.
var ErrUnknownToken = errors.New("unknown token")

// ConfigError reports a malformed or self-contradictory configuration.
// It is fatal and aborts a generation run before any file is scanned.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ScanError reports a source file that could not be read. It is fatal for
// the whole run: a partial scan could silently drop styles that are used
// only in the unreadable file.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }
