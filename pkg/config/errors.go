package config

import (
	"errors"
	"fmt"
)

// ErrInfallible marks error channels that are structurally required by an
// interface but can never fire. It exists so such call sites have a named
// value to document instead of an anonymous nil.
var ErrInfallible = errors.New("the error for errors that can never happen")

// EnvLoadError reports a failure reading a configuration payload from an
// environment variable. The current discovery path cannot produce it
// (os.LookupEnv does not fail), so it is reserved for alternative sources.
type EnvLoadError struct {
	Var string
	Err error
}

func (e *EnvLoadError) Error() string {
	return fmt.Sprintf("unable to load from environment variable %s: %v", e.Var, e.Err)
}

func (e *EnvLoadError) Unwrap() error {
	return e.Err
}

// FileLoadError reports a failure reading or parsing the configuration
// file named by the resolution input.
type FileLoadError struct {
	Path string
	Err  error
}

func (e *FileLoadError) Error() string {
	return fmt.Sprintf("unable to load from config file %s: %v", e.Path, e.Err)
}

func (e *FileLoadError) Unwrap() error {
	return e.Err
}

// ConfigError reports that the layered provider could not be merged or
// deserialized: malformed text, a type mismatch, or an unknown field.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("failed processing the configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MissingMandatoryOptionError reports the first mandatory option path that
// the user-supplied layers did not provide. Resolution stops at the first
// missing path.
type MissingMandatoryOptionError struct {
	Path string
}

func (e *MissingMandatoryOptionError) Error() string {
	return fmt.Sprintf("missing mandatory configuration option. Option path: %s", e.Path)
}

// UnsupportedVersionError reports a document declaring a schema version
// other than the single version this build accepts.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported configuration version: %s", e.Version)
}

// LayerError reports which layer of the merge pipeline failed to load.
// Callers usually see it classified into FileLoadError or ConfigError.
type LayerError struct {
	Layer string
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("configuration layer %q: %v", e.Layer, e.Err)
}

func (e *LayerError) Unwrap() error {
	return e.Err
}
