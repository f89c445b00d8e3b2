package config

import (
	"log/slog"
	"os"
)

// Environment variables consulted when discovering the resolution input.
const (
	// EnvVarConfigTOML names an inline full-document TOML payload. When
	// set it is used exclusively and the file path is never consulted.
	EnvVarConfigTOML = "QUAY_CONFIG_TOML"

	// EnvVarConfigTOMLPath names the path of the configuration file.
	EnvVarConfigTOMLPath = "QUAY_CONFIG_TOML_PATH"

	// ConfigOverridePrefix marks environment variables that override a
	// single option, e.g. QUAY_CONFIG_OVERRIDE_TRACKER__TOKEN.
	ConfigOverridePrefix = "QUAY_CONFIG_OVERRIDE_"

	// ConfigOverrideSeparator separates path segments in override
	// variable names.
	ConfigOverrideSeparator = "__"
)

// Info is the input of one resolution attempt: either an inline document
// or the path of a document file. It is immutable after construction.
type Info struct {
	// ConfigTOML is the whole document as inline TOML. When non-nil it
	// has priority and ConfigTOMLPath is ignored.
	ConfigTOML *string

	// ConfigTOMLPath is the location of the document file.
	ConfigTOMLPath string
}

// NewInfo discovers the resolution input from the process environment.
// When the path variable is unset the given default path is substituted
// silently; that substitution is a documented side effect, not an error.
//
// The error result is part of the construction contract but is never
// populated today; see ErrInfallible.
func NewInfo(defaultConfigTOMLPath string) (*Info, error) {
	info := &Info{ConfigTOMLPath: defaultConfigTOMLPath}

	if inline, ok := os.LookupEnv(EnvVarConfigTOML); ok {
		// A set-but-empty variable still counts as an inline payload.
		slog.Info("loading configuration from environment variable", "var", EnvVarConfigTOML)
		info.ConfigTOML = &inline
	}

	if path, ok := os.LookupEnv(EnvVarConfigTOMLPath); ok {
		slog.Info("loading configuration from file", "path", path)
		info.ConfigTOMLPath = path
	} else {
		slog.Info("loading configuration from default file", "path", defaultConfigTOMLPath)
	}

	return info, nil
}

// FromTOML builds a resolution input from a literal document. Test
// harnesses use it to resolve arbitrary payloads without touching the
// environment or the filesystem.
func FromTOML(configTOML string) *Info {
	return &Info{ConfigTOML: &configTOML}
}
