package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// keyDelim separates path segments in dotted option paths.
const keyDelim = "."

// Names of the built-in layers.
const (
	LayerDefaults     = "defaults"
	LayerConfigFile   = "config-file"
	LayerInline       = "inline"
	LayerEnvOverrides = "env-overrides"
)

// Layer is one named source of configuration data. A resolution pass
// merges an ordered list of layers; a later layer wins over an earlier one
// for every key it supplies.
type Layer struct {
	Name     string
	Provider koanf.Provider

	// Parser is nil for providers that emit key trees directly.
	Parser koanf.Parser
}

// MergeLayers applies the layers in order onto a fresh key tree. The merge
// rule is last-applied-wins per key. A failing layer aborts the merge and
// is reported as a LayerError.
func MergeLayers(layers []Layer) (*koanf.Koanf, error) {
	k := koanf.New(keyDelim)
	for _, l := range layers {
		if err := k.Load(l.Provider, l.Parser); err != nil {
			return nil, &LayerError{Layer: l.Name, Err: err}
		}
	}
	return k, nil
}

// defaultsLayer holds the compiled-in defaults, the lowest-precedence
// layer of a full merge.
func defaultsLayer() Layer {
	return Layer{
		Name:     LayerDefaults,
		Provider: structs.Provider(DefaultSettings(), "koanf"),
	}
}

// sourceLayer selects the base document layer: the inline payload when the
// input carries one, otherwise the document file.
func sourceLayer(info *Info) Layer {
	if info.ConfigTOML != nil {
		return Layer{
			Name:     LayerInline,
			Provider: rawbytes.Provider([]byte(*info.ConfigTOML)),
			Parser:   toml.Parser(),
		}
	}
	return Layer{
		Name:     LayerConfigFile,
		Provider: file.Provider(info.ConfigTOMLPath),
		Parser:   parserForPath(info.ConfigTOMLPath),
	}
}

// overridesLayer maps QUAY_CONFIG_OVERRIDE_* environment variables onto
// dotted option paths. It is always the highest-precedence layer.
func overridesLayer() Layer {
	return Layer{
		Name:     LayerEnvOverrides,
		Provider: env.Provider(ConfigOverridePrefix, keyDelim, overridePath),
	}
}

// userLayers are the layers supplied by explicit user input, lowest
// precedence first. The mandatory guard runs against exactly this merge,
// before defaults are joined in.
func userLayers(info *Info) []Layer {
	return []Layer{sourceLayer(info), overridesLayer()}
}

// overridePath turns an override variable name into a dotted option path:
// the prefix is stripped, the remainder is split on the separator, and
// each segment is lower-cased. QUAY_CONFIG_OVERRIDE_TRACKER__TOKEN becomes
// "tracker.token".
func overridePath(name string) string {
	segments := strings.Split(strings.TrimPrefix(name, ConfigOverridePrefix), ConfigOverrideSeparator)
	for i, s := range segments {
		segments[i] = strings.ToLower(s)
	}
	return strings.Join(segments, keyDelim)
}

// parserForPath picks a parser for a document file by extension. The
// engine is format-agnostic; TOML is the reference format.
func parserForPath(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
