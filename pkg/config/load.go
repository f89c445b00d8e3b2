package config

import (
	"errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

// SchemaVersion is the single schema generation this build accepts.
// Documents declaring any other value are rejected outright; there are no
// forward or backward compatibility shims.
const SchemaVersion = "2.0.0"

// LoadSettings runs one synchronous resolution pass over the given input:
//
//  1. merge the user layers (inline payload or file, then environment
//     overrides), last-applied-wins;
//  2. probe that merge for every mandatory option, before defaults exist;
//  3. join the compiled-in defaults underneath;
//  4. extract the typed document strictly and gate on the schema version.
//
// Any failure aborts the whole pass; no partially resolved document ever
// escapes.
func LoadSettings(info *Info) (Settings, error) {
	user, err := MergeLayers(userLayers(info))
	if err != nil {
		return Settings{}, classifyLayerError(info, err)
	}

	if err := checkMandatoryOptions(user); err != nil {
		return Settings{}, err
	}

	full := koanf.New(keyDelim)
	defaults := defaultsLayer()
	if err := full.Load(defaults.Provider, defaults.Parser); err != nil {
		return Settings{}, &ConfigError{Err: err}
	}
	if err := full.Merge(user); err != nil {
		return Settings{}, &ConfigError{Err: err}
	}

	var settings Settings
	if err := full.UnmarshalWithConf("", &settings, strictUnmarshalConf(&settings)); err != nil {
		return Settings{}, &ConfigError{Err: err}
	}

	if settings.Metadata.SchemaVersion != SchemaVersion {
		return Settings{}, &UnsupportedVersionError{Version: settings.Metadata.SchemaVersion}
	}

	return settings, nil
}

// strictUnmarshalConf configures extraction of the fully merged provider:
// unknown keys are errors, string override values coerce weakly into the
// typed fields, and enum-like fields validate through TextUnmarshaler.
func strictUnmarshalConf(out any) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           out,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
}

// classifyLayerError maps a merge failure onto the error taxonomy: file
// layer failures keep the file path, everything else is a processing
// error.
func classifyLayerError(info *Info, err error) error {
	var lerr *LayerError
	if errors.As(err, &lerr) && lerr.Layer == LayerConfigFile {
		return &FileLoadError{Path: info.ConfigTOMLPath, Err: lerr.Err}
	}
	return &ConfigError{Err: err}
}
