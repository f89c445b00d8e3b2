package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"harborhq/quay/pkg/config"
)

const validConfigTOML = `
[metadata]
schema_version = "2.0.0"

[logging]
threshold = "info"

[tracker]
token = "MyAccessToken"

[auth]
user_claim_token_pepper = "ChangeThisPepper"
`

func TestResolveSettings_FromDefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quay.toml")
	if err := os.WriteFile(path, []byte(validConfigTOML), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	settings, err := resolveSettings(path)
	if err != nil {
		t.Fatalf("failed to resolve settings: %v", err)
	}

	if !reflect.DeepEqual(settings, config.DefaultSettings()) {
		t.Errorf("expected defaults for all non-mandatory fields, got %+v", settings)
	}
}

func TestResolveSettings_EnvPathWinsOverDefaultPath(t *testing.T) {
	dir := t.TempDir()

	envPath := filepath.Join(dir, "env.toml")
	doc := strings.Replace(validConfigTOML, `threshold = "info"`, `threshold = "debug"`, 1)
	if err := os.WriteFile(envPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	defaultPath := filepath.Join(dir, "quay.toml")
	if err := os.WriteFile(defaultPath, []byte(validConfigTOML), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv(config.EnvVarConfigTOMLPath, envPath)

	settings, err := resolveSettings(defaultPath)
	if err != nil {
		t.Fatalf("failed to resolve settings: %v", err)
	}

	if settings.Logging.Threshold != config.ThresholdDebug {
		t.Errorf("expected threshold from %s, got %q", config.EnvVarConfigTOMLPath, settings.Logging.Threshold)
	}
}

func TestResolveSettings_MissingMandatoryOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quay.toml")
	doc := strings.Replace(validConfigTOML, `token = "MyAccessToken"`, "", 1)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := resolveSettings(path)
	if err == nil {
		t.Fatal("expected an error for a missing mandatory option")
	}
	if !strings.Contains(err.Error(), "tracker.token") {
		t.Errorf("expected the error to name tracker.token, got %q", err)
	}
}

func TestRenderSettings_TOMLMasksSecrets(t *testing.T) {
	doc, err := renderSettings(config.DefaultSettings().Redacted(), "toml")
	if err != nil {
		t.Fatalf("failed to render settings: %v", err)
	}

	rendered := string(doc)
	if !strings.Contains(rendered, `name = "Quay"`) {
		t.Errorf("expected the rendered document to contain the site name, got:\n%s", rendered)
	}
	if strings.Contains(rendered, string(config.DefaultTrackerToken)) {
		t.Errorf("expected the tracker token to be masked, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "***") {
		t.Errorf("expected masked secrets in the rendered document, got:\n%s", rendered)
	}
}

func TestRenderSettings_YAML(t *testing.T) {
	doc, err := renderSettings(config.DefaultSettings().Redacted(), "yaml")
	if err != nil {
		t.Fatalf("failed to render settings: %v", err)
	}

	rendered := string(doc)
	if !strings.Contains(rendered, "name: Quay") {
		t.Errorf("expected the rendered document to contain the site name, got:\n%s", rendered)
	}
}

func TestRenderSettings_UnsupportedFormat(t *testing.T) {
	_, err := renderSettings(config.DefaultSettings(), "json")
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestPruneNil(t *testing.T) {
	in := map[string]interface{}{
		"registration": (*config.Registration)(nil),
		"website": map[string]interface{}{
			"name": "Quay",
			"demo":      nil,
		},
		"tracker": map[string]interface{}{
			"token": config.Secret("***"),
		},
		"api": map[string]interface{}{
			"default_torrent_page_size": 10,
		},
	}

	got := pruneNil(in)

	want := map[string]interface{}{
		"website": map[string]interface{}{
			"name": "Quay",
		},
		"tracker": map[string]interface{}{
			"token": "***",
		},
		"api": map[string]interface{}{
			"default_torrent_page_size": 10,
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pruneNil() = %#v, want %#v", got, want)
	}
}
