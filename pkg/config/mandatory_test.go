package config

import (
	"errors"
	"testing"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

func probeView(t *testing.T, values map[string]interface{}) *koanf.Koanf {
	t.Helper()
	k := koanf.New(keyDelim)
	if err := k.Load(confmap.Provider(values, keyDelim), nil); err != nil {
		t.Fatalf("failed to build probe view: %v", err)
	}
	return k
}

func TestCheckMandatoryOptions_AllPresent(t *testing.T) {
	view := probeView(t, map[string]interface{}{
		"auth.user_claim_token_pepper": "pepper",
		"logging.threshold":            "info",
		"metadata.schema_version":      "2.0.0",
		"tracker.token":                "token",
	})

	if err := checkMandatoryOptions(view); err != nil {
		t.Errorf("expected the guard to pass, got %v", err)
	}
}

func TestCheckMandatoryOptions_FailsFastInProbeOrder(t *testing.T) {
	// Both the pepper and the token are missing; only the first path in
	// probe order is reported.
	view := probeView(t, map[string]interface{}{
		"logging.threshold":       "info",
		"metadata.schema_version": "2.0.0",
	})

	err := checkMandatoryOptions(view)
	if err == nil {
		t.Fatal("expected the guard to fail")
	}

	var missing *MissingMandatoryOptionError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingMandatoryOptionError, got %T: %v", err, err)
	}
	if missing.Path != "auth.user_claim_token_pepper" {
		t.Errorf("expected the first missing path, got %q", missing.Path)
	}
}

func TestMandatoryOptions_IsACopy(t *testing.T) {
	paths := MandatoryOptions()

	want := []string{
		"auth.user_claim_token_pepper",
		"logging.threshold",
		"metadata.schema_version",
		"tracker.token",
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %d", len(want), len(paths))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: expected %q, got %q", i, want[i], paths[i])
		}
	}

	// Mutating the returned slice must not change the compiled-in list.
	paths[0] = "mutated"
	if MandatoryOptions()[0] != want[0] {
		t.Error("expected the compiled-in list to be immutable")
	}
}
