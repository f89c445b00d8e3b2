package config

import (
	"reflect"
	"testing"
)

func TestDefaultSettings_Metadata(t *testing.T) {
	s := DefaultSettings()

	if s.Metadata.App != AppQuayIndex {
		t.Errorf("expected app %q, got %q", AppQuayIndex, s.Metadata.App)
	}
	if s.Metadata.Purpose != PurposeConfiguration {
		t.Errorf("expected purpose %q, got %q", PurposeConfiguration, s.Metadata.Purpose)
	}
	if s.Metadata.SchemaVersion != SchemaVersion {
		t.Errorf("expected schema version %q, got %q", SchemaVersion, s.Metadata.SchemaVersion)
	}
}

func TestDefaultSettings_Values(t *testing.T) {
	s := DefaultSettings()

	if s.Website.Name != "Quay" {
		t.Errorf("expected site name %q, got %q", "Quay", s.Website.Name)
	}
	if s.Logging.Threshold != ThresholdInfo {
		t.Errorf("expected threshold %q, got %q", ThresholdInfo, s.Logging.Threshold)
	}
	if s.Net.BaseURL != "" {
		t.Errorf("expected no base URL by default, got %q", s.Net.BaseURL)
	}
	if s.Registration != nil {
		t.Error("expected registration to be disabled by default")
	}
	if s.Website.Demo != nil {
		t.Error("expected no demo marker by default")
	}
	if s.Net.TLS != nil {
		t.Error("expected no TLS block by default")
	}
}

func TestDefaultSettings_Stable(t *testing.T) {
	if !reflect.DeepEqual(DefaultSettings(), DefaultSettings()) {
		t.Error("expected the defaults to be deterministic")
	}
}

func TestDefaultSettings_SemanticallyValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Errorf("expected the compiled defaults to validate, got %v", err)
	}
}
