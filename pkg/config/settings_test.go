package config

import (
	"fmt"
	"log/slog"
	"testing"
)

func TestSecret_NeverPrintsItsValue(t *testing.T) {
	token := Secret("super-secret-token")

	if got := fmt.Sprintf("%v", token); got != "***" {
		t.Errorf("expected the mask, got %q", got)
	}
	if got := fmt.Sprintf("%s", token); got != "***" {
		t.Errorf("expected the mask, got %q", got)
	}
	if got := token.LogValue().String(); got != "***" {
		t.Errorf("expected the mask in log values, got %q", got)
	}
	// The raw value stays reachable through an explicit conversion.
	if string(token) != "super-secret-token" {
		t.Error("expected the raw value to survive conversion")
	}
}

func TestSettings_Redacted(t *testing.T) {
	s := DefaultSettings()
	s.Tracker.Token = "token"
	s.Auth.UserClaimTokenPepper = "pepper"
	s.Mail.SMTP.Credentials.Password = "password"

	r := s.Redacted()

	if r.Tracker.Token != "***" || r.Auth.UserClaimTokenPepper != "***" || r.Mail.SMTP.Credentials.Password != "***" {
		t.Errorf("expected every secret masked, got %+v", r)
	}
	// Empty secrets stay empty so a redacted dump still shows what is unset.
	s.Mail.SMTP.Credentials.Password = ""
	if got := s.Redacted().Mail.SMTP.Credentials.Password; got != "" {
		t.Errorf("expected empty secret to stay empty, got %q", got)
	}
	// The original document is untouched.
	if s.Tracker.Token != "token" {
		t.Error("expected Redacted to operate on a clone")
	}
}

func TestSettings_CloneDeepCopiesPointers(t *testing.T) {
	s := DefaultSettings()
	s.Registration = &Registration{Email: RegistrationEmail{Required: true}}
	s.Website.Demo = &Demo{Warning: "demo instance"}
	s.Net.TLS = &NetworkTLS{SSLCertPath: "cert.pem", SSLKeyPath: "key.pem"}

	c := s.Clone()
	c.Registration.Email.Required = false
	c.Website.Demo.Warning = "mutated"
	c.Net.TLS.SSLCertPath = "mutated"

	if !s.Registration.Email.Required {
		t.Error("expected the registration block to be deep-copied")
	}
	if s.Website.Demo.Warning != "demo instance" {
		t.Error("expected the demo block to be deep-copied")
	}
	if s.Net.TLS.SSLCertPath != "cert.pem" {
		t.Error("expected the TLS block to be deep-copied")
	}
}

func TestThreshold_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Threshold
		wantErr bool
	}{
		{"off", ThresholdOff, false},
		{"error", ThresholdError, false},
		{"warn", ThresholdWarn, false},
		{"info", ThresholdInfo, false},
		{"debug", ThresholdDebug, false},
		{"trace", ThresholdTrace, false},
		{"loud", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		var th Threshold
		err := th.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && th != tt.want {
			t.Errorf("UnmarshalText(%q) = %q, want %q", tt.in, th, tt.want)
		}
	}
}

func TestThreshold_Level(t *testing.T) {
	tests := []struct {
		in   Threshold
		want slog.Level
	}{
		{ThresholdError, slog.LevelError},
		{ThresholdWarn, slog.LevelWarn},
		{ThresholdInfo, slog.LevelInfo},
		{ThresholdDebug, slog.LevelDebug},
		{ThresholdTrace, LevelTrace},
	}

	for _, tt := range tests {
		if got := tt.in.Level(); got != tt.want {
			t.Errorf("Threshold(%q).Level() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApp_UnmarshalText(t *testing.T) {
	var a App
	if err := a.UnmarshalText([]byte("quay-index")); err != nil {
		t.Errorf("expected the known app to be accepted, got %v", err)
	}
	if err := a.UnmarshalText([]byte("other-app")); err == nil {
		t.Error("expected an unknown app to be rejected")
	}
}

func TestEmailOnSignup_UnmarshalText(t *testing.T) {
	for _, valid := range []string{"required", "optional", "none"} {
		var e EmailOnSignup
		if err := e.UnmarshalText([]byte(valid)); err != nil {
			t.Errorf("expected %q to be accepted, got %v", valid, err)
		}
	}
	var e EmailOnSignup
	if err := e.UnmarshalText([]byte("sometimes")); err == nil {
		t.Error("expected an unknown policy to be rejected")
	}
}
