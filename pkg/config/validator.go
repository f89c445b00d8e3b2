package config

import (
	"fmt"
	"net"
	"strings"
)

// FieldError is a semantic validation error for one option path.
type FieldError struct {
	// Field is the dotted path of the offending option.
	Field string

	// Message is a human-readable description.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every semantic rule an already-resolved
// document breaks. Unlike the resolution pass, validation collects all
// failures instead of stopping at the first.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("settings validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "settings validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

// Validate checks the domain rules that go beyond the structural
// invariants of resolution. It operates on an already-resolved document;
// the resolution pipeline never calls it.
func (s *Settings) Validate() error {
	var errs []FieldError

	errs = append(errs, validateTracker(&s.Tracker)...)
	errs = append(errs, validateNet(&s.Net)...)
	errs = append(errs, validateMail(&s.Mail)...)
	errs = append(errs, validateAPI(&s.API)...)
	errs = append(errs, validateImageCache(&s.ImageCache)...)
	errs = append(errs, validatePasswords(&s.Auth.PasswordConstraints)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateTracker(cfg *Tracker) []FieldError {
	var errs []FieldError

	if cfg.URL == "" {
		errs = append(errs, FieldError{
			Field:   "tracker.url",
			Message: "announce URL is required",
		})
	}
	// UDP trackers cannot authenticate announces per user.
	if cfg.Private && strings.HasPrefix(cfg.URL, "udp://") {
		errs = append(errs, FieldError{
			Field:   "tracker.url",
			Message: "udp trackers are not supported in private mode",
		})
	}
	if cfg.TokenValidSeconds == 0 {
		errs = append(errs, FieldError{
			Field:   "tracker.token_valid_seconds",
			Message: "token lifetime must be positive",
		})
	}

	return errs
}

func validateNet(cfg *Network) []FieldError {
	var errs []FieldError

	if _, _, err := net.SplitHostPort(cfg.BindAddress); err != nil {
		errs = append(errs, FieldError{
			Field:   "net.bind_address",
			Message: fmt.Sprintf("invalid bind address: %v", err),
		})
	}
	if cfg.TLS != nil {
		if cfg.TLS.SSLCertPath == "" {
			errs = append(errs, FieldError{
				Field:   "net.tls.ssl_cert_path",
				Message: "certificate path is required when TLS is enabled",
			})
		}
		if cfg.TLS.SSLKeyPath == "" {
			errs = append(errs, FieldError{
				Field:   "net.tls.ssl_key_path",
				Message: "key path is required when TLS is enabled",
			})
		}
	}

	return errs
}

func validateMail(cfg *Mail) []FieldError {
	var errs []FieldError

	if cfg.SMTP.Port == 0 {
		errs = append(errs, FieldError{
			Field:   "mail.smtp.port",
			Message: "smtp port must be positive",
		})
	}
	if cfg.EmailVerificationEnabled && cfg.SMTP.Server == "" {
		errs = append(errs, FieldError{
			Field:   "mail.smtp.server",
			Message: "smtp server is required when email verification is enabled",
		})
	}

	return errs
}

func validateAPI(cfg *API) []FieldError {
	var errs []FieldError

	if cfg.DefaultTorrentPageSize == 0 {
		errs = append(errs, FieldError{
			Field:   "api.default_torrent_page_size",
			Message: "default page size must be positive",
		})
	}
	if cfg.MaxTorrentPageSize < cfg.DefaultTorrentPageSize {
		errs = append(errs, FieldError{
			Field:   "api.max_torrent_page_size",
			Message: "max page size must not be below the default page size",
		})
	}

	return errs
}

func validateImageCache(cfg *ImageCache) []FieldError {
	var errs []FieldError

	if cfg.EntrySizeLimit > cfg.Capacity {
		errs = append(errs, FieldError{
			Field:   "image_cache.entry_size_limit",
			Message: "entry size limit must not exceed the cache capacity",
		})
	}

	return errs
}

func validatePasswords(cfg *PasswordConstraints) []FieldError {
	var errs []FieldError

	if cfg.MinPasswordLength == 0 {
		errs = append(errs, FieldError{
			Field:   "auth.password_constraints.min_password_length",
			Message: "minimum password length must be positive",
		})
	}
	if cfg.MaxPasswordLength < cfg.MinPasswordLength {
		errs = append(errs, FieldError{
			Field:   "auth.password_constraints.max_password_length",
			Message: "maximum password length must not be below the minimum",
		})
	}

	return errs
}
