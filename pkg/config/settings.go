package config

import (
	"fmt"
	"log/slog"
)

// Settings is the root of the resolved configuration document for Quay.
// A value of this type only exists after a resolution pass has merged the
// user-provided sources with the compiled-in defaults and the schema
// version has been accepted.
type Settings struct {
	// Metadata identifies the application, purpose, and schema generation
	// this document conforms to.
	Metadata Metadata `koanf:"metadata"`

	// Logging controls the verbosity of the process-wide logger.
	Logging Logging `koanf:"logging"`

	// Website contains the public identity of the index site.
	Website Website `koanf:"website"`

	// Tracker contains the connection settings for the BitTorrent tracker
	// this index announces to.
	Tracker Tracker `koanf:"tracker"`

	// Net contains the network settings for the index API server.
	Net Network `koanf:"net"`

	// Auth contains authentication and password policy settings.
	Auth Auth `koanf:"auth"`

	// Database contains the connection settings for the relational store.
	Database Database `koanf:"database"`

	// Mail contains the outgoing mail settings.
	Mail Mail `koanf:"mail"`

	// ImageCache contains the proxied-image cache settings.
	ImageCache ImageCache `koanf:"image_cache"`

	// API contains pagination limits for the public API.
	API API `koanf:"api"`

	// Registration controls user sign-up. A nil value disables
	// registration entirely.
	Registration *Registration `koanf:"registration"`

	// TrackerStatisticsImporter contains the settings for the background
	// job that imports torrent statistics from the tracker.
	TrackerStatisticsImporter TrackerStatisticsImporter `koanf:"tracker_statistics_importer"`
}

// Clone returns a deep copy of the settings document. Snapshots handed out
// by the Configuration handle are clones, so callers can never alias the
// guarded document.
func (s Settings) Clone() Settings {
	out := s
	if s.Website.Demo != nil {
		demo := *s.Website.Demo
		out.Website.Demo = &demo
	}
	if s.Net.TLS != nil {
		tls := *s.Net.TLS
		out.Net.TLS = &tls
	}
	if s.Registration != nil {
		reg := *s.Registration
		out.Registration = &reg
	}
	return out
}

// Redacted returns a clone with every secret value masked. Use it whenever
// the document is rendered outside the process (CLI output, logs, dumps).
func (s Settings) Redacted() Settings {
	out := s.Clone()
	out.Tracker.Token = out.Tracker.Token.redacted()
	out.Auth.UserClaimTokenPepper = out.Auth.UserClaimTokenPepper.redacted()
	out.Mail.SMTP.Credentials.Password = out.Mail.SMTP.Credentials.Password.redacted()
	return out
}

// Metadata describes which application, purpose, and schema generation a
// configuration document is valid for. It is produced by deserialization
// and never mutated afterward.
type Metadata struct {
	App           App     `koanf:"app"`
	Purpose       Purpose `koanf:"purpose"`
	SchemaVersion string  `koanf:"schema_version"`
}

// App is the application a configuration document targets. Exactly one
// value is known to this build.
type App string

// AppQuayIndex is the only application this engine resolves documents for.
const AppQuayIndex App = "quay-index"

// UnmarshalText rejects documents written for any other application.
func (a *App) UnmarshalText(text []byte) error {
	if App(text) != AppQuayIndex {
		return fmt.Errorf("unknown app %q, expected %q", text, AppQuayIndex)
	}
	*a = AppQuayIndex
	return nil
}

// Purpose is the role of a parsed document. Exactly one value is known to
// this build.
type Purpose string

// PurposeConfiguration is the only purpose this engine accepts.
const PurposeConfiguration Purpose = "configuration"

// UnmarshalText rejects documents declaring any other purpose.
func (p *Purpose) UnmarshalText(text []byte) error {
	if Purpose(text) != PurposeConfiguration {
		return fmt.Errorf("unknown purpose %q, expected %q", text, PurposeConfiguration)
	}
	*p = PurposeConfiguration
	return nil
}

// Logging controls the process-wide logger.
type Logging struct {
	// Threshold is the minimum severity that is emitted.
	// One of: "off", "error", "warn", "info", "debug", "trace".
	Threshold Threshold `koanf:"threshold"`
}

// Threshold is a logging verbosity threshold.
type Threshold string

// Known logging thresholds, most to least quiet.
const (
	ThresholdOff   Threshold = "off"
	ThresholdError Threshold = "error"
	ThresholdWarn  Threshold = "warn"
	ThresholdInfo  Threshold = "info"
	ThresholdDebug Threshold = "debug"
	ThresholdTrace Threshold = "trace"
)

// LevelTrace sits below slog.LevelDebug so that trace output can be
// enabled independently.
const LevelTrace slog.Level = slog.LevelDebug - 4

// UnmarshalText validates the threshold during extraction, so a typo in
// the document fails resolution instead of silently logging nothing.
func (t *Threshold) UnmarshalText(text []byte) error {
	switch v := Threshold(text); v {
	case ThresholdOff, ThresholdError, ThresholdWarn, ThresholdInfo, ThresholdDebug, ThresholdTrace:
		*t = v
		return nil
	}
	return fmt.Errorf("unknown logging threshold %q", text)
}

// Level maps the threshold onto a slog level. ThresholdOff has no slog
// equivalent; callers must check for it before building a handler.
func (t Threshold) Level() slog.Level {
	switch t {
	case ThresholdError:
		return slog.LevelError
	case ThresholdWarn:
		return slog.LevelWarn
	case ThresholdDebug:
		return slog.LevelDebug
	case ThresholdTrace:
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// Website contains the public identity of the index site.
type Website struct {
	// Name is the site name shown in page titles and outgoing mail.
	Name string `koanf:"name"`

	// Demo, when present, marks the deployment as a demo instance.
	Demo *Demo `koanf:"demo"`

	// Terms contains the terms-of-service copy.
	Terms Terms `koanf:"terms"`
}

// Demo marks a deployment as a demo instance.
type Demo struct {
	// Warning is shown to every visitor of a demo deployment.
	Warning string `koanf:"warning"`
}

// Terms contains the terms-of-service copy for the site.
type Terms struct {
	Page   TermsPage   `koanf:"page"`
	Upload TermsUpload `koanf:"upload"`
}

// TermsPage is the standalone terms-of-service page.
type TermsPage struct {
	Title string `koanf:"title"`
	// Content is markdown.
	Content string `koanf:"content"`
}

// TermsUpload is the agreement shown on the upload form.
type TermsUpload struct {
	// ContentUploadAgreement is markdown.
	ContentUploadAgreement string `koanf:"content_upload_agreement"`
}

// Tracker contains the connection settings for the BitTorrent tracker.
type Tracker struct {
	// URL is the announce URL handed out to clients.
	URL string `koanf:"url"`

	// APIURL is the base URL of the tracker management API.
	APIURL string `koanf:"api_url"`

	// Token authenticates this index against the tracker API. Mandatory:
	// a compiled default never satisfies it.
	Token Secret `koanf:"token"`

	// TokenValidSeconds is the lifetime of announce keys issued to users.
	TokenValidSeconds uint64 `koanf:"token_valid_seconds"`

	// Listed restricts announces to torrents listed in the index.
	Listed bool `koanf:"listed"`

	// Private restricts announces to registered users.
	Private bool `koanf:"private"`
}

// Network contains the network settings for the index API server.
type Network struct {
	// BindAddress is the host:port the API server listens on.
	BindAddress string `koanf:"bind_address"`

	// BaseURL, when set, overrides the externally visible base URL of the
	// API (for deployments behind a reverse proxy). Empty means unset.
	BaseURL string `koanf:"base_url"`

	// TLS, when present, enables TLS on the listener.
	TLS *NetworkTLS `koanf:"tls"`
}

// NetworkTLS holds the certificate pair for a TLS listener.
type NetworkTLS struct {
	SSLCertPath string `koanf:"ssl_cert_path"`
	SSLKeyPath  string `koanf:"ssl_key_path"`
}

// Auth contains authentication and password policy settings.
type Auth struct {
	// EmailOnSignup controls whether an email address is collected during
	// registration. One of: "required", "optional", "none".
	EmailOnSignup EmailOnSignup `koanf:"email_on_signup"`

	// UserClaimTokenPepper is mixed into user claim token hashes.
	// Mandatory: a compiled default never satisfies it.
	UserClaimTokenPepper Secret `koanf:"user_claim_token_pepper"`

	// PasswordConstraints bounds the accepted password lengths.
	PasswordConstraints PasswordConstraints `koanf:"password_constraints"`
}

// EmailOnSignup is the email collection policy during registration.
type EmailOnSignup string

// Known email-on-signup policies.
const (
	EmailOnSignupRequired EmailOnSignup = "required"
	EmailOnSignupOptional EmailOnSignup = "optional"
	EmailOnSignupNone     EmailOnSignup = "none"
)

// UnmarshalText validates the policy during extraction.
func (e *EmailOnSignup) UnmarshalText(text []byte) error {
	switch v := EmailOnSignup(text); v {
	case EmailOnSignupRequired, EmailOnSignupOptional, EmailOnSignupNone:
		*e = v
		return nil
	}
	return fmt.Errorf("unknown email_on_signup policy %q", text)
}

// PasswordConstraints bounds the accepted password lengths.
type PasswordConstraints struct {
	MinPasswordLength uint `koanf:"min_password_length"`
	MaxPasswordLength uint `koanf:"max_password_length"`
}

// Database contains the connection settings for the relational store.
type Database struct {
	// ConnectURL is the database connection string, e.g.
	// "sqlite://data.db?mode=rwc".
	ConnectURL string `koanf:"connect_url"`
}

// Mail contains the outgoing mail settings.
type Mail struct {
	// From is the sender address on outgoing mail.
	From string `koanf:"from"`

	// ReplyTo is the reply-to address on outgoing mail.
	ReplyTo string `koanf:"reply_to"`

	// EmailVerificationEnabled requires users to verify their address
	// before the account becomes active.
	EmailVerificationEnabled bool `koanf:"email_verification_enabled"`

	// SMTP is the server used to deliver mail.
	SMTP SMTP `koanf:"smtp"`
}

// SMTP is the server used to deliver outgoing mail.
type SMTP struct {
	Server      string      `koanf:"server"`
	Port        uint16      `koanf:"port"`
	Credentials Credentials `koanf:"credentials"`
}

// Credentials authenticate against the SMTP server.
type Credentials struct {
	Username string `koanf:"username"`
	Password Secret `koanf:"password"`
}

// ImageCache contains the proxied-image cache settings.
type ImageCache struct {
	// MaxRequestTimeoutMS bounds a single upstream image fetch.
	MaxRequestTimeoutMS uint64 `koanf:"max_request_timeout_ms"`

	// Capacity is the total cache size in bytes.
	Capacity uint64 `koanf:"capacity"`

	// EntrySizeLimit is the largest cacheable image in bytes.
	EntrySizeLimit uint64 `koanf:"entry_size_limit"`

	// UserQuotaPeriodSeconds is the quota accounting window.
	UserQuotaPeriodSeconds uint64 `koanf:"user_quota_period_seconds"`

	// UserQuotaBytes is the per-user download budget per window.
	UserQuotaBytes uint64 `koanf:"user_quota_bytes"`
}

// API contains pagination limits for the public API.
type API struct {
	DefaultTorrentPageSize uint `koanf:"default_torrent_page_size"`
	MaxTorrentPageSize     uint `koanf:"max_torrent_page_size"`
}

// Registration controls user sign-up.
type Registration struct {
	Email RegistrationEmail `koanf:"email"`
}

// RegistrationEmail controls the email requirements during sign-up.
type RegistrationEmail struct {
	Required             bool `koanf:"required"`
	VerificationRequired bool `koanf:"verification_required"`
}

// TrackerStatisticsImporter contains the settings for the background job
// that imports torrent statistics from the tracker.
type TrackerStatisticsImporter struct {
	// TorrentInfoUpdateInterval is the import period in seconds.
	TorrentInfoUpdateInterval uint64 `koanf:"torrent_info_update_interval"`

	// Port is the local port the importer health endpoint listens on.
	Port uint16 `koanf:"port"`
}

// Secret is a configuration value that must never appear in logs or dumps.
// Formatting a Secret yields a mask; compare or pass the raw value by
// converting it back to a string explicitly.
type Secret string

const secretMask = "***"

// String implements fmt.Stringer and always returns the mask.
func (s Secret) String() string {
	return secretMask
}

// LogValue implements slog.LogValuer so structured logs get the mask too.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(secretMask)
}

func (s Secret) redacted() Secret {
	if s == "" {
		return s
	}
	return secretMask
}
