package config

// Compiled-in default values. Mandatory options also carry a default so a
// default-constructed document is complete, but the mandatory guard never
// lets a default satisfy them during resolution.
const (
	DefaultSiteName = "Quay"

	DefaultLoggingThreshold = ThresholdInfo

	DefaultTrackerURL               = "udp://localhost:6969"
	DefaultTrackerAPIURL            = "http://localhost:1212"
	DefaultTrackerToken             = Secret("MyAccessToken")
	DefaultTrackerTokenValidSeconds = 7_257_600 // twelve weeks

	DefaultBindAddress = "0.0.0.0:3001"

	DefaultEmailOnSignup        = EmailOnSignupOptional
	DefaultUserClaimTokenPepper = Secret("ChangeThisPepper")
	DefaultMinPasswordLength    = 6
	DefaultMaxPasswordLength    = 64

	DefaultDatabaseConnectURL = "sqlite://data.db?mode=rwc"

	DefaultMailFrom    = "example@email.com"
	DefaultMailReplyTo = "noreply@email.com"
	DefaultSMTPServer  = ""
	DefaultSMTPPort    = 25

	DefaultImageCacheMaxRequestTimeoutMS    = 1000
	DefaultImageCacheCapacity               = 128_000_000
	DefaultImageCacheEntrySizeLimit         = 4_000_000
	DefaultImageCacheUserQuotaPeriodSeconds = 3600
	DefaultImageCacheUserQuotaBytes         = 64_000_000

	DefaultTorrentPageSize    = 10
	DefaultMaxTorrentPageSize = 30

	DefaultTorrentInfoUpdateInterval = 3600
	DefaultImporterPort              = 3002
)

// DefaultSettings returns the compiled-in settings document. It is the
// lowest-precedence layer of every resolution pass and the initial value
// of a handle constructed without running resolution.
func DefaultSettings() Settings {
	return Settings{
		Metadata: Metadata{
			App:           AppQuayIndex,
			Purpose:       PurposeConfiguration,
			SchemaVersion: SchemaVersion,
		},
		Logging: Logging{
			Threshold: DefaultLoggingThreshold,
		},
		Website: Website{
			Name: DefaultSiteName,
		},
		Tracker: Tracker{
			URL:               DefaultTrackerURL,
			APIURL:            DefaultTrackerAPIURL,
			Token:             DefaultTrackerToken,
			TokenValidSeconds: DefaultTrackerTokenValidSeconds,
		},
		Net: Network{
			BindAddress: DefaultBindAddress,
		},
		Auth: Auth{
			EmailOnSignup:        DefaultEmailOnSignup,
			UserClaimTokenPepper: DefaultUserClaimTokenPepper,
			PasswordConstraints: PasswordConstraints{
				MinPasswordLength: DefaultMinPasswordLength,
				MaxPasswordLength: DefaultMaxPasswordLength,
			},
		},
		Database: Database{
			ConnectURL: DefaultDatabaseConnectURL,
		},
		Mail: Mail{
			From:    DefaultMailFrom,
			ReplyTo: DefaultMailReplyTo,
			SMTP: SMTP{
				Server: DefaultSMTPServer,
				Port:   DefaultSMTPPort,
			},
		},
		ImageCache: ImageCache{
			MaxRequestTimeoutMS:    DefaultImageCacheMaxRequestTimeoutMS,
			Capacity:               DefaultImageCacheCapacity,
			EntrySizeLimit:         DefaultImageCacheEntrySizeLimit,
			UserQuotaPeriodSeconds: DefaultImageCacheUserQuotaPeriodSeconds,
			UserQuotaBytes:         DefaultImageCacheUserQuotaBytes,
		},
		API: API{
			DefaultTorrentPageSize: DefaultTorrentPageSize,
			MaxTorrentPageSize:     DefaultMaxTorrentPageSize,
		},
		TrackerStatisticsImporter: TrackerStatisticsImporter{
			TorrentInfoUpdateInterval: DefaultTorrentInfoUpdateInterval,
			Port:                      DefaultImporterPort,
		},
	}
}
