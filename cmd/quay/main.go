// Quay is the backend of a BitTorrent index site.
//
// This binary hosts the configuration tooling around the bootstrap
// engine:
//
//	# Resolve and semantically validate the configuration
//	quay config validate
//
//	# Print the effective document with secrets masked
//	quay config show --format toml
//
//	# Show version information
//	quay version
//
// Configuration is discovered from QUAY_CONFIG_TOML (inline document),
// QUAY_CONFIG_TOML_PATH (document file), and QUAY_CONFIG_OVERRIDE_*
// environment overrides; the --config flag supplies the fallback file
// path.
package main

func main() {
	Execute()
}
