// Package config is the bootstrap configuration engine for Quay.
//
// It resolves a single, versioned, strongly-typed settings document from
// layered sources and exposes it to the rest of the process behind a
// concurrency-safe handle. Nothing else in the service reads configuration
// any other way.
//
// # Sources and precedence
//
// A resolution pass merges named layers, last-applied-wins:
//
//  1. Compiled-in defaults (defaults.go), lowest precedence.
//  2. The base document: the inline TOML payload from QUAY_CONFIG_TOML
//     when set, otherwise the file named by QUAY_CONFIG_TOML_PATH (falling
//     back to a compiled default path). Files may be TOML or YAML.
//  3. Environment overrides, highest precedence: every variable beginning
//     with QUAY_CONFIG_OVERRIDE_ maps onto a dotted option path, with "__"
//     separating segments. QUAY_CONFIG_OVERRIDE_TRACKER__TOKEN overrides
//     tracker.token.
//
// # Mandatory options
//
// A fixed set of security- and identity-critical options must come from
// explicit user input; a compiled default never satisfies them. The guard
// probes the merge of the user layers before defaults are joined in, and
// fails fast on the first missing path:
//
//	auth.user_claim_token_pepper
//	logging.threshold
//	metadata.schema_version
//	tracker.token
//
// # Schema version
//
// Every document carries metadata.schema_version. This build accepts
// exactly "2.0.0"; any other value fails resolution with
// UnsupportedVersionError. There is no migration between versions.
//
// # The handle
//
// Configuration guards the resolved document with a readers-writer lock.
// Readers take whole-document snapshots; privileged reload paths replace
// the document atomically, so a reader observes either the old or the new
// document in full, never a mix.
//
//	info, _ := config.NewInfo("./quay.toml")
//	cfg, err := config.Load(info)
//	if err != nil {
//		// the service must not start
//	}
//	name := cfg.SiteName()
//
// Resolution is synchronous and run-to-completion; a failed pass leaves no
// partial state behind, so callers may simply retry with a new input.
package config
