package config

import "github.com/knadh/koanf/v2"

// mandatoryOptions is the fixed list of dotted option paths that must be
// supplied by explicit user input (document or override). The list is part
// of the external contract: it must track the document schema in lock-step.
// Paths are probed in this order and the first missing one aborts the
// resolution.
var mandatoryOptions = [...]string{
	"auth.user_claim_token_pepper",
	"logging.threshold",
	"metadata.schema_version",
	"tracker.token",
}

// MandatoryOptions returns the dotted paths a user must supply explicitly.
func MandatoryOptions() []string {
	out := make([]string, len(mandatoryOptions))
	copy(out, mandatoryOptions[:])
	return out
}

// checkMandatoryOptions probes the pre-default merged view for every
// mandatory path. It must run against the user layers only: merging the
// defaults first would make every mandatory option trivially present.
func checkMandatoryOptions(user *koanf.Koanf) error {
	for _, path := range mandatoryOptions {
		if !user.Exists(path) {
			return &MissingMandatoryOptionError{Path: path}
		}
	}
	return nil
}
