// Package logging builds the process-wide structured logger from the
// resolved logging settings. The logging threshold is a mandatory
// configuration option, so a logger can only be constructed after a
// successful resolution pass (or from the compiled defaults).
package logging
