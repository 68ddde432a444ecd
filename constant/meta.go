// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Tinct is the canonical application identifier used for filesystem paths and CLI branding.
	Tinct = "tinct"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at release time through ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// AsciiArtLogo is the application's banner shown on the root help screen.
const AsciiArtLogo = `
 ▀█▀ █ █▄ █ ▄▀▀ ▀█▀
  █  █ █ ▀█ ▀▄▄  █ `
