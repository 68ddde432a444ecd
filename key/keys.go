// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 12

// Styling Inputs - these keys locate the default theme and mapping documents fed to the engine.
const (
	StylesDefaultTheme   = "styles.default_theme"
	StylesDefaultMapping = "styles.default_mapping"
)

// Style Cache - these keys bound the in-memory resolution cache.
const (
	CacheMaxSize = "cache.max_size"
)

// Previewer - these keys configure the interactive widget previewer.
const (
	PreviewSampleText = "preview.sample_text"
	PreviewShowRaw    = "preview.show_raw"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliJsonOutput   = "cli.json_output"
)
