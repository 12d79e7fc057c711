// Package config provides configuration management for gnkore.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// Credentials for NCBI E-utilities are usually kept in a .env file that is
// loaded into the environment before the configuration is read.
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - API: ena_portal_url, ena_browser_url, datasets_url, eutils_url,
//     gbif_url, entrez_api_key, entrez_email, timeout
//   - Process: search_limit
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Process.KeepGoing, Process.Format (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNKORE_ prefix with underscores for nesting:
//
//	GNKORE_API_ENTREZ_API_KEY=0123456789abcdef
//	GNKORE_API_ENTREZ_EMAIL=me@example.org
//	GNKORE_LOG_LEVEL=info
//	GNKORE_JOBS_NUMBER=4
//
// ENTREZ_API and ENTREZ_EMAIL are accepted as aliases for the credentials.
package config

// Config represents the complete gnkore configuration.
type Config struct {
	// API contains locations of remote services and credentials.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Process contains settings of the BioProject processing.
	Process ProcessConfig `mapstructure:"process" yaml:"process"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of BioProjects processed concurrently.
	// Steps within one BioProject always run sequentially.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// APIConfig contains base URLs of remote services and credentials.
type APIConfig struct {
	// ENAPortalURL is the ENA portal API used for assembly search.
	ENAPortalURL string `mapstructure:"ena_portal_url" yaml:"ena_portal_url"`

	// ENABrowserURL is the ENA browser API that serves BioProject XML.
	ENABrowserURL string `mapstructure:"ena_browser_url" yaml:"ena_browser_url"`

	// DatasetsURL is the NCBI Datasets v2 API.
	DatasetsURL string `mapstructure:"datasets_url" yaml:"datasets_url"`

	// EutilsURL is the NCBI E-utilities API used for taxonomy.
	EutilsURL string `mapstructure:"eutils_url" yaml:"eutils_url"`

	// GBIFURL is the GBIF API used for species match and lookup.
	GBIFURL string `mapstructure:"gbif_url" yaml:"gbif_url"`

	// EntrezAPIKey is the NCBI API key. Without it NCBI applies lower
	// rate limits.
	EntrezAPIKey string `mapstructure:"entrez_api_key" yaml:"entrez_api_key"`

	// EntrezEmail is the contact email sent to NCBI in the User-Agent.
	EntrezEmail string `mapstructure:"entrez_email" yaml:"entrez_email"`

	// Timeout of an HTTP request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// ProcessConfig contains settings of BioProject processing.
type ProcessConfig struct {
	// SearchLimit is the maximum number of assemblies returned by ENA
	// for one project accession.
	SearchLimit int `mapstructure:"search_limit" yaml:"search_limit"`

	// KeepGoing makes a failed BioProject skip to the next one instead
	// of aborting the whole run. Failures are reported at the end.
	KeepGoing bool `mapstructure:"keep_going" yaml:"keep_going"`

	// Format of the output: "text", "compact", "pretty", "yaml", "csv", "tsv".
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		API: APIConfig{
			ENAPortalURL:  "https://www.ebi.ac.uk/ena/portal/api/",
			ENABrowserURL: "https://www.ebi.ac.uk/ena/browser/api/",
			DatasetsURL:   "https://api.ncbi.nlm.nih.gov/datasets/v2/",
			EutilsURL:     "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/",
			GBIFURL:       "https://api.gbif.org/v1/",
			Timeout:       60,
		},
		Process: ProcessConfig{
			SearchLimit: 40,
			Format:      "text",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		// Remote services throttle clients, keep it low.
		JobsNumber: 1,
	}

	return res
}
