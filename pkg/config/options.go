package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptENAPortalURL sets the ENA portal API base URL.
func OptENAPortalURL(s string) Option {
	s = normalizeURL(s)
	return func(c *Config) {
		if isValidURL("API ENA Portal URL", s) {
			c.API.ENAPortalURL = s
		}
	}
}

// OptENABrowserURL sets the ENA browser API base URL.
func OptENABrowserURL(s string) Option {
	s = normalizeURL(s)
	return func(c *Config) {
		if isValidURL("API ENA Browser URL", s) {
			c.API.ENABrowserURL = s
		}
	}
}

// OptDatasetsURL sets the NCBI Datasets API base URL.
func OptDatasetsURL(s string) Option {
	s = normalizeURL(s)
	return func(c *Config) {
		if isValidURL("API Datasets URL", s) {
			c.API.DatasetsURL = s
		}
	}
}

// OptEutilsURL sets the NCBI E-utilities base URL.
func OptEutilsURL(s string) Option {
	s = normalizeURL(s)
	return func(c *Config) {
		if isValidURL("API Eutils URL", s) {
			c.API.EutilsURL = s
		}
	}
}

// OptGBIFURL sets the GBIF API base URL.
func OptGBIFURL(s string) Option {
	s = normalizeURL(s)
	return func(c *Config) {
		if isValidURL("API GBIF URL", s) {
			c.API.GBIFURL = s
		}
	}
}

// OptEntrezAPIKey sets the NCBI API key.
func OptEntrezAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Entrez API Key", s) {
			c.API.EntrezAPIKey = s
		}
	}
}

// OptEntrezEmail sets the contact email for NCBI requests.
func OptEntrezEmail(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidEmail("Entrez Email", s) {
			c.API.EntrezEmail = s
		}
	}
}

// OptTimeout sets HTTP request timeout in seconds.
func OptTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("API Timeout", i) {
			c.API.Timeout = i
		}
	}
}

// OptSearchLimit sets the maximum number of assemblies returned by one
// ENA search.
func OptSearchLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Search Limit", i) {
			c.Process.SearchLimit = i
		}
	}
}

// OptKeepGoing makes failures isolated to a single BioProject.
// Runtime-only field - not in ToOptions().
func OptKeepGoing(b bool) Option {
	return func(c *Config) {
		c.Process.KeepGoing = b
	}
}

// OptFormat sets the output format.
// Valid values: "text", "compact", "pretty", "yaml", "csv", "tsv".
// Runtime-only field - not in ToOptions().
func OptFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Process.Format", s) {
			c.Process.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of BioProjects processed concurrently.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// normalizeURL trims the URL and makes sure it ends with a slash, so
// resource paths can be appended to it.
func normalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}
