package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, KeepGoing, Format).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.API.ENAPortalURL
	if s != "" {
		res = append(res, OptENAPortalURL(s))
	}
	s = c.API.ENABrowserURL
	if s != "" {
		res = append(res, OptENABrowserURL(s))
	}
	s = c.API.DatasetsURL
	if s != "" {
		res = append(res, OptDatasetsURL(s))
	}
	s = c.API.EutilsURL
	if s != "" {
		res = append(res, OptEutilsURL(s))
	}
	s = c.API.GBIFURL
	if s != "" {
		res = append(res, OptGBIFURL(s))
	}
	s = c.API.EntrezAPIKey
	if s != "" {
		res = append(res, OptEntrezAPIKey(s))
	}
	s = c.API.EntrezEmail
	if s != "" {
		res = append(res, OptEntrezEmail(s))
	}
	i = c.API.Timeout
	if i > 0 {
		res = append(res, OptTimeout(i))
	}

	i = c.Process.SearchLimit
	if i > 0 {
		res = append(res, OptSearchLimit(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidURL(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		gn.Warn("<em>%s</em> is not a valid http(s) URL: '%s', ignoring",
			name, s)
		return false
	}
	return true
}

func isValidEmail(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 || strings.ContainsAny(s, " \t") {
		gn.Warn("<em>%s</em> does not look like an email: '%s', ignoring",
			name, s)
		return false
	}
	return true
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Process.Format": {"text": s, "compact": s, "pretty": s,
			"yaml": s, "csv": s, "tsv": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
