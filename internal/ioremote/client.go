// Package ioremote implements data sources of pkg/remote on top of the
// public HTTP APIs of ENA, NCBI Datasets, NCBI E-utilities and GBIF.
package ioremote

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/StalkR/hsts"
	gnkore "github.com/gnames/gnkore/pkg"
	"github.com/gnames/gnkore/pkg/config"
	"github.com/gnames/gnkore/pkg/remote"
)

const (
	acceptJSON = "application/json"
	acceptXML  = "application/xml"
)

// client performs GET requests shared by all sources.
type client struct {
	http  *http.Client
	agent string
}

// New creates all remote sources from the API configuration. The sources
// share one HTTP client.
func New(cfg config.APIConfig, searchLimit int) remote.Sources {
	c := newClient(cfg)
	ena := newENA(c, cfg.ENAPortalURL, cfg.ENABrowserURL, searchLimit)
	ds := newDatasets(c, cfg.DatasetsURL, cfg.EntrezAPIKey)
	return remote.Sources{
		Bioprojects: ena,
		Assemblies:  ena,
		Taxonomy:    newEutils(c, cfg.EutilsURL, cfg.EntrezAPIKey),
		Species:     newGBIF(c, cfg.GBIFURL),
		Revisions:   ds,
		Reports:     ds,
		Sequences:   ds,
	}
}

// newClient creates an HTTP client with a timeout and HTTP Strict
// Transport Security. The contact email, if given, goes to the
// User-Agent header as NCBI asks.
func newClient(cfg config.APIConfig) *client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	hc := &http.Client{Timeout: timeout}
	hc.Transport = hsts.New(hc.Transport)

	agent := config.AppName + "/" + gnkore.Version
	if cfg.EntrezEmail != "" {
		agent += "; " + cfg.EntrezEmail
	}
	return &client{http: hc, agent: agent}
}

// get performs a GET request for a resource relative to the base URL and
// returns the body of a successful response.
func (c *client) get(
	ctx context.Context,
	base, resource string,
	values url.Values,
	accept string,
) ([]byte, error) {
	addr := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(resource, "/")
	u, err := url.Parse(addr)
	if err != nil {
		return nil, RemoteRequestError(addr, err)
	}
	u.RawQuery = values.Encode()
	slog.Debug("GET", "url", addr)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, u.String(), http.NoBody,
	)
	if err != nil {
		return nil, RemoteRequestError(addr, err)
	}
	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, RemoteRequestError(addr, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, RemoteRequestError(addr, err)
		}
		return body, nil
	default:
		return nil, RemoteStatusError(addr, resp.StatusCode)
	}
}
