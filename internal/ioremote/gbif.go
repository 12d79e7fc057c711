package ioremote

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/gnames/gnkore/pkg/remote"
)

type gbifMatch struct {
	UsageKey int `json:"usageKey"`
}

type gbifSpecies struct {
	Authorship     string `json:"authorship"`
	VernacularName string `json:"vernacularName"`
}

// GBIF matches species to the GBIF backbone taxonomy.
type GBIF struct {
	c   *client
	url string
}

// newGBIF creates GBIF source.
func newGBIF(c *client, baseURL string) *GBIF {
	return &GBIF{c: c, url: baseURL}
}

// Species finds a species by genus and specific epithet using strict
// matching, and then reads its authorship and vernacular name.
func (g *GBIF) Species(
	ctx context.Context,
	genus, epithet string,
) (remote.SpeciesMatch, error) {
	var res remote.SpeciesMatch
	vals := url.Values{
		"genus":           {genus},
		"specificEpithet": {epithet},
		"strict":          {"true"},
	}
	resource := "species/match"
	body, err := g.c.get(ctx, g.url, resource, vals, acceptJSON)
	if err != nil {
		return res, err
	}

	var m gbifMatch
	if err = json.Unmarshal(body, &m); err != nil {
		return res, RemoteDecodeError(g.url+resource, err)
	}
	if m.UsageKey == 0 {
		return res, nil
	}

	resource = "species/" + strconv.Itoa(m.UsageKey)
	body, err = g.c.get(ctx, g.url, resource, nil, acceptJSON)
	if err != nil {
		return res, err
	}

	var sp gbifSpecies
	if err = json.Unmarshal(body, &sp); err != nil {
		return res, RemoteDecodeError(g.url+resource, err)
	}

	res = remote.SpeciesMatch{
		UsageKey:   m.UsageKey,
		Authority:  strings.TrimSpace(sp.Authorship),
		CommonName: strings.TrimSpace(sp.VernacularName),
		URL:        g.url + resource,
	}
	return res, nil
}
