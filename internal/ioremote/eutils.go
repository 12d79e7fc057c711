package ioremote

import (
	"context"
	"encoding/xml"
	"net/url"
	"strings"

	"github.com/gnames/gnkore/pkg/remote"
)

// rootLineage is removed from the beginning of lineages.
const rootLineage = "cellular organisms"

// taxonRanks are ranks collected from the NCBI taxonomy.
var taxonRanks = map[string]struct{}{
	"kingdom": {},
	"phylum":  {},
	"class":   {},
	"order":   {},
	"family":  {},
	"genus":   {},
	"species": {},
}

type taxaSet struct {
	Taxa []taxon `xml:"Taxon"`
}

type taxon struct {
	TaxID          string  `xml:"TaxId"`
	ScientificName string  `xml:"ScientificName"`
	Rank           string  `xml:"Rank"`
	LineageEx      []taxon `xml:"LineageEx>Taxon"`
}

// Eutils reads taxonomy from NCBI E-utilities.
type Eutils struct {
	c      *client
	url    string
	apiKey string
}

// newEutils creates Eutils source.
func newEutils(c *client, baseURL, apiKey string) *Eutils {
	return &Eutils{c: c, url: baseURL, apiKey: apiKey}
}

// Taxonomy fetches the classification of a taxon.
func (e *Eutils) Taxonomy(
	ctx context.Context,
	taxID string,
) (remote.Lineage, error) {
	var res remote.Lineage
	vals := url.Values{
		"db":      {"taxonomy"},
		"id":      {taxID},
		"retmode": {"xml"},
	}
	if e.apiKey != "" {
		vals.Set("api_key", e.apiKey)
	}

	resource := "efetch.fcgi"
	body, err := e.c.get(ctx, e.url, resource, vals, acceptXML)
	if err != nil {
		return res, err
	}

	var ts taxaSet
	if err = xml.Unmarshal(body, &ts); err != nil {
		return res, RemoteDecodeError(e.url+resource, err)
	}
	if len(ts.Taxa) == 0 {
		return res, TaxonomyNotFoundError(taxID)
	}
	return lineage(ts.Taxa[0]), nil
}

// lineage collects ranks from a taxon and its ancestors. Ancestors come
// first, so the taxon's own rank wins on a conflict.
func lineage(t taxon) remote.Lineage {
	res := remote.Lineage{Ranks: make(map[string]string)}

	names := make([]string, 0, len(t.LineageEx))
	for _, v := range t.LineageEx {
		addRank(res.Ranks, v)
		names = append(names, strings.TrimSpace(v.ScientificName))
	}
	addRank(res.Ranks, t)

	if len(names) > 0 && names[0] == rootLineage {
		names = names[1:]
	}
	res.Lineage = strings.Join(names, "; ")
	return res
}

func addRank(ranks map[string]string, t taxon) {
	if _, ok := taxonRanks[t.Rank]; ok {
		ranks[t.Rank] = strings.TrimSpace(t.ScientificName)
	}
}
