package ioremote

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/gnames/gnkore/pkg/assembly"
	"github.com/gnames/gnkore/pkg/remote"
)

// assemblyFields are the fields requested from the ENA portal search.
const assemblyFields = "accession,assembly_name,assembly_set_accession,tax_id"

// ENA reads BioProjects from the ENA browser API and searches assemblies
// with the ENA portal API.
type ENA struct {
	c          *client
	portalURL  string
	browserURL string
	limit      int
}

// newENA creates ENA source.
func newENA(c *client, portalURL, browserURL string, limit int) *ENA {
	return &ENA{c: c, portalURL: portalURL, browserURL: browserURL, limit: limit}
}

// Bioproject fetches the XML record of a BioProject. It returns the first
// title, the first taxon ID and accessions of all child projects.
func (e *ENA) Bioproject(
	ctx context.Context,
	acc string,
) (remote.BioprojectRecord, error) {
	res := remote.BioprojectRecord{Accession: acc}
	resource := "xml/" + acc
	body, err := e.c.get(ctx, e.browserURL, resource, nil, acceptXML)
	if err != nil {
		return res, err
	}

	err = parseProjectXML(body, &res)
	if err != nil {
		return res, RemoteDecodeError(e.browserURL+resource, err)
	}
	return res, nil
}

// parseProjectXML walks XML tokens of a project record. The location of
// the elements differs between umbrella and regular projects, so the
// walk does not depend on the document structure.
func parseProjectXML(body []byte, rec *remote.BioprojectRecord) error {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var elements int
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		elements++

		switch se.Name.Local {
		case "TITLE":
			var s string
			if err = dec.DecodeElement(&s, &se); err != nil {
				return err
			}
			if rec.Title == "" {
				rec.Title = strings.TrimSpace(s)
			}
		case "TAXON_ID":
			var s string
			if err = dec.DecodeElement(&s, &se); err != nil {
				return err
			}
			if rec.TaxID == "" {
				rec.TaxID = strings.TrimSpace(s)
			}
		case "CHILD_PROJECT":
			for _, v := range se.Attr {
				if v.Name.Local == "accession" && v.Value != "" {
					rec.Children = append(rec.Children, v.Value)
				}
			}
		}
	}

	if elements == 0 {
		return errors.New("empty XML document")
	}
	return nil
}

// enaAssembly is a record of the ENA portal search. Depending on the
// endpoint version tax_id comes either as a string or as a number.
type enaAssembly struct {
	Accession    string    `json:"accession"`
	Name         string    `json:"assembly_name"`
	SetAccession string    `json:"assembly_set_accession"`
	TaxID        optString `json:"tax_id"`
}

// Assemblies searches assemblies that belong to a project.
func (e *ENA) Assemblies(
	ctx context.Context,
	acc string,
) ([]assembly.Raw, error) {
	vals := url.Values{
		"result":            {"assembly"},
		"includeAccessions": {acc},
		"fields":            {assemblyFields},
		"limit":             {strconv.Itoa(e.limit)},
		"format":            {"json"},
	}
	body, err := e.c.get(ctx, e.portalURL, "search", vals, acceptJSON)
	if err != nil {
		return nil, err
	}

	// ENA returns an empty body when nothing is found.
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var recs []enaAssembly
	if err = json.Unmarshal(body, &recs); err != nil {
		return nil, RemoteDecodeError(e.portalURL+"search", err)
	}

	res := make([]assembly.Raw, len(recs))
	for i, v := range recs {
		res[i] = assembly.Raw{
			Accession:    v.Accession,
			Name:         v.Name,
			SetAccession: v.SetAccession,
			TaxID:        string(v.TaxID),
		}
	}
	return res, nil
}
