package ioremote

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gnkore/pkg/assembly"
	"github.com/gnames/gnkore/pkg/remote"
)

// sequencePageSize is the number of sequences requested per page.
const sequencePageSize = "1000"

type revision struct {
	Accession   string `json:"genbank_accession"`
	Name        string `json:"assembly_name"`
	ReleaseDate string `json:"release_date"`
}

type revisionHistory struct {
	Revisions []revision `json:"assembly_revisions"`
}

type datasetReports struct {
	Reports []datasetReport `json:"reports"`
}

type datasetReport struct {
	Accession string `json:"accession"`
	Info      struct {
		Level     string `json:"assembly_level"`
		Biosample struct {
			Attributes []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"attributes"`
		} `json:"biosample"`
	} `json:"assembly_info"`
	Stats struct {
		TotalLength     optInt    `json:"total_sequence_length"`
		ContigCount     optInt    `json:"number_of_contigs"`
		ContigN50       optInt    `json:"contig_n50"`
		ScaffoldCount   optInt    `json:"number_of_scaffolds"`
		ScaffoldN50     optInt    `json:"scaffold_n50"`
		ChromosomeCount optInt    `json:"total_number_of_chromosomes"`
		Coverage        optString `json:"genome_coverage"`
	} `json:"assembly_stats"`
	WGS struct {
		ProjectAccession string `json:"wgs_project_accession"`
	} `json:"wgs_info"`
}

type sequenceReports struct {
	Reports []struct {
		GenBankAccession string   `json:"genbank_accession"`
		ChrName          string   `json:"chr_name"`
		Role             string   `json:"role"`
		Length           optInt   `json:"length"`
		GCPercent        *float64 `json:"gc_percent"`
	} `json:"reports"`
	NextPageToken string `json:"next_page_token"`
}

// Datasets reads assembly data from the NCBI Datasets API.
type Datasets struct {
	c      *client
	url    string
	apiKey string
}

// newDatasets creates Datasets source.
func newDatasets(c *client, baseURL, apiKey string) *Datasets {
	return &Datasets{c: c, url: baseURL, apiKey: apiKey}
}

func (d *Datasets) values() url.Values {
	res := url.Values{}
	if d.apiKey != "" {
		res.Set("api_key", d.apiKey)
	}
	return res
}

func (d *Datasets) resource(acc, endpoint string) string {
	return "genome/accession/" + url.PathEscape(acc) + "/" + endpoint
}

// LatestRevision returns the most recently released revision of an
// assembly set. If there are no revisions, the input accession is
// returned.
func (d *Datasets) LatestRevision(
	ctx context.Context,
	setAcc string,
) (remote.Revision, error) {
	res := remote.Revision{SetAccession: setAcc}
	resource := d.resource(setAcc, "revision_history")
	body, err := d.c.get(ctx, d.url, resource, d.values(), acceptJSON)
	if err != nil {
		return res, err
	}

	var rh revisionHistory
	if err = json.Unmarshal(body, &rh); err != nil {
		return res, RemoteDecodeError(d.url+resource, err)
	}
	if len(rh.Revisions) == 0 {
		slog.Info("No revisions found", "accession", setAcc)
		return res, nil
	}

	// release dates are ISO 8601 strings
	latest := slices.MaxFunc(rh.Revisions, func(a, b revision) int {
		return cmp.Compare(a.ReleaseDate, b.ReleaseDate)
	})
	if latest.Accession != "" {
		res.SetAccession = latest.Accession
	}
	res.Name = latest.Name

	if res.SetAccession != setAcc {
		slog.Info("Assembly update found",
			"accession", setAcc, "latest", res.SetAccession, "name", res.Name)
	}
	return res, nil
}

// DatasetReport returns structural statistics of an assembly, or nil if
// the assembly has no report.
func (d *Datasets) DatasetReport(
	ctx context.Context,
	acc string,
) (*assembly.DatasetReport, error) {
	resource := d.resource(acc, "dataset_report")
	body, err := d.c.get(ctx, d.url, resource, d.values(), acceptJSON)
	if err != nil {
		return nil, err
	}

	var dr datasetReports
	if err = json.Unmarshal(body, &dr); err != nil {
		return nil, RemoteDecodeError(d.url+resource, err)
	}
	if len(dr.Reports) == 0 {
		return nil, nil
	}

	r := dr.Reports[0]
	res := assembly.DatasetReport{
		Level:               r.Info.Level,
		TotalLength:         r.Stats.TotalLength.int64Ptr(),
		ContigCount:         r.Stats.ContigCount.intPtr(),
		ContigN50:           r.Stats.ContigN50.int64Ptr(),
		ScaffoldCount:       r.Stats.ScaffoldCount.intPtr(),
		ScaffoldN50:         r.Stats.ScaffoldN50.int64Ptr(),
		ChromosomeCount:     r.Stats.ChromosomeCount.intPtr(),
		Coverage:            string(r.Stats.Coverage),
		WGSProjectAccession: r.WGS.ProjectAccession,
	}
	for _, v := range r.Info.Biosample.Attributes {
		if strings.EqualFold(v.Name, "tolid") {
			res.ToLID = strings.TrimSpace(v.Value)
			break
		}
	}
	return &res, nil
}

// SequenceReport returns all sequences of an assembly, following
// pagination of the API.
func (d *Datasets) SequenceReport(
	ctx context.Context,
	acc string,
) ([]assembly.SequenceRow, error) {
	var res []assembly.SequenceRow
	resource := d.resource(acc, "sequence_reports")
	vals := d.values()
	vals.Set("page_size", sequencePageSize)

	for {
		body, err := d.c.get(ctx, d.url, resource, vals, acceptJSON)
		if err != nil {
			return nil, err
		}

		var sr sequenceReports
		if err = json.Unmarshal(body, &sr); err != nil {
			return nil, RemoteDecodeError(d.url+resource, err)
		}
		for _, v := range sr.Reports {
			res = append(res, assembly.SequenceRow{
				Role:             v.Role,
				GenBankAccession: v.GenBankAccession,
				Molecule:         v.ChrName,
				Length:           v.Length.Val,
				GCPercent:        v.GCPercent,
			})
		}

		if sr.NextPageToken == "" || sr.NextPageToken == vals.Get("page_token") {
			return res, nil
		}
		vals.Set("page_token", sr.NextPageToken)
	}
}
