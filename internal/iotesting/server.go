// Package iotesting provides imitations of remote services for tests.
package iotesting

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnames/gnkore/pkg/config"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

const projectXML = `<?xml version="1.0" encoding="UTF-8"?>
<PROJECT_SET>
  <PROJECT accession="PRJNA000001">
    <TITLE> Kretania trappi genome project </TITLE>
    <SUBMISSION_PROJECT>
      <ORGANISM>
        <TAXON_ID>12345</TAXON_ID>
        <SCIENTIFIC_NAME>Kretania trappi</SCIENTIFIC_NAME>
      </ORGANISM>
    </SUBMISSION_PROJECT>
    <RELATED_PROJECTS>
      <RELATED_PROJECT><CHILD_PROJECT accession="PRJEB1"/></RELATED_PROJECT>
      <RELATED_PROJECT><CHILD_PROJECT accession="PRJEB2"/></RELATED_PROJECT>
      <RELATED_PROJECT><PARENT_PROJECT accession="PRJEB0"/></RELATED_PROJECT>
    </RELATED_PROJECTS>
    <PROJECT_ATTRIBUTES>
      <PROJECT_ATTRIBUTE><TAG>TITLE</TAG></PROJECT_ATTRIBUTE>
    </PROJECT_ATTRIBUTES>
  </PROJECT>
</PROJECT_SET>`

const taxonomyXML = `<?xml version="1.0" ?>
<!DOCTYPE TaxaSet PUBLIC "-//NLM//DTD Taxon, 14th January 2002//EN" "https://www.ncbi.nlm.nih.gov/entrez/query/DTD/taxon.dtd">
<TaxaSet><Taxon>
  <TaxId>12345</TaxId>
  <ScientificName>Kretania trappi</ScientificName>
  <Rank>species</Rank>
  <LineageEx>
    <Taxon><TaxId>131567</TaxId><ScientificName>cellular organisms</ScientificName><Rank>no rank</Rank></Taxon>
    <Taxon><TaxId>2759</TaxId><ScientificName>Eukaryota</ScientificName><Rank>superkingdom</Rank></Taxon>
    <Taxon><TaxId>33208</TaxId><ScientificName>Metazoa</ScientificName><Rank>kingdom</Rank></Taxon>
    <Taxon><TaxId>6656</TaxId><ScientificName>Arthropoda</ScientificName><Rank>phylum</Rank></Taxon>
    <Taxon><TaxId>50557</TaxId><ScientificName>Insecta</ScientificName><Rank>class</Rank></Taxon>
    <Taxon><TaxId>7088</TaxId><ScientificName>Lepidoptera</ScientificName><Rank>order</Rank></Taxon>
    <Taxon><TaxId>37586</TaxId><ScientificName>Lycaenidae</ScientificName><Rank>family</Rank></Taxon>
    <Taxon><TaxId>1000</TaxId><ScientificName>Kretania</ScientificName><Rank>genus</Rank></Taxon>
  </LineageEx>
</Taxon></TaxaSet>`

const datasetReportJSON = `{"reports": [{
  "accession": "GCA_000000001.1",
  "assembly_info": {
    "assembly_level": "Chromosome",
    "biosample": {"attributes": [
      {"name": "collected_by", "value": "someone"},
      {"name": "tolid", "value": "ilKreTrap1"}
    ]}
  },
  "assembly_stats": {
    "total_sequence_length": "1234567890",
    "number_of_contigs": 120,
    "contig_n50": 12345678,
    "number_of_scaffolds": 56,
    "scaffold_n50": 987654,
    "genome_coverage": "45.0x"
  },
  "wgs_info": {"wgs_project_accession": "CAXXXX01"}
}], "total_count": 1}`

// NewServer imitates ENA, NCBI and GBIF APIs. Every API is mounted under
// its own prefix. The server is closed when the test ends.
//
// PRJNA000001 is a Kretania trappi project with PRJEB1 and PRJEB2
// children. PRJEB1 has two haplotype assemblies, the first one has a
// newer revision.
func NewServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()

	r.HandleFunc("/browser/xml/{acc}", func(w http.ResponseWriter, r *http.Request) {
		switch mux.Vars(r)["acc"] {
		case "PRJNA000001":
			fmt.Fprint(w, projectXML)
		case "PRJNA000002":
			fmt.Fprint(w, "this is not XML")
		default:
			http.NotFound(w, r)
		}
	})

	r.HandleFunc("/portal/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "assembly", q.Get("result"))
		assert.Equal(t, "40", q.Get("limit"))
		switch q.Get("includeAccessions") {
		case "PRJEB1":
			fmt.Fprint(w, `[
			  {"accession": "GCA_1.1", "assembly_name": "sp1 hap1.1",
			   "assembly_set_accession": "GCA_1.1", "tax_id": "12345"},
			  {"accession": "GCA_2.1", "assembly_name": "sp1 hap2.1",
			   "assembly_set_accession": "GCA_2.1", "tax_id": 12345}
			]`)
		case "PRJEB2":
			w.WriteHeader(http.StatusOK)
		default:
			fmt.Fprint(w, "[{")
		}
	})

	r.HandleFunc("/eutils/efetch.fcgi", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "taxonomy", q.Get("db"))
		assert.Equal(t, "secret", q.Get("api_key"))
		assert.Contains(t, r.Header.Get("User-Agent"), "me@example.org")
		if q.Get("id") == "12345" {
			fmt.Fprint(w, taxonomyXML)
			return
		}
		fmt.Fprint(w, `<eFetchResult><ERROR>ID list is empty</ERROR></eFetchResult>`)
	})

	r.HandleFunc("/gbif/species/match", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("strict"))
		if q.Get("genus") == "Kretania" && q.Get("specificEpithet") == "trappi" {
			fmt.Fprint(w, `{"usageKey": 42, "matchType": "EXACT"}`)
			return
		}
		fmt.Fprint(w, `{"matchType": "NONE"}`)
	})

	r.HandleFunc("/gbif/species/42", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"key": 42, "authorship": " (Verity, 1927) ",
		  "vernacularName": "Trapp's blue"}`)
	})

	ds := r.PathPrefix("/datasets/genome/accession/{acc}").Subrouter()
	ds.HandleFunc("/revision_history", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["acc"] == "GCA_1.1" {
			fmt.Fprint(w, `{"assembly_revisions": [
			  {"genbank_accession": "GCA_1.1", "assembly_name": "sp1 hap1.1",
			   "release_date": "2022-01-01"},
			  {"genbank_accession": "GCA_1.3", "assembly_name": "sp1 hap1.3",
			   "release_date": "2024-05-01"},
			  {"genbank_accession": "GCA_1.2", "assembly_name": "sp1 hap1.2",
			   "release_date": "2023-03-01"}
			]}`)
			return
		}
		fmt.Fprint(w, `{}`)
	})
	ds.HandleFunc("/dataset_report", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["acc"] == "GCA_000000001.1" {
			fmt.Fprint(w, datasetReportJSON)
			return
		}
		fmt.Fprint(w, `{"total_count": 0}`)
	})
	ds.HandleFunc("/sequence_reports", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000", r.URL.Query().Get("page_size"))
		if r.URL.Query().Get("page_token") == "" {
			fmt.Fprint(w, `{"reports": [
			  {"genbank_accession": "OX1.1", "chr_name": "1",
			   "role": "assembled-molecule", "length": 2000000, "gc_percent": 38.5},
			  {"genbank_accession": "OX2.1", "chr_name": "Un",
			   "role": "unplaced-scaffold", "length": 1000}
			], "next_page_token": "p2"}`)
			return
		}
		fmt.Fprint(w, `{"reports": [
		  {"genbank_accession": "OX3.1", "chr_name": "Z",
		   "role": "assembled-molecule", "length": "3000000"}
		]}`)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// Config returns a configuration that points all remote services to url,
// the address of the server from NewServer.
func Config(url string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptENAPortalURL(url + "/portal"),
		config.OptENABrowserURL(url + "/browser"),
		config.OptEutilsURL(url + "/eutils"),
		config.OptGBIFURL(url + "/gbif"),
		config.OptDatasetsURL(url + "/datasets"),
		config.OptEntrezAPIKey("secret"),
		config.OptEntrezEmail("me@example.org"),
		config.OptTimeout(5),
	})
	return cfg
}
