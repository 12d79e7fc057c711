// Package bioproject aggregates everything known about the genome
// assemblies of a BioProject: the project itself, taxonomy of the
// organism, its GBIF record and normalized assemblies.
package bioproject

import (
	"github.com/gnames/gnkore/pkg/assembly"
)

// Taxonomy is a classification of the studied organism.
type Taxonomy struct {
	Kingdom string `json:"kingdom,omitempty" yaml:"kingdom,omitempty"`
	Phylum  string `json:"phylum,omitempty" yaml:"phylum,omitempty"`
	Class   string `json:"class,omitempty" yaml:"class,omitempty"`
	Order   string `json:"order,omitempty" yaml:"order,omitempty"`
	Family  string `json:"family,omitempty" yaml:"family,omitempty"`
	Genus   string `json:"genus,omitempty" yaml:"genus,omitempty"`
	Species string `json:"species,omitempty" yaml:"species,omitempty"`

	// Lineage is a "; "-separated path from the root of the tree.
	Lineage string `json:"lineage,omitempty" yaml:"lineage,omitempty"`
}

// GroupSummary describes a group of assemblies that share a version.
type GroupSummary struct {
	Version    string             `json:"version" yaml:"version"`
	Type       assembly.TypeLabel `json:"type,omitempty" yaml:"type,omitempty"`
	Uniform    bool               `json:"uniform" yaml:"uniform"`
	Accessions []string           `json:"accessions" yaml:"accessions"`
}

// Aggregate is the result of processing one BioProject.
type Aggregate struct {
	// ID is a UUID v5 generated from the BioProject accession.
	ID string `json:"id" yaml:"id"`

	Bioproject string   `json:"bioproject" yaml:"bioproject"`
	Note       string   `json:"note" yaml:"note"`
	Title      string   `json:"study_title" yaml:"study_title"`
	TaxID      string   `json:"taxid" yaml:"taxid"`
	Children   []string `json:"child_accessions" yaml:"child_accessions"`
	Taxonomy   Taxonomy `json:"taxonomy" yaml:"taxonomy"`

	// GBIF data, empty if the species was not found.
	Authority    string `json:"taxonomic_authority" yaml:"taxonomic_authority"`
	CommonName   string `json:"common_name" yaml:"common_name"`
	GBIFURL      string `json:"gbif_url" yaml:"gbif_url"`
	GBIFUsageKey int    `json:"gbif_usage_key,omitempty" yaml:"gbif_usage_key,omitempty"`

	// Groups summarize how assemblies were grouped by version.
	Groups []GroupSummary `json:"groups" yaml:"groups"`

	// Assemblies are normalized assemblies, taken from groups in pairs.
	Assemblies []assembly.Record `json:"assemblies" yaml:"assemblies"`

	// Unpaired are names of assemblies left without a pair.
	Unpaired []string `json:"unpaired,omitempty" yaml:"unpaired,omitempty"`
}

func taxonomy(ranks map[string]string, lineage string) Taxonomy {
	return Taxonomy{
		Kingdom: ranks["kingdom"],
		Phylum:  ranks["phylum"],
		Class:   ranks["class"],
		Order:   ranks["order"],
		Family:  ranks["family"],
		Genus:   ranks["genus"],
		Species: ranks["species"],
		Lineage: lineage,
	}
}
