// Package remote describes data sources the aggregation pipeline depends
// on. Implementations that talk to ENA, NCBI and GBIF live in
// internal/ioremote, tests use in-memory fakes.
package remote

import (
	"context"

	"github.com/gnames/gnkore/pkg/assembly"
)

// BioprojectRecord is a BioProject as described by ENA.
type BioprojectRecord struct {
	// Accession of the BioProject.
	Accession string

	// Title of the study, empty if not given.
	Title string

	// TaxID of the studied organism, empty if not given.
	TaxID string

	// Children are accessions of child projects.
	Children []string
}

// Lineage is a taxonomic classification of a taxon.
type Lineage struct {
	// Ranks maps rank names (class, family, order, phylum, species,
	// genus, kingdom) to scientific names.
	Ranks map[string]string

	// Lineage is a "; "-separated classification path from the root
	// to the parent of the taxon.
	Lineage string
}

// SpeciesMatch is a species found in GBIF. An empty UsageKey means
// there was no match.
type SpeciesMatch struct {
	UsageKey   int
	Authority  string
	CommonName string
	URL        string
}

// Revision is the latest revision of an assembly.
type Revision struct {
	SetAccession string
	Name         string
}

// BioprojectSource fetches BioProject records.
type BioprojectSource interface {
	Bioproject(ctx context.Context, acc string) (BioprojectRecord, error)
}

// TaxonomySource fetches taxonomic lineages by taxon ID.
type TaxonomySource interface {
	Taxonomy(ctx context.Context, taxID string) (Lineage, error)
}

// SpeciesSource matches species names to a taxonomic backbone.
type SpeciesSource interface {
	Species(ctx context.Context, genus, epithet string) (SpeciesMatch, error)
}

// AssemblySource finds assemblies that belong to a BioProject.
type AssemblySource interface {
	Assemblies(ctx context.Context, acc string) ([]assembly.Raw, error)
}

// RevisionSource finds the latest revision of an assembly. If there are
// no revisions, the input accession is returned with an empty name.
type RevisionSource interface {
	LatestRevision(ctx context.Context, setAcc string) (Revision, error)
}

// ReportSource fetches structural statistics of an assembly. It returns
// nil without error if there is no report.
type ReportSource interface {
	DatasetReport(ctx context.Context, acc string) (*assembly.DatasetReport, error)
}

// SequenceSource fetches sequences of an assembly.
type SequenceSource interface {
	SequenceReport(ctx context.Context, acc string) ([]assembly.SequenceRow, error)
}

// Sources groups all data sources.
type Sources struct {
	Bioprojects BioprojectSource
	Taxonomy    TaxonomySource
	Species     SpeciesSource
	Assemblies  AssemblySource
	Revisions   RevisionSource
	Reports     ReportSource
	Sequences   SequenceSource
}
