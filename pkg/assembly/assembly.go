// Package assembly classifies genome assemblies of a BioProject and
// normalizes their statistics.
//
// Records move through typed stages, each produced by a pure function:
//
//	Raw -> Labeled (Classify, Labels.Apply)
//	    -> Group   (GroupByVersion)
//	    -> Record  (Normalize)
//
// None of the stages keeps state between calls.
package assembly

// TypeLabel is the structural type of an assembly inferred from its name.
type TypeLabel string

const (
	// MultiplePrimaries marks a name that covers both haplotypes
	// ("sp1 hap1.1 / hap2.1").
	MultiplePrimaries TypeLabel = "multiple_primaries"
	// HapAsm marks one haplotype of a diploid assembly ("sp1 hap1.1").
	HapAsm TypeLabel = "hap_asm"
	// PrimAlt marks a primary or an alternate haplotype assembly
	// ("sp1.1", "sp1.1 alternate haplotype").
	PrimAlt TypeLabel = "prim_alt"
	// Unknown marks a name that matches none of the known patterns.
	Unknown TypeLabel = "unknown"
)

// Raw is an assembly as returned by an assembly search.
type Raw struct {
	// Accession of the assembly (GCA_000000000.1).
	Accession string `json:"accession" yaml:"accession"`

	// Name of the assembly. It often contains haplotype and version
	// tokens ("ilKreTrap1.hap1.1").
	Name string `json:"assembly_name" yaml:"assembly_name"`

	// SetAccession is the accession of the assembly set.
	SetAccession string `json:"assembly_set_accession" yaml:"assembly_set_accession"`

	// TaxID is the NCBI taxon ID of the assembled organism.
	TaxID string `json:"tax_id" yaml:"tax_id"`
}

// WithRevision returns a copy of the assembly updated to its latest
// revision. Empty arguments keep the current values.
func (r Raw) WithRevision(setAccession, name string) Raw {
	if setAccession != "" {
		r.SetAccession = setAccession
	}
	if name != "" {
		r.Name = name
	}
	return r
}

// Labeled is an assembly with its structural type.
type Labeled struct {
	Raw  `yaml:",inline"`
	Type TypeLabel `json:"assembly_type" yaml:"assembly_type"`
}
