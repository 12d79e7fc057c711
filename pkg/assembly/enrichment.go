package assembly

// RoleAssembledMolecule is the role of a sequence that is a chromosome,
// an organelle or another assembled molecule.
const RoleAssembledMolecule = "assembled-molecule"

// DatasetReport contains structural statistics of an assembly.
// Nil pointers and empty strings mean the value was not reported.
type DatasetReport struct {
	Level               string
	TotalLength         *int64
	ContigCount         *int
	ContigN50           *int64
	ScaffoldCount       *int
	ScaffoldN50         *int64
	ChromosomeCount     *int
	Coverage            string
	ToLID               string
	WGSProjectAccession string
}

// SequenceRow describes one sequence of an assembly.
type SequenceRow struct {
	Role             string
	GenBankAccession string
	Molecule         string
	Length           int64
	GCPercent        *float64
}

// Enrichment is everything fetched about an assembly after it was found.
type Enrichment struct {
	// Report is nil if no dataset report was available.
	Report *DatasetReport

	// Sequences may be empty if no sequence report was available.
	Sequences []SequenceRow
}
