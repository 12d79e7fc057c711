package assembly

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/gnkore/pkg/natsort"
	"github.com/gnames/gnuuid"
)

// LevelChromosome is the assembly level of chromosome-scale assemblies.
const LevelChromosome = "chromosome"

// sexChromosomes are molecule names treated as sex chromosomes.
var sexChromosomes = map[string]struct{}{
	"X": {}, "Y": {}, "Z": {}, "W": {}, "X1": {}, "X2": {}, "B": {},
}

// ChromosomeEntry is a row of a chromosome table.
type ChromosomeEntry struct {
	// Accession is the INSDC accession of the molecule.
	Accession string `json:"insdc_accession" yaml:"insdc_accession"`

	// Molecule is the name of a chromosome or organelle ("1", "X", "MT").
	Molecule string `json:"molecule" yaml:"molecule"`

	// Length of the molecule in base pairs.
	Length int64 `json:"length" yaml:"length"`

	// LengthMb is the length in megabases with 2 decimals.
	LengthMb string `json:"length_mb" yaml:"length_mb"`

	// GCPercent is the GC content, nil if not reported.
	GCPercent *float64 `json:"gc_percent" yaml:"gc_percent"`
}

// Record is the normalized description of an assembly.
type Record struct {
	// ID is a UUID v5 generated from the assembly accession.
	ID string `json:"id" yaml:"id"`

	TaxID        string    `json:"taxid" yaml:"taxid"`
	Type         TypeLabel `json:"assembly_type" yaml:"assembly_type"`
	Name         string    `json:"hap_name" yaml:"hap_name"`
	Accession    string    `json:"hap_accession" yaml:"hap_accession"`
	SetAccession string    `json:"hap_set_accession" yaml:"hap_set_accession"`

	// Fields below are empty or nil when the value is unknown.
	ToLID               string `json:"tolid,omitempty" yaml:"tolid,omitempty"`
	Level               string `json:"assembly_level,omitempty" yaml:"assembly_level,omitempty"`
	WGSProjectAccession string `json:"wgs_project_accession,omitempty" yaml:"wgs_project_accession,omitempty"`
	TotalLength         *int64 `json:"raw_total_length" yaml:"raw_total_length"`
	ContigCount         *int   `json:"contig_count" yaml:"contig_count"`
	ScaffoldCount       *int   `json:"scaffold_count" yaml:"scaffold_count"`
	ContigN50           *int64 `json:"contig_n50" yaml:"contig_n50"`
	ScaffoldN50         *int64 `json:"scaffold_n50" yaml:"scaffold_n50"`
	ChromosomeCount     *int   `json:"chromosome_count" yaml:"chromosome_count"`
	Coverage            string `json:"coverage,omitempty" yaml:"coverage,omitempty"`

	// Chromosomes is nil when a table is not built for the assembly type.
	Chromosomes []ChromosomeEntry `json:"chromosome_table,omitempty" yaml:"chromosome_table,omitempty"`

	// SexChromosomesComputed is false for haplotype assemblies and for
	// assemblies without a chromosome table.
	SexChromosomesComputed bool     `json:"sex_chromosomes_computed" yaml:"sex_chromosomes_computed"`
	SexChromosomes         []string `json:"sex_chromosomes,omitempty" yaml:"sex_chromosomes,omitempty"`

	// LongestScaffold is the length of the longest assembled molecule,
	// nil if there are none.
	LongestScaffold *int64 `json:"longest_scaffold" yaml:"longest_scaffold"`

	// Display contains values formatted for reports.
	Display Display `json:"display" yaml:"display"`
}

// Normalize builds the normalized record of an assembly from the data
// fetched about it. Missing data is not an error, the corresponding
// fields stay empty.
func Normalize(asm Labeled, taxID string, enr Enrichment) Record {
	res := Record{
		ID:           gnuuid.New(idSource(asm.Raw)).String(),
		TaxID:        taxID,
		Type:         asm.Type,
		Name:         asm.Name,
		Accession:    asm.Accession,
		SetAccession: asm.SetAccession,
	}

	if rep := enr.Report; rep != nil {
		res.ToLID = rep.ToLID
		res.Level = strings.ToLower(strings.TrimSpace(rep.Level))
		res.WGSProjectAccession = rep.WGSProjectAccession
		res.TotalLength = rep.TotalLength
		res.ContigCount = rep.ContigCount
		res.ScaffoldCount = rep.ScaffoldCount
		res.ContigN50 = rep.ContigN50
		res.ScaffoldN50 = rep.ScaffoldN50
		res.ChromosomeCount = rep.ChromosomeCount
		res.Coverage = rep.Coverage
	} else {
		slog.Warn("No dataset report for assembly, using defaults",
			"accession", asm.Accession, "assembly_name", asm.Name)
	}

	molecules := assembledMolecules(enr.Sequences)
	if len(enr.Sequences) == 0 {
		slog.Warn("No sequence report for assembly",
			"accession", asm.Accession, "assembly_name", asm.Name)
	}

	if hasChromosomeTable(asm.Type, res.Level) {
		res.Chromosomes = chromosomeTable(molecules)
		if asm.Type != HapAsm {
			res.SexChromosomesComputed = true
			res.SexChromosomes = SexChromosomes(res.Chromosomes)
		}
	}

	res.LongestScaffold = longest(molecules)
	res.Display = newDisplay(res)
	return res
}

func idSource(r Raw) string {
	if r.Accession != "" {
		return r.Accession
	}
	return r.Name
}

// hasChromosomeTable decides if a chromosome table is built for an
// assembly.
func hasChromosomeTable(lbl TypeLabel, level string) bool {
	switch lbl {
	case HapAsm:
		return level == LevelChromosome
	case PrimAlt:
		return true
	default:
		return false
	}
}

func assembledMolecules(rows []SequenceRow) []SequenceRow {
	var res []SequenceRow
	for _, v := range rows {
		if v.Role == RoleAssembledMolecule {
			res = append(res, v)
		}
	}
	return res
}

func chromosomeTable(rows []SequenceRow) []ChromosomeEntry {
	res := make([]ChromosomeEntry, 0, len(rows))
	for _, v := range rows {
		res = append(res, ChromosomeEntry{
			Accession: v.GenBankAccession,
			Molecule:  v.Molecule,
			Length:    v.Length,
			LengthMb:  Megabases(v.Length),
			GCPercent: v.GCPercent,
		})
	}
	slices.SortStableFunc(res, func(a, b ChromosomeEntry) int {
		return natsort.Compare(a.Molecule, b.Molecule)
	})
	return res
}

// SexChromosomes finds sex chromosomes in a chromosome table. The result
// is deduplicated and naturally ordered.
func SexChromosomes(table []ChromosomeEntry) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, v := range table {
		mol := strings.ToUpper(strings.TrimSpace(v.Molecule))
		if _, ok := sexChromosomes[mol]; !ok {
			continue
		}
		if _, ok := seen[mol]; ok {
			continue
		}
		seen[mol] = struct{}{}
		res = append(res, mol)
	}
	natsort.Sort(res)
	return res
}

func longest(rows []SequenceRow) *int64 {
	if len(rows) == 0 {
		return nil
	}
	var res int64
	for _, v := range rows {
		res = max(res, v.Length)
	}
	return &res
}
