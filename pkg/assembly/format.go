package assembly

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// NA marks values that are unknown.
	NA = "NA"

	// NoneComputed is shown instead of sex chromosomes of haplotype
	// assemblies and of assemblies without a chromosome table.
	NoneComputed = "none computed"

	// NoneFound is shown when there are no assembled molecules.
	NoneFound = "none"
)

// Display keeps the values of a Record formatted for human-readable
// reports. Unknown values are shown as "NA".
type Display struct {
	ToLID               string `json:"tolid" yaml:"tolid"`
	Level               string `json:"assembly_level" yaml:"assembly_level"`
	WGSProjectAccession string `json:"wgs_project_accession" yaml:"wgs_project_accession"`
	ContigCount         string `json:"contig_count" yaml:"contig_count"`
	ScaffoldCount       string `json:"scaffold_count" yaml:"scaffold_count"`
	ChromosomeCount     string `json:"chromosome_count" yaml:"chromosome_count"`
	ContigN50Mb         string `json:"contig_n50_mb" yaml:"contig_n50_mb"`
	ScaffoldN50Mb       string `json:"scaffold_n50_mb" yaml:"scaffold_n50_mb"`
	GenomeLength        string `json:"genome_length_unrounded" yaml:"genome_length_unrounded"`
	GenomeLengthMb      string `json:"genome_length_mb" yaml:"genome_length_mb"`
	GenomeLengthGb      string `json:"genome_length_gb" yaml:"genome_length_gb"`
	Coverage            string `json:"coverage" yaml:"coverage"`
	SexChromosomes      string `json:"sex_chromosomes" yaml:"sex_chromosomes"`
	LongestScaffoldMb   string `json:"longest_scaffold_mb" yaml:"longest_scaffold_mb"`
}

func newDisplay(r Record) Display {
	res := Display{
		ToLID:               orNA(r.ToLID),
		Level:               orNA(r.Level),
		WGSProjectAccession: orNA(r.WGSProjectAccession),
		ContigCount:         countString(r.ContigCount),
		ScaffoldCount:       countString(r.ScaffoldCount),
		ChromosomeCount:     countString(r.ChromosomeCount),
		ContigN50Mb:         optional(r.ContigN50, Megabases),
		ScaffoldN50Mb:       optional(r.ScaffoldN50, Megabases),
		GenomeLength:        optional(r.TotalLength, humanize.Comma),
		GenomeLengthMb:      optional(r.TotalLength, Megabases),
		GenomeLengthGb:      optional(r.TotalLength, Gigabases),
		Coverage:            orNA(r.Coverage),
		SexChromosomes:      NoneComputed,
		LongestScaffoldMb:   NoneFound,
	}
	if r.SexChromosomesComputed {
		res.SexChromosomes = FormatSexChromosomes(r.SexChromosomes)
	}
	if r.LongestScaffold != nil {
		res.LongestScaffoldMb = Megabases(*r.LongestScaffold)
	}
	return res
}

// Megabases converts a number of base pairs into megabases with exactly
// two decimals. Halves are rounded away from zero.
func Megabases(bp int64) string {
	return scaled(bp, 1e4)
}

// Gigabases converts a number of base pairs into gigabases with exactly
// two decimals. Halves are rounded away from zero.
func Gigabases(bp int64) string {
	return scaled(bp, 1e7)
}

// scaled divides bp by div to get hundredths of the target unit.
// Integer arithmetic keeps results independent of float formatting.
func scaled(bp, div int64) string {
	sign := ""
	if bp < 0 {
		sign = "-"
		bp = -bp
	}
	hundredths := (bp + div/2) / div
	if hundredths == 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%d.%02d", sign, hundredths/100, hundredths%100)
}

// FormatSexChromosomes returns sex chromosomes as an English list:
// "X", "X and Y", "X, Y, and W". An empty list gives "none".
func FormatSexChromosomes(chrs []string) string {
	switch len(chrs) {
	case 0:
		return NoneFound
	case 1:
		return chrs[0]
	case 2:
		return chrs[0] + " and " + chrs[1]
	default:
		last := len(chrs) - 1
		return strings.Join(chrs[:last], ", ") + ", and " + chrs[last]
	}
}

func countString(i *int) string {
	if i == nil {
		return NA
	}
	return humanize.Comma(int64(*i))
}

func optional(i *int64, f func(int64) string) string {
	if i == nil {
		return NA
	}
	return f(*i)
}

func orNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}
