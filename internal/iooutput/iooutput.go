// Package iooutput writes aggregated BioProjects as text, JSON, YAML or
// CSV/TSV rows.
package iooutput

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnkore/pkg/assembly"
	"github.com/gnames/gnkore/pkg/bioproject"
	"gopkg.in/yaml.v3"
)

// header contains columns of CSV and TSV outputs. Every row describes
// one assembly.
var header = []string{
	"bioproject", "note", "taxid", "species", "version", "assembly_type",
	"hap_name", "hap_accession", "hap_set_accession", "tolid",
	"assembly_level", "wgs_project_accession", "contig_count",
	"scaffold_count", "chromosome_count", "contig_n50_mb",
	"scaffold_n50_mb", "genome_length_mb", "genome_length_gb", "coverage",
	"sex_chromosomes", "longest_scaffold_mb",
}

// Write writes aggregates to w in one of the formats: "text",
// "compact", "pretty", "yaml", "csv", "tsv".
func Write(w io.Writer, aggs []bioproject.Aggregate, format string) error {
	var err error
	switch format {
	case "text":
		err = writeText(w, aggs)
	case "compact", "pretty":
		err = writeJSON(w, aggs, format == "pretty")
	case "yaml":
		err = writeYAML(w, aggs)
	case "csv":
		err = writeRows(w, aggs, ',')
	case "tsv":
		err = writeRows(w, aggs, '\t')
	default:
		return OutputFormatError(format)
	}

	if err != nil {
		return OutputWriteError(format, err)
	}
	return nil
}

func writeJSON(w io.Writer, aggs []bioproject.Aggregate, pretty bool) error {
	if aggs == nil {
		aggs = []bioproject.Aggregate{}
	}
	enc := gnfmt.GNjson{Pretty: pretty}
	bs, err := enc.Encode(aggs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bs))
	return err
}

func writeYAML(w io.Writer, aggs []bioproject.Aggregate) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(aggs); err != nil {
		return err
	}
	return enc.Close()
}

func writeRows(w io.Writer, aggs []bioproject.Aggregate, sep rune) error {
	if _, err := io.WriteString(w, row(header, sep)); err != nil {
		return err
	}
	for _, agg := range aggs {
		versions := versionIndex(agg)
		for _, v := range agg.Assemblies {
			d := v.Display
			rec := []string{
				agg.Bioproject, agg.Note, v.TaxID, agg.Taxonomy.Species,
				versions[v.Accession], string(v.Type), v.Name, v.Accession,
				v.SetAccession, d.ToLID, d.Level, d.WGSProjectAccession,
				d.ContigCount, d.ScaffoldCount, d.ChromosomeCount,
				d.ContigN50Mb, d.ScaffoldN50Mb, d.GenomeLengthMb,
				d.GenomeLengthGb, d.Coverage, d.SexChromosomes,
				d.LongestScaffoldMb,
			}
			if _, err := io.WriteString(w, row(rec, sep)); err != nil {
				return err
			}
		}
	}
	return nil
}

func row(rec []string, sep rune) string {
	return strings.TrimRight(gnfmt.ToCSV(rec, sep), "\r\n") + "\n"
}

// versionIndex maps accessions of assemblies to versions of their groups.
func versionIndex(agg bioproject.Aggregate) map[string]string {
	res := make(map[string]string)
	for _, g := range agg.Groups {
		for _, acc := range g.Accessions {
			res[acc] = g.Version
		}
	}
	return res
}

func writeText(w io.Writer, aggs []bioproject.Aggregate) error {
	var sb strings.Builder
	for i, agg := range aggs {
		if i > 0 {
			sb.WriteString("\n")
		}
		textAggregate(&sb, agg)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func textAggregate(sb *strings.Builder, agg bioproject.Aggregate) {
	field := func(indent int, name, val string) {
		if val == "" {
			val = assembly.NA
		}
		fmt.Fprintf(sb, "%s%s: %s\n", strings.Repeat("  ", indent), name, val)
	}

	fmt.Fprintf(sb, "BioProject %s\n", agg.Bioproject)
	field(1, "note", agg.Note)
	field(1, "study_title", agg.Title)
	field(1, "taxid", agg.TaxID)
	field(1, "child_accessions", strings.Join(agg.Children, ", "))
	field(1, "phylum", agg.Taxonomy.Phylum)
	field(1, "class", agg.Taxonomy.Class)
	field(1, "order", agg.Taxonomy.Order)
	field(1, "family", agg.Taxonomy.Family)
	field(1, "species", agg.Taxonomy.Species)
	field(1, "lineage", agg.Taxonomy.Lineage)
	field(1, "taxonomic_authority", agg.Authority)
	field(1, "common_name", agg.CommonName)
	field(1, "gbif_url", agg.GBIFURL)

	fmt.Fprintf(sb, "  assemblies: %d\n", len(agg.Assemblies))
	for _, v := range agg.Assemblies {
		d := v.Display
		fmt.Fprintf(sb, "    %s (%s)\n", v.Name, v.Accession)
		field(3, "assembly_type", string(v.Type))
		field(3, "hap_set_accession", v.SetAccession)
		field(3, "tolid", d.ToLID)
		field(3, "assembly_level", d.Level)
		field(3, "wgs_project_accession", d.WGSProjectAccession)
		field(3, "genome_length_unrounded", d.GenomeLength)
		field(3, "genome_length_mb", d.GenomeLengthMb)
		field(3, "genome_length_gb", d.GenomeLengthGb)
		field(3, "contig_count", d.ContigCount)
		field(3, "contig_n50_mb", d.ContigN50Mb)
		field(3, "scaffold_count", d.ScaffoldCount)
		field(3, "scaffold_n50_mb", d.ScaffoldN50Mb)
		field(3, "chromosome_count", d.ChromosomeCount)
		field(3, "coverage", d.Coverage)
		field(3, "sex_chromosomes", d.SexChromosomes)
		field(3, "longest_scaffold_mb", d.LongestScaffoldMb)
		if len(v.Chromosomes) > 0 {
			fmt.Fprintf(sb, "      chromosome_table:\n")
			for _, c := range v.Chromosomes {
				gc := assembly.NA
				if c.GCPercent != nil {
					gc = fmt.Sprintf("%.1f", *c.GCPercent)
				}
				fmt.Fprintf(sb, "        %s\t%s\t%s\t%s\n",
					c.Accession, c.Molecule, c.LengthMb, gc)
			}
		}
	}

	if len(agg.Unpaired) > 0 {
		field(1, "unpaired", strings.Join(agg.Unpaired, ", "))
	}
}
