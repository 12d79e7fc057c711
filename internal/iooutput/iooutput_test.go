package iooutput_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/internal/iooutput"
	"github.com/gnames/gnkore/pkg/assembly"
	"github.com/gnames/gnkore/pkg/bioproject"
	"github.com/gnames/gnkore/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func aggregates() []bioproject.Aggregate {
	total := int64(1_234_567_890)
	gc := 38.5
	rec := assembly.Normalize(
		assembly.Labeled{
			Raw: assembly.Raw{
				Accession:    "GCA_1.1",
				Name:         "sp1.1",
				SetAccession: "GCA_1.1",
				TaxID:        "12345",
			},
			Type: assembly.PrimAlt,
		},
		"12345",
		assembly.Enrichment{
			Report: &assembly.DatasetReport{Level: "Chromosome", TotalLength: &total},
			Sequences: []assembly.SequenceRow{
				{
					Role:             assembly.RoleAssembledMolecule,
					GenBankAccession: "OX1.1",
					Molecule:         "X",
					Length:           2_500_000,
					GCPercent:        &gc,
				},
			},
		},
	)
	alt := assembly.Normalize(
		assembly.Labeled{
			Raw:  assembly.Raw{Accession: "GCA_2.1", Name: "sp1.1 alternate haplotype"},
			Type: assembly.PrimAlt,
		},
		"12345",
		assembly.Enrichment{},
	)

	return []bioproject.Aggregate{{
		ID:         "id",
		Bioproject: "PRJNA000001",
		Note:       "my note, with comma",
		Title:      "Kretania trappi genome project",
		TaxID:      "12345",
		Taxonomy:   bioproject.Taxonomy{Species: "Kretania trappi"},
		Groups: []bioproject.GroupSummary{{
			Version:    "1.1",
			Type:       assembly.PrimAlt,
			Uniform:    true,
			Accessions: []string{"GCA_1.1", "GCA_2.1"},
		}},
		Assemblies: []assembly.Record{rec, alt},
	}}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := iooutput.Write(&buf, aggregates(), "text")
	require.NoError(t, err)

	res := buf.String()
	assert.True(t, strings.HasPrefix(res, "BioProject PRJNA000001\n"))
	assert.Contains(t, res, "  note: my note, with comma\n")
	assert.Contains(t, res, "  common_name: NA\n")
	assert.Contains(t, res, "  assemblies: 2\n")
	assert.Contains(t, res, "    sp1.1 (GCA_1.1)\n")
	assert.Contains(t, res, "      genome_length_gb: 1.23\n")
	assert.Contains(t, res, "      sex_chromosomes: X\n")
	assert.Contains(t, res, "        OX1.1\tX\t2.50\t38.5\n")
	assert.Contains(t, res, "      longest_scaffold_mb: none\n")
}

func TestWriteJSON(t *testing.T) {
	for _, format := range []string{"compact", "pretty"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			err := iooutput.Write(&buf, aggregates(), format)
			require.NoError(t, err)

			var res []bioproject.Aggregate
			require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
			require.Len(t, res, 1)
			assert.Equal(t, "PRJNA000001", res[0].Bioproject)
			require.Len(t, res[0].Assemblies, 2)
			assert.Equal(t, "1.23", res[0].Assemblies[0].Display.GenomeLengthGb)
			assert.Equal(t, assembly.PrimAlt, res[0].Assemblies[1].Type)

			lines := strings.Count(strings.TrimSpace(buf.String()), "\n")
			if format == "compact" {
				assert.Zero(t, lines)
			} else {
				assert.Positive(t, lines)
			}
		})
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, iooutput.Write(&buf, nil, "compact"))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	err := iooutput.Write(&buf, aggregates(), "yaml")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bioproject: PRJNA000001")
	assert.Contains(t, buf.String(), "hap_accession: GCA_1.1")

	var res []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "my note, with comma", res[0]["note"])
}

func TestWriteRows(t *testing.T) {
	tests := []struct {
		format, sep string
	}{
		{"csv", ","},
		{"tsv", "\t"},
	}

	for _, v := range tests {
		t.Run(v.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := iooutput.Write(&buf, aggregates(), v.format)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, 3)
			assert.True(t, strings.HasPrefix(lines[0], "bioproject"+v.sep+"note"))
			assert.Contains(t, lines[1], "PRJNA000001")
			assert.Contains(t, lines[1], v.sep+"1.1"+v.sep+"prim_alt"+v.sep)
			assert.Contains(t, lines[2], "sp1.1 alternate haplotype")
			assert.Contains(t, lines[2], v.sep+"NA"+v.sep)
		})
	}
}

func TestWrite_BadFormat(t *testing.T) {
	var buf bytes.Buffer
	err := iooutput.Write(&buf, aggregates(), "docx")
	require.Error(t, err)
	assert.Zero(t, buf.Len())

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.OutputFormatError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, iooutput.ErrFormat)
}
