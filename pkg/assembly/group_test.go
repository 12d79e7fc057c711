package assembly_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkore/pkg/assembly"
	"github.com/gnames/gnkore/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawAssemblies(names ...string) []assembly.Raw {
	res := make([]assembly.Raw, len(names))
	for i, v := range names {
		res[i] = assembly.Raw{Accession: "GCA_" + v, Name: v, TaxID: "1"}
	}
	return res
}

func group(t *testing.T, names ...string) []assembly.Group {
	raws := rawAssemblies(names...)
	recs := assembly.Classify(raws).Apply(raws)
	res, err := assembly.GroupByVersion(recs)
	require.NoError(t, err)
	return res
}

// TestGroupByVersion_HapAsm verifies that haplotype assemblies collapse
// into one "1.0" group, even without version tokens.
func TestGroupByVersion_HapAsm(t *testing.T) {
	res := group(t, "sp1 hap1.1", "sp1 hap2.1", "sp hap1")
	require.Len(t, res, 1)
	assert.Equal(t, assembly.DefaultVersion, res[0].Version)
	assert.Len(t, res[0].Members, 3)
	assert.True(t, res[0].Uniform)
	assert.Equal(t, assembly.HapAsm, res[0].Type)
}

func TestGroupByVersion(t *testing.T) {
	res := group(t,
		"sp1.1", "sp1.1 alternate haplotype",
		"sp2.3 hap1", "sp2.3", "sp1.1 draft",
	)
	require.Len(t, res, 2)

	assert.Equal(t, "1.1", res[0].Version)
	require.Len(t, res[0].Members, 3)
	assert.Equal(t, "sp1.1", res[0].Members[0].Name)
	assert.Equal(t, "sp1.1 alternate haplotype", res[0].Members[1].Name)
	assert.Equal(t, "sp1.1 draft", res[0].Members[2].Name)
	assert.False(t, res[0].Uniform)
	assert.Empty(t, res[0].Type)

	assert.Equal(t, "2.3", res[1].Version)
	assert.Len(t, res[1].Members, 2)
	assert.False(t, res[1].Uniform)
}

func TestGroupByVersion_Idempotent(t *testing.T) {
	names := []string{"sp1.1", "sp1.1 alternate haplotype", "sp1.2", "sp1.2 alt x"}
	res1 := group(t, names...)
	res2 := group(t, names...)
	assert.Equal(t, res1, res2)
}

func TestGroupByVersion_MissingVersion(t *testing.T) {
	raws := rawAssemblies("sp1.1", "sp draft")
	recs := assembly.Classify(raws).Apply(raws)
	res, err := assembly.GroupByVersion(recs)
	require.Error(t, err)
	assert.Nil(t, res)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.MissingVersionTokenError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, assembly.ErrMissingVersion)
}

func TestGroupByVersion_Empty(t *testing.T) {
	res, err := assembly.GroupByVersion(nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestPairs(t *testing.T) {
	tests := []struct {
		msg      string
		names    []string
		pairs    int
		unpaired int
	}{
		{"empty", nil, 0, 0},
		{"one", []string{"sp1.1"}, 0, 1},
		{"two", []string{"sp1.1", "sp1.1 alternate haplotype"}, 1, 0},
		{"three", []string{"a1.1", "b1.1", "c1.1"}, 1, 1},
		{"four", []string{"a1.1", "b1.1", "c1.1", "d1.1"}, 2, 0},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			raws := rawAssemblies(v.names...)
			g := assembly.Group{Members: assembly.Classify(raws).Apply(raws)}
			pairs, rest := g.Pairs()
			assert.Len(t, pairs, v.pairs)
			assert.Len(t, rest, v.unpaired)
			if v.pairs > 0 {
				assert.Equal(t, v.names[0], pairs[0][0].Name)
				assert.Equal(t, v.names[1], pairs[0][1].Name)
			}
			if v.unpaired > 0 {
				assert.Equal(t, v.names[len(v.names)-1], rest[0].Name)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	res, ok := assembly.Version("ilKreTrap1.hap1.1")
	assert.True(t, ok)
	assert.Equal(t, "1.1", res)

	_, ok = assembly.Version("sp draft")
	assert.False(t, ok)
}
