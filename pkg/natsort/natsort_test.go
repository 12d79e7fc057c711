package natsort_test

import (
	"slices"
	"testing"

	"github.com/gnames/gnkore/pkg/natsort"
	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	tests := []struct {
		msg      string
		in, want []string
	}{
		{
			msg:  "numbers and specials",
			in:   []string{"2", "1", "X", "10", "MT", "1A"},
			want: []string{"1", "1A", "2", "10", "X", "MT"},
		},
		{
			msg:  "special order",
			in:   []string{"Pltd", "MT", "Z", "W", "Y", "X"},
			want: []string{"X", "Y", "W", "Z", "MT", "Pltd"},
		},
		{
			msg:  "unmatched last",
			in:   []string{"unplaced", "X", "B", "3", "Un"},
			want: []string{"3", "X", "B", "Un", "unplaced"},
		},
		{
			msg:  "suffixes",
			in:   []string{"12B", "12", "12A", "2B"},
			want: []string{"2B", "12", "12A", "12B"},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := slices.Clone(v.in)
			natsort.Sort(res)
			assert.Equal(t, v.want, res)
		})
	}
}

func TestKeyOf(t *testing.T) {
	k := natsort.KeyOf("12B")
	assert.Equal(t, 12, k.Rank)
	assert.Equal(t, "B", k.Suffix)
	assert.False(t, k.Unmatched)

	k = natsort.KeyOf("MT")
	assert.Equal(t, 10004, k.Rank)

	k = natsort.KeyOf("X1")
	assert.True(t, k.Unmatched)
}

// TestCompare_Total verifies that only identical labels compare equal.
func TestCompare_Total(t *testing.T) {
	labels := []string{
		"1", "01", "1A", "1_random", "X", "X1", "MT", "Pltd", "B", "b", "",
	}
	for i, a := range labels {
		for j, b := range labels {
			c := natsort.Compare(a, b)
			if i == j {
				assert.Equal(t, 0, c, "%q vs itself", a)
				continue
			}
			assert.NotEqual(t, 0, c, "%q vs %q", a, b)
			assert.Equal(t, -c, natsort.Compare(b, a),
				"antisymmetry %q vs %q", a, b)
		}
	}
}
