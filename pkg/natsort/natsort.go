// Package natsort orders chromosome and molecule labels the way they appear
// in genome reports: numbered molecules first, then sex chromosomes,
// mitochondria and plastids, then everything else.
package natsort

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
)

// special molecules follow all numbered ones in this order.
var special = map[string]int{
	"X":    10000,
	"Y":    10001,
	"W":    10002,
	"Z":    10003,
	"MT":   10004,
	"Pltd": 10005,
}

var numRe = regexp.MustCompile(`^(\d+)([A-Za-z]*)`)

// Key is a sort key of a molecule label.
type Key struct {
	// Rank is the number of a molecule, or a fixed rank of a special one.
	Rank int
	// Suffix contains letters that follow the number ("B" in "12B").
	Suffix string
	// Unmatched is true for labels that are neither special nor numbered.
	Unmatched bool
	// Label is the original label.
	Label string
}

// KeyOf computes the sort key of a molecule label.
func KeyOf(label string) Key {
	if rank, ok := special[label]; ok {
		return Key{Rank: rank, Suffix: label, Label: label}
	}

	if m := numRe.FindStringSubmatch(label); m != nil {
		rank, err := strconv.Atoi(m[1])
		if err == nil {
			return Key{Rank: rank, Suffix: m[2], Label: label}
		}
	}
	return Key{Unmatched: true, Suffix: label, Label: label}
}

// Compare orders two keys. Unmatched keys go last, keys that are
// otherwise equal are ordered by their labels.
func (k Key) Compare(o Key) int {
	if k.Unmatched != o.Unmatched {
		if k.Unmatched {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(k.Rank, o.Rank); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Suffix, o.Suffix); c != 0 {
		return c
	}
	return cmp.Compare(k.Label, o.Label)
}

// Compare orders two molecule labels.
func Compare(a, b string) int {
	return KeyOf(a).Compare(KeyOf(b))
}

// Sort sorts molecule labels in place.
func Sort(labels []string) {
	slices.SortStableFunc(labels, Compare)
}
