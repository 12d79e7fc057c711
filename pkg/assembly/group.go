package assembly

import "regexp"

// DefaultVersion is the key of the single group built when every assembly
// is a haplotype assembly.
const DefaultVersion = "1.0"

var versionRe = regexp.MustCompile(`\d+\.\d+`)

// Group holds assemblies that share a version.
type Group struct {
	// Version is the key of the group, such as "1.0" or "2.1".
	Version string `json:"version" yaml:"version"`

	// Members are the assemblies of the group in input order.
	Members []Labeled `json:"members" yaml:"members"`

	// Uniform is true when all members have the same type.
	Uniform bool `json:"uniform" yaml:"uniform"`

	// Type is the common type of members, empty if they differ.
	Type TypeLabel `json:"type,omitempty" yaml:"type,omitempty"`
}

// Pair is two related assemblies: two haplotypes, or a primary and its
// alternate.
type Pair [2]Labeled

// Pairs splits members into consecutive pairs. A member left without
// a partner is returned separately.
func (g Group) Pairs() ([]Pair, []Labeled) {
	var res []Pair
	var i int
	for ; i+1 < len(g.Members); i += 2 {
		res = append(res, Pair{g.Members[i], g.Members[i+1]})
	}
	return res, g.Members[i:]
}

// Version extracts the first "<number>.<number>" token from an assembly
// name.
func Version(name string) (string, bool) {
	res := versionRe.FindString(name)
	return res, res != ""
}

// GroupByVersion groups labeled assemblies by version.
//
// If every assembly is a haplotype assembly, they all share one group
// keyed "1.0". Otherwise the version comes from the assembly name, and
// a name without a version is an error. Groups keep the order in which
// their versions were first seen.
func GroupByVersion(records []Labeled) ([]Group, error) {
	if len(records) == 0 {
		return nil, nil
	}

	var res []Group
	idx := make(map[string]int)
	add := func(key string, rec Labeled) {
		i, ok := idx[key]
		if !ok {
			i = len(res)
			idx[key] = i
			res = append(res, Group{Version: key})
		}
		res[i].Members = append(res[i].Members, rec)
	}

	lbl, uniform := Uniform(records)
	for _, v := range records {
		if uniform && lbl == HapAsm {
			add(DefaultVersion, v)
			continue
		}

		key, ok := Version(v.Name)
		if !ok {
			return nil, MissingVersionTokenError(v.Name)
		}
		add(key, v)
	}

	for i := range res {
		g := &res[i]
		g.Type, g.Uniform = Uniform(g.Members)
	}
	return res, nil
}
