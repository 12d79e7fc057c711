package assembly

import (
	"log/slog"
	"strings"
)

// Labels maps assembly names to their types.
type Labels map[string]TypeLabel

// Label determines the type of an assembly from its name.
// The first matching rule wins.
func Label(name string) TypeLabel {
	hap1 := strings.Contains(name, "hap1")
	hap2 := strings.Contains(name, "hap2")
	switch {
	case hap1 && hap2:
		return MultiplePrimaries
	case hap1 || hap2:
		return HapAsm
	case strings.Contains(name, "alternate haplotype"):
		return PrimAlt
	case len(strings.Fields(name)) < 2:
		return PrimAlt
	default:
		return Unknown
	}
}

// Classify labels every assembly by its name. Assemblies with identical
// names get identical labels.
func Classify(records []Raw) Labels {
	res := make(Labels, len(records))
	for _, v := range records {
		if _, ok := res[v.Name]; ok {
			continue
		}
		lbl := Label(v.Name)
		if lbl == Unknown {
			slog.Warn("Unknown assembly type",
				"assembly_name", v.Name, "accession", v.Accession)
		}
		res[v.Name] = lbl
	}
	return res
}

// Apply attaches labels to assemblies, keeping their order.
func (l Labels) Apply(records []Raw) []Labeled {
	res := make([]Labeled, len(records))
	for i, v := range records {
		lbl, ok := l[v.Name]
		if !ok {
			lbl = Label(v.Name)
		}
		res[i] = Labeled{Raw: v, Type: lbl}
	}
	return res
}

// Uniform returns the common type of assemblies, and false if they have
// different types or there are none.
func Uniform(records []Labeled) (TypeLabel, bool) {
	if len(records) == 0 {
		return "", false
	}
	lbl := records[0].Type
	for _, v := range records[1:] {
		if v.Type != lbl {
			return "", false
		}
	}
	return lbl, true
}
