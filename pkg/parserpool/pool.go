// Package parserpool provides a pool of gnparser instances for concurrent
// name parsing. It is used to split species names into genus and specific
// epithet before looking them up in GBIF.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// botanicalClades are lineage elements of organisms named under the
// botanical code.
var botanicalClades = []string{"Viridiplantae", "Fungi"}

// Pool provides a pool of gnparser instances for concurrent parsing.
// It maintains separate pools for botanical and zoological nomenclatural codes.
type Pool interface {
	// Parse parses a scientific name string using the specified nomenclatural code.
	// It retrieves a parser from the appropriate pool, parses the name, and returns
	// the parser to the pool. This method is safe for concurrent use.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Binomial splits a species name into genus and specific epithet.
	// It returns false if the name is not parseable or is not at least
	// a binomial.
	Binomial(nameString string, code nomcode.Code) (genus, epithet string, ok bool)

	// Close shuts down the parser pools and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
	poolSize     int
}

// NewPool creates a new parser pool with the specified number of workers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
// Total parsers created = 2 * poolSize (one pool per nomenclatural code).
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	botanicalCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	botanicalCh := gnparser.NewPool(botanicalCfg, poolSize)

	zoologicalCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))
	zoologicalCh := gnparser.NewPool(zoologicalCfg, poolSize)

	return &PoolImpl{
		botanicalCh:  botanicalCh,
		zoologicalCh: zoologicalCh,
		poolSize:     poolSize,
	}
}

// CodeForLineage picks the nomenclatural code for an organism from its
// taxonomic lineage. Plants and fungi use the botanical code, everything
// else is treated as zoological.
func CodeForLineage(lineage string) nomcode.Code {
	for _, v := range botanicalClades {
		if strings.Contains(lineage, v) {
			return nomcode.Botanical
		}
	}
	return nomcode.Zoological
}

// Parse parses a scientific name string using the specified nomenclatural code.
func (p *PoolImpl) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanicalCh
	case nomcode.Zoological:
		ch = p.zoologicalCh
	default:
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	// blocks if all parsers are busy
	parser := <-ch
	result := parser.ParseName(nameString)
	ch <- parser

	return result, nil
}

// Binomial splits a species name into genus and specific epithet.
// Infraspecific epithets are dropped.
func (p *PoolImpl) Binomial(
	nameString string,
	code nomcode.Code,
) (string, string, bool) {
	res, err := p.Parse(nameString, code)
	if err != nil || !res.Parsed || res.Canonical == nil ||
		res.Cardinality < 2 {
		return "", "", false
	}

	words := strings.Fields(res.Canonical.Simple)
	if len(words) < 2 {
		return "", "", false
	}
	return words[0], words[1], true
}

// Close shuts down both parser pools and releases resources.
func (p *PoolImpl) Close() {
	if p.botanicalCh != nil {
		close(p.botanicalCh)
		for range p.botanicalCh {
		}
	}

	if p.zoologicalCh != nil {
		close(p.zoologicalCh)
		for range p.zoologicalCh {
		}
	}
}
