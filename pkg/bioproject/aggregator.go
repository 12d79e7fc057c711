package bioproject

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gnames/gnkore/pkg/accession"
	"github.com/gnames/gnkore/pkg/assembly"
	"github.com/gnames/gnkore/pkg/config"
	"github.com/gnames/gnkore/pkg/parserpool"
	"github.com/gnames/gnkore/pkg/remote"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

// Aggregator collects data about BioProjects.
type Aggregator interface {
	// Process runs the whole pipeline for one BioProject. Failures to
	// get the BioProject or its taxonomy are returned as errors, other
	// missing data is logged and left empty.
	Process(ctx context.Context, in accession.Input) (Aggregate, error)

	// ProcessAll processes BioProjects concurrently and returns results
	// in input order. By default the first error stops the run. With
	// KeepGoing, failed BioProjects are skipped and their errors are
	// joined into the returned error.
	ProcessAll(ctx context.Context, ins []accession.Input) ([]Aggregate, error)
}

// Option configures an Aggregator.
type Option func(*aggregator)

// OptParser sets the parser used to split species names for GBIF.
// Without a parser GBIF is not queried.
func OptParser(p parserpool.Pool) Option {
	return func(a *aggregator) {
		a.parser = p
	}
}

// OptProgress sets a function called after each BioProject is
// processed. It is called concurrently when several jobs run.
func OptProgress(f func(acc string)) Option {
	return func(a *aggregator) {
		a.progress = f
	}
}

type aggregator struct {
	cfg      *config.Config
	src      remote.Sources
	parser   parserpool.Pool
	progress func(acc string)
}

// New creates an Aggregator.
func New(cfg *config.Config, src remote.Sources, opts ...Option) Aggregator {
	res := &aggregator{cfg: cfg, src: src}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

func (a *aggregator) ProcessAll(
	ctx context.Context,
	ins []accession.Input,
) ([]Aggregate, error) {
	aggs := make([]Aggregate, len(ins))
	done := make([]bool, len(ins))
	errs := make([]error, len(ins))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.cfg.JobsNumber, 1))

	for i, in := range ins {
		g.Go(func() error {
			agg, err := a.Process(gCtx, in)
			if a.progress != nil {
				a.progress(in.Accession)
			}
			if err != nil {
				if !a.cfg.Process.KeepGoing {
					return err
				}
				slog.Error("Skipping BioProject",
					"bioproject", in.Accession, "error", err)
				errs[i] = err
				return nil
			}
			aggs[i], done[i] = agg, true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]Aggregate, 0, len(ins))
	for i := range aggs {
		if done[i] {
			res = append(res, aggs[i])
		}
	}
	return res, errors.Join(errs...)
}

func (a *aggregator) Process(
	ctx context.Context,
	in accession.Input,
) (Aggregate, error) {
	acc := in.Accession
	res := Aggregate{
		ID:         gnuuid.New(acc).String(),
		Bioproject: acc,
		Note:       in.Note,
	}
	log := slog.With("bioproject", acc)

	log.Debug("Fetching BioProject")
	bp, err := a.src.Bioprojects.Bioproject(ctx, acc)
	if err != nil {
		return res, BioprojectFetchError(acc, err)
	}
	if bp.TaxID == "" {
		return res, MissingTaxonIDError(acc)
	}
	res.Title = bp.Title
	res.TaxID = bp.TaxID
	res.Children = bp.Children

	log.Debug("Fetching Taxonomy", "taxid", bp.TaxID)
	lin, err := a.src.Taxonomy.Taxonomy(ctx, bp.TaxID)
	if err != nil {
		return res, TaxonomyFetchError(acc, bp.TaxID, err)
	}
	res.Taxonomy = taxonomy(lin.Ranks, lin.Lineage)

	log.Debug("Fetching GBIF", "species", res.Taxonomy.Species)
	a.addSpecies(ctx, log, &res)

	log.Debug("Fetching Assemblies")
	raws := a.assemblies(ctx, log, bp)

	log.Debug("Classifying", "assemblies", len(raws))
	recs := assembly.Classify(raws).Apply(raws)

	log.Debug("Grouping")
	groups, err := assembly.GroupByVersion(recs)
	if err != nil {
		return res, err
	}

	for _, g := range groups {
		switch {
		case !g.Uniform:
			log.Info("Assembly group has mixed types",
				"version", g.Version, "members", len(g.Members))
		case g.Type == assembly.Unknown:
			log.Warn("Assembly group has unknown type",
				"version", g.Version, "members", len(g.Members))
		}

		log.Debug("Normalizing", "version", g.Version, "members", len(g.Members))
		summary := GroupSummary{
			Version: g.Version,
			Type:    g.Type,
			Uniform: g.Uniform,
		}
		pairs, rest := g.Pairs()
		for _, p := range pairs {
			for _, asm := range p {
				rec := assembly.Normalize(asm, bp.TaxID, a.enrichment(ctx, log, asm))
				res.Assemblies = append(res.Assemblies, rec)
				summary.Accessions = append(summary.Accessions, asm.Accession)
			}
		}
		for _, v := range rest {
			log.Warn("Assembly has no pair, skipping",
				"version", g.Version, "assembly_name", v.Name)
			res.Unpaired = append(res.Unpaired, v.Name)
		}
		res.Groups = append(res.Groups, summary)
	}

	log.Debug("Complete", "assemblies", len(res.Assemblies))
	return res, nil
}

// addSpecies adds GBIF data. Any failure leaves GBIF fields empty.
func (a *aggregator) addSpecies(
	ctx context.Context,
	log *slog.Logger,
	res *Aggregate,
) {
	if a.parser == nil || a.src.Species == nil {
		return
	}

	name := res.Taxonomy.Species
	code := parserpool.CodeForLineage(res.Taxonomy.Lineage)
	genus, epithet, ok := a.parser.Binomial(name, code)
	if !ok {
		log.Warn("Cannot split species name, skipping GBIF", "species", name)
		return
	}

	sp, err := a.src.Species.Species(ctx, genus, epithet)
	if err != nil {
		log.Warn("Cannot get GBIF data", "species", name, "error", err)
		return
	}
	if sp.UsageKey == 0 {
		log.Info("Species is not found in GBIF", "species", name)
		return
	}
	res.Authority = sp.Authority
	res.CommonName = sp.CommonName
	res.GBIFURL = sp.URL
	res.GBIFUsageKey = sp.UsageKey
}

// assemblies finds assemblies of the organism in all child projects, or
// in the project itself if it has no children. Assemblies of other taxa
// are ignored. Every assembly is updated to its latest revision.
func (a *aggregator) assemblies(
	ctx context.Context,
	log *slog.Logger,
	bp remote.BioprojectRecord,
) []assembly.Raw {
	accs := bp.Children
	if len(accs) == 0 {
		accs = []string{bp.Accession}
	}

	var res []assembly.Raw
	for _, acc := range accs {
		raws, err := a.src.Assemblies.Assemblies(ctx, acc)
		if err != nil {
			log.Warn("Cannot get assemblies", "project", acc, "error", err)
			continue
		}
		for _, v := range raws {
			if v.TaxID != bp.TaxID {
				continue
			}
			res = append(res, a.latestRevision(ctx, log, v))
		}
	}
	return res
}

func (a *aggregator) latestRevision(
	ctx context.Context,
	log *slog.Logger,
	raw assembly.Raw,
) assembly.Raw {
	if raw.SetAccession == "" || a.src.Revisions == nil {
		return raw
	}

	rev, err := a.src.Revisions.LatestRevision(ctx, raw.SetAccession)
	if err != nil {
		log.Warn("Cannot get revision history",
			"accession", raw.SetAccession, "error", err)
		return raw
	}
	return raw.WithRevision(rev.SetAccession, rev.Name)
}

func (a *aggregator) enrichment(
	ctx context.Context,
	log *slog.Logger,
	asm assembly.Labeled,
) assembly.Enrichment {
	var res assembly.Enrichment
	var err error

	if a.src.Reports != nil {
		res.Report, err = a.src.Reports.DatasetReport(ctx, asm.Accession)
		if err != nil {
			log.Warn("Cannot get dataset report",
				"accession", asm.Accession, "error", err)
		}
	}

	if a.src.Sequences != nil {
		res.Sequences, err = a.src.Sequences.SequenceReport(ctx, asm.Accession)
		if err != nil {
			log.Warn("Cannot get sequence report",
				"accession", asm.Accession, "error", err)
		}
	}
	return res
}
