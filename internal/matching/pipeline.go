package matching

import (
	"go.uber.org/zap"

	"github.com/careertools/skillscan/internal/jsearch"
	"github.com/careertools/skillscan/internal/skills"
)

// Source fetches candidate postings for a query. *jsearch.Client satisfies it;
// tests inject a stub so matching stays independent of the network.
type Source interface {
	Search(params *jsearch.SearchParams) (*jsearch.Postings, error)
}

// Outcome aggregates one full matching run. When Err is set the fetch failed:
// there are no partial results and gap analysis did not run.
type Outcome struct {
	Matches   Matches
	Summary   GapSummary
	Frequency GapFrequency
	Err       error
}

// Failed reports whether the run ended with a fetch error.
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Pipeline wires the job source, the matching engine and the gap analyzer
// into one run. Matching and gap analysis draw from the same expanded set and
// the same synonym table.
type Pipeline struct {
	source   Source
	engine   *Engine
	analyzer *GapAnalyzer
	logger   *zap.Logger
}

func NewPipeline(source Source, table *skills.SynonymTable, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		source:   source,
		engine:   NewEngine(logger),
		analyzer: NewGapAnalyzer(table),
		logger:   logger,
	}
}

// Run fetches postings and produces matches and gap reports. A fetch failure
// short-circuits: the outcome carries only the error.
func (p *Pipeline) Run(params *jsearch.SearchParams, set skills.Set, opts Options) *Outcome {
	postings, err := p.source.Search(params)
	if err != nil {
		p.logger.Error("fetching postings failed", zap.Error(err))
		return &Outcome{
			Matches:   Matches{},
			Summary:   GapSummary{},
			Frequency: GapFrequency{},
			Err:       err,
		}
	}

	p.logger.Info("fetched postings", zap.Int("count", postings.Len()))

	matches := p.engine.Match(set, postings.Items, opts)
	summary, frequency := p.analyzer.Analyze(set, postings.Items, opts)

	p.logger.Info("matching completed",
		zap.Int("matched", matches.Len()),
		zap.Int("postings_with_gaps", len(summary)),
	)

	return &Outcome{
		Matches:   matches,
		Summary:   summary,
		Frequency: frequency,
	}
}
