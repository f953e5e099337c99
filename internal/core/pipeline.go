package core

import (
	"github.com/agenthands/parity/internal/config"
	"github.com/agenthands/parity/internal/core/health"
	"github.com/agenthands/parity/internal/core/model"
	"github.com/agenthands/parity/internal/core/pairing"
)

// Result bundles the outputs of both engines over one loaded row set.
type Result struct {
	Rows    []model.Row
	Pairs   []model.PairRecord
	Summary *model.HealthSummary
}

// Pipeline runs the pairing and validation engines. The engines are
// independent consumers of the same immutable row set; either can also be
// invoked alone through its own package.
type Pipeline struct {
	ExpectedPairs int
	PairSize      int
}

func NewPipeline(cfg config.PairingConfig) *Pipeline {
	return &Pipeline{
		ExpectedPairs: cfg.ExpectedPairs,
		PairSize:      cfg.PairSize,
	}
}

// Process recomputes pairs and the health summary from scratch. Each engine
// allocates its own working structures; rows are never mutated.
func (p *Pipeline) Process(rows []model.Row) (*Result, error) {
	summary, err := health.Analyze(rows, p.ExpectedPairs, p.PairSize)
	if err != nil {
		return nil, err
	}
	return &Result{
		Rows:    rows,
		Pairs:   pairing.Build(rows),
		Summary: summary,
	}, nil
}
