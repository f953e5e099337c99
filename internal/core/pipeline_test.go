package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/parity/internal/config"
	"github.com/agenthands/parity/internal/core/model"
)

func TestPipeline_Process(t *testing.T) {
	rows := []model.Row{
		{Topic: "jobs", Intent: "Question", Group: "A", Sentence: "a0", BiasType: "race-color"},
		{Topic: "jobs", Intent: "Question", Group: "B", Sentence: "b0", BiasType: "race-color"},
		{Topic: "jobs", Intent: "Question", Group: "A", Sentence: "a1", BiasType: "race-color"},
	}

	p := NewPipeline(config.PairingConfig{ExpectedPairs: 1, PairSize: 2})
	res, err := p.Process(rows)
	assert.NoError(t, err)

	assert.Equal(t, rows, res.Rows)
	assert.Len(t, res.Pairs, 2)
	assert.Equal(t, 3, res.Summary.SimpleStats.TotalRows)
	assert.Equal(t, 1, res.Summary.PairCheck.OddRowCombinations)

	// Both engines saw the same rows: prompts across records add up.
	total := 0
	for _, pair := range res.Pairs {
		total += len(pair.Prompts)
	}
	assert.Equal(t, res.Summary.SimpleStats.TotalRows, total)
}

func TestPipeline_InvalidConfig(t *testing.T) {
	p := NewPipeline(config.PairingConfig{ExpectedPairs: 0, PairSize: 2})

	_, err := p.Process(nil)
	assert.Error(t, err)

	var cfgErr *config.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestPipeline_EmptyRows(t *testing.T) {
	p := NewPipeline(config.PairingConfig{ExpectedPairs: 20, PairSize: 2})

	res, err := p.Process(nil)
	assert.NoError(t, err)
	assert.Len(t, res.Pairs, 0)
	assert.Equal(t, 0, res.Summary.SimpleStats.TotalRows)
}
