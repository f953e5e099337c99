package health

import (
	"github.com/agenthands/parity/internal/config"
	"github.com/agenthands/parity/internal/core/model"
)

// Analyze computes the health summary of a row set: descriptive statistics
// plus the pair-count check against expectedPairs pairs of pairSize rows per
// (bias_type, intent, topic) combination.
//
// It is a pure function of the row set. Structural anomalies (odd or
// wrong-sized combinations) are counted, never raised; the only error is a
// ConfigError for parameters the check cannot run with, returned before any
// processing.
func Analyze(rows []model.Row, expectedPairs, pairSize int) (*model.HealthSummary, error) {
	if expectedPairs <= 0 {
		return nil, &config.ConfigError{Field: "expected_pairs", Reason: "must be positive"}
	}
	if pairSize <= 0 {
		return nil, &config.ConfigError{Field: "pair_size", Reason: "must be positive"}
	}

	stats := model.SimpleStats{
		TotalRows:         len(rows),
		CountsPerBiasType: make(map[string]int),
		CountsPerIntent:   make(map[string]int),
		BiasTypeByIntent:  make(map[string]map[string]int),
		GroupsPerBiasType: make(map[string]int),
	}

	topics := make(map[string]struct{})
	intents := make(map[string]struct{})
	groups := make(map[string]struct{})
	biasTypes := make(map[string]struct{})
	groupsPerBias := make(map[string]map[string]struct{})

	type comboAgg struct {
		rows   int
		groups map[string]struct{}
	}
	combos := make(map[model.CombinationKey]*comboAgg)
	var comboOrder []model.CombinationKey

	for _, r := range rows {
		topics[r.Topic] = struct{}{}
		intents[r.Intent] = struct{}{}
		groups[r.Group] = struct{}{}
		biasTypes[r.BiasType] = struct{}{}

		stats.CountsPerBiasType[r.BiasType]++
		stats.CountsPerIntent[r.Intent]++

		if stats.BiasTypeByIntent[r.BiasType] == nil {
			stats.BiasTypeByIntent[r.BiasType] = make(map[string]int)
		}
		stats.BiasTypeByIntent[r.BiasType][r.Intent]++

		if groupsPerBias[r.BiasType] == nil {
			groupsPerBias[r.BiasType] = make(map[string]struct{})
		}
		groupsPerBias[r.BiasType][r.Group] = struct{}{}

		key := r.Combination()
		agg, ok := combos[key]
		if !ok {
			agg = &comboAgg{groups: make(map[string]struct{})}
			combos[key] = agg
			comboOrder = append(comboOrder, key)
		}
		agg.rows++
		agg.groups[r.Group] = struct{}{}
	}

	stats.UniqueTopics = len(topics)
	stats.UniqueIntents = len(intents)
	stats.UniqueGroups = len(groups)
	stats.UniqueBiasTypes = len(biasTypes)
	for bias, set := range groupsPerBias {
		stats.GroupsPerBiasType[bias] = len(set)
	}

	check := model.PairCheck{
		TotalCombinations:           len(combos),
		ExpectedPairsPerCombination: expectedPairs,
		ExpectedRowsPerCombination:  expectedPairs * pairSize,
		RowCountDistribution:        make(map[int]int),
	}

	detail := make([]model.CombinationCount, 0, len(comboOrder))
	expectedRows := expectedPairs * pairSize
	for _, key := range comboOrder {
		agg := combos[key]
		check.RowCountDistribution[agg.rows]++

		if agg.rows%pairSize != 0 {
			check.OddRowCombinations++
		} else if agg.rows == expectedRows {
			check.PerfectCombinations++
		}

		detail = append(detail, model.CombinationCount{
			Key:    key,
			Rows:   agg.rows,
			Groups: len(agg.groups),
			Pairs:  float64(agg.rows) / float64(pairSize),
		})
	}

	return &model.HealthSummary{
		SimpleStats:  stats,
		PairCheck:    check,
		Combinations: detail,
	}, nil
}
