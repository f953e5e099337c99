package model

// SimpleStats holds descriptive statistics over the full row set.
type SimpleStats struct {
	TotalRows         int                       `json:"total_rows"`
	UniqueTopics      int                       `json:"n_unique_topics"`
	UniqueIntents     int                       `json:"n_unique_intents"`
	UniqueGroups      int                       `json:"n_unique_groups"`
	UniqueBiasTypes   int                       `json:"n_unique_bias_types"`
	CountsPerBiasType map[string]int            `json:"counts_per_bias_type"`
	CountsPerIntent   map[string]int            `json:"counts_per_intent"`
	BiasTypeByIntent  map[string]map[string]int `json:"bias_type_by_intent"`
	GroupsPerBiasType map[string]int            `json:"n_groups_per_bias_type"`
}

// PairCheck reports pair-count health per (bias_type, intent, topic)
// combination. Only observed row counts appear in the distribution; cells are
// never zero-filled.
type PairCheck struct {
	TotalCombinations           int         `json:"total_combinations"`
	ExpectedPairsPerCombination int         `json:"expected_pairs_per_combination"`
	ExpectedRowsPerCombination  int         `json:"expected_rows_per_combination"`
	RowCountDistribution        map[int]int `json:"row_count_distribution"`
	PerfectCombinations         int         `json:"n_perfect_combinations"`
	OddRowCombinations          int         `json:"n_odd_row_combinations"`
}

// CombinationCount is the per-combination detail behind PairCheck. Pairs is
// the real-valued rows/pair_size quotient, kept unfloored for display.
type CombinationCount struct {
	Key    CombinationKey
	Rows   int
	Groups int
	Pairs  float64
}

// HealthSummary is the machine summary of dataset health. It is a pure
// function of the row set, recomputed on every run. Combinations carries the
// per-key detail for display consumers and stays out of the JSON document.
type HealthSummary struct {
	SimpleStats  SimpleStats        `json:"simple_stats"`
	PairCheck    PairCheck          `json:"pair_check"`
	Combinations []CombinationCount `json:"-"`
}
