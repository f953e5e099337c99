package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/parity/internal/config"
	"github.com/agenthands/parity/internal/core/model"
)

func row(biasType, intent, topic, group, sentence string) model.Row {
	return model.Row{Topic: topic, Intent: intent, Group: group, Sentence: sentence, BiasType: biasType}
}

// repeat builds n rows for one (bias_type, intent, topic, group) slot with
// distinct sentences.
func repeat(n int, biasType, intent, topic, group string) []model.Row {
	rows := make([]model.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row(biasType, intent, topic, group, group+string(rune('a'+i))))
	}
	return rows
}

func TestAnalyze_SimpleStats(t *testing.T) {
	rows := []model.Row{
		row("race-color", "Question", "jobs", "A", "s1"),
		row("race-color", "Question", "jobs", "B", "s2"),
		row("race-color", "Statement", "jobs", "A", "s3"),
		row("gender", "Question", "sport", "C", "s4"),
	}

	summary, err := Analyze(rows, 20, 2)
	assert.NoError(t, err)

	stats := summary.SimpleStats
	assert.Equal(t, 4, stats.TotalRows)
	assert.Equal(t, 2, stats.UniqueTopics)
	assert.Equal(t, 2, stats.UniqueIntents)
	assert.Equal(t, 3, stats.UniqueGroups)
	assert.Equal(t, 2, stats.UniqueBiasTypes)

	assert.Equal(t, map[string]int{"race-color": 3, "gender": 1}, stats.CountsPerBiasType)
	assert.Equal(t, map[string]int{"Question": 3, "Statement": 1}, stats.CountsPerIntent)
	assert.Equal(t, map[string]int{"race-color": 2, "gender": 1}, stats.GroupsPerBiasType)
}

func TestAnalyze_CrosstabIsSparse(t *testing.T) {
	// gender never appears with Statement; that cell must be absent, not 0.
	rows := []model.Row{
		row("race-color", "Question", "jobs", "A", "s1"),
		row("race-color", "Statement", "jobs", "A", "s2"),
		row("gender", "Question", "sport", "B", "s3"),
	}

	summary, err := Analyze(rows, 20, 2)
	assert.NoError(t, err)

	crosstab := summary.SimpleStats.BiasTypeByIntent
	assert.Equal(t, map[string]int{"Question": 1, "Statement": 1}, crosstab["race-color"])
	assert.Equal(t, map[string]int{"Question": 1}, crosstab["gender"])
	_, present := crosstab["gender"]["Statement"]
	assert.False(t, present)
}

func TestAnalyze_PerfectCombination(t *testing.T) {
	// 40 rows split 20/20 across two groups with expected_pairs=20 and
	// pair_size=2 is the intended shape.
	var rows []model.Row
	rows = append(rows, repeat(20, "race-color", "Question", "jobs", "A")...)
	rows = append(rows, repeat(20, "race-color", "Question", "jobs", "B")...)

	summary, err := Analyze(rows, 20, 2)
	assert.NoError(t, err)

	check := summary.PairCheck
	assert.Equal(t, 1, check.TotalCombinations)
	assert.Equal(t, 20, check.ExpectedPairsPerCombination)
	assert.Equal(t, 40, check.ExpectedRowsPerCombination)
	assert.Equal(t, 1, check.PerfectCombinations)
	assert.Equal(t, 0, check.OddRowCombinations)
	assert.Equal(t, map[int]int{40: 1}, check.RowCountDistribution)
}

func TestAnalyze_OddCombination(t *testing.T) {
	// 5 rows in one combination: not divisible by 2, so odd and not perfect.
	var rows []model.Row
	rows = append(rows, repeat(3, "gender", "Statement", "sport", "A")...)
	rows = append(rows, repeat(2, "gender", "Statement", "sport", "B")...)

	summary, err := Analyze(rows, 20, 2)
	assert.NoError(t, err)

	check := summary.PairCheck
	assert.Equal(t, 1, check.TotalCombinations)
	assert.Equal(t, 1, check.OddRowCombinations)
	assert.Equal(t, 0, check.PerfectCombinations)
	assert.Equal(t, map[int]int{5: 1}, check.RowCountDistribution)

	assert.Len(t, summary.Combinations, 1)
	assert.Equal(t, 5, summary.Combinations[0].Rows)
	assert.Equal(t, 2, summary.Combinations[0].Groups)
	assert.Equal(t, 2.5, summary.Combinations[0].Pairs)
}

func TestAnalyze_DivisibleButNotExpected(t *testing.T) {
	// 4 rows with expected 40: divisible by pair_size but neither perfect
	// nor odd. It only shows up in the distribution.
	var rows []model.Row
	rows = append(rows, repeat(2, "race-color", "Question", "jobs", "A")...)
	rows = append(rows, repeat(2, "race-color", "Question", "jobs", "B")...)

	summary, err := Analyze(rows, 20, 2)
	assert.NoError(t, err)

	check := summary.PairCheck
	assert.Equal(t, 1, check.TotalCombinations)
	assert.Equal(t, 0, check.PerfectCombinations)
	assert.Equal(t, 0, check.OddRowCombinations)
	assert.Equal(t, map[int]int{4: 1}, check.RowCountDistribution)
}

func TestAnalyze_DistributionSumsToTotal(t *testing.T) {
	var rows []model.Row
	rows = append(rows, repeat(5, "race-color", "Question", "jobs", "A")...)
	rows = append(rows, repeat(4, "race-color", "Question", "loans", "A")...)
	rows = append(rows, repeat(4, "gender", "Statement", "sport", "B")...)
	rows = append(rows, repeat(1, "age", "Question", "health", "C")...)

	summary, err := Analyze(rows, 2, 2)
	assert.NoError(t, err)

	check := summary.PairCheck
	sum := 0
	for _, n := range check.RowCountDistribution {
		sum += n
	}
	assert.Equal(t, check.TotalCombinations, sum)
	assert.LessOrEqual(t, check.PerfectCombinations, check.TotalCombinations)
}

func TestAnalyze_Empty(t *testing.T) {
	summary, err := Analyze(nil, 20, 2)
	assert.NoError(t, err)

	stats := summary.SimpleStats
	assert.Equal(t, 0, stats.TotalRows)
	assert.Equal(t, 0, stats.UniqueTopics)
	assert.Equal(t, 0, stats.UniqueIntents)
	assert.Equal(t, 0, stats.UniqueGroups)
	assert.Equal(t, 0, stats.UniqueBiasTypes)
	assert.Empty(t, stats.CountsPerBiasType)

	check := summary.PairCheck
	assert.Equal(t, 0, check.TotalCombinations)
	assert.Empty(t, check.RowCountDistribution)
	assert.NotNil(t, check.RowCountDistribution)
}

func TestAnalyze_InvalidConfig(t *testing.T) {
	rows := []model.Row{row("race-color", "Question", "jobs", "A", "s1")}

	var cfgErr *config.ConfigError

	_, err := Analyze(rows, 0, 2)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &cfgErr)

	_, err = Analyze(rows, 20, 0)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &cfgErr)

	_, err = Analyze(rows, 20, -1)
	assert.Error(t, err)
}
