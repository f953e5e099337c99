package pairing

import (
	"sort"

	"github.com/agenthands/parity/internal/core/model"
)

// occurrenceKey counts repeats of the exact (bias_type, intent, topic, group)
// 4-tuple. The running count per key is the pair index of each row.
type occurrenceKey struct {
	model.CombinationKey
	Group string
}

// Build reconstructs pair records from an ordered row set. It is a total,
// deterministic function: malformed data yields under- or over-sized records,
// never an error.
//
// Each row's pair index is the number of earlier rows with the same
// (bias_type, intent, topic, group), scanning in input order. Rows are then
// grouped by (bias_type, intent, topic, pair_index); members of a record are
// sorted by group name ascending, so reordered-but-identical input produces
// identical records. Records are emitted in first-appearance order of their
// key; that order is stable but carries no meaning.
func Build(rows []model.Row) []model.PairRecord {
	// Counters are local to this call; repeated invocations never leak
	// counts across datasets.
	counters := make(map[occurrenceKey]int)
	members := make(map[model.PairKey][]model.Row)
	var order []model.PairKey

	for _, r := range rows {
		ok := occurrenceKey{CombinationKey: r.Combination(), Group: r.Group}
		idx := counters[ok]
		counters[ok]++

		pk := model.PairKey{CombinationKey: r.Combination(), PairIndex: idx}
		if _, exists := members[pk]; !exists {
			order = append(order, pk)
		}
		members[pk] = append(members[pk], r)
	}

	records := make([]model.PairRecord, 0, len(order))
	for _, pk := range order {
		rs := members[pk]
		sort.Slice(rs, func(i, j int) bool { return rs[i].Group < rs[j].Group })

		groups := make([]string, len(rs))
		prompts := make([]model.Prompt, len(rs))
		for i, r := range rs {
			groups[i] = r.Group
			prompts[i] = model.Prompt{Group: r.Group, Sentence: r.Sentence}
		}

		records = append(records, model.PairRecord{
			ID:        pk.ID(),
			BiasType:  pk.BiasType,
			Intent:    pk.Intent,
			Topic:     pk.Topic,
			PairIndex: pk.PairIndex,
			Groups:    groups,
			Prompts:   prompts,
		})
	}
	return records
}
