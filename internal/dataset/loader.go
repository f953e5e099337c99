package dataset

import (
	"strings"

	"github.com/agenthands/parity/internal/core/model"
)

// RequiredColumns is the attribute set every input source must declare.
var RequiredColumns = []string{"topic", "intent", "group", "sentence", "bias_type"}

// Load reads all rows from src, checks the required columns, collapses exact
// duplicates (first occurrence wins, surviving order preserved) and proves
// the pair-id separator absent from every id field. Pair-index assignment
// downstream depends on the returned order, so Load never reorders rows.
func Load(src Source) ([]model.Row, error) {
	header, records, err := src.Read()
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	cell := func(rec []string, col string) string {
		if i := idx[col]; i < len(rec) {
			return rec[i]
		}
		return ""
	}

	seen := make(map[model.Row]struct{}, len(records))
	rows := make([]model.Row, 0, len(records))
	for _, rec := range records {
		row := model.Row{
			Topic:    cell(rec, "topic"),
			Intent:   cell(rec, "intent"),
			Group:    cell(rec, "group"),
			Sentence: cell(rec, "sentence"),
			BiasType: cell(rec, "bias_type"),
		}
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}

		if err := checkSeparator(row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// checkSeparator rejects rows whose id fields contain the reserved
// separator. Sentences are exempt; they never participate in a pair id.
func checkSeparator(r model.Row) error {
	fields := []struct {
		name  string
		value string
	}{
		{"bias_type", r.BiasType},
		{"intent", r.Intent},
		{"topic", r.Topic},
	}
	for _, f := range fields {
		if strings.Contains(f.value, model.PairIDSeparator) {
			return &IdentityCollisionError{Field: f.name, Value: f.value}
		}
	}
	return nil
}
