package model

import (
	"fmt"
	"strings"
)

// PairIDSeparator joins the key fields of a pair id. The dataset loader
// rejects rows whose bias_type, intent or topic contain it, so flattened ids
// cannot collide (sentences are exempt: they never enter an id).
const PairIDSeparator = "||"

// PairKey identifies one pair slot within a combination.
type PairKey struct {
	CombinationKey
	PairIndex int
}

// ID flattens the key to its display form: bias_type||intent||topic||index.
func (k PairKey) ID() string {
	return strings.Join([]string{
		k.BiasType,
		k.Intent,
		k.Topic,
		fmt.Sprintf("%d", k.PairIndex),
	}, PairIDSeparator)
}

// ID flattens a combination key (used when reporting problem combinations).
func (k CombinationKey) ID() string {
	return strings.Join([]string{k.BiasType, k.Intent, k.Topic}, PairIDSeparator)
}

type Prompt struct {
	Group    string `json:"group"`
	Sentence string `json:"sentence"`
}

// PairRecord aggregates all rows sharing (bias_type, intent, topic,
// pair_index). A well-formed record holds one row per compared group; records
// with a missing partner are legitimate output, not an error.
type PairRecord struct {
	ID        string   `json:"id"`
	BiasType  string   `json:"bias_type"`
	Intent    string   `json:"intent"`
	Topic     string   `json:"topic"`
	PairIndex int      `json:"pair_index"`
	Groups    []string `json:"groups"`
	Prompts   []Prompt `json:"prompts"`
}

func (p PairRecord) Key() PairKey {
	return PairKey{
		CombinationKey: CombinationKey{BiasType: p.BiasType, Intent: p.Intent, Topic: p.Topic},
		PairIndex:      p.PairIndex,
	}
}
