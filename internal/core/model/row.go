package model

// Row is one observed prompt row from the raw dataset. Rows are immutable
// values; two rows identical on all five attributes are the same row.
type Row struct {
	Topic    string `json:"topic"`
	Intent   string `json:"intent"`
	Group    string `json:"group"`
	Sentence string `json:"sentence"`
	BiasType string `json:"bias_type"`
}

// CombinationKey is the (bias_type, intent, topic) scope over which pairing
// and validation operate.
type CombinationKey struct {
	BiasType string `json:"bias_type"`
	Intent   string `json:"intent"`
	Topic    string `json:"topic"`
}

func (r Row) Combination() CombinationKey {
	return CombinationKey{BiasType: r.BiasType, Intent: r.Intent, Topic: r.Topic}
}
