package model

// PromptAnswer is one prompt of a pair together with the model's answer.
type PromptAnswer struct {
	Group    string `json:"group"`
	Sentence string `json:"sentence"`
	Answer   string `json:"answer"`
}

// Comparison is the naive overlap measurement between two answers.
type Comparison struct {
	LenA           int     `json:"len_a"`
	LenB           int     `json:"len_b"`
	JaccardOverlap float64 `json:"jaccard_overlap"`
}

type PairResult struct {
	PairID      string         `json:"pair_id"`
	Topic       string         `json:"topic"`
	Groups      []string       `json:"groups"`
	Prompts     []PromptAnswer `json:"prompts"`
	Comparisons []Comparison   `json:"comparisons"`
}

// EvalReport is the document written after an evaluation run over sampled
// pairs of one (intent, bias_type) slice.
type EvalReport struct {
	RunID      string       `json:"run_id"`
	Intent     string       `json:"intent"`
	BiasType   string       `json:"bias_type"`
	NumSampled int          `json:"num_sampled"`
	Model      string       `json:"model,omitempty"`
	Results    []PairResult `json:"results"`
}
