package eval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/parity/internal/config"
	"github.com/agenthands/parity/internal/core/model"
	"github.com/agenthands/parity/internal/llm"
)

// ErrNoMatches reports a filter that selects no pairs. Callers usually treat
// it as a no-op rather than a failure.
var ErrNoMatches = errors.New("no pairs match the configured filter")

// Filter selects pairs by intent and bias type. An empty field matches
// everything, which is what the HTTP listing endpoint relies on.
type Filter struct {
	Intent   string
	BiasType string
}

func (f Filter) Match(p model.PairRecord) bool {
	if f.Intent != "" && p.Intent != f.Intent {
		return false
	}
	if f.BiasType != "" && p.BiasType != f.BiasType {
		return false
	}
	return true
}

func FilterPairs(pairs []model.PairRecord, f Filter) []model.PairRecord {
	out := []model.PairRecord{}
	for _, p := range pairs {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Sample draws up to n pairs without replacement. A zero seed falls back to
// the clock; a fixed seed makes runs reproducible.
func Sample(pairs []model.PairRecord, n int, seed int64) []model.PairRecord {
	if n > len(pairs) {
		n = len(pairs)
	}
	if n <= 0 {
		return []model.PairRecord{}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	out := make([]model.PairRecord, 0, n)
	for _, i := range rng.Perm(len(pairs))[:n] {
		out = append(out, pairs[i])
	}
	return out
}

// Runner sends each prompt of the sampled pairs to an LLM and records the
// answers plus a naive comparison per pair. A nil Client runs the same loop
// with placeholder answers, so the output shape can be inspected without
// burning quota.
type Runner struct {
	Client llm.LLMClient
	Model  string
	Out    io.Writer
}

// Run filters, samples, and evaluates pairs according to cfg. Progress is
// streamed to Out as each answer arrives; with 30s between free-tier calls a
// silent run looks hung.
func (r *Runner) Run(ctx context.Context, pairs []model.PairRecord, cfg config.EvalConfig) (*model.EvalReport, error) {
	filtered := FilterPairs(pairs, Filter{Intent: cfg.Intent, BiasType: cfg.BiasType})
	r.printf("Filtered pairs (%s, %s): %d\n", cfg.Intent, cfg.BiasType, len(filtered))
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w (intent %q, bias_type %q)", ErrNoMatches, cfg.Intent, cfg.BiasType)
	}

	sampled := Sample(filtered, cfg.SampleSize, cfg.Seed)

	report := &model.EvalReport{
		RunID:      uuid.NewString(),
		Intent:     cfg.Intent,
		BiasType:   cfg.BiasType,
		NumSampled: len(sampled),
		Results:    []model.PairResult{},
	}
	if r.Client != nil {
		report.Model = r.Model
	}

	for _, pair := range sampled {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r.printf("%s\n", strings.Repeat("=", 80))
		r.printf("Pair ID: %s\n", pair.ID)
		r.printf("Groups: %v\n", pair.Groups)

		result := model.PairResult{
			PairID:      pair.ID,
			Topic:       pair.Topic,
			Groups:      pair.Groups,
			Prompts:     []model.PromptAnswer{},
			Comparisons: []model.Comparison{},
		}

		var answers []string
		for _, p := range pair.Prompts {
			r.printf("\n[Group: %s]\n%s\n", p.Group, indent(p.Sentence, "  "))

			ans := r.answer(ctx, p.Sentence)

			r.printf("\nLLM answer:\n%s\n", indent(ans, "    "))

			result.Prompts = append(result.Prompts, model.PromptAnswer{
				Group:    p.Group,
				Sentence: p.Sentence,
				Answer:   ans,
			})
			answers = append(answers, ans)
		}

		if r.Client != nil && len(answers) >= 2 {
			comp := Compare(answers[0], answers[1])
			result.Comparisons = append(result.Comparisons, comp)
			r.printf("\nComparison:\n  len_a: %d\n  len_b: %d\n  jaccard_overlap: %v\n",
				comp.LenA, comp.LenB, comp.JaccardOverlap)
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (r *Runner) answer(ctx context.Context, prompt string) string {
	if r.Client == nil {
		return "(LLM disabled or not configured.)"
	}
	out, err := r.Client.Generate(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("(LLM error: %v)", err)
	}
	return out
}

func (r *Runner) printf(format string, args ...interface{}) {
	if r.Out != nil {
		fmt.Fprintf(r.Out, format, args...)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
