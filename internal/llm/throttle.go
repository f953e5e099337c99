package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/agenthands/parity/internal/config"
)

// Throttled wraps a client with a fixed pause before every call and bounded
// retries with a flat delay between attempts. Free-tier quotas (notably
// Gemini's) reject bursts, so the evaluation runner never talks to a
// provider without this wrapper.
type Throttled struct {
	Client     LLMClient
	MinDelay   time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func NewThrottled(client LLMClient, cfg config.LLMConfig) *Throttled {
	return &Throttled{
		Client:     client,
		MinDelay:   time.Duration(cfg.MinDelaySeconds) * time.Second,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}
}

func (t *Throttled) Generate(ctx context.Context, prompt string) (string, error) {
	if err := sleepCtx(ctx, t.MinDelay); err != nil {
		return "", err
	}

	retries := t.MaxRetries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		out, err := t.Client.Generate(ctx, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		log.Printf("LLM error on attempt %d/%d: %v", attempt, retries, err)
		if attempt < retries {
			if err := sleepCtx(ctx, t.RetryDelay); err != nil {
				return "", err
			}
		}
	}
	return "", fmt.Errorf("llm call failed after %d attempts: %w", retries, lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
