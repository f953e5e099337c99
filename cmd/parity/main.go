package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/parity/internal/config"
	"github.com/agenthands/parity/internal/core/health"
	"github.com/agenthands/parity/internal/core/model"
	"github.com/agenthands/parity/internal/core/pairing"
	"github.com/agenthands/parity/internal/dataset"
	"github.com/agenthands/parity/internal/eval"
	"github.com/agenthands/parity/internal/llm"
	"github.com/agenthands/parity/internal/report"
)

const usage = `Usage: parity [-config path] <command>

Commands:
  analyze   compute dataset health stats and write the summary JSON
  pairs     build pair records and write the JSONL dataset
  eval      sample pairs, query the configured LLM, write the results JSON
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	configPath := flag.String("config", "config/config.toml", "path to the TOML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cmd := flag.Arg(0)
	switch cmd {
	case "analyze":
		err = runAnalyze(cfg)
	case "pairs":
		err = runPairs(cfg)
	case "eval":
		err = runEval(cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", cmd, err)
	}
}

func loadRows(cfg *config.Config) ([]model.Row, error) {
	fmt.Printf("Loading dataset: %s\n", cfg.Dataset.Input)
	src, err := dataset.Open(cfg.Dataset.Input, cfg.SeparatorRune())
	if err != nil {
		return nil, err
	}
	return dataset.Load(src)
}

func runAnalyze(cfg *config.Config) error {
	rows, err := loadRows(cfg)
	if err != nil {
		return err
	}

	summary, err := health.Analyze(rows, cfg.Pairing.ExpectedPairs, cfg.Pairing.PairSize)
	if err != nil {
		return err
	}

	report.PrintHealth(os.Stdout, summary)

	if err := dataset.SaveJSON(cfg.Dataset.SummaryJSON, summary); err != nil {
		return err
	}
	fmt.Printf("Summary JSON saved to: %s\n", cfg.Dataset.SummaryJSON)
	return nil
}

func runPairs(cfg *config.Config) error {
	rows, err := loadRows(cfg)
	if err != nil {
		return err
	}

	fmt.Println("Building pairs...")
	pairs := pairing.Build(rows)

	fmt.Printf("Saving JSONL: %s\n", cfg.Dataset.PairsJSONL)
	if err := dataset.SaveJSONL(cfg.Dataset.PairsJSONL, pairs); err != nil {
		return err
	}

	fmt.Printf("Done. Total pairs created: %d\n", len(pairs))
	return nil
}

func runEval(cfg *config.Config) error {
	fmt.Printf("Loading dataset: %s\n", cfg.Dataset.PairsJSONL)
	pairs, err := dataset.LoadPairs(cfg.Dataset.PairsJSONL)
	if err != nil {
		return err
	}
	fmt.Printf("Total pairs: %d\n", len(pairs))

	ctx := context.Background()

	runner := &eval.Runner{Out: os.Stdout}
	if cfg.Eval.UseLLM {
		client, err := llm.NewClient(ctx, cfg.LLM)
		if err != nil {
			return err
		}
		runner.Client = llm.NewThrottled(client, cfg.LLM)
		runner.Model = cfg.LLM.Model
	}

	result, err := runner.Run(ctx, pairs, cfg.Eval)
	if errors.Is(err, eval.ErrNoMatches) {
		fmt.Println("No matching pairs. Update eval.intent / eval.bias_type.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := dataset.SaveJSON(cfg.Eval.ResultsJSON, result); err != nil {
		return err
	}
	fmt.Printf("\nResults saved to: %s\n", cfg.Eval.ResultsJSON)
	return nil
}
