package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/agenthands/parity/internal/core/model"
)

const (
	bannerWidth = 80
	maxOddShown = 10
)

// PrintHealth writes the dataset health report: a BASIC STATS block, a PAIR
// COUNT CHECK SUMMARY block, and a short list of odd combinations when any
// exist.
func PrintHealth(w io.Writer, s *model.HealthSummary) {
	banner(w, "BASIC STATS")
	line(w, "Total rows:", s.SimpleStats.TotalRows)
	line(w, "Unique topics:", s.SimpleStats.UniqueTopics)
	line(w, "Unique intents:", s.SimpleStats.UniqueIntents)
	line(w, "Unique groups:", s.SimpleStats.UniqueGroups)
	line(w, "Unique bias types:", s.SimpleStats.UniqueBiasTypes)
	fmt.Fprintln(w)

	banner(w, "PAIR COUNT CHECK SUMMARY")
	line(w, "Total combinations:", s.PairCheck.TotalCombinations)
	line(w, "Perfect combinations:", s.PairCheck.PerfectCombinations)
	line(w, "Odd-row combinations:", s.PairCheck.OddRowCombinations)
	fmt.Fprintln(w)

	if s.PairCheck.OddRowCombinations > 0 {
		printOdd(w, s)
	}
}

func printOdd(w io.Writer, s *model.HealthSummary) {
	pairSize := 0
	if s.PairCheck.ExpectedPairsPerCombination > 0 {
		pairSize = s.PairCheck.ExpectedRowsPerCombination / s.PairCheck.ExpectedPairsPerCombination
	}
	if pairSize <= 0 {
		return
	}

	fmt.Fprintln(w, "Odd combinations (row count not divisible by pair size):")
	shown := 0
	for _, c := range s.Combinations {
		if c.Rows%pairSize == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s | %s | %s: %d rows (%g pairs)\n",
			c.Key.BiasType, c.Key.Intent, c.Key.Topic, c.Rows, c.Pairs)
		shown++
		if shown >= maxOddShown {
			if rest := s.PairCheck.OddRowCombinations - shown; rest > 0 {
				fmt.Fprintf(w, "  ... and %d more\n", rest)
			}
			break
		}
	}
	fmt.Fprintln(w)
}

func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func line(w io.Writer, label string, value int) {
	fmt.Fprintf(w, "%-25s%d\n", label, value)
}
