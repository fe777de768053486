package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/coach"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/sentiment"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/store"
	"github.com/spf13/cobra"
)

const responderTimeout = 6 * time.Second

// openEngine opens the store and builds a fully wired coaching engine.
// Without a configured LLM provider the engine falls back to keyword
// sentiment and template responses.
func openEngine(cmd *cobra.Command) (*coach.Engine, *store.Store, error) {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	eventRepo := st.EventRepo()
	opts := []coach.EngineOption{
		coach.WithRecorder(store.NewRecorder(eventRepo)),
	}

	var analyzer sentiment.Analyzer
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to keyword sentiment and template responses.")
	} else if provider != nil {
		analyzer = sentiment.NewHybridAnalyzer(provider, sentiment.DefaultHybridConfig())
		opts = append(opts, coach.WithResponder(
			coach.NewLLMResponder(provider, coach.NewResponseBank(0), responderTimeout)))
	}

	eng, err := coach.NewEngine(coach.ConfigFromEnv(), st.SessionRepo(), analyzer, opts...)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return eng, st, nil
}

// printResult renders one pipeline outcome for the terminal.
func printResult(res *coach.Result) {
	fmt.Printf("score:  %.3f (raw %.3f)\n", res.Score, res.Raw)
	fmt.Printf("state:  %s", res.State)
	if res.StateChanged {
		fmt.Printf("  (%s)", res.TriggerReason)
	}
	fmt.Println()
	fmt.Printf("align:  %s\n", res.Alignment)
	fmt.Printf("trend:  %s (slope %+.4f)\n", res.TrendDirection, res.TrendSlope)

	switch {
	case res.Suppressed:
		fmt.Printf("coach:  [%s suppressed by cooldown]\n", res.Level)
	case res.Message != "":
		fmt.Printf("coach:  [%s] %s\n", res.Level, res.Message)
	default:
		fmt.Printf("coach:  [%s]\n", res.Level)
	}

	if res.NeedsAttention {
		fmt.Println("flag:   needs attention")
	}
	for _, a := range res.RecommendedActions {
		fmt.Printf("action: %s\n", a)
	}
}
