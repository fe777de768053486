package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/coach"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/sentiment"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// replayEvent is one line of a replay stream.
type replayEvent struct {
	Type      string            `json:"type"` // "signal" or "chat"
	Handle    string            `json:"handle"`
	Kind      string            `json:"kind,omitempty"`
	Value     float64           `json:"value,omitempty"`
	Text      string            `json:"text,omitempty"`
	ProblemID string            `json:"problem_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	At        time.Time         `json:"at,omitempty"`
}

// replayClock lets recorded timestamps drive the engine's notion of now.
type replayClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *replayClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now.IsZero() {
		return time.Now()
	}
	return c.now
}

func (c *replayClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

var replayCmd = &cobra.Command{
	Use:   "replay <events.jsonl>",
	Short: "Replay a recorded signal stream through the coaching pipeline",
	Long: "Reads newline-delimited JSON events and runs each through the engine in\n" +
		"order. Events with an \"at\" timestamp replay against recorded time, so\n" +
		"decay and cooldowns behave as they did live.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		only, _ := cmd.Flags().GetString("handle")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open replay file: %w", err)
		}
		defer f.Close()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo := st.EventRepo()
		clock := &replayClock{}
		opts := []coach.EngineOption{
			coach.WithRecorder(store.NewRecorder(eventRepo)),
			coach.WithClock(clock.Now),
		}

		var analyzer sentiment.Analyzer
		provider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo)
		if err == nil && provider != nil {
			analyzer = sentiment.NewHybridAnalyzer(provider, sentiment.DefaultHybridConfig())
		}

		eng, err := coach.NewEngine(coach.ConfigFromEnv(), st.SessionRepo(), analyzer, opts...)
		if err != nil {
			return err
		}

		runID := uuid.NewString()
		fmt.Printf("replay %s: %s\n", runID, args[0])

		final := make(map[string]*coach.Result)
		var processed, skipped int

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for lineNo := 1; scanner.Scan(); lineNo++ {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var ev replayEvent
			if err := json.Unmarshal(line, &ev); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if only != "" && ev.Handle != only {
				skipped++
				continue
			}
			if !ev.At.IsZero() {
				clock.Set(ev.At)
			}

			var res *coach.Result
			switch ev.Type {
			case "signal":
				value := ev.Value
				if value == 0 {
					value = 1
				}
				res, err = eng.ProcessSignal(cmd.Context(), ev.Handle, signal.Kind(ev.Kind), value, ev.Metadata)
			case "chat":
				res, err = eng.ProcessChat(cmd.Context(), ev.Handle, ev.Text, ev.ProblemID)
			default:
				return fmt.Errorf("line %d: unknown event type %q", lineNo, ev.Type)
			}
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

			processed++
			final[ev.Handle] = res
			if verbose {
				fmt.Printf("#%d %s %s: score %.3f state %s level %s\n",
					lineNo, ev.Handle, ev.Type, res.Score, res.State, res.Level)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read replay file: %w", err)
		}

		fmt.Printf("\n%d events processed", processed)
		if skipped > 0 {
			fmt.Printf(", %d skipped", skipped)
		}
		fmt.Println()

		handles := make([]string, 0, len(final))
		for h := range final {
			handles = append(handles, h)
		}
		sort.Strings(handles)
		for _, h := range handles {
			res := final[h]
			fmt.Printf("%-16s  score %.3f  state %-10s  trend %s\n",
				h, res.Score, res.State, res.TrendDirection)
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().Bool("verbose", false, "Print each event's outcome")
	replayCmd.Flags().String("handle", "", "Replay only events for this user")
}
