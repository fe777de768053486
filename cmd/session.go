package cmd

import (
	"fmt"
	"strings"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/scoring"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/store"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect and manage coaching sessions",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.SessionRepo()
		ctx := cmd.Context()

		handles, err := repo.Handles(ctx)
		if err != nil {
			return err
		}
		if len(handles) == 0 {
			fmt.Println("No sessions stored.")
			return nil
		}

		fmt.Printf("%-16s  %-10s  %7s  %8s  %s\n", "Handle", "State", "Score", "Msgs", "Updated")
		fmt.Println(strings.Repeat("─", 64))
		for _, h := range handles {
			sess, err := repo.Load(ctx, h)
			if err != nil {
				fmt.Printf("%-16s  (unreadable: %v)\n", h, err)
				continue
			}
			fmt.Printf("%-16s  %-10s  %7.3f  %8d  %s\n",
				sess.UserHandle,
				sess.CurrentState,
				sess.BurnoutScore,
				sess.MessageCountSession,
				sess.LastUpdated.Local().Format("2006-01-02 15:04:05"),
			)
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <handle>",
	Short: "Show one session in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		sess, err := st.SessionRepo().Load(ctx, handle)
		if err != nil {
			return err
		}
		if sess == nil {
			return fmt.Errorf("no session for %q", handle)
		}

		fmt.Printf("Handle:   %s\n", sess.UserHandle)
		fmt.Printf("State:    %s (since %s)\n",
			sess.CurrentState, sess.StateEnteredAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Score:    %.3f\n", sess.BurnoutScore)
		fmt.Printf("Metrics:  frustration %.2f  fatigue %.2f  focus %.2f\n",
			sess.Metrics[scoring.MetricFrustration],
			sess.Metrics[scoring.MetricFatigue],
			sess.Metrics[scoring.MetricFocus])
		fmt.Printf("Failures: %d since last message\n", sess.FailuresSinceLastMessage)
		fmt.Printf("Messages: %d this session\n", sess.MessageCountSession)
		if v := sess.LatestSentiment(); v != nil {
			fmt.Printf("Mood:     %s (confidence %.2f, masking %v)\n",
				v.Label, v.Confidence, v.MaskingHint)
		}
		fmt.Printf("Signals:  %d in window, %d score samples\n",
			len(sess.SignalHistory), len(sess.ScoreHistory))
		fmt.Printf("Updated:  %s\n", sess.LastUpdated.Local().Format("2006-01-02 15:04:05"))

		recent, err := st.EventRepo().QueryInterventionEvents(ctx, handle, store.QueryOpts{Limit: 5})
		if err != nil {
			return err
		}
		if len(recent) > 0 {
			fmt.Println("\nRecent interventions:")
			for _, e := range recent {
				line := fmt.Sprintf("  %s  [%s]",
					e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Level)
				if e.Suppressed {
					line += "  (suppressed)"
				} else if e.Message != "" {
					line += "  " + e.Message
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset <handle>",
	Short: "Reset a session to its starting state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle := args[0]

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.ResetSession(cmd.Context(), handle); err != nil {
			return err
		}
		fmt.Printf("Session for %q reset.\n", handle)
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)
}
