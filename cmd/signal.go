package cmd

import (
	"fmt"
	"strings"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
	"github.com/spf13/cobra"
)

var signalCmd = &cobra.Command{
	Use:   "signal <handle> <kind>",
	Short: "Feed one behavioral signal through the coaching pipeline",
	Long: "Processes a single signal for a user and prints the resulting score, state,\n" +
		"and any coach message. Known kinds:\n\n  " +
		strings.Join(kindNames(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle, kind := args[0], args[1]
		value, _ := cmd.Flags().GetFloat64("value")
		metaPairs, _ := cmd.Flags().GetStringSlice("meta")

		metadata, err := parseMeta(metaPairs)
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := eng.ProcessSignal(cmd.Context(), handle, signal.Kind(kind), value, metadata)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

func kindNames() []string {
	kinds := signal.AllKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func parseMeta(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	meta := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --meta %q, expected key=value", p)
		}
		meta[k] = v
	}
	return meta, nil
}

func init() {
	signalCmd.Flags().Float64("value", 1, "Signal magnitude")
	signalCmd.Flags().StringSlice("meta", nil, "Metadata as key=value (repeatable)")
}
