package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <handle> <message...>",
	Short: "Feed a free-text message through the coaching pipeline",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle := args[0]
		text := strings.Join(args[1:], " ")
		problemID, _ := cmd.Flags().GetString("problem")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := eng.ProcessChat(cmd.Context(), handle, text, problemID)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

func init() {
	chatCmd.Flags().String("problem", "", "Problem ID the message refers to")
}
