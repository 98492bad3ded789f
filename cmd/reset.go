package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/preference"
	"github.com/minatgo/minatgo/internal/quiz"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved test result",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		if err := quiz.NewArchive(s.KV()).Clear(ctx); err != nil {
			return fmt.Errorf("clear result: %w", err)
		}
		if all {
			if err := s.KV().Delete(ctx, preference.DarkModeKey); err != nil {
				return fmt.Errorf("clear preferences: %w", err)
			}
		}
		fmt.Println("Saved result cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also reset display preferences")
}
