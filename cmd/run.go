package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	reportDir, _ := cmd.Flags().GetString("report-dir")

	return app.Run(ctx, app.Options{
		Services:   services(ctx, st, reportDir),
		SkipSplash: noSplash,
	})
}
