package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show test completion statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryQuizEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No completed tests yet.")
			return nil
		}

		st := summarize(events)
		fmt.Printf("Completed tests: %d (tui %d, http %d)\n", st.total, st.byOrigin["tui"], st.byOrigin["http"])
		fmt.Printf("Last completed:  %s\n", events[0].Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Println()
		fmt.Println("Dominant Category")
		fmt.Println(strings.Repeat("─", 48))
		for _, c := range riasec.All {
			n := st.dominant[c]
			fmt.Printf("%-32s  %5d  %5.1f%%\n", c.Label(), n, 100*float64(n)/float64(st.total))
		}
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Ties: %d\n", st.ties)
		return nil
	},
}

type completionStats struct {
	total    int
	ties     int
	byOrigin map[string]int
	dominant map[riasec.Category]int
}

// summarize counts each dominant category once per attempt, so tied
// attempts add to several rows.
func summarize(events []store.QuizEventRecord) completionStats {
	st := completionStats{
		total:    len(events),
		byOrigin: make(map[string]int),
		dominant: make(map[riasec.Category]int),
	}
	for _, e := range events {
		st.byOrigin[e.Origin]++
		if len(e.Dominant) > 1 {
			st.ties++
		}
		for _, d := range e.Dominant {
			st.dominant[riasec.Category(d)]++
		}
	}
	return st
}
