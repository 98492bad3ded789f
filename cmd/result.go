package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/report"
	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/store"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show or export the last submitted result",
}

// loadReport rebuilds the report from the saved snapshot. A corrupt
// snapshot is cleared by the archive and reported.
func loadReport(cmd *cobra.Command) (report.Report, error) {
	s, err := openStore(cmd)
	if err != nil {
		return report.Report{}, err
	}
	defer s.Close()

	snap, err := quiz.NewArchive(s.KV()).Load(cmd.Context())
	switch {
	case errors.Is(err, quiz.ErrNoSnapshot):
		return report.Report{}, errors.New("no saved result; take the test first")
	case errors.Is(err, quiz.ErrCorruptSnapshot):
		fmt.Fprintln(os.Stderr, "Saved result was unreadable and has been cleared.")
		return report.Report{}, err
	case err != nil:
		return report.Report{}, err
	}
	answers, err := snap.AnswerSet()
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(answers, snap.QuestionsMap), nil
}

var resultShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the last result",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := loadReport(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Answered: %d of %d\n\n", rep.Answered, rep.Total)
		fmt.Printf("%-32s  %5s  %7s\n", "Type", "Count", "Percent")
		fmt.Println(strings.Repeat("─", 48))
		for _, row := range rep.Rows {
			mark := ""
			if row.Dominant {
				mark = "  *"
			}
			fmt.Printf("%-32s  %5d  %6d%%%s\n", row.Label, row.Count, row.Percent, mark)
		}
		fmt.Println(strings.Repeat("─", 48))

		if len(rep.Recommendations) == 0 {
			fmt.Println("No dominant type.")
			return nil
		}
		for _, rec := range rep.Recommendations {
			fmt.Println()
			fmt.Println(rec.Label)
			fmt.Println("  Jurusan:  ", strings.Join(rec.Majors, ", "))
			fmt.Println("  Pekerjaan:", strings.Join(rec.Jobs, ", "))
			fmt.Println("  Kegiatan: ", strings.Join(rec.Activities, ", "))
		}
		return nil
	},
}

var resultPDFCmd = &cobra.Command{
	Use:   "pdf [file.pdf]",
	Short: "Export the last result as PDF",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := loadReport(cmd)
		if err != nil {
			return err
		}
		path := "hasil-tes-riasec.pdf"
		if len(args) == 1 {
			path = args[0]
		}
		if err := report.SavePDF(path, rep); err != nil {
			return err
		}
		fmt.Println("Report written to", path)
		return nil
	},
}

var resultHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed test attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryQuizEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No completed tests yet.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-6s  %-8s  %s\n", "Seq", "Timestamp", "Origin", "Answered", "Dominant")
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range events {
			fmt.Printf("%-6d  %-19s  %-6s  %3d/%-4d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Origin,
				e.Answered, e.Total,
				dominantCodes(e.Dominant),
			)
		}
		return nil
	},
}

func dominantCodes(codes []string) string {
	if len(codes) == 0 {
		return "-"
	}
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = riasec.Category(c).Name()
	}
	return strings.Join(names, ", ")
}

func init() {
	resultHistoryCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")

	resultCmd.AddCommand(resultShowCmd)
	resultCmd.AddCommand(resultPDFCmd)
	resultCmd.AddCommand(resultHistoryCmd)
}
