package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/event"
	"github.com/minatgo/minatgo/internal/insight"
	"github.com/minatgo/minatgo/internal/llm"
	"github.com/minatgo/minatgo/internal/preference"
	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "minatgo",
	Short: "RIASEC interest test in the terminal",
	Long: "MinatGo runs the RIASEC interest and aptitude test in the terminal, serves it over HTTP, " +
		"and manages the question bank.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINATGO_DB env var)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
	rootCmd.Flags().String("report-dir", ".", "Directory for exported PDF reports")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(questionCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINATGO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// questionSource serves the database bank, or the built-in one while the
// table is empty.
func questionSource(s *store.Store) questions.Source {
	return questions.FallbackSource{Primary: s.Questions(), Secondary: questions.NewStaticSource()}
}

// newInsight builds the optional AI insight service. Without provider
// configuration it returns nil and the feature stays hidden.
func newInsight(ctx context.Context, events store.EventRepo) *insight.Service {
	cfg, err := llm.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM config invalid:", err)
		return nil
	}
	if !cfg.Enabled() {
		return nil
	}
	provider, err := llm.New(ctx, cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI insight will be unavailable.")
		return nil
	}
	return insight.NewService(provider, cfg.Timeout)
}

// services wires the TUI collaborators over an open store.
func services(ctx context.Context, s *store.Store, reportDir string) screen.Services {
	return screen.Services{
		Questions: questionSource(s),
		Archive:   quiz.NewArchive(s.KV()),
		Prefs:     preference.NewService(s.KV()),
		Insight:   newInsight(ctx, s.EventRepo()),
		Recorder:  event.NewRecorder(s.EventRepo(), nil, nil),
		Contacts:  s.Contacts(),
		ReportDir: reportDir,
	}
}
