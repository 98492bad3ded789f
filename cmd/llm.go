package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/llm"
	"github.com/minatgo/minatgo/internal/store"
)

const ruleWidth = 72

func rule() string { return strings.Repeat("─", ruleWidth) }

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect AI insight requests and token usage",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if purpose != "" {
			events = filterPurpose(events, purpose)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-10s  %-24s  %11s  %6s  %s\n",
			"ID", "When", "Purpose", "Model", "Tokens", "Ms", "Status")
		fmt.Println(rule())
		for _, e := range events {
			fmt.Printf("%-5d  %-16s  %-10s  %-24s  %5d/%-5d  %6d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("01-02 15:04:05"),
				truncate(e.Purpose, 10),
				truncate(e.Model, 24),
				e.InputTokens, e.OutputTokens,
				e.LatencyMs,
				status(e.Success),
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the captured request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		}
		printLLMEvent(e)
		return nil
	},
}

func printLLMEvent(e *store.LLMEventRecord) {
	fields := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Purpose", e.Purpose},
		{"Tokens", fmt.Sprintf("%d in, %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Status", status(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Printf("%-10s %s\n", f[0]+":", f[1])
	}

	for _, body := range []struct{ title, text string }{
		{"Request", e.RequestBody},
		{"Response", e.ResponseBody},
	} {
		fmt.Println()
		fmt.Println(body.title)
		fmt.Println(rule())
		if body.text == "" {
			fmt.Println("(not captured)")
			continue
		}
		fmt.Println(body.text)
	}
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded.")
			return nil
		}
		printUsage(byPurpose)

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) > 0 {
			fmt.Println()
			printCost(byModel)
		}
		return nil
	},
}

func printUsage(rows []store.LLMUsage) {
	fmt.Println("Usage by purpose")
	fmt.Println(rule())
	fmt.Printf("%-16s  %6s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Avg ms")
	var calls, in, out int
	for _, u := range rows {
		fmt.Printf("%-16s  %6d  %10d  %10d  %8d\n", truncate(u.Purpose, 16), u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Println(rule())
	fmt.Printf("%-16s  %6d  %10d  %10d\n", "All", calls, in, out)
}

// printCost prices each model from the built-in table. Models without a
// known price are listed and left out of the sum.
func printCost(rows []store.LLMUsage) {
	fmt.Println("Estimated cost (USD)")
	fmt.Println(rule())
	fmt.Printf("%-32s  %6s  %10s\n", "Model", "Calls", "Cost")

	var sum float64
	var unpriced []string
	for _, u := range rows {
		price, ok := llm.LookupPrice(u.Model)
		if !ok {
			unpriced = append(unpriced, u.Model)
			fmt.Printf("%-32s  %6d  %10s\n", truncate(u.Model, 32), u.Calls, "?")
			continue
		}
		c := price.Cost(u.InputTokens, u.OutputTokens)
		sum += c
		fmt.Printf("%-32s  %6d  %10s\n", truncate(u.Model, 32), u.Calls, formatCost(c))
	}
	fmt.Println(rule())

	label := "All"
	if len(unpriced) > 0 {
		label = "All (priced models)"
	}
	fmt.Printf("%-32s  %6s  %10s\n", label, "", formatCost(sum))
	if len(unpriced) > 0 {
		fmt.Printf("\nNo price known for: %s\n", strings.Join(unpriced, ", "))
	}
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

func filterPurpose(events []store.LLMEventRecord, purpose string) []store.LLMEventRecord {
	out := events[:0]
	for _, e := range events {
		if e.Purpose == purpose {
			out = append(out, e)
		}
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose, e.g. insight")
	llmViewCmd.Flags().Bool("json", false, "Print the event as JSON")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
