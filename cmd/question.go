package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/admin"
	"github.com/minatgo/minatgo/internal/questions"
)

var questionCmd = &cobra.Command{
	Use:     "question",
	Aliases: []string{"q"},
	Short:   "Manage the question bank",
}

// withAdmin opens the store and runs fn against the validating question service.
func withAdmin(cmd *cobra.Command, fn func(svc *admin.Service) error) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(admin.NewService(s.Questions()))
}

var questionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(svc *admin.Service) error {
			recs, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("No questions stored. The built-in bank is used; run 'minatgo question seed' to edit it.")
				return nil
			}
			fmt.Printf("%-5s  %-5s  %s\n", "ID", "Type", "Text")
			fmt.Println(strings.Repeat("─", 80))
			for _, r := range recs {
				fmt.Printf("%-5d  %-5s  %s\n", r.ID, r.Type, truncate(r.Text, 66))
			}
			return nil
		})
	},
}

var questionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withAdmin(cmd, func(svc *admin.Service) error {
			r, err := svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printRecord(r)
			return nil
		})
	},
}

var questionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a question",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := recordFromFlags(cmd, questions.Record{})
		return withAdmin(cmd, func(svc *admin.Service) error {
			r, err := svc.Create(cmd.Context(), rec)
			if err != nil {
				return err
			}
			fmt.Printf("Question %d created.\n", r.ID)
			return nil
		})
	},
}

var questionUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withAdmin(cmd, func(svc *admin.Service) error {
			cur, err := svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			r, err := svc.Update(cmd.Context(), recordFromFlags(cmd, *cur))
			if err != nil {
				return err
			}
			printRecord(r)
			return nil
		})
	},
}

var questionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withAdmin(cmd, func(svc *admin.Service) error {
			if err := svc.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Question %d deleted.\n", id)
			return nil
		})
	},
}

var questionImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Replace the bank with a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		bank, err := questions.Decode(f)
		if err != nil {
			return err
		}
		return withAdmin(cmd, func(svc *admin.Service) error {
			if err := svc.Import(cmd.Context(), bank.Questions); err != nil {
				return err
			}
			fmt.Printf("Imported %d questions (bank %s).\n", len(bank.Questions), bank.Version)
			return nil
		})
	},
}

var questionExportCmd = &cobra.Command{
	Use:   "export [file.yaml]",
	Short: "Write the active bank as YAML",
	Long:  "Writes the stored bank, or the built-in bank when none is stored, to a file or stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := questionSource(s).ListQuestions(cmd.Context())
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return questions.Encode(w, recs)
	},
}

var questionSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the built-in bank when the table is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(svc *admin.Service) error {
			seeded, err := svc.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if !seeded {
				fmt.Println("Question table already has data; nothing written.")
				return nil
			}
			fmt.Printf("Seeded %d questions.\n", len(questions.DefaultRecords()))
			return nil
		})
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}

// recordFromFlags overlays the flags the user set onto base.
func recordFromFlags(cmd *cobra.Command, base questions.Record) questions.Record {
	f := cmd.Flags()
	if f.Changed("text") {
		base.Text, _ = f.GetString("text")
	}
	if f.Changed("a") {
		base.OptionA, _ = f.GetString("a")
	}
	if f.Changed("b") {
		base.OptionB, _ = f.GetString("b")
	}
	if f.Changed("type") {
		base.Type, _ = f.GetString("type")
	}
	return base
}

func printRecord(r *questions.Record) {
	fmt.Printf("ID:        %d\n", r.ID)
	fmt.Printf("Type:      %s\n", r.Type)
	fmt.Printf("Text:      %s\n", r.Text)
	fmt.Printf("Option A:  %s\n", r.OptionA)
	fmt.Printf("Option B:  %s\n", r.OptionB)
}

func init() {
	for _, c := range []*cobra.Command{questionAddCmd, questionUpdateCmd} {
		c.Flags().String("text", "", "Question text")
		c.Flags().String("a", "", "Option A label")
		c.Flags().String("b", "", "Option B label")
		c.Flags().String("type", "", "Category pair for A and B, e.g. R-I")
	}

	questionCmd.AddCommand(questionListCmd)
	questionCmd.AddCommand(questionShowCmd)
	questionCmd.AddCommand(questionAddCmd)
	questionCmd.AddCommand(questionUpdateCmd)
	questionCmd.AddCommand(questionDeleteCmd)
	questionCmd.AddCommand(questionImportCmd)
	questionCmd.AddCommand(questionExportCmd)
	questionCmd.AddCommand(questionSeedCmd)
}
