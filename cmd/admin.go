package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minatgo/minatgo/internal/auth"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative helpers for the HTTP server",
}

var adminHashCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for MINATGO_ADMIN_PASSWORD_HASH",
	Long:  "Reads the password from the first line of stdin and prints its bcrypt hash.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			return errors.New("password must not be empty")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminHashCmd)
}
