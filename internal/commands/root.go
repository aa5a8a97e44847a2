package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pennywise",
		Short:   "File-backed personal account ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSignupCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newIncomeCommand())
	rootCmd.AddCommand(newExpenseCommand())
	rootCmd.AddCommand(newWithdrawCommand())
	rootCmd.AddCommand(newTransactionsCommand())
	rootCmd.AddCommand(newDeleteCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
