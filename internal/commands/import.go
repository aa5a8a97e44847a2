package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/importer"
)

func newImportCommand() *cobra.Command {
	var auth authFlags
	var file string
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a bank statement CSV as transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing statement: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No statement rows found.")
				return nil
			}

			p, acct, err := auth.open()
			if err != nil {
				return err
			}

			res, err := importer.Apply(p.store, acct, rows)
			if err != nil {
				return err
			}
			p.recordMutation(acct.Username, "import", fmt.Sprintf("file=%s applied=%d skipped=%d", file, res.Applied, len(res.Skipped)))

			fmt.Printf("Imported %d of %d rows. Balance: %s\n", res.Applied, len(rows), acct.Balance.StringFixed(2))
			for _, skip := range res.Skipped {
				fmt.Fprintf(os.Stderr, "warning: row %d skipped: %s\n", skip.Index+1, skip.Reason)
			}
			return nil
		},
	}

	auth.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "statement CSV path (required)")
	cmd.Flags().StringVar(&format, "format", "simple", "statement format")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
