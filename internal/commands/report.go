package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/report"
)

func newReportCommand() *cobra.Command {
	var auth authFlags
	var monthly bool
	var fromStr string
	var toStr string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize expenses over a period (weekly by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, acct, err := auth.open()
			if err != nil {
				return err
			}

			window, title, err := resolveWindow(p, monthly, fromStr, toStr)
			if err != nil {
				return err
			}

			sum := report.Expenses(p.store.Transactions(acct), window)
			if len(sum.Rows) == 0 {
				fmt.Printf("%s: no expenses found.\n", title)
				return nil
			}

			fmt.Println(title)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCATEGORY\tDESCRIPTION\tAMOUNT")
			for _, tx := range sum.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					tx.Date.Format("2006-01-02"), tx.Label, tx.Detail, tx.Amount.StringFixed(2))
			}
			fmt.Fprintf(w, "TOTAL\t\t\t%s\n", sum.Total.StringFixed(2))
			return w.Flush()
		},
	}

	auth.register(cmd)
	cmd.Flags().BoolVar(&monthly, "monthly", false, "report over the monthly window instead of weekly")
	cmd.Flags().StringVar(&fromStr, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "custom range end (YYYY-MM-DD)")

	return cmd
}

func resolveWindow(p *project, monthly bool, fromStr, toStr string) (report.Window, string, error) {
	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			return report.Window{}, "", fmt.Errorf("custom range needs both --from and --to")
		}
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return report.Window{}, "", fmt.Errorf("parsing --from %q: %w", fromStr, err)
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return report.Window{}, "", fmt.Errorf("parsing --to %q: %w", toStr, err)
		}
		title := fmt.Sprintf("Expense report %s to %s", fromStr, toStr)
		return report.Between(from, to), title, nil
	}

	days := p.cfg.Report.WeeklyDays
	title := fmt.Sprintf("Weekly expense report (last %d days)", days)
	if monthly {
		days = p.cfg.Report.MonthlyDays
		title = fmt.Sprintf("Monthly expense report (last %d days)", days)
	}
	return report.LastDays(time.Now(), days), title, nil
}
