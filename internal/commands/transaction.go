package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func newIncomeCommand() *cobra.Command {
	var auth authFlags
	var amountStr string
	var source string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record an income transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			p, acct, err := auth.open()
			if err != nil {
				return err
			}

			balance, err := p.store.RecordIncome(acct, amount, source)
			if err != nil {
				return err
			}
			p.recordMutation(acct.Username, "income", fmt.Sprintf("amount=%s source=%s", amount, source))
			fmt.Printf("Income recorded. Balance: %s\n", balance.StringFixed(2))
			return nil
		},
	}

	auth.register(cmd)
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to add (required)")
	cmd.Flags().StringVar(&source, "source", "", "income source")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newExpenseCommand() *cobra.Command {
	var auth authFlags
	var amountStr string
	var category string
	var note string

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			p, acct, err := auth.open()
			if err != nil {
				return err
			}

			balance, err := p.store.RecordDebit(acct, amount, model.KindExpense, category, note)
			if err != nil {
				return err
			}
			p.recordMutation(acct.Username, "expense", fmt.Sprintf("amount=%s category=%s", amount, category))
			fmt.Printf("Expense recorded. Balance: %s\n", balance.StringFixed(2))
			return nil
		},
	}

	auth.register(cmd)
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to spend (required)")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&note, "note", "", "short description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newWithdrawCommand() *cobra.Command {
	var auth authFlags
	var amountStr string
	var note string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Record a withdrawal transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			p, acct, err := auth.open()
			if err != nil {
				return err
			}

			balance, err := p.store.RecordDebit(acct, amount, model.KindWithdrawal, note, "")
			if err != nil {
				return err
			}
			p.recordMutation(acct.Username, "withdraw", fmt.Sprintf("amount=%s", amount))
			fmt.Printf("Withdrawal recorded. Balance: %s\n", balance.StringFixed(2))
			return nil
		},
	}

	auth.register(cmd)
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to withdraw (required)")
	cmd.Flags().StringVar(&note, "note", "", "short description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransactionsCommand() *cobra.Command {
	var auth authFlags

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions in append order",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, acct, err := auth.open()
			if err != nil {
				return err
			}

			txs := p.store.Transactions(acct)
			if len(txs) == 0 {
				fmt.Println("No transactions recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tDATE\tTYPE\tLABEL\tAMOUNT")
			for i, tx := range txs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i, tx.Date.Format(ledger.DateFormat), tx.Kind, tx.DisplayLabel(), tx.Signed().StringFixed(2))
			}
			return w.Flush()
		},
	}

	auth.register(cmd)

	return cmd
}

func newDeleteCommand() *cobra.Command {
	var auth authFlags
	var index int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a transaction by index, reversing its balance effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, acct, err := auth.open()
			if err != nil {
				return err
			}

			if err := p.store.DeleteTransaction(acct, index); err != nil {
				return err
			}
			p.recordMutation(acct.Username, "delete", fmt.Sprintf("index=%d", index))
			fmt.Printf("Transaction %d deleted. Balance: %s\n", index, acct.Balance.StringFixed(2))
			return nil
		},
	}

	auth.register(cmd)
	cmd.Flags().IntVar(&index, "index", 0, "transaction index from the transactions list (required)")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}

// parseAmount parses a decimal flag value. Range checks (positive, covered
// by the balance) belong to the store; this only rejects non-numbers.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}
