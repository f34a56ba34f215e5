package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dan9191/finance-service/internal/models"
)

var adjustmentsCmd = &cobra.Command{
	Use:   "adjustments",
	Short: "List a user's manual adjustments",
	RunE:  runAdjustments,
}

func init() {
	rootCmd.AddCommand(adjustmentsCmd)
}

func runAdjustments(cmd *cobra.Command, _ []string) error {
	svc, closeDB, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	list, err := svc.ListAdjustments(cmd.Context(), flagUser)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No adjustments.")
		return nil
	}
	return renderAdjustments(cmd.OutOrStdout(), list)
}

// Months are printed 1-based; storage keeps them 0-based.
func renderAdjustments(w io.Writer, list []models.ManualAdjustment) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMonth\tIncome\tExpense\tDescription")
	for _, a := range list {
		fmt.Fprintf(tw, "%d\t%04d-%02d\t%s\t%s\t%s\n",
			a.ID, a.Year, a.Month+1,
			a.IncomeAdjustment.StringFixed(2),
			a.ExpenseAdjustment.StringFixed(2),
			a.Description,
		)
	}
	return tw.Flush()
}
