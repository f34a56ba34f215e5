package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dan9191/finance-service/internal/forecast"
	"github.com/Dan9191/finance-service/internal/models"
)

var flagMonths string

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Print a month-by-month forecast for a user",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().StringVarP(&flagMonths, "months", "m", "", "Months to project (1-36, default 6)")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	months, err := forecast.ParseMonths(flagMonths)
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	out, err := svc.GenerateForecast(cmd.Context(), flagUser, months)
	if err != nil {
		return err
	}
	return renderForecast(cmd.OutOrStdout(), out)
}

func renderForecast(w io.Writer, months []models.ForecastMonth) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tIncome\tExpense\tBalance\tAccumulated\tAdjustment\t")
	for _, m := range months {
		note := ""
		if m.Adjustment != nil {
			note = m.Adjustment.Description
		}
		fmt.Fprintf(tw, "%04d-%02d\t%s\t%s\t%s\t%s\t%s\t\n",
			m.Year, m.Month,
			m.TotalIncome.StringFixed(2),
			m.TotalExpense.StringFixed(2),
			m.MonthlyBalance.StringFixed(2),
			m.AccumulatedBalance.StringFixed(2),
			note,
		)
	}
	return tw.Flush()
}
