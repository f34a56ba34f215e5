// Package export renders forecasts into document formats.
package export

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/models"
)

// ForecastXML renders a forecast as an indented XML document
func ForecastXML(userID int64, months []models.ForecastMonth) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("forecast")
	root.CreateAttr("user", strconv.FormatInt(userID, 10))
	root.CreateAttr("months", strconv.Itoa(len(months)))

	for _, m := range months {
		el := root.CreateElement("month")
		el.CreateAttr("year", strconv.Itoa(m.Year))
		el.CreateAttr("month", strconv.Itoa(m.Month))
		el.CreateAttr("date", m.Date.Format("2006-01-02"))

		inc := el.CreateElement("income")
		inc.CreateAttr("fixed", m.FixedIncome.String())
		inc.CreateAttr("variable", m.VariableIncome.String())
		inc.CreateAttr("adjustment", m.IncomeAdjustment.String())
		inc.CreateAttr("total", m.TotalIncome.String())
		writeBreakdown(inc, m.IncomeBreakdown)

		exp := el.CreateElement("expense")
		exp.CreateAttr("fixed", m.FixedExpense.String())
		exp.CreateAttr("variable", m.VariableExpense.String())
		exp.CreateAttr("adjustment", m.ExpenseAdjustment.String())
		exp.CreateAttr("total", m.TotalExpense.String())
		writeBreakdown(exp, m.ExpenseBreakdown)

		bal := el.CreateElement("balance")
		bal.CreateAttr("monthly", m.MonthlyBalance.String())
		bal.CreateAttr("accumulated", m.AccumulatedBalance.String())

		if m.Adjustment != nil {
			adj := el.CreateElement("adjustment")
			adj.CreateAttr("id", strconv.FormatInt(m.Adjustment.ID, 10))
			adj.SetText(m.Adjustment.Description)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render forecast XML: %w", err)
	}
	return out, nil
}

// writeBreakdown emits categories in name order so output is stable
func writeBreakdown(parent *etree.Element, breakdown map[string]decimal.Decimal) {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := parent.CreateElement("category")
		c.CreateAttr("name", name)
		c.CreateAttr("amount", breakdown[name].String())
	}
}
