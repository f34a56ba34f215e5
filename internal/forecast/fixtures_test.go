package forecast

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/models"
)

// fakeStore serves transactions and adjustments from memory
type fakeStore struct {
	txs         []models.Transaction
	adjustments []models.ManualAdjustment
	txErr       error
	adjErr      error
}

func (f *fakeStore) QueryTransactions(_ context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	if f.txErr != nil {
		return nil, f.txErr
	}
	var out []models.Transaction
	for _, t := range f.txs {
		if t.UserID != userID {
			continue
		}
		if filter.From != nil && t.Date.Before(*filter.From) {
			continue
		}
		if filter.RecurringOnly && !t.IsRecurring() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) ListAdjustments(_ context.Context, userID int64) ([]models.ManualAdjustment, error) {
	if f.adjErr != nil {
		return nil, f.adjErr
	}
	var out []models.ManualAdjustment
	for _, a := range f.adjustments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fixedNow is the clock used by every engine test
var fixedNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func newTestEngine(store *fakeStore) *Engine {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewEngine(store, store, log).WithClock(func() time.Time { return fixedNow })
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func expense(user int64, amount int64, category string, date time.Time) models.Transaction {
	return models.Transaction{
		UserID:   user,
		Amount:   decimal.NewFromInt(amount),
		Type:     models.TransactionExpense,
		Category: category,
		Date:     date,
	}
}

func income(user int64, amount int64, category string, date time.Time) models.Transaction {
	t := expense(user, amount, category, date)
	t.Type = models.TransactionIncome
	return t
}

func fixed(t models.Transaction) models.Transaction {
	t.IsFixed = true
	return t
}

func recurrent(t models.Transaction) models.Transaction {
	t.Recurrence = models.Recurrence{IsRecurrent: true, Frequency: models.FrequencyMonthly}
	return t
}

func assertDec(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
