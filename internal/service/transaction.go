package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
)

// TransactionInput carries the fields a caller may set on a new transaction
type TransactionInput struct {
	Amount      decimal.Decimal
	Type        models.TransactionType
	Category    string
	Description string
	IsFixed     bool
	Recurrence  models.Recurrence
	Date        *time.Time
}

// CreateTransaction records a transaction for userID. Categories are stored
// verbatim.
func (s *Service) CreateTransaction(ctx context.Context, userID int64, in TransactionInput) (*models.Transaction, error) {
	if in.Amount.IsNegative() {
		return nil, apperr.Validation("create transaction", "amount must not be negative")
	}
	if !in.Type.Valid() {
		return nil, apperr.Validation("create transaction", "type must be income or expense, got %q", in.Type)
	}
	if !in.Recurrence.Frequency.Valid() {
		return nil, apperr.Validation("create transaction", "unknown frequency %q", in.Recurrence.Frequency)
	}
	if in.Recurrence.IsRecurrent && in.Recurrence.Frequency == "" {
		in.Recurrence.Frequency = models.FrequencyMonthly
	}

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		IsFixed:     in.IsFixed,
		Recurrence:  in.Recurrence,
		Date:        s.now(),
	}
	if in.Date != nil {
		tx.Date = *in.Date
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, apperr.Dependency("create transaction", err)
	}
	s.log.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": tx.ID,
		"type":           tx.Type,
	}).Info("Transaction created")
	return tx, nil
}

// ListTransactions returns the user's transactions, optionally from a date on
func (s *Service) ListTransactions(ctx context.Context, userID int64, from *time.Time) ([]models.Transaction, error) {
	txs, err := s.repo.QueryTransactions(ctx, userID, models.TransactionFilter{From: from})
	if err != nil {
		return nil, apperr.Dependency("list transactions", err)
	}
	return txs, nil
}
