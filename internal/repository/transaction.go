package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/finance-service/internal/models"
)

const transactionColumns = `id, user_id, amount, type, category, description, is_fixed, is_recurrent, frequency, next_date, occurred_at, created_at`

// CreateTransaction stores a transaction for its user
func (r *Repository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO finance.transactions
			(user_id, amount, type, category, description, is_fixed, is_recurrent, frequency, next_date, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	var frequency sql.NullString
	if tx.Recurrence.Frequency != "" {
		frequency = sql.NullString{String: string(tx.Recurrence.Frequency), Valid: true}
	}
	var nextDate sql.NullTime
	if tx.Recurrence.NextDate != nil {
		nextDate = sql.NullTime{Time: *tx.Recurrence.NextDate, Valid: true}
	}
	err := r.db.QueryRowContext(ctx, query,
		tx.UserID, tx.Amount, string(tx.Type), tx.Category, tx.Description,
		tx.IsFixed, tx.Recurrence.IsRecurrent, frequency, nextDate, tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// QueryTransactions returns the user's transactions ordered by date
func (r *Repository) QueryTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM finance.transactions WHERE user_id = $1`
	args := []any{userID}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if filter.RecurringOnly {
		query += " AND (is_fixed OR is_recurrent)"
	}
	query += " ORDER BY occurred_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var (
			t         models.Transaction
			typ       string
			frequency sql.NullString
			nextDate  sql.NullTime
		)
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &typ, &t.Category, &t.Description,
			&t.IsFixed, &t.Recurrence.IsRecurrent, &frequency, &nextDate, &t.Date, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Type = models.TransactionType(typ)
		t.Recurrence.Frequency = models.Frequency(frequency.String)
		if nextDate.Valid {
			nd := nextDate.Time
			t.Recurrence.NextDate = &nd
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}
