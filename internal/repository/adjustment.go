package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
)

// ListAdjustments returns the user's manual adjustments ordered by year and month
func (r *Repository) ListAdjustments(ctx context.Context, userID int64) ([]models.ManualAdjustment, error) {
	query := `
		SELECT id, user_id, month, year, income_adjustment, expense_adjustment, description, created_at, updated_at
		FROM finance.manual_adjustments
		WHERE user_id = $1
		ORDER BY year, month`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var out []models.ManualAdjustment
	for rows.Next() {
		var a models.ManualAdjustment
		err := rows.Scan(&a.ID, &a.UserID, &a.Month, &a.Year, &a.IncomeAdjustment, &a.ExpenseAdjustment,
			&a.Description, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustments: %w", err)
	}
	return out, nil
}

// UpsertAdjustment inserts an adjustment or replaces the one stored for the
// same user, month and year.
func (r *Repository) UpsertAdjustment(ctx context.Context, a *models.ManualAdjustment) error {
	query := `
		INSERT INTO finance.manual_adjustments
			(user_id, month, year, income_adjustment, expense_adjustment, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, month, year) DO UPDATE SET
			income_adjustment = EXCLUDED.income_adjustment,
			expense_adjustment = EXCLUDED.expense_adjustment,
			description = EXCLUDED.description,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		a.UserID, a.Month, a.Year, a.IncomeAdjustment, a.ExpenseAdjustment, a.Description,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert adjustment: %w", err)
	}
	return nil
}

// DeleteAdjustment removes an adjustment owned by userID
func (r *Repository) DeleteAdjustment(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM finance.manual_adjustments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("delete adjustment", "adjustment")
	}
	return nil
}
