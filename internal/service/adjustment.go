package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
)

// AdjustmentInput is an upsert request for one month. Month is zero based.
type AdjustmentInput struct {
	Month             int
	Year              int
	IncomeAdjustment  decimal.Decimal
	ExpenseAdjustment decimal.Decimal
	Description       string
}

// ListAdjustments returns the user's adjustments ordered by year then month
func (s *Service) ListAdjustments(ctx context.Context, userID int64) ([]models.ManualAdjustment, error) {
	out, err := s.repo.ListAdjustments(ctx, userID)
	if err != nil {
		return nil, apperr.Dependency("list adjustments", err)
	}
	if out == nil {
		out = []models.ManualAdjustment{}
	}
	return out, nil
}

// UpsertAdjustment stores an adjustment, replacing any existing one for the
// same month and year.
func (s *Service) UpsertAdjustment(ctx context.Context, userID int64, in AdjustmentInput) (*models.ManualAdjustment, error) {
	if in.Month < 0 || in.Month > 11 {
		return nil, apperr.Validation("upsert adjustment", "month must be between 0 and 11, got %d", in.Month)
	}
	if current := s.now().Year(); in.Year < current {
		return nil, apperr.Validation("upsert adjustment", "year must be %d or later, got %d", current, in.Year)
	}

	a := &models.ManualAdjustment{
		UserID:            userID,
		Month:             in.Month,
		Year:              in.Year,
		IncomeAdjustment:  in.IncomeAdjustment,
		ExpenseAdjustment: in.ExpenseAdjustment,
		Description:       in.Description,
	}
	if err := s.repo.UpsertAdjustment(ctx, a); err != nil {
		return nil, apperr.Dependency("upsert adjustment", err)
	}
	s.log.WithFields(logrus.Fields{
		"user_id":       userID,
		"adjustment_id": a.ID,
		"month":         a.Month,
		"year":          a.Year,
	}).Info("Adjustment saved")
	return a, nil
}

// DeleteAdjustment removes an adjustment owned by userID
func (s *Service) DeleteAdjustment(ctx context.Context, userID, id int64) error {
	if err := s.repo.DeleteAdjustment(ctx, userID, id); err != nil {
		return apperr.Dependency("delete adjustment", err)
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "adjustment_id": id}).Info("Adjustment deleted")
	return nil
}
