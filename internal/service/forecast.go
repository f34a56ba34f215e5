package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/models"
)

// GenerateForecast projects months future months for userID
func (s *Service) GenerateForecast(ctx context.Context, userID int64, months int) ([]models.ForecastMonth, error) {
	out, err := s.engine.Generate(ctx, userID, months)
	if err != nil {
		s.log.WithFields(logrus.Fields{"user_id": userID, "months": months}).WithError(err).Warn("Forecast failed")
		return nil, err
	}
	return out, nil
}

// MonthlyStats returns realized income and expense for the current month
func (s *Service) MonthlyStats(ctx context.Context, userID int64) (models.IncomeExpenseStats, error) {
	return s.engine.CurrentMonth(ctx, userID)
}

// CategoryStats buckets the user's transactions per category. A nil from
// uses the forecast's averaging window.
func (s *Service) CategoryStats(ctx context.Context, userID int64, from *time.Time) ([]models.CategoryBucket, error) {
	start := s.engine.HistoryStart()
	if from != nil {
		start = *from
	}
	return s.engine.Categories(ctx, userID, start)
}
