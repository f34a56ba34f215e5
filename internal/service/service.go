package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/forecast"
	"github.com/Dan9191/finance-service/internal/models"
)

// Store is the persistence the service depends on
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	QueryTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error)

	ListAdjustments(ctx context.Context, userID int64) ([]models.ManualAdjustment, error)
	UpsertAdjustment(ctx context.Context, a *models.ManualAdjustment) error
	DeleteAdjustment(ctx context.Context, userID, id int64) error
}

// Service handles business logic
type Service struct {
	repo   Store
	engine *forecast.Engine
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewService initializes a new service
func NewService(repo Store, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		engine: forecast.NewEngine(repo, repo, log),
		log:    log,
		config: cfg,
		now:    time.Now,
	}
}

// WithClock replaces the time source of the service and its engine
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.engine.WithClock(now)
	return s
}
