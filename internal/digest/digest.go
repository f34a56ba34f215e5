// Package digest periodically mails every user a short forecast.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/models"
)

// UserLister lists the users that receive digests
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Forecaster produces forecasts
type Forecaster interface {
	GenerateForecast(ctx context.Context, userID int64, months int) ([]models.ForecastMonth, error)
}

// Notifier delivers a digest
type Notifier interface {
	SendForecastDigest(to, username string, months []models.ForecastMonth) error
}

// Job sends one digest per user
type Job struct {
	users    UserLister
	forecast Forecaster
	notifier Notifier
	months   int
	timeout  time.Duration
	log      *logrus.Logger
}

// NewJob initializes a digest job
func NewJob(users UserLister, forecast Forecaster, notifier Notifier, months int, log *logrus.Logger) *Job {
	return &Job{
		users:    users,
		forecast: forecast,
		notifier: notifier,
		months:   months,
		timeout:  5 * time.Minute,
		log:      log,
	}
}

// Run sends digests to every user. A failure for one user is logged and
// the run continues; the returned count is the number of digests sent.
func (j *Job) Run(ctx context.Context) (int, error) {
	users, err := j.users.ListUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	sent := 0
	for _, u := range users {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		entry := j.log.WithField("user_id", u.ID)
		months, err := j.forecast.GenerateForecast(ctx, u.ID, j.months)
		if err != nil {
			entry.WithError(err).Warn("Digest forecast failed")
			continue
		}
		if err := j.notifier.SendForecastDigest(u.Email, u.Username, months); err != nil {
			entry.WithError(err).Warn("Digest delivery failed")
			continue
		}
		sent++
	}
	j.log.WithFields(logrus.Fields{"users": len(users), "sent": sent}).Info("Forecast digest run finished")
	return sent, nil
}

// Schedule registers the job on a new cron scheduler using a standard
// five-field spec. The caller starts and stops the scheduler.
func (j *Job) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(j.log)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		if _, err := j.Run(ctx); err != nil {
			j.log.WithError(err).Error("Forecast digest run failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}
	return c, nil
}
