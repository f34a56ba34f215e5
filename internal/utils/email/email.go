package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/forecast"
	"github.com/Dan9191/finance-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// DigestSubject returns the subject line for a forecast digest
func DigestSubject(months []models.ForecastMonth) string {
	if FirstNegative(months) != nil {
		return "Forecast warning: balance projected below zero"
	}
	return "Your monthly forecast"
}

// FirstNegative returns the first month whose accumulated balance is negative
func FirstNegative(months []models.ForecastMonth) *models.ForecastMonth {
	for i := range months {
		if months[i].AccumulatedBalance.IsNegative() {
			return &months[i]
		}
	}
	return nil
}

// DigestBody formats a forecast digest as plain text
func DigestBody(username string, months []models.ForecastMonth) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", username)
	fmt.Fprintf(&b, "Here is your forecast for the next %d month(s):\n\n", len(months))
	for _, m := range months {
		fmt.Fprintf(&b, "%04d-%02d  income %s  expense %s  balance %s  accumulated %s\n",
			m.Year, m.Month,
			m.TotalIncome.StringFixed(2), m.TotalExpense.StringFixed(2),
			m.MonthlyBalance.StringFixed(2), m.AccumulatedBalance.StringFixed(2))
		if m.Adjustment != nil && m.Adjustment.Description != "" {
			fmt.Fprintf(&b, "         adjusted: %s\n", m.Adjustment.Description)
		}
	}
	if len(months) > 0 {
		first := months[0]
		if top := forecast.TopCategories(first.ExpenseBreakdown, first.TotalExpense, 3); len(top) > 0 {
			b.WriteString("\nLargest expected expenses:\n")
			for _, c := range top {
				fmt.Fprintf(&b, "  %s  %s (%s%%)\n", c.Category, c.Amount.StringFixed(2), c.Percent.StringFixed(2))
			}
		}
	}
	if neg := FirstNegative(months); neg != nil {
		fmt.Fprintf(&b, "\nYour accumulated balance is projected to drop below zero in %04d-%02d (%s).\n",
			neg.Year, neg.Month, neg.AccumulatedBalance.StringFixed(2))
	}
	b.WriteString("\nBest regards,\nFinance Service")
	return b.String()
}

// SendForecastDigest sends a forecast summary email
func (s *Sender) SendForecastDigest(to, username string, months []models.ForecastMonth) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = DigestSubject(months)
	e.Text = []byte(DigestBody(username, months))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send forecast digest to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
