package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/middleware"
	"github.com/Dan9191/finance-service/internal/models"
)

// memStore is an in-memory Store with the same upsert and ownership rules
// as the PostgreSQL repository.
type memStore struct {
	mu          sync.Mutex
	users       []models.User
	txs         []models.Transaction
	adjustments map[int64]*models.ManualAdjustment
	nextID      int64
	err         error
}

func newMemStore() *memStore {
	return &memStore{adjustments: make(map[int64]*models.ManualAdjustment)}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	u.ID = m.id()
	m.users = append(m.users, *u)
	return nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("find user", "user")
}

func (m *memStore) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	tx.ID = m.id()
	m.txs = append(m.txs, *tx)
	return nil
}

func (m *memStore) QueryTransactions(_ context.Context, userID int64, f models.TransactionFilter) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Transaction
	for _, t := range m.txs {
		if t.UserID != userID || (f.From != nil && t.Date.Before(*f.From)) || (f.RecurringOnly && !t.IsRecurring()) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memStore) ListAdjustments(_ context.Context, userID int64) ([]models.ManualAdjustment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.ManualAdjustment
	for _, a := range m.adjustments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

func (m *memStore) UpsertAdjustment(_ context.Context, a *models.ManualAdjustment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.adjustments {
		if existing.UserID == a.UserID && existing.Month == a.Month && existing.Year == a.Year {
			a.ID = existing.ID
			stored := *a
			m.adjustments[a.ID] = &stored
			return nil
		}
	}
	a.ID = m.id()
	stored := *a
	m.adjustments[a.ID] = &stored
	return nil
}

func (m *memStore) DeleteAdjustment(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	a, ok := m.adjustments[id]
	if !ok || a.UserID != userID {
		return apperr.NotFound("delete adjustment", "adjustment")
	}
	delete(m.adjustments, id)
	return nil
}

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func newTestService(store *memStore) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewService(store, log, cfg).WithClock(func() time.Time { return testNow })
}

func TestUpsertAdjustmentReplacesSameMonth(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.UpsertAdjustment(ctx, 1, AdjustmentInput{Month: 10, Year: 2026, ExpenseAdjustment: decimal.NewFromInt(-100), Description: "first"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := svc.UpsertAdjustment(ctx, 1, AdjustmentInput{Month: 10, Year: 2026, IncomeAdjustment: decimal.NewFromInt(50), ExpenseAdjustment: decimal.NewFromInt(-200), Description: "second"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("upsert created a new id: %d then %d", first.ID, second.ID)
	}

	list, err := svc.ListAdjustments(ctx, 1)
	if err != nil {
		t.Fatalf("ListAdjustments: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	got := list[0]
	if got.Description != "second" || !got.ExpenseAdjustment.Equal(decimal.NewFromInt(-200)) || !got.IncomeAdjustment.Equal(decimal.NewFromInt(50)) {
		t.Errorf("stored adjustment = %+v", got)
	}
}

func TestListAdjustmentsOrderedAndNeverNil(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	empty, err := svc.ListAdjustments(ctx, 1)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("ListAdjustments on empty store = %v, %v", empty, err)
	}

	for _, in := range []AdjustmentInput{{Month: 2, Year: 2027}, {Month: 11, Year: 2026}, {Month: 0, Year: 2027}} {
		if _, err := svc.UpsertAdjustment(ctx, 1, in); err != nil {
			t.Fatalf("upsert %+v: %v", in, err)
		}
	}
	list, _ := svc.ListAdjustments(ctx, 1)
	want := [][2]int{{2026, 11}, {2027, 0}, {2027, 2}}
	for i, a := range list {
		if a.Year != want[i][0] || a.Month != want[i][1] {
			t.Errorf("list[%d] = %d/%d, want %d/%d", i, a.Year, a.Month, want[i][0], want[i][1])
		}
	}
}

func TestUpsertAdjustmentValidation(t *testing.T) {
	svc := newTestService(newMemStore())
	tests := []AdjustmentInput{
		{Month: -1, Year: 2026},
		{Month: 12, Year: 2026},
		{Month: 5, Year: 2025},
	}
	for _, in := range tests {
		if _, err := svc.UpsertAdjustment(context.Background(), 1, in); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("UpsertAdjustment(%+v) err = %v, want validation error", in, err)
		}
	}
	// past month of the current year is accepted
	if _, err := svc.UpsertAdjustment(context.Background(), 1, AdjustmentInput{Month: 0, Year: 2026}); err != nil {
		t.Errorf("January of current year rejected: %v", err)
	}
}

func TestDeleteForeignAdjustmentIsNotFound(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	owned, err := svc.UpsertAdjustment(ctx, 1, AdjustmentInput{Month: 10, Year: 2026, Description: "owner"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.DeleteAdjustment(ctx, 2, owned.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign delete err = %v, want not found", err)
	}
	list, _ := svc.ListAdjustments(ctx, 1)
	if len(list) != 1 {
		t.Fatalf("owner lost the adjustment: %v", list)
	}
	if err := svc.DeleteAdjustment(ctx, 1, 999); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("missing delete err = %v, want not found", err)
	}
	if err := svc.DeleteAdjustment(ctx, 1, owned.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestStoreFailureIsDependencyError(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("connection refused")
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.ListAdjustments(ctx, 1); !errors.Is(err, apperr.ErrDependency) {
		t.Errorf("ListAdjustments err = %v", err)
	}
	if _, err := svc.GenerateForecast(ctx, 1, 6); !errors.Is(err, apperr.ErrDependency) {
		t.Errorf("GenerateForecast err = %v", err)
	}
	if err := svc.DeleteAdjustment(ctx, 1, 1); !errors.Is(err, apperr.ErrDependency) {
		t.Errorf("DeleteAdjustment err = %v", err)
	}
}

func TestForecastUsesStoredAdjustments(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	rent := day(2026, 1, 5)
	if _, err := svc.CreateTransaction(ctx, 1, TransactionInput{Amount: decimal.NewFromInt(1000), Type: models.TransactionExpense, Category: "Rent", IsFixed: true, Date: &rent}); err != nil {
		t.Fatalf("create rent: %v", err)
	}
	for i, amount := range []int64{100, 150, 200} {
		d := day(2026, time.Month(7+i), 20)
		if _, err := svc.CreateTransaction(ctx, 1, TransactionInput{Amount: decimal.NewFromInt(amount), Type: models.TransactionExpense, Category: "Food", Date: &d}); err != nil {
			t.Fatalf("create food: %v", err)
		}
	}
	if _, err := svc.UpsertAdjustment(ctx, 1, AdjustmentInput{Month: 10, Year: 2026, ExpenseAdjustment: decimal.NewFromInt(-200), Description: "Rent negotiated down"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	months, err := svc.GenerateForecast(ctx, 1, 1)
	if err != nil {
		t.Fatalf("GenerateForecast: %v", err)
	}
	if !months[0].TotalExpense.Equal(decimal.NewFromInt(950)) {
		t.Errorf("TotalExpense = %s, want 950", months[0].TotalExpense)
	}
	if months[0].Adjustment == nil || months[0].Adjustment.Description != "Rent negotiated down" {
		t.Errorf("Adjustment = %+v", months[0].Adjustment)
	}

	if _, err := svc.GenerateForecast(ctx, 1, 37); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("GenerateForecast(37) err = %v, want validation", err)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	svc := newTestService(newMemStore())
	tests := []TransactionInput{
		{Amount: decimal.NewFromInt(-1), Type: models.TransactionExpense},
		{Amount: decimal.NewFromInt(1), Type: "transfer"},
		{Amount: decimal.NewFromInt(1), Type: models.TransactionIncome, Recurrence: models.Recurrence{IsRecurrent: true, Frequency: "daily"}},
	}
	for _, in := range tests {
		if _, err := svc.CreateTransaction(context.Background(), 1, in); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("CreateTransaction(%+v) err = %v, want validation", in, err)
		}
	}

	tx, err := svc.CreateTransaction(context.Background(), 1, TransactionInput{
		Amount:     decimal.NewFromInt(15),
		Type:       models.TransactionExpense,
		Category:   "Streaming",
		Recurrence: models.Recurrence{IsRecurrent: true},
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if tx.Recurrence.Frequency != models.FrequencyMonthly || !tx.Date.Equal(testNow) {
		t.Errorf("defaults not applied: %+v", tx)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(newMemStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "Alice@Example.com", "correct horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatal("password stored in clear text")
	}

	if _, err := svc.Login(ctx, "alice@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password err = %v", err)
	}
	if _, err := svc.Login(ctx, "bob@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with unknown email err = %v", err)
	}

	token, err := svc.Login(ctx, "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	// token is signed at testNow and valid for an hour, so only its shape
	// can be checked against the wall clock
	if token == "" {
		t.Fatal("empty token")
	}
	if _, err := middleware.ParseToken(token, "other-secret"); err == nil {
		t.Error("token verified with the wrong secret")
	}

	if _, err := svc.Register(ctx, "", "x@example.com", "longenough"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("Register without username err = %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "not-an-email", "longenough"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("Register with bad email err = %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "bob@example.com", "short"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("Register with short password err = %v", err)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}
