package repository

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/smallbiz-dev/business-manager/backend/internal/config"
	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/taxsuper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// newTestRepository connects to a throwaway database and empties every table.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := &config.Config{}
	cfg.Database.DSN = dbURL
	cfg.Database.QueryTimeout = 10
	cfg.Database.TransactionTimeout = 20

	dbpool, err := sql.Open("pgx", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbpool.Close() })

	repo := NewRepository(cfg, dbpool)
	require.NoError(t, repo.Migrate())
	require.NoError(t, repo.Migrate(), "migrations must be idempotent")

	_, err = dbpool.Exec(`TRUNCATE shifts, employees, transactions, tax_super_rules RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return repo
}

func TestEmployees(t *testing.T) {
	repo := newTestRepository(t)

	email := "olivia@example.com"
	role := "barista"
	olivia := &domain.Employee{
		Name:           "Olivia Smith",
		Email:          &email,
		EmploymentType: domain.EmploymentTFN,
		HourlyRate:     28.5,
		Role:           &role,
		PayPreference:  domain.PayMethodCash,
	}
	require.NoError(t, repo.CreateEmployee(olivia))
	assert.NotZero(t, olivia.ID)
	assert.False(t, olivia.CreatedAt.IsZero())

	jack := &domain.Employee{Name: "Jack Jones", EmploymentType: domain.EmploymentABN, HourlyRate: 45, PayPreference: domain.PayMethodBank}
	require.NoError(t, repo.CreateEmployee(jack))

	got, err := repo.GetEmployeeByID(olivia.ID)
	require.NoError(t, err)
	assert.Equal(t, "Olivia Smith", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)
	assert.True(t, got.HasRole("barista"))
	assert.Nil(t, got.MaxHoursWeek)

	_, err = repo.GetEmployeeByID(9999)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	all, err := repo.GetAllEmployees()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, olivia.ID, all[0].ID)

	count, err := repo.CountEmployees()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestShiftsAndAssignment(t *testing.T) {
	repo := newTestRepository(t)

	emp := &domain.Employee{Name: "Mia Chen", EmploymentType: domain.EmploymentIntStudent, HourlyRate: 26, PayPreference: domain.PayMethodBank}
	require.NoError(t, repo.CreateEmployee(emp))

	open := &domain.Shift{EmployeeID: domain.Unassigned(), Day: "2024-06-03", Start: "09:00", End: "17:00", ExpectedBusyness: domain.BusynessHigh}
	taken := &domain.Shift{EmployeeID: domain.AssignedTo(emp.ID), Day: "2024-06-04", Start: "22:00", End: "02:00", ExpectedBusyness: domain.BusynessLow}
	require.NoError(t, repo.CreateShift(open))
	require.NoError(t, repo.CreateShift(taken))

	orphan := &domain.Shift{EmployeeID: domain.AssignedTo(9999), Day: "2024-06-05", Start: "09:00", End: "10:00", ExpectedBusyness: domain.BusynessMed}
	assert.Error(t, repo.CreateShift(orphan))

	shifts, err := repo.GetAllShifts()
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.False(t, shifts[0].EmployeeID.IsAssigned())
	id, ok := shifts[1].EmployeeID.EmployeeID()
	assert.True(t, ok)
	assert.Equal(t, emp.ID, id)

	open.EmployeeID = domain.AssignedTo(emp.ID)
	require.NoError(t, repo.AssignShifts([]*domain.Shift{open}))

	shifts, err = repo.GetAllShifts()
	require.NoError(t, err)
	assert.True(t, shifts[0].EmployeeID.IsAssigned())
}

func TestTransactions(t *testing.T) {
	repo := newTestRepository(t)

	wages := "wages"
	require.NoError(t, repo.CreateTransaction(&domain.Transaction{Date: "2024-06-01", Type: domain.TransactionIncome, Method: domain.PayMethodBank, Amount: 100}))
	require.NoError(t, repo.CreateTransaction(&domain.Transaction{Date: "2024-06-02", Type: domain.TransactionExpense, Method: domain.PayMethodCash, Category: &wages, Amount: 30}))

	txs, err := repo.GetAllTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Nil(t, txs[0].Category)
	require.NotNil(t, txs[1].Category)
	assert.Equal(t, "wages", *txs[1].Category)
}

func TestTaxSuperRule(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetTaxSuperRule()
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	require.NoError(t, repo.EnsureTaxSuperRule(taxsuper.Default()))
	require.NoError(t, repo.EnsureTaxSuperRule(taxsuper.Default()), "a second bootstrap is a no-op")

	rule, err := repo.GetTaxSuperRule()
	require.NoError(t, err)
	assert.Equal(t, 0.115, rule.SuperRate)
	assert.Equal(t, 24.0, rule.IntStudentWeeklyCap)

	stale := *rule

	rate := 0.12
	updated := taxsuper.Merge(*rule, domain.TaxSuperRuleUpdate{SuperRate: &rate})
	require.NoError(t, repo.UpdateTaxSuperRule(&updated))
	assert.Equal(t, rule.Version+1, updated.Version)

	rule, err = repo.GetTaxSuperRule()
	require.NoError(t, err)
	assert.Equal(t, 0.12, rule.SuperRate)
	assert.Equal(t, 500.0, rule.Bracket1Max)

	err = repo.UpdateTaxSuperRule(&stale)
	assert.True(t, errors.Is(err, sql.ErrNoRows), "an update from a stale version is refused")
}
