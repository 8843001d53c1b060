package cashflow

import (
	"strings"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/money"
)

const wagesCategory = "wages"

type totals struct {
	income  float64
	expense float64
	bank    float64
	cash    float64
	wages   float64
}

func sum(txs []*domain.Transaction) totals {
	var t totals
	for _, tx := range txs {
		switch tx.Type {
		case domain.TransactionIncome:
			t.income += tx.Amount
		case domain.TransactionExpense:
			t.expense += tx.Amount
		}

		switch tx.Method {
		case domain.PayMethodBank:
			t.bank += tx.Amount
		case domain.PayMethodCash:
			t.cash += tx.Amount
		}

		if tx.Category != nil && strings.ToLower(*tx.Category) == wagesCategory {
			t.wages += tx.Amount
		}
	}
	return t
}

// Summarize reduces the recorded transactions to the cashflow figures.
// Wages are taken as a percentage of income, and are 0 when there is no income.
func Summarize(txs []*domain.Transaction) domain.CashflowSummary {
	t := sum(txs)

	wagesPct := 0.0
	if t.income > 0 {
		wagesPct = t.wages / t.income * 100
	}

	return domain.CashflowSummary{
		Income:           money.Round2(t.income),
		Expense:          money.Round2(t.expense),
		ProfitEstimate:   money.Round2(t.income - t.expense),
		Cash:             money.Round2(t.cash),
		Bank:             money.Round2(t.bank),
		WagesPctOfIncome: money.Round2(wagesPct),
	}
}

func Dashboard(employeeCount int, txs []*domain.Transaction) domain.Dashboard {
	t := sum(txs)

	return domain.Dashboard{
		Employees:      employeeCount,
		Income:         money.Round2(t.income),
		Expense:        money.Round2(t.expense),
		ProfitEstimate: money.Round2(t.income - t.expense),
		Cash:           money.Round2(t.cash),
		Bank:           money.Round2(t.bank),
	}
}
