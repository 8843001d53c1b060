package domain

type CashflowSummary struct {
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	ProfitEstimate   float64 `json:"profitEst"`
	Cash             float64 `json:"cash"`
	Bank             float64 `json:"bank"`
	WagesPctOfIncome float64 `json:"wagesPctOfIncome"`
}

type Dashboard struct {
	Employees      int     `json:"employees"`
	Income         float64 `json:"income"`
	Expense        float64 `json:"expense"`
	ProfitEstimate float64 `json:"profitEst"`
	Cash           float64 `json:"cash"`
	Bank           float64 `json:"bank"`
}
