package domain

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID        int64           `json:"id"`
	Date      string          `json:"date"`
	Type      TransactionType `json:"type"`
	Method    PayMethod       `json:"method"`
	Category  *string         `json:"category"`
	Amount    float64         `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}
