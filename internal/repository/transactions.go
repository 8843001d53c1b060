package repository

import (
	"context"
	"time"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
)

func (r *Repository) CreateTransaction(t *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO transactions (date, type, method, category, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	args := []any{t.Date, t.Type, t.Method, t.Category, t.Amount}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllTransactions() ([]*domain.Transaction, error) {
	query := `
		SELECT id, date, type, method, category, amount, created_at
		FROM transactions ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		t := &domain.Transaction{}
		dst := []any{&t.ID, &t.Date, &t.Type, &t.Method, &t.Category, &t.Amount, &t.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return txs, nil
}
