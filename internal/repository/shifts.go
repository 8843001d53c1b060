package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
)

func assignmentArg(a domain.Assignment) any {
	id, ok := a.EmployeeID()
	if !ok {
		return nil
	}
	return id
}

func assignmentFrom(id sql.NullInt64) domain.Assignment {
	if !id.Valid {
		return domain.Unassigned()
	}
	return domain.AssignedTo(id.Int64)
}

func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shifts (employee_id, day, start_time, end_time, role, expected_busyness, max_shift_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	args := []any{assignmentArg(shift.EmployeeID), shift.Day, shift.Start, shift.End, shift.Role, shift.ExpectedBusyness, shift.MaxShiftHours}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetAllShifts returns shifts in creation order, which is the order the roster heuristic fills them in.
func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	query := `
		SELECT id, employee_id, day, start_time, end_time, role, expected_busyness, max_shift_hours, created_at
		FROM shifts ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift := &domain.Shift{}
		var employeeID sql.NullInt64

		dst := []any{&shift.ID, &employeeID, &shift.Day, &shift.Start, &shift.End, &shift.Role, &shift.ExpectedBusyness, &shift.MaxShiftHours, &shift.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		shift.EmployeeID = assignmentFrom(employeeID)
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// AssignShifts writes the employee of every given shift in a single transaction.
func (r *Repository) AssignShifts(shifts []*domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `UPDATE shifts SET employee_id = $1 WHERE id = $2`
	for _, shift := range shifts {
		if _, err := tx.ExecContext(ctx, query, assignmentArg(shift.EmployeeID), shift.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
