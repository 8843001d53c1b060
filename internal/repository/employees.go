package repository

import (
	"context"
	"time"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
)

func (r *Repository) CreateEmployee(emp *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (name, email, employment_type, tfn, abn, hourly_rate, role, max_hours_week, pay_preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	args := []any{emp.Name, emp.Email, emp.EmploymentType, emp.TFN, emp.ABN, emp.HourlyRate, emp.Role, emp.MaxHoursWeek, emp.PayPreference}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&emp.ID, &emp.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT name, email, employment_type, tfn, abn, hourly_rate, role, max_hours_week, pay_preference, created_at
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	emp := &domain.Employee{
		ID: id,
	}

	dst := []any{&emp.Name, &emp.Email, &emp.EmploymentType, &emp.TFN, &emp.ABN, &emp.HourlyRate, &emp.Role, &emp.MaxHoursWeek, &emp.PayPreference, &emp.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return emp, nil
}

// GetAllEmployees returns employees in creation order; the roster heuristic breaks rate ties on it.
func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, name, email, employment_type, tfn, abn, hourly_rate, role, max_hours_week, pay_preference, created_at
		FROM employees ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		emp := &domain.Employee{}
		dst := []any{&emp.ID, &emp.Name, &emp.Email, &emp.EmploymentType, &emp.TFN, &emp.ABN, &emp.HourlyRate, &emp.Role, &emp.MaxHoursWeek, &emp.PayPreference, &emp.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) CountEmployees() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM employees`
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
