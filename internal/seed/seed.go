// Package seed loads employee rosters exported from spreadsheets.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/repository"
	"github.com/smallbiz-dev/business-manager/backend/internal/utils"
)

var requiredColumns = []string{"name", "employment_type", "hourly_rate"}

var ErrMissingColumn = errors.New("missing csv column")

func optional(record map[string]string, key string) *string {
	v := strings.TrimSpace(record[key])
	if v == "" {
		return nil
	}
	return &v
}

func parseRecord(record map[string]string) (*domain.Employee, error) {
	emp := &domain.Employee{
		Name:           strings.TrimSpace(record["name"]),
		Email:          optional(record, "email"),
		EmploymentType: domain.EmploymentType(strings.ToUpper(strings.TrimSpace(record["employment_type"]))),
		TFN:            utils.CompactTaxNumber(optional(record, "tfn")),
		ABN:            utils.CompactTaxNumber(optional(record, "abn")),
		Role:           optional(record, "role"),
		PayPreference:  domain.PayMethodBank,
	}

	if emp.Name == "" {
		return nil, errors.New("empty name")
	}

	switch emp.EmploymentType {
	case domain.EmploymentTFN, domain.EmploymentABN, domain.EmploymentIntStudent:
	default:
		return nil, fmt.Errorf("unknown employment type %q", emp.EmploymentType)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(record["hourly_rate"]), 64)
	if err != nil {
		return nil, fmt.Errorf("hourly_rate: %w", err)
	}
	emp.HourlyRate = rate

	if v := optional(record, "max_hours_week"); v != nil {
		hours, err := strconv.ParseFloat(*v, 64)
		if err != nil {
			return nil, fmt.Errorf("max_hours_week: %w", err)
		}
		emp.MaxHoursWeek = &hours
	}

	switch pref := domain.PayMethod(strings.ToLower(strings.TrimSpace(record["pay_preference"]))); pref {
	case "":
	case domain.PayMethodBank, domain.PayMethodCash:
		emp.PayPreference = pref
	default:
		return nil, fmt.Errorf("unknown pay preference %q", pref)
	}

	emp.Onboard()
	return emp, nil
}

// ParseEmployeesCSV reads employees from a headed csv. Columns are matched by name, so order does not matter.
// The first malformed row stops parsing; its error carries the csv line number.
func ParseEmployeesCSV(r io.Reader) ([]*domain.Employee, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}
	for _, col := range requiredColumns {
		if !slices.Contains(headers, col) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	employees := make([]*domain.Employee, 0)
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		record := make(map[string]string, len(headers))
		for i, value := range row {
			if i < len(headers) {
				record[headers[i]] = value
			}
		}

		emp, err := parseRecord(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// ImportEmployees inserts every employee in the csv at path and returns how many were stored.
// Rows the database rejects are logged and skipped.
func ImportEmployees(r *repository.Repository, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	employees, err := ParseEmployeesCSV(file)
	if err != nil {
		return 0, err
	}

	cnt := 0
	for _, emp := range employees {
		if err := r.CreateEmployee(emp); err != nil {
			slog.Error("failed to insert employee", "name", emp.Name, "error", err)
			continue
		}
		cnt++
	}

	return cnt, nil
}
