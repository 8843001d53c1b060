package payroll

import (
	"fmt"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/money"
	"github.com/smallbiz-dev/business-manager/backend/internal/taxsuper"
	"github.com/smallbiz-dev/business-manager/backend/internal/worktime"
)

// Calculate builds one pay line per employee who worked an assigned shift inside [periodStart, periodEnd].
// Lines come out in the order each employee is first met in shifts.
func Calculate(
	employees []*domain.Employee,
	shifts []*domain.Shift,
	rule domain.TaxSuperRule,
	periodStart, periodEnd string,
	defaultPayMethod domain.PayMethod,
) ([]domain.PayLine, error) {
	employeeMap := make(map[int64]*domain.Employee, len(employees))
	for _, e := range employees {
		employeeMap[e.ID] = e
	}

	order := make([]int64, 0)
	hoursMap := make(map[int64]float64)

	for _, shift := range shifts {
		employeeID, ok := shift.EmployeeID.EmployeeID()
		if !ok {
			continue
		}

		inPeriod, err := worktime.WithinPeriod(shift.Day, periodStart, periodEnd)
		if err != nil {
			return nil, fmt.Errorf("shift %d: %w", shift.ID, err)
		}
		if !inPeriod {
			continue
		}

		hours, err := worktime.HoursBetween(shift.Start, shift.End)
		if err != nil {
			return nil, fmt.Errorf("shift %d: %w", shift.ID, err)
		}

		if _, exists := hoursMap[employeeID]; !exists {
			order = append(order, employeeID)
		}
		hoursMap[employeeID] += hours
	}

	lines := make([]domain.PayLine, 0, len(order))
	for _, employeeID := range order {
		emp, exists := employeeMap[employeeID]
		if !exists {
			return nil, fmt.Errorf("%w: shift references unknown employee %d", domain.ErrInvariantViolation, employeeID)
		}

		hours := hoursMap[employeeID]
		// gross is rounded before tax and super are taken from it
		gross := money.Round2(hours * emp.HourlyRate)
		tax := taxsuper.ComputeTax(emp, gross, hours, rule)
		super := taxsuper.ComputeSuper(gross, rule)

		lines = append(lines, domain.PayLine{
			EmployeeID: employeeID,
			Hours:      hours,
			Gross:      gross,
			Tax:        tax,
			Super:      super,
			Net:        money.Round2(gross - tax),
			PayMethod:  EffectivePayMethod(emp, defaultPayMethod),
		})
	}

	return lines, nil
}

// EffectivePayMethod is the employee's own preference, except for ABN contractors who follow the period default.
func EffectivePayMethod(emp *domain.Employee, defaultPayMethod domain.PayMethod) domain.PayMethod {
	if emp.EmploymentType == domain.EmploymentABN {
		return defaultPayMethod
	}
	return emp.PayPreference
}
