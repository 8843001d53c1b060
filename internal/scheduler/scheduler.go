package scheduler

import (
	"fmt"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/money"
)

type Scheduler struct {
	rule        domain.TaxSuperRule
	employees   []*domain.Employee // candidate order matters for tie-breaking
	shifts      []*domain.Shift
	employeeMap map[int64]*domain.Employee
}

func New(employees []*domain.Employee, shifts []*domain.Shift, rule domain.TaxSuperRule) *Scheduler {
	s := &Scheduler{
		rule:        rule,
		employees:   employees,
		shifts:      shifts,
		employeeMap: make(map[int64]*domain.Employee, len(employees)),
	}

	for _, e := range employees {
		s.employeeMap[e.ID] = e
	}

	return s
}

// Generate fills unassigned shifts in place and prices the resulting roster.
func Generate(employees []*domain.Employee, shifts []*domain.Shift, rule domain.TaxSuperRule) (*domain.RosterResult, error) {
	return New(employees, shifts, rule).Schedule()
}

func (s *Scheduler) Schedule() (*domain.RosterResult, error) {
	assigned := s.fillUnassigned()

	loads, err := s.workloads()
	if err != nil {
		return nil, err
	}

	var c costs
	for _, load := range loads {
		if load.hours <= 0 {
			continue
		}

		emp, exists := s.employeeMap[load.employeeID]
		if !exists {
			return nil, fmt.Errorf("%w: shift references unknown employee %d", domain.ErrInvariantViolation, load.employeeID)
		}

		s.addCosts(&c, emp, load.hours)
	}

	return &domain.RosterResult{
		Shifts:   s.shifts,
		Assigned: assigned,
		Totals: domain.RosterTotals{
			EmployeeCost: money.Round2(c.employee),
			TaxCost:      money.Round2(c.tax),
			SuperCost:    money.Round2(c.super),
			CashCost:     money.Round2(c.cash),
		},
	}, nil
}
