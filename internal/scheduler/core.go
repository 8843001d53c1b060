package scheduler

import (
	"fmt"
	"slices"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/taxsuper"
	"github.com/smallbiz-dev/business-manager/backend/internal/worktime"
)

func (s *Scheduler) candidates(shift *domain.Shift) []*domain.Employee {
	candidates := make([]*domain.Employee, 0)
	for _, e := range s.employees {
		if canWork(e, shift) {
			candidates = append(candidates, e)
		}
	}
	return candidates
}

// cheapest returns the lowest hourly rate; on a tie the earliest candidate wins.
func cheapest(candidates []*domain.Employee) *domain.Employee {
	return slices.MinFunc(candidates, func(a, b *domain.Employee) int {
		switch {
		case a.HourlyRate < b.HourlyRate:
			return -1
		case a.HourlyRate > b.HourlyRate:
			return 1
		default:
			return 0
		}
	})
}

// fillUnassigned greedily assigns every open shift, in shift order, and returns the ones it filled.
func (s *Scheduler) fillUnassigned() []*domain.Shift {
	assigned := make([]*domain.Shift, 0)

	for _, shift := range s.shifts {
		if shift.EmployeeID.IsAssigned() {
			continue
		}

		candidates := s.candidates(shift)
		if len(candidates) == 0 {
			// nobody holds the role, leave it open
			continue
		}

		chosen := cheapest(candidates)
		shift.EmployeeID = domain.AssignedTo(chosen.ID)
		assigned = append(assigned, shift)
	}

	return assigned
}

// workloads sums hours per employee over every assigned shift, with no period bound.
func (s *Scheduler) workloads() ([]workload, error) {
	loads := make([]workload, 0)
	index := make(map[int64]int)

	for _, shift := range s.shifts {
		employeeID, ok := shift.EmployeeID.EmployeeID()
		if !ok {
			continue
		}

		hours, err := worktime.HoursBetween(shift.Start, shift.End)
		if err != nil {
			return nil, fmt.Errorf("shift %d: %w", shift.ID, err)
		}

		i, exists := index[employeeID]
		if !exists {
			i = len(loads)
			index[employeeID] = i
			loads = append(loads, workload{employeeID: employeeID})
		}
		loads[i].hours += hours
	}

	return loads, nil
}

// gross stays unrounded on this path; Schedule rounds the totals once
func (s *Scheduler) addCosts(c *costs, emp *domain.Employee, hours float64) {
	gross := hours * emp.HourlyRate

	c.employee += gross
	c.tax += taxsuper.ComputeTax(emp, gross, hours, s.rule)
	c.super += taxsuper.ComputeSuper(gross, s.rule)
	if emp.PayPreference == domain.PayMethodCash {
		c.cash += gross
	}
}
