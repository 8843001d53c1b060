package scheduler

import "github.com/smallbiz-dev/business-manager/backend/internal/domain"

// a shift without a role accepts anyone
func canWork(employee *domain.Employee, shift *domain.Shift) bool {
	return shift.Role == nil || employee.HasRole(*shift.Role)
}
