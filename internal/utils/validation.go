package utils

import (
	"fmt"
	"strings"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/worktime"
)

// ValidateShiftTime checks the shift's clock and day values and, when a cap is set, that the shift fits in it.
func ValidateShiftTime(shift *domain.Shift) error {
	if _, err := worktime.ParseDay(shift.Day); err != nil {
		return fmt.Errorf("shift day: %w", err)
	}

	hours, err := worktime.HoursBetween(shift.Start, shift.End)
	if err != nil {
		return fmt.Errorf("shift time: %w", err)
	}

	if shift.MaxShiftHours != nil && hours > *shift.MaxShiftHours {
		return fmt.Errorf("%w: %.2fh is over the %.2fh cap", domain.ErrShiftExceedsCap, hours, *shift.MaxShiftHours)
	}

	return nil
}

// ValidatePeriod only checks that both ends parse; an inverted period is allowed and simply matches nothing.
func ValidatePeriod(period *domain.PayrollPeriod) error {
	if _, err := worktime.ParseDay(period.Start); err != nil {
		return fmt.Errorf("period start: %w", err)
	}
	if _, err := worktime.ParseDay(period.End); err != nil {
		return fmt.Errorf("period end: %w", err)
	}
	return nil
}

// CompactTaxNumber strips whitespace from a TFN or ABN, so "123 456 789" is stored as "123456789".
// A blank number becomes nil.
func CompactTaxNumber(s *string) *string {
	if s == nil {
		return nil
	}
	compact := strings.Join(strings.Fields(*s), "")
	if compact == "" {
		return nil
	}
	return &compact
}
