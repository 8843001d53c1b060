package taxsuper

import (
	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/money"
)

// Default returns the rule set installed when none exists yet.
func Default() domain.TaxSuperRule {
	return domain.TaxSuperRule{
		SuperRate:           0.115,
		IntStudentWeeklyCap: 24.0,
		Bracket1Max:         500.0,
		Bracket1Rate:        0.05,
		Bracket2Max:         1000.0,
		Bracket2Base:        25.0,
		Bracket2Rate:        0.15,
		Bracket3Base:        100.0,
		Bracket3Rate:        0.25,
		ABNWithholdingRate:  0.0,
	}
}

// ComputeTax returns the tax withheld from gross.
// ABN contractors pay the flat withholding rate; everyone else goes through the brackets on gross alone.
// weeklyHours is accepted for parity with the rule set's student cap but does not affect the result.
func ComputeTax(emp *domain.Employee, gross float64, weeklyHours float64, r domain.TaxSuperRule) float64 {
	if emp.EmploymentType == domain.EmploymentABN {
		return money.Round2(gross * r.ABNWithholdingRate)
	}

	switch {
	case gross <= r.Bracket1Max:
		return money.Round2(gross * r.Bracket1Rate)
	case gross <= r.Bracket2Max:
		return money.Round2(r.Bracket2Base + (gross-r.Bracket1Max)*r.Bracket2Rate)
	default:
		return money.Round2(r.Bracket3Base + (gross-r.Bracket2Max)*r.Bracket3Rate)
	}
}

// ComputeSuper returns the employer super contribution on gross, for every employment type.
func ComputeSuper(gross float64, r domain.TaxSuperRule) float64 {
	return money.Round2(gross * r.SuperRate)
}

// Merge applies the non-nil fields of u on top of r.
func Merge(r domain.TaxSuperRule, u domain.TaxSuperRuleUpdate) domain.TaxSuperRule {
	if u.SuperRate != nil {
		r.SuperRate = *u.SuperRate
	}
	if u.IntStudentWeeklyCap != nil {
		r.IntStudentWeeklyCap = *u.IntStudentWeeklyCap
	}
	if u.Bracket1Max != nil {
		r.Bracket1Max = *u.Bracket1Max
	}
	if u.Bracket1Rate != nil {
		r.Bracket1Rate = *u.Bracket1Rate
	}
	if u.Bracket2Max != nil {
		r.Bracket2Max = *u.Bracket2Max
	}
	if u.Bracket2Base != nil {
		r.Bracket2Base = *u.Bracket2Base
	}
	if u.Bracket2Rate != nil {
		r.Bracket2Rate = *u.Bracket2Rate
	}
	if u.Bracket3Base != nil {
		r.Bracket3Base = *u.Bracket3Base
	}
	if u.Bracket3Rate != nil {
		r.Bracket3Rate = *u.Bracket3Rate
	}
	if u.ABNWithholdingRate != nil {
		r.ABNWithholdingRate = *u.ABNWithholdingRate
	}
	return r
}
