package taxsuper

import (
	"testing"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func employee(t domain.EmploymentType) *domain.Employee {
	return &domain.Employee{ID: 1, Name: "Test", EmploymentType: t, HourlyRate: 30}
}

func TestComputeTaxBrackets(t *testing.T) {
	rule := Default()

	tests := []struct {
		name  string
		gross float64
		want  float64
	}{
		{"zero", 0, 0},
		{"bracket 1", 200, 10},
		{"bracket 1 upper edge", 500, 25},
		{"just into bracket 2", 500.01, 25},
		{"bracket 2", 800, 70},
		{"bracket 2 upper edge", 1000, 100},
		{"bracket 3", 1200, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, et := range []domain.EmploymentType{domain.EmploymentTFN, domain.EmploymentIntStudent} {
				assert.InDelta(t, tt.want, ComputeTax(employee(et), tt.gross, 40, rule), 1e-9, string(et))
			}
		})
	}
}

func TestComputeTaxABN(t *testing.T) {
	rule := Default()
	abn := employee(domain.EmploymentABN)

	assert.Equal(t, 0.0, ComputeTax(abn, 1200, 40, rule))

	rule.ABNWithholdingRate = 0.2
	assert.InDelta(t, 24.69, ComputeTax(abn, 123.45, 5, rule), 1e-9)
	assert.InDelta(t, 400, ComputeTax(abn, 2000, 5, rule), 1e-9)
}

func TestComputeTaxIgnoresWeeklyHours(t *testing.T) {
	rule := Default()
	student := employee(domain.EmploymentIntStudent)

	assert.Equal(t, ComputeTax(student, 800, 10, rule), ComputeTax(student, 800, 60, rule))
}

func TestComputeSuper(t *testing.T) {
	rule := Default()

	assert.InDelta(t, 115, ComputeSuper(1000, rule), 1e-9)
	assert.InDelta(t, 34.5, ComputeSuper(300, rule), 1e-9)
	assert.InDelta(t, 14.2, ComputeSuper(123.45, rule), 1e-9)
	assert.Equal(t, 0.0, ComputeSuper(0, rule))
}

func TestMerge(t *testing.T) {
	rule := Default()
	rate := 0.12
	abn := 0.3

	merged := Merge(rule, domain.TaxSuperRuleUpdate{SuperRate: &rate, ABNWithholdingRate: &abn})

	assert.Equal(t, 0.12, merged.SuperRate)
	assert.Equal(t, 0.3, merged.ABNWithholdingRate)
	assert.Equal(t, rule.Bracket1Max, merged.Bracket1Max)
	assert.Equal(t, rule.Bracket3Rate, merged.Bracket3Rate)
	assert.Equal(t, rule.IntStudentWeeklyCap, merged.IntStudentWeeklyCap)
	assert.Equal(t, 0.115, rule.SuperRate, "input rule must not change")

	assert.Equal(t, rule, Merge(rule, domain.TaxSuperRuleUpdate{}))
}
