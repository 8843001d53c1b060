package domain

import "time"

// TaxSuperRule is the single rule set every payroll and roster computation runs against.
type TaxSuperRule struct {
	ID                  int64     `json:"id"`
	SuperRate           float64   `json:"superRate"`
	IntStudentWeeklyCap float64   `json:"intStudentWeeklyCap"` // stored, not enforced anywhere
	Bracket1Max         float64   `json:"bracket1Max"`
	Bracket1Rate        float64   `json:"bracket1Rate"`
	Bracket2Max         float64   `json:"bracket2Max"`
	Bracket2Base        float64   `json:"bracket2Base"`
	Bracket2Rate        float64   `json:"bracket2Rate"`
	Bracket3Base        float64   `json:"bracket3Base"`
	Bracket3Rate        float64   `json:"bracket3Rate"`
	ABNWithholdingRate  float64   `json:"abnWithholdingRate"`
	UpdatedAt           time.Time `json:"updatedAt"`
	Version             int32     `json:"-"`
}

// TaxSuperRuleUpdate carries a partial update; nil fields are left untouched.
type TaxSuperRuleUpdate struct {
	SuperRate           *float64 `json:"superRate" validate:"omitempty,gte=0"`
	IntStudentWeeklyCap *float64 `json:"intStudentWeeklyCap" validate:"omitempty,gte=0"`
	Bracket1Max         *float64 `json:"bracket1Max" validate:"omitempty,gte=0"`
	Bracket1Rate        *float64 `json:"bracket1Rate" validate:"omitempty,gte=0"`
	Bracket2Max         *float64 `json:"bracket2Max" validate:"omitempty,gte=0"`
	Bracket2Base        *float64 `json:"bracket2Base" validate:"omitempty,gte=0"`
	Bracket2Rate        *float64 `json:"bracket2Rate" validate:"omitempty,gte=0"`
	Bracket3Base        *float64 `json:"bracket3Base" validate:"omitempty,gte=0"`
	Bracket3Rate        *float64 `json:"bracket3Rate" validate:"omitempty,gte=0"`
	ABNWithholdingRate  *float64 `json:"abnWithholdingRate" validate:"omitempty,gte=0"`
}
