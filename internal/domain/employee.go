package domain

import (
	"time"
)

type EmploymentType string

const (
	EmploymentTFN        EmploymentType = "TFN"
	EmploymentABN        EmploymentType = "ABN"
	EmploymentIntStudent EmploymentType = "INT_STUDENT"
)

type PayMethod string

const (
	PayMethodBank PayMethod = "bank"
	PayMethodCash PayMethod = "cash"
)

type Employee struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Email          *string        `json:"email"`
	EmploymentType EmploymentType `json:"employmentType"`
	TFN            *string        `json:"tfn"`
	ABN            *string        `json:"abn"`
	HourlyRate     float64        `json:"hourlyRate"`
	Role           *string        `json:"role"`
	MaxHoursWeek   *float64       `json:"maxHoursWeek"`
	PayPreference  PayMethod      `json:"payPreference"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// HasRole reports whether the employee carries exactly the given role tag.
func (e *Employee) HasRole(role string) bool {
	return e.Role != nil && *e.Role == role
}

// Onboard applies the creation-time rules: international students are always paid into a bank account.
func (e *Employee) Onboard() {
	if e.EmploymentType == EmploymentIntStudent {
		e.PayPreference = PayMethodBank
	}
}
