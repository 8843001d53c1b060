package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

type Busyness string

const (
	BusynessLow  Busyness = "low"
	BusynessMed  Busyness = "med"
	BusynessHigh Busyness = "high"
)

// Assignment is either Unassigned or AssignedTo an employee.
// It marshals to JSON null or to the employee ID.
type Assignment struct {
	employeeID int64
	assigned   bool
}

func Unassigned() Assignment {
	return Assignment{}
}

func AssignedTo(employeeID int64) Assignment {
	return Assignment{employeeID: employeeID, assigned: true}
}

// EmployeeID returns the assigned employee and whether the shift is assigned at all.
func (a Assignment) EmployeeID() (int64, bool) {
	return a.employeeID, a.assigned
}

func (a Assignment) IsAssigned() bool {
	return a.assigned
}

func (a Assignment) MarshalJSON() ([]byte, error) {
	if !a.assigned {
		return []byte("null"), nil
	}
	return json.Marshal(a.employeeID)
}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Unassigned()
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*a = AssignedTo(id)
	return nil
}

type Shift struct {
	ID               int64      `json:"id"`
	EmployeeID       Assignment `json:"employeeID"`
	Day              string     `json:"day"`
	Start            string     `json:"start"`
	End              string     `json:"end"`
	Role             *string    `json:"role"`
	ExpectedBusyness Busyness   `json:"expectedBusyness"`
	MaxShiftHours    *float64   `json:"maxShiftHours"`
	CreatedAt        time.Time  `json:"createdAt"`
}
