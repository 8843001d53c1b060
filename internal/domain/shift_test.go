package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentJSON(t *testing.T) {
	b, err := json.Marshal(Shift{EmployeeID: Unassigned()})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"employeeID":null`)

	b, err = json.Marshal(Shift{EmployeeID: AssignedTo(7)})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"employeeID":7`)

	var s Shift
	require.NoError(t, json.Unmarshal([]byte(`{"employeeID":12}`), &s))
	id, ok := s.EmployeeID.EmployeeID()
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	s = Shift{EmployeeID: AssignedTo(3)}
	require.NoError(t, json.Unmarshal([]byte(`{"employeeID":null}`), &s))
	assert.False(t, s.EmployeeID.IsAssigned())

	s = Shift{}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-06-03"}`), &s))
	assert.False(t, s.EmployeeID.IsAssigned())

	assert.Error(t, json.Unmarshal([]byte(`{"employeeID":"seven"}`), &s))
}

func TestOnboard(t *testing.T) {
	student := &Employee{EmploymentType: EmploymentIntStudent, PayPreference: PayMethodCash}
	student.Onboard()
	assert.Equal(t, PayMethodBank, student.PayPreference)

	local := &Employee{EmploymentType: EmploymentTFN, PayPreference: PayMethodCash}
	local.Onboard()
	assert.Equal(t, PayMethodCash, local.PayPreference)
}

func TestHasRole(t *testing.T) {
	role := "barista"
	e := &Employee{Role: &role}

	assert.True(t, e.HasRole("barista"))
	assert.False(t, e.HasRole("Barista"))
	assert.False(t, (&Employee{}).HasRole("barista"))
}
