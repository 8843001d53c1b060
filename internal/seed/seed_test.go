package seed

import (
	"strings"
	"testing"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmployeesCSV(t *testing.T) {
	data := `name,employment_type,hourly_rate,email,role,pay_preference,max_hours_week,abn,tfn
Olivia Smith,TFN,28.5,olivia@example.com,barista,cash,38,,123456789
Jack Jones,abn,45,,,,,51 824 753 556,
Mia Chen,INT_STUDENT,26,,floor,cash,24,,987654321
`

	employees, err := ParseEmployeesCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, employees, 3)

	olivia := employees[0]
	assert.Equal(t, "Olivia Smith", olivia.Name)
	assert.Equal(t, domain.EmploymentTFN, olivia.EmploymentType)
	assert.Equal(t, 28.5, olivia.HourlyRate)
	require.NotNil(t, olivia.Email)
	assert.Equal(t, "olivia@example.com", *olivia.Email)
	assert.True(t, olivia.HasRole("barista"))
	assert.Equal(t, domain.PayMethodCash, olivia.PayPreference)
	require.NotNil(t, olivia.MaxHoursWeek)
	assert.Equal(t, 38.0, *olivia.MaxHoursWeek)
	assert.Nil(t, olivia.ABN)

	jack := employees[1]
	assert.Equal(t, domain.EmploymentABN, jack.EmploymentType)
	assert.Nil(t, jack.Email)
	assert.Nil(t, jack.Role)
	assert.Nil(t, jack.MaxHoursWeek)
	require.NotNil(t, jack.ABN)
	assert.Equal(t, "51824753556", *jack.ABN)
	assert.Equal(t, domain.PayMethodBank, jack.PayPreference)

	mia := employees[2]
	assert.Equal(t, domain.EmploymentIntStudent, mia.EmploymentType)
	assert.Equal(t, domain.PayMethodBank, mia.PayPreference, "students are always paid to bank")
}

func TestParseEmployeesCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing column", "name,hourly_rate\nOlivia,28\n", "employment_type"},
		{"bad rate", "name,employment_type,hourly_rate\nOlivia,TFN,lots\n", "line 2"},
		{"unknown type", "name,employment_type,hourly_rate\nOlivia,Casual,28\n", "unknown employment type"},
		{"unknown pay preference", "name,employment_type,hourly_rate,pay_preference\nOlivia,TFN,28,cheque\n", "unknown pay preference"},
		{"empty name", "name,employment_type,hourly_rate\n,TFN,28\n", "empty name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEmployeesCSV(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := ParseEmployeesCSV(strings.NewReader("name,hourly_rate\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}
