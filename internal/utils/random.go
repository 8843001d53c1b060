package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/worktime"
)

var commonFirstNames = []string{
	"Olivia", "Jack", "Charlotte", "Noah", "Amelia", "William", "Isla", "Oliver",
	"Mia", "Leo", "Ava", "Henry", "Grace", "Lucas", "Chloe", "Thomas",
}
var commonSurnames = []string{
	"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Nguyen", "Johnson",
	"Martin", "White", "Anderson", "Walker", "Thompson", "Chen", "Kelly", "Singh",
}

var roles = []string{"barista", "kitchen", "floor", "cashier"}

var employmentTypes = []domain.EmploymentType{
	domain.EmploymentTFN,
	domain.EmploymentABN,
	domain.EmploymentIntStudent,
}

var busyness = []domain.Busyness{domain.BusynessLow, domain.BusynessMed, domain.BusynessHigh}

var digits = "0123456789"

func GenerateRandomName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonSurnames[rand.Intn(len(commonSurnames))]
	return first + " " + last
}

func GenerateRandomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}

func GenerateRandomEmployee(emailDomain string) *domain.Employee {
	name := GenerateRandomName()
	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + GenerateRandomDigits(2) + "@" + emailDomain
	role := roles[rand.Intn(len(roles))]

	emp := &domain.Employee{
		Name:           name,
		Email:          &email,
		EmploymentType: employmentTypes[rand.Intn(len(employmentTypes))],
		HourlyRate:     float64(2400+rand.Intn(1600)) / 100, // 24.00 ~ 39.99
		Role:           &role,
		PayPreference:  domain.PayMethodBank,
	}

	if rand.Intn(4) == 0 {
		emp.PayPreference = domain.PayMethodCash
	}

	switch emp.EmploymentType {
	case domain.EmploymentABN:
		abn := GenerateRandomDigits(11)
		emp.ABN = &abn
	default:
		tfn := GenerateRandomDigits(9)
		emp.TFN = &tfn
	}

	emp.Onboard()
	return emp
}

// GenerateRandomShift creates an unassigned shift on day; roughly one in five crosses midnight.
func GenerateRandomShift(day time.Time) *domain.Shift {
	startHour := rand.Intn(12) + 6 // 06 ~ 17
	length := rand.Intn(6) + 3     // 3 ~ 8 hours
	if rand.Intn(5) == 0 {
		startHour = 20 + rand.Intn(3)
	}
	endHour := (startHour + length) % 24

	role := roles[rand.Intn(len(roles))]

	return &domain.Shift{
		EmployeeID:       domain.Unassigned(),
		Day:              day.Format(worktime.DayLayout),
		Start:            fmt.Sprintf("%02d:00", startHour),
		End:              fmt.Sprintf("%02d:00", endHour),
		Role:             &role,
		ExpectedBusyness: busyness[rand.Intn(len(busyness))],
	}
}

var expenseCategories = []string{"wages", "rent", "stock", "utilities"}

func GenerateRandomTransaction(day time.Time) *domain.Transaction {
	tx := &domain.Transaction{
		Date:   day.Format(worktime.DayLayout),
		Type:   domain.TransactionIncome,
		Method: domain.PayMethodBank,
		Amount: float64(rand.Intn(200000)) / 100,
	}

	if rand.Intn(2) == 0 {
		tx.Type = domain.TransactionExpense
		category := expenseCategories[rand.Intn(len(expenseCategories))]
		tx.Category = &category
	} else {
		category := "sales"
		tx.Category = &category
	}

	if rand.Intn(3) == 0 {
		tx.Method = domain.PayMethodCash
	}

	return tx
}
