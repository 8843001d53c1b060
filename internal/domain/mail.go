package domain

const (
	MailTypeEmployeeOnboarded = "employee_onboarded"
	MailTypePayslip           = "payslip"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type EmployeeOnboardedMailData struct {
	Name           string  `json:"name"`
	BusinessName   string  `json:"businessName"`
	EmploymentType string  `json:"employmentType"`
	HourlyRate     float64 `json:"hourlyRate"`
	PayPreference  string  `json:"payPreference"`
}

type PayslipMailData struct {
	Name         string  `json:"name"`
	BusinessName string  `json:"businessName"`
	PeriodStart  string  `json:"periodStart"`
	PeriodEnd    string  `json:"periodEnd"`
	Hours        float64 `json:"hours"`
	Gross        float64 `json:"gross"`
	Tax          float64 `json:"tax"`
	Super        float64 `json:"super"`
	Net          float64 `json:"net"`
	PayMethod    string  `json:"payMethod"`
}
