package domain

type PayLine struct {
	EmployeeID int64     `json:"employeeID"`
	Hours      float64   `json:"hours"`
	Gross      float64   `json:"gross"`
	Tax        float64   `json:"tax"`
	Super      float64   `json:"super"`
	Net        float64   `json:"net"`
	PayMethod  PayMethod `json:"payMethod"`
}

type PayrollPeriod struct {
	Start            string    `json:"periodStart"`
	End              string    `json:"periodEnd"`
	DefaultPayMethod PayMethod `json:"defaultPayMethod"`
}
