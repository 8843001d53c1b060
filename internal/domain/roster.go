package domain

type RosterTotals struct {
	EmployeeCost float64 `json:"employeeCost"`
	TaxCost      float64 `json:"taxCost"`
	SuperCost    float64 `json:"superCost"`
	CashCost     float64 `json:"cashCost"`
}

type RosterResult struct {
	Shifts   []*Shift     `json:"shifts"`
	Assigned []*Shift     `json:"assigned"` // newly assigned by this run
	Totals   RosterTotals `json:"totals"`
}
