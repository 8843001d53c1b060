// Package payslip renders a pay run as a printable PDF.
package payslip

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/money"
)

type Run struct {
	BusinessName string
	Period       domain.PayrollPeriod
	Lines        []domain.PayLine
	Names        map[int64]string // employeeID -> display name
}

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Employee", 50, "L"},
	{"Hours", 18, "R"},
	{"Gross", 22, "R"},
	{"Tax", 20, "R"},
	{"Super", 20, "R"},
	{"Net", 22, "R"},
	{"Method", 18, "C"},
}

func (run *Run) name(employeeID int64) string {
	if n, ok := run.Names[employeeID]; ok {
		return n
	}
	return fmt.Sprintf("#%d", employeeID)
}

// Render writes the pay run to w: a header, one row per pay line, and a totals row.
func Render(w io.Writer, run *Run) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, run.BusinessName+" - Pay Run")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", run.Period.Start, run.Period.End))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	for _, c := range columns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	var gross, tax, super, net float64

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range run.Lines {
		cells := []string{
			run.name(line.EmployeeID),
			fmt.Sprintf("%.2f", line.Hours),
			fmt.Sprintf("%.2f", line.Gross),
			fmt.Sprintf("%.2f", line.Tax),
			fmt.Sprintf("%.2f", line.Super),
			fmt.Sprintf("%.2f", line.Net),
			string(line.PayMethod),
		}
		for i, c := range columns {
			pdf.CellFormat(c.width, 7, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)

		gross += line.Gross
		tax += line.Tax
		super += line.Super
		net += line.Net
	}

	pdf.SetFont("Helvetica", "B", 10)
	totals := []string{
		"Total",
		"",
		fmt.Sprintf("%.2f", money.Round2(gross)),
		fmt.Sprintf("%.2f", money.Round2(tax)),
		fmt.Sprintf("%.2f", money.Round2(super)),
		fmt.Sprintf("%.2f", money.Round2(net)),
		"",
	}
	for i, c := range columns {
		pdf.CellFormat(c.width, 8, totals[i], "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	return pdf.Output(w)
}
