package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/payroll"
	"github.com/smallbiz-dev/business-manager/backend/internal/payslip"
	"github.com/smallbiz-dev/business-manager/backend/internal/utils"
)

type payrollRequest struct {
	PeriodStart      string `json:"periodStart" validate:"required,datetime=2006-01-02"`
	PeriodEnd        string `json:"periodEnd" validate:"required,datetime=2006-01-02"`
	DefaultPayMethod string `json:"defaultPayMethod" validate:"omitempty,oneof=bank cash"`
	Notify           bool   `json:"notify"`
}

type payRun struct {
	period    domain.PayrollPeriod
	lines     []domain.PayLine
	employees map[int64]*domain.Employee
	notify    bool
}

// runPayroll reads and validates the request, loads a snapshot and calculates it.
// On failure it has already written the response and returns nil.
func (h *Handler) runPayroll(w http.ResponseWriter, r *http.Request) *payRun {
	var req payrollRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return nil
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return nil
	}

	period := domain.PayrollPeriod{
		Start:            req.PeriodStart,
		End:              req.PeriodEnd,
		DefaultPayMethod: domain.PayMethodBank,
	}
	if req.DefaultPayMethod != "" {
		period.DefaultPayMethod = domain.PayMethod(req.DefaultPayMethod)
	}

	if err := utils.ValidatePeriod(&period); err != nil {
		h.badRequest(w, r, err)
		return nil
	}

	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return nil
	}

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return nil
	}

	rule, err := h.repository.GetTaxSuperRule()
	if err != nil {
		h.internalServerError(w, r, err)
		return nil
	}

	lines, err := payroll.Calculate(employees, shifts, *rule, period.Start, period.End, period.DefaultPayMethod)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedTime), errors.Is(err, domain.ErrMalformedDate):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return nil
	}

	run := &payRun{
		period:    period,
		lines:     lines,
		employees: make(map[int64]*domain.Employee, len(employees)),
		notify:    req.Notify,
	}
	for _, e := range employees {
		run.employees[e.ID] = e
	}

	return run
}

func (h *Handler) CalculatePayroll(w http.ResponseWriter, r *http.Request) {
	run := h.runPayroll(w, r)
	if run == nil {
		return
	}

	if run.notify {
		h.queuePayslips(run)
	}

	h.successResponse(w, r, "payroll calculated", run.lines)
}

func (h *Handler) queuePayslips(run *payRun) {
	for _, line := range run.lines {
		emp := run.employees[line.EmployeeID]
		if emp.Email == nil {
			continue
		}

		msg := domain.MailMessage{
			Type: domain.MailTypePayslip,
			To:   *emp.Email,
			Data: domain.PayslipMailData{
				Name:         emp.Name,
				BusinessName: h.config.Business.Name,
				PeriodStart:  run.period.Start,
				PeriodEnd:    run.period.End,
				Hours:        line.Hours,
				Gross:        line.Gross,
				Tax:          line.Tax,
				Super:        line.Super,
				Net:          line.Net,
				PayMethod:    string(line.PayMethod),
			},
		}
		if err := h.publishMail(msg); err != nil {
			slog.Error("failed to queue payslip mail", "employeeID", emp.ID, "error", err)
		}
	}
}

func (h *Handler) RenderPayslips(w http.ResponseWriter, r *http.Request) {
	run := h.runPayroll(w, r)
	if run == nil {
		return
	}

	doc := &payslip.Run{
		BusinessName: h.config.Business.Name,
		Period:       run.period,
		Lines:        run.lines,
		Names:        make(map[int64]string, len(run.employees)),
	}
	for id, e := range run.employees {
		doc.Names[id] = e.Name
	}

	// render fully before writing so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := payslip.Render(&buf, doc); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payrun-%s-%s.pdf"`, run.period.Start, run.period.End))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
