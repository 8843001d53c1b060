package handler

import (
	"log/slog"
	"net/http"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/utils"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees fetched", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)
	h.successResponse(w, r, "employee fetched", emp)
}

type createEmployeeRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	EmploymentType string   `json:"employmentType" validate:"omitempty,oneof=TFN ABN INT_STUDENT"`
	TFN            *string  `json:"tfn" validate:"omitempty,numeric"`
	ABN            *string  `json:"abn" validate:"omitempty,numeric"`
	HourlyRate     float64  `json:"hourlyRate" validate:"gte=0,lte=10000"`
	Role           *string  `json:"role"`
	MaxHoursWeek   *float64 `json:"maxHoursWeek" validate:"omitempty,gte=0"`
	PayPreference  string   `json:"payPreference" validate:"omitempty,oneof=bank cash"`
}

// normalize drops the spaces people type inside TFN and ABN numbers.
func (req *createEmployeeRequest) normalize() {
	req.TFN = utils.CompactTaxNumber(req.TFN)
	req.ABN = utils.CompactTaxNumber(req.ABN)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	req.normalize()
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	emp := &domain.Employee{
		Name:           req.Name,
		Email:          req.Email,
		EmploymentType: domain.EmploymentTFN,
		TFN:            req.TFN,
		ABN:            req.ABN,
		HourlyRate:     req.HourlyRate,
		Role:           req.Role,
		MaxHoursWeek:   req.MaxHoursWeek,
		PayPreference:  domain.PayMethodBank,
	}
	if req.EmploymentType != "" {
		emp.EmploymentType = domain.EmploymentType(req.EmploymentType)
	}
	if req.PayPreference != "" {
		emp.PayPreference = domain.PayMethod(req.PayPreference)
	}
	emp.Onboard()

	if err := h.repository.CreateEmployee(emp); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if emp.Email != nil {
		msg := domain.MailMessage{
			Type: domain.MailTypeEmployeeOnboarded,
			To:   *emp.Email,
			Data: domain.EmployeeOnboardedMailData{
				Name:           emp.Name,
				BusinessName:   h.config.Business.Name,
				EmploymentType: string(emp.EmploymentType),
				HourlyRate:     emp.HourlyRate,
				PayPreference:  string(emp.PayPreference),
			},
		}
		// best effort, the employee is already stored
		if err := h.publishMail(msg); err != nil {
			slog.Error("failed to queue onboarding mail", "employeeID", emp.ID, "error", err)
		}
	}

	h.successResponse(w, r, "employee created", emp)
}
