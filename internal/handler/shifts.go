package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/scheduler"
	"github.com/smallbiz-dev/business-manager/backend/internal/utils"
	"github.com/smallbiz-dev/business-manager/backend/internal/worktime"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID       domain.Assignment `json:"employeeID"`
		Day              string            `json:"day" validate:"required,datetime=2006-01-02"`
		Start            string            `json:"start" validate:"required,datetime=15:04"`
		End              string            `json:"end" validate:"required,datetime=15:04"`
		Role             *string           `json:"role"`
		ExpectedBusyness string            `json:"expectedBusyness" validate:"omitempty,oneof=low med high"`
		MaxShiftHours    *float64          `json:"maxShiftHours" validate:"omitempty,gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.Shift{
		EmployeeID:       req.EmployeeID,
		Day:              req.Day,
		Start:            req.Start,
		End:              req.End,
		Role:             req.Role,
		ExpectedBusyness: domain.BusynessMed,
		MaxShiftHours:    req.MaxShiftHours,
	}
	if req.ExpectedBusyness != "" {
		shift.ExpectedBusyness = domain.Busyness(req.ExpectedBusyness)
	}

	if err := utils.ValidateShiftTime(shift); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_employee_id_fkey":
				h.errorResponse(w, r, "employee does not exist")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift created", shift)
}

// GetRosterWeek lists every shift, or only those inside [start, end] when end is given.
func (h *Handler) GetRosterWeek(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if err := h.validate.Var(start, "required,datetime=2006-01-02"); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Var(end, "omitempty,datetime=2006-01-02"); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if end == "" {
		h.successResponse(w, r, "roster fetched", shifts)
		return
	}

	filtered := make([]*domain.Shift, 0)
	for _, shift := range shifts {
		ok, err := worktime.WithinPeriod(shift.Day, start, end)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if ok {
			filtered = append(filtered, shift)
		}
	}

	h.successResponse(w, r, "roster fetched", filtered)
}

func (h *Handler) GenerateRoster(w http.ResponseWriter, r *http.Request) {
	token := uuid.NewString()

	locked, err := h.lockRoster(r.Context(), token)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !locked {
		h.errorResponse(w, r, "roster generation already in progress")
		return
	}
	defer func() {
		// the request context may be gone by now
		if err := h.unlockRoster(context.Background(), token); err != nil {
			slog.Error("failed to release roster lock", "error", err)
		}
	}()

	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	rule, err := h.repository.GetTaxSuperRule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	result, err := scheduler.Generate(employees, shifts, *rule)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedTime):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.AssignShifts(result.Assigned); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	slog.Info("roster generated", "assigned", len(result.Assigned), "employeeCost", result.Totals.EmployeeCost)

	h.successResponse(w, r, "roster generated", result)
}
