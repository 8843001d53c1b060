package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/smallbiz-dev/business-manager/backend/internal/taxsuper"
)

func (h *Handler) GetTaxSuperRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.repository.GetTaxSuperRule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "tax and super rules fetched", rule)
}

func (h *Handler) UpdateTaxSuperRule(w http.ResponseWriter, r *http.Request) {
	var req domain.TaxSuperRuleUpdate

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	current, err := h.repository.GetTaxSuperRule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	rule := taxsuper.Merge(*current, req)
	if err := h.repository.UpdateTaxSuperRule(&rule); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "rules changed concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "tax and super rules updated", rule)
}
