package handler

import (
	"net/http"

	"github.com/smallbiz-dev/business-manager/backend/internal/cashflow"
	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
)

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", map[string]any{
		"ok":      true,
		"service": h.config.Business.Name + " API",
	})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	count, err := h.repository.CountEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	txs, err := h.repository.GetAllTransactions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "dashboard fetched", cashflow.Dashboard(count, txs))
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
		Type     string  `json:"type" validate:"required,oneof=income expense"`
		Method   string  `json:"method" validate:"omitempty,oneof=bank cash"`
		Category *string `json:"category"`
		Amount   float64 `json:"amount" validate:"gte=-1000000000,lte=1000000000"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tx := &domain.Transaction{
		Date:     req.Date,
		Type:     domain.TransactionType(req.Type),
		Method:   domain.PayMethodBank,
		Category: req.Category,
		Amount:   req.Amount,
	}
	if req.Method != "" {
		tx.Method = domain.PayMethod(req.Method)
	}

	if err := h.repository.CreateTransaction(tx); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "transaction recorded", tx)
}

func (h *Handler) GetCashflowSummary(w http.ResponseWriter, r *http.Request) {
	txs, err := h.repository.GetAllTransactions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "cashflow summarized", cashflow.Summarize(txs))
}
