package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smallbiz-dev/business-manager/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler has no backing services; only paths that fail before touching them are safe to call.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Business.Name = "Corner Cafe"

	h, err := NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

func do(t *testing.T, h *Handler, method, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestRoot(t *testing.T) {
	h := newTestHandler(t)

	rec, resp := do(t, h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["ok"])
	assert.Equal(t, "Corner Cafe API", data["service"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestHandler(t)
	id := "7b0e4c36-3f43-4d7e-9a57-0c2b1d6a3b9e"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", id)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
}

func TestRejectedRequests(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		wantMessage string
	}{
		{
			name:        "shift longer than its cap",
			method:      http.MethodPost,
			path:        "/roster/shifts",
			body:        `{"day":"2024-06-03","start":"09:00","end":"13:00","maxShiftHours":3}`,
			wantMessage: "exceeds max shift hours",
		},
		{
			name:   "shift with malformed start",
			method: http.MethodPost,
			path:   "/roster/shifts",
			body:   `{"day":"2024-06-03","start":"9am","end":"13:00"}`,
		},
		{
			name:   "shift with unknown busyness",
			method: http.MethodPost,
			path:   "/roster/shifts",
			body:   `{"day":"2024-06-03","start":"09:00","end":"13:00","expectedBusyness":"slammed"}`,
		},
		{
			name:   "roster week without start",
			method: http.MethodGet,
			path:   "/roster/week",
		},
		{
			name:   "payroll with slashed dates",
			method: http.MethodPost,
			path:   "/payroll/calc",
			body:   `{"periodStart":"2024/06/01","periodEnd":"2024-06-30"}`,
		},
		{
			name:   "payroll with unknown pay method",
			method: http.MethodPost,
			path:   "/payroll/calc",
			body:   `{"periodStart":"2024-06-01","periodEnd":"2024-06-30","defaultPayMethod":"cheque"}`,
		},
		{
			name:   "payslips without a period",
			method: http.MethodPost,
			path:   "/payroll/payslips",
			body:   `{}`,
		},
		{
			name:   "negative super rate",
			method: http.MethodPost,
			path:   "/taxsuper/rules",
			body:   `{"superRate":-0.1}`,
		},
		{
			name:   "unknown transaction type",
			method: http.MethodPost,
			path:   "/cashflow/tx",
			body:   `{"date":"2024-06-01","type":"refund","amount":10}`,
		},
		{
			name:   "employee without a name",
			method: http.MethodPost,
			path:   "/employees",
			body:   `{"employmentType":"TFN","hourlyRate":30}`,
		},
		{
			name:        "unknown field",
			method:      http.MethodPost,
			path:        "/cashflow/tx",
			body:        `{"date":"2024-06-01","type":"income","amount":10,"currency":"AUD"}`,
			wantMessage: "currency",
		},
		{
			name:        "two objects",
			method:      http.MethodPost,
			path:        "/taxsuper/rules",
			body:        `{"superRate":0.12}{"superRate":0.13}`,
			wantMessage: "single JSON object",
		},
		{
			name:        "wrong field type",
			method:      http.MethodPost,
			path:        "/cashflow/tx",
			body:        `{"date":"2024-06-01","type":"income","amount":"ten"}`,
			wantMessage: "amount",
		},
		{
			name:   "transaction amount out of range",
			method: http.MethodPost,
			path:   "/cashflow/tx",
			body:   `{"date":"2024-06-01","type":"income","amount":1e308}`,
		},
		{
			name:   "hourly rate out of range",
			method: http.MethodPost,
			path:   "/employees",
			body:   `{"name":"Olivia","hourlyRate":1e308}`,
		},
		{
			name:   "tfn with letters",
			method: http.MethodPost,
			path:   "/employees",
			body:   `{"name":"Olivia","tfn":"12A 456 789"}`,
		},
		{
			name:   "broken json",
			method: http.MethodPost,
			path:   "/cashflow/tx",
			body:   `{"date":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := do(t, h, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
			if tt.wantMessage != "" {
				assert.Contains(t, resp.Message, tt.wantMessage)
			}
		})
	}
}

func TestCreateEmployeeRequestAcceptsSpacedTaxNumbers(t *testing.T) {
	h := newTestHandler(t)
	tfn, abn := "123 456 789", " 51 824 753 556 "

	req := createEmployeeRequest{Name: "Olivia Smith", TFN: &tfn, ABN: &abn, HourlyRate: 28.5}
	req.normalize()

	require.NoError(t, h.validate.Struct(req))
	assert.Equal(t, "123456789", *req.TFN)
	assert.Equal(t, "51824753556", *req.ABN)
}
