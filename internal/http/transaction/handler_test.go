package transaction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/http/transaction"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

// stubLedger records the last call and returns canned results.
type stubLedger struct {
	created ledger.CreateParams
	updated ledger.UpdateParams
	filter  ledger.ListFilter
	tenant  uuid.UUID

	result *ledger.Result
	list   *ledger.ListResult
	err    error
}

func (s *stubLedger) Create(_ context.Context, tenantID uuid.UUID, p ledger.CreateParams) (*ledger.Result, error) {
	s.tenant, s.created = tenantID, p
	return s.result, s.err
}

func (s *stubLedger) Update(_ context.Context, tenantID, _ uuid.UUID, p ledger.UpdateParams) (*ledger.Result, error) {
	s.tenant, s.updated = tenantID, p
	return s.result, s.err
}

func (s *stubLedger) Cancel(_ context.Context, tenantID, _ uuid.UUID) (*ledger.Result, error) {
	s.tenant = tenantID
	return s.result, s.err
}

func (s *stubLedger) Get(_ context.Context, tenantID, _ uuid.UUID) (*ledger.Transaction, error) {
	s.tenant = tenantID
	if s.err != nil {
		return nil, s.err
	}

	return s.result.Transaction, nil
}

func (s *stubLedger) List(_ context.Context, tenantID uuid.UUID, f ledger.ListFilter) (*ledger.ListResult, error) {
	s.tenant, s.filter = tenantID, f
	return s.list, s.err
}

func serve(t *testing.T, svc *stubLedger, scope tenant.Scope, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	transaction.NewHandler(svc).Routes(r)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(tenant.WithScope(req.Context(), scope))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func sampleTx() *ledger.Transaction {
	unitID := uuid.New()

	return &ledger.Transaction{
		ID:               uuid.New(),
		UnitID:           &unitID,
		UnitNumber:       "101",
		CategoryID:       uuid.New(),
		Type:             category.TypeIncome,
		Amount:           decimal.RequireFromString("1500"),
		Description:      "Cuota",
		Date:             time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		FiscalPeriod:     fiscal.MustParsePeriod("2025-02"),
		Status:           ledger.StatusConfirmed,
		IsAdvancePayment: true,
	}
}

func TestHandler_Create(t *testing.T) {
	scope := tenant.Scope{TenantID: uuid.New(), ActorID: uuid.New(), Role: tenant.RoleAccountant}
	tx := sampleTx()
	balance := decimal.RequireFromString("1500")
	svc := &stubLedger{result: &ledger.Result{Transaction: tx, UnitBalance: &balance}}

	body := `{
		"unit_id": "` + tx.UnitID.String() + `",
		"category_id": "` + tx.CategoryID.String() + `",
		"type": "income",
		"amount": "1500.00",
		"description": "Cuota",
		"transaction_date": "2025-01-03",
		"fiscal_period": "2025-02"
	}`

	w := serve(t, svc, scope, http.MethodPost, "/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Equal(t, scope.TenantID, svc.tenant)
	assert.Equal(t, &scope.ActorID, svc.created.CreatedBy)
	assert.Equal(t, fiscal.MustParsePeriod("2025-02"), svc.created.FiscalPeriod)
	assert.True(t, decimal.RequireFromString("1500").Equal(svc.created.Amount))
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), svc.created.Date)

	var resp struct {
		Transaction struct {
			FiscalPeriod     string `json:"fiscal_period"`
			Date             string `json:"transaction_date"`
			IsAdvancePayment bool   `json:"is_advance_payment"`
		} `json:"transaction"`
		UnitBalance string `json:"unit_balance"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-02", resp.Transaction.FiscalPeriod)
	assert.Equal(t, "2025-01-03", resp.Transaction.Date)
	assert.True(t, resp.Transaction.IsAdvancePayment)
	assert.Equal(t, "1500", resp.UnitBalance)
}

func TestHandler_Create_Errors(t *testing.T) {
	scope := tenant.Scope{TenantID: uuid.New(), ActorID: uuid.New()}
	valid := `{"category_id":"` + uuid.NewString() + `","type":"income","amount":"10","transaction_date":"2025-01-03"}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Duplicate",
			body:       valid,
			err:        ledger.ErrDuplicatePayment,
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_PAYMENT_SAME_PERIOD",
		},
		{
			name:       "IncomeWithoutUnit",
			body:       valid,
			err:        ledger.ErrIncomeRequiresUnit,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INCOME_REQUIRES_UNIT",
		},
		{
			name:       "BadDate",
			body:       `{"category_id":"` + uuid.NewString() + `","type":"income","amount":"10","transaction_date":"03/01/2025"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadPeriod",
			body:       `{"type":"income","amount":"10","transaction_date":"2025-01-03","fiscal_period":"2025-1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingCategory",
			body:       `{"type":"income","amount":"10","transaction_date":"2025-01-03"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "category_id: required",
		},
		{
			name:       "UnknownType",
			body:       `{"category_id":"` + uuid.NewString() + `","type":"refund","amount":"10","transaction_date":"2025-01-03"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "type: must satisfy oneof=income expense",
		},
		{
			name:       "UnknownField",
			body:       `{"type":"income","balance":"10"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubLedger{err: tt.err}

			w := serve(t, svc, scope, http.MethodPost, "/", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantCode+`"}`, w.Body.String())
			}
		})
	}
}

func TestHandler_List(t *testing.T) {
	scope := tenant.Scope{TenantID: uuid.New()}
	unitID := uuid.New()
	listed := sampleTx()
	listed.IsRealCash = true
	svc := &stubLedger{list: &ledger.ListResult{
		Transactions: []*ledger.Transaction{listed},
		Summary: &ledger.Summary{
			TotalIncome:  decimal.RequireFromString("1500"),
			TotalExpense: decimal.RequireFromString("500"),
			Count:        1,
		},
	}}

	w := serve(t, svc, scope, http.MethodGet,
		"/?type=income&status=confirmed&unit_id="+unitID.String()+"&fiscal_period=2025-02&start_date=2025-01-01&is_late_payment=true&limit=20", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	f := svc.filter
	require.NotNil(t, f.Type)
	assert.Equal(t, category.TypeIncome, *f.Type)
	require.NotNil(t, f.Status)
	assert.Equal(t, ledger.StatusConfirmed, *f.Status)
	assert.Equal(t, &unitID, f.UnitID)
	assert.Equal(t, fiscal.MustParsePeriod("2025-02"), *f.FiscalPeriod)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
	assert.Nil(t, f.EndDate)
	assert.True(t, f.LateOnly)
	assert.False(t, f.AdvanceOnly)
	assert.Equal(t, 20, f.Limit)

	var resp struct {
		Transactions []struct {
			IsRealCash *bool `json:"is_real_cash"`
		} `json:"transactions"`
		Summary struct {
			Net string `json:"net"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	require.NotNil(t, resp.Transactions[0].IsRealCash)
	assert.True(t, *resp.Transactions[0].IsRealCash)
	assert.Equal(t, "1000", resp.Summary.Net)
}

func TestHandler_List_BadPeriod(t *testing.T) {
	w := serve(t, &stubLedger{}, tenant.Scope{TenantID: uuid.New()}, http.MethodGet, "/?fiscal_period=2025-13", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Update(t *testing.T) {
	scope := tenant.Scope{TenantID: uuid.New()}
	svc := &stubLedger{result: &ledger.Result{Transaction: sampleTx()}}

	w := serve(t, svc, scope, http.MethodPatch, "/"+uuid.NewString(),
		`{"status":"confirmed","transaction_date":"2025-01-10","clear_unit":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NotNil(t, svc.updated.Status)
	assert.Equal(t, ledger.StatusConfirmed, *svc.updated.Status)
	require.NotNil(t, svc.updated.Date)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), *svc.updated.Date)
	assert.True(t, svc.updated.ClearUnit)
	assert.Nil(t, svc.updated.Amount)
}

func TestHandler_Cancel(t *testing.T) {
	scope := tenant.Scope{TenantID: uuid.New()}

	w := serve(t, &stubLedger{err: ledger.ErrAlreadyCancelled}, scope, http.MethodPost, "/"+uuid.NewString()+"/cancel", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(t, &stubLedger{}, scope, http.MethodPost, "/not-a-uuid/cancel", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Get_NotFoundAcrossTenants(t *testing.T) {
	w := serve(t, &stubLedger{err: ledger.ErrNotFound}, tenant.Scope{TenantID: uuid.New()}, http.MethodGet, "/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"TRANSACTION_NOT_FOUND"}`, w.Body.String())
}
