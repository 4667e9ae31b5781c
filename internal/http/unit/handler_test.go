package unit_test

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
	unithttp "github.com/MrJamesThe3rd/condo/internal/http/unit"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

type stubUnits struct {
	created  unit.CreateParams
	updated  unit.UpdateParams
	from, to time.Time
	unit     *unit.Unit
	err      error
}

func (s *stubUnits) Create(_ context.Context, _ uuid.UUID, p unit.CreateParams) (*unit.Unit, error) {
	s.created = p
	return s.unit, s.err
}

func (s *stubUnits) Get(context.Context, uuid.UUID, uuid.UUID) (*unit.Unit, error) {
	return s.unit, s.err
}

func (s *stubUnits) List(context.Context, uuid.UUID, unit.ListFilter) ([]*unit.Unit, error) {
	return []*unit.Unit{s.unit}, s.err
}

func (s *stubUnits) Update(_ context.Context, _, _ uuid.UUID, p unit.UpdateParams) (*unit.Unit, error) {
	s.updated = p
	return s.unit, s.err
}

func (s *stubUnits) Debtors(context.Context, uuid.UUID) (*unit.DebtorsReport, error) {
	return &unit.DebtorsReport{Units: []*unit.Unit{s.unit}, TotalDebt: s.unit.Balance.Neg()}, s.err
}

func (s *stubUnits) AccountStatement(_ context.Context, _, _ uuid.UUID, from, to time.Time) (*unit.AccountStatement, error) {
	s.from, s.to = from, to
	if s.err != nil {
		return nil, s.err
	}

	return &unit.AccountStatement{
		Unit:           s.unit,
		From:           from,
		To:             to,
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.RequireFromString("-300"),
		TotalExpense:   decimal.RequireFromString("300"),
		Lines: []unit.StatementLine{{
			Movement: unit.Movement{
				TransactionID: uuid.New(),
				Date:          from,
				Type:          category.TypeExpense,
				FiscalPeriod:  "2025-01",
				Amount:        decimal.RequireFromString("300"),
			},
			Balance: decimal.RequireFromString("-300"),
		}},
	}, nil
}

func serve(svc *stubUnits, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	unithttp.NewHandler(svc).Routes(r)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(tenant.WithScope(req.Context(), tenant.Scope{TenantID: uuid.New()}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func sampleUnit() *unit.Unit {
	return &unit.Unit{
		ID:         uuid.New(),
		Number:     "101",
		Status:     unit.StatusOccupied,
		MonthlyFee: decimal.RequireFromString("300"),
		Balance:    decimal.RequireFromString("-300"),
	}
}

func TestHandler_Create(t *testing.T) {
	svc := &stubUnits{unit: sampleUnit()}

	w := serve(svc, http.MethodPost, "/", `{"unit_number":"101","status":"occupied","monthly_fee":"300.00"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "101", svc.created.Number)
	assert.True(t, decimal.RequireFromString("300").Equal(svc.created.MonthlyFee))

	w = serve(&stubUnits{err: unit.ErrNumberTaken}, http.MethodPost, "/", `{"unit_number":"101"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateRejectsBalance(t *testing.T) {
	w := serve(&stubUnits{unit: sampleUnit()}, http.MethodPatch, "/"+uuid.NewString(), `{"balance":"1000"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Debtors(t *testing.T) {
	w := serve(&stubUnits{unit: sampleUnit()}, http.MethodGet, "/debtors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalDebt string `json:"total_debt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "300", resp.TotalDebt)
}

func TestHandler_Statement(t *testing.T) {
	svc := &stubUnits{unit: sampleUnit()}

	w := serve(svc, http.MethodGet, "/"+uuid.NewString()+"/statement?from=2025-01-01&to=2025-03-31", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), svc.from)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), svc.to)

	var resp struct {
		ClosingBalance string `json:"closing_balance"`
		Movements      []struct {
			Balance string `json:"balance"`
		} `json:"movements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "-300", resp.ClosingBalance)
	require.Len(t, resp.Movements, 1)
	assert.Equal(t, "-300", resp.Movements[0].Balance)

	w = serve(svc, http.MethodGet, "/"+uuid.NewString()+"/statement?from=01-01-2025", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(&stubUnits{err: unit.ErrInvalidDateSpan}, http.MethodGet, "/"+uuid.NewString()+"/statement", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
