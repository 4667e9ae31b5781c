package render_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

func TestStatus(t *testing.T) {
	_, periodErr := fiscal.ParsePeriod("2025-13")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Duplicate", ledger.ErrDuplicatePayment, http.StatusConflict, "DUPLICATE_PAYMENT_SAME_PERIOD"},
		{"Wrapped", fmt.Errorf("create: %w", ledger.ErrNotFound), http.StatusNotFound, "TRANSACTION_NOT_FOUND"},
		{"UnitViaLedger", ledger.ErrUnitNotFound, http.StatusNotFound, "UNIT_NOT_FOUND"},
		{"Mismatch", ledger.ErrCategoryTypeMismatch, http.StatusUnprocessableEntity, "CATEGORY_TYPE_MISMATCH"},
		{"Validation", unit.ErrNegativeFee, http.StatusBadRequest, "NEGATIVE_MONTHLY_FEE"},
		{"Period", periodErr, http.StatusBadRequest, "INVALID_FISCAL_PERIOD"},
		{"MissingTenant", tenant.ErrMissing, http.StatusUnauthorized, "TENANT_REQUIRED"},
		{"InactiveTenant", tenant.ErrInactive, http.StatusForbidden, "TENANT_INACTIVE"},
		{"Unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := render.Status(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestError_HidesInternalText(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	render.Error(w, r, errors.New("password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}
