// Package render writes JSON responses and maps domain errors to HTTP
// statuses. Error bodies carry the sentinel's code as their message.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/automation"
	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/importer"
	"github.com/MrJamesThe3rd/condo/internal/importer/bank"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	"github.com/MrJamesThe3rd/condo/internal/matching"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

var ErrInvalidID = errors.New("INVALID_ID")

type errorResponse struct {
	Error string `json:"error"`
}

var statuses = []struct {
	status int
	errs   []error
}{
	{http.StatusUnauthorized, []error{tenant.ErrMissing}},
	{http.StatusForbidden, []error{tenant.ErrInactive}},
	{http.StatusNotFound, []error{
		tenant.ErrNotFound,
		ledger.ErrNotFound,
		category.ErrNotFound,
		unit.ErrNotFound,
		matching.ErrUnitNotFound,
	}},
	{http.StatusConflict, []error{
		ledger.ErrDuplicatePayment,
		ledger.ErrAlreadyCancelled,
		ledger.ErrClosed,
		ledger.ErrCannotUpdateConfirmed,
		unit.ErrNumberTaken,
	}},
	{http.StatusUnprocessableEntity, []error{
		ledger.ErrCategoryTypeMismatch,
		ledger.ErrIncomeRequiresUnit,
		ledger.ErrInvalidTransition,
		automation.ErrNoIssuanceCategory,
		automation.ErrNoAdmin,
		importer.ErrNoPaymentCategory,
		bank.ErrUnknownFormat,
	}},
	{http.StatusBadRequest, []error{
		ErrInvalidID,
		fiscal.ErrInvalidPeriod,
		ledger.ErrInvalidAmount,
		ledger.ErrInvalidType,
		ledger.ErrInvalidStatus,
		ledger.ErrDateRequired,
		unit.ErrNumberRequired,
		unit.ErrInvalidStatus,
		unit.ErrNegativeFee,
		unit.ErrInvalidDateSpan,
		category.ErrInvalidType,
		category.ErrInvalidPurpose,
		category.ErrNameRequired,
		matching.ErrPatternRequired,
	}},
}

// Status returns the HTTP status for err and the code to expose. Unknown
// errors are internal and their text is not exposed.
func Status(err error) (int, string) {
	for _, s := range statuses {
		for _, target := range s.errs {
			if errors.Is(err, target) {
				return s.status, target.Error()
			}
		}
	}

	return http.StatusInternalServerError, "internal error"
}

func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, code := Status(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	JSON(w, status, errorResponse{Error: code})
}

// BadRequest reports a malformed request that no domain error describes.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Decode reads a JSON body into v and checks its validate tags. Unknown
// fields are rejected.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Param() != "" {
				return fmt.Errorf("%s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
			}

			return fmt.Errorf("%s: %s", fe.Field(), fe.Tag())
		}

		return err
	}

	return nil
}

// URLID parses a uuid route parameter.
func URLID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}

	return id, nil
}
