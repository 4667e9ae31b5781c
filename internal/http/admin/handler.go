package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/automation"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

type Automation interface {
	Run(ctx context.Context, tenantID *uuid.UUID, period fiscal.Period) (*automation.Report, error)
}

type Auditor interface {
	AuditBalances(ctx context.Context, tenantID uuid.UUID) ([]unit.Drift, error)
}

type Handler struct {
	automation Automation
	auditor    Auditor
}

func NewHandler(a Automation, auditor Auditor) *Handler {
	return &Handler{automation: a, auditor: auditor}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/monthly-charges", h.runMonthly)
	r.Get("/balance-audit", h.balanceAudit)
}

type runMonthlyRequest struct {
	FiscalPeriod *fiscal.Period `json:"fiscal_period"`
}

type runMonthlyResponse struct {
	FiscalPeriod   fiscal.Period   `json:"fiscal_period"`
	Created        int             `json:"created"`
	AlreadyExisted int             `json:"already_existed"`
	SkippedUnits   []string        `json:"skipped_units"`
	Total          decimal.Decimal `json:"total"`
}

// runMonthly issues the period's charges for the caller's tenant. The body is
// optional; without a period the current month is used.
func (h *Handler) runMonthly(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req runMonthlyRequest
	if r.ContentLength > 0 {
		if err := render.Decode(r, &req); err != nil {
			render.BadRequest(w, err.Error())
			return
		}
	}

	var period fiscal.Period
	if req.FiscalPeriod != nil {
		period = *req.FiscalPeriod
	}

	report, err := h.automation.Run(r.Context(), &scope.TenantID, period)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	res := report.Results[0]

	status := http.StatusCreated
	if res.Created == 0 {
		status = http.StatusOK
	}

	if res.Skipped == nil {
		res.Skipped = []string{}
	}

	render.JSON(w, status, runMonthlyResponse{
		FiscalPeriod:   res.Period,
		Created:        res.Created,
		AlreadyExisted: res.AlreadyExisted,
		SkippedUnits:   res.Skipped,
		Total:          res.Total,
	})
}

type driftResponse struct {
	UnitID     uuid.UUID       `json:"unit_id"`
	Number     string          `json:"unit_number"`
	Stored     decimal.Decimal `json:"stored_balance"`
	Computed   decimal.Decimal `json:"computed_balance"`
	Difference decimal.Decimal `json:"difference"`
}

type auditResponse struct {
	Consistent bool            `json:"consistent"`
	Drift      []driftResponse `json:"drift"`
}

func (h *Handler) balanceAudit(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	drift, err := h.auditor.AuditBalances(r.Context(), scope.TenantID)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := auditResponse{Consistent: len(drift) == 0, Drift: make([]driftResponse, len(drift))}
	for i, d := range drift {
		resp.Drift[i] = driftResponse{
			UnitID:     d.UnitID,
			Number:     d.Number,
			Stored:     d.Stored,
			Computed:   d.Computed,
			Difference: d.Difference(),
		}
	}

	render.JSON(w, http.StatusOK, resp)
}
