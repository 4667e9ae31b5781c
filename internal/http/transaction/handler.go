package transaction

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

type Ledger interface {
	Create(ctx context.Context, tenantID uuid.UUID, params ledger.CreateParams) (*ledger.Result, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, params ledger.UpdateParams) (*ledger.Result, error)
	Cancel(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Result, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Transaction, error)
	List(ctx context.Context, tenantID uuid.UUID, filter ledger.ListFilter) (*ledger.ListResult, error)
}

type Handler struct {
	svc Ledger
}

func NewHandler(svc Ledger) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/cancel", h.cancel)
}

type createTransactionRequest struct {
	UnitID          *uuid.UUID      `json:"unit_id"`
	CategoryID      uuid.UUID       `json:"category_id" validate:"required"`
	Type            category.Type   `json:"type" validate:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description" validate:"max=500"`
	Date            string          `json:"transaction_date" validate:"required"`
	FiscalPeriod    *fiscal.Period  `json:"fiscal_period"`
	Status          ledger.Status   `json:"status" validate:"omitempty,oneof=pending confirmed"`
	PaymentMethod   string          `json:"payment_method" validate:"max=50"`
	ReferenceNumber string          `json:"reference_number" validate:"max=100"`
	Notes           string          `json:"notes" validate:"max=1000"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req createTransactionRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		render.BadRequest(w, "transaction_date must be YYYY-MM-DD")
		return
	}

	params := ledger.CreateParams{
		UnitID:          req.UnitID,
		CategoryID:      req.CategoryID,
		Type:            req.Type,
		Amount:          req.Amount,
		Description:     req.Description,
		Date:            date,
		Status:          req.Status,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		CreatedBy:       &scope.ActorID,
	}

	if req.FiscalPeriod != nil {
		params.FiscalPeriod = *req.FiscalPeriod
	}

	res, err := h.svc.Create(r.Context(), scope.TenantID, params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResultResponse(res))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	res, err := h.svc.List(r.Context(), scope.TenantID, filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toListResponse(res))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	id, err := render.URLID(r, "id")
	if err != nil {
		render.Error(w, r, err)
		return
	}

	tx, err := h.svc.Get(r.Context(), scope.TenantID, id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(tx))
}

type updateTransactionRequest struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Description     *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Date            *string          `json:"transaction_date,omitempty"`
	FiscalPeriod    *fiscal.Period   `json:"fiscal_period,omitempty"`
	CategoryID      *uuid.UUID       `json:"category_id,omitempty"`
	UnitID          *uuid.UUID       `json:"unit_id,omitempty"`
	ClearUnit       bool             `json:"clear_unit,omitempty"`
	Status          *ledger.Status   `json:"status,omitempty"`
	PaymentMethod   *string          `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	ReferenceNumber *string          `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	Notes           *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	id, err := render.URLID(r, "id")
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req updateTransactionRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, err.Error())
		return
	}

	params := ledger.UpdateParams{
		Amount:          req.Amount,
		Description:     req.Description,
		FiscalPeriod:    req.FiscalPeriod,
		CategoryID:      req.CategoryID,
		UnitID:          req.UnitID,
		ClearUnit:       req.ClearUnit,
		Status:          req.Status,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}

	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			render.BadRequest(w, "transaction_date must be YYYY-MM-DD")
			return
		}

		params.Date = &d
	}

	res, err := h.svc.Update(r.Context(), scope.TenantID, id, params)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResultResponse(res))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	id, err := render.URLID(r, "id")
	if err != nil {
		render.Error(w, r, err)
		return
	}

	res, err := h.svc.Cancel(r.Context(), scope.TenantID, id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResultResponse(res))
}

func parseFilter(r *http.Request) (ledger.ListFilter, error) {
	q := r.URL.Query()
	filter := ledger.ListFilter{
		AdvanceOnly: q.Get("is_advance_payment") == "true",
		LateOnly:    q.Get("is_late_payment") == "true",
	}

	if s := q.Get("type"); s != "" {
		filter.Type = new(category.Type(s))
	}

	if s := q.Get("status"); s != "" {
		filter.Status = new(ledger.Status(s))
	}

	if s := q.Get("unit_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, render.ErrInvalidID
		}

		filter.UnitID = &id
	}

	if s := q.Get("category_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, render.ErrInvalidID
		}

		filter.CategoryID = &id
	}

	if s := q.Get("fiscal_period"); s != "" {
		p, err := fiscal.ParsePeriod(s)
		if err != nil {
			return filter, err
		}

		filter.FiscalPeriod = &p
	}

	if s := q.Get("start_date"); s != "" {
		if t, err := parseDate(s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := q.Get("end_date"); s != "" {
		if t, err := parseDate(s); err == nil {
			filter.EndDate = new(t)
		}
	}

	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	return filter, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
