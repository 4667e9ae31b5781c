package unit

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
	"github.com/MrJamesThe3rd/condo/internal/unit"
)

type Units interface {
	Create(ctx context.Context, tenantID uuid.UUID, params unit.CreateParams) (*unit.Unit, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*unit.Unit, error)
	List(ctx context.Context, tenantID uuid.UUID, filter unit.ListFilter) ([]*unit.Unit, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, params unit.UpdateParams) (*unit.Unit, error)
	Debtors(ctx context.Context, tenantID uuid.UUID) (*unit.DebtorsReport, error)
	AccountStatement(ctx context.Context, tenantID, unitID uuid.UUID, from, to time.Time) (*unit.AccountStatement, error)
}

type Handler struct {
	svc Units
}

func NewHandler(svc Units) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/debtors", h.debtors)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Get("/{id}/statement", h.statement)
}

type unitResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"unit_number"`
	OwnerName  string          `json:"owner_name,omitempty"`
	Status     unit.Status     `json:"status"`
	MonthlyFee decimal.Decimal `json:"monthly_fee"`
	Balance    decimal.Decimal `json:"balance"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func toResponse(u *unit.Unit) unitResponse {
	return unitResponse{
		ID:         u.ID,
		Number:     u.Number,
		OwnerName:  u.OwnerName,
		Status:     u.Status,
		MonthlyFee: u.MonthlyFee,
		Balance:    u.Balance,
		Notes:      u.Notes,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func toResponseList(units []*unit.Unit) []unitResponse {
	resp := make([]unitResponse, len(units))
	for i, u := range units {
		resp[i] = toResponse(u)
	}

	return resp
}

type createUnitRequest struct {
	Number     string          `json:"unit_number" validate:"required,max=20"`
	OwnerName  string          `json:"owner_name" validate:"max=200"`
	Status     unit.Status     `json:"status"`
	MonthlyFee decimal.Decimal `json:"monthly_fee"`
	Notes      string          `json:"notes" validate:"max=1000"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req createUnitRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, err.Error())
		return
	}

	u, err := h.svc.Create(r.Context(), scope.TenantID, unit.CreateParams(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(u))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	filter := unit.ListFilter{Number: r.URL.Query().Get("unit_number")}
	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(unit.Status(s))
	}

	units, err := h.svc.List(r.Context(), scope.TenantID, filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(units))
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

	u, err := h.svc.Get(r.Context(), scope.TenantID, id)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(u))
}

type updateUnitRequest struct {
	Number     *string          `json:"unit_number,omitempty" validate:"omitempty,max=20"`
	OwnerName  *string          `json:"owner_name,omitempty" validate:"omitempty,max=200"`
	Status     *unit.Status     `json:"status,omitempty"`
	MonthlyFee *decimal.Decimal `json:"monthly_fee,omitempty"`
	Notes      *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
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

	var req updateUnitRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, err.Error())
		return
	}

	u, err := h.svc.Update(r.Context(), scope.TenantID, id, unit.UpdateParams(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(u))
}

type debtorsResponse struct {
	Units     []unitResponse  `json:"units"`
	TotalDebt decimal.Decimal `json:"total_debt"`
}

func (h *Handler) debtors(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	rep, err := h.svc.Debtors(r.Context(), scope.TenantID)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, debtorsResponse{
		Units:     toResponseList(rep.Units),
		TotalDebt: rep.TotalDebt,
	})
}

type movementResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Date          string          `json:"transaction_date"`
	Type          category.Type   `json:"type"`
	CategoryName  string          `json:"category_name"`
	Description   string          `json:"description"`
	FiscalPeriod  string          `json:"fiscal_period"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}

type statementResponse struct {
	Unit           unitResponse       `json:"unit"`
	From           string             `json:"from"`
	To             string             `json:"to"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	ClosingBalance decimal.Decimal    `json:"closing_balance"`
	TotalIncome    decimal.Decimal    `json:"total_income"`
	TotalExpense   decimal.Decimal    `json:"total_expense"`
	Movements      []movementResponse `json:"movements"`
}

// statement accepts optional ?from= and ?to= dates (YYYY-MM-DD).
func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
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

	var from, to time.Time

	if s := r.URL.Query().Get("from"); s != "" {
		if from, err = time.Parse(time.DateOnly, s); err != nil {
			render.BadRequest(w, "from must be YYYY-MM-DD")
			return
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if to, err = time.Parse(time.DateOnly, s); err != nil {
			render.BadRequest(w, "to must be YYYY-MM-DD")
			return
		}
	}

	st, err := h.svc.AccountStatement(r.Context(), scope.TenantID, id, from, to)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := statementResponse{
		Unit:           toResponse(st.Unit),
		From:           st.From.Format(time.DateOnly),
		To:             st.To.Format(time.DateOnly),
		OpeningBalance: st.OpeningBalance,
		ClosingBalance: st.ClosingBalance,
		TotalIncome:    st.TotalIncome,
		TotalExpense:   st.TotalExpense,
		Movements:      make([]movementResponse, len(st.Lines)),
	}

	for i, l := range st.Lines {
		resp.Movements[i] = movementResponse{
			TransactionID: l.TransactionID,
			Date:          l.Date.Format(time.DateOnly),
			Type:          l.Type,
			CategoryName:  l.CategoryName,
			Description:   l.Description,
			FiscalPeriod:  l.FiscalPeriod,
			Amount:        l.Amount,
			Balance:       l.Balance,
		}
	}

	render.JSON(w, http.StatusOK, resp)
}
