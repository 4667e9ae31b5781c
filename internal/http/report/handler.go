package report

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/statement"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

type Generator interface {
	Generate(ctx context.Context, tenantID uuid.UUID, period fiscal.Period) (*statement.Statement, error)
}

type Handler struct {
	svc Generator
}

func NewHandler(svc Generator) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/financial-status", h.financialStatus)
}

// financialStatus reports the current month unless ?period=YYYY-MM is given.
func (h *Handler) financialStatus(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var period fiscal.Period

	if s := r.URL.Query().Get("period"); s != "" {
		if period, err = fiscal.ParsePeriod(s); err != nil {
			render.Error(w, r, err)
			return
		}
	}

	st, err := h.svc.Generate(r.Context(), scope.TenantID, period)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(st))
}

type amountResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type incomeResponse struct {
	Normal           amountResponse `json:"normal"`
	Late             amountResponse `json:"late"`
	AdvancesApplied  amountResponse `json:"advances_applied"`
	AdvancesReceived amountResponse `json:"advances_received"`
}

type totalsResponse struct {
	OpeningRemainder decimal.Decimal `json:"opening_remainder"`
	TotalIncomeCash  decimal.Decimal `json:"total_income_cash"`
	PeriodExpense    decimal.Decimal `json:"period_expense"`
	NetPeriodFlow    decimal.Decimal `json:"net_period_flow"`
	FinalBalance     decimal.Decimal `json:"final_balance"`
	AdvanceReserve   decimal.Decimal `json:"advance_reserve"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

type reserveResponse struct {
	FiscalPeriod fiscal.Period   `json:"fiscal_period"`
	Amount       decimal.Decimal `json:"amount"`
	Units        int             `json:"units"`
}

type paymentResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	UnitID        uuid.UUID       `json:"unit_id"`
	UnitNumber    string          `json:"unit_number"`
	OwnerName     string          `json:"owner_name,omitempty"`
	FiscalPeriod  fiscal.Period   `json:"fiscal_period"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"transaction_date"`
	Description   string          `json:"description"`
}

type expenseResponse struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
}

type statementResponse struct {
	Period            fiscal.Period     `json:"period"`
	PeriodLabel       string            `json:"period_label"`
	Income            incomeResponse    `json:"income"`
	Totals            totalsResponse    `json:"totals"`
	ReserveSummary    []reserveResponse `json:"reserve_summary"`
	AdvanceDetail     []paymentResponse `json:"advance_detail"`
	LateDetail        []paymentResponse `json:"late_detail"`
	ExpenseByCategory []expenseResponse `json:"expense_by_category"`
}

func toResponse(st *statement.Statement) statementResponse {
	resp := statementResponse{
		Period:      st.Period,
		PeriodLabel: st.PeriodLabel,
		Income: incomeResponse{
			Normal:           toAmount(st.Income.Normal),
			Late:             toAmount(st.Income.Late),
			AdvancesApplied:  toAmount(st.Income.AdvancesApplied),
			AdvancesReceived: toAmount(st.Income.AdvancesReceived),
		},
		Totals: totalsResponse{
			OpeningRemainder: st.Totals.OpeningRemainder,
			TotalIncomeCash:  st.Totals.TotalIncomeCash,
			PeriodExpense:    st.Totals.PeriodExpense,
			NetPeriodFlow:    st.Totals.NetPeriodFlow,
			FinalBalance:     st.Totals.FinalBalance,
			AdvanceReserve:   st.Totals.AdvanceReserve,
			AvailableBalance: st.Totals.AvailableBalance,
		},
		ReserveSummary:    make([]reserveResponse, 0, len(st.ReserveSummary)),
		AdvanceDetail:     toPayments(st.AdvanceDetail),
		LateDetail:        toPayments(st.LateDetail),
		ExpenseByCategory: make([]expenseResponse, 0, len(st.ExpenseByCategory)),
	}

	for _, l := range st.ReserveSummary {
		resp.ReserveSummary = append(resp.ReserveSummary, reserveResponse{
			FiscalPeriod: l.Period,
			Amount:       l.Amount,
			Units:        l.Units,
		})
	}

	for _, e := range st.ExpenseByCategory {
		resp.ExpenseByCategory = append(resp.ExpenseByCategory, expenseResponse(e))
	}

	return resp
}

func toAmount(a statement.Amount) amountResponse {
	return amountResponse{Amount: a.Sum, Count: a.Count}
}

func toPayments(ps []statement.PaymentDetail) []paymentResponse {
	out := make([]paymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, paymentResponse{
			TransactionID: p.TransactionID,
			UnitID:        p.UnitID,
			UnitNumber:    p.UnitNumber,
			OwnerName:     p.OwnerName,
			FiscalPeriod:  p.FiscalPeriod,
			Amount:        p.Amount,
			Date:          p.Date.Format(time.DateOnly),
			Description:   p.Description,
		})
	}

	return out
}
