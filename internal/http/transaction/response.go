package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
)

type transactionResponse struct {
	ID               uuid.UUID       `json:"id"`
	UnitID           *uuid.UUID      `json:"unit_id,omitempty"`
	UnitNumber       string          `json:"unit_number,omitempty"`
	CategoryID       uuid.UUID       `json:"category_id"`
	CategoryName     string          `json:"category_name,omitempty"`
	Type             category.Type   `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	Date             string          `json:"transaction_date"`
	FiscalPeriod     fiscal.Period   `json:"fiscal_period"`
	Status           ledger.Status   `json:"status"`
	IsAdvancePayment bool            `json:"is_advance_payment"`
	IsLatePayment    bool            `json:"is_late_payment"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	ReferenceNumber  string          `json:"reference_number,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedBy        *uuid.UUID      `json:"created_by,omitempty"`
	IsRealCash       *bool           `json:"is_real_cash,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type resultResponse struct {
	Transaction transactionResponse `json:"transaction"`
	UnitBalance *decimal.Decimal    `json:"unit_balance,omitempty"`
}

type summaryResponse struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
	Net           decimal.Decimal `json:"net"`
	Count         int             `json:"count"`
	AdvanceCount  int             `json:"advance_count"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	LateCount     int             `json:"late_count"`
	LateAmount    decimal.Decimal `json:"late_amount"`
}

type listResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Summary      *summaryResponse      `json:"summary,omitempty"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:               tx.ID,
		UnitID:           tx.UnitID,
		UnitNumber:       tx.UnitNumber,
		CategoryID:       tx.CategoryID,
		CategoryName:     tx.CategoryName,
		Type:             tx.Type,
		Amount:           tx.Amount,
		Description:      tx.Description,
		Date:             tx.Date.Format(time.DateOnly),
		FiscalPeriod:     tx.FiscalPeriod,
		Status:           tx.Status,
		IsAdvancePayment: tx.IsAdvancePayment,
		IsLatePayment:    tx.IsLatePayment,
		PaymentMethod:    tx.PaymentMethod,
		ReferenceNumber:  tx.ReferenceNumber,
		Notes:            tx.Notes,
		CreatedBy:        tx.CreatedBy,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}

func toResultResponse(res *ledger.Result) resultResponse {
	return resultResponse{
		Transaction: toResponse(res.Transaction),
		UnitBalance: res.UnitBalance,
	}
}

func toListResponse(res *ledger.ListResult) listResponse {
	resp := listResponse{Transactions: make([]transactionResponse, len(res.Transactions))}
	for i, tx := range res.Transactions {
		resp.Transactions[i] = toResponse(tx)
		resp.Transactions[i].IsRealCash = new(tx.IsRealCash)
	}

	if s := res.Summary; s != nil {
		resp.Summary = &summaryResponse{
			TotalIncome:   s.TotalIncome,
			TotalExpense:  s.TotalExpense,
			Net:           s.Net(),
			Count:         s.Count,
			AdvanceCount:  s.AdvanceCount,
			AdvanceAmount: s.AdvanceAmount,
			LateCount:     s.LateCount,
			LateAmount:    s.LateAmount,
		}
	}

	return resp
}
