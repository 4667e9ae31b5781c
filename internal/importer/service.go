package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/fiscal"
	"github.com/MrJamesThe3rd/condo/internal/importer/bank"
	"github.com/MrJamesThe3rd/condo/internal/ledger"
)

const paymentMethod = "bank_transfer"

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type Matcher interface {
	Suggest(ctx context.Context, tenantID uuid.UUID, rawDescription string) (uuid.UUID, bool, error)
}

type Categories interface {
	FindByPurpose(ctx context.Context, tenantID uuid.UUID, purpose category.Purpose, t category.Type) (*category.Category, error)
}

type Ledger interface {
	Create(ctx context.Context, tenantID uuid.UUID, params ledger.CreateParams) (*ledger.Result, error)
}

type Service struct {
	parser     Importer
	matcher    Matcher
	categories Categories
	ledger     Ledger
}

func NewService(matcher Matcher, categories Categories, l Ledger) *Service {
	return &Service{
		parser:     bank.NewParser(),
		matcher:    matcher,
		categories: categories,
		ledger:     l,
	}
}

// Preview parses the statement and matches every deposit to a unit without
// writing anything.
func (s *Service) Preview(ctx context.Context, tenantID uuid.UUID, r io.Reader) ([]Preview, error) {
	previews, _, err := s.preview(ctx, tenantID, r)
	return previews, err
}

// preview also reports how many withdrawals it dropped.
func (s *Service) preview(ctx context.Context, tenantID uuid.UUID, r io.Reader) ([]Preview, int, error) {
	movements, err := s.parser.Parse(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parse statement: %w", err)
	}

	var (
		out     []Preview
		skipped int
	)

	for _, m := range movements {
		if m.Type != category.TypeIncome {
			skipped++
			continue
		}

		p := Preview{Movement: m}

		unitID, ok, err := s.matcher.Suggest(ctx, tenantID, m.Description)
		if err != nil {
			return nil, 0, fmt.Errorf("match row %d: %w", m.Row, err)
		}

		if ok {
			p.UnitID = &unitID
		}

		out = append(out, p)
	}

	return out, skipped, nil
}

// Import posts every matched deposit as a confirmed maintenance payment for
// the month it was received. Deposits the ledger refuses (duplicates for the
// period, unknown units) are reported, not fatal.
func (s *Service) Import(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, r io.Reader) (*Result, error) {
	previews, skipped, err := s.preview(ctx, tenantID, r)
	if err != nil {
		return nil, err
	}

	cat, err := s.categories.FindByPurpose(ctx, tenantID, category.PurposeMaintenanceFee, category.TypeIncome)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrNoPaymentCategory
		}

		return nil, fmt.Errorf("find payment category: %w", err)
	}

	res := &Result{Skipped: skipped}

	for _, p := range previews {
		if p.UnitID == nil {
			res.Unmatched = append(res.Unmatched, p.Movement)
			continue
		}

		posted, err := s.ledger.Create(ctx, tenantID, ledger.CreateParams{
			UnitID:          p.UnitID,
			CategoryID:      cat.ID,
			Type:            category.TypeIncome,
			Amount:          p.Movement.Amount,
			Description:     p.Movement.Description,
			Date:            p.Movement.Date,
			FiscalPeriod:    fiscal.PeriodOf(p.Movement.Date),
			PaymentMethod:   paymentMethod,
			ReferenceNumber: p.Movement.Reference,
			CreatedBy:       actorID,
		})
		if err != nil {
			if code, ok := rejectionCode(err); ok {
				res.Rejected = append(res.Rejected, Rejection{Movement: p.Movement, Code: code})
				continue
			}

			return res, fmt.Errorf("post row %d: %w", p.Movement.Row, err)
		}

		res.Posted = append(res.Posted, posted.Transaction.ID)
	}

	slog.InfoContext(ctx, "bank statement imported",
		"tenant_id", tenantID,
		"posted", len(res.Posted),
		"unmatched", len(res.Unmatched),
		"rejected", len(res.Rejected),
	)

	return res, nil
}

var rejectable = []error{
	ledger.ErrDuplicatePayment,
	ledger.ErrUnitNotFound,
	ledger.ErrInvalidAmount,
	ledger.ErrCategoryTypeMismatch,
}

func rejectionCode(err error) (string, bool) {
	for _, target := range rejectable {
		if errors.Is(err, target) {
			return target.Error(), true
		}
	}

	return "", false
}
