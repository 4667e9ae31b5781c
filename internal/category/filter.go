package category

import "github.com/google/uuid"

// CashFilter separates real cash movements from virtual issuance charges.
// The zero value accepts everything. IsRealCash applies the same rule the
// report queries express as NOT (category_id = ANY(VirtualIDs())); keep the
// two in step.
type CashFilter struct {
	virtual map[uuid.UUID]struct{}
}

func NewCashFilter(virtualIDs ...uuid.UUID) CashFilter {
	f := CashFilter{virtual: make(map[uuid.UUID]struct{}, len(virtualIDs))}
	for _, id := range virtualIDs {
		f.virtual[id] = struct{}{}
	}

	return f
}

// IsRealCash is false only for expenses booked against a virtual issuance
// category. Income is always real cash.
func (f CashFilter) IsRealCash(categoryID uuid.UUID, t Type) bool {
	if t == TypeIncome {
		return true
	}

	_, virtual := f.virtual[categoryID]

	return !virtual
}

// VirtualIDs returns the excluded category ids as strings, ready to bind as a
// uuid[] query parameter. Empty when the tenant has no virtual category.
func (f CashFilter) VirtualIDs() []string {
	ids := make([]string, 0, len(f.virtual))
	for id := range f.virtual {
		ids = append(ids, id.String())
	}

	return ids
}

func (f CashFilter) Empty() bool {
	return len(f.virtual) == 0
}
