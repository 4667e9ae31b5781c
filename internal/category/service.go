package category

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	GetCategory(ctx context.Context, tenantID, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	FindByPurpose(ctx context.Context, tenantID uuid.UUID, purpose Purpose, t Type) (*Category, error)
	VirtualIssuanceIDs(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error)
}

type ListFilter struct {
	Type    *Type
	Purpose *Purpose
}

type CreateParams struct {
	Name            string
	Type            Type
	Purpose         Purpose
	IsCommonExpense bool
}

const filterTTL = 5 * time.Minute

type cachedFilter struct {
	filter  CashFilter
	expires time.Time
}

type Service struct {
	repo Repository
	now  func() time.Time

	mu      sync.RWMutex
	filters map[uuid.UUID]cachedFilter
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:    repo,
		now:     time.Now,
		filters: make(map[uuid.UUID]cachedFilter),
	}
}

// Get returns a category owned by the tenant or shared by the system.
func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Category, error) {
	return s.repo.ListCategories(ctx, tenantID, filter)
}

// FindByPurpose resolves the category the tenant uses for a special purpose,
// preferring a tenant-owned category over the shared one.
func (s *Service) FindByPurpose(ctx context.Context, tenantID uuid.UUID, purpose Purpose, t Type) (*Category, error) {
	return s.repo.FindByPurpose(ctx, tenantID, purpose, t)
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, params CreateParams) (*Category, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if !params.Type.Valid() {
		return nil, ErrInvalidType
	}

	if params.Purpose == "" {
		params.Purpose = PurposeNormal
	}

	if !params.Purpose.Valid() {
		return nil, ErrInvalidPurpose
	}

	// Each special purpose only makes sense on one side of the ledger.
	switch params.Purpose {
	case PurposeVirtualIssuance:
		if params.Type != TypeExpense {
			return nil, ErrInvalidPurpose
		}
	case PurposeMaintenanceFee, PurposeUnitlessIncome:
		if params.Type != TypeIncome {
			return nil, ErrInvalidPurpose
		}
	}

	c := &Category{
		TenantID:        &tenantID,
		Name:            name,
		Type:            params.Type,
		Purpose:         params.Purpose,
		IsCommonExpense: params.IsCommonExpense,
		IsActive:        true,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	if c.Purpose == PurposeVirtualIssuance {
		s.invalidate(tenantID)
	}

	return c, nil
}

// CashFilter returns the tenant's virtual-charge filter, cached per tenant.
func (s *Service) CashFilter(ctx context.Context, tenantID uuid.UUID) (CashFilter, error) {
	now := s.now()

	s.mu.RLock()
	cached, ok := s.filters[tenantID]
	s.mu.RUnlock()

	if ok && now.Before(cached.expires) {
		return cached.filter, nil
	}

	ids, err := s.repo.VirtualIssuanceIDs(ctx, tenantID)
	if err != nil {
		return CashFilter{}, fmt.Errorf("resolving virtual issuance categories: %w", err)
	}

	f := NewCashFilter(ids...)

	s.mu.Lock()
	s.filters[tenantID] = cachedFilter{filter: f, expires: now.Add(filterTTL)}
	s.mu.Unlock()

	return f, nil
}

func (s *Service) invalidate(tenantID uuid.UUID) {
	s.mu.Lock()
	delete(s.filters, tenantID)
	s.mu.Unlock()
}
