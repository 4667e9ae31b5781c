package tenant

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tenant
type Repository interface {
	GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error)
	ListActive(ctx context.Context) ([]*Tenant, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns the tenant only if it exists and is active.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	if id == uuid.Nil {
		return nil, ErrMissing
	}

	t, err := s.repo.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	if !t.IsActive {
		return nil, ErrInactive
	}

	return t, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*Tenant, error) {
	return s.repo.ListActive(ctx)
}
