// Package matching remembers which unit a bank payer description belongs to.
package matching

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrPatternRequired = errors.New("PATTERN_REQUIRED")
	ErrUnitNotFound    = errors.New("UNIT_NOT_FOUND")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindUnit(ctx context.Context, tenantID uuid.UUID, rawDescription string) (uuid.UUID, bool, error)
	UpsertMapping(ctx context.Context, tenantID uuid.UUID, pattern string, unitID uuid.UUID) error
}

// Units checks that a mapping points at a unit of the same tenant.
type Units interface {
	Exists(ctx context.Context, tenantID, unitID uuid.UUID) (bool, error)
}

type Service struct {
	repo  Repository
	units Units
}

func NewService(repo Repository, units Units) *Service {
	return &Service{repo: repo, units: units}
}

// Normalize folds case and whitespace so "SPEI  depto 101 " and
// "SPEI DEPTO 101" are the same pattern.
func Normalize(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

// Suggest returns the unit whose learned pattern is contained in the raw
// description. The longest pattern wins.
func (s *Service) Suggest(ctx context.Context, tenantID uuid.UUID, rawDescription string) (uuid.UUID, bool, error) {
	raw := Normalize(rawDescription)
	if raw == "" {
		return uuid.Nil, false, nil
	}

	return s.repo.FindUnit(ctx, tenantID, raw)
}

// Learn maps a payer pattern to a unit, replacing any earlier mapping.
func (s *Service) Learn(ctx context.Context, tenantID uuid.UUID, pattern string, unitID uuid.UUID) error {
	p := Normalize(pattern)
	if p == "" {
		return ErrPatternRequired
	}

	ok, err := s.units.Exists(ctx, tenantID, unitID)
	if err != nil {
		return err
	}

	if !ok {
		return ErrUnitNotFound
	}

	return s.repo.UpsertMapping(ctx, tenantID, p, unitID)
}
