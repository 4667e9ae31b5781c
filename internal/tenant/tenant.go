// Package tenant binds every ledger read and write to one condominium.
package tenant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("TENANT_NOT_FOUND")
	ErrInactive = errors.New("TENANT_INACTIVE")
	ErrMissing  = errors.New("TENANT_REQUIRED")
)

// Tenant is a condominium, the isolation boundary for all other entities.
type Tenant struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// Role of the authenticated actor inside a tenant.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleResident   Role = "resident"
)

// Scope is what the presentation layer learns about the caller: which tenant
// the request is bound to, and who is acting.
type Scope struct {
	TenantID uuid.UUID
	ActorID  uuid.UUID
	Role     Role
}

type scopeKey struct{}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the bound scope or ErrMissing.
func FromContext(ctx context.Context) (Scope, error) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok || s.TenantID == uuid.Nil {
		return Scope{}, ErrMissing
	}

	return s, nil
}
