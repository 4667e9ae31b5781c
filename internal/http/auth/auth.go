// Package auth binds each request to a tenant from a verified bearer token.
// Token issuance lives outside this service; only verification happens here.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

var (
	ErrUnauthorized = errors.New("UNAUTHORIZED")
	ErrForbidden    = errors.New("FORBIDDEN")
)

// Claims carried by the access token. Subject is the acting user id.
type Claims struct {
	TenantID string      `json:"tenant_id"`
	Role     tenant.Role `json:"role"`
	jwt.RegisteredClaims
}

type Resolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error)
}

type Authenticator struct {
	secret  []byte
	tenants Resolver
}

func New(secret []byte, tenants Resolver) *Authenticator {
	return &Authenticator{secret: secret, tenants: tenants}
}

// Middleware rejects requests without a valid token for an active tenant and
// stores the resulting tenant.Scope in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, err := a.scope(r)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				render.JSON(w, http.StatusUnauthorized, map[string]string{"error": ErrUnauthorized.Error()})
				return
			}

			render.Error(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(tenant.WithScope(r.Context(), scope)))
	})
}

func (a *Authenticator) scope(r *http.Request) (tenant.Scope, error) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		return tenant.Scope{}, ErrUnauthorized
	}

	claims, err := a.Verify(raw)
	if err != nil {
		return tenant.Scope{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return tenant.Scope{}, ErrUnauthorized
	}

	actorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return tenant.Scope{}, ErrUnauthorized
	}

	if _, err := a.tenants.Resolve(r.Context(), tenantID); err != nil {
		return tenant.Scope{}, err
	}

	return tenant.Scope{TenantID: tenantID, ActorID: actorID, Role: claims.Role}, nil
}

// Verify checks the signature and expiry of an HMAC-signed token.
func (a *Authenticator) Verify(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// RequireRole only lets through callers whose scope has one of roles.
func RequireRole(roles ...tenant.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope, err := tenant.FromContext(r.Context())
			if err != nil {
				render.Error(w, r, err)
				return
			}

			if !slices.Contains(roles, scope.Role) {
				render.JSON(w, http.StatusForbidden, map[string]string{"error": ErrForbidden.Error()})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
