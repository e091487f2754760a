package token

import "github.com/golang-jwt/jwt/v5"

// Claim is the bearer token payload the auth middleware extracts. TenantID is
// nil for platform-operator accounts that are not bound to a tenant.
type Claim struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	TenantID *int64 `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}
