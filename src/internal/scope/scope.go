package scope

import (
	"errors"
	"strconv"
)

// Role mirrors the user roles carried in the bearer claim.
type Role string

const (
	RoleSuperAdmin  Role = "SUPER_ADMIN"
	RoleTenantAdmin Role = "TENANT_ADMIN"
	RoleAdmin       Role = "ADMIN"
	RoleDispatcher  Role = "DISPATCHER"
	RoleDriver      Role = "DRIVER"
	RoleCustomer    Role = "CUSTOMER"
)

// IsPlatformOperator reports whether the role may see data across all tenants.
func (r Role) IsPlatformOperator() bool {
	return r == RoleSuperAdmin
}

var (
	ErrNoTenantAssigned = errors.New("caller has no assigned tenant and no override was supplied")
	ErrInvalidOverride  = errors.New("tenant override is not a valid tenant identifier")
	ErrAmbiguousTenant  = errors.New("creation under all-tenants scope requires an explicit target tenant")
)

// Scope is the resolved tenant filter for one request: either every tenant
// (platform operator) or exactly one.
type Scope struct {
	all      bool
	tenantID int64
}

// All is the unfiltered scope.
func All() Scope {
	return Scope{all: true}
}

// Exactly restricts to a single tenant.
func Exactly(tenantID int64) Scope {
	return Scope{tenantID: tenantID}
}

func (s Scope) IsAll() bool {
	return s.all
}

// TenantID returns the single tenant and true, or false for the All scope.
func (s Scope) TenantID() (int64, bool) {
	if s.all {
		return 0, false
	}
	return s.tenantID, true
}

// Resolve computes the effective scope for a caller. An explicit override
// wins for every role, which lets a platform operator act as a tenant and an
// ordinary caller re-affirm its own. Without an override a platform operator
// sees everything and an ordinary caller falls back to its assigned tenant.
func Resolve(role Role, callerTenantID *int64, override string) (Scope, error) {
	if override != "" {
		id, err := strconv.ParseInt(override, 10, 64)
		if err != nil || id <= 0 {
			return Scope{}, ErrInvalidOverride
		}
		return Exactly(id), nil
	}

	if role.IsPlatformOperator() {
		return All(), nil
	}

	if callerTenantID != nil && *callerTenantID > 0 {
		return Exactly(*callerTenantID), nil
	}

	return Scope{}, ErrNoTenantAssigned
}

// Append adds the tenant filter for the given column to a WHERE clause that
// already has at least one predicate. Every repository query goes through
// here so no read or write path can diverge from the gate.
func (s Scope) Append(query string, args []interface{}, column string) (string, []interface{}) {
	if s.all {
		return query, args
	}
	return query + " AND " + column + " = ?", append(args, s.tenantID)
}

// OwningTenant resolves the tenant a new row must belong to. Under Exactly
// the scope decides; under All the caller must name a target tenant.
func (s Scope) OwningTenant(explicit *int64) (int64, error) {
	if id, ok := s.TenantID(); ok {
		return id, nil
	}
	if explicit != nil && *explicit > 0 {
		return *explicit, nil
	}
	return 0, ErrAmbiguousTenant
}
