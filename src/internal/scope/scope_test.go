package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestResolveOverrideWinsForAnyRole(t *testing.T) {
	for _, role := range []Role{RoleSuperAdmin, RoleAdmin, RoleDispatcher, RoleCustomer} {
		s, err := Resolve(role, int64Ptr(9), "5")
		require.NoError(t, err, "role %s", role)
		id, ok := s.TenantID()
		assert.True(t, ok)
		assert.Equal(t, int64(5), id)
	}
}

func TestResolveSuperAdminWithoutOverrideSeesAll(t *testing.T) {
	s, err := Resolve(RoleSuperAdmin, nil, "")
	require.NoError(t, err)
	assert.True(t, s.IsAll())

	_, ok := s.TenantID()
	assert.False(t, ok)
}

func TestResolveOrdinaryRoleUsesAssignedTenant(t *testing.T) {
	s, err := Resolve(RoleDispatcher, int64Ptr(7), "")
	require.NoError(t, err)

	id, ok := s.TenantID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestResolveOrdinaryRoleWithoutTenantFails(t *testing.T) {
	_, err := Resolve(RoleAdmin, nil, "")
	assert.ErrorIs(t, err, ErrNoTenantAssigned)

	zero := int64(0)
	_, err = Resolve(RoleAdmin, &zero, "")
	assert.ErrorIs(t, err, ErrNoTenantAssigned)
}

func TestResolveMalformedOverride(t *testing.T) {
	for _, override := range []string{"abc", "-1", "0", "5x"} {
		_, err := Resolve(RoleSuperAdmin, nil, override)
		assert.ErrorIs(t, err, ErrInvalidOverride, "override %q", override)
	}
}

func TestAppendExactlyAddsFilter(t *testing.T) {
	query, args := Exactly(5).Append("SELECT * FROM customers WHERE is_archived = 0", []interface{}{}, "tenant_id")
	assert.Equal(t, "SELECT * FROM customers WHERE is_archived = 0 AND tenant_id = ?", query)
	require.Len(t, args, 1)
	assert.Equal(t, int64(5), args[0])
}

func TestAppendAllIsNoOp(t *testing.T) {
	query, args := All().Append("SELECT * FROM customers WHERE is_archived = 0", nil, "tenant_id")
	assert.Equal(t, "SELECT * FROM customers WHERE is_archived = 0", query)
	assert.Empty(t, args)
}

func TestOwningTenant(t *testing.T) {
	id, err := Exactly(3).OwningTenant(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	// Exactly wins even when an explicit tenant is supplied.
	id, err = Exactly(3).OwningTenant(int64Ptr(8))
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	id, err = All().OwningTenant(int64Ptr(8))
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)

	_, err = All().OwningTenant(nil)
	assert.ErrorIs(t, err, ErrAmbiguousTenant)
}
