package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleKind(t *testing.T) {
	assert.Equal(t, PrincipalStaff, RoleAdmin.Kind())
	assert.Equal(t, PrincipalStaff, RoleManager.Kind())
	assert.Equal(t, PrincipalStaff, RoleStaff.Kind())
	assert.Equal(t, PrincipalCustomer, RoleCustomer.Kind())
	assert.False(t, Role("root").Valid())
}

func TestBannerShouldBeActive(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	before, after := now.Add(-time.Minute), now.Add(time.Minute)

	assert.True(t, Banner{}.ShouldBeActive(now))
	assert.True(t, Banner{StartDate: &before, EndDate: &after}.ShouldBeActive(now))
	assert.True(t, Banner{StartDate: &now, EndDate: &now}.ShouldBeActive(now))
	assert.False(t, Banner{StartDate: &after}.ShouldBeActive(now))
	assert.False(t, Banner{EndDate: &before}.ShouldBeActive(now))
}

func TestDefaultAddresses(t *testing.T) {
	addresses := []Address{
		{ID: "1"},
		{ID: "2", IsDefaultShipping: true},
		{ID: "3", IsDefaultBilling: true},
	}
	assert.Equal(t, "2", DefaultShipping(addresses).ID)
	assert.Equal(t, "3", DefaultBilling(addresses).ID)
	assert.Nil(t, DefaultShipping(addresses[:1]))
	assert.Nil(t, DefaultBilling(nil))
}
