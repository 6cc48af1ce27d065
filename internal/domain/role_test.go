package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageFacilities())
	assert.True(t, RoleAdmin.CanViewAllReservations())
	assert.True(t, RoleAdmin.CanCancelAnyReservation())

	assert.False(t, RoleResident.CanManageFacilities())
	assert.False(t, RoleResident.CanViewAllReservations())
	assert.False(t, RoleResident.CanCancelAnyReservation())

	// Неизвестная роль не получает привилегий
	unknown := Role("manager")
	assert.False(t, unknown.CanManageFacilities())
	assert.False(t, unknown.CanViewAllReservations())
	assert.False(t, unknown.CanCancelAnyReservation())
}

func TestReservationIsActive(t *testing.T) {
	res := &Reservation{Status: StatusConfirmed}
	assert.True(t, res.IsActive())

	res.Status = StatusCancelled
	assert.False(t, res.IsActive())
}

func TestReservationIsOwnedBy(t *testing.T) {
	res := &Reservation{UserID: 42}
	assert.True(t, res.IsOwnedBy(42))
	assert.False(t, res.IsOwnedBy(7))
}

func TestFacilityHasSpotsFor(t *testing.T) {
	f := &Facility{Capacity: 2}
	assert.True(t, f.HasSpotsFor(0))
	assert.True(t, f.HasSpotsFor(1))
	assert.False(t, f.HasSpotsFor(2))
	assert.False(t, f.HasSpotsFor(3))
}
