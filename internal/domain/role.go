package domain

// Role represents the caller's role resolved by the upstream identity service
type Role string

const (
	RoleResident Role = "resident"
	RoleAdmin    Role = "admin"
)

// CanManageFacilities возвращает true, если роль позволяет менять цену и вместимость объектов
func (r Role) CanManageFacilities() bool {
	return r == RoleAdmin
}

// CanViewAllReservations возвращает true, если роль позволяет видеть чужие бронирования
func (r Role) CanViewAllReservations() bool {
	return r == RoleAdmin
}

// CanCancelAnyReservation возвращает true, если роль позволяет отменять чужие бронирования
func (r Role) CanCancelAnyReservation() bool {
	return r == RoleAdmin
}
