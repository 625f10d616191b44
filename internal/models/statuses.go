package models

type UserRole string
type ItemStatus string
type ReservationStatus string
type Rating string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	ItemStatusAvailable          ItemStatus = "available"
	ItemStatusPendingReservation ItemStatus = "pending_reservation"
	ItemStatusReserved           ItemStatus = "reserved"
	ItemStatusSoldOut            ItemStatus = "sold_out"

	ReservationStatusPendingApproval ReservationStatus = "pending_approval"
	ReservationStatusReserved        ReservationStatus = "reserved"
	ReservationStatusCompleted       ReservationStatus = "completed"
	ReservationStatusCancelled       ReservationStatus = "cancelled"
	ReservationStatusRejected        ReservationStatus = "rejected"

	RatingGood   Rating = "good"
	RatingNormal Rating = "normal"
	RatingBad    Rating = "bad"
)

// IsTerminal reports whether a reservation in this status no longer holds a
// claim on its item.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case ReservationStatusCompleted, ReservationStatusCancelled, ReservationStatusRejected:
		return true
	}
	return false
}

func ValidRating(r Rating) bool {
	switch r {
	case RatingGood, RatingNormal, RatingBad:
		return true
	}
	return false
}
