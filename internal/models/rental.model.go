package models

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	StatusAvailable RentalStatus = "available"
	StatusReserved  RentalStatus = "reserved"
	StatusRented    RentalStatus = "rented"
	StatusReturned  RentalStatus = "returned"
)

// rentalTransitions is the forward-only rental state machine. An item
// cycles back to available, but a rental never does.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	StatusReserved: {StatusRented, StatusReturned},
	StatusRented:   {StatusReturned},
}

func (s RentalStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusRented, StatusReturned:
		return true
	}
	return false
}

// CanTransitionTo reports whether a rental in status s may move to next.
func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// MirrorForItem maps a rental status onto the linked clothing item. A
// returned rental releases the item back to available; a rental is never
// itself "available".
func (s RentalStatus) MirrorForItem() RentalStatus {
	if s == StatusReturned {
		return StatusAvailable
	}
	return s
}

// Rental links a renter to a clothing item for an inclusive date range.
// OwnerID is denormalized from the item at creation time.
type Rental struct {
	BaseUUIDModel
	ClothID     uuid.UUID     `gorm:"type:uuid;not null;index"              json:"clothId"`
	Cloth       *ClothingItem `gorm:"foreignKey:ClothID"                    json:"cloth,omitempty"`
	RenterID    uuid.UUID     `gorm:"type:uuid;not null;index"              json:"renterId"`
	Renter      *User         `gorm:"foreignKey:RenterID"                   json:"renter,omitempty"`
	OwnerID     uuid.UUID     `gorm:"type:uuid;not null;index"              json:"ownerId"`
	Owner       *User         `gorm:"foreignKey:OwnerID"                    json:"owner,omitempty"`
	StartDate   time.Time     `gorm:"type:date;not null"                    json:"startDate"`
	EndDate     time.Time     `gorm:"type:date;not null"                    json:"endDate"`
	TotalAmount int           `gorm:"not null"                              json:"totalAmount"`
	Status      RentalStatus  `gorm:"type:text;not null;default:'reserved'" json:"status"`
	AdminNotes  *string       `gorm:"type:text"                             json:"adminNotes,omitempty"`
	Overdue     bool          `gorm:"not null;default:false"                json:"overdue"`
}

// Active reports whether the rental still holds the item.
func (r *Rental) Active() bool {
	return r.Status == StatusReserved || r.Status == StatusRented
}
