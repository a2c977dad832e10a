package domain

import "time"

// VehicleStatus represents the moderation state of a listing.
type VehicleStatus string

const (
	VehiclePending  VehicleStatus = "pending"
	VehicleApproved VehicleStatus = "approved"
	VehicleRejected VehicleStatus = "rejected"
	VehicleSold     VehicleStatus = "sold"
)

// validModerations defines the allowed moderation transitions.
var validModerations = map[VehicleStatus][]VehicleStatus{
	VehiclePending:  {VehicleApproved, VehicleRejected},
	VehicleApproved: {VehicleSold},
}

// CanTransitionTo reports whether a listing may move from its current status
// to next. Rejected and sold are terminal.
func (s VehicleStatus) CanTransitionTo(next VehicleStatus) bool {
	for _, allowed := range validModerations[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s belongs to the closed status set.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehiclePending, VehicleApproved, VehicleRejected, VehicleSold:
		return true
	}
	return false
}

// Seller is the listing owner summary embedded in vehicle payloads.
type Seller struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Vehicle is a marketplace listing. Instances are read-only projections of
// server state; mutations happen only through moderation endpoints.
type Vehicle struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Brand       string        `json:"brand"`
	Type        string        `json:"type"`
	Price       float64       `json:"price"`
	Images      []string      `json:"images,omitempty"`
	Status      VehicleStatus `json:"status"`
	SellerID    int           `json:"sellerId"`
	Seller      *Seller       `json:"seller,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
