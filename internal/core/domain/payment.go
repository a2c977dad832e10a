package domain

import "time"

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// VehicleSummary is the listing summary embedded in payment payloads.
type VehicleSummary struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Brand  string  `json:"brand"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Seller *Seller `json:"seller,omitempty"`
}

// Buyer is the paying account summary embedded in payment payloads.
type Buyer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Payment records a sale transaction against a listing.
type Payment struct {
	ID            int             `json:"id"`
	TransactionID string          `json:"transactionId,omitempty"`
	VehicleID     int             `json:"vehicleId"`
	Amount        float64         `json:"amount"`
	PlatformFee   float64         `json:"platformFee,omitempty"`
	Status        PaymentStatus   `json:"status"`
	Vehicle       *VehicleSummary `json:"vehicle,omitempty"`
	Buyer         *Buyer          `json:"buyer,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PaymentStats aggregates payment counts and collected fees.
type PaymentStats struct {
	PaidCount      int     `json:"paidCount"`
	PendingCount   int     `json:"pendingCount"`
	FailedCount    int     `json:"failedCount"`
	TotalCollected float64 `json:"totalCollected"`
}
