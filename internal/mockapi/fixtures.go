package mockapi

import (
	"strconv"
	"time"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// Development fixtures. Deterministic on purpose: tests and manual poking
// both rely on stable IDs.

func defaultAccounts() []Credential {
	base := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	return []Credential{
		{
			User:     domain.User{ID: 1, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin, CreatedAt: base},
			Password: "secret",
		},
		{
			User:     domain.User{ID: 2, Name: "Rahim Uddin", Email: "rahim@example.com", Role: domain.RoleUser, CreatedAt: base.AddDate(0, 1, 4)},
			Password: "password1",
		},
		{
			User:     domain.User{ID: 3, Name: "Karim Motors", Email: "karim@example.com", Role: domain.RoleUser, CreatedAt: base.AddDate(0, 2, 12)},
			Password: "password2",
		},
		{
			User:     domain.User{ID: 4, Name: "Sultana Begum", Email: "sultana@example.com", Role: domain.RoleUser, CreatedAt: base.AddDate(0, 3, 1)},
			Password: "password3",
		},
	}
}

func (s *Store) seedVehicles() {
	now := time.Now().UTC()
	sellers := []domain.Seller{
		{ID: 2, Name: "Rahim Uddin", Email: "rahim@example.com"},
		{ID: 3, Name: "Karim Motors", Email: "karim@example.com"},
		{ID: 4, Name: "Sultana Begum", Email: "sultana@example.com"},
	}

	type seed struct {
		title, brand, typ string
		price             float64
		status            domain.VehicleStatus
		ageDays           int
		seller            int
	}
	seeds := []seed{
		{"2024 Toyota Camry", "Toyota", "sedan", 3500000, domain.VehiclePending, 1, 0},
		{"2023 Honda CR-V", "Honda", "suv", 4200000, domain.VehiclePending, 2, 1},
		{"2022 Tesla Model 3", "Tesla", "sedan", 4800000, domain.VehiclePending, 3, 2},
		{"2024 Ford F-150", "Ford", "pickup", 5500000, domain.VehicleApproved, 5, 0},
		{"2023 BMW X5", "BMW", "suv", 7500000, domain.VehicleApproved, 7, 1},
		{"2021 Toyota Corolla", "Toyota", "sedan", 2400000, domain.VehicleApproved, 9, 2},
		{"2020 Honda Civic", "Honda", "sedan", 2100000, domain.VehicleRejected, 11, 1},
		{"2019 Audi A4", "Audi", "sedan", 3900000, domain.VehicleSold, 15, 0},
		{"2022 Mercedes GLE", "Mercedes", "suv", 8200000, domain.VehicleSold, 20, 2},
		{"2021 Ford Mustang", "Ford", "coupe", 4600000, domain.VehicleSold, 25, 1},
	}

	for i, sd := range seeds {
		seller := sellers[sd.seller]
		id := i + 1
		created := now.AddDate(0, 0, -sd.ageDays-3)
		s.vehicles[id] = &domain.Vehicle{
			ID:          id,
			Title:       sd.title,
			Description: sd.title + " in excellent condition",
			Brand:       sd.brand,
			Type:        sd.typ,
			Price:       sd.price,
			Images:      []string{"/uploads/vehicles/" + strconv.Itoa(id) + ".jpg"},
			Status:      sd.status,
			SellerID:    seller.ID,
			Seller:      &seller,
			CreatedAt:   created,
			UpdatedAt:   now.AddDate(0, 0, -sd.ageDays),
		}
	}
}

func (s *Store) seedPayments() {
	now := time.Now().UTC()

	type seed struct {
		vehicleID int
		status    domain.PaymentStatus
		ageDays   int
		buyerID   int
	}
	seeds := []seed{
		{8, domain.PaymentPaid, 14, 4},
		{9, domain.PaymentPaid, 18, 2},
		{10, domain.PaymentPending, 2, 4},
		{5, domain.PaymentPending, 1, 3},
		{6, domain.PaymentFailed, 4, 2},
	}

	for i, sd := range seeds {
		id := i + 1
		v := s.vehicles[sd.vehicleID]
		buyer, _ := s.buyerByID(sd.buyerID)
		ts := now.AddDate(0, 0, -sd.ageDays)
		s.payments[id] = &domain.Payment{
			ID:            id,
			TransactionID: "TXN-" + strconv.Itoa(100000+id),
			VehicleID:     v.ID,
			Amount:        v.Price,
			PlatformFee:   v.Price * 0.05,
			Status:        sd.status,
			Vehicle: &domain.VehicleSummary{
				ID:     v.ID,
				Title:  v.Title,
				Brand:  v.Brand,
				Type:   v.Type,
				Price:  v.Price,
				Seller: v.Seller,
			},
			Buyer:     buyer,
			CreatedAt: ts.Add(-6 * time.Hour),
			UpdatedAt: ts,
		}
	}
}

func (s *Store) buyerByID(id int) (*domain.Buyer, bool) {
	for _, acct := range s.accounts {
		if acct.user.ID == id {
			return &domain.Buyer{ID: acct.user.ID, Name: acct.user.Name, Email: acct.user.Email}, true
		}
	}
	return nil, false
}
