package service

import (
	"context"
	"fmt"

	"github.com/motobazar/admin-console/internal/client"
	"github.com/motobazar/admin-console/internal/core/domain"
)

// PaymentsService covers payment records, aggregates, and confirmation.
type PaymentsService struct {
	api API
}

func NewPaymentsService(api API) *PaymentsService {
	return &PaymentsService{api: api}
}

// All lists every payment record.
func (s *PaymentsService) All(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := s.api.Get(ctx, "/payments", &payments)
	return payments, err
}

// Pending lists payments awaiting settlement.
func (s *PaymentsService) Pending(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := s.api.Get(ctx, "/payments?status=pending", &payments)
	return payments, err
}

// Paid lists settled payments.
func (s *PaymentsService) Paid(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := s.api.Get(ctx, "/payments/paid", &payments)
	return payments, err
}

// ByVehicle returns the payment attached to a listing. A vehicle may
// legitimately have no payment yet, so a 404 resolves to (nil, nil) rather
// than an error.
func (s *PaymentsService) ByVehicle(ctx context.Context, vehicleID int) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.api.Get(ctx, fmt.Sprintf("/payments/vehicle/%d", vehicleID), &payment); err != nil {
		if client.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// Stats fetches the payment aggregates.
func (s *PaymentsService) Stats(ctx context.Context) (*domain.PaymentStats, error) {
	var stats domain.PaymentStats
	if err := s.api.Get(ctx, "/payments/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Confirm marks a pending payment as paid.
func (s *PaymentsService) Confirm(ctx context.Context, id int) (*domain.Payment, error) {
	var payment domain.Payment
	if err := s.api.Post(ctx, fmt.Sprintf("/payments/%d/confirm", id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
