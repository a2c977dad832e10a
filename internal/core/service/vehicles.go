package service

import (
	"context"
	"fmt"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// VehiclesService covers listing retrieval and moderation.
type VehiclesService struct {
	api API
}

func NewVehiclesService(api API) *VehiclesService {
	return &VehiclesService{api: api}
}

// Pending lists vehicles awaiting moderation.
func (s *VehiclesService) Pending(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := s.api.Get(ctx, "/admin/vehicles/pending", &vehicles)
	return vehicles, err
}

// Approved lists live listings.
func (s *VehiclesService) Approved(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := s.api.Get(ctx, "/vehicles?status=approved", &vehicles)
	return vehicles, err
}

// Rejected lists listings turned down by moderation.
func (s *VehiclesService) Rejected(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := s.api.Get(ctx, "/vehicles?status=rejected", &vehicles)
	return vehicles, err
}

// Sold lists completed sales.
func (s *VehiclesService) Sold(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := s.api.Get(ctx, "/admin/vehicles/sold", &vehicles)
	return vehicles, err
}

// Get fetches a single listing.
func (s *VehiclesService) Get(ctx context.Context, id int) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := s.api.Get(ctx, fmt.Sprintf("/vehicles/%d", id), &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Approve moves a pending listing to approved.
func (s *VehiclesService) Approve(ctx context.Context, id int) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := s.api.Post(ctx, fmt.Sprintf("/admin/vehicles/%d/approve", id), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Reject moves a pending listing to rejected.
func (s *VehiclesService) Reject(ctx context.Context, id int) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := s.api.Post(ctx, fmt.Sprintf("/admin/vehicles/%d/reject", id), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}
