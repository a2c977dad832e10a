package service

import (
	"context"
	"testing"

	"github.com/motobazar/admin-console/internal/core/domain"
)

func TestVehiclesService_ListEndpoints(t *testing.T) {
	cases := []struct {
		name string
		key  string
		call func(*VehiclesService, context.Context) ([]domain.Vehicle, error)
	}{
		{"pending", "GET /admin/vehicles/pending", (*VehiclesService).Pending},
		{"approved", "GET /vehicles?status=approved", (*VehiclesService).Approved},
		{"rejected", "GET /vehicles?status=rejected", (*VehiclesService).Rejected},
		{"sold", "GET /admin/vehicles/sold", (*VehiclesService).Sold},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI(t)
			api.respond(tc.key, []domain.Vehicle{{ID: 5, Title: "Yamaha R15", Brand: "Yamaha"}})

			vehicles, err := tc.call(NewVehiclesService(api), context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(vehicles) != 1 || vehicles[0].ID != 5 {
				t.Fatalf("unexpected vehicles: %+v", vehicles)
			}
			if !api.called(tc.key) {
				t.Fatalf("expected call to %s, got %v", tc.key, api.calls)
			}
		})
	}
}

func TestVehiclesService_Moderation(t *testing.T) {
	api := newFakeAPI(t)
	api.respond("POST /admin/vehicles/5/approve", domain.Vehicle{ID: 5, Status: domain.VehicleApproved})
	api.respond("POST /admin/vehicles/6/reject", domain.Vehicle{ID: 6, Status: domain.VehicleRejected})
	svc := NewVehiclesService(api)

	approved, err := svc.Approve(context.Background(), 5)
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != domain.VehicleApproved {
		t.Fatalf("unexpected status %q", approved.Status)
	}

	rejected, err := svc.Reject(context.Background(), 6)
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if rejected.Status != domain.VehicleRejected {
		t.Fatalf("unexpected status %q", rejected.Status)
	}
}

func TestVehiclesService_Get(t *testing.T) {
	api := newFakeAPI(t)
	api.respond("GET /vehicles/9", domain.Vehicle{ID: 9, Title: "Honda CBR"})

	vehicle, err := NewVehiclesService(api).Get(context.Background(), 9)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if vehicle.Title != "Honda CBR" {
		t.Fatalf("unexpected vehicle: %+v", vehicle)
	}
}
