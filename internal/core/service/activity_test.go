package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/motobazar/admin-console/internal/client"
	"github.com/motobazar/admin-console/internal/core/domain"
)

var activityNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newActivityService(api API) *ActivityService {
	svc := NewActivityService(NewVehiclesService(api), NewPaymentsService(api), zerolog.Nop())
	svc.now = func() time.Time { return activityNow }
	return svc
}

func emptyActivitySources(api *fakeAPI) {
	api.respond("GET /admin/vehicles/pending", []domain.Vehicle{})
	api.respond("GET /vehicles?status=approved", []domain.Vehicle{})
	api.respond("GET /vehicles?status=rejected", []domain.Vehicle{})
	api.respond("GET /admin/vehicles/sold", []domain.Vehicle{})
	api.respond("GET /payments", []domain.Payment{})
}

func TestActivityService_MapsAndOrders(t *testing.T) {
	api := newFakeAPI(t)
	emptyActivitySources(api)
	api.respond("GET /admin/vehicles/pending", []domain.Vehicle{
		{ID: 1, Title: "Suzuki Gixxer", Status: domain.VehiclePending, UpdatedAt: activityNow.Add(-30 * time.Second)},
	})
	api.respond("GET /vehicles?status=approved", []domain.Vehicle{
		{ID: 2, Title: "Yamaha R15", Status: domain.VehicleApproved, UpdatedAt: activityNow.Add(-5 * time.Minute)},
	})
	api.respond("GET /payments", []domain.Payment{
		{ID: 3, VehicleID: 2, Amount: 250000, Status: domain.PaymentPaid,
			Vehicle:   &domain.VehicleSummary{ID: 2, Title: "Yamaha R15"},
			UpdatedAt: activityNow.Add(-2 * time.Hour)},
	})

	activities, err := newActivityService(api).Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d: %+v", len(activities), activities)
	}

	// Newest first.
	if activities[0].ID != "vehicle-pending-1" || activities[1].ID != "vehicle-approved-2" || activities[2].ID != "payment-paid-3" {
		t.Fatalf("unexpected order: %s, %s, %s", activities[0].ID, activities[1].ID, activities[2].ID)
	}

	if activities[0].Title != "New Listing" || activities[0].Description != "Suzuki Gixxer submitted for review" {
		t.Fatalf("unexpected listing entry: %+v", activities[0])
	}
	if activities[0].Time != "Just now" {
		t.Fatalf("expected Just now, got %q", activities[0].Time)
	}
	if activities[1].Time != "5 min ago" {
		t.Fatalf("expected 5 min ago, got %q", activities[1].Time)
	}
	if activities[2].Title != "Payment Received" || activities[2].Description != "৳250000 payment for Yamaha R15" {
		t.Fatalf("unexpected payment entry: %+v", activities[2])
	}
	if activities[2].Time != "2 hours ago" {
		t.Fatalf("expected 2 hours ago, got %q", activities[2].Time)
	}
}

func TestActivityService_Truncates(t *testing.T) {
	api := newFakeAPI(t)
	emptyActivitySources(api)
	vehicles := make([]domain.Vehicle, 6)
	for i := range vehicles {
		vehicles[i] = domain.Vehicle{
			ID:        i + 1,
			Title:     "Bike",
			Status:    domain.VehicleApproved,
			UpdatedAt: activityNow.Add(-time.Duration(i+1) * time.Minute),
		}
	}
	api.respond("GET /vehicles?status=approved", vehicles)

	activities, err := newActivityService(api).Recent(context.Background(), 3)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(activities))
	}
	if activities[0].ID != "vehicle-approved-1" {
		t.Fatalf("expected newest first, got %s", activities[0].ID)
	}
}

func TestActivityService_DegradesOnFailedSource(t *testing.T) {
	api := newFakeAPI(t)
	emptyActivitySources(api)
	api.respond("GET /admin/vehicles/pending", []domain.Vehicle{
		{ID: 1, Title: "Suzuki Gixxer", Status: domain.VehiclePending, UpdatedAt: activityNow.Add(-time.Minute)},
	})
	api.fail("GET /payments", &client.Error{Kind: client.KindRequest, Message: "DB down", Status: 500})

	activities, err := newActivityService(api).Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("a failing source must not fail the feed: %v", err)
	}
	if len(activities) != 1 || activities[0].ID != "vehicle-pending-1" {
		t.Fatalf("unexpected activities: %+v", activities)
	}
}

func TestRelativeTime(t *testing.T) {
	cases := []struct {
		age  time.Duration
		want string
	}{
		{10 * time.Second, "Just now"},
		{time.Minute, "1 min ago"},
		{45 * time.Minute, "45 min ago"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
	}
	for _, tc := range cases {
		if got := relativeTime(activityNow, activityNow.Add(-tc.age)); got != tc.want {
			t.Errorf("relativeTime(-%v) = %q, want %q", tc.age, got, tc.want)
		}
	}

	old := activityNow.Add(-30 * 24 * time.Hour)
	if got := relativeTime(activityNow, old); got != old.Format("1/2/2006") {
		t.Errorf("old timestamps should render as a date, got %q", got)
	}
}
