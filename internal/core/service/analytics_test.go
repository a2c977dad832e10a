package service

import (
	"context"
	"testing"

	"github.com/motobazar/admin-console/internal/client"
	"github.com/motobazar/admin-console/internal/core/domain"
)

func TestAnalyticsService_FetchDashboard(t *testing.T) {
	api := newFakeAPI(t)
	api.respond("GET /analytics", domain.Analytics{TotalUsers: 4, TotalVehicles: 10, TotalRevenue: 500000})
	api.respond("GET /analytics/brands", []domain.BrandAnalytics{{Brand: "Yamaha", Count: 4, Percentage: 40}})
	api.respond("GET /analytics/types", []domain.TypeAnalytics{{Type: "sport", Count: 6, Percentage: 60}})

	dash, err := NewAnalyticsService(api).FetchDashboard(context.Background())
	if err != nil {
		t.Fatalf("FetchDashboard returned error: %v", err)
	}
	if dash.Overview == nil || dash.Overview.TotalUsers != 4 {
		t.Fatalf("unexpected overview: %+v", dash.Overview)
	}
	if len(dash.Brands) != 1 || dash.Brands[0].Brand != "Yamaha" {
		t.Fatalf("unexpected brands: %+v", dash.Brands)
	}
	if len(dash.Types) != 1 || dash.Types[0].Type != "sport" {
		t.Fatalf("unexpected types: %+v", dash.Types)
	}
}

func TestAnalyticsService_FetchDashboardPropagatesFailure(t *testing.T) {
	api := newFakeAPI(t)
	api.respond("GET /analytics", domain.Analytics{})
	api.respond("GET /analytics/types", []domain.TypeAnalytics{})
	api.fail("GET /analytics/brands", &client.Error{Kind: client.KindRequest, Message: "DB down", Status: 500})

	dash, err := NewAnalyticsService(api).FetchDashboard(context.Background())
	if err == nil {
		t.Fatalf("expected failure to propagate")
	}
	if dash != nil {
		t.Fatalf("expected nil dashboard on failure, got %+v", dash)
	}
}
