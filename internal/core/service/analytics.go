package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// AnalyticsService covers the aggregate reporting endpoints.
type AnalyticsService struct {
	api API
}

func NewAnalyticsService(api API) *AnalyticsService {
	return &AnalyticsService{api: api}
}

// Overview fetches the dashboard snapshot.
func (s *AnalyticsService) Overview(ctx context.Context) (*domain.Analytics, error) {
	var analytics domain.Analytics
	if err := s.api.Get(ctx, "/analytics", &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Brands fetches the per-brand listing breakdown.
func (s *AnalyticsService) Brands(ctx context.Context) ([]domain.BrandAnalytics, error) {
	var brands []domain.BrandAnalytics
	err := s.api.Get(ctx, "/analytics/brands", &brands)
	return brands, err
}

// Types fetches the per-body-type listing breakdown.
func (s *AnalyticsService) Types(ctx context.Context) ([]domain.TypeAnalytics, error) {
	var types []domain.TypeAnalytics
	err := s.api.Get(ctx, "/analytics/types", &types)
	return types, err
}

// Dashboard groups the three analytics fetches for a single page load.
type Dashboard struct {
	Overview *domain.Analytics
	Brands   []domain.BrandAnalytics
	Types    []domain.TypeAnalytics
}

// FetchDashboard issues the three analytics requests in parallel and waits
// for all of them. The requests are independent and unordered; the first
// failure cancels the remaining ones and is returned.
func (s *AnalyticsService) FetchDashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview, err := s.Overview(gctx)
		dash.Overview = overview
		return err
	})
	g.Go(func() error {
		brands, err := s.Brands(gctx)
		dash.Brands = brands
		return err
	})
	g.Go(func() error {
		types, err := s.Types(gctx)
		dash.Types = types
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
