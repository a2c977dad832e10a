package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// Activity is one row of the dashboard recent-activity feed, derived from
// vehicle and payment state rather than a dedicated audit endpoint.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Time        string    `json:"time"`
	Timestamp   time.Time `json:"timestamp"`
}

// ActivityService aggregates recent marketplace activity from the vehicle
// and payment resources.
type ActivityService struct {
	vehicles *VehiclesService
	payments *PaymentsService
	log      zerolog.Logger

	// now is swappable so tests get stable relative timestamps.
	now func() time.Time
}

func NewActivityService(vehicles *VehiclesService, payments *PaymentsService, log zerolog.Logger) *ActivityService {
	return &ActivityService{
		vehicles: vehicles,
		payments: payments,
		log:      log,
		now:      time.Now,
	}
}

// Recent fetches the sources in parallel, maps them to activity entries,
// and returns the newest `limit` entries. A failing source degrades to an
// empty contribution instead of failing the whole feed.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		pending, approved, rejected, sold []domain.Vehicle
		payments                          []domain.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	fetchVehicles := func(dst *[]domain.Vehicle, fetch func(context.Context) ([]domain.Vehicle, error), source string) func() error {
		return func() error {
			vehicles, err := fetch(gctx)
			if err != nil {
				s.log.Warn().Err(err).Str("source", source).Msg("activity source failed, skipping")
				return nil
			}
			*dst = vehicles
			return nil
		}
	}
	g.Go(fetchVehicles(&pending, s.vehicles.Pending, "pending"))
	g.Go(fetchVehicles(&approved, s.vehicles.Approved, "approved"))
	g.Go(fetchVehicles(&rejected, s.vehicles.Rejected, "rejected"))
	g.Go(fetchVehicles(&sold, s.vehicles.Sold, "sold"))
	g.Go(func() error {
		all, err := s.payments.All(gctx)
		if err != nil {
			s.log.Warn().Err(err).Str("source", "payments").Msg("activity source failed, skipping")
			return nil
		}
		payments = all
		return nil
	})
	_ = g.Wait()

	activities := make([]Activity, 0, len(pending)+len(approved)+len(rejected)+len(sold)+len(payments))
	for _, list := range [][]domain.Vehicle{pending, approved, rejected, sold} {
		for _, v := range list {
			activities = append(activities, s.vehicleActivity(v))
		}
	}
	for _, p := range payments {
		activities = append(activities, s.paymentActivity(p))
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (s *ActivityService) vehicleActivity(v domain.Vehicle) Activity {
	ts := v.UpdatedAt
	if ts.IsZero() {
		ts = v.CreatedAt
	}

	a := Activity{Timestamp: ts, Time: relativeTime(s.now(), ts)}
	switch v.Status {
	case domain.VehicleApproved:
		a.ID = fmt.Sprintf("vehicle-approved-%d", v.ID)
		a.Type = "approved"
		a.Title = "Vehicle Approved"
		a.Description = fmt.Sprintf("%s approved for listing", v.Title)
	case domain.VehicleRejected:
		a.ID = fmt.Sprintf("vehicle-rejected-%d", v.ID)
		a.Type = "rejected"
		a.Title = "Vehicle Rejected"
		a.Description = fmt.Sprintf("%s - Rejected", v.Title)
	case domain.VehiclePending:
		a.ID = fmt.Sprintf("vehicle-pending-%d", v.ID)
		a.Type = "listing"
		a.Title = "New Listing"
		a.Description = fmt.Sprintf("%s submitted for review", v.Title)
	case domain.VehicleSold:
		a.ID = fmt.Sprintf("vehicle-sold-%d", v.ID)
		a.Type = "approved"
		a.Title = "Vehicle Sold"
		a.Description = fmt.Sprintf("%s has been sold", v.Title)
	default:
		a.ID = fmt.Sprintf("vehicle-%d", v.ID)
		a.Type = "pending"
		a.Title = "Vehicle Update"
		a.Description = v.Title
	}
	return a
}

func (s *ActivityService) paymentActivity(p domain.Payment) Activity {
	ts := p.UpdatedAt
	if ts.IsZero() {
		ts = p.CreatedAt
	}

	vehicleTitle := fmt.Sprintf("Vehicle #%d", p.VehicleID)
	if p.Vehicle != nil && p.Vehicle.Title != "" {
		vehicleTitle = p.Vehicle.Title
	}
	amount := fmt.Sprintf("৳%.0f", p.Amount)

	if p.Status == domain.PaymentPaid {
		return Activity{
			ID:          fmt.Sprintf("payment-paid-%d", p.ID),
			Type:        "payment",
			Title:       "Payment Received",
			Description: fmt.Sprintf("%s payment for %s", amount, vehicleTitle),
			Time:        relativeTime(s.now(), ts),
			Timestamp:   ts,
		}
	}
	return Activity{
		ID:          fmt.Sprintf("payment-pending-%d", p.ID),
		Type:        "pending",
		Title:       "Payment Pending",
		Description: fmt.Sprintf("%s pending for %s", amount, vehicleTitle),
		Time:        relativeTime(s.now(), ts),
		Timestamp:   ts,
	}
}

// relativeTime renders a short humanized age, e.g. "5 min ago".
func relativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	default:
		return t.Format("1/2/2006")
	}
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
