package mockapi

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// account couples a marketplace user with its login credential.
type account struct {
	user         domain.User
	passwordHash []byte
}

// Store holds the mock marketplace state in memory. All access goes through
// the mutex; the store never persists anything.
type Store struct {
	mu       sync.Mutex
	accounts map[string]*account // keyed by email
	vehicles map[int]*domain.Vehicle
	payments map[int]*domain.Payment
	nextID   int
}

// Credential seeds one login account.
type Credential struct {
	User     domain.User
	Password string
}

// NewStore builds a store seeded with the standard development fixtures and
// any extra accounts. Fixture passwords are bcrypt-hashed at seed time.
func NewStore(extra ...Credential) (*Store, error) {
	s := &Store{
		accounts: make(map[string]*account),
		vehicles: make(map[int]*domain.Vehicle),
		payments: make(map[int]*domain.Payment),
		nextID:   1000,
	}

	seeds := append(defaultAccounts(), extra...)
	for _, cred := range seeds {
		if err := s.addAccount(cred); err != nil {
			return nil, err
		}
	}
	s.seedVehicles()
	s.seedPayments()
	return s, nil
}

func (s *Store) addAccount(cred Credential) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("seed account %s: %w", cred.User.Email, err)
	}
	s.accounts[cred.User.Email] = &account{user: cred.User, passwordHash: hash}
	return nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *Store) Authenticate(email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user := acct.user
	return &user, nil
}

// VehiclesByStatus lists vehicles in a status, newest first.
func (s *Store) VehiclesByStatus(status domain.VehicleStatus) []domain.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Vehicle
	for _, v := range s.vehicles {
		if v.Status == status {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// Vehicle fetches one listing.
func (s *Store) Vehicle(id int) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	out := *v
	return &out, nil
}

// Moderate transitions a listing to next, enforcing the moderation state
// machine.
func (s *Store) Moderate(id int, next domain.VehicleStatus) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	if !v.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, v.Status, next)
	}
	v.Status = next
	v.UpdatedAt = time.Now().UTC()
	out := *v
	return &out, nil
}

// Users lists all accounts.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.accounts))
	for _, acct := range s.accounts {
		out = append(out, acct.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// User fetches one account by ID.
func (s *Store) User(id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.accounts {
		if acct.user.ID == id {
			user := acct.user
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// DeleteUser removes an account.
func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, acct := range s.accounts {
		if acct.user.ID == id {
			delete(s.accounts, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Payments lists payments, optionally filtered by status ("" means all).
func (s *Store) Payments(status domain.PaymentStatus) []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Payment
	for _, p := range s.payments {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// PaymentByVehicle fetches the payment attached to a listing.
func (s *Store) PaymentByVehicle(vehicleID int) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.VehicleID == vehicleID {
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

// ConfirmPayment marks a pending payment paid and the listing sold.
func (s *Store) ConfirmPayment(id int) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	if p.Status != domain.PaymentPending {
		return nil, fmt.Errorf("%w (payment is %s)", domain.ErrInvalidTransition, p.Status)
	}
	now := time.Now().UTC()
	p.Status = domain.PaymentPaid
	p.UpdatedAt = now
	if v, ok := s.vehicles[p.VehicleID]; ok && v.Status.CanTransitionTo(domain.VehicleSold) {
		v.Status = domain.VehicleSold
		v.UpdatedAt = now
	}
	out := *p
	return &out, nil
}

// PaymentStats aggregates the current payment set.
func (s *Store) PaymentStats() domain.PaymentStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentStatsLocked()
}

func (s *Store) paymentStatsLocked() domain.PaymentStats {
	var stats domain.PaymentStats
	for _, p := range s.payments {
		switch p.Status {
		case domain.PaymentPaid:
			stats.PaidCount++
			stats.TotalCollected += p.PlatformFee
		case domain.PaymentPending:
			stats.PendingCount++
		case domain.PaymentFailed:
			stats.FailedCount++
		}
	}
	return stats
}

// Analytics computes the dashboard snapshot from current store contents.
// Growth figures are canned: there is no history to derive them from.
func (s *Store) Analytics() domain.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.Analytics{
		TotalUsers:           len(s.accounts),
		RevenueGrowth:        12.5,
		VehiclesSoldGrowth:   8.2,
		ActiveListingsGrowth: 4.7,
		ConversionRateGrowth: 1.9,
		AvgMargin:            6.4,
	}

	sellerSales := map[string]*domain.TopSeller{}
	for _, v := range s.vehicles {
		a.TotalVehicles++
		switch v.Status {
		case domain.VehiclePending:
			a.PendingVehicles++
		case domain.VehicleApproved:
			a.ApprovedVehicles++
		case domain.VehicleRejected:
			a.RejectedVehicles++
		case domain.VehicleSold:
			a.SoldVehicles++
			if v.Seller != nil {
				ts := sellerSales[v.Seller.Name]
				if ts == nil {
					ts = &domain.TopSeller{Name: v.Seller.Name}
					sellerSales[v.Seller.Name] = ts
				}
				ts.Sales++
				ts.Revenue += v.Price
			}
		}
	}

	monthly := map[string]*domain.RevenuePoint{}
	for _, p := range s.payments {
		if p.Status != domain.PaymentPaid {
			continue
		}
		a.TotalRevenue += p.Amount
		a.PlatformFeeCollected += p.PlatformFee
		month := p.UpdatedAt.Format("Jan")
		point := monthly[month]
		if point == nil {
			point = &domain.RevenuePoint{Name: month}
			monthly[month] = point
		}
		point.Revenue += p.Amount
		point.Sales++
	}

	for _, ts := range sellerSales {
		a.TopSellers = append(a.TopSellers, *ts)
	}
	sort.Slice(a.TopSellers, func(i, j int) bool { return a.TopSellers[i].Revenue > a.TopSellers[j].Revenue })
	if len(a.TopSellers) > 5 {
		a.TopSellers = a.TopSellers[:5]
	}

	for _, point := range monthly {
		a.RevenueChartData.Monthly = append(a.RevenueChartData.Monthly, *point)
	}
	sort.Slice(a.RevenueChartData.Monthly, func(i, j int) bool {
		return a.RevenueChartData.Monthly[i].Name < a.RevenueChartData.Monthly[j].Name
	})
	a.RevenueChartData.Weekly = weeklySeries(a.TotalRevenue)

	stats := s.paymentStatsLocked()
	a.Payments = &stats

	return a
}

// weeklySeries spreads total revenue over a fixed four-week shape so charts
// have something to draw against the mock.
func weeklySeries(total float64) []domain.RevenuePoint {
	weights := []float64{0.2, 0.3, 0.25, 0.25}
	out := make([]domain.RevenuePoint, len(weights))
	for i, w := range weights {
		out[i] = domain.RevenuePoint{
			Name:    fmt.Sprintf("Week %d", i+1),
			Revenue: total * w,
			Sales:   i + 1,
		}
	}
	return out
}

// Brands computes the per-brand share of all listings.
func (s *Store) Brands() []domain.BrandAnalytics {
	counts, total := s.countBy(func(v *domain.Vehicle) string { return v.Brand })
	out := make([]domain.BrandAnalytics, 0, len(counts))
	for brand, count := range counts {
		out = append(out, domain.BrandAnalytics{
			Brand:      brand,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Types computes the per-body-type share of all listings.
func (s *Store) Types() []domain.TypeAnalytics {
	counts, total := s.countBy(func(v *domain.Vehicle) string { return v.Type })
	out := make([]domain.TypeAnalytics, 0, len(counts))
	for typ, count := range counts {
		out = append(out, domain.TypeAnalytics{
			Type:       typ,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func (s *Store) countBy(key func(*domain.Vehicle) string) (map[string]int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	for _, v := range s.vehicles {
		counts[key(v)]++
	}
	return counts, len(s.vehicles)
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}
