// Command adminctl is a terminal front end for the console core: login,
// moderation, payments, user administration, and dashboard queries against
// the marketplace API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/motobazar/admin-console/internal/client"
	"github.com/motobazar/admin-console/internal/config"
	"github.com/motobazar/admin-console/internal/core/domain"
	"github.com/motobazar/admin-console/internal/core/service"
	"github.com/motobazar/admin-console/internal/session"
	"github.com/motobazar/admin-console/pkg/logger"
)

const usage = `Usage: adminctl <command> [args]

Commands:
  login -email <email> -password <password>
  logout
  whoami
  vehicles <pending|approved|rejected|sold>
  approve <vehicle-id>
  reject <vehicle-id>
  payments [pending|paid]
  confirm <payment-id>
  payment-for <vehicle-id>
  users
  delete-user <user-id>
  analytics
  activity
`

// app bundles everything a command needs.
type app struct {
	sessions  *session.Manager
	vehicles  *service.VehiclesService
	payments  *service.PaymentsService
	users     *service.UsersService
	analytics *service.AnalyticsService
	activity  *service.ActivityService
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	a, err := buildApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(store, log)
	api := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Tokens:  sessions,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "Session expired. Please login again.")
		},
		Logger: log,
	})
	sessions.SetAPI(api)

	vehicles := service.NewVehiclesService(api)
	payments := service.NewPaymentsService(api)

	return &app{
		sessions:  sessions,
		vehicles:  vehicles,
		payments:  payments,
		users:     service.NewUsersService(api),
		analytics: service.NewAnalyticsService(api),
		activity:  service.NewActivityService(vehicles, payments, log),
	}, nil
}

func buildStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case "file":
		return session.NewFileStore(cfg.Session.File), nil
	case "redis":
		rdb, err := session.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(rdb, ""), nil
	case "memory":
		return session.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.sessions.Logout()
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		return a.whoami()
	case "vehicles":
		return a.listVehicles(ctx, args)
	case "approve", "reject":
		return a.moderate(ctx, command, args)
	case "payments":
		return a.listPayments(ctx, args)
	case "confirm":
		return a.confirmPayment(ctx, args)
	case "payment-for":
		return a.paymentFor(ctx, args)
	case "users":
		return a.listUsers(ctx)
	case "delete-user":
		return a.deleteUser(ctx, args)
	case "analytics":
		return a.showAnalytics(ctx)
	case "activity":
		return a.showActivity(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// login performs the credential exchange and enforces the admin-only entry
// contract: a successful login by a non-admin account is torn down on the
// spot and reported as access denied.
func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.sessions.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if !resp.User.IsAdmin() {
		a.sessions.Logout()
		return errors.New("access denied: administrator account required")
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
	return nil
}

func (a *app) whoami() error {
	user := a.sessions.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) listVehicles(ctx context.Context, args []string) error {
	status := "pending"
	if len(args) > 0 {
		status = args[0]
	}

	var (
		vehicles []domain.Vehicle
		err      error
	)
	switch status {
	case "pending":
		vehicles, err = a.vehicles.Pending(ctx)
	case "approved":
		vehicles, err = a.vehicles.Approved(ctx)
	case "rejected":
		vehicles, err = a.vehicles.Rejected(ctx)
	case "sold":
		vehicles, err = a.vehicles.Sold(ctx)
	default:
		return fmt.Errorf("unknown vehicle status %q", status)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tBRAND\tPRICE\tSELLER\tUPDATED")
	for _, v := range vehicles {
		seller := ""
		if v.Seller != nil {
			seller = v.Seller.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%s\t%s\n", v.ID, v.Title, v.Brand, v.Price, seller, v.UpdatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func (a *app) moderate(ctx context.Context, action string, args []string) error {
	id, err := argID(args, "vehicle-id")
	if err != nil {
		return err
	}

	var vehicle *domain.Vehicle
	if action == "approve" {
		vehicle, err = a.vehicles.Approve(ctx, id)
	} else {
		vehicle, err = a.vehicles.Reject(ctx, id)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Vehicle %d is now %s.\n", vehicle.ID, vehicle.Status)
	return nil
}

func (a *app) listPayments(ctx context.Context, args []string) error {
	var (
		payments []domain.Payment
		err      error
	)
	filter := "all"
	if len(args) > 0 {
		filter = args[0]
	}
	switch filter {
	case "all":
		payments, err = a.payments.All(ctx)
	case "pending":
		payments, err = a.payments.Pending(ctx)
	case "paid":
		payments, err = a.payments.Paid(ctx)
	default:
		return fmt.Errorf("unknown payment filter %q", filter)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTXN\tVEHICLE\tAMOUNT\tFEE\tSTATUS")
	for _, p := range payments {
		title := strconv.Itoa(p.VehicleID)
		if p.Vehicle != nil {
			title = p.Vehicle.Title
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%.0f\t%s\n", p.ID, p.TransactionID, title, p.Amount, p.PlatformFee, p.Status)
	}
	return w.Flush()
}

func (a *app) confirmPayment(ctx context.Context, args []string) error {
	id, err := argID(args, "payment-id")
	if err != nil {
		return err
	}
	payment, err := a.payments.Confirm(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Payment %d marked %s.\n", payment.ID, payment.Status)
	return nil
}

func (a *app) paymentFor(ctx context.Context, args []string) error {
	id, err := argID(args, "vehicle-id")
	if err != nil {
		return err
	}
	payment, err := a.payments.ByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		fmt.Printf("No payment recorded for vehicle %d.\n", id)
		return nil
	}
	fmt.Printf("Payment %d (%s): %.0f, status %s\n", payment.ID, payment.TransactionID, payment.Amount, payment.Status)
	return nil
}

func (a *app) listUsers(ctx context.Context) error {
	users, err := a.users.All(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return w.Flush()
}

func (a *app) deleteUser(ctx context.Context, args []string) error {
	id, err := argID(args, "user-id")
	if err != nil {
		return err
	}
	msg, err := a.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) showAnalytics(ctx context.Context) error {
	dash, err := a.analytics.FetchDashboard(ctx)
	if err != nil {
		return err
	}

	o := dash.Overview
	fmt.Printf("Users: %d  Vehicles: %d (pending %d, approved %d, rejected %d, sold %d)\n",
		o.TotalUsers, o.TotalVehicles, o.PendingVehicles, o.ApprovedVehicles, o.RejectedVehicles, o.SoldVehicles)
	fmt.Printf("Revenue: %.0f  Platform fees: %.0f\n", o.TotalRevenue, o.PlatformFeeCollected)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BRAND\tCOUNT\tSHARE")
	for _, b := range dash.Brands {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", b.Brand, b.Count, b.Percentage)
	}
	fmt.Fprintln(w, "TYPE\tCOUNT\tSHARE")
	for _, t := range dash.Types {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", t.Type, t.Count, t.Percentage)
	}
	return w.Flush()
}

func (a *app) showActivity(ctx context.Context) error {
	activities, err := a.activity.Recent(ctx, 10)
	if err != nil {
		return err
	}
	for _, act := range activities {
		fmt.Printf("%-12s %s: %s\n", act.Time, act.Title, act.Description)
	}
	return nil
}

func argID(args []string, name string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing %s", name)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, args[0])
	}
	return id, nil
}
