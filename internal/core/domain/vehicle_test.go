package domain

import "testing"

func TestVehicleStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to VehicleStatus
		want     bool
	}{
		{VehiclePending, VehicleApproved, true},
		{VehiclePending, VehicleRejected, true},
		{VehiclePending, VehicleSold, false},
		{VehicleApproved, VehicleSold, true},
		{VehicleApproved, VehicleRejected, false},
		{VehicleRejected, VehicleApproved, false},
		{VehicleSold, VehiclePending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestVehicleStatus_Valid(t *testing.T) {
	for _, s := range []VehicleStatus{VehiclePending, VehicleApproved, VehicleRejected, VehicleSold} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if VehicleStatus("archived").Valid() {
		t.Errorf("expected unknown status to be invalid")
	}
}

func TestUser_IsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Fatalf("expected admin role to report admin")
	}
	regular := &User{Role: RoleUser}
	if regular.IsAdmin() {
		t.Fatalf("expected user role not to report admin")
	}
	var nilUser *User
	if nilUser.IsAdmin() {
		t.Fatalf("expected nil user not to report admin")
	}
}
