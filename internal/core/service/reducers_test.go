package service

import (
	"testing"

	"github.com/motobazar/admin-console/internal/core/domain"
)

func TestRemoveVehicle(t *testing.T) {
	in := []domain.Vehicle{{ID: 1}, {ID: 2}, {ID: 3}}

	out := RemoveVehicle(in, 2)
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 3 {
		t.Fatalf("unexpected result: %+v", out)
	}
	if len(in) != 3 {
		t.Fatalf("input slice must not be mutated: %+v", in)
	}

	// Unknown ID leaves the list intact.
	same := RemoveVehicle(in, 99)
	if len(same) != 3 {
		t.Fatalf("expected unchanged list, got %+v", same)
	}
}

func TestRemovePayment(t *testing.T) {
	in := []domain.Payment{{ID: 10}, {ID: 20}}
	out := RemovePayment(in, 10)
	if len(out) != 1 || out[0].ID != 20 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestRemoveUser(t *testing.T) {
	in := []domain.User{{ID: 1}, {ID: 2}}
	out := RemoveUser(in, 2)
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("unexpected result: %+v", out)
	}

	empty := RemoveUser(nil, 1)
	if len(empty) != 0 {
		t.Fatalf("expected empty result for nil input, got %+v", empty)
	}
}
