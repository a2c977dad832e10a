package service

import "github.com/motobazar/admin-console/internal/core/domain"

// List reducers for pages that reflect a successful action by dropping the
// acted-upon item locally instead of re-fetching. Kept as pure functions so
// the update is testable without any network plumbing.

// RemoveVehicle returns vehicles without the entry whose ID is id.
func RemoveVehicle(vehicles []domain.Vehicle, id int) []domain.Vehicle {
	return removeByID(vehicles, func(v domain.Vehicle) bool { return v.ID == id })
}

// RemovePayment returns payments without the entry whose ID is id.
func RemovePayment(payments []domain.Payment, id int) []domain.Payment {
	return removeByID(payments, func(p domain.Payment) bool { return p.ID == id })
}

// RemoveUser returns users without the entry whose ID is id.
func RemoveUser(users []domain.User, id int) []domain.User {
	return removeByID(users, func(u domain.User) bool { return u.ID == id })
}

func removeByID[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
