// Package service binds each REST resource family of the marketplace API to
// the access layer. Services shape requests and decode responses; they add
// no error handling of their own — every failure passes through to the
// caller, with the single documented exception in PaymentsService.ByVehicle.
package service

import (
	"context"

	"github.com/motobazar/admin-console/internal/client"
)

// API is the access-layer surface the domain services consume.
// *client.Client satisfies it; tests substitute stubs.
type API interface {
	Get(ctx context.Context, path string, out any, opts ...client.CallOption) error
	Post(ctx context.Context, path string, body, out any, opts ...client.CallOption) error
	Put(ctx context.Context, path string, body, out any, opts ...client.CallOption) error
	Delete(ctx context.Context, path string, out any, opts ...client.CallOption) error
}
