package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/motobazar/admin-console/internal/client"
)

// fakeAPI answers calls from a canned table keyed by "METHOD path". Responses
// round-trip through JSON so the fakes exercise the same decoding the real
// access layer performs. Safe for the concurrent fan-outs some services run.
type fakeAPI struct {
	t         *testing.T
	responses map[string]any
	errs      map[string]error

	mu    sync.Mutex
	calls []string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{t: t, responses: map[string]any{}, errs: map[string]error{}}
}

func (f *fakeAPI) respond(key string, body any) { f.responses[key] = body }
func (f *fakeAPI) fail(key string, err error)   { f.errs[key] = err }

func (f *fakeAPI) answer(method, path string, out any) error {
	key := method + " " + path
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()
	if err, ok := f.errs[key]; ok {
		return err
	}
	body, ok := f.responses[key]
	if !ok {
		// Errorf, not Fatalf: answer may run on a service goroutine.
		f.t.Errorf("unexpected call %s", key)
		return fmt.Errorf("no canned response for %s", key)
	}
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		f.t.Errorf("marshal canned response for %s: %v", key, err)
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeAPI) Get(_ context.Context, path string, out any, _ ...client.CallOption) error {
	return f.answer("GET", path, out)
}

func (f *fakeAPI) Post(_ context.Context, path string, _, out any, _ ...client.CallOption) error {
	return f.answer("POST", path, out)
}

func (f *fakeAPI) Put(_ context.Context, path string, _, out any, _ ...client.CallOption) error {
	return f.answer("PUT", path, out)
}

func (f *fakeAPI) Delete(_ context.Context, path string, out any, _ ...client.CallOption) error {
	return f.answer("DELETE", path, out)
}

func (f *fakeAPI) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == key {
			return true
		}
	}
	return false
}
