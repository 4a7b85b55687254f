package registry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/matryer/is"
)

type fakeCache struct {
	mu      sync.Mutex
	devices map[string]types.Device
}

func newFakeCache() *fakeCache {
	return &fakeCache{devices: make(map[string]types.Device)}
}

func (f *fakeCache) SetDevice(ctx context.Context, device types.Device) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.devices[device.DeviceID] = device
	return nil
}

func (f *fakeCache) GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
	condition := &storage.Condition{}
	for _, fn := range conditions {
		fn(condition)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.devices[condition.DeviceID]
	if !ok {
		return types.Device{}, storage.ErrNoRows
	}
	return d, nil
}

func TestGetDeviceFetchesAndCaches(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(types.Device{
			DeviceID:                   "device-01",
			PatientID:                  "patient-01",
			InactivityThresholdSeconds: 30,
			EscalationDelaySeconds:     600,
			Active:                     true,
			Tenant:                     "default",
		})
	}))
	defer srv.Close()

	cache := newFakeCache()
	r := New(srv.URL, cache, time.Minute)

	d, err := r.GetDevice(ctx, "device-01")
	is.NoErr(err)
	is.Equal(d.PatientID, "patient-01")

	d, err = r.GetDevice(ctx, "device-01")
	is.NoErr(err)
	is.Equal(d.InactivityThresholdSeconds, 30)

	is.Equal(requests, 1) // second lookup served from cache
}

func TestGetDeviceFallsBackToCacheWhenRegistryIsDown(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := newFakeCache()
	cache.SetDevice(ctx, types.Device{DeviceID: "device-01", PatientID: "patient-01", Active: true, Tenant: "default"})

	r := New(srv.URL, cache, 0)

	d, err := r.GetDevice(ctx, "device-01")
	is.NoErr(err)
	is.Equal(d.PatientID, "patient-01")
}

func TestGetDeviceNotFound(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := New(srv.URL, newFakeCache(), time.Minute)

	_, err := r.GetDevice(ctx, "missing")
	is.Equal(err, ErrDeviceNotFound)
}

func TestSeedDevices(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cache := newFakeCache()

	err := SeedDevices(ctx, cache, io.NopCloser(strings.NewReader(seedYaml)))
	is.NoErr(err)

	d, err := cache.GetDevice(ctx, storage.WithDeviceID("device-01"))
	is.NoErr(err)
	is.Equal(d.PatientID, "patient-01")
	is.Equal(d.InactivityThresholdSeconds, 30)
	is.Equal(d.Tenant, "default")
}

const seedYaml string = `
devices:
  - deviceID: device-01
    patientID: patient-01
    location: bedroom
    inactivityThresholdSeconds: 30
    escalationDelaySeconds: 600
    active: true
`
