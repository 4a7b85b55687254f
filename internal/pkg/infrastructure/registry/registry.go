package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"gopkg.in/yaml.v2"
)

var tracer = otel.Tracer("inactivity-mgmt/registry")

var ErrDeviceNotFound = fmt.Errorf("device not found")

//go:generate moq -rm -out registry_mock.go . DeviceRegistry
type DeviceRegistry interface {
	GetDevice(ctx context.Context, deviceID string) (types.Device, error)
}

type DeviceStorage interface {
	SetDevice(ctx context.Context, device types.Device) error
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
}

type registryClient struct {
	url        string
	httpClient http.Client

	cache    DeviceStorage
	cacheTTL time.Duration

	mu        sync.Mutex
	refreshed map[string]time.Time
}

// New returns a read-through client for the external device registry.
// Devices are cached in the local devices table so that a registry outage
// does not stall event ingestion; cached rows are refreshed after ttl.
func New(registryURL string, cache DeviceStorage, ttl time.Duration) DeviceRegistry {
	return &registryClient{
		url: registryURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   5 * time.Second,
		},
		cache:     cache,
		cacheTTL:  ttl,
		refreshed: make(map[string]time.Time),
	}
}

func (c *registryClient) GetDevice(ctx context.Context, deviceID string) (types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if c.fresh(deviceID) {
		device, err := c.cache.GetDevice(ctx, storage.WithDeviceID(deviceID))
		if err == nil {
			return device, nil
		}
		if !errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, err
		}
	}

	device, err := c.fetch(ctx, deviceID)
	if err != nil {
		if errors.Is(err, ErrDeviceNotFound) {
			return types.Device{}, err
		}

		// registry is down, fall back to whatever we cached last
		log.Warn("device registry unavailable, using cached device", "device_id", deviceID, "err", err.Error())

		cached, cacheErr := c.cache.GetDevice(ctx, storage.WithDeviceID(deviceID))
		if cacheErr != nil {
			return types.Device{}, err
		}
		return cached, nil
	}

	err = c.cache.SetDevice(ctx, device)
	if err != nil {
		log.Error("could not cache device", "device_id", deviceID, "err", err.Error())
	}

	c.markFresh(deviceID)

	return device, nil
}

func (c *registryClient) fetch(ctx context.Context, deviceID string) (types.Device, error) {
	url := c.url + "/api/v0/devices/" + deviceID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Device{}, fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Device{}, fmt.Errorf("failed to retrieve device from registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return types.Device{}, ErrDeviceNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return types.Device{}, fmt.Errorf("registry request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Device{}, fmt.Errorf("failed to read response body: %w", err)
	}

	device := types.Device{}

	err = json.Unmarshal(respBody, &device)
	if err != nil {
		return types.Device{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return device, nil
}

func (c *registryClient) fresh(deviceID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	at, ok := c.refreshed[deviceID]
	return ok && time.Since(at) < c.cacheTTL
}

func (c *registryClient) markFresh(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.refreshed[deviceID] = time.Now()
}

// SeedDevices loads a yaml device list into the local cache, used to
// bootstrap dev and test environments without a registry.
func SeedDevices(ctx context.Context, cache DeviceStorage, seed io.ReadCloser) error {
	defer seed.Close()

	b, err := io.ReadAll(seed)
	if err != nil {
		return err
	}

	cfg := struct {
		Devices []struct {
			DeviceID                   string `yaml:"deviceID"`
			PatientID                  string `yaml:"patientID"`
			Location                   string `yaml:"location"`
			InactivityThresholdSeconds int    `yaml:"inactivityThresholdSeconds"`
			EscalationDelaySeconds     int    `yaml:"escalationDelaySeconds"`
			Active                     bool   `yaml:"active"`
			Tenant                     string `yaml:"tenant"`
		} `yaml:"devices"`
	}{}

	err = yaml.Unmarshal(b, &cfg)
	if err != nil {
		return err
	}

	for _, d := range cfg.Devices {
		if d.Tenant == "" {
			d.Tenant = "default"
		}

		err = cache.SetDevice(ctx, types.Device{
			DeviceID:                   d.DeviceID,
			PatientID:                  d.PatientID,
			Location:                   d.Location,
			InactivityThresholdSeconds: d.InactivityThresholdSeconds,
			EscalationDelaySeconds:     d.EscalationDelaySeconds,
			Active:                     d.Active,
			Tenant:                     d.Tenant,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
