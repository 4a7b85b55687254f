package client

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("inactivity-mgmt-client")

var ErrNotFound = fmt.Errorf("not found")

// MonitoringClient is used by dashboards and reporting services to read
// session and alert state and to relay acknowledgments.
type MonitoringClient interface {
	GetSession(ctx context.Context, sessionID string) (types.MonitoringSession, error)
	QuerySessions(ctx context.Context, offset, limit int) ([]types.MonitoringSession, error)
	QueryAlerts(ctx context.Context, offset, limit int) ([]types.Alert, error)
	Acknowledge(ctx context.Context, patientID, source string) (bool, error)
}

type monitoringClient struct {
	url        string
	secret     []byte
	httpClient http.Client
}

func New(serviceURL, sharedSecret string) MonitoringClient {
	return &monitoringClient{
		url:    serviceURL,
		secret: []byte(sharedSecret),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *monitoringClient) GetSession(ctx context.Context, sessionID string) (types.MonitoringSession, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-session")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response := struct {
		Data types.MonitoringSession `json:"data"`
	}{}

	err = c.get(ctx, fmt.Sprintf("%s/api/v0/sessions/%s", c.url, sessionID), &response)
	if err != nil {
		return types.MonitoringSession{}, err
	}

	return response.Data, nil
}

func (c *monitoringClient) QuerySessions(ctx context.Context, offset, limit int) ([]types.MonitoringSession, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-sessions")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response := struct {
		Data []types.MonitoringSession `json:"data"`
	}{}

	err = c.get(ctx, fmt.Sprintf("%s/api/v0/sessions?offset=%d&limit=%d", c.url, offset, limit), &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *monitoringClient) QueryAlerts(ctx context.Context, offset, limit int) ([]types.Alert, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response := struct {
		Data []types.Alert `json:"data"`
	}{}

	err = c.get(ctx, fmt.Sprintf("%s/api/v0/alerts?offset=%d&limit=%d", c.url, offset, limit), &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *monitoringClient) Acknowledge(ctx context.Context, patientID, source string) (bool, error) {
	var err error
	ctx, span := tracer.Start(ctx, "acknowledge")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(struct {
		PatientID string `json:"patientID"`
		Source    string `json:"source"`
	}{PatientID: patientID, Source: source})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/v0/acknowledgments", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", c.sign(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to post acknowledgment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	result := struct {
		Matched bool `json:"matched"`
	}{}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return false, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return result.Matched, nil
}

func (c *monitoringClient) get(ctx context.Context, url string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("X-Signature", c.sign(nil))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to retrieve %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

func (c *monitoringClient) sign(body []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
