package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// gatewayClient talks to the external messaging gateway over its narrow
// send(target, message) contract.
type gatewayClient struct {
	url        string
	httpClient http.Client
}

func NewGatewaySender(gatewayURL string) Sender {
	return &gatewayClient{
		url: gatewayURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   5 * time.Second,
		},
	}
}

func (g *gatewayClient) Send(ctx context.Context, target, message string) (Receipt, error) {
	body, err := json.Marshal(struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: target, Message: message})
	if err != nil {
		return Receipt{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/send", bytes.NewReader(body))
	if err != nil {
		return Receipt{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %s", ErrTransient, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return Receipt{}, fmt.Errorf("%w: gateway returned status code %d", ErrTransient, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return Receipt{}, fmt.Errorf("gateway rejected message with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %s", ErrTransient, err.Error())
	}

	result := struct {
		Status            string `json:"status"`
		ProviderMessageID string `json:"providerMessageId"`
	}{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to unmarshal gateway response: %w", err)
	}

	if result.Status == "failed" {
		return Receipt{}, fmt.Errorf("%w: gateway could not deliver message", ErrTransient)
	}

	return Receipt{ProviderMessageID: result.ProviderMessageID}, nil
}
