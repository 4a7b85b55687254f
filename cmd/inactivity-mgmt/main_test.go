package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const configYaml = `
notifications:
  gatewayURL: http://gateway:8080
  maxAttempts: 3
  checkin:
    channel: app
    target: patient:{patientID}
  escalation:
    channel: sms
    targets:
      - caregiver-oncall
      - backoffice
`

func TestParseExternalConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(context.Background(), io.NopCloser(strings.NewReader(configYaml)))
	is.NoErr(err)

	is.Equal(cfg.Notifications.GatewayURL, "http://gateway:8080")
	is.Equal(cfg.Notifications.MaxAttempts, 3)
	is.Equal(cfg.Notifications.CheckIn.Target, "patient:{patientID}")
	is.Equal(len(cfg.Notifications.Escalation.Targets), 2)
}
