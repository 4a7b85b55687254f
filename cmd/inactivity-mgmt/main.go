package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/ingest"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/monitoring"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/notifications"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/application/sweeper"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/registry"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/router"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/carewatch/inactivity-mgmt/internal/pkg/presentation/api"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"gopkg.in/yaml.v2"
)

const serviceName string = "inactivity-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	configurationFile
	devicesFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	registryURL
	registryTTL
	sharedSecret
	sweepInterval
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		configurationFile: "/opt/carewatch/config/config.yaml",
		devicesFile:       "/opt/carewatch/config/devices.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "carewatch",
		dbSSLMode:  "disable",

		registryURL:   "",
		registryTTL:   "60s",
		sharedSecret:  "",
		sweepInterval: "15s",
	}
}

type appConfig struct {
	Notifications notifications.Config `yaml:"notifications"`
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(ctx, cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	ttl, err := time.ParseDuration(flags[registryTTL])
	exitIf(err, logger, "invalid registry cache ttl")

	devices := registry.New(flags[registryURL], s, ttl)

	seed, err := os.Open(flags[devicesFile])
	if err == nil {
		err = registry.SeedDevices(ctx, s, seed)
		exitIf(err, logger, "could not seed devices")
	} else {
		logger.Info("no device seed file found, relying on the registry alone", "path", flags[devicesFile])
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	dispatcher := notifications.New(notifications.NewGatewaySender(cfg.Notifications.GatewayURL), s, &cfg.Notifications)

	svc := monitoring.New(s, dispatcher, messenger)
	ingestor := ingest.New(s, svc, devices)

	interval, err := time.ParseDuration(flags[sweepInterval])
	exitIf(err, logger, "invalid sweep interval")

	sw := sweeper.New(s, svc, devices, interval)

	messenger.Start()

	err = svc.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register topic message handler")

	sw.Start(ctx)

	mux, err := api.RegisterHandlers(ctx, router.New(serviceName), ingestor, svc, sw, flags[sharedSecret])
	exitIf(err, logger, "failed to register handlers")

	webserver := &http.Server{
		Addr:    flags[listenAddress] + ":" + flags[servicePort],
		Handler: mux,
	}

	go func() {
		logger.Info("starting to listen for incoming connections", "port", flags[servicePort])

		err := webserver.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitIf(err, logger, "web server closed unexpectedly")
		}
	}()

	apiCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-apiCtx.Done()

	logger.Info("shutting down")

	sw.Stop(ctx)
	messenger.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = webserver.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("failed to shut down web server gracefully", "err", err.Error())
	}

	s.Close()
}

func parseExternalConfigFile(_ context.Context, cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[registryURL] = envOrDef(ctx, "DEVICE_REGISTRY_URL", flags[registryURL])
	flags[registryTTL] = envOrDef(ctx, "DEVICE_REGISTRY_CACHE_TTL", flags[registryTTL])
	flags[sharedSecret] = envOrDef(ctx, "API_SHARED_SECRET", flags[sharedSecret])
	flags[sweepInterval] = envOrDef(ctx, "SWEEP_INTERVAL", flags[sweepInterval])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Func("devices", "device seed file", apply(devicesFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
