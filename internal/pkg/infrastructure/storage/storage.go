package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrQueryRow      = errors.New("could not execute query")
	ErrStoreFailed   = errors.New("could not store data")
	ErrNoID          = errors.New("data contains no id")
	ErrMissingTenant = errors.New("missing tenant information")
	ErrAlreadyExist  = errors.New("row already exists")
	ErrConflict      = errors.New("row was modified by someone else")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS motion_events (
			device_id	TEXT 	NOT NULL,
			event_type	TEXT 	NOT NULL,
			occurred_at	timestamp with time zone NOT NULL,
			received_at	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			tenant		TEXT 	NOT NULL,
			CONSTRAINT pkey_motion_events PRIMARY KEY (device_id, occurred_at, event_type)
		);

		CREATE TABLE IF NOT EXISTS devices (
			device_id					TEXT 	NOT NULL,
			patient_id					TEXT 	NOT NULL,
			location					TEXT 	NULL,
			inactivity_threshold_secs	INT 	NOT NULL DEFAULT 1800,
			escalation_delay_secs		INT 	NOT NULL DEFAULT 600,
			active						BOOLEAN	NOT NULL DEFAULT TRUE,
			tenant						TEXT 	NOT NULL,
			created_on  				timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on					timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_devices PRIMARY KEY (device_id)
		);

		CREATE TABLE IF NOT EXISTS monitoring_sessions (
			session_id				TEXT 	NOT NULL,
			device_id				TEXT 	NOT NULL,
			patient_id				TEXT 	NOT NULL,
			state					TEXT 	NOT NULL,
			version					BIGINT 	NOT NULL DEFAULT 1,
			inactivity_started_at	timestamp with time zone NOT NULL,
			checkin_sent_at			timestamp with time zone NULL,
			escalation_started_at	timestamp with time zone NULL,
			resolved_at				timestamp with time zone NULL,
			resolution_reason		TEXT 	NULL,
			delivery_failed			BOOLEAN NOT NULL DEFAULT FALSE,
			tenant					TEXT 	NOT NULL,
			created_on  			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on				timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_monitoring_sessions PRIMARY KEY (session_id)
		);

		CREATE TABLE IF NOT EXISTS alerts (
			alert_id 			TEXT 	NOT NULL,
			session_id 			TEXT 	NOT NULL,
			patient_id 			TEXT 	NOT NULL,
			alert_type 			TEXT 	NOT NULL,
			severity 			INT 	NOT NULL,
			status 				TEXT 	NOT NULL DEFAULT 'active',
			notified_targets	JSONB	NULL,
			delivery_failed		BOOLEAN NOT NULL DEFAULT FALSE,
			escalated_at		timestamp with time zone NOT NULL,
			tenant 				TEXT 	NOT NULL,
			created_on  		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alerts PRIMARY KEY (alert_id)
		);

		CREATE TABLE IF NOT EXISTS notification_attempts (
			attempt_id		TEXT 	NOT NULL,
			session_id		TEXT 	NULL,
			alert_id		TEXT 	NULL,
			channel			TEXT 	NOT NULL,
			target			TEXT 	NOT NULL,
			status			TEXT 	NOT NULL,
			attempt_count	INT 	NOT NULL,
			last_error		TEXT 	NULL,
			created_on  	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_notification_attempts PRIMARY KEY (attempt_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS monitoring_sessions_unresolved_idx ON monitoring_sessions (device_id) WHERE resolved_at IS NULL;
		CREATE INDEX IF NOT EXISTS monitoring_sessions_patient_idx ON monitoring_sessions (patient_id) WHERE resolved_at IS NULL;
		CREATE INDEX IF NOT EXISTS alerts_session_idx ON alerts (session_id);
		CREATE INDEX IF NOT EXISTS notification_attempts_session_idx ON notification_attempts (session_id);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
