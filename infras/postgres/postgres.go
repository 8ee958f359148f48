package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"beautyhub/config"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const connMaxIdleTime = 5 * time.Minute

// Connection splits traffic between the primary (Write) and a replica (Read).
// Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect(cfg, "read", pg.Read),
		Write: connect(cfg, "write", pg.Write),
	}
}

// DSN renders endpoint as a postgres:// URL with credentials escaped and the
// configured database prefix applied.
func DSN(endpoint config.PostgresEndpoint, prefix string) *url.URL {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	return &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}
}

func connect(cfg *config.Config, role string, endpoint config.PostgresEndpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	dsn := DSN(endpoint, pg.Prefix)
	logged := log.With().Str("role", role).Str("host", dsn.Host).Str("db", dsn.Path).Logger()

	db, err := backoff.Retry(context.Background(), func() (*sqlx.DB, error) {
		return sqlx.Connect("postgres", dsn.String()) //nolint:wrapcheck
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(pg.RetryWaitTime)*time.Second)),
		backoff.WithMaxTries(uint(max(pg.MaxRetry, 1))),
		backoff.WithNotify(func(err error, wait time.Duration) {
			logged.Warn().Err(err).Dur("retry_in", wait).Msg("Database not ready")
		}),
	)
	if err != nil {
		logged.Fatal().Err(err).Msg("Failed to connect to database")
	}

	db.SetMaxOpenConns(pg.MaxOpenConns)
	db.SetMaxIdleConns(pg.MaxOpenConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	logged.Info().Msg("Connected to database")

	return db
}

// WithTransaction runs fn in a write transaction. It commits when fn returns
// nil and rolls back on an error or a panic.
func (conn *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := conn.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err == nil {
			if err = tx.Commit(); err != nil {
				err = fmt.Errorf("failed to commit transaction: %w", err)
			}

			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to roll back transaction")
		}
	}()

	return fn(tx)
}
