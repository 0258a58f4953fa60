package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/projectx/clinic-api/internal/config"
)

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Every table carries a seq insertion counter: UUID ids are not monotonic,
// so recency ordering and tiebreaks key off seq instead.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY,
		seq BIGSERIAL,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		age INTEGER NOT NULL DEFAULT 0 CHECK (age >= 0),
		gender TEXT NOT NULL DEFAULT '',
		diagnosis TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id UUID PRIMARY KEY,
		seq BIGSERIAL,
		patient_id UUID NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		doctor TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		time TEXT NOT NULL DEFAULT '',
		reason TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Upcoming',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id UUID PRIMARY KEY,
		seq BIGSERIAL,
		patient_id UUID NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		amount DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (amount >= 0),
		payment_method TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending',
		transaction_id TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		date_issued TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments(patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bills_patient ON bills(patient_id)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
