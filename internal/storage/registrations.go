// Package storage persists confirmed registrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/iteachuz/enrollbot/internal/logger"
)

// Registration is the durable record written once per confirmed session.
type Registration struct {
	ID        int64          `db:"id"`
	TgUserID  int64          `db:"tg_user_id"`
	Username  sql.NullString `db:"username"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	FullName  string         `db:"full_name"`
	Age       int            `db:"age"`
	Phone     string         `db:"phone"`
	Course    string         `db:"course"`
	Level     sql.NullString `db:"level"`
	Section   string         `db:"section"`
	CreatedAt time.Time      `db:"created_at"`
}

// Registrations provides access to the registrations table.
type Registrations struct {
	db *sqlx.DB
}

// NewRegistrations constructs the repository.
func NewRegistrations(db *sqlx.DB) *Registrations {
	return &Registrations{db: db}
}

const insertRegistration = `
INSERT INTO registrations
    (tg_user_id, username, first_name, last_name, full_name, age, phone, course, level, section)
VALUES
    (:tg_user_id, :username, :first_name, :last_name, :full_name, :age, :phone, :course, :level, :section)
RETURNING id, created_at`

// Create inserts the record and fills the server-assigned identity and timestamp.
func (r *Registrations) Create(ctx context.Context, reg *Registration) error {
	start := time.Now()

	rows, err := r.db.NamedQueryContext(ctx, insertRegistration, reg)
	if err != nil {
		logger.Error(ctx, "db", "registration.insert",
			slog.String("status", "fail"),
			slog.Int64("tg_user_id", reg.TgUserID),
			slog.Duration("duration", logger.Took(start)),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("insert registration: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("insert registration: %w", err)
		}
		return fmt.Errorf("insert registration: no row returned")
	}
	if err := rows.Scan(&reg.ID, &reg.CreatedAt); err != nil {
		return fmt.Errorf("scan registration id: %w", err)
	}

	logger.Info(ctx, "db", "registration.insert",
		slog.String("status", "ok"),
		slog.Int64("registration_id", reg.ID),
		slog.Int64("tg_user_id", reg.TgUserID),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}

// Count returns the total number of stored registrations.
func (r *Registrations) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM registrations`); err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return n, nil
}
