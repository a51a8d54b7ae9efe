package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// booking_seats carries a denormalized showtime_id so the store itself can
// enforce one sale per seat per showtime: the UNIQUE(showtime_id, seat_row,
// seat_col) index turns a lost race into a unique violation at commit time.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(100) UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role VARCHAR(10) NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		duration_min INT NOT NULL DEFAULT 0,
		rating VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS screens (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		total_rows INT NOT NULL,
		total_cols INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS showtimes (
		id BIGSERIAL PRIMARY KEY,
		movie_id BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		screen_id BIGINT NOT NULL REFERENCES screens(id) ON DELETE CASCADE,
		start_time TIMESTAMPTZ NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE(screen_id, start_time)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		showtime_id BIGINT NOT NULL REFERENCES showtimes(id) ON DELETE CASCADE,
		total_amount NUMERIC(10,2) NOT NULL,
		booked_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS booking_seats (
		id BIGSERIAL PRIMARY KEY,
		booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		showtime_id BIGINT NOT NULL REFERENCES showtimes(id) ON DELETE CASCADE,
		seat_row VARCHAR(5) NOT NULL,
		seat_col INT NOT NULL,
		UNIQUE(booking_id, seat_row, seat_col),
		UNIQUE(showtime_id, seat_row, seat_col)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_booking_seats_showtime
		ON booking_seats(showtime_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user
		ON bookings(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_showtimes_start
		ON showtimes(start_time)`,
}

// Migrate applies the schema idempotently at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const op = "postgres.Migrate"

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
	}

	return nil
}
