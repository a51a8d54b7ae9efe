package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinetix/internal/domain"
)

type ReportRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReportRepo) With(db DB) *ReportRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReportRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ShowtimeStats returns raw per-showtime aggregates for showtimes starting
// in [from, to). Tickets and revenue come from separate grouped subqueries
// so a multi-seat booking's total_amount is counted once, and showtimes
// with zero bookings still appear (LEFT JOIN, zero-coalesced).
func (r *ReportRepo) ShowtimeStats(ctx context.Context, from, to time.Time) ([]domain.ShowtimeStatRow, error) {
	const op = "postgres.ReportRepo.ShowtimeStats"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT s.id, m.title, sc.name, s.start_time, sc.total_rows, sc.total_cols,
		        COALESCE(t.tickets, 0), COALESCE(rv.revenue, 0)
		 FROM showtimes s
		 JOIN movies m ON m.id = s.movie_id
		 JOIN screens sc ON sc.id = s.screen_id
		 LEFT JOIN (
		 	SELECT showtime_id, COUNT(*) AS tickets
		 	FROM booking_seats
		 	GROUP BY showtime_id
		 ) t ON t.showtime_id = s.id
		 LEFT JOIN (
		 	SELECT showtime_id, SUM(total_amount) AS revenue
		 	FROM bookings
		 	GROUP BY showtime_id
		 ) rv ON rv.showtime_id = s.id
		 WHERE s.start_time >= $1 AND s.start_time < $2
		 ORDER BY s.start_time`,
		from, to,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ShowtimeStatRow
	for rows.Next() {
		var row domain.ShowtimeStatRow
		if err := rows.Scan(
			&row.ShowtimeID,
			&row.MovieTitle,
			&row.ScreenName,
			&row.StartTime,
			&row.TotalRows,
			&row.TotalCols,
			&row.TicketsSold,
			&row.Revenue,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// DayStats groups bookings by the calendar day of their showtime's start,
// ascending. Days without bookings do not appear.
func (r *ReportRepo) DayStats(ctx context.Context, from, to time.Time) ([]domain.DayStat, error) {
	const op = "postgres.ReportRepo.DayStats"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT day, SUM(seat_count)::bigint, SUM(total_amount)
		 FROM (
		 	SELECT s.start_time::date AS day, b.total_amount,
		 	       (SELECT COUNT(*) FROM booking_seats bs WHERE bs.booking_id = b.id) AS seat_count
		 	FROM bookings b
		 	JOIN showtimes s ON s.id = b.showtime_id
		 	WHERE s.start_time >= $1 AND s.start_time < $2
		 ) x
		 GROUP BY day
		 ORDER BY day`,
		from, to,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.DayStat
	for rows.Next() {
		var d domain.DayStat
		if err := rows.Scan(&d.Day, &d.TicketsSold, &d.Revenue); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// TopMovie returns the movie with the highest summed revenue over the
// range, or nil when the range has no bookings at all.
func (r *ReportRepo) TopMovie(ctx context.Context, from, to time.Time) (*domain.MovieRevenue, error) {
	const op = "postgres.ReportRepo.TopMovie"

	db := r.handle()

	var mr domain.MovieRevenue
	err := db.QueryRow(ctx,
		`SELECT m.title, SUM(b.total_amount) AS revenue
		 FROM bookings b
		 JOIN showtimes s ON s.id = b.showtime_id
		 JOIN movies m ON m.id = s.movie_id
		 WHERE s.start_time >= $1 AND s.start_time < $2
		 GROUP BY m.title
		 ORDER BY revenue DESC
		 LIMIT 1`,
		from, to,
	).Scan(&mr.Title, &mr.Revenue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBErr(op, err)
	}

	return &mr, nil
}
