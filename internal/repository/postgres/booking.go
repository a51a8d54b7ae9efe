package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinetix/internal/domain"
	"cinetix/internal/repository"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// BookedSeats returns the seats already sold for a showtime, in insertion
// order. Always read fresh; a stale answer here is how seats get sold
// twice.
func (r *BookingRepo) BookedSeats(ctx context.Context, showtimeID int64) ([]domain.Seat, error) {
	const op = "postgres.BookingRepo.BookedSeats"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT seat_row, seat_col
		 FROM booking_seats
		 WHERE showtime_id = $1
		 ORDER BY seat_row, seat_col`,
		showtimeID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Seat
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.Row, &s.Col); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Create persists a booking header and its seat rows as one atomic
// transaction: the booked set is re-read inside the same transaction as
// the writes, so the pre-check and the insert cannot be split by a
// concurrent committer.
//
// Returns:
//   - *domain.BookingWithSeats: the persisted booking when successful.
//   - error: *repository.SeatsConflictError naming the seats that were
//     already sold when the pre-check ran.
//   - error: repository.ErrConflict when a concurrent transaction won the
//     race at commit time (unique violation or serialization failure).
func (r *BookingRepo) Create(
	ctx context.Context,
	b *domain.Booking,
	seats []domain.Seat,
) (*domain.BookingWithSeats, error) {
	const op = "postgres.BookingRepo.Create"

	if r.db != nil {
		out, err := r.createCore(ctx, r.db, b, seats)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		return out, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer tx.Rollback(ctx)

	out, err := r.createCore(ctx, tx, b, seats)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return out, nil
}

func (r *BookingRepo) createCore(
	ctx context.Context,
	db DB,
	b *domain.Booking,
	seats []domain.Seat,
) (*domain.BookingWithSeats, error) {
	rows, err := db.Query(ctx,
		`SELECT seat_row, seat_col
		 FROM booking_seats
		 WHERE showtime_id = $1`,
		b.ShowtimeID,
	)
	if err != nil {
		return nil, err
	}

	booked := make(map[domain.Seat]struct{})
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.Row, &s.Col); err != nil {
			rows.Close()
			return nil, err
		}
		booked[s] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	var conflicts []domain.Seat
	for _, s := range seats {
		if _, taken := booked[s]; taken {
			conflicts = append(conflicts, s)
		}
	}
	if len(conflicts) > 0 {
		return nil, &repository.SeatsConflictError{Seats: conflicts}
	}

	out := &domain.BookingWithSeats{Booking: *b, Seats: seats}
	if err := db.QueryRow(ctx,
		`INSERT INTO bookings(id, user_id, showtime_id, total_amount)
       	 VALUES ($1, $2, $3, $4)
       	 RETURNING booked_at`,
		b.ID, b.UserID, b.ShowtimeID, b.TotalAmount,
	).Scan(&out.BookedAt); err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	for _, s := range seats {
		batch.Queue(
			`INSERT INTO booking_seats(booking_id, showtime_id, seat_row, seat_col)
         	 VALUES ($1, $2, $3, $4)`,
			b.ID, b.ShowtimeID, s.Row, s.Col,
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return nil, err
	}

	return out, nil
}

// GetBooking retrieves a booking with its seat list.
//
// Returns:
//   - *domain.BookingWithSeats: the booking when found.
//   - error: repository.ErrNotFound if the booking is not found.
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*domain.BookingWithSeats, error) {
	const op = "postgres.BookingRepo.GetBooking"

	db := r.handle()

	var out domain.BookingWithSeats
	err := db.QueryRow(ctx,
		`SELECT id, user_id, showtime_id, total_amount, booked_at
       	 FROM bookings WHERE id = $1`,
		id,
	).Scan(
		&out.ID,
		&out.UserID,
		&out.ShowtimeID,
		&out.TotalAmount,
		&out.BookedAt,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT seat_row, seat_col
       	 FROM booking_seats
      	 WHERE booking_id = $1
       	 ORDER BY seat_row, seat_col`,
		id,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.Row, &s.Col); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out.Seats = append(out.Seats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

// ListUserBookings lists a user's bookings with movie/screen context,
// newest showtime first.
func (r *BookingRepo) ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	const op = "postgres.BookingRepo.ListUserBookings"

	return r.listSummaries(ctx, op,
		`SELECT b.id, u.username, m.title, sc.name, s.start_time,
		        (SELECT COUNT(*) FROM booking_seats bs WHERE bs.booking_id = b.id),
		        b.total_amount
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 JOIN showtimes s ON s.id = b.showtime_id
		 JOIN movies m ON m.id = s.movie_id
		 JOIN screens sc ON sc.id = s.screen_id
		 WHERE b.user_id = $1
		 ORDER BY s.start_time DESC`,
		userID,
	)
}

// ListAllBookings lists every booking with user/movie/screen context,
// newest showtime first.
func (r *BookingRepo) ListAllBookings(ctx context.Context) ([]domain.BookingSummary, error) {
	const op = "postgres.BookingRepo.ListAllBookings"

	return r.listSummaries(ctx, op,
		`SELECT b.id, u.username, m.title, sc.name, s.start_time,
		        (SELECT COUNT(*) FROM booking_seats bs WHERE bs.booking_id = b.id),
		        b.total_amount
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 JOIN showtimes s ON s.id = b.showtime_id
		 JOIN movies m ON m.id = s.movie_id
		 JOIN screens sc ON sc.id = s.screen_id
		 ORDER BY s.start_time DESC`,
	)
}

func (r *BookingRepo) listSummaries(
	ctx context.Context,
	op string,
	sql string,
	args ...any,
) ([]domain.BookingSummary, error) {
	db := r.handle()

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.BookingSummary
	for rows.Next() {
		var bs domain.BookingSummary
		if err := rows.Scan(
			&bs.BookingID,
			&bs.Username,
			&bs.MovieTitle,
			&bs.ScreenName,
			&bs.StartTime,
			&bs.Tickets,
			&bs.TotalAmount,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, bs)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
