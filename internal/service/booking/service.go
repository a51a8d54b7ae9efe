package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cinetix/internal/domain"
	"cinetix/internal/repository"
	redisrepo "cinetix/internal/repository/redis"
	"cinetix/internal/seatmap"
)

// CatalogStore provides the showtime and screen lookups the engine needs
// to validate a request and price it.
type CatalogStore interface {
	GetShowtime(ctx context.Context, id int64) (*domain.Showtime, error)
	GetScreen(ctx context.Context, id int64) (*domain.Screen, error)
}

// BookingStore persists a validated booking atomically. The store owns the
// check-then-insert transaction; it reports conflicts via
// *repository.SeatsConflictError (pre-check) or repository.ErrConflict
// (commit-time race).
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking, seats []domain.Seat) (*domain.BookingWithSeats, error)
}

type Service struct {
	catalog  CatalogStore
	bookings BookingStore
	cache    *redisrepo.Cache
	pubsub   *redisrepo.ShowtimesPubSub
	limiter  *redisrepo.SlidingWindowLimiter
}

func New(
	catalog CatalogStore,
	bookings BookingStore,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ShowtimesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
) *Service {
	return &Service{
		catalog:  catalog,
		bookings: bookings,
		cache:    cache,
		pubsub:   pubsub,
		limiter:  limiter,
	}
}

// ComputeCharge prices a booking: per-seat price times seat count, exact
// decimal arithmetic throughout.
func ComputeCharge(price decimal.Decimal, seatCount int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(seatCount)))
}

// Create books the given seats for one user on one showtime, all-or-nothing.
//
// The request is validated against the showtime's screen grid before any
// write: empty and duplicated seat lists are rejected, as is any coordinate
// outside the grid. The total is computed only after validation passes, so
// a rejected request is never priced. On a seat conflict, nothing is
// persisted and the caller gets *SeatsAlreadyBookedError; the engine never
// substitutes seats or retries on the caller's behalf.
//
// Returns:
//   - *domain.BookingWithSeats: the committed booking.
//   - error: ErrShowtimeNotFound, ErrScreenNotFound, ErrNoSeats,
//     *InvalidSeatError, *DuplicateSeatError, or *SeatsAlreadyBookedError.
func (s *Service) Create(
	ctx context.Context,
	userID, showtimeID int64,
	seats []domain.Seat,
	rlKey string,
) (*domain.BookingWithSeats, error) {
	const op = "service.booking.Create"

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: rate limited, retry in %s", op, retry)
		}
	}

	if len(seats) == 0 {
		return nil, fmt.Errorf("%s:%w", op, ErrNoSeats)
	}

	showtime, err := s.catalog.GetShowtime(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrShowtimeNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	screen, err := s.catalog.GetScreen(ctx, showtime.ScreenID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrScreenNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	seen := make(map[domain.Seat]struct{}, len(seats))
	for _, seat := range seats {
		if !seatmap.Valid(*screen, seat) {
			return nil, fmt.Errorf("%s:%w", op, &InvalidSeatError{Seat: seat})
		}
		if _, dup := seen[seat]; dup {
			return nil, fmt.Errorf("%s:%w", op, &DuplicateSeatError{Seat: seat})
		}
		seen[seat] = struct{}{}
	}

	b := &domain.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		ShowtimeID:  showtimeID,
		TotalAmount: ComputeCharge(showtime.Price, len(seats)),
	}

	out, err := s.bookings.Create(ctx, b, seats)
	if err != nil {
		var sc *repository.SeatsConflictError
		if errors.As(err, &sc) {
			return nil, fmt.Errorf("%s:%w", op, &SeatsAlreadyBookedError{Seats: sc.Seats})
		}

		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s:%w", op, &SeatsAlreadyBookedError{})
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateShowtime(ctx, showtimeID)
	}

	if s.pubsub != nil {
		_ = s.pubsub.PublishShowtimeChanged(ctx, showtimeID)
	}

	return out, nil
}
