package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cinetix/internal/domain"
	"cinetix/internal/repository"
	redisrepo "cinetix/internal/repository/redis"
	"cinetix/internal/seatmap"
)

const (
	listTTL    = 30 * time.Second
	summaryTTL = 30 * time.Second
)

// CatalogStore serves the read side of the catalog.
type CatalogStore interface {
	GetMovie(ctx context.Context, id int64) (*domain.Movie, error)
	GetShowtime(ctx context.Context, id int64) (*domain.Showtime, error)
	GetScreen(ctx context.Context, id int64) (*domain.Screen, error)
	ListShowtimes(ctx context.Context) ([]domain.ShowtimeListing, error)
	ListMovies(ctx context.Context) ([]domain.Movie, error)
}

// BookingStore serves the read side of bookings and sold seats.
type BookingStore interface {
	BookedSeats(ctx context.Context, showtimeID int64) ([]domain.Seat, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*domain.BookingWithSeats, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingSummary, error)
	ListAllBookings(ctx context.Context) ([]domain.BookingSummary, error)
}

type Service struct {
	catalog  CatalogStore
	bookings BookingStore
	cache    *redisrepo.Cache
}

func New(catalog CatalogStore, bookings BookingStore, cache *redisrepo.Cache) *Service {
	return &Service{
		catalog:  catalog,
		bookings: bookings,
		cache:    cache,
	}
}

// Availability resolves a showtime's full seat map against its sold seats.
// The grid is partitioned into booked and available in row-major order;
// every seat lands in exactly one side. The sold set is read from the store
// on every call, never from cache, so the answer reflects all committed
// bookings at read time.
//
// Returns:
//   - *domain.SeatMap: the partitioned grid.
//   - error: ErrShowtimeNotFound if the showtime does not exist.
func (s *Service) Availability(ctx context.Context, showtimeID int64) (*domain.SeatMap, error) {
	const op = "service.query.Availability"

	showtime, err := s.catalog.GetShowtime(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrShowtimeNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	screen, err := s.catalog.GetScreen(ctx, showtime.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	sold, err := s.bookings.BookedSeats(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	soldSet := make(map[domain.Seat]struct{}, len(sold))
	for _, seat := range sold {
		soldSet[seat] = struct{}{}
	}

	out := &domain.SeatMap{
		ShowtimeID: showtimeID,
		Screen:     *screen,
		Booked:     []domain.Seat{},
		Available:  []domain.Seat{},
	}
	for _, seat := range seatmap.AllSeats(*screen) {
		if _, taken := soldSet[seat]; taken {
			out.Booked = append(out.Booked, seat)
		} else {
			out.Available = append(out.Available, seat)
		}
	}

	return out, nil
}

// GetMovie returns one movie.
//
// Returns:
//   - *domain.Movie: the movie when found.
//   - error: ErrMovieNotFound if it does not exist.
func (s *Service) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	const op = "service.query.GetMovie"

	m, err := s.catalog.GetMovie(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrMovieNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return m, nil
}

// GetShowtime returns one showtime, cached briefly.
//
// Returns:
//   - *domain.Showtime: the showtime when found.
//   - error: ErrShowtimeNotFound if it does not exist.
func (s *Service) GetShowtime(ctx context.Context, id int64) (*domain.Showtime, error) {
	const op = "service.query.GetShowtime"

	load := func(ctx context.Context) (*domain.Showtime, error) {
		return s.catalog.GetShowtime(ctx, id)
	}

	var (
		st  *domain.Showtime
		err error
	)
	if s.cache != nil {
		st, err = redisrepo.GetOrSetJSON(
			ctx, s.cache, redisrepo.KeyShowtimeSummary(id), summaryTTL, load)
	} else {
		st, err = load(ctx)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrShowtimeNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return st, nil
}

// ListShowtimes lists showtimes with movie and screen context, cached
// briefly.
func (s *Service) ListShowtimes(ctx context.Context) ([]domain.ShowtimeListing, error) {
	const op = "service.query.ListShowtimes"

	load := func(ctx context.Context) ([]domain.ShowtimeListing, error) {
		return s.catalog.ListShowtimes(ctx)
	}

	var (
		out []domain.ShowtimeListing
		err error
	)
	if s.cache != nil {
		out, err = redisrepo.GetOrSetJSON(
			ctx, s.cache, redisrepo.KeyShowtimeList(), listTTL, load)
	} else {
		out, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListMovies lists the movie catalog, cached briefly.
func (s *Service) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	const op = "service.query.ListMovies"

	load := func(ctx context.Context) ([]domain.Movie, error) {
		return s.catalog.ListMovies(ctx)
	}

	var (
		out []domain.Movie
		err error
	)
	if s.cache != nil {
		out, err = redisrepo.GetOrSetJSON(
			ctx, s.cache, redisrepo.KeyMovieList(), listTTL, load)
	} else {
		out, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetBooking returns one booking with its seats. A non-staff caller may
// only read their own booking.
//
// Returns:
//   - *domain.BookingWithSeats: the booking when found.
//   - error: ErrBookingNotFound if it does not exist, ErrForbidden when the
//     caller is neither the owner nor staff.
func (s *Service) GetBooking(
	ctx context.Context,
	id uuid.UUID,
	callerID int64,
	callerRole domain.Role,
) (*domain.BookingWithSeats, error) {
	const op = "service.query.GetBooking"

	b, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if b.UserID != callerID &&
		callerRole != domain.RoleAdmin && callerRole != domain.RoleStaff {
		return nil, fmt.Errorf("%s:%w", op, ErrForbidden)
	}

	return b, nil
}

// ListUserBookings lists the caller's bookings, newest showtime first.
func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingSummary, error) {
	const op = "service.query.ListUserBookings"

	out, err := s.bookings.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListAllBookings lists every booking, newest showtime first.
func (s *Service) ListAllBookings(ctx context.Context) ([]domain.BookingSummary, error) {
	const op = "service.query.ListAllBookings"

	out, err := s.bookings.ListAllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
