package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cinetix/internal/domain"
	"cinetix/internal/repository"
	postgresrepo "cinetix/internal/repository/postgres"
	redisrepo "cinetix/internal/repository/redis"
	"cinetix/internal/seatmap"
	"cinetix/internal/uow"
)

// Service owns admin-side catalog mutations. Each mutation runs in a unit
// of work; cache invalidation and change notifications fire only after the
// commit succeeds.
type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.ShowtimesPubSub
	uow    *uow.UoW
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ShowtimesPubSub,
) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

// CreateMovie creates a movie record and returns its ID.
//
// Returns:
//   - int64: the created movie ID.
//   - error: ErrEmptyTitle or ErrInvalidDuration on bad input.
func (s *Service) CreateMovie(
	ctx context.Context,
	title, description string,
	durationMin int,
	rating string,
) (int64, error) {
	const op = "service.catalog.CreateMovie"

	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%s:%w", op, ErrEmptyTitle)
	}

	if durationMin <= 0 {
		return 0, fmt.Errorf("%s:%w", op, ErrInvalidDuration)
	}

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Catalog().With(tx).CreateMovie(ctx, title, description, durationMin, rating)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			s.afterCatalogChange(ctx)
		})

		return nil
	})

	return id, err
}

// DeleteMovie removes a movie and, through cascades, its showtimes and
// their bookings.
//
// Returns:
//   - error: ErrMovieNotFound if the movie does not exist.
func (s *Service) DeleteMovie(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteMovie"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Catalog().With(tx).DeleteMovie(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrMovieNotFound)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			s.afterCatalogChange(ctx)
		})

		return nil
	})
}

// CreateScreen creates a seat grid. ValidateGrid bounds apply: positive
// dimensions and at most one row per letter of the alphabet.
//
// Returns:
//   - int64: the created screen ID.
//   - error: ErrEmptyName, ErrInvalidGrid, or ErrTooManyRows on bad input.
func (s *Service) CreateScreen(
	ctx context.Context,
	name string,
	totalRows, totalCols int,
) (int64, error) {
	const op = "service.catalog.CreateScreen"

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%s:%w", op, ErrEmptyName)
	}

	if err := ValidateGrid(totalRows, totalCols); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.store.Catalog().With(tx).CreateScreen(ctx, name, totalRows, totalCols)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		return nil
	})

	return id, err
}

// DeleteScreen removes a screen and everything scheduled on it.
//
// Returns:
//   - error: ErrScreenNotFound if the screen does not exist.
func (s *Service) DeleteScreen(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteScreen"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Catalog().With(tx).DeleteScreen(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrScreenNotFound)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			s.afterCatalogChange(ctx)
		})

		return nil
	})
}

// ListScreens lists all screens.
func (s *Service) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	const op = "service.catalog.ListScreens"

	out, err := s.store.Catalog().ListScreens(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// CreateShowtime schedules a movie on a screen. The movie and screen are
// checked inside the same transaction as the insert.
//
// Returns:
//   - int64: the created showtime ID.
//   - error: ErrInvalidPrice on a non-positive price, ErrMovieNotFound or
//     ErrScreenNotFound for dangling references, ErrShowtimeConflict when
//     the screen is already booked for that instant.
func (s *Service) CreateShowtime(
	ctx context.Context,
	movieID, screenID int64,
	startTime time.Time,
	price decimal.Decimal,
) (int64, error) {
	const op = "service.catalog.CreateShowtime"

	if price.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%s:%w", op, ErrInvalidPrice)
	}

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		catalog := s.store.Catalog().With(tx)

		if _, err := catalog.GetMovie(ctx, movieID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrMovieNotFound)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		if _, err := catalog.GetScreen(ctx, screenID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrScreenNotFound)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		var err error
		id, err = catalog.CreateShowtime(ctx, movieID, screenID, startTime, price)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s:%w", op, ErrShowtimeConflict)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			s.afterCatalogChange(ctx)
		})

		return nil
	})

	return id, err
}

// DeleteShowtime removes a showtime and its bookings.
//
// Returns:
//   - error: ErrShowtimeNotFound if the showtime does not exist.
func (s *Service) DeleteShowtime(ctx context.Context, id int64) error {
	const op = "service.catalog.DeleteShowtime"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Catalog().With(tx).DeleteShowtime(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrShowtimeNotFound)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			if s.cache != nil {
				_ = s.cache.InvalidateShowtime(ctx, id)
			}
			if s.pubsub != nil {
				_ = s.pubsub.PublishShowtimeChanged(ctx, id)
			}
		})

		return nil
	})
}

// ValidateGrid checks screen dimensions against the seat labelling scheme.
func ValidateGrid(totalRows, totalCols int) error {
	if totalRows <= 0 || totalCols <= 0 {
		return ErrInvalidGrid
	}

	if totalRows > seatmap.MaxRows {
		return ErrTooManyRows
	}

	return nil
}

func (s *Service) afterCatalogChange(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateCatalog(ctx)
	}
}
