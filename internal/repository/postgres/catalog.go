package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"cinetix/internal/domain"
	"cinetix/internal/repository"
)

type CatalogRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CatalogRepo) With(db DB) *CatalogRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CatalogRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// GetMovie retrieves a movie by its ID.
//
// Returns:
//   - *domain.Movie: the movie when found.
//   - error: repository.ErrNotFound if the movie is not found.
func (r *CatalogRepo) GetMovie(ctx context.Context, id int64) (*domain.Movie, error) {
	const op = "postgres.CatalogRepo.GetMovie"

	db := r.handle()

	var m domain.Movie
	err := db.QueryRow(ctx,
		`SELECT id, title, description, duration_min, rating, created_at
       	 FROM movies WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Title, &m.Description, &m.DurationMin, &m.Rating, &m.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &m, nil
}

func (r *CatalogRepo) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	const op = "postgres.CatalogRepo.ListMovies"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, title, description, duration_min, rating, created_at
		 FROM movies
		 ORDER BY title`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.DurationMin, &m.Rating, &m.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) CreateMovie(
	ctx context.Context,
	title, description string,
	durationMin int,
	rating string,
) (int64, error) {
	const op = "postgres.CatalogRepo.CreateMovie"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO movies(title, description, duration_min, rating)
       	 VALUES ($1, $2, $3, $4)
     	 RETURNING id`,
		title, description, durationMin, rating,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// DeleteMovie removes a movie; its showtimes, their bookings and booking
// seats go with it via FK cascades.
func (r *CatalogRepo) DeleteMovie(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteMovie"

	db := r.handle()

	ct, err := db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// GetScreen retrieves a screen by its ID.
//
// Returns:
//   - *domain.Screen: the screen when found.
//   - error: repository.ErrNotFound if the screen is not found.
func (r *CatalogRepo) GetScreen(ctx context.Context, id int64) (*domain.Screen, error) {
	const op = "postgres.CatalogRepo.GetScreen"

	db := r.handle()

	var s domain.Screen
	err := db.QueryRow(ctx,
		`SELECT id, name, total_rows, total_cols, created_at
       	 FROM screens WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.TotalRows, &s.TotalCols, &s.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (r *CatalogRepo) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	const op = "postgres.CatalogRepo.ListScreens"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, total_rows, total_cols, created_at
		 FROM screens
		 ORDER BY name`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Screen
	for rows.Next() {
		var s domain.Screen
		if err := rows.Scan(&s.ID, &s.Name, &s.TotalRows, &s.TotalCols, &s.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) CreateScreen(
	ctx context.Context,
	name string,
	totalRows, totalCols int,
) (int64, error) {
	const op = "postgres.CatalogRepo.CreateScreen"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO screens(name, total_rows, total_cols)
       	 VALUES ($1, $2, $3)
     	 RETURNING id`,
		name, totalRows, totalCols,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *CatalogRepo) DeleteScreen(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteScreen"

	db := r.handle()

	ct, err := db.Exec(ctx, `DELETE FROM screens WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// GetShowtime retrieves a showtime by its ID.
//
// Returns:
//   - *domain.Showtime: the showtime when found.
//   - error: repository.ErrNotFound if the showtime is not found.
func (r *CatalogRepo) GetShowtime(ctx context.Context, id int64) (*domain.Showtime, error) {
	const op = "postgres.CatalogRepo.GetShowtime"

	db := r.handle()

	var st domain.Showtime
	err := db.QueryRow(ctx,
		`SELECT id, movie_id, screen_id, start_time, price, created_at
       	 FROM showtimes WHERE id = $1`,
		id,
	).Scan(&st.ID, &st.MovieID, &st.ScreenID, &st.StartTime, &st.Price, &st.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &st, nil
}

// ListShowtimes lists all showtimes joined with their movie title and
// screen name, ordered by start time.
func (r *CatalogRepo) ListShowtimes(ctx context.Context) ([]domain.ShowtimeListing, error) {
	const op = "postgres.CatalogRepo.ListShowtimes"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT s.id, s.movie_id, s.screen_id, s.start_time, s.price, s.created_at,
		        m.title, sc.name
		 FROM showtimes s
		 JOIN movies m ON m.id = s.movie_id
		 JOIN screens sc ON sc.id = s.screen_id
		 ORDER BY s.start_time`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ShowtimeListing
	for rows.Next() {
		var l domain.ShowtimeListing
		if err := rows.Scan(
			&l.ID,
			&l.MovieID,
			&l.ScreenID,
			&l.StartTime,
			&l.Price,
			&l.CreatedAt,
			&l.MovieTitle,
			&l.ScreenName,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// CreateShowtime inserts a showtime. A screen cannot host two showtimes at
// the same instant; the UNIQUE(screen_id, start_time) constraint surfaces
// as repository.ErrConflict.
func (r *CatalogRepo) CreateShowtime(
	ctx context.Context,
	movieID, screenID int64,
	startTime time.Time,
	price decimal.Decimal,
) (int64, error) {
	const op = "postgres.CatalogRepo.CreateShowtime"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO showtimes(movie_id, screen_id, start_time, price)
       	 VALUES ($1, $2, $3, $4)
     	 RETURNING id`,
		movieID, screenID, startTime, price,
	).Scan(&id); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

func (r *CatalogRepo) DeleteShowtime(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteShowtime"

	db := r.handle()

	ct, err := db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
