package query

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinetix/internal/domain"
	"cinetix/internal/repository"
)

type fakeCatalog struct {
	showtimes map[int64]*domain.Showtime
	screens   map[int64]*domain.Screen
	listings  []domain.ShowtimeListing
	movies    []domain.Movie
}

func (f *fakeCatalog) GetMovie(_ context.Context, id int64) (*domain.Movie, error) {
	for i := range f.movies {
		if f.movies[i].ID == id {
			return &f.movies[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalog) GetShowtime(_ context.Context, id int64) (*domain.Showtime, error) {
	st, ok := f.showtimes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return st, nil
}

func (f *fakeCatalog) GetScreen(_ context.Context, id int64) (*domain.Screen, error) {
	sc, ok := f.screens[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return sc, nil
}

func (f *fakeCatalog) ListShowtimes(_ context.Context) ([]domain.ShowtimeListing, error) {
	return f.listings, nil
}

func (f *fakeCatalog) ListMovies(_ context.Context) ([]domain.Movie, error) {
	return f.movies, nil
}

type fakeBookings struct {
	sold     map[int64][]domain.Seat
	bookings map[uuid.UUID]*domain.BookingWithSeats
	byUser   map[int64][]domain.BookingSummary
	all      []domain.BookingSummary
}

func (f *fakeBookings) BookedSeats(_ context.Context, showtimeID int64) ([]domain.Seat, error) {
	return f.sold[showtimeID], nil
}

func (f *fakeBookings) GetBooking(_ context.Context, id uuid.UUID) (*domain.BookingWithSeats, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookings) ListUserBookings(_ context.Context, userID int64) ([]domain.BookingSummary, error) {
	return f.byUser[userID], nil
}

func (f *fakeBookings) ListAllBookings(_ context.Context) ([]domain.BookingSummary, error) {
	return f.all, nil
}

func gridService(rows, cols int, sold []domain.Seat) *Service {
	catalog := &fakeCatalog{
		showtimes: map[int64]*domain.Showtime{
			1: {ID: 1, ScreenID: 9, Price: decimal.RequireFromString("100.00")},
		},
		screens: map[int64]*domain.Screen{
			9: {ID: 9, TotalRows: rows, TotalCols: cols},
		},
	}
	bookings := &fakeBookings{sold: map[int64][]domain.Seat{1: sold}}
	return New(catalog, bookings, nil)
}

func TestAvailability_PartitionsGrid(t *testing.T) {
	svc := gridService(2, 3, []domain.Seat{
		{Row: "A", Col: 2},
		{Row: "B", Col: 3},
	})

	sm, err := svc.Availability(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, sm.Booked, 2)
	assert.Len(t, sm.Available, 4)

	seen := make(map[domain.Seat]int)
	for _, s := range sm.Booked {
		seen[s]++
	}
	for _, s := range sm.Available {
		seen[s]++
	}
	assert.Len(t, seen, 6, "union covers the grid")
	for seat, n := range seen {
		assert.Equal(t, 1, n, "seat %s appears once", seat)
	}
}

func TestAvailability_RowMajorOrder(t *testing.T) {
	svc := gridService(2, 2, []domain.Seat{{Row: "A", Col: 1}})

	sm, err := svc.Availability(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []domain.Seat{
		{Row: "A", Col: 2},
		{Row: "B", Col: 1},
		{Row: "B", Col: 2},
	}, sm.Available)
	assert.Equal(t, []domain.Seat{{Row: "A", Col: 1}}, sm.Booked)
}

func TestAvailability_EmptyAndFullHouse(t *testing.T) {
	empty := gridService(2, 2, nil)
	sm, err := empty.Availability(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, sm.Booked)
	assert.Len(t, sm.Available, 4)

	full := gridService(2, 2, []domain.Seat{
		{Row: "A", Col: 1}, {Row: "A", Col: 2},
		{Row: "B", Col: 1}, {Row: "B", Col: 2},
	})
	sm, err = full.Availability(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, sm.Booked, 4)
	assert.Empty(t, sm.Available)
}

func TestAvailability_ReadIsIdempotent(t *testing.T) {
	svc := gridService(3, 3, []domain.Seat{{Row: "C", Col: 3}})

	first, err := svc.Availability(context.Background(), 1)
	require.NoError(t, err)

	second, err := svc.Availability(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailability_UnknownShowtime(t *testing.T) {
	svc := gridService(2, 2, nil)

	_, err := svc.Availability(context.Background(), 404)
	require.ErrorIs(t, err, ErrShowtimeNotFound)
}

func TestGetBooking_OwnerAndStaffAccess(t *testing.T) {
	id := uuid.New()
	bookings := &fakeBookings{
		bookings: map[uuid.UUID]*domain.BookingWithSeats{
			id: {Booking: domain.Booking{ID: id, UserID: 7}},
		},
	}
	svc := New(&fakeCatalog{}, bookings, nil)

	_, err := svc.GetBooking(context.Background(), id, 7, domain.RoleUser)
	assert.NoError(t, err, "owner reads own booking")

	_, err = svc.GetBooking(context.Background(), id, 99, domain.RoleStaff)
	assert.NoError(t, err, "staff reads any booking")

	_, err = svc.GetBooking(context.Background(), id, 99, domain.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetBooking(context.Background(), uuid.New(), 7, domain.RoleUser)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestLists_PassThroughWithoutCache(t *testing.T) {
	catalog := &fakeCatalog{
		listings: []domain.ShowtimeListing{{MovieTitle: "Heat", ScreenName: "IMAX"}},
		movies:   []domain.Movie{{ID: 1, Title: "Heat"}},
	}
	bookings := &fakeBookings{
		byUser: map[int64][]domain.BookingSummary{7: {{Username: "alice"}}},
		all:    []domain.BookingSummary{{Username: "alice"}, {Username: "bob"}},
	}
	svc := New(catalog, bookings, nil)

	listings, err := svc.ListShowtimes(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 1)

	movies, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 1)

	movie, err := svc.GetMovie(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)

	_, err = svc.GetMovie(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	mine, err := svc.ListUserBookings(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListAllBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
