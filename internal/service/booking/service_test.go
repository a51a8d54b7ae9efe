package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinetix/internal/domain"
	"cinetix/internal/repository"
)

type fakeCatalog struct {
	showtimes map[int64]*domain.Showtime
	screens   map[int64]*domain.Screen
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

type fakeBookingStore struct {
	failWith error
	created  []*domain.BookingWithSeats
}

func (f *fakeBookingStore) Create(
	_ context.Context,
	b *domain.Booking,
	seats []domain.Seat,
) (*domain.BookingWithSeats, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	out := &domain.BookingWithSeats{Booking: *b, Seats: seats}
	f.created = append(f.created, out)
	return out, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(screen domain.Screen, p decimal.Decimal, store *fakeBookingStore) *Service {
	catalog := &fakeCatalog{
		showtimes: map[int64]*domain.Showtime{
			1: {ID: 1, MovieID: 1, ScreenID: screen.ID, Price: p},
		},
		screens: map[int64]*domain.Screen{screen.ID: &screen},
	}
	return New(catalog, store, nil, nil, nil)
}

func TestCreate_TotalIsPriceTimesSeatCount(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 5, TotalCols: 5},
		price("200.00"),
		store,
	)

	got, err := svc.Create(context.Background(), 42, 1, []domain.Seat{
		{Row: "A", Col: 1},
		{Row: "A", Col: 2},
	}, "")
	require.NoError(t, err)

	assert.True(t, got.TotalAmount.Equal(price("400.00")),
		"total = %s", got.TotalAmount)
	assert.Equal(t, int64(42), got.UserID)
	assert.Len(t, got.Seats, 2)
	require.Len(t, store.created, 1)
}

func TestCreate_MonetaryConsistency(t *testing.T) {
	cases := []struct {
		name  string
		seats int
		want  string
	}{
		{"single seat", 1, "150.50"},
		{"five seats", 5, "752.50"},
		{"full house", 25, "3762.50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeCharge(price("150.50"), tc.seats)
			assert.True(t, got.Equal(price(tc.want)), "got %s", got)
		})
	}
}

func TestCreate_ConflictNamesSeatsAndPersistsNothing(t *testing.T) {
	store := &fakeBookingStore{
		failWith: &repository.SeatsConflictError{
			Seats: []domain.Seat{{Row: "A", Col: 2}},
		},
	}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 5, TotalCols: 5},
		price("200.00"),
		store,
	)

	_, err := svc.Create(context.Background(), 42, 1, []domain.Seat{
		{Row: "A", Col: 2},
		{Row: "A", Col: 3},
	}, "")

	var booked *SeatsAlreadyBookedError
	require.ErrorAs(t, err, &booked)
	require.Len(t, booked.Seats, 1)
	assert.Equal(t, "A2", booked.Seats[0].String())
	assert.Empty(t, store.created)
}

func TestCreate_CommitTimeRaceMapsToAlreadyBooked(t *testing.T) {
	store := &fakeBookingStore{failWith: repository.ErrConflict}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 5, TotalCols: 5},
		price("200.00"),
		store,
	)

	_, err := svc.Create(context.Background(), 42, 1, []domain.Seat{
		{Row: "B", Col: 1},
	}, "")

	var booked *SeatsAlreadyBookedError
	require.ErrorAs(t, err, &booked)
	assert.Empty(t, booked.Seats)
}

func TestCreate_RejectsSeatOutsideGrid(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 3, TotalCols: 3},
		price("100.00"),
		store,
	)

	_, err := svc.Create(context.Background(), 42, 1, []domain.Seat{
		{Row: "D", Col: 1},
	}, "")

	var invalid *InvalidSeatError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "D1", invalid.Seat.String())
	assert.Empty(t, store.created)
}

func TestCreate_RejectsDuplicateSeatInRequest(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 3, TotalCols: 3},
		price("100.00"),
		store,
	)

	_, err := svc.Create(context.Background(), 42, 1, []domain.Seat{
		{Row: "B", Col: 2},
		{Row: "B", Col: 2},
	}, "")

	var dup *DuplicateSeatError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "B2", dup.Seat.String())
	assert.Empty(t, store.created)
}

func TestCreate_RejectsEmptySeatList(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 3, TotalCols: 3},
		price("100.00"),
		store,
	)

	_, err := svc.Create(context.Background(), 42, 1, nil, "")
	require.ErrorIs(t, err, ErrNoSeats)
	assert.Empty(t, store.created)
}

func TestCreate_UnknownShowtime(t *testing.T) {
	store := &fakeBookingStore{}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 3, TotalCols: 3},
		price("100.00"),
		store,
	)

	_, err := svc.Create(context.Background(), 42, 999, []domain.Seat{
		{Row: "A", Col: 1},
	}, "")
	require.ErrorIs(t, err, ErrShowtimeNotFound)
}

func TestCreate_UnknownScreen(t *testing.T) {
	catalog := &fakeCatalog{
		showtimes: map[int64]*domain.Showtime{
			1: {ID: 1, ScreenID: 404, Price: price("100.00")},
		},
		screens: map[int64]*domain.Screen{},
	}
	svc := New(catalog, &fakeBookingStore{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), 42, 1, []domain.Seat{
		{Row: "A", Col: 1},
	}, "")
	require.ErrorIs(t, err, ErrScreenNotFound)
}

func TestCreate_WrappedStoreErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection reset")
	store := &fakeBookingStore{failWith: boom}
	svc := newTestService(
		domain.Screen{ID: 7, TotalRows: 3, TotalCols: 3},
		price("100.00"),
		store,
	)

	_, err := svc.Create(context.Background(), 42, 1, []domain.Seat{
		{Row: "A", Col: 1},
	}, "")
	require.ErrorIs(t, err, boom)
}
