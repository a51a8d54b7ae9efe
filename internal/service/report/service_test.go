package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinetix/internal/domain"
)

type fakeStore struct {
	rows []domain.ShowtimeStatRow
	days []domain.DayStat
	top  *domain.MovieRevenue

	statsFrom, statsTo time.Time
}

func (f *fakeStore) ShowtimeStats(_ context.Context, from, to time.Time) ([]domain.ShowtimeStatRow, error) {
	f.statsFrom, f.statsTo = from, to
	return f.rows, nil
}

func (f *fakeStore) DayStats(_ context.Context, from, to time.Time) ([]domain.DayStat, error) {
	f.statsFrom, f.statsTo = from, to
	return f.days, nil
}

func (f *fakeStore) TopMovie(_ context.Context, _, _ time.Time) (*domain.MovieRevenue, error) {
	return f.top, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDaily_DerivedFigures(t *testing.T) {
	start := time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC)
	store := &fakeStore{
		rows: []domain.ShowtimeStatRow{
			{
				ShowtimeID: 1, MovieTitle: "Heat", ScreenName: "IMAX",
				StartTime: start, TotalRows: 5, TotalCols: 10,
				TicketsSold: 10, Revenue: dec("1500.00"),
			},
			{
				ShowtimeID: 2, MovieTitle: "Alien", ScreenName: "Screen 2",
				StartTime: start, TotalRows: 4, TotalCols: 4,
				TicketsSold: 0, Revenue: decimal.Zero,
			},
		},
	}
	svc := New(store)

	stats, err := svc.Daily(context.Background(), start)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	heat := stats[0]
	assert.Equal(t, 50, heat.Capacity)
	assert.InDelta(t, 20.0, heat.OccupancyPct, 1e-9)
	assert.True(t, heat.AvgTicketPrice.Equal(dec("150.00")),
		"avg = %s", heat.AvgTicketPrice)

	empty := stats[1]
	assert.Equal(t, 16, empty.Capacity)
	assert.Zero(t, empty.OccupancyPct)
	assert.True(t, empty.Revenue.IsZero())
	assert.True(t, empty.AvgTicketPrice.IsZero())
}

func TestDaily_WindowIsWholeCalendarDay(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	noon := time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
	_, err := svc.Daily(context.Background(), noon)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), store.statsFrom)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), store.statsTo)
}

func TestDaily_AvgRoundsToCents(t *testing.T) {
	store := &fakeStore{
		rows: []domain.ShowtimeStatRow{
			{TotalRows: 3, TotalCols: 3, TicketsSold: 3, Revenue: dec("100.00")},
		},
	}
	svc := New(store)

	stats, err := svc.Daily(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.True(t, stats[0].AvgTicketPrice.Equal(dec("33.33")),
		"avg = %s", stats[0].AvgTicketPrice)
}

func TestRange_TotalsAndTopMovie(t *testing.T) {
	store := &fakeStore{
		days: []domain.DayStat{
			{Day: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), TicketsSold: 4, Revenue: dec("800.00")},
			{Day: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), TicketsSold: 6, Revenue: dec("900.00")},
		},
		top: &domain.MovieRevenue{Title: "Heat", Revenue: dec("1100.00")},
	}
	svc := New(store)

	rep, err := svc.Range(context.Background(),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, int64(10), rep.TotalTickets)
	assert.True(t, rep.TotalRevenue.Equal(dec("1700.00")))
	require.NotNil(t, rep.TopMovie)
	assert.Equal(t, "Heat", rep.TopMovie.Title)
	assert.Len(t, rep.PerDay, 2)
}

func TestRange_EndDayIsInclusive(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)

	_, err := svc.Range(context.Background(),
		time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), store.statsFrom)
	assert.Equal(t, time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), store.statsTo)
}

func TestRange_EmptyRangeSellsNothing(t *testing.T) {
	svc := New(&fakeStore{})

	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	rep, err := svc.Range(context.Background(), day, day)
	require.NoError(t, err)

	assert.Zero(t, rep.TotalTickets)
	assert.True(t, rep.TotalRevenue.IsZero())
	assert.Nil(t, rep.TopMovie)
	assert.Empty(t, rep.PerDay)
}

func TestRange_RejectsReversedRange(t *testing.T) {
	svc := New(&fakeStore{})

	_, err := svc.Range(context.Background(),
		time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	)
	require.ErrorIs(t, err, ErrInvalidRange)
}
