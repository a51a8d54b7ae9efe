package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cinetix/internal/domain"
)

// Store returns raw aggregates; all derived figures are computed here so
// the SQL stays simple and the math is testable.
type Store interface {
	ShowtimeStats(ctx context.Context, from, to time.Time) ([]domain.ShowtimeStatRow, error)
	DayStats(ctx context.Context, from, to time.Time) ([]domain.DayStat, error)
	TopMovie(ctx context.Context, from, to time.Time) (*domain.MovieRevenue, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// Daily reports every showtime starting on the given calendar day,
// including ones with zero bookings. The window is the day's midnight up
// to but excluding the next midnight, in the date's own location.
func (s *Service) Daily(ctx context.Context, date time.Time) ([]domain.ShowtimeStat, error) {
	const op = "service.report.Daily"

	from := midnight(date)
	to := from.AddDate(0, 0, 1)

	rows, err := s.store.ShowtimeStats(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	out := make([]domain.ShowtimeStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, derive(row))
	}

	return out, nil
}

// Range reports bookings grouped by day over [start, end], both endpoints
// inclusive as calendar days.
//
// Returns:
//   - *domain.RangeReport: per-day rows, grand totals, and the
//     top-grossing movie (nil when the range sold nothing).
//   - error: ErrInvalidRange when end precedes start.
func (s *Service) Range(ctx context.Context, start, end time.Time) (*domain.RangeReport, error) {
	const op = "service.report.Range"

	from := midnight(start)
	to := midnight(end).AddDate(0, 0, 1)
	if to.Before(from) || to.Equal(from) {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidRange)
	}

	perDay, err := s.store.DayStats(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	out := &domain.RangeReport{
		PerDay:       perDay,
		TotalRevenue: decimal.Zero,
	}
	for _, d := range perDay {
		out.TotalTickets += d.TicketsSold
		out.TotalRevenue = out.TotalRevenue.Add(d.Revenue)
	}

	top, err := s.store.TopMovie(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	out.TopMovie = top

	return out, nil
}

// derive fills in capacity, occupancy, and average ticket price from a raw
// aggregate row. Both ratios guard their zero denominators: a showtime on
// a zero-seat screen reports 0% occupancy, and a showtime with no tickets
// reports a zero average.
func derive(row domain.ShowtimeStatRow) domain.ShowtimeStat {
	st := domain.ShowtimeStat{
		ShowtimeID:     row.ShowtimeID,
		MovieTitle:     row.MovieTitle,
		ScreenName:     row.ScreenName,
		StartTime:      row.StartTime,
		Capacity:       row.TotalRows * row.TotalCols,
		TicketsSold:    row.TicketsSold,
		Revenue:        row.Revenue,
		AvgTicketPrice: decimal.Zero,
	}
	if row.TotalRows <= 0 || row.TotalCols <= 0 {
		st.Capacity = 0
	}

	if st.Capacity > 0 {
		st.OccupancyPct = float64(st.TicketsSold) / float64(st.Capacity) * 100
	}

	if st.TicketsSold > 0 {
		st.AvgTicketPrice = st.Revenue.
			Div(decimal.NewFromInt(st.TicketsSold)).
			Round(2)
	}

	return st
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
