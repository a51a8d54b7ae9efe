package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DurationMin int       `json:"duration_min"`
	Rating      string    `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// Screen defines a rectangular seat grid. Row labels are letters assigned
// from A, columns are numbered from 1.
type Screen struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TotalRows int       `json:"total_rows"`
	TotalCols int       `json:"total_cols"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Screen) Capacity() int {
	if s.TotalRows <= 0 || s.TotalCols <= 0 {
		return 0
	}
	return s.TotalRows * s.TotalCols
}

type Showtime struct {
	ID        int64           `json:"id"`
	MovieID   int64           `json:"movie_id"`
	ScreenID  int64           `json:"screen_id"`
	StartTime time.Time       `json:"start_time"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// ShowtimeListing is a showtime joined with its movie title and screen name
// for list views.
type ShowtimeListing struct {
	Showtime
	MovieTitle string `json:"movie_title"`
	ScreenName string `json:"screen_name"`
}

// Seat is a coordinate within a screen grid, e.g. row "A", column 5. Seats
// are derived values, never stored on their own.
type Seat struct {
	Row string `json:"row"`
	Col int    `json:"col"`
}

func (s Seat) String() string {
	return fmt.Sprintf("%s%d", s.Row, s.Col)
}

// Booking is one checkout transaction: one user, one showtime, one or more
// seats. TotalAmount is fixed at creation and never mutated.
type Booking struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int64           `json:"user_id"`
	ShowtimeID  int64           `json:"showtime_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	BookedAt    time.Time       `json:"booked_at"`
}

type BookingWithSeats struct {
	Booking
	Seats []Seat `json:"seats"`
}

// BookingSummary is a booking joined with user/movie/screen context for
// list views ("my bookings", admin overview).
type BookingSummary struct {
	BookingID   uuid.UUID       `json:"booking_id"`
	Username    string          `json:"username"`
	MovieTitle  string          `json:"movie_title"`
	ScreenName  string          `json:"screen_name"`
	StartTime   time.Time       `json:"start_time"`
	Tickets     int64           `json:"tickets"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SeatMap is a showtime's full grid partitioned into booked and available
// seats. Booked and Available are disjoint and together cover the grid in
// row-major order.
type SeatMap struct {
	ShowtimeID int64  `json:"showtime_id"`
	Screen     Screen `json:"screen"`
	Booked     []Seat `json:"booked"`
	Available  []Seat `json:"available"`
}

// ShowtimeStat is one row of the daily report.
type ShowtimeStat struct {
	ShowtimeID     int64           `json:"showtime_id"`
	MovieTitle     string          `json:"movie_title"`
	ScreenName     string          `json:"screen_name"`
	StartTime      time.Time       `json:"start_time"`
	Capacity       int             `json:"capacity"`
	TicketsSold    int64           `json:"tickets_sold"`
	Revenue        decimal.Decimal `json:"revenue"`
	OccupancyPct   float64         `json:"occupancy_pct"`
	AvgTicketPrice decimal.Decimal `json:"avg_ticket_price"`
}

// ShowtimeStatRow is the raw aggregate the store returns; derived fields
// (capacity, occupancy, average ticket) are computed by the report service.
type ShowtimeStatRow struct {
	ShowtimeID  int64
	MovieTitle  string
	ScreenName  string
	StartTime   time.Time
	TotalRows   int
	TotalCols   int
	TicketsSold int64
	Revenue     decimal.Decimal
}

type DayStat struct {
	Day         time.Time       `json:"day"`
	TicketsSold int64           `json:"tickets_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type MovieRevenue struct {
	Title   string          `json:"title"`
	Revenue decimal.Decimal `json:"revenue"`
}

type RangeReport struct {
	PerDay       []DayStat       `json:"per_day"`
	TotalTickets int64           `json:"total_tickets"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TopMovie     *MovieRevenue   `json:"top_movie,omitempty"`
}
