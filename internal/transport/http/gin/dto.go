package httpgin

import (
	"time"

	"cinetix/internal/domain"
	"cinetix/internal/seatmap"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin staff"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type CreateBookingRequest struct {
	Seats []string `json:"seats" binding:"required,min=1,dive,seat"`
}

type CreateMovieRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
	Rating      string `json:"rating"`
}

type CreateScreenRequest struct {
	Name      string `json:"name" binding:"required"`
	TotalRows int    `json:"total_rows" binding:"required,gt=0"`
	TotalCols int    `json:"total_cols" binding:"required,gt=0"`
}

type CreateShowtimeRequest struct {
	MovieID   int64  `json:"movie_id" binding:"required"`
	ScreenID  int64  `json:"screen_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Price     string `json:"price" binding:"required"`
}

type ErrorResponse struct {
	Error string   `json:"error"`
	Seats []string `json:"seats,omitempty"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func parseSeats(raw []string) ([]domain.Seat, error) {
	seats := make([]domain.Seat, 0, len(raw))
	for _, s := range raw {
		seat, err := seatmap.ParseSeat(s)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, nil
}

func seatLabels(seats []domain.Seat) []string {
	labels := make([]string, len(seats))
	for i, s := range seats {
		labels[i] = s.String()
	}
	return labels
}
