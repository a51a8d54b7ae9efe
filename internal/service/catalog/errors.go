package catalog

import (
	"errors"
	"fmt"

	"cinetix/internal/seatmap"
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrScreenNotFound   = errors.New("screen not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrShowtimeConflict = errors.New("screen already has a showtime at that instant")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrEmptyName        = errors.New("name must not be empty")
	ErrInvalidGrid      = errors.New("rows and columns must be positive")
)

// ErrTooManyRows caps screens at one letter per row.
var ErrTooManyRows = fmt.Errorf("screens support at most %d rows", seatmap.MaxRows)
