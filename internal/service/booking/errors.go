package booking

import (
	"errors"
	"fmt"
	"strings"

	"cinetix/internal/domain"
)

var (
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrScreenNotFound   = errors.New("screen not found")
	ErrNoSeats          = errors.New("no seats requested")
)

// InvalidSeatError names a requested coordinate outside the screen's grid.
type InvalidSeatError struct {
	Seat domain.Seat
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("invalid seat: %s", e.Seat)
}

// DuplicateSeatError names a seat requested twice in the same booking call.
type DuplicateSeatError struct {
	Seat domain.Seat
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf("duplicate seat in request: %s", e.Seat)
}

// SeatsAlreadyBookedError reports the requested seats held by a committed
// booking. Seats is empty when the conflict was only detected at commit
// time and the store could not name the losers. The caller reselects; the
// engine never substitutes seats or retries.
type SeatsAlreadyBookedError struct {
	Seats []domain.Seat
}

func (e *SeatsAlreadyBookedError) Error() string {
	if len(e.Seats) == 0 {
		return "seats already booked"
	}
	labels := make([]string, len(e.Seats))
	for i, s := range e.Seats {
		labels[i] = s.String()
	}
	return fmt.Sprintf("seats already booked: %s", strings.Join(labels, ", "))
}
