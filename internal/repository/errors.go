package repository

import (
	"errors"
	"fmt"
	"strings"

	"cinetix/internal/domain"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// SeatsConflictError reports the exact seats that were already sold when a
// booking's pre-check ran. A conflict first detected at commit time (lost
// race) surfaces as a bare ErrConflict instead, because the store cannot
// say which seat lost.
type SeatsConflictError struct {
	Seats []domain.Seat
}

func (e *SeatsConflictError) Error() string {
	labels := make([]string, len(e.Seats))
	for i, s := range e.Seats {
		labels[i] = s.String()
	}
	return fmt.Sprintf("seats already booked: %s", strings.Join(labels, ", "))
}
