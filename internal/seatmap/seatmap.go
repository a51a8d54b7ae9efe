// Package seatmap implements the seat-grid geometry of a screen: row-letter
// labels, coordinate validation and row-major enumeration. It performs no
// I/O.
package seatmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cinetix/internal/domain"
)

// MaxRows is the largest supported row count. Row labels are single letters
// A-Z; multi-letter rows (AA, AB, ...) are not supported and screens that
// would need them are rejected at creation.
const MaxRows = 26

var (
	ErrRowOutOfRange = errors.New("row index out of range")
	ErrMalformedSeat = errors.New("malformed seat label")
)

// RowLabel maps a zero-based row index to its letter: 0 -> "A", 25 -> "Z".
func RowLabel(rowIndex int) (string, error) {
	if rowIndex < 0 || rowIndex >= MaxRows {
		return "", fmt.Errorf("%w: %d", ErrRowOutOfRange, rowIndex)
	}
	return string(rune('A' + rowIndex)), nil
}

// RowIndex is the inverse of RowLabel. The second return is false when the
// label is not a single letter A-Z.
func RowIndex(label string) (int, bool) {
	if len(label) != 1 {
		return 0, false
	}
	c := label[0]
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return int(c - 'A'), true
}

// Valid reports whether the seat lies within the screen's grid: column in
// [1, TotalCols] and row label mapping to an index below TotalRows.
func Valid(screen domain.Screen, seat domain.Seat) bool {
	if seat.Col < 1 || seat.Col > screen.TotalCols {
		return false
	}
	idx, ok := RowIndex(seat.Row)
	if !ok {
		return false
	}
	return idx < screen.TotalRows
}

// AllSeats enumerates the screen's grid in row-major order: A1..An, B1..Bn
// and so on. The result is deterministic and finite.
func AllSeats(screen domain.Screen) []domain.Seat {
	rows := screen.TotalRows
	if rows > MaxRows {
		rows = MaxRows
	}
	if rows <= 0 || screen.TotalCols <= 0 {
		return nil
	}

	seats := make([]domain.Seat, 0, rows*screen.TotalCols)
	for r := 0; r < rows; r++ {
		label, _ := RowLabel(r)
		for c := 1; c <= screen.TotalCols; c++ {
			seats = append(seats, domain.Seat{Row: label, Col: c})
		}
	}

	return seats
}

// ParseSeat parses a compact seat label like "A5" or "c12" into a Seat.
// The row letter is upper-cased; the column must be a positive integer.
func ParseSeat(s string) (domain.Seat, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return domain.Seat{}, fmt.Errorf("%w: %q", ErrMalformedSeat, s)
	}

	row := s[:1]
	if _, ok := RowIndex(row); !ok {
		return domain.Seat{}, fmt.Errorf("%w: %q", ErrMalformedSeat, s)
	}

	col, err := strconv.Atoi(s[1:])
	if err != nil || col < 1 {
		return domain.Seat{}, fmt.Errorf("%w: %q", ErrMalformedSeat, s)
	}

	return domain.Seat{Row: row, Col: col}, nil
}
