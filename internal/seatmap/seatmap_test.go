package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinetix/internal/domain"
)

func TestRowLabel(t *testing.T) {
	cases := []struct {
		index   int
		label   string
		wantErr bool
	}{
		{index: 0, label: "A"},
		{index: 1, label: "B"},
		{index: 25, label: "Z"},
		{index: 26, wantErr: true},
		{index: -1, wantErr: true},
	}

	for _, tc := range cases {
		got, err := RowLabel(tc.index)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrRowOutOfRange, "index %d", tc.index)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.label, got)
	}
}

func TestRowIndex(t *testing.T) {
	idx, ok := RowIndex("A")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = RowIndex("Z")
	require.True(t, ok)
	assert.Equal(t, 25, idx)

	for _, bad := range []string{"", "AA", "a", "5", "@"} {
		_, ok := RowIndex(bad)
		assert.False(t, ok, "label %q", bad)
	}
}

func TestValid(t *testing.T) {
	screen := domain.Screen{TotalRows: 3, TotalCols: 3}

	cases := []struct {
		seat domain.Seat
		want bool
	}{
		{domain.Seat{Row: "A", Col: 1}, true},
		{domain.Seat{Row: "C", Col: 3}, true},
		{domain.Seat{Row: "A", Col: 0}, false},
		{domain.Seat{Row: "A", Col: 4}, false},
		{domain.Seat{Row: "D", Col: 1}, false},
		{domain.Seat{Row: "", Col: 1}, false},
		{domain.Seat{Row: "AA", Col: 1}, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Valid(screen, tc.seat), "seat %s", tc.seat)
	}
}

func TestAllSeats(t *testing.T) {
	screen := domain.Screen{TotalRows: 2, TotalCols: 3}

	seats := AllSeats(screen)
	require.Len(t, seats, 6)

	want := []domain.Seat{
		{Row: "A", Col: 1}, {Row: "A", Col: 2}, {Row: "A", Col: 3},
		{Row: "B", Col: 1}, {Row: "B", Col: 2}, {Row: "B", Col: 3},
	}
	assert.Equal(t, want, seats)

	// every enumerated seat must validate against its own screen
	for _, s := range seats {
		assert.True(t, Valid(screen, s), "seat %s", s)
	}

	// deterministic across calls
	assert.Equal(t, seats, AllSeats(screen))

	assert.Nil(t, AllSeats(domain.Screen{TotalRows: 0, TotalCols: 5}))
	assert.Nil(t, AllSeats(domain.Screen{TotalRows: 5, TotalCols: 0}))
}

func TestParseSeat(t *testing.T) {
	s, err := ParseSeat("A5")
	require.NoError(t, err)
	assert.Equal(t, domain.Seat{Row: "A", Col: 5}, s)

	s, err = ParseSeat(" c12 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Seat{Row: "C", Col: 12}, s)

	for _, bad := range []string{"", "A", "5A", "A0", "A-1", "Ax", "1", "AA5"} {
		_, err := ParseSeat(bad)
		assert.ErrorIs(t, err, ErrMalformedSeat, "input %q", bad)
	}
}
