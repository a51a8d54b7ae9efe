package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cinetix/internal/seatmap"
)

func TestValidateGrid(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		want error
	}{
		{"typical screen", 10, 20, nil},
		{"single seat", 1, 1, nil},
		{"max rows", seatmap.MaxRows, 5, nil},
		{"zero rows", 0, 5, ErrInvalidGrid},
		{"zero cols", 5, 0, ErrInvalidGrid},
		{"negative rows", -1, 5, ErrInvalidGrid},
		{"too many rows", seatmap.MaxRows + 1, 5, ErrTooManyRows},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateGrid(tc.rows, tc.cols)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
