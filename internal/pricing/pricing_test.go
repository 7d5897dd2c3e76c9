package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		rate       int
		commission float64
		expected   Breakdown
		expectErr  error
	}{
		{
			name:       "three day rental at 100 per day",
			start:      date(2024, time.June, 1),
			end:        date(2024, time.June, 3),
			rate:       100,
			commission: 0.10,
			expected:   Breakdown{Days: 3, BaseRent: 300, ServiceFee: 30, Total: 330},
		},
		{
			name:       "single day rental counts one day",
			start:      date(2024, time.June, 1),
			end:        date(2024, time.June, 1),
			rate:       250,
			commission: 0.10,
			expected:   Breakdown{Days: 1, BaseRent: 250, ServiceFee: 25, Total: 275},
		},
		{
			name:       "fee rounds up to whole rupee",
			start:      date(2024, time.June, 1),
			end:        date(2024, time.June, 1),
			rate:       55,
			commission: 0.10,
			expected:   Breakdown{Days: 1, BaseRent: 55, ServiceFee: 6, Total: 61},
		},
		{
			name:       "range spanning a month boundary",
			start:      date(2024, time.June, 29),
			end:        date(2024, time.July, 2),
			rate:       100,
			commission: 0.10,
			expected:   Breakdown{Days: 4, BaseRent: 400, ServiceFee: 40, Total: 440},
		},
		{
			name:       "zero commission keeps total at base rent",
			start:      date(2024, time.June, 1),
			end:        date(2024, time.June, 3),
			rate:       100,
			commission: 0,
			expected:   Breakdown{Days: 3, BaseRent: 300, ServiceFee: 0, Total: 300},
		},
		{
			name:       "missing start date",
			end:        date(2024, time.June, 3),
			rate:       100,
			commission: 0.10,
			expectErr:  ErrMissingDates,
		},
		{
			name:       "missing end date",
			start:      date(2024, time.June, 1),
			rate:       100,
			commission: 0.10,
			expectErr:  ErrMissingDates,
		},
		{
			name:       "end before start",
			start:      date(2024, time.June, 3),
			end:        date(2024, time.June, 1),
			rate:       100,
			commission: 0.10,
			expectErr:  ErrInvalidRange,
		},
		{
			name:       "zero rate",
			start:      date(2024, time.June, 1),
			end:        date(2024, time.June, 3),
			rate:       0,
			commission: 0.10,
			expectErr:  ErrInvalidRate,
		},
		{
			name:       "negative rate",
			start:      date(2024, time.June, 1),
			end:        date(2024, time.June, 3),
			rate:       -10,
			commission: 0.10,
			expectErr:  ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := Quote(tt.start, tt.end, tt.rate, tt.commission)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Equal(t, Breakdown{}, breakdown)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, breakdown)
			assert.Equal(t, breakdown.BaseRent+breakdown.ServiceFee, breakdown.Total)
		})
	}
}

func TestQuoteIsIdempotent(t *testing.T) {
	start := date(2024, time.June, 1)
	end := date(2024, time.June, 14)

	first, err := Quote(start, end, 120, 0.10)
	assert.NoError(t, err)

	second, err := Quote(start, end, 120, 0.10)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInclusiveDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 3, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 3, InclusiveDays(start, end))
}
