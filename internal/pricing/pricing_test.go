package pricing_test

import (
	"inn/internal/pricing"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		category string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{
			name:     "single bedroom three nights",
			category: pricing.CategorySingle,
			checkIn:  date(2024, time.June, 1),
			checkOut: date(2024, time.June, 4),
			want:     3,
		},
		{
			name:     "double bedroom one night",
			category: pricing.CategoryDouble,
			checkIn:  date(2024, time.June, 1),
			checkOut: date(2024, time.June, 2),
			want:     1,
		},
		{
			name:     "family room ignores time of day",
			category: pricing.CategoryFamily,
			checkIn:  time.Date(2024, time.June, 1, 15, 30, 0, 0, time.UTC),
			checkOut: time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "nightly zero length stay rejected",
			category: pricing.CategorySingle,
			checkIn:  date(2024, time.June, 1),
			checkOut: date(2024, time.June, 1),
			wantErr:  pricing.ErrInvalidDateRange,
		},
		{
			name:     "nightly inverted range rejected",
			category: pricing.CategoryDouble,
			checkIn:  date(2024, time.June, 4),
			checkOut: date(2024, time.June, 1),
			wantErr:  pricing.ErrInvalidDateRange,
		},
		{
			name:     "dorm twenty eight days rejected",
			category: pricing.CategoryDorm,
			checkIn:  date(2024, time.January, 1),
			checkOut: date(2024, time.January, 29),
			wantErr:  pricing.ErrMinimumStayNotMet,
		},
		{
			name:     "dorm exactly thirty days is one month",
			category: pricing.CategoryDorm,
			checkIn:  date(2024, time.January, 1),
			checkOut: date(2024, time.January, 31),
			want:     1,
		},
		{
			name:     "dorm partial month rounds up",
			category: pricing.CategoryDorm,
			checkIn:  date(2024, time.January, 1),
			checkOut: date(2024, time.February, 15),
			want:     2,
		},
		{
			name:     "dorm ninety days is three months",
			category: pricing.CategoryDorm,
			checkIn:  date(2024, time.January, 1),
			checkOut: date(2024, time.March, 31),
			want:     3,
		},
		{
			name:     "event hall same day is one day",
			category: pricing.CategoryHall,
			checkIn:  date(2024, time.March, 10),
			checkOut: date(2024, time.March, 10),
			want:     1,
		},
		{
			name:     "event hall bills arrival and departure day",
			category: pricing.CategoryHall,
			checkIn:  date(2024, time.March, 10),
			checkOut: date(2024, time.March, 12),
			want:     3,
		},
		{
			name:     "event hall inverted range rejected",
			category: pricing.CategoryHall,
			checkIn:  date(2024, time.March, 12),
			checkOut: date(2024, time.March, 10),
			wantErr:  pricing.ErrInvalidDateRange,
		},
		{
			name:     "unknown category rejected",
			category: "Z",
			checkIn:  date(2024, time.June, 1),
			checkOut: date(2024, time.June, 4),
			wantErr:  pricing.ErrInvalidRoomType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Duration(tt.category, tt.checkIn, tt.checkOut)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteStay(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		checkIn   time.Time
		checkOut  time.Time
		charges   []pricing.Charge
		wantTotal float64
		wantUnit  pricing.BillingUnit
		wantErr   error
	}{
		{
			name:      "single bedroom three nights",
			category:  pricing.CategorySingle,
			checkIn:   date(2024, time.June, 1),
			checkOut:  date(2024, time.June, 4),
			wantTotal: 2070.00,
			wantUnit:  pricing.UnitNight,
		},
		{
			name:      "double bedroom two nights with charges",
			category:  pricing.CategoryDouble,
			checkIn:   date(2024, time.June, 1),
			checkOut:  date(2024, time.June, 3),
			charges:   []pricing.Charge{{Description: "minibar", Amount: 120}, {Description: "laundry", Amount: 80}},
			wantTotal: 1350*2 + 200,
			wantUnit:  pricing.UnitNight,
		},
		{
			name:      "dorm one month",
			category:  pricing.CategoryDorm,
			checkIn:   date(2024, time.January, 1),
			checkOut:  date(2024, time.January, 31),
			wantTotal: 3000.00,
			wantUnit:  pricing.UnitMonth,
		},
		{
			name:      "event hall single day",
			category:  pricing.CategoryHall,
			checkIn:   date(2024, time.March, 10),
			checkOut:  date(2024, time.March, 10),
			wantTotal: 5000.00,
			wantUnit:  pricing.UnitDay,
		},
		{
			name:     "dorm under minimum stay",
			category: pricing.CategoryDorm,
			checkIn:  date(2024, time.January, 1),
			checkOut: date(2024, time.January, 29),
			wantErr:  pricing.ErrMinimumStayNotMet,
		},
		{
			name:     "unknown category",
			category: "X",
			checkIn:  date(2024, time.June, 1),
			checkOut: date(2024, time.June, 4),
			wantErr:  pricing.ErrInvalidRoomType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.QuoteStay(tt.category, tt.checkIn, tt.checkOut, tt.charges)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, got.Total, 0.001)
			assert.Equal(t, tt.wantUnit, got.Unit)
			assert.Equal(t, got.BaseRate*float64(got.Duration)+got.AdditionalTotal, got.Total)
		})
	}
}

func TestQuoteOpenStay(t *testing.T) {
	tests := []struct {
		name         string
		category     string
		checkIn      time.Time
		billedTo     time.Time
		charges      []pricing.Charge
		wantDuration int
		wantTotal    float64
		wantErr      error
	}{
		{
			name:         "single bedroom billed on arrival day owes one night",
			category:     pricing.CategorySingle,
			checkIn:      date(2024, time.June, 1),
			billedTo:     time.Date(2024, time.June, 1, 18, 45, 0, 0, time.UTC),
			wantDuration: 1,
			wantTotal:    690.00,
		},
		{
			name:         "single bedroom after two nights",
			category:     pricing.CategorySingle,
			checkIn:      date(2024, time.June, 1),
			billedTo:     time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC),
			wantDuration: 2,
			wantTotal:    1380.00,
		},
		{
			name:         "double bedroom arrival day with charges",
			category:     pricing.CategoryDouble,
			checkIn:      date(2024, time.June, 1),
			billedTo:     time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
			charges:      []pricing.Charge{{Description: "minibar", Amount: 120}},
			wantDuration: 1,
			wantTotal:    1350 + 120,
		},
		{
			name:         "dorm on first day owes one month",
			category:     pricing.CategoryDorm,
			checkIn:      date(2024, time.January, 1),
			billedTo:     time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC),
			wantDuration: 1,
			wantTotal:    3000.00,
		},
		{
			name:         "dorm partial second month rounds up",
			category:     pricing.CategoryDorm,
			checkIn:      date(2024, time.January, 1),
			billedTo:     date(2024, time.February, 15),
			wantDuration: 2,
			wantTotal:    6000.00,
		},
		{
			name:         "event hall same day is one day",
			category:     pricing.CategoryHall,
			checkIn:      date(2024, time.March, 10),
			billedTo:     time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC),
			wantDuration: 1,
			wantTotal:    5000.00,
		},
		{
			name:     "billed before arrival rejected",
			category: pricing.CategorySingle,
			checkIn:  date(2024, time.June, 4),
			billedTo: date(2024, time.June, 1),
			wantErr:  pricing.ErrInvalidDateRange,
		},
		{
			name:     "unknown category",
			category: "X",
			checkIn:  date(2024, time.June, 1),
			billedTo: date(2024, time.June, 4),
			wantErr:  pricing.ErrInvalidRoomType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.QuoteOpenStay(tt.category, tt.checkIn, tt.billedTo, tt.charges)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDuration, got.Duration)
			assert.InDelta(t, tt.wantTotal, got.Total, 0.001)
		})
	}
}

func TestQuoteStayByRoomNumber(t *testing.T) {
	quote, err := pricing.QuoteStayByRoomNumber("B206", date(2024, time.June, 1), date(2024, time.June, 4), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2070.00, quote.Total, 0.001)

	_, err = pricing.QuoteStayByRoomNumber("", date(2024, time.June, 1), date(2024, time.June, 4), nil)
	assert.ErrorIs(t, err, pricing.ErrInvalidRoomType)
}

func TestCategoryFromRoomType(t *testing.T) {
	tests := []struct {
		name     string
		roomType string
		want     string
		wantErr  error
	}{
		{name: "suffix form", roomType: "Single Bedroom - B", want: pricing.CategorySingle},
		{name: "plain name", roomType: "Event Hall", want: pricing.CategoryHall},
		{name: "bare code", roomType: "C", want: pricing.CategoryDouble},
		{name: "lowercase name", roomType: "student dorm", want: pricing.CategoryDorm},
		{name: "empty", roomType: "", wantErr: pricing.ErrInvalidRoomType},
		{name: "unknown", roomType: "Penthouse", wantErr: pricing.ErrInvalidRoomType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.CategoryFromRoomType(tt.roomType)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
