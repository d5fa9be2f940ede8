package pricing

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRoomType   = errors.New("invalid room type")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrMinimumStayNotMet = errors.New("minimum stay not met")
)

// BillingUnit is the quantity a rate is multiplied by.
type BillingUnit string

const (
	UnitNight BillingUnit = "night"
	UnitMonth BillingUnit = "month"
	UnitDay   BillingUnit = "day"
)

const (
	CategoryDorm   = "A"
	CategorySingle = "B"
	CategoryDouble = "C"
	CategoryFamily = "D"
	CategoryHall   = "E"
)

type Rate struct {
	Category string
	Name     string
	Price    float64
	Unit     BillingUnit
}

var rateTable = map[string]Rate{
	CategoryDorm:   {Category: CategoryDorm, Name: "Student Dorm", Price: 3000.00, Unit: UnitMonth},
	CategorySingle: {Category: CategorySingle, Name: "Single Bedroom", Price: 690.00, Unit: UnitNight},
	CategoryDouble: {Category: CategoryDouble, Name: "Double Bedroom", Price: 1350.00, Unit: UnitNight},
	CategoryFamily: {Category: CategoryFamily, Name: "Family Room", Price: 2000.00, Unit: UnitNight},
	CategoryHall:   {Category: CategoryHall, Name: "Event Hall", Price: 5000.00, Unit: UnitDay},
}

// RateFor returns the rate for a single-letter room category code.
// Unknown categories fail loudly instead of defaulting to a rate.
func RateFor(category string) (Rate, error) {
	rate, ok := rateTable[strings.ToUpper(category)]
	if !ok {
		return Rate{}, ErrInvalidRoomType
	}

	return rate, nil
}

// CategoryFromRoomNumber derives the category code from the first character
// of a room number, e.g. "B206" -> "B".
func CategoryFromRoomNumber(roomNumber string) (string, error) {
	if roomNumber == "" {
		return "", ErrInvalidRoomType
	}

	category := strings.ToUpper(roomNumber[:1])
	if _, ok := rateTable[category]; !ok {
		return "", ErrInvalidRoomType
	}

	return category, nil
}

// CategoryFromRoomType resolves a category from a full room type label such
// as "Single Bedroom - B". The trailing " - <code>" suffix wins when present;
// otherwise the label is matched against the rate table names.
func CategoryFromRoomType(roomType string) (string, error) {
	trimmed := strings.TrimSpace(roomType)
	if trimmed == "" {
		return "", ErrInvalidRoomType
	}

	if idx := strings.LastIndex(trimmed, " - "); idx >= 0 {
		code := strings.TrimSpace(trimmed[idx+3:])
		if len(code) == 1 {
			return CategoryFromRoomNumber(code)
		}
	}

	for code, rate := range rateTable {
		if strings.EqualFold(rate.Name, trimmed) {
			return code, nil
		}
	}

	return CategoryFromRoomNumber(trimmed)
}
