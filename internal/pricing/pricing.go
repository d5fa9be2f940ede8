// Package pricing is the single rate and billing engine for the hotel.
// Every caller that needs a stay total (booking creation, invoice
// generation) must price through this package so the rounding rules can
// never drift apart.
package pricing

import (
	"time"
)

// Charge is an itemized extra folded into a quote on top of the base stay.
type Charge struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Quote is the priced result of a stay. It carries the inputs of the
// multiplication alongside the total so invoices can snapshot them.
type Quote struct {
	Category        string      `json:"category"`
	Duration        int         `json:"duration"`
	Unit            BillingUnit `json:"unit"`
	BaseRate        float64     `json:"base_rate"`
	AdditionalTotal float64     `json:"additional_total"`
	Total           float64     `json:"total"`
}

// QuoteStay prices a stay: rate(category) x duration + sum of additional
// charges. Pure function, no storage access.
func QuoteStay(category string, checkIn, checkOut time.Time, charges []Charge) (Quote, error) {
	rate, err := RateFor(category)
	if err != nil {
		return Quote{}, err
	}

	duration, err := Duration(category, checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}

	return buildQuote(rate, duration, charges), nil
}

// QuoteOpenStay prices a stay that is still in progress, billed up to the
// given instant. A guest invoiced on the arrival day owes one billing unit,
// so the duration floors at one instead of failing the range check, and the
// dorm minimum does not apply to a stay that has not ended.
func QuoteOpenStay(category string, checkIn, billedTo time.Time, charges []Charge) (Quote, error) {
	rate, err := RateFor(category)
	if err != nil {
		return Quote{}, err
	}

	duration, err := openStayDuration(rate, checkIn, billedTo)
	if err != nil {
		return Quote{}, err
	}

	return buildQuote(rate, duration, charges), nil
}

func buildQuote(rate Rate, duration int, charges []Charge) Quote {
	var additional float64
	for _, charge := range charges {
		additional += charge.Amount
	}

	return Quote{
		Category:        rate.Category,
		Duration:        duration,
		Unit:            rate.Unit,
		BaseRate:        rate.Price,
		AdditionalTotal: additional,
		Total:           rate.Price*float64(duration) + additional,
	}
}

// QuoteStayByRoomNumber resolves the category from the room number before
// pricing.
func QuoteStayByRoomNumber(roomNumber string, checkIn, checkOut time.Time, charges []Charge) (Quote, error) {
	category, err := CategoryFromRoomNumber(roomNumber)
	if err != nil {
		return Quote{}, err
	}

	return QuoteStay(category, checkIn, checkOut, charges)
}
