package pricing

import (
	"time"
)

const (
	hoursPerDay     = 24
	daysPerMonth    = 30
	dormMinimumStay = 30
)

// normalizeToMidnight drops the time-of-day component so partial days do not
// leak into the day count.
func normalizeToMidnight(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func daysBetween(checkIn, checkOut time.Time) int {
	in := normalizeToMidnight(checkIn)
	out := normalizeToMidnight(checkOut)

	return int(out.Sub(in) / (hoursPerDay * time.Hour))
}

// Duration computes the billed quantity for a stay, in the unit dictated by
// the category:
//   - nightly categories bill one unit per elapsed night and reject
//     zero-length or inverted stays
//   - the dorm bills whole months, rounding any partial month up, and
//     requires at least a thirty-day stay
//   - the event hall bills both the arrival and the departure day, so a
//     same-day booking is one day, never zero
func Duration(category string, checkIn, checkOut time.Time) (int, error) {
	rate, err := RateFor(category)
	if err != nil {
		return 0, err
	}

	days := daysBetween(checkIn, checkOut)

	switch rate.Unit {
	case UnitNight:
		if days <= 0 {
			return 0, ErrInvalidDateRange
		}

		return days, nil
	case UnitMonth:
		if days < dormMinimumStay {
			return 0, ErrMinimumStayNotMet
		}

		months := days / daysPerMonth
		if days%daysPerMonth != 0 {
			months++
		}

		if months < 1 {
			months = 1
		}

		return months, nil
	case UnitDay:
		if days < 0 {
			return 0, ErrInvalidDateRange
		}

		return days + 1, nil
	}

	return 0, ErrInvalidRoomType
}

// openStayDuration bills an in-progress stay up to the given instant. The
// span can legitimately be shorter than one unit when billing happens on the
// arrival day, so the count floors at one instead of failing the range check.
func openStayDuration(rate Rate, checkIn, billedTo time.Time) (int, error) {
	days := daysBetween(checkIn, billedTo)
	if days < 0 {
		return 0, ErrInvalidDateRange
	}

	switch rate.Unit {
	case UnitNight:
		if days < 1 {
			return 1, nil
		}

		return days, nil
	case UnitMonth:
		months := days / daysPerMonth
		if days%daysPerMonth != 0 {
			months++
		}

		if months < 1 {
			months = 1
		}

		return months, nil
	case UnitDay:
		return days + 1, nil
	}

	return 0, ErrInvalidRoomType
}
