package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseInstant parses an RFC 3339 timestamp and normalizes it to UTC.
// Slots and appointments are always stored in UTC; the shop timezone is
// only used for display and local-day listings.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// DayBounds returns the UTC [start, end) window covering one calendar day
// in the given shop timezone.
func DayBounds(dateStr, tz string) (time.Time, time.Time, error) {
	loc := Location(tz)
	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := day.UTC()
	return start, day.Add(24 * time.Hour).UTC(), nil
}
