package utils

import "time"

// ParseDate accepts the two date forms the booking flow carries: full
// RFC 3339 instants from the client and plain YYYY-MM-DD strings from
// checkout-session metadata.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
