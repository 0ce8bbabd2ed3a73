// Package pricing holds the stay-length and price reconciliation used on
// every trust boundary of the booking flow. Checkout-session creation and
// payment-event handling both re-derive these values from raw dates and
// the room's stored price instead of trusting anything client-supplied.
package pricing

import (
	"math"
	"time"
)

// Nights returns the number of nights between checkin and checkout,
// rounding partial days up. A checkout at or before checkin yields 0;
// callers must reject zero-night stays rather than bill them.
func Nights(checkin, checkout time.Time) int {
	diff := checkout.Sub(checkin)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// DiscountedRate applies a room's percentage discount to its nightly price.
func DiscountedRate(price float64, discount int) float64 {
	return price - (price/100)*float64(discount)
}

// Total is the discounted nightly rate multiplied by the stay length.
func Total(price float64, discount int, nights int) float64 {
	return DiscountedRate(price, discount) * float64(nights)
}
