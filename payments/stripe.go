// Package payments wraps the Stripe checkout-session and webhook APIs.
// The session carries every server-reconciled booking value as string
// metadata; the completion event hands the same strings back to the
// webhook handler.
package payments

import (
	"os"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"hotel-booking-server/models"
)

// SessionInput holds the values reconciled by the checkout-session
// initiator. NumberOfDays and TotalPrice are always server-derived.
type SessionInput struct {
	UserID       uint
	Room         *models.Room
	CheckinDate  string // date-only
	CheckoutDate string // date-only
	Adults       int
	Children     int
	NumberOfDays int
	TotalPrice   float64
	SuccessURL   string
}

func BuildSessionParams(in SessionInput) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(in.SuccessURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(int64(in.TotalPrice * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:   stripe.String(in.Room.Name),
						Images: stripe.StringSlice(in.Room.ImageURLs()),
					},
				},
			},
		},
	}

	params.AddMetadata("user", strconv.FormatUint(uint64(in.UserID), 10))
	params.AddMetadata("hotelRoom", strconv.FormatUint(uint64(in.Room.ID), 10))
	params.AddMetadata("checkinDate", in.CheckinDate)
	params.AddMetadata("checkoutDate", in.CheckoutDate)
	params.AddMetadata("adults", strconv.Itoa(in.Adults))
	params.AddMetadata("children", strconv.Itoa(in.Children))
	params.AddMetadata("numberOfDays", strconv.Itoa(in.NumberOfDays))
	params.AddMetadata("discount", strconv.Itoa(in.Room.Discount))
	params.AddMetadata("totalPrice", strconv.FormatFloat(in.TotalPrice, 'f', -1, 64))

	return params
}

// CreateSession opens a payment-processor checkout session. Nothing is
// persisted until the completion event arrives.
func CreateSession(in SessionInput) (*stripe.CheckoutSession, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return session.New(BuildSessionParams(in))
}

// ConstructEvent verifies the webhook signature against the shared
// secret and unmarshals the event. Verification failure is fatal for the
// delivery; nothing downstream may run on an unverified payload.
func ConstructEvent(payload []byte, sigHeader string, secret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
