package routes

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/kataras/iris/v12"
	"github.com/stripe/stripe-go/v76"

	"hotel-booking-server/models"
	"hotel-booking-server/payments"
	"hotel-booking-server/pricing"
	"hotel-booking-server/storage"
	"hotel-booking-server/utils"
)

const checkoutSessionCompleted = "checkout.session.completed"

// HandleStripeWebhook processes asynchronous payment notifications. A
// completed checkout session becomes exactly one Booking plus a flipped
// room flag; everything else is acknowledged and ignored so the
// processor stops retrying.
func HandleStripeWebhook(ctx iris.Context) {
	body, bodyErr := ctx.GetBody()
	if bodyErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Could not read request body.", ctx)
		return
	}

	signature := ctx.GetHeader("Stripe-Signature")
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if signature == "" || secret == "" {
		log.Println("webhook: missing signature header or secret")
		utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Missing signature or secret.", ctx)
		return
	}

	event, eventErr := payments.ConstructEvent(body, signature, secret)
	if eventErr != nil {
		log.Printf("webhook: signature verification failed: %v", eventErr)
		utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Signature verification failed.", ctx)
		return
	}

	switch event.Type {
	case checkoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Malformed event payload.", ctx)
			return
		}
		handleCheckoutCompleted(session, ctx)
	default:
		log.Printf("webhook: unhandled event type %s", event.Type)
		ctx.JSON(iris.Map{"message": "Event received"})
	}
}

func handleCheckoutCompleted(session stripe.CheckoutSession, ctx iris.Context) {
	meta := session.Metadata
	if meta == nil {
		utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Metadata missing.", ctx)
		return
	}

	userID := meta["user"]
	roomID := meta["hotelRoom"]
	checkinDate := meta["checkinDate"]
	checkoutDate := meta["checkoutDate"]

	if userID == "" || roomID == "" || checkinDate == "" || checkoutDate == "" {
		utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Missing required metadata fields.", ctx)
		return
	}

	checkin, checkinErr := utils.ParseDate(checkinDate)
	checkout, checkoutErr := utils.ParseDate(checkoutDate)
	if checkinErr != nil || checkoutErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Invalid metadata dates.", ctx)
		return
	}

	userIDNum, userErr := strconv.ParseUint(userID, 10, 32)
	roomIDNum, roomErr := strconv.ParseUint(roomID, 10, 32)
	if userErr != nil || roomErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Webhook Error", "Invalid metadata references.", ctx)
		return
	}

	// The nights value carried in metadata is advisory. The raw dates
	// are re-derived here so a tampered or stale metadata count never
	// reaches the booking record.
	nights := pricing.Nights(checkin, checkout)
	if metaDays := meta["numberOfDays"]; metaDays != strconv.Itoa(nights) {
		log.Printf("webhook: metadata carried %s days, derived %d from dates", metaDays, nights)
	}

	booking := models.Booking{
		UserID:       uint(userIDNum),
		RoomID:       uint(roomIDNum),
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		NumberOfDays: nights,
		Adults:       atoiOrDefault(meta["adults"], 1),
		Children:     atoiOrDefault(meta["children"], 0),
		Discount:     atoiOrDefault(meta["discount"], 0),
		TotalPrice:   atofOrDefault(meta["totalPrice"], 0),
	}

	if err := storage.DB.Create(&booking).Error; err != nil {
		// Room flag stays untouched on a failed booking write; the
		// processor will retry the delivery.
		log.Printf("webhook: booking creation failed: %v", err)
		utils.CreateError(iris.StatusInternalServerError, "Webhook Error", "Booking creation failed.", ctx)
		return
	}

	if err := storage.DB.Model(&models.Room{}).
		Where("id = ?", booking.RoomID).
		Update("is_booked", true).Error; err != nil {
		// The guest has paid: keep the booking and accept a stale flag
		// over losing the reservation.
		log.Printf("webhook: room %d flag update failed after booking %d: %v", booking.RoomID, booking.ID, err)
	}

	ctx.JSON(iris.Map{"message": "Booking successful"})
}

func atoiOrDefault(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func atofOrDefault(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
