package routes

import (
	"errors"
	"fmt"
	"log"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"

	"hotel-booking-server/models"
	"hotel-booking-server/payments"
	"hotel-booking-server/pricing"
	"hotel-booking-server/storage"
	"hotel-booking-server/utils"
)

type CreateBookingInput struct {
	CheckinDate   string `json:"checkinDate" validate:"required"`
	CheckoutDate  string `json:"checkoutDate" validate:"required"`
	Adults        int    `json:"adults" validate:"required,min=1"`
	Children      int    `json:"children" validate:"min=0"`
	NumberOfDays  int    `json:"numberOfDays"`
	HotelRoomSlug string `json:"hotelRoomSlug" validate:"required"`
}

// CreateCheckoutSession opens a payment-processor session for a booking
// request. Nights and total price are recomputed here from the stored
// room and the raw dates; the client's numberOfDays is advisory only.
// Nothing is persisted until the completion event arrives.
func CreateCheckoutSession(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkin, checkinErr := utils.ParseDate(input.CheckinDate)
	checkout, checkoutErr := utils.ParseDate(input.CheckoutDate)
	if checkinErr != nil || checkoutErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid checkin or checkout date.", ctx)
		return
	}

	nights := pricing.Nights(checkin, checkout)
	if nights < 1 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Checkout date must be after checkin date.", ctx)
		return
	}

	var room models.Room
	if err := storage.DB.Where("slug = ?", input.HotelRoomSlug).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	totalPrice := pricing.Total(room.Price, room.Discount, nights)
	if input.NumberOfDays != nights {
		log.Printf("checkout: client sent %d days, server computed %d", input.NumberOfDays, nights)
	}

	origin := ctx.GetHeader("Origin")

	session, sessionErr := payments.CreateSession(payments.SessionInput{
		UserID:       claims.ID,
		Room:         &room,
		CheckinDate:  checkin.Format("2006-01-02"),
		CheckoutDate: checkout.Format("2006-01-02"),
		Adults:       input.Adults,
		Children:     input.Children,
		NumberOfDays: nights,
		TotalPrice:   totalPrice,
		SuccessURL:   fmt.Sprintf("%s/users/%d", origin, claims.ID),
	})
	if sessionErr != nil {
		log.Printf("checkout: payment session failed: %v", sessionErr)
		utils.CreateError(iris.StatusInternalServerError, "Payment Error", "Could not create payment session.", ctx)
		return
	}

	ctx.JSON(iris.Map{
		"id":  session.ID,
		"url": session.URL,
	})
}

// GetUserBookings lists the authenticated user's bookings for the
// dashboard, newest first.
func GetUserBookings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var bookings []models.Booking
	if err := storage.DB.Preload("Room").
		Where("user_id = ?", claims.ID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}
