package routes

import (
	"errors"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"

	"hotel-booking-server/models"
	"hotel-booking-server/storage"
	"hotel-booking-server/utils"
)

type UpsertReviewInput struct {
	RoomID      uint   `json:"roomId" validate:"required"`
	ReviewText  string `json:"reviewText" validate:"required,max=1000"`
	RatingValue int    `json:"ratingValue" validate:"required,min=1,max=5"`
}

// UpsertRoomReview creates the user's review for a room, or updates the
// existing one in place. Lookup-then-write: two concurrent submissions
// for the same pair can race into duplicates.
func UpsertRoomReview(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input UpsertReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	var existing models.Review
	err := storage.DB.Where("user_id = ? AND room_id = ?", claims.ID, input.RoomID).First(&existing).Error
	if err == nil {
		existing.Rating = input.RatingValue
		existing.Text = input.ReviewText
		if saveErr := storage.DB.Save(&existing).Error; saveErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		ctx.JSON(existing)
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateInternalServerError(ctx)
		return
	}

	review := models.Review{
		UserID: claims.ID,
		RoomID: input.RoomID,
		Rating: input.RatingValue,
		Text:   input.ReviewText,
	}

	if createErr := storage.DB.Create(&review).Error; createErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(review)
}
