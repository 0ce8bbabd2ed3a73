package routes

import (
	"errors"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"

	"hotel-booking-server/models"
	"hotel-booking-server/storage"
	"hotel-booking-server/utils"
)

// GetRooms lists rooms for the browse page, optionally narrowed by room
// type and a free-text search over name and description.
func GetRooms(ctx iris.Context) {
	roomType := ctx.URLParamDefault("roomType", "")
	searchQuery := ctx.URLParamDefault("searchQuery", "")

	query := storage.DB.Order("is_featured DESC, name ASC")

	if roomType != "" && roomType != "all" {
		query = query.Where("lower(room_type) = lower(?)", roomType)
	}

	if searchQuery != "" {
		search := "%" + searchQuery + "%"
		query = query.Where("lower(name) LIKE lower(?) OR lower(description) LIKE lower(?)", search, search)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(rooms)
}

// GetFeaturedRoom returns the room highlighted on the landing page.
func GetFeaturedRoom(ctx iris.Context) {
	var room models.Room
	if err := storage.DB.Where("is_featured = ?", true).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(room)
}

func GetRoomBySlug(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	var room models.Room
	if err := storage.DB.Where("slug = ?", slug).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(room)
}

// GetRoomReviews lists a room's reviews with reviewer names for the
// detail page.
func GetRoomReviews(ctx iris.Context) {
	roomID := ctx.Params().GetUintDefault("id", 0)
	if roomID == 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid room ID.", ctx)
		return
	}

	var reviews []models.Review
	if err := storage.DB.Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(reviews)
}
