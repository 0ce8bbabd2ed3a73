package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID uint   `json:"userID" gorm:"not null;index"`
	RoomID uint   `json:"roomID" gorm:"not null;index"`
	User   User   `json:"user" gorm:"foreignKey:UserID"`
	Room   Room   `json:"hotelRoom" gorm:"foreignKey:RoomID"`
	Rating int    `json:"userRating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Text   string `json:"text" gorm:"type:text"`
}
