package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is written exactly once per completed payment event and never
// mutated afterwards. NumberOfDays and TotalPrice are the server-derived
// values, not whatever the client sent.
type Booking struct {
	gorm.Model
	UserID       uint      `json:"userID" gorm:"not null;index"`
	RoomID       uint      `json:"roomID" gorm:"not null;index"`
	User         User      `json:"user" gorm:"foreignKey:UserID"`
	Room         Room      `json:"hotelRoom" gorm:"foreignKey:RoomID"`
	CheckinDate  time.Time `json:"checkinDate"`
	CheckoutDate time.Time `json:"checkoutDate"`
	NumberOfDays int       `json:"numberOfDays"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	TotalPrice   float64   `json:"totalPrice"`
	Discount     int       `json:"discount"`
}
