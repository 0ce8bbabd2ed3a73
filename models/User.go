package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name           string `json:"name"`
	Email          string `json:"email" gorm:"uniqueIndex"`
	Password       string `json:"-"`
	SocialLogin    bool   `json:"socialLogin"`
	SocialProvider string `json:"socialProvider"`
	Image          string `json:"image"`
	About          string `json:"about" gorm:"type:text"`
}
