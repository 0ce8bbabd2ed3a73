package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model
	Name             string         `json:"name"`
	Slug             string         `json:"slug" gorm:"uniqueIndex"`
	Description      string         `json:"description" gorm:"type:text"`
	Dimension        string         `json:"dimension"`
	RoomType         string         `json:"type"` // basic, luxury, suite
	NumberOfBeds     int            `json:"numberOfBeds"`
	Price            float64        `json:"price"`
	Discount         int            `json:"discount" gorm:"check:discount >= 0 AND discount <= 100"`
	SpecialNote      string         `json:"specialNote" gorm:"type:text"`
	CoverImage       string         `json:"coverImage"`
	Images           datatypes.JSON `json:"images"`
	OfferedAmenities datatypes.JSON `json:"offeredAmenities"`
	IsBooked         bool           `json:"isBooked"`
	IsFeatured       bool           `json:"isFeatured" gorm:"index"`
}

type RoomImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// ImageURLs unpacks the JSON image set into plain URLs for the payment
// processor's product card.
func (r *Room) ImageURLs() []string {
	if r.Images == nil {
		return nil
	}

	var images []RoomImage
	if err := json.Unmarshal(r.Images, &images); err != nil {
		return nil
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		if image.URL != "" {
			urls = append(urls, image.URL)
		}
	}
	return urls
}
