package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultLanguage = "english"

// Measurements holds the optional physical dimensions of a boxed game.
type Measurements struct {
	Width  *float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height *float64 `json:"height,omitempty" bson:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty" bson:"depth,omitempty"`
	Weight *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// Product represents a catalog item.
type Product struct {
	ID           string                       `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Language     string                       `json:"language" bson:"language" gorm:"default:english"`
	Name         string                       `json:"name" bson:"name" validate:"required"`
	Price        float64                      `json:"price" bson:"price" validate:"required,gte=0"`
	Description  string                       `json:"description" bson:"description" validate:"required"`
	Images       datatypes.JSONSlice[string]  `json:"images" bson:"images" validate:"required"`
	CategoryID   string                       `json:"category" bson:"category" gorm:"index;type:varchar(36)" validate:"required"`
	Tags         datatypes.JSONSlice[string]  `json:"tags" bson:"tags"`
	PlayerCount  int                          `json:"playerCount" bson:"playerCount" validate:"required,gt=0"`
	Difficulty   string                       `json:"difficulty" bson:"difficulty" validate:"required,oneof=easy medium hard"`
	AgeRating    *int                         `json:"ageRating,omitempty" bson:"ageRating,omitempty" validate:"omitempty,min=0,max=18"`
	UserRating   datatypes.JSONSlice[float64] `json:"userRating,omitempty" bson:"userRating,omitempty"`
	Measurements Measurements                 `json:"measurements" bson:"measurements" gorm:"embedded;embeddedPrefix:measurement_"`
	CreatedAt    time.Time                    `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time                    `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the values the schema defaults when a client omits them.
func (p *Product) ApplyDefaults() {
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
}
