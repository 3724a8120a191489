package models

// Category groups products; every product references exactly one.
type Category struct {
	ID   string `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" bson:"name" validate:"required"`
}

// Tag is a free-form label a product may carry any number of.
type Tag struct {
	ID   string `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" bson:"name" validate:"required"`
}
