package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a customer account.
type User struct {
	ID           string                      `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name         string                      `json:"name" bson:"name" validate:"required"`
	Email        string                      `json:"email" bson:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required"`
	Password     string                      `json:"-" bson:"password" gorm:"type:varchar(255)" validate:"required"`
	PhoneNumber  string                      `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	IsAdmin      bool                        `json:"isAdmin" bson:"isAdmin"`
	IsSubscribed bool                        `json:"isSubscribed" bson:"isSubscribed"`
	Location     string                      `json:"location,omitempty" bson:"location,omitempty"`
	Favorites    datatypes.JSONSlice[string] `json:"favorites" bson:"favorites"`
	CreatedAt    time.Time                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt" bson:"updatedAt"`
}

// HasFavorite reports whether productID is already on the wishlist.
func (u *User) HasFavorite(productID string) bool {
	for _, id := range u.Favorites {
		if id == productID {
			return true
		}
	}
	return false
}

// RemoveFavorite drops productID from the wishlist, keeping the order of the rest.
func (u *User) RemoveFavorite(productID string) {
	kept := make(datatypes.JSONSlice[string], 0, len(u.Favorites))
	for _, id := range u.Favorites {
		if id != productID {
			kept = append(kept, id)
		}
	}
	u.Favorites = kept
}

// Identity is the authenticated caller attached to a request by the identity
// middleware. A nil *Identity means the request is anonymous.
type Identity struct {
	UserID  string
	Email   string
	IsAdmin bool
}
