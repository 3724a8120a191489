package models

const (
	MinRating = 1
	MaxRating = 5
)

// UserReview is a rating one user left on one product.
type UserReview struct {
	ID        string `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	UserID    string `json:"user" bson:"user" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID string `json:"product" bson:"product" gorm:"index;type:varchar(36)" validate:"required"`
	Rating    int    `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Review    string `json:"review,omitempty" bson:"review,omitempty"`
}

// ValidRating reports whether r is inside the accepted star range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// ReviewDetail is a review with both references resolved to full documents.
// A reference that no longer resolves is rendered as null.
type ReviewDetail struct {
	ID      string   `json:"id"`
	User    *User    `json:"user"`
	Product *Product `json:"product"`
	Rating  int      `json:"rating"`
	Review  string   `json:"review,omitempty"`
}

// ReviewAuthor is the public projection of a reviewer.
type ReviewAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductReview is a review listed under its product, with the author reduced
// to a display name.
type ProductReview struct {
	ID      string        `json:"id"`
	User    *ReviewAuthor `json:"user"`
	Product string        `json:"product"`
	Rating  int           `json:"rating"`
	Review  string        `json:"review,omitempty"`
}
