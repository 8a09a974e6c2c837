package models

import "time"

// Post represents a photo post published on behalf of a pet. Only the pet's
// owner can create one.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PetID     uint      `json:"pet_id" gorm:"index"`
	Image     string    `json:"image"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Pet      *Pet      `json:"pet,omitempty" gorm:"foreignKey:PetID"`
	Likes    []Like    `json:"likes" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Image   string `json:"image" validate:"required"`
	Caption string `json:"caption,omitempty" validate:"omitempty,max=500"`
}

// FeedPost is a post enriched for the aggregated feed: the authoring pet's
// public summary, like membership, and comments joined with their authors.
type FeedPost struct {
	ID        uint           `json:"id"`
	Image     string         `json:"image"`
	Caption   string         `json:"caption"`
	CreatedAt time.Time      `json:"created_at"`
	Pet       PetSummary     `json:"pet"`
	Likes     []LikeEntry    `json:"likes"`
	Comments  []CommentEntry `json:"comments"`
}
