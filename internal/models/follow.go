package models

import "time"

// Follow represents a user following a pet's content. A pet's owner is made a
// follower of their own pet at creation time.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_pet_follow"`
	PetID     uint      `json:"pet_id" gorm:"index;uniqueIndex:idx_user_pet_follow"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// FollowerEntry is one row of a pet's follower listing.
type FollowerEntry struct {
	ID   uint        `json:"id"`
	User UserSummary `json:"user"`
}
