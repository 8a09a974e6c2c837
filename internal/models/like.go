package models

import "time"

// Like represents a like on a post. At most one per (post, user) pair,
// enforced by the composite unique index.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// LikeEntry is the feed-facing view of a like: membership only.
type LikeEntry struct {
	UserID uint `json:"user_id"`
}

// LikeDetail is one row of a post's like listing, joined with the liker's
// public summary.
type LikeDetail struct {
	ID     uint        `json:"id"`
	UserID uint        `json:"user_id"`
	User   UserSummary `json:"user"`
}
