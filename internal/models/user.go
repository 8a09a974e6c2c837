package models

import "time"

// User represents an account holder. Identity is delegated to Firebase; the
// local row links the Firebase UID to the data owned inside Pet Connect.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Image       string    `json:"image"`
	FirebaseUID string    `json:"-" gorm:"uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Pets []Pet `json:"pets,omitempty" gorm:"foreignKey:UserID"`
}

// UserSummary is the subset of user fields safe to expose to any viewer.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ToSummary returns the public view of the user.
func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Image: u.Image,
	}
}

// UpdateProfileRequest defines the request body for updating the own profile
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Image string `json:"image,omitempty" validate:"omitempty,url"`
}

// Profile is the authenticated user's own view, including the pets they follow.
type Profile struct {
	ID        uint         `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Image     string       `json:"image"`
	Following []PetSummary `json:"following"`
}
