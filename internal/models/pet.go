package models

import "time"

// Pet represents a registered pet owned by exactly one user. The QR code is a
// random token generated once at creation and embedded in a physical tag; it
// is never regenerated.
type Pet struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	QRCode      string    `json:"qr_code" gorm:"uniqueIndex"`
	UserID      uint      `json:"user_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Posts   []Post   `json:"posts,omitempty" gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE"`
	Follows []Follow `json:"follows,omitempty" gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE"`
}

// PetSummary is the subset of pet fields safe to expose to any viewer.
type PetSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Image string `json:"image"`
}

// ToSummary returns the public view of the pet.
func (p *Pet) ToSummary() PetSummary {
	return PetSummary{
		ID:    p.ID,
		Name:  p.Name,
		Type:  p.Type,
		Image: p.Image,
	}
}

// PetDetail is a pet with its most recent device events attached, for the
// owner-facing detail view.
type PetDetail struct {
	Pet
	Feeds     []FeedEvent     `json:"feeds"`
	Locations []LocationEvent `json:"locations"`
}

// CreatePetRequest defines the request body for registering a new pet
type CreatePetRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Type        string `json:"type" validate:"required,min=1,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image       string `json:"image,omitempty" validate:"omitempty,url"`
}

// UpdatePetRequest defines the request body for updating an existing pet
type UpdatePetRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type        string `json:"type,omitempty" validate:"omitempty,min=1,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image       string `json:"image,omitempty" validate:"omitempty,url"`
}
