package repositories

import (
	"github.com/pet-connect/backend/internal/models"
	"gorm.io/gorm"
)

// PetRepository defines the interface for pet data operations
type PetRepository interface {
	CreatePet(pet *models.Pet) error
	GetPetByID(id uint) (*models.Pet, error)
	GetPetByQRCode(qrCode string) (*models.Pet, error)
	GetPetsByUserID(userID uint) ([]models.Pet, error)
	UpdatePet(pet *models.Pet) error
	DeletePet(id uint) error
}

// PostgresPetRepository implements PetRepository for PostgreSQL
type PostgresPetRepository struct {
	db *gorm.DB
}

// NewPostgresPetRepository creates a new PostgresPetRepository
func NewPostgresPetRepository(db *gorm.DB) *PostgresPetRepository {
	return &PostgresPetRepository{db: db}
}

// CreatePet inserts the pet and the owner's self-follow edge in a single
// transaction. The owner is always a follower of their own pet.
func (r *PostgresPetRepository) CreatePet(pet *models.Pet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pet).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrAlreadyExists
			}
			return err
		}
		follow := &models.Follow{
			UserID: pet.UserID,
			PetID:  pet.ID,
		}
		return tx.Create(follow).Error
	})
}

// GetPetByID retrieves a pet by ID from PostgreSQL
func (r *PostgresPetRepository) GetPetByID(id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.First(&pet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pet, nil
}

// GetPetByQRCode retrieves a pet by its QR token, with the owner attached
func (r *PostgresPetRepository) GetPetByQRCode(qrCode string) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.Preload("User").Where("qr_code = ?", qrCode).First(&pet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pet, nil
}

// GetPetsByUserID retrieves all pets owned by a user
func (r *PostgresPetRepository) GetPetsByUserID(userID uint) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// UpdatePet updates an existing pet in PostgreSQL. The QR code is immutable
// and never touched here.
func (r *PostgresPetRepository) UpdatePet(pet *models.Pet) error {
	return r.db.Save(pet).Error
}

// DeletePet hard-deletes a pet. Posts, follows, likes and comments go with
// it via the foreign-key cascade configuration.
func (r *PostgresPetRepository) DeletePet(id uint) error {
	res := r.db.Delete(&models.Pet{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
