package repositories

import (
	"github.com/pet-connect/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(userID, petID uint) error
	IsFollowing(userID, petID uint) (bool, error)
	GetFollowers(petID uint) ([]models.Follow, error)
	GetFollowersCount(petID uint) (int64, error)
	GetFollowedPetIDs(userID uint) ([]uint, error)
	GetFollowedPets(userID uint) ([]models.Pet, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow inserts the follow edge. The composite unique index on
// (user_id, pet_id) makes the insert the atomic duplicate check: concurrent
// identical requests cannot both succeed, the loser gets ErrAlreadyExists.
func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	if err := r.db.Create(follow).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteFollow removes the follow edge for the (user, pet) pair. The single
// conditional delete is the atomic existence check.
func (r *PostgresFollowRepository) DeleteFollow(userID, petID uint) error {
	res := r.db.Where("user_id = ? AND pet_id = ?", userID, petID).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFollowing checks whether the user follows the pet
func (r *PostgresFollowRepository) IsFollowing(userID, petID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("user_id = ? AND pet_id = ?", userID, petID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers retrieves all follow edges for a pet with the following users attached
func (r *PostgresFollowRepository) GetFollowers(petID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.Preload("User").Where("pet_id = ?", petID).Order("id").Find(&follows).Error
	return follows, err
}

// GetFollowersCount retrieves the number of followers of a pet
func (r *PostgresFollowRepository) GetFollowersCount(petID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("pet_id = ?", petID).Count(&count).Error
	return count, err
}

// GetFollowedPetIDs retrieves the IDs of all pets the user follows. This is
// the input of the feed aggregation.
func (r *PostgresFollowRepository) GetFollowedPetIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", userID).Pluck("pet_id", &ids).Error
	return ids, err
}

// GetFollowedPets retrieves the pets the user follows, for the profile view
func (r *PostgresFollowRepository) GetFollowedPets(userID uint) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("pet_id").Where("user_id = ?", userID),
	).Order("id").Find(&pets).Error
	return pets, err
}
