package repositories

import (
	"github.com/pet-connect/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(postID, userID uint) error
	GetLikesByPostID(postID uint) ([]models.Like, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts the like. The composite unique index on
// (post_id, user_id) rejects a second like by the same user, including the
// loser of two racing identical requests.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteLike removes the user's like from the post. The conditional delete
// is the atomic existence check.
func (r *PostgresLikeRepository) DeleteLike(postID, userID uint) error {
	res := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetLikesByPostID retrieves all likes for a post with the liking users attached
func (r *PostgresLikeRepository) GetLikesByPostID(postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Preload("User").Where("post_id = ?", postID).Order("id").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
