package repositories

import (
	"github.com/pet-connect/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByPetID(petID uint) ([]models.Post, error)
	GetPostsByPetIDs(petIDs []uint) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// commentsNewestFirst orders preloaded comments newest first, with the id as
// a deterministic tie-breaker.
func commentsNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, id DESC")
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByPetID retrieves all posts of a pet, newest first, with likes and
// comments (and comment authors) attached
func (r *PostgresPostRepository) GetPostsByPetID(petID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Preload("Likes").
		Preload("Comments", commentsNewestFirst).
		Preload("Comments.User").
		Where("pet_id = ?", petID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByPetIDs retrieves the posts of all given pets for the aggregated
// feed, newest first. Ties on the creation timestamp fall back to the post
// ID so repeated reads of unchanged data keep a stable order.
func (r *PostgresPostRepository) GetPostsByPetIDs(petIDs []uint) ([]models.Post, error) {
	if len(petIDs) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := r.db.
		Preload("Pet").
		Preload("Likes").
		Preload("Comments", commentsNewestFirst).
		Preload("Comments.User").
		Where("pet_id IN ?", petIDs).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
