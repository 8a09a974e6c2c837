package handlers

import (
	"context"

	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	args := m.Called(firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ repositories.UserRepository = (*MockUserRepository)(nil)

// MockPetRepository is a mock implementation of repositories.PetRepository
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) CreatePet(pet *models.Pet) error {
	args := m.Called(pet)
	return args.Error(0)
}

func (m *MockPetRepository) GetPetByID(id uint) (*models.Pet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *MockPetRepository) GetPetByQRCode(qrCode string) (*models.Pet, error) {
	args := m.Called(qrCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *MockPetRepository) GetPetsByUserID(userID uint) ([]models.Pet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pet), args.Error(1)
}

func (m *MockPetRepository) UpdatePet(pet *models.Pet) error {
	args := m.Called(pet)
	return args.Error(0)
}

func (m *MockPetRepository) DeletePet(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ repositories.PetRepository = (*MockPetRepository)(nil)

// MockFollowRepository is a mock implementation of repositories.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) CreateFollow(follow *models.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockFollowRepository) DeleteFollow(userID, petID uint) error {
	args := m.Called(userID, petID)
	return args.Error(0)
}

func (m *MockFollowRepository) IsFollowing(userID, petID uint) (bool, error) {
	args := m.Called(userID, petID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) GetFollowers(petID uint) ([]models.Follow, error) {
	args := m.Called(petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follow), args.Error(1)
}

func (m *MockFollowRepository) GetFollowersCount(petID uint) (int64, error) {
	args := m.Called(petID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) GetFollowedPetIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFollowRepository) GetFollowedPets(userID uint) ([]models.Pet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pet), args.Error(1)
}

var _ repositories.FollowRepository = (*MockFollowRepository)(nil)

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) CreatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetPostByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostsByPetID(petID uint) ([]models.Post, error) {
	args := m.Called(petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostsByPetIDs(petIDs []uint) ([]models.Post, error) {
	args := m.Called(petIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

var _ repositories.PostRepository = (*MockPostRepository)(nil)

// MockLikeRepository is a mock implementation of repositories.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) CreateLike(like *models.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteLike(postID, userID uint) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) GetLikesByPostID(postID uint) ([]models.Like, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Like), args.Error(1)
}

var _ repositories.LikeRepository = (*MockLikeRepository)(nil)

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) CreateComment(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

var _ repositories.CommentRepository = (*MockCommentRepository)(nil)

// MockDeviceEventRepository is a mock implementation of repositories.DeviceEventRepository
type MockDeviceEventRepository struct {
	mock.Mock
}

func (m *MockDeviceEventRepository) RecordFeed(ctx context.Context, event *models.FeedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockDeviceEventRepository) RecordLocation(ctx context.Context, event *models.LocationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockDeviceEventRepository) GetRecentFeeds(ctx context.Context, petID uint, limit int64) ([]models.FeedEvent, error) {
	args := m.Called(ctx, petID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedEvent), args.Error(1)
}

func (m *MockDeviceEventRepository) GetRecentLocations(ctx context.Context, petID uint, limit int64) ([]models.LocationEvent, error) {
	args := m.Called(ctx, petID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LocationEvent), args.Error(1)
}

func (m *MockDeviceEventRepository) DeleteEventsByPetID(ctx context.Context, petID uint) error {
	args := m.Called(ctx, petID)
	return args.Error(0)
}

var _ repositories.DeviceEventRepository = (*MockDeviceEventRepository)(nil)
