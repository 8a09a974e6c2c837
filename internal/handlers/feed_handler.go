package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// FeedHandler assembles the aggregated post stream for a viewing user
type FeedHandler struct {
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:   postRepo,
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the posts of every pet the current user follows, newest
// first, each with the authoring pet's summary, like membership and comments.
// Following nothing yields an empty feed, not an error.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	petIDs, err := h.followRepository.GetFollowedPetIDs(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetPostsByPetIDs(petIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for i := range posts {
		feed = append(feed, newFeedPost(&posts[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": feed})
}

// newFeedPost flattens a loaded post into its read-facing shape: pet summary,
// like membership, comments joined with their authors.
func newFeedPost(post *models.Post) models.FeedPost {
	fp := models.FeedPost{
		ID:        post.ID,
		Image:     post.Image,
		Caption:   post.Caption,
		CreatedAt: post.CreatedAt,
		Likes:     make([]models.LikeEntry, 0, len(post.Likes)),
		Comments:  make([]models.CommentEntry, 0, len(post.Comments)),
	}
	if post.Pet != nil {
		fp.Pet = post.Pet.ToSummary()
	}
	for _, like := range post.Likes {
		fp.Likes = append(fp.Likes, models.LikeEntry{UserID: like.UserID})
	}
	for _, comment := range post.Comments {
		entry := models.CommentEntry{
			ID:        comment.ID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if comment.User != nil {
			entry.User = comment.User.ToSummary()
		}
		fp.Comments = append(fp.Comments, entry)
	}
	return fp
}
