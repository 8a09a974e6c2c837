package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	petRepository  repositories.PetRepository
	userRepository repositories.UserRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, petRepo repositories.PetRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		petRepository:  petRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers the authenticated post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/pets/:id/posts", h.CreatePost)
}

// RegisterPublicPostRoutes registers the public post routes. A pet's posts
// are readable by anyone, like its profile page.
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/pets/:id/posts", h.GetPostsForPet)
}

// CreatePost publishes a new post on behalf of a pet. Only the pet's owner
// may post.
func (h *PostHandler) CreatePost(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	pet, err := h.petRepository.GetPetByID(uint(petID))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if pet.UserID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the pet owner can create posts")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		PetID:   pet.ID,
		Image:   req.Image,
		Caption: req.Caption,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"post": post})
}

// GetPostsForPet lists a pet's posts, newest first, with likes and comments
func (h *PostHandler) GetPostsForPet(c echo.Context) error {
	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	pet, err := h.petRepository.GetPetByID(uint(petID))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetPostsByPetID(pet.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched := make([]models.FeedPost, 0, len(posts))
	for i := range posts {
		posts[i].Pet = pet
		enriched = append(enriched, newFeedPost(&posts[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": enriched})
}
