package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// ProfileHandler handles requests for the authenticated user's own profile
type ProfileHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
}

// GetProfile returns the current user's profile with the pets they follow
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	profile, err := h.buildProfile(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}

// UpdateProfile updates the current user's display name and image. Email and
// the identity link are not editable here.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user.Name = req.Name
	if req.Image != "" {
		user.Image = req.Image
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	profile, err := h.buildProfile(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}

func (h *ProfileHandler) buildProfile(user *models.User) (*models.Profile, error) {
	pets, err := h.followRepository.GetFollowedPets(user.ID)
	if err != nil {
		return nil, err
	}

	following := make([]models.PetSummary, 0, len(pets))
	for i := range pets {
		following = append(following, pets[i].ToSummary())
	}

	return &models.Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Image:     user.Image,
		Following: following,
	}, nil
}
