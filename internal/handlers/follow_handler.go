package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	petRepository    repositories.PetRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, petRepo repositories.PetRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		petRepository:    petRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/pets/:id/follow", h.GetFollowStatus)
	g.POST("/pets/:id/follow", h.FollowPet)
	g.DELETE("/pets/:id/follow", h.UnfollowPet)
	g.GET("/pets/:id/followers", h.GetFollowers)
}

// GetFollowStatus checks whether the current user follows the pet
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	isFollowing, err := h.followRepository.IsFollowing(user.ID, uint(petID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"isFollowing": isFollowing})
}

// FollowPet follows a pet. The insert itself is the duplicate check: a
// second follow by the same user fails rather than no-oping.
func (h *FollowHandler) FollowPet(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	if _, err := h.petRepository.GetPetByID(uint(petID)); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	follow := &models.Follow{
		UserID: user.ID,
		PetID:  uint(petID),
	}

	if err := h.followRepository.CreateFollow(follow); err != nil {
		if err == repositories.ErrAlreadyExists {
			return echo.NewHTTPError(http.StatusBadRequest, "You are already following this pet")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"follow": follow})
}

// UnfollowPet unfollows a pet
func (h *FollowHandler) UnfollowPet(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	if err := h.followRepository.DeleteFollow(user.ID, uint(petID)); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "You are not following this pet")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetFollowers lists the followers of a pet with a total count
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	if _, err := currentUser(c, h.userRepository); err != nil {
		return err
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	if _, err := h.petRepository.GetPetByID(uint(petID)); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	follows, err := h.followRepository.GetFollowers(uint(petID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followers := make([]models.FollowerEntry, 0, len(follows))
	for _, f := range follows {
		entry := models.FollowerEntry{ID: f.ID}
		if f.User != nil {
			entry.User = f.User.ToSummary()
		}
		followers = append(followers, entry)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"followers": followers,
		"count":     len(followers),
	})
}
