package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// recentEventsLimit caps the device events embedded in the pet detail view.
const recentEventsLimit = 10

// PetHandler handles HTTP requests related to pets
type PetHandler struct {
	petRepository         repositories.PetRepository
	userRepository        repositories.UserRepository
	deviceEventRepository repositories.DeviceEventRepository
}

// NewPetHandler creates a new PetHandler
func NewPetHandler(petRepo repositories.PetRepository, userRepo repositories.UserRepository, deviceEventRepo repositories.DeviceEventRepository) *PetHandler {
	return &PetHandler{
		petRepository:         petRepo,
		userRepository:        userRepo,
		deviceEventRepository: deviceEventRepo,
	}
}

// RegisterPetRoutes registers pet-related routes
func (h *PetHandler) RegisterPetRoutes(g *echo.Group) {
	g.GET("/pets", h.GetPets)
	g.POST("/pets", h.CreatePet)
	g.GET("/pets/:id", h.GetPet)
	g.PATCH("/pets/:id", h.UpdatePet)
	g.DELETE("/pets/:id", h.DeletePet)
	g.POST("/pets/:id/feed", h.AddFeedRecord)
}

// GetPets lists the pets owned by the current user
func (h *PetHandler) GetPets(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	pets, err := h.petRepository.GetPetsByUserID(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"pets": pets})
}

// CreatePet registers a new pet. The QR token is generated here, once, and
// the owner becomes the pet's first follower in the same transaction.
func (h *PetHandler) CreatePet(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	var req models.CreatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet := &models.Pet{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Image:       req.Image,
		QRCode:      uuid.NewString(),
		UserID:      user.ID,
	}

	if err := h.petRepository.CreatePet(pet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"pet": pet})
}

// GetPet retrieves a pet with its most recent feeding and location records
func (h *PetHandler) GetPet(c echo.Context) error {
	if _, err := currentUser(c, h.userRepository); err != nil {
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

	detail, err := h.petDetail(c, pet)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"pet": detail})
}

// UpdatePet updates a pet's editable fields. Only the owner may update; the
// QR token is immutable.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	var req models.UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet, err := h.petRepository.GetPetByID(uint(petID))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if pet.UserID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the pet owner can update this pet")
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Type != "" {
		pet.Type = req.Type
	}
	if req.Description != "" {
		pet.Description = req.Description
	}
	if req.Image != "" {
		pet.Image = req.Image
	}

	if err := h.petRepository.UpdatePet(pet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detail, err := h.petDetail(c, pet)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"pet": detail})
}

// DeletePet hard-deletes a pet and everything hanging off it
func (h *PetHandler) DeletePet(c echo.Context) error {
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
		return echo.NewHTTPError(http.StatusForbidden, "Only the pet owner can delete this pet")
	}

	if err := h.petRepository.DeletePet(pet.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// The relational cascade does not reach the event store.
	go h.deviceEventRepository.DeleteEventsByPetID(context.Background(), pet.ID)

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// AddFeedRecord records a feeding on behalf of the owner
func (h *PetHandler) AddFeedRecord(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return err
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pet ID")
	}

	var req models.RecordFeedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	pet, err := h.petRepository.GetPetByID(uint(petID))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if pet.UserID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the pet owner can add feed records")
	}

	event := &models.FeedEvent{
		PetID: pet.ID,
		Notes: req.Notes,
	}
	if err := h.deviceEventRepository.RecordFeed(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detail, err := h.petDetail(c, pet)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"pet": detail})
}

// petDetail attaches the pet's recent device events from the event store
func (h *PetHandler) petDetail(c echo.Context, pet *models.Pet) (*models.PetDetail, error) {
	ctx := c.Request().Context()

	feeds, err := h.deviceEventRepository.GetRecentFeeds(ctx, pet.ID, recentEventsLimit)
	if err != nil {
		return nil, err
	}
	locations, err := h.deviceEventRepository.GetRecentLocations(ctx, pet.ID, recentEventsLimit)
	if err != nil {
		return nil, err
	}

	return &models.PetDetail{
		Pet:       *pet,
		Feeds:     feeds,
		Locations: locations,
	}, nil
}
