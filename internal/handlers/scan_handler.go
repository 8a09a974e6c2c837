package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// ScanHandler resolves QR-code scans. These routes are unauthenticated: the
// QR token itself is the capability, so a found pet can be reported by anyone
// who scans its tag.
type ScanHandler struct {
	petRepository         repositories.PetRepository
	deviceEventRepository repositories.DeviceEventRepository
}

// NewScanHandler creates a new ScanHandler
func NewScanHandler(petRepo repositories.PetRepository, deviceEventRepo repositories.DeviceEventRepository) *ScanHandler {
	return &ScanHandler{
		petRepository:         petRepo,
		deviceEventRepository: deviceEventRepo,
	}
}

// RegisterScanRoutes registers the public scan routes
func (h *ScanHandler) RegisterScanRoutes(g *echo.Group) {
	g.GET("/scan/:qr_code", h.ScanPet)
	g.POST("/scan/:qr_code/feed", h.RecordFeed)
	g.POST("/scan/:qr_code/location", h.RecordLocation)
}

func (h *ScanHandler) petByQRCode(c echo.Context) (*models.Pet, error) {
	pet, err := h.petRepository.GetPetByQRCode(c.Param("qr_code"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return pet, nil
}

// ScanPet resolves a QR token to the pet's public view with owner contact info
func (h *ScanHandler) ScanPet(c echo.Context) error {
	pet, err := h.petByQRCode(c)
	if err != nil {
		return err
	}

	scan := models.ScanPet{
		ID:          pet.ID,
		Name:        pet.Name,
		Type:        pet.Type,
		Description: pet.Description,
		Image:       pet.Image,
	}
	if pet.User != nil {
		scan.User = pet.User.ToSummary()
	}

	return c.JSON(http.StatusOK, echo.Map{"pet": scan})
}

// RecordFeed records a feeding event reported by a scanner
func (h *ScanHandler) RecordFeed(c echo.Context) error {
	pet, err := h.petByQRCode(c)
	if err != nil {
		return err
	}

	var req models.RecordFeedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event := &models.FeedEvent{
		PetID: pet.ID,
		Notes: req.Notes,
	}
	if err := h.deviceEventRepository.RecordFeed(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// RecordLocation records a sighting location reported by a scanner. Both
// coordinates are required; zero is a valid value for either.
func (h *ScanHandler) RecordLocation(c echo.Context) error {
	pet, err := h.petByQRCode(c)
	if err != nil {
		return err
	}

	var req models.RecordLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event := &models.LocationEvent{
		PetID:     pet.ID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}
	if err := h.deviceEventRepository.RecordLocation(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}
