package handlers

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// AuthHandler syncs Firebase identities into local user rows. Session
// issuance itself stays with Firebase; this only keeps our side of the
// identity mapping current.
type AuthHandler struct {
	userRepository repositories.UserRepository
	firebaseAuth   *auth.Client
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, firebaseAuthClient *auth.Client) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		firebaseAuth:   firebaseAuthClient,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/session", h.CreateSession)
}

// CreateSessionRequest defines the request body for syncing a Firebase session
type CreateSessionRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// CreateSession verifies a Firebase ID token and creates or refreshes the
// matching local user row
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.firebaseAuth.VerifyIDToken(context.Background(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	image, _ := token.Claims["picture"].(string)

	user, err := h.userRepository.GetUserByFirebaseUID(token.UID)
	if err != nil {
		if err != repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		// First sign-in: the provider may already know this email from an
		// earlier auth method, link it instead of creating a duplicate.
		user, err = h.userRepository.GetUserByEmail(email)
		if err != nil {
			if err != repositories.ErrNotFound {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			user = &models.User{
				Name:        name,
				Email:       email,
				Image:       image,
				FirebaseUID: token.UID,
			}
			if err := h.userRepository.CreateUser(user); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
			}
			return c.JSON(http.StatusCreated, echo.Map{"user": user})
		}

		user.FirebaseUID = token.UID
		if err := h.userRepository.UpdateUser(user); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to link user")
		}
		return c.JSON(http.StatusOK, echo.Map{"user": user})
	}

	// Known user: refresh the provider-managed fields.
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if image != "" {
		user.Image = image
	}
	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
