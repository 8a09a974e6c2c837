package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
)

// currentUser resolves the local user for the Firebase UID stored in the
// context by the auth middleware. A verified token without a synced local
// account is still unauthorized: every write is attributed to a user row.
func currentUser(c echo.Context, userRepo repositories.UserRepository) (*models.User, error) {
	firebaseUID, _ := c.Get("firebaseUID").(string)
	if firebaseUID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := userRepo.GetUserByFirebaseUID(firebaseUID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "User account not registered")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return user, nil
}
