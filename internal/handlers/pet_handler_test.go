package handlers

import (
	"net/http"
	"testing"

	"github.com/pet-connect/backend/internal/models"
	"github.com/pet-connect/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePet(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	deviceEventRepo := new(MockDeviceEventRepository)
	handler := NewPetHandler(petRepo, userRepo, deviceEventRepo)

	user := &models.User{ID: 1, FirebaseUID: testFirebaseUID}
	userRepo.On("GetUserByFirebaseUID", testFirebaseUID).Return(user, nil)
	petRepo.On("CreatePet", mock.AnythingOfType("*models.Pet")).Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/pets", models.CreatePetRequest{
		Name: "Rex",
		Type: "dog",
	})
	authenticate(c)

	require.NoError(t, handler.CreatePet(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The QR token is assigned server-side and must be present.
	created := petRepo.Calls[0].Arguments.Get(0).(*models.Pet)
	assert.NotEmpty(t, created.QRCode)
	assert.Equal(t, user.ID, created.UserID)
}

func TestCreatePetMissingName(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	deviceEventRepo := new(MockDeviceEventRepository)
	handler := NewPetHandler(petRepo, userRepo, deviceEventRepo)

	user := &models.User{ID: 1, FirebaseUID: testFirebaseUID}
	userRepo.On("GetUserByFirebaseUID", testFirebaseUID).Return(user, nil)

	c, _ := newJSONContext(t, http.MethodPost, "/pets", models.CreatePetRequest{Type: "dog"})
	authenticate(c)

	he := asHTTPError(t, handler.CreatePet(c))
	assert.Equal(t, http.StatusBadRequest, he.Code)
	petRepo.AssertNotCalled(t, "CreatePet", mock.Anything)
}

func TestUpdatePetNotOwner(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	deviceEventRepo := new(MockDeviceEventRepository)
	handler := NewPetHandler(petRepo, userRepo, deviceEventRepo)

	user := &models.User{ID: 1, FirebaseUID: testFirebaseUID}
	pet := &models.Pet{ID: 7, Name: "Rex", UserID: 2}

	userRepo.On("GetUserByFirebaseUID", testFirebaseUID).Return(user, nil)
	petRepo.On("GetPetByID", uint(7)).Return(pet, nil)

	c, _ := newJSONContext(t, http.MethodPatch, "/pets/7", models.UpdatePetRequest{Name: "Max"})
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("7")

	he := asHTTPError(t, handler.UpdatePet(c))
	assert.Equal(t, http.StatusForbidden, he.Code)
	petRepo.AssertNotCalled(t, "UpdatePet", mock.Anything)
}

func TestGetPetNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	deviceEventRepo := new(MockDeviceEventRepository)
	handler := NewPetHandler(petRepo, userRepo, deviceEventRepo)

	user := &models.User{ID: 1, FirebaseUID: testFirebaseUID}
	userRepo.On("GetUserByFirebaseUID", testFirebaseUID).Return(user, nil)
	petRepo.On("GetPetByID", uint(404)).Return(nil, repositories.ErrNotFound)

	c, _ := newJSONContext(t, http.MethodGet, "/pets/404", nil)
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("404")

	he := asHTTPError(t, handler.GetPet(c))
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetPetIncludesRecentEvents(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	deviceEventRepo := new(MockDeviceEventRepository)
	handler := NewPetHandler(petRepo, userRepo, deviceEventRepo)

	user := &models.User{ID: 1, FirebaseUID: testFirebaseUID}
	pet := &models.Pet{ID: 7, Name: "Rex", UserID: 1}

	userRepo.On("GetUserByFirebaseUID", testFirebaseUID).Return(user, nil)
	petRepo.On("GetPetByID", uint(7)).Return(pet, nil)
	deviceEventRepo.On("GetRecentFeeds", mock.Anything, uint(7), int64(recentEventsLimit)).
		Return([]models.FeedEvent{{PetID: 7, Notes: "breakfast"}}, nil)
	deviceEventRepo.On("GetRecentLocations", mock.Anything, uint(7), int64(recentEventsLimit)).
		Return([]models.LocationEvent{}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/pets/7", nil)
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.GetPet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	petBody := body["pet"].(map[string]interface{})
	assert.Len(t, petBody["feeds"], 1)
	assert.Len(t, petBody["locations"], 0)
}

func TestDeletePetNotOwner(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	deviceEventRepo := new(MockDeviceEventRepository)
	handler := NewPetHandler(petRepo, userRepo, deviceEventRepo)

	user := &models.User{ID: 1, FirebaseUID: testFirebaseUID}
	pet := &models.Pet{ID: 7, UserID: 2}

	userRepo.On("GetUserByFirebaseUID", testFirebaseUID).Return(user, nil)
	petRepo.On("GetPetByID", uint(7)).Return(pet, nil)

	c, _ := newJSONContext(t, http.MethodDelete, "/pets/7", nil)
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("7")

	he := asHTTPError(t, handler.DeletePet(c))
	assert.Equal(t, http.StatusForbidden, he.Code)
	petRepo.AssertNotCalled(t, "DeletePet", mock.Anything)
}

func TestDeletePet(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	deviceEventRepo := new(MockDeviceEventRepository)
	handler := NewPetHandler(petRepo, userRepo, deviceEventRepo)

	user := &models.User{ID: 1, FirebaseUID: testFirebaseUID}
	pet := &models.Pet{ID: 7, UserID: 1}

	userRepo.On("GetUserByFirebaseUID", testFirebaseUID).Return(user, nil)
	petRepo.On("GetPetByID", uint(7)).Return(pet, nil)
	petRepo.On("DeletePet", uint(7)).Return(nil)
	deviceEventRepo.On("DeleteEventsByPetID", mock.Anything, uint(7)).Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/pets/7", nil)
	authenticate(c)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.DeletePet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}
