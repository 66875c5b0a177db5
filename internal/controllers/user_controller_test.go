package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealplanner/internal/controllers"
	"mealplanner/internal/models"
	"mealplanner/internal/services"
	"mealplanner/internal/utils"
	"mealplanner/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupUserController() (*controllers.UserController, *mocks.MockUserRepository, *mocks.MockUserProfileRepository) {
	userRepo := new(mocks.MockUserRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	profileService := services.NewProfileService(profileRepo)
	return controllers.NewUserController(userRepo, profileService), userRepo, profileRepo
}

func registerBody(username, email, password, confirm string) *bytes.Reader {
	body, _ := json.Marshal(map[string]string{
		"username":         username,
		"email":            email,
		"password":         password,
		"password_confirm": confirm,
	})
	return bytes.NewReader(body)
}

func TestRegisterSuccess(t *testing.T) {
	controller, userRepo, profileRepo := setupUserController()

	userRepo.On("ExistsByUsername", "newuser").Return(false, nil)
	userRepo.On("ExistsByEmail", "new@example.com").Return(false, nil)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 42
	}).Return(nil)
	profileRepo.On("FindByUserID", uint(42)).Return(nil, gorm.ErrRecordNotFound)
	profileRepo.On("Create", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	router := setupTestRouter()
	router.POST("/auth/register", controller.Register)

	req := httptest.NewRequest("POST", "/auth/register", registerBody("newuser", "new@example.com", "StrongPass1!", "StrongPass1!"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "newuser", data["username"])
	assert.NotNil(t, data["profile"])

	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		confirm       string
		expectedField string
	}{
		{
			name:          "short username",
			username:      "ab",
			password:      "StrongPass1!",
			confirm:       "StrongPass1!",
			expectedField: "username",
		},
		{
			name:          "password mismatch",
			username:      "newuser",
			password:      "StrongPass1!",
			confirm:       "OtherPass1!",
			expectedField: "password_confirm",
		},
		{
			name:          "weak password",
			username:      "newuser",
			password:      "alllowercase",
			confirm:       "alllowercase",
			expectedField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo, _ := setupUserController()

			router := setupTestRouter()
			router.POST("/auth/register", controller.Register)

			req := httptest.NewRequest("POST", "/auth/register", registerBody(tt.username, "new@example.com", tt.password, tt.confirm))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			errors := response["errors"].(map[string]interface{})
			assert.Contains(t, errors, tt.expectedField)

			userRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestRegisterUsernameTaken(t *testing.T) {
	controller, userRepo, _ := setupUserController()

	userRepo.On("ExistsByUsername", "taken").Return(true, nil)
	userRepo.On("ExistsByEmail", "new@example.com").Return(false, nil)

	router := setupTestRouter()
	router.POST("/auth/register", controller.Register)

	req := httptest.NewRequest("POST", "/auth/register", registerBody("taken", "new@example.com", "StrongPass1!", "StrongPass1!"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errors := response["errors"].(map[string]interface{})
	assert.Equal(t, "This username is already taken.", errors["username"])

	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterMissingFields(t *testing.T) {
	controller, _, _ := setupUserController()

	router := setupTestRouter()
	router.POST("/auth/register", controller.Register)

	body, _ := json.Marshal(map[string]string{"username": "newuser"})
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	controller, userRepo, _ := setupUserController()

	hash, err := utils.HashPassword("StrongPass1!")
	assert.NoError(t, err)
	userRepo.On("FindByUsername", "newuser").Return(&models.User{
		Username: "newuser",
		Email:    "new@example.com",
		Password: hash,
	}, nil)

	router := setupTestRouter()
	router.POST("/auth/login", controller.Login)

	body, _ := json.Marshal(map[string]string{"username": "newuser", "password": "StrongPass1!"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "newuser", data["username"])
}

func TestLoginBadCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		found    bool
	}{
		{name: "unknown user", username: "ghost", password: "StrongPass1!", found: false},
		{name: "wrong password", username: "newuser", password: "WrongPass1!", found: true},
	}

	hash, _ := utils.HashPassword("StrongPass1!")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, userRepo, _ := setupUserController()

			if tt.found {
				userRepo.On("FindByUsername", tt.username).Return(&models.User{
					Username: tt.username,
					Password: hash,
				}, nil)
			} else {
				userRepo.On("FindByUsername", tt.username).Return(nil, gorm.ErrRecordNotFound)
			}

			router := setupTestRouter()
			router.POST("/auth/login", controller.Login)

			body, _ := json.Marshal(map[string]string{"username": tt.username, "password": tt.password})
			req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
