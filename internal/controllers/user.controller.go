package controllers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"mealplanner/internal/models"
	"mealplanner/internal/repository"
	"mealplanner/internal/services"
	"mealplanner/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type UserController struct {
	userRepo       repository.UserRepository
	profileService *services.ProfileService
}

func NewUserController(userRepo repository.UserRepository, profileService *services.ProfileService) *UserController {
	return &UserController{userRepo: userRepo, profileService: profileService}
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and its profile with default biometrics
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "Account created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]interface{} "Username or email taken"
// @Router /auth/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	fieldErrors := make(map[string]string)

	if len(strings.TrimSpace(req.Username)) < 3 {
		fieldErrors["username"] = "Username must be at least 3 characters long."
	}
	if req.Password != req.PasswordConfirm {
		fieldErrors["password_confirm"] = "The two password fields didn't match."
	}
	if policyErrors := utils.ValidatePassword(req.Password); len(policyErrors) > 0 {
		fieldErrors["password"] = strings.Join(policyErrors, " ")
	}

	if len(fieldErrors) == 0 {
		if taken, err := uc.userRepo.ExistsByUsername(req.Username); err != nil {
			respondServiceError(c, err)
			return
		} else if taken {
			fieldErrors["username"] = "This username is already taken."
		}
		if taken, err := uc.userRepo.ExistsByEmail(req.Email); err != nil {
			respondServiceError(c, err)
			return
		} else if taken {
			fieldErrors["email"] = "An account with this email already exists."
		}
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create account",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hash,
	}
	if err := uc.userRepo.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create account",
			"error":   err.Error(),
		})
		return
	}

	// Profile creation is an explicit part of registration, not a
	// persistence-layer side effect.
	profile, err := uc.profileService.GetOrCreate(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Account created but profile setup failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Account created successfully",
		"data": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"profile":  profile,
		},
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Router /auth/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.FindByUsername(req.Username)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid username or password",
			"error":   "Authentication failed",
		})
		return
	}

	// Generate JWT
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})

	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	tokenString, err := jwtToken.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token":    tokenString,
			"username": user.Username,
		},
	})
}
