package handlers

import (
	"net/http"

	"cafe-counter-api/middleware"
	"cafe-counter-api/models"
	"cafe-counter-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Accounts *services.AccountService
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new customer account and logs it in
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Accounts.Register(req.Login, req.Password, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"login": user.Login,
			"role":  user.Role,
		},
	})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Accounts.Authenticate(req.Login, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"login": user.Login,
			"role":  user.Role,
		},
	})
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	sess := middleware.GetSession(c)
	user, err := h.Accounts.Profile(sess.Login)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileRequest struct {
	Phone           *string          `json:"phone"`
	Password        *string          `json:"password"`
	PasswordConfirm *string          `json:"password_confirm"`
	FavoriteItems   *string          `json:"favorite_items"`
	Role            *models.UserRole `json:"role"`
}

// UpdateProfile edits the caller's own record
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	sess := middleware.GetSession(c)
	h.updateProfile(c, sess, sess.Login)
}

// UpdateUser lets a manager edit any user record, including the role
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	sess := middleware.GetSession(c)
	h.updateProfile(c, sess, c.Param("login"))
}

func (h *AuthHandler) updateProfile(c *gin.Context, sess models.Session, targetLogin string) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Accounts.UpdateProfile(sess, targetLogin, services.ProfileUpdate{
		Phone:           req.Phone,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FavoriteItems:   req.FavoriteItems,
		Role:            req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}
