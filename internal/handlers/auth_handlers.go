package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	db     *gorm.DB
	tokens *services.TokenService
}

func NewAuthHandler(db *gorm.DB, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login checks the admin credentials and issues an access token
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var admin models.Admin
	err := h.db.Where("username = ?", req.Username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.tokens.Issue(admin.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create access token")
	}

	c.Logger().Infof("Admin logged in: %s", admin.Username)

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// VerifyToken reports whether the presented bearer token is valid. It
// sits behind RequireAuth, so reaching it means the token checked out.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	username, _ := c.Get("adminUsername").(string)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"valid": true,
		"user":  username,
	})
}
