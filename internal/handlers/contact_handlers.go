package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

// ContactHandler handles contact-form submissions
type ContactHandler struct {
	db     *gorm.DB
	mailer *services.Mailer
}

func NewContactHandler(db *gorm.DB, mailer *services.Mailer) *ContactHandler {
	return &ContactHandler{db: db, mailer: mailer}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Create stores a contact message and acknowledges it by email
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "unread",
	}

	if err := h.db.Create(&contact).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save message")
	}

	h.mailer.SendContactConfirmation(contact.Email, contact.Name, contact.Subject)
	h.mailer.SendAdminContactNotification(contact.Name, contact.Email, contact.Subject, contact.Message)

	log.Printf("New contact message from: %s", contact.Email)
	return c.JSON(http.StatusOK, contact)
}

// List returns all messages, newest first (admin only)
func (h *ContactHandler) List(c echo.Context) error {
	var messages []models.Contact
	if err := h.db.Order("created_at desc").Find(&messages).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch messages")
	}
	return c.JSON(http.StatusOK, messages)
}

// UpdateStatus marks a message read/responded (admin only)
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("message_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid message id")
	}

	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "status is required")
	}

	var message models.Contact
	if err := h.db.First(&message, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Message not found")
	}

	if err := h.db.Model(&message).Update("status", status).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update status")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated successfully"})
}
