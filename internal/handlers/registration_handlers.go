package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

// RegistrationHandler handles conference registrations and their payments
type RegistrationHandler struct {
	db       *gorm.DB
	payments *services.PaymentService
	mailer   *services.Mailer
	refs     *services.ReferenceGenerator
}

func NewRegistrationHandler(db *gorm.DB, payments *services.PaymentService, mailer *services.Mailer, refs *services.ReferenceGenerator) *RegistrationHandler {
	return &RegistrationHandler{db: db, payments: payments, mailer: mailer, refs: refs}
}

// gatewayHTTPError maps payment service failures onto the error
// taxonomy: explicit gateway rejections are the client's problem (400),
// anything else reaching the gateway is ours (500).
func gatewayHTTPError(err error) error {
	var rejected *services.GatewayRejectedError
	if errors.As(err, &rejected) {
		return echo.NewHTTPError(http.StatusBadRequest, rejected.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

type registrationCreateRequest struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Organization   string `json:"organization"`
	Profession     string `json:"profession"`
	Conference     string `json:"conference" validate:"required"`
	ConferenceDate string `json:"conferenceDate"`
	AdditionalInfo string `json:"additionalInfo"`
}

// Create registers a participant for a conference
func (h *RegistrationHandler) Create(c echo.Context) error {
	var req registrationCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	registration := models.Registration{
		RegistrationID: h.refs.PublicRef("REG"),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Organization:   req.Organization,
		Profession:     req.Profession,
		Conference:     req.Conference,
		ConferenceDate: req.ConferenceDate,
		AdditionalInfo: req.AdditionalInfo,
		Status:         "pending",
		PaymentStatus:  models.PaymentStatusPending,
	}

	if err := h.db.Create(&registration).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create registration")
	}

	h.mailer.SendRegistrationConfirmation(registration.Email, registration.FullName, registration.Conference, registration.RegistrationID)

	log.Printf("New conference registration: %s", registration.RegistrationID)
	return c.JSON(http.StatusOK, registration)
}

// List returns all registrations, newest first (admin only)
func (h *RegistrationHandler) List(c echo.Context) error {
	var registrations []models.Registration
	if err := h.db.Order("created_at desc").Find(&registrations).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch registrations")
	}
	return c.JSON(http.StatusOK, registrations)
}

// Get returns a single registration by its public reference (admin only)
func (h *RegistrationHandler) Get(c echo.Context) error {
	var registration models.Registration
	err := h.db.Where("registration_id = ?", c.Param("registration_id")).First(&registration).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Registration not found")
	}
	return c.JSON(http.StatusOK, registration)
}

// UpdateStatus updates a registration's lifecycle status (admin only)
func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "status is required")
	}

	var registration models.Registration
	err := h.db.Where("registration_id = ?", c.Param("registration_id")).First(&registration).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Registration not found")
	}

	if err := h.db.Model(&registration).Update("status", status).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update status")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated successfully"})
}

type paymentInitializeRequest struct {
	RegistrationID string  `json:"registrationId" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
}

// InitializePayment starts a checkout for a conference registration.
// The amount comes from the client here, unlike the other domains
// where it is derived server-side from a priced entity.
func (h *RegistrationHandler) InitializePayment(c echo.Context) error {
	var req paymentInitializeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var registration models.Registration
	err := h.db.Where("registration_id = ?", req.RegistrationID).First(&registration).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Registration not found")
	}

	// The client-supplied amount is persisted alongside the reference
	registration.Amount = req.Amount
	result, err := h.payments.Initiate(c.Request().Context(), &registration, map[string]interface{}{
		"amount": req.Amount,
	})
	if err != nil {
		return gatewayHTTPError(err)
	}

	return c.JSON(http.StatusOK, InitiateResponse{
		Status:           true,
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// VerifyPayment checks a conference payment reference with the gateway
func (h *RegistrationHandler) VerifyPayment(c echo.Context) error {
	var req PaymentVerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var registration models.Registration
	outcome, err := h.payments.Verify(c.Request().Context(), req.Reference, &registration, func() {
		h.mailer.SendPaymentConfirmation(registration.Email, registration.FullName, registration.Conference, registration.Amount, req.Reference)
	})
	if err != nil {
		return gatewayHTTPError(err)
	}

	if !outcome.Verified {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": false, "message": outcome.Message})
	}
	resp := map[string]interface{}{"status": true, "message": outcome.Message}
	if outcome.Matched {
		resp["registration_id"] = registration.RegistrationID
	}
	return c.JSON(http.StatusOK, resp)
}

type registerAndPayRequest struct {
	FullName       string  `json:"fullName" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	Organization   string  `json:"organization"`
	Profession     string  `json:"profession"`
	AdditionalInfo string  `json:"additionalInfo"`
	Conference     string  `json:"conference" validate:"required"`
	ConferenceDate string  `json:"conferenceDate"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
}

// RegisterAndPay creates a registration and starts its checkout in one
// step, for the simplified conference payment flow.
func (h *RegistrationHandler) RegisterAndPay(c echo.Context) error {
	var req registerAndPayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	registration := models.Registration{
		RegistrationID: h.refs.PublicRef("REG"),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Organization:   req.Organization,
		Profession:     req.Profession,
		Conference:     req.Conference,
		ConferenceDate: req.ConferenceDate,
		AdditionalInfo: req.AdditionalInfo,
		Amount:         req.Amount,
		Status:         "pending",
		PaymentStatus:  models.PaymentStatusPending,
	}

	if err := h.db.Create(&registration).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create registration")
	}

	result, err := h.payments.Initiate(c.Request().Context(), &registration, nil)
	if err != nil {
		return gatewayHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":           true,
		"registration_id":   registration.RegistrationID,
		"authorization_url": result.AuthorizationURL,
		"reference":         result.Reference,
	})
}
