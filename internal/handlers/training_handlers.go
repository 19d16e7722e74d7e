package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

const programListCacheKey = "training:programs"

// encodeObjectives stores the objectives list as a JSON text column
func encodeObjectives(objectives []string) string {
	if len(objectives) == 0 {
		return "[]"
	}
	b, err := json.Marshal(objectives)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// TrainingHandler handles training programs and enrollments
type TrainingHandler struct {
	db       *gorm.DB
	cache    *services.RedisCache
	payments *services.PaymentService
	mailer   *services.Mailer
	refs     *services.ReferenceGenerator
}

func NewTrainingHandler(db *gorm.DB, cache *services.RedisCache, payments *services.PaymentService, mailer *services.Mailer, refs *services.ReferenceGenerator) *TrainingHandler {
	return &TrainingHandler{db: db, cache: cache, payments: payments, mailer: mailer, refs: refs}
}

// ListPrograms returns active training programs, cached for five minutes
func (h *TrainingHandler) ListPrograms(c echo.Context) error {
	fetch := func() ([]models.TrainingProgram, error) {
		var programs []models.TrainingProgram
		err := h.db.Where("is_active = ?", true).Order("created_at desc").Find(&programs).Error
		return programs, err
	}

	var programs []models.TrainingProgram
	var err error
	if h.cache != nil {
		programs, err = services.GetOrSet(h.cache, c.Request().Context(), programListCacheKey, 5*time.Minute, fetch)
	} else {
		programs, err = fetch()
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch training programs")
	}
	return c.JSON(http.StatusOK, programs)
}

type enrollmentRequest struct {
	ProgramID    uint   `json:"programId" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Organization string `json:"organization"`
	Position     string `json:"position"`
}

// Enroll creates a pending enrollment with the amount copied from the
// program fee.
func (h *TrainingHandler) Enroll(c echo.Context) error {
	var req enrollmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var program models.TrainingProgram
	if err := h.db.First(&program, req.ProgramID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Training program not found")
	}

	enrollment := models.TrainingEnrollment{
		EnrollmentID:  h.refs.PublicRef("TE"),
		ProgramID:     program.ID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Organization:  req.Organization,
		Position:      req.Position,
		Amount:        program.Fee,
		Status:        "pending",
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := h.db.Create(&enrollment).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create enrollment")
	}

	h.mailer.SendTrainingEnrollmentConfirmation(enrollment.Email, enrollment.FullName, program.Title, enrollment.EnrollmentID)

	log.Printf("New training enrollment: %s", enrollment.EnrollmentID)
	return c.JSON(http.StatusOK, enrollment)
}

// InitializePayment starts a checkout for a pending enrollment
func (h *TrainingHandler) InitializePayment(c echo.Context) error {
	var enrollment models.TrainingEnrollment
	err := h.db.Where("enrollment_id = ?", c.Param("enrollment_id")).First(&enrollment).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Enrollment not found")
	}

	result, err := h.payments.Initiate(c.Request().Context(), &enrollment, nil)
	if err != nil {
		return gatewayHTTPError(err)
	}

	return c.JSON(http.StatusOK, InitiateResponse{
		Status:           true,
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// VerifyPayment checks a training payment reference with the gateway
func (h *TrainingHandler) VerifyPayment(c echo.Context) error {
	var req PaymentVerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var enrollment models.TrainingEnrollment
	outcome, err := h.payments.Verify(c.Request().Context(), req.Reference, &enrollment, func() {
		var program models.TrainingProgram
		if err := h.db.First(&program, enrollment.ProgramID).Error; err != nil {
			log.Printf("Program %d missing for enrollment %s, skipping confirmation email", enrollment.ProgramID, enrollment.EnrollmentID)
			return
		}
		h.mailer.SendTrainingPaymentConfirmation(enrollment.Email, enrollment.FullName, program.Title, enrollment.Amount)
	})
	if err != nil {
		return gatewayHTTPError(err)
	}

	if !outcome.Verified {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": false, "message": outcome.Message})
	}
	resp := map[string]interface{}{"status": true, "message": outcome.Message}
	if outcome.Matched {
		resp["enrollment_id"] = enrollment.EnrollmentID
	}
	return c.JSON(http.StatusOK, resp)
}

// ListEnrollments returns all enrollments, newest first (admin only)
func (h *TrainingHandler) ListEnrollments(c echo.Context) error {
	var enrollments []models.TrainingEnrollment
	if err := h.db.Order("created_at desc").Find(&enrollments).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch enrollments")
	}
	return c.JSON(http.StatusOK, enrollments)
}
