package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

// MoreLifeHandler handles wellness-assessment intake and payment
type MoreLifeHandler struct {
	db       *gorm.DB
	payments *services.PaymentService
	mailer   *services.Mailer
	refs     *services.ReferenceGenerator
}

func NewMoreLifeHandler(db *gorm.DB, payments *services.PaymentService, mailer *services.Mailer, refs *services.ReferenceGenerator) *MoreLifeHandler {
	return &MoreLifeHandler{db: db, payments: payments, mailer: mailer, refs: refs}
}

type assessmentRequest struct {
	Name                string `json:"name" validate:"required"`
	Location            string `json:"location"`
	Email               string `json:"email" validate:"required,email"`
	Age                 int    `json:"age" validate:"required,gt=0"`
	Education           string `json:"education"`
	SpecificChallenge   string `json:"specificChallenge" validate:"required"`
	LikelyCause         string `json:"likelyCause"`
	DurationOfChallenge string `json:"durationOfChallenge"`
	TriggeringIncident  string `json:"triggeringIncident"`
	OnDrugs             string `json:"onDrugs"`
	CommencementMonth   string `json:"commencementMonth"`
	SessionType         string `json:"sessionType" validate:"required"`
}

// CreateAssessment stores a submitted assessment. The session fee is
// looked up from the fixed price table; an unknown session type prices
// at zero and is caught during review.
func (h *MoreLifeHandler) CreateAssessment(c echo.Context) error {
	var req assessmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assessment := models.MoreLifeAssessment{
		AssessmentID:        h.refs.PublicRef("ML"),
		Name:                req.Name,
		Location:            req.Location,
		Email:               req.Email,
		Age:                 req.Age,
		Education:           req.Education,
		SpecificChallenge:   req.SpecificChallenge,
		LikelyCause:         req.LikelyCause,
		DurationOfChallenge: req.DurationOfChallenge,
		TriggeringIncident:  req.TriggeringIncident,
		OnDrugs:             req.OnDrugs,
		CommencementMonth:   req.CommencementMonth,
		SessionType:         req.SessionType,
		Amount:              models.MoreLifePrice(req.SessionType),
		Status:              "pending",
		PaymentStatus:       models.PaymentStatusPending,
	}

	if err := h.db.Create(&assessment).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create assessment")
	}

	h.mailer.SendMoreLifeAssessmentConfirmation(assessment.Email, assessment.Name, assessment.AssessmentID)

	log.Printf("New MoreLife assessment: %s", assessment.AssessmentID)
	return c.JSON(http.StatusOK, assessment)
}

// InitializePayment starts a checkout for an assessment's session fee
func (h *MoreLifeHandler) InitializePayment(c echo.Context) error {
	var assessment models.MoreLifeAssessment
	err := h.db.Where("assessment_id = ?", c.Param("assessment_id")).First(&assessment).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Assessment not found")
	}

	result, err := h.payments.Initiate(c.Request().Context(), &assessment, nil)
	if err != nil {
		return gatewayHTTPError(err)
	}

	return c.JSON(http.StatusOK, InitiateResponse{
		Status:           true,
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// VerifyPayment checks a session payment reference with the gateway
func (h *MoreLifeHandler) VerifyPayment(c echo.Context) error {
	var req PaymentVerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var assessment models.MoreLifeAssessment
	outcome, err := h.payments.Verify(c.Request().Context(), req.Reference, &assessment, func() {
		h.mailer.SendMoreLifePaymentConfirmation(assessment.Email, assessment.Name, assessment.SessionType, assessment.Amount)
	})
	if err != nil {
		return gatewayHTTPError(err)
	}

	if !outcome.Verified {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": false, "message": outcome.Message})
	}
	resp := map[string]interface{}{"status": true, "message": outcome.Message}
	if outcome.Matched {
		resp["assessment_id"] = assessment.AssessmentID
	}
	return c.JSON(http.StatusOK, resp)
}

// ListAssessments returns all assessments, newest first (admin only)
func (h *MoreLifeHandler) ListAssessments(c echo.Context) error {
	var assessments []models.MoreLifeAssessment
	if err := h.db.Order("created_at desc").Find(&assessments).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch assessments")
	}
	return c.JSON(http.StatusOK, assessments)
}

// UpdateAssessmentStatus moves an assessment through review (admin only)
func (h *MoreLifeHandler) UpdateAssessmentStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "status is required")
	}

	var assessment models.MoreLifeAssessment
	err := h.db.Where("assessment_id = ?", c.Param("assessment_id")).First(&assessment).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Assessment not found")
	}

	if err := h.db.Model(&assessment).Update("status", status).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update status")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated successfully"})
}

// DeleteAssessment removes an assessment (admin only)
func (h *MoreLifeHandler) DeleteAssessment(c echo.Context) error {
	var assessment models.MoreLifeAssessment
	err := h.db.Where("assessment_id = ?", c.Param("assessment_id")).First(&assessment).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Assessment not found")
	}

	if err := h.db.Delete(&assessment).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete assessment")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Assessment deleted successfully"})
}
