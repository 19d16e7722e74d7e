package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

// AdminHandler implements the back-office dashboard and content CRUD
type AdminHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewAdminHandler(db *gorm.DB, cache *services.RedisCache) *AdminHandler {
	return &AdminHandler{db: db, cache: cache}
}

// invalidate drops a catalog cache key after a content mutation
func (h *AdminHandler) invalidate(ctx context.Context, key string) {
	if h.cache != nil {
		_ = h.cache.Delete(ctx, key)
	}
}

// completedRevenue sums the amount column of completed payments for a model
func (h *AdminHandler) completedRevenue(model interface{}) float64 {
	var total float64
	h.db.Model(model).
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total
}

type dashboardStats struct {
	TotalRegistrations     int64   `json:"totalRegistrations"`
	TotalMessages          int64   `json:"totalMessages"`
	PendingRegistrations   int64   `json:"pendingRegistrations"`
	ConfirmedRegistrations int64   `json:"confirmedRegistrations"`
	TotalRevenue           float64 `json:"totalRevenue"`
}

// Stats returns the dashboard counters
func (h *AdminHandler) Stats(c echo.Context) error {
	var stats dashboardStats

	h.db.Model(&models.Registration{}).Count(&stats.TotalRegistrations)
	h.db.Model(&models.Contact{}).Count(&stats.TotalMessages)
	h.db.Model(&models.Registration{}).Where("status = ?", "pending").Count(&stats.PendingRegistrations)
	h.db.Model(&models.Registration{}).Where("status IN ?", []string{"confirmed", "paid"}).Count(&stats.ConfirmedRegistrations)

	stats.TotalRevenue = h.completedRevenue(&models.Registration{}) + h.completedRevenue(&models.BookPurchase{})

	return c.JSON(http.StatusOK, stats)
}

// RevenueAnalytics breaks completed revenue down by domain
func (h *AdminHandler) RevenueAnalytics(c echo.Context) error {
	conference := h.completedRevenue(&models.Registration{})
	book := h.completedRevenue(&models.BookPurchase{})
	training := h.completedRevenue(&models.TrainingEnrollment{})
	morelife := h.completedRevenue(&models.MoreLifeAssessment{})

	return c.JSON(http.StatusOK, map[string]float64{
		"conference_revenue": conference,
		"book_revenue":       book,
		"training_revenue":   training,
		"morelife_revenue":   morelife,
		"total_revenue":      conference + book + training + morelife,
	})
}

// findByID loads a record by its numeric path parameter
func (h *AdminHandler) findByID(c echo.Context, param string, dest interface{}, notFoundMsg string) error {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid id")
	}
	if err := h.db.First(dest, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	}
	return nil
}

// ---- Conferences ----

type conferenceRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Fee         float64 `json:"fee"`
	ForWhom     string  `json:"forWhom"`
	IsActive    bool    `json:"isActive"`
}

func (h *AdminHandler) CreateConference(c echo.Context) error {
	var req conferenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	conference := models.Conference{
		Title: req.Title, Description: req.Description, Date: req.Date,
		Location: req.Location, Fee: req.Fee, ForWhom: req.ForWhom, IsActive: req.IsActive,
	}
	if err := h.db.Create(&conference).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create conference")
	}
	return c.JSON(http.StatusOK, conference)
}

func (h *AdminHandler) ListConferences(c echo.Context) error {
	var conferences []models.Conference
	if err := h.db.Find(&conferences).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch conferences")
	}
	return c.JSON(http.StatusOK, conferences)
}

func (h *AdminHandler) UpdateConference(c echo.Context) error {
	var conference models.Conference
	if err := h.findByID(c, "conference_id", &conference, "Conference not found"); err != nil {
		return err
	}
	var req conferenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updates := models.Conference{
		Title: req.Title, Description: req.Description, Date: req.Date,
		Location: req.Location, Fee: req.Fee, ForWhom: req.ForWhom, IsActive: req.IsActive,
	}
	if err := h.db.Model(&conference).Select("title", "description", "date", "location", "fee", "for_whom", "is_active").Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update conference")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Conference updated successfully"})
}

func (h *AdminHandler) DeleteConference(c echo.Context) error {
	var conference models.Conference
	if err := h.findByID(c, "conference_id", &conference, "Conference not found"); err != nil {
		return err
	}
	if err := h.db.Delete(&conference).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete conference")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Conference deleted successfully"})
}

// ---- Team members ----

type teamMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Credentials string `json:"credentials"`
	Bio         string `json:"bio"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

func (h *AdminHandler) CreateTeamMember(c echo.Context) error {
	var req teamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	member := models.TeamMember{
		Name: req.Name, Title: req.Title, Credentials: req.Credentials,
		Bio: req.Bio, Image: req.Image, Order: req.Order,
	}
	if err := h.db.Create(&member).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create team member")
	}
	return c.JSON(http.StatusOK, member)
}

func (h *AdminHandler) ListTeamMembers(c echo.Context) error {
	var members []models.TeamMember
	if err := h.db.Order(`"order" asc`).Find(&members).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch team members")
	}
	return c.JSON(http.StatusOK, members)
}

func (h *AdminHandler) UpdateTeamMember(c echo.Context) error {
	var member models.TeamMember
	if err := h.findByID(c, "member_id", &member, "Team member not found"); err != nil {
		return err
	}
	var req teamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updates := models.TeamMember{
		Name: req.Name, Title: req.Title, Credentials: req.Credentials,
		Bio: req.Bio, Image: req.Image, Order: req.Order,
	}
	if err := h.db.Model(&member).Select("name", "title", "credentials", "bio", "image", "order").Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update team member")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Team member updated successfully"})
}

func (h *AdminHandler) DeleteTeamMember(c echo.Context) error {
	var member models.TeamMember
	if err := h.findByID(c, "member_id", &member, "Team member not found"); err != nil {
		return err
	}
	if err := h.db.Delete(&member).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete team member")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Team member deleted successfully"})
}

// ---- Projects ----

type projectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Status      string `json:"status"`
}

func (h *AdminHandler) CreateProject(c echo.Context) error {
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	project := models.Project{Title: req.Title, Description: req.Description, Year: req.Year, Status: req.Status}
	if err := h.db.Create(&project).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create project")
	}
	return c.JSON(http.StatusOK, project)
}

func (h *AdminHandler) ListProjects(c echo.Context) error {
	var projects []models.Project
	if err := h.db.Find(&projects).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch projects")
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *AdminHandler) UpdateProject(c echo.Context) error {
	var project models.Project
	if err := h.findByID(c, "project_id", &project, "Project not found"); err != nil {
		return err
	}
	var req projectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updates := models.Project{Title: req.Title, Description: req.Description, Year: req.Year, Status: req.Status}
	if err := h.db.Model(&project).Select("title", "description", "year", "status").Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update project")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project updated successfully"})
}

func (h *AdminHandler) DeleteProject(c echo.Context) error {
	var project models.Project
	if err := h.findByID(c, "project_id", &project, "Project not found"); err != nil {
		return err
	}
	if err := h.db.Delete(&project).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete project")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// ---- Announcements ----

type announcementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Type     string `json:"type"`
	IsActive bool   `json:"isActive"`
}

func (h *AdminHandler) CreateAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	announcement := models.Announcement{Title: req.Title, Content: req.Content, Type: req.Type, IsActive: req.IsActive}
	if err := h.db.Create(&announcement).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create announcement")
	}
	return c.JSON(http.StatusOK, announcement)
}

func (h *AdminHandler) ListAnnouncements(c echo.Context) error {
	var announcements []models.Announcement
	if err := h.db.Find(&announcements).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch announcements")
	}
	return c.JSON(http.StatusOK, announcements)
}

func (h *AdminHandler) UpdateAnnouncement(c echo.Context) error {
	var announcement models.Announcement
	if err := h.findByID(c, "announcement_id", &announcement, "Announcement not found"); err != nil {
		return err
	}
	var req announcementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updates := models.Announcement{Title: req.Title, Content: req.Content, Type: req.Type, IsActive: req.IsActive}
	if err := h.db.Model(&announcement).Select("title", "content", "type", "is_active").Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update announcement")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Announcement updated successfully"})
}

func (h *AdminHandler) DeleteAnnouncement(c echo.Context) error {
	var announcement models.Announcement
	if err := h.findByID(c, "announcement_id", &announcement, "Announcement not found"); err != nil {
		return err
	}
	if err := h.db.Delete(&announcement).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete announcement")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}

// ---- Books ----

type bookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Author      string  `json:"author" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image"`
	PdfURL      string  `json:"pdfUrl"`
	IsPaid      bool    `json:"isPaid"`
	Category    string  `json:"category"`
}

func (h *AdminHandler) CreateBook(c echo.Context) error {
	var req bookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book := models.Book{
		Title: req.Title, Description: req.Description, Author: req.Author,
		Price: req.Price, Image: req.Image, PdfURL: req.PdfURL,
		IsPaid: req.IsPaid, Category: req.Category,
	}
	if err := h.db.Create(&book).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create book")
	}
	h.invalidate(c.Request().Context(), bookListCacheKey)
	return c.JSON(http.StatusOK, book)
}

func (h *AdminHandler) UpdateBook(c echo.Context) error {
	var book models.Book
	if err := h.findByID(c, "book_id", &book, "Book not found"); err != nil {
		return err
	}
	var req bookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updates := models.Book{
		Title: req.Title, Description: req.Description, Author: req.Author,
		Price: req.Price, Image: req.Image, PdfURL: req.PdfURL,
		IsPaid: req.IsPaid, Category: req.Category,
	}
	if err := h.db.Model(&book).Select("title", "description", "author", "price", "image", "pdf_url", "is_paid", "category").Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update book")
	}
	h.invalidate(c.Request().Context(), bookListCacheKey)
	return c.JSON(http.StatusOK, map[string]string{"message": "Book updated successfully"})
}

func (h *AdminHandler) DeleteBook(c echo.Context) error {
	var book models.Book
	if err := h.findByID(c, "book_id", &book, "Book not found"); err != nil {
		return err
	}
	if err := h.db.Delete(&book).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete book")
	}
	h.invalidate(c.Request().Context(), bookListCacheKey)
	return c.JSON(http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}

// ---- Training programs ----

type trainingProgramRequest struct {
	Title          string   `json:"title" validate:"required"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Duration       string   `json:"duration"`
	Fee            float64  `json:"fee" validate:"gte=0"`
	Objectives     []string `json:"objectives"`
	TargetAudience string   `json:"targetAudience"`
	IsActive       bool     `json:"isActive"`
}

func (h *AdminHandler) CreateTrainingProgram(c echo.Context) error {
	var req trainingProgramRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	program := models.TrainingProgram{
		Title: req.Title, Category: req.Category, Description: req.Description,
		Duration: req.Duration, Fee: req.Fee, Objectives: encodeObjectives(req.Objectives),
		TargetAudience: req.TargetAudience, IsActive: req.IsActive,
	}
	if err := h.db.Create(&program).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create training program")
	}
	h.invalidate(c.Request().Context(), programListCacheKey)
	return c.JSON(http.StatusOK, program)
}

func (h *AdminHandler) ListTrainingPrograms(c echo.Context) error {
	var programs []models.TrainingProgram
	if err := h.db.Find(&programs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch training programs")
	}
	return c.JSON(http.StatusOK, programs)
}

func (h *AdminHandler) UpdateTrainingProgram(c echo.Context) error {
	var program models.TrainingProgram
	if err := h.findByID(c, "training_id", &program, "Training program not found"); err != nil {
		return err
	}
	var req trainingProgramRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updates := models.TrainingProgram{
		Title: req.Title, Category: req.Category, Description: req.Description,
		Duration: req.Duration, Fee: req.Fee, Objectives: encodeObjectives(req.Objectives),
		TargetAudience: req.TargetAudience, IsActive: req.IsActive,
	}
	if err := h.db.Model(&program).Select("title", "category", "description", "duration", "fee", "objectives", "target_audience", "is_active").Updates(updates).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update training program")
	}
	h.invalidate(c.Request().Context(), programListCacheKey)
	return c.JSON(http.StatusOK, map[string]string{"message": "Training program updated successfully"})
}

func (h *AdminHandler) DeleteTrainingProgram(c echo.Context) error {
	var program models.TrainingProgram
	if err := h.findByID(c, "training_id", &program, "Training program not found"); err != nil {
		return err
	}
	if err := h.db.Delete(&program).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete training program")
	}
	h.invalidate(c.Request().Context(), programListCacheKey)
	return c.JSON(http.StatusOK, map[string]string{"message": "Training program deleted successfully"})
}
