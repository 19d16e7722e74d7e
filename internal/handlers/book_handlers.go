package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nigerland_backend/internal/models"
	"nigerland_backend/internal/services"
)

const bookListCacheKey = "books:all"

// BookHandler handles the e-book catalog and purchases
type BookHandler struct {
	db       *gorm.DB
	cache    *services.RedisCache
	payments *services.PaymentService
	mailer   *services.Mailer
	refs     *services.ReferenceGenerator
}

func NewBookHandler(db *gorm.DB, cache *services.RedisCache, payments *services.PaymentService, mailer *services.Mailer, refs *services.ReferenceGenerator) *BookHandler {
	return &BookHandler{db: db, cache: cache, payments: payments, mailer: mailer, refs: refs}
}

// List returns the book catalog, cached for five minutes
func (h *BookHandler) List(c echo.Context) error {
	fetch := func() ([]models.Book, error) {
		var books []models.Book
		err := h.db.Order("created_at desc").Find(&books).Error
		return books, err
	}

	var books []models.Book
	var err error
	if h.cache != nil {
		books, err = services.GetOrSet(h.cache, c.Request().Context(), bookListCacheKey, 5*time.Minute, fetch)
	} else {
		books, err = fetch()
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch books")
	}
	return c.JSON(http.StatusOK, books)
}

// Get returns a single book
func (h *BookHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("book_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid book id")
	}

	var book models.Book
	if err := h.db.First(&book, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found")
	}
	return c.JSON(http.StatusOK, book)
}

type bookPurchaseRequest struct {
	BookID   uint   `json:"bookId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// Purchase creates a pending book purchase. The amount is taken from
// the book's current price, never from the client.
func (h *BookHandler) Purchase(c echo.Context) error {
	var req bookPurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var book models.Book
	if err := h.db.First(&book, req.BookID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Book not found")
	}

	purchase := models.BookPurchase{
		PurchaseID:    h.refs.PublicRef("BP"),
		BookID:        book.ID,
		Email:         req.Email,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Amount:        book.Price,
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := h.db.Create(&purchase).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create book purchase")
	}

	log.Printf("New book purchase: %s", purchase.PurchaseID)
	return c.JSON(http.StatusOK, purchase)
}

// InitializePayment starts a checkout for a pending purchase
func (h *BookHandler) InitializePayment(c echo.Context) error {
	var purchase models.BookPurchase
	err := h.db.Where("purchase_id = ?", c.Param("purchase_id")).First(&purchase).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Purchase not found")
	}

	result, err := h.payments.Initiate(c.Request().Context(), &purchase, nil)
	if err != nil {
		return gatewayHTTPError(err)
	}

	return c.JSON(http.StatusOK, InitiateResponse{
		Status:           true,
		AuthorizationURL: result.AuthorizationURL,
		Reference:        result.Reference,
	})
}

// VerifyPayment checks a book payment reference with the gateway and,
// on first completion, emails the download link.
func (h *BookHandler) VerifyPayment(c echo.Context) error {
	var req PaymentVerifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var purchase models.BookPurchase
	outcome, err := h.payments.Verify(c.Request().Context(), req.Reference, &purchase, func() {
		var book models.Book
		if err := h.db.First(&book, purchase.BookID).Error; err != nil {
			log.Printf("Book %d missing for purchase %s, skipping confirmation email", purchase.BookID, purchase.PurchaseID)
			return
		}
		h.mailer.SendBookPurchaseConfirmation(purchase.Email, purchase.FullName, book.Title, book.PdfURL)
	})
	if err != nil {
		return gatewayHTTPError(err)
	}

	if !outcome.Verified {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": false, "message": outcome.Message})
	}
	resp := map[string]interface{}{"status": true, "message": outcome.Message}
	if outcome.Matched {
		resp["purchase_id"] = purchase.PurchaseID
	}
	return c.JSON(http.StatusOK, resp)
}

// ListPurchases returns all purchases, newest first (admin only)
func (h *BookHandler) ListPurchases(c echo.Context) error {
	var purchases []models.BookPurchase
	if err := h.db.Order("created_at desc").Find(&purchases).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch purchases")
	}
	return c.JSON(http.StatusOK, purchases)
}

// ListUserPurchases returns a customer's completed purchases so the
// front-end can re-offer download links.
func (h *BookHandler) ListUserPurchases(c echo.Context) error {
	var purchases []models.BookPurchase
	err := h.db.Where("email = ? AND payment_status = ?", c.Param("email"), models.PaymentStatusCompleted).
		Find(&purchases).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch purchases")
	}
	return c.JSON(http.StatusOK, purchases)
}
