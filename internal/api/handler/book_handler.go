package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// BookHandler handles catalog routes. Reads are public; writes sit behind the
// admin gate in the router.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

type createBookRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	OldPrice    float64 `json:"oldPrice"    validate:"gte=0"`
	NewPrice    float64 `json:"newPrice"    validate:"gte=0,ltfield=OldPrice"`
	CoverImage  string  `json:"coverImage"  validate:"required"`
	Trending    bool    `json:"trending"`
}

type updateBookRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	OldPrice    *float64 `json:"oldPrice"`
	NewPrice    *float64 `json:"newPrice"`
	CoverImage  string   `json:"coverImage"`
	Trending    *bool    `json:"trending"`
}

type bookEnvelope struct {
	Message string                  `json:"message"`
	Book    *ports.BookWithCategory `json:"book"`
}

type bookListResponse struct {
	Message string                   `json:"message"`
	Books   []ports.BookWithCategory `json:"books"`
}

// List handles GET /api/books. Only active titles are returned.
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookListResponse{Message: "books retrieved", Books: books})
}

// Get handles GET /api/books/:id.
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookEnvelope{Message: "book retrieved", Book: book})
}

// Create handles POST /api/books.
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.service.Create(c.Request().Context(), ports.CreateBookInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.Category,
		OldPrice:    req.OldPrice,
		NewPrice:    req.NewPrice,
		CoverImage:  req.CoverImage,
		Trending:    req.Trending,
	})
	if err != nil {
		return err
	}

	metrics.BooksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, bookEnvelope{Message: "book created", Book: book})
}

// Update handles PUT /api/books/:id. Omitted fields keep their stored values;
// the price invariant is re-checked against the merged document.
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	book, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateBookInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.Category,
		OldPrice:    req.OldPrice,
		NewPrice:    req.NewPrice,
		CoverImage:  req.CoverImage,
		Trending:    req.Trending,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookEnvelope{Message: "book updated", Book: book})
}

// Delete handles DELETE /api/books/:id. Soft delete only.
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "book deactivated"})
}
