package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"catalog-service/app/domain"
	"catalog-service/app/port"
	appvalidator "catalog-service/app/utils/validator"
)

// CreateMovieRequest is the POST /catalog body
type CreateMovieRequest struct {
	Title  string `json:"title" validate:"required,notblank"`
	Genres string `json:"genres"`
}

// MovieResponse wraps a persisted movie
type MovieResponse struct {
	Message string       `json:"message"`
	Movie   domain.Movie `json:"movie"`
}

// CatalogHandler handles catalog HTTP requests
type CatalogHandler struct {
	catalog port.CatalogUsecase
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog port.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger.With("component", "catalog_handler"),
	}
}

// List returns the catalog, optionally filtered by the category query
// parameter.
func (h *CatalogHandler) List(c echo.Context) error {
	category := c.QueryParam("category")

	ctx := c.Request().Context()
	movies, err := h.catalog.List(ctx, category)
	if err != nil {
		h.logger.Error("failed to list catalog", "category", category, "error", err)
		status, message := statusForError(err)
		return c.JSON(status, ErrorResponse{Error: message})
	}

	return c.JSON(http.StatusOK, movies)
}

// Create inserts a movie and returns it with its assigned identifier.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		if verr, ok := err.(*appvalidator.ValidationError); ok {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":  "validation failed",
				"fields": verr.Errors,
			})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed"})
	}

	movie, err := domain.NewMovie(req.Title, req.Genres)
	if err != nil {
		status, message := statusForError(err)
		return c.JSON(status, ErrorResponse{Error: message})
	}

	ctx := c.Request().Context()
	inserted, err := h.catalog.Insert(ctx, movie)
	if err != nil {
		h.logger.Error("failed to insert movie", "title", movie.Title, "error", err)
		status, message := statusForError(err)
		return c.JSON(status, ErrorResponse{Error: message})
	}

	return c.JSON(http.StatusOK, MovieResponse{
		Message: "movie added",
		Movie:   *inserted,
	})
}
