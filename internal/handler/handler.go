package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/library"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler carries the injected dependencies for every route. The library
// owns the catalog handle; the raw DB is only used for account records.
type Handler struct {
	Lib *library.Library
	DB  *gorm.DB
}

// New creates a Handler.
func New(lib *library.Library, db *gorm.DB) *Handler {
	return &Handler{Lib: lib, DB: db}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, library.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, library.ErrDuplicateName), errors.Is(err, library.ErrAlreadyPresent):
		status = http.StatusConflict
	case errors.Is(err, library.ErrEmptyName), errors.Is(err, library.ErrInvalidScore):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// pageParams reads the page/limit query parameters with the usual bounds.
func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "25"))
	if err != nil || limit < 1 {
		limit = 25
	}
	if limit > 100 {
		limit = 100 // Max limit
	}
	return page, limit
}
