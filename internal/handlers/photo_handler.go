package handlers

import (
	"context"
	"errors"
	"net/http"

	"eris-api/internal/database"
	"eris-api/internal/repository"
	"eris-api/internal/schema"
)

// PhotoStore is the data access the photo handler depends on. Photos are
// create- and read-only; deletion and binary transfer are not exposed.
type PhotoStore interface {
	List(ctx context.Context, assessmentID *int64) ([]database.Row, error)
	Get(ctx context.Context, id int64) (database.Row, error)
	Create(ctx context.Context, fields []schema.Field) (database.Row, error)
}

// PhotoHandler handles photo metadata HTTP requests.
type PhotoHandler struct {
	store PhotoStore
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(store PhotoStore) *PhotoHandler {
	return &PhotoHandler{store: store}
}

// List returns photo metadata
// @Summary List photos
// @Description Photo metadata descending by identity, optionally for one assessment
// @Tags Photo
// @Produce json
// @Param assessmentId query int false "Filter by assessment"
// @Success 200 {array} models.Photo
// @Router /Photo [get]
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	assessmentID, ok := queryAssessmentID(r)
	if !ok {
		errorResponse(w, http.StatusBadRequest, "Invalid assessmentId")
		return
	}

	rows, err := h.store.List(r.Context(), assessmentID)
	if err != nil {
		serverError(w, "photo.list", err)
		return
	}
	JSONResponse(w, http.StatusOK, rows)
}

// Get returns one photo row
// @Summary Get a photo
// @Tags Photo
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} models.Photo
// @Failure 404 "Not found"
// @Router /Photo/{id} [get]
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusBadRequest, "Invalid photo ID")
		return
	}

	row, err := h.store.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		serverError(w, "photo.get", err)
		return
	}
	JSONResponse(w, http.StatusOK, row)
}

// Create inserts a photo metadata row
// @Summary Create a photo record
// @Tags Photo
// @Accept json
// @Produce json
// @Success 201 {object} models.Photo
// @Failure 400 {object} map[string]string
// @Router /Photo [post]
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// fixed three-column insert; absent fields are stored as nulls
	fields, err := schema.Photo.ValidateAll(body)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	row, err := h.store.Create(r.Context(), fields)
	if err != nil {
		serverError(w, "photo.create", err)
		return
	}
	JSONResponse(w, http.StatusCreated, row)
}
