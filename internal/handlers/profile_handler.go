package handlers

import (
	"context"
	"errors"
	"net/http"

	"eris-api/internal/database"
	"eris-api/internal/repository"
	"eris-api/internal/schema"
)

// ProfileStore is the data access the profile handler depends on.
type ProfileStore interface {
	List(ctx context.Context) ([]database.Row, error)
	Get(ctx context.Context, id int64) (database.Row, error)
	Create(ctx context.Context, fields []schema.Field) (database.Row, error)
	Update(ctx context.Context, id int64, fields []schema.Field) (database.Row, error)
}

// ProfileHandler handles AssessmentProfile HTTP requests.
type ProfileHandler struct {
	store ProfileStore
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(store ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// List returns all profiles
// @Summary List assessment profiles
// @Description All profiles, newest identity first; clients filter locally
// @Tags AssessmentProfile
// @Produce json
// @Success 200 {array} models.AssessmentProfile
// @Router /AssessmentProfile [get]
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.List(r.Context())
	if err != nil {
		serverError(w, "profile.list", err)
		return
	}
	JSONResponse(w, http.StatusOK, rows)
}

// Get returns one profile
// @Summary Get an assessment profile
// @Tags AssessmentProfile
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} models.AssessmentProfile
// @Failure 404 "Not found"
// @Router /AssessmentProfile/{id} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusBadRequest, "Invalid assessment ID")
		return
	}

	row, err := h.store.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		serverError(w, "profile.get", err)
		return
	}
	JSONResponse(w, http.StatusOK, row)
}

// Create inserts a profile
// @Summary Create an assessment profile
// @Description Allow-listed fields only; omitted fields are stored as null
// @Tags AssessmentProfile
// @Accept json
// @Produce json
// @Success 201 {object} models.AssessmentProfile
// @Failure 400 {object} map[string]string
// @Router /AssessmentProfile [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := schema.Profile.ValidateAll(body)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	row, err := h.store.Create(r.Context(), fields)
	if err != nil {
		serverError(w, "profile.create", err)
		return
	}
	JSONResponse(w, http.StatusCreated, row)
}

// Update overwrites a profile
// @Summary Update an assessment profile
// @Description Overwrites every allow-listed field; absent fields become null
// @Tags AssessmentProfile
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} models.AssessmentProfile
// @Failure 400 {object} map[string]string
// @Failure 404 "Not found"
// @Router /AssessmentProfile/{id} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusBadRequest, "Invalid assessment ID")
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := schema.Profile.ValidateAll(body)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	row, err := h.store.Update(r.Context(), id, fields)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		serverError(w, "profile.update", err)
		return
	}
	JSONResponse(w, http.StatusOK, row)
}
