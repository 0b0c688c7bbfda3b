package handlers

import (
	"context"
	"errors"
	"net/http"

	"eris-api/internal/database"
	"eris-api/internal/repository"
	"eris-api/internal/schema"
)

// DetailsStore is the data access the details handler depends on.
type DetailsStore interface {
	List(ctx context.Context, assessmentID *int64) ([]database.Row, error)
	Get(ctx context.Context, id int64) (database.Row, error)
	Create(ctx context.Context, fields []schema.Field) (database.Row, error)
	Update(ctx context.Context, id int64, fields []schema.Field) (database.Row, error)
}

// DetailsHandler handles AssessmentDetails HTTP requests.
type DetailsHandler struct {
	store DetailsStore
}

// NewDetailsHandler creates a new details handler
func NewDetailsHandler(store DetailsStore) *DetailsHandler {
	return &DetailsHandler{store: store}
}

// List returns detail rows
// @Summary List assessment details
// @Description Detail rows ascending by identity, optionally for one assessment
// @Tags AssessmentDetails
// @Produce json
// @Param assessmentId query int false "Filter by assessment"
// @Success 200 {array} models.AssessmentDetails
// @Router /AssessmentDetails [get]
func (h *DetailsHandler) List(w http.ResponseWriter, r *http.Request) {
	assessmentID, ok := queryAssessmentID(r)
	if !ok {
		errorResponse(w, http.StatusBadRequest, "Invalid assessmentId")
		return
	}

	rows, err := h.store.List(r.Context(), assessmentID)
	if err != nil {
		serverError(w, "details.list", err)
		return
	}
	JSONResponse(w, http.StatusOK, rows)
}

// Get returns one detail row
// @Summary Get assessment details
// @Tags AssessmentDetails
// @Produce json
// @Param id path int true "Details ID"
// @Success 200 {object} models.AssessmentDetails
// @Failure 404 "Not found"
// @Router /AssessmentDetails/{id} [get]
func (h *DetailsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusBadRequest, "Invalid details ID")
		return
	}

	row, err := h.store.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		serverError(w, "details.get", err)
		return
	}
	JSONResponse(w, http.StatusOK, row)
}

// Create inserts a detail row
// @Summary Create assessment details
// @Description Inserts exactly the validated fields the caller sent
// @Tags AssessmentDetails
// @Accept json
// @Produce json
// @Success 201 {object} models.AssessmentDetails
// @Failure 400 {object} map[string]string
// @Router /AssessmentDetails [post]
func (h *DetailsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := schema.Details.ValidatePartial(body)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !hasForeignKey(fields) {
		errorResponse(w, http.StatusBadRequest, "AssessmentID is required")
		return
	}

	row, err := h.store.Create(r.Context(), fields)
	if err != nil {
		serverError(w, "details.create", err)
		return
	}
	JSONResponse(w, http.StatusCreated, row)
}

// Update writes a partial detail row
// @Summary Update assessment details
// @Description Updates exactly the validated fields the caller sent
// @Tags AssessmentDetails
// @Accept json
// @Produce json
// @Param id path int true "Details ID"
// @Success 200 {object} models.AssessmentDetails
// @Failure 400 {object} map[string]string
// @Failure 404 "Not found"
// @Router /AssessmentDetails/{id} [put]
func (h *DetailsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errorResponse(w, http.StatusBadRequest, "Invalid details ID")
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := schema.Details.ValidatePartial(body)
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
		serverError(w, "details.update", err)
		return
	}
	JSONResponse(w, http.StatusOK, row)
}

func hasForeignKey(fields []schema.Field) bool {
	for _, f := range fields {
		if f.Column.Name == schema.Details.ForeignKey {
			return f.Value != nil
		}
	}
	return false
}
