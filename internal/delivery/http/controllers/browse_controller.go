package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"clubsessions/internal/delivery/http/helpers"
	"clubsessions/internal/domain"
)

// FilterUpdateRequest is the request body for PATCH /browse/filters. Omitted
// fields keep their current value.
type FilterUpdateRequest struct {
	Location    *string             `json:"location,omitempty"`
	Date        *string             `json:"date,omitempty"`
	Time        *domain.TimeOfDay   `json:"time,omitempty"`
	SessionType *domain.SessionType `json:"sessionType,omitempty"`
	SkillLevel  *domain.SkillLevel  `json:"skillLevel,omitempty"`
}

// Validate checks the date layout. An empty date clears the filter. Enumerated
// values are checked against the domain when the update is applied.
func (f FilterUpdateRequest) Validate() []string {
	if f.Date == nil || *f.Date == "" {
		return nil
	}
	return helpers.ValidateVar("date", *f.Date, "datetime="+domain.DateLayout)
}

func (f FilterUpdateRequest) toUpdate() domain.FilterUpdate {
	return domain.FilterUpdate{
		Location:    f.Location,
		Date:        f.Date,
		Time:        f.Time,
		SessionType: f.SessionType,
		SkillLevel:  f.SkillLevel,
	}
}

// FiltersSuccessResponse is the success response envelope for the filter endpoints.
type FiltersSuccessResponse struct {
	Data  domain.Filters    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VisibleSessionsSuccessResponse is the success response envelope for GET /browse/sessions (200).
type VisibleSessionsSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BrowseController exposes the stateful browsing intents: change filters,
// read the visible list and select a session.
type BrowseController struct {
	Logger  *slog.Logger
	Service domain.BrowseService
}

func NewBrowseController(logger *slog.Logger, svc domain.BrowseService) *BrowseController {
	return &BrowseController{
		Logger:  logger,
		Service: svc,
	}
}

// GetFilters godoc
// @Summary Get current filters
// @Tags browse
// @Produce json
// @Success 200 {object} controllers.FiltersSuccessResponse
// @Router /browse/filters [get]
func (c *BrowseController) GetFilters(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Filters())
}

// ChangeFilters godoc
// @Summary Change filters
// @Description Merges the supplied fields into the current filters; omitted fields are kept.
// @Tags browse
// @Accept json
// @Produce json
// @Param filters body FilterUpdateRequest true "Partial filters"
// @Success 200 {object} controllers.FiltersSuccessResponse "data contains the merged filters"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /browse/filters [patch]
func (c *BrowseController) ChangeFilters(w http.ResponseWriter, r *http.Request) {
	var req FilterUpdateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	filters, err := c.Service.ChangeFilters(req.toUpdate())
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, filters)
}

// ResetFilters godoc
// @Summary Reset filters
// @Tags browse
// @Produce json
// @Success 200 {object} controllers.FiltersSuccessResponse "data contains the default filters"
// @Router /browse/filters [delete]
func (c *BrowseController) ResetFilters(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.ResetFilters())
}

// VisibleSessions godoc
// @Summary List visible sessions
// @Description Returns the sessions matching the current filters, ordered by date and time.
// @Tags browse
// @Produce json
// @Success 200 {object} controllers.VisibleSessionsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /browse/sessions [get]
func (c *BrowseController) VisibleSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.Visible(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// SelectSession godoc
// @Summary Select a session
// @Description Marks the session shown in the detail view.
// @Tags browse
// @Produce json
// @Param sessionID path int true "Session ID"
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /browse/selection/{sessionID} [put]
func (c *BrowseController) SelectSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	session, err := c.Service.Select(r.Context(), id)
	if err != nil {
		c.writeSelectionError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// GetSelection godoc
// @Summary Get the selected session
// @Tags browse
// @Produce json
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /browse/selection [get]
func (c *BrowseController) GetSelection(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.Selected(r.Context())
	if err != nil {
		c.writeSelectionError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// ClearSelection godoc
// @Summary Clear the selection
// @Tags browse
// @Success 204
// @Router /browse/selection [delete]
func (c *BrowseController) ClearSelection(w http.ResponseWriter, r *http.Request) {
	c.Service.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (c *BrowseController) writeSelectionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
	case errors.Is(err, domain.ErrNoSelection):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
