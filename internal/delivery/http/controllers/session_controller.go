package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"clubsessions/internal/delivery/http/helpers"
	"clubsessions/internal/domain"
)

// CreateSessionRequest is the request body for POST /sessions.
type CreateSessionRequest struct {
	Name         string                    `json:"name" validate:"required,max=120"`
	Date         string                    `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string                    `json:"time" validate:"required,datetime=15:04"`
	Duration     int                       `json:"duration" validate:"gt=0"`
	Location     string                    `json:"location" validate:"required"`
	Description  string                    `json:"description" validate:"required"`
	Price        float64                   `json:"price" validate:"gte=0"`
	Type         domain.SessionType        `json:"type" validate:"required,session_type"`
	SkillLevel   domain.SkillLevel         `json:"skillLevel" validate:"required,skill_level"`
	Host         string                    `json:"host" validate:"required"`
	Privacy      domain.Privacy            `json:"privacy" validate:"omitempty,privacy"`
	Participants CreateSessionParticipants `json:"participants"`
	// ClubID is honoured only by the "preferred" club assignment policy.
	ClubID int `json:"clubId,omitempty" validate:"gte=0"`
}

// CreateSessionParticipants carries the capacity of a new session.
type CreateSessionParticipants struct {
	Max int `json:"max" validate:"gte=1"`
}

// Validate implements helpers.Validator.
func (c CreateSessionRequest) Validate() []string {
	return helpers.ValidateStruct(c)
}

// ToDraft converts the request into a domain draft. Privacy defaults to Public.
func (c CreateSessionRequest) ToDraft() *domain.SessionDraft {
	privacy := c.Privacy
	if privacy == "" {
		privacy = domain.PrivacyPublic
	}
	return &domain.SessionDraft{
		Name:            c.Name,
		Date:            c.Date,
		Time:            c.Time,
		Duration:        c.Duration,
		Location:        c.Location,
		Description:     c.Description,
		Price:           c.Price,
		Type:            c.Type,
		SkillLevel:      c.SkillLevel,
		Host:            c.Host,
		Privacy:         privacy,
		MaxParticipants: c.Participants.Max,
		ClubID:          c.ClubID,
	}
}

// SessionSuccessResponse is the success response envelope for a single session.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSessionsSuccessResponse is the success response envelope for GET /sessions (200).
type ListSessionsSuccessResponse struct {
	Data  []*domain.Session      `json:"data"`
	Meta  helpers.PaginationMeta `json:"meta"`
	Error *helpers.APIError      `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSessions godoc
// @Summary List sessions
// @Description Returns the sessions matching every supplied filter, ordered by date and time. Omitted filters and the value "Any" match everything.
// @Tags sessions
// @Produce json
// @Param location query string false "Case-insensitive substring of the session location"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param time query string false "Time of day" Enums(Any, Morning, Afternoon, Evening, Night)
// @Param sessionType query string false "Session type" Enums(Any, Social, Training, Competition, Round Robin)
// @Param skillLevel query string false "Skill level" Enums(Any, Beginner, Intermediate, Advanced, All Levels)
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListSessionsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [get]
func (c *SessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	filters := FiltersFromQuery(r)
	page := helpers.ParsePagination(r)
	sessions, total, err := c.Service.Browse(r.Context(), filters, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONList(w, http.StatusOK, sessions, helpers.NewPaginationMeta(page.Page, page.PageSize, total))
}

// GetSession godoc
// @Summary Get a session
// @Description Returns the full details of one session.
// @Tags sessions
// @Produce json
// @Param sessionID path int true "Session ID"
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	session, err := c.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// CreateSession godoc
// @Summary Create a session
// @Description Creates a new session. The id, the club and participants.current (always 1, the host) are assigned by the server.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Create(r.Context(), req.ToDraft())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDraft) || errors.Is(err, domain.ErrOverCapacity) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// FiltersFromQuery reads the filter query parameters on top of domain.DefaultFilters.
func FiltersFromQuery(r *http.Request) domain.Filters {
	q := r.URL.Query()
	f := domain.DefaultFilters()
	f.Location = q.Get("location")
	f.Date = q.Get("date")
	if v := q.Get("time"); v != "" {
		f.Time = domain.TimeOfDay(v)
	}
	if v := q.Get("sessionType"); v != "" {
		f.SessionType = domain.SessionType(v)
	}
	if v := q.Get("skillLevel"); v != "" {
		f.SkillLevel = domain.SkillLevel(v)
	}
	return f
}

func sessionIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("sessionID"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid sessionID")
		return 0, false
	}
	return id, true
}
