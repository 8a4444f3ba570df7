package controllers

import (
	"log/slog"
	"net/http"

	"clubsessions/internal/delivery/http/helpers"
	"clubsessions/internal/domain"
)

// ListClubsSuccessResponse is the success response envelope for GET /clubs (200).
type ListClubsSuccessResponse struct {
	Data  []domain.Club     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ClubController struct {
	Logger *slog.Logger
	Repo   domain.ClubRepository
}

func NewClubController(logger *slog.Logger, repo domain.ClubRepository) *ClubController {
	return &ClubController{Logger: logger, Repo: repo}
}

// ListClubs godoc
// @Summary List clubs
// @Description Returns the reference clubs sessions can belong to.
// @Tags clubs
// @Produce json
// @Success 200 {object} controllers.ListClubsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clubs [get]
func (c *ClubController) ListClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := c.Repo.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, clubs)
}

// HealthResponse is the data payload for GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /healthz [get]
func Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
