package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "clubsessions/docs"
	"clubsessions/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	sessionController *controllers.SessionController,
	browseController *controllers.BrowseController,
	clubController *controllers.ClubController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Sessions
	mux.HandleFunc("GET /sessions", sessionController.ListSessions)
	mux.HandleFunc("POST /sessions", sessionController.CreateSession)
	mux.HandleFunc("GET /sessions/{sessionID}", sessionController.GetSession)

	// Browsing state
	mux.HandleFunc("GET /browse/filters", browseController.GetFilters)
	mux.HandleFunc("PATCH /browse/filters", browseController.ChangeFilters)
	mux.HandleFunc("DELETE /browse/filters", browseController.ResetFilters)
	mux.HandleFunc("GET /browse/sessions", browseController.VisibleSessions)
	mux.HandleFunc("GET /browse/selection", browseController.GetSelection)
	mux.HandleFunc("PUT /browse/selection/{sessionID}", browseController.SelectSession)
	mux.HandleFunc("DELETE /browse/selection", browseController.ClearSelection)

	// Clubs
	mux.HandleFunc("GET /clubs", clubController.ListClubs)

	mux.HandleFunc("GET /healthz", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
