package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubsessions/internal/delivery/http/helpers"
	"clubsessions/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCreateBody = `{
	"name": "Morning Drills",
	"date": "2024-08-20",
	"time": "07:30",
	"duration": 60,
	"location": "Riverside Park",
	"description": "Third-shot drops.",
	"price": 8,
	"type": "Training",
	"skillLevel": "Intermediate",
	"host": "Alex",
	"participants": {"max": 4}
}`

func TestSessionController_CreateSession(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "created", body: validCreateBody, wantStatus: http.StatusCreated},
		{name: "malformed json", body: `{"name":`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "missing fields", body: `{"name":"x"}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "unknown type", body: strings.Replace(validCreateBody, `"Training"`, `"Clinic"`, 1), wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "zero capacity", body: strings.Replace(validCreateBody, `"max": 4`, `"max": 0`, 1), wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "service rejects draft", body: validCreateBody, serviceErr: fmt.Errorf("%w: nope", domain.ErrInvalidDraft), wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "service failure", body: validCreateBody, serviceErr: errors.New("assign club: no clubs"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSessionService{created: testSession(9), createErr: tt.serviceErr}
			c := NewSessionController(testLogger(), svc)
			req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			c.CreateSession(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decode[*domain.Session](t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			assert.Nil(t, env.Error)
			assert.Equal(t, 9, env.Data.ID)
			require.NotNil(t, svc.lastDraft)
			assert.Equal(t, "Morning Drills", svc.lastDraft.Name)
			assert.Equal(t, 4, svc.lastDraft.MaxParticipants)
			assert.Equal(t, domain.PrivacyPublic, svc.lastDraft.Privacy, "privacy defaults to Public")
			assert.Equal(t, domain.SessionTypeTraining, svc.lastDraft.Type)
		})
	}
}

func TestSessionController_ListSessions(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		serviceErr error
		wantStatus int
		wantFilter domain.Filters
		wantPage   domain.PaginationParams
	}{
		{
			name:       "defaults",
			wantStatus: http.StatusOK,
			wantFilter: domain.DefaultFilters(),
			wantPage:   domain.PaginationParams{Page: 1, PageSize: helpers.DefaultPageSize},
		},
		{
			name:       "all filters",
			query:      "?location=court&date=2024-08-15&time=Evening&sessionType=Round+Robin&skillLevel=All+Levels&page=2&page_size=5",
			wantStatus: http.StatusOK,
			wantFilter: domain.Filters{
				Location:    "court",
				Date:        "2024-08-15",
				Time:        domain.TimeEvening,
				SessionType: domain.SessionTypeRoundRobin,
				SkillLevel:  domain.SkillLevelAll,
			},
			wantPage: domain.PaginationParams{Page: 2, PageSize: 5},
		},
		{name: "invalid filter", query: "?time=Brunch", serviceErr: fmt.Errorf("%w: unknown time", domain.ErrInvalidFilter), wantStatus: http.StatusBadRequest},
		{name: "service failure", serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSessionService{list: []*domain.Session{testSession(1), testSession(2)}, total: 7, browseErr: tt.serviceErr}
			c := NewSessionController(testLogger(), svc)
			req := httptest.NewRequest(http.MethodGet, "/sessions"+tt.query, nil)
			rr := httptest.NewRecorder()

			c.ListSessions(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decode[[]*domain.Session](t, rr)
			if tt.serviceErr != nil {
				require.NotNil(t, env.Error)
				return
			}
			assert.Equal(t, tt.wantFilter, svc.lastFilter)
			assert.Equal(t, tt.wantPage, svc.lastPage)
			assert.Len(t, env.Data, 2)
			require.NotNil(t, env.Meta)
			assert.Equal(t, 7, env.Meta.Total)
			assert.Equal(t, tt.wantPage.Page, env.Meta.Page)
		})
	}
}

func TestSessionController_GetSession(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "found", id: "4", wantStatus: http.StatusOK},
		{name: "not found", id: "5", wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "not a number", id: "abc", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "zero", id: "0", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "service failure", id: "4", serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSessionService{byID: map[int]*domain.Session{4: testSession(4)}, getErr: tt.serviceErr}
			c := NewSessionController(testLogger(), svc)
			req := httptest.NewRequest(http.MethodGet, "/sessions/"+tt.id, nil)
			req.SetPathValue("sessionID", tt.id)
			rr := httptest.NewRecorder()

			c.GetSession(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decode[*domain.Session](t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			assert.Equal(t, 4, env.Data.ID)
		})
	}
}
