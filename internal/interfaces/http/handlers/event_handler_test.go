package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"campus-hub.backend/internal/config"
	"campus-hub.backend/internal/domain/entities"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/interfaces/http/handlers"
	"campus-hub.backend/internal/usecases"
)

func newEventRouter(eventRepo *stubEventRepo, teamRepo *stubTeamRepo, actor uuid.UUID) *gin.Engine {
	registration := usecases.NewRegistrationUsecase(eventRepo, teamRepo, config.RegistrationConfig{
		MaxAttempts:        3,
		UniqueTeamNames:    true,
		SingleTeamPerEvent: true,
	})
	roster := usecases.NewRosterUsecase(eventRepo, teamRepo, &stubStudentRepo{students: []*entities.Student{}}, &stubCollegeRepo{colleges: []*entities.College{}}, 0)
	h := handlers.NewEventHandler(eventRepo, registration, roster)

	r := gin.New()
	r.GET("/events", h.ListEvents)
	r.GET("/events/:id", h.GetEvent)
	r.GET("/events/:id/roster", h.GetRoster)
	r.POST("/events/:id/join", asActor(actor), h.JoinEvent)
	return r
}

func TestEventHandler_ListEvents(t *testing.T) {
	eventRepo := &stubEventRepo{
		list:  []*entities.Event{{ID: uuid.New(), Name: "Hack Night", Status: entities.EventStatusOpen}},
		total: 1,
	}
	r := newEventRouter(eventRepo, &stubTeamRepo{}, uuid.New())

	w := doRequest(t, r, http.MethodGet, "/events?page=1&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items      []entities.Event `json:"items"`
		Pagination struct {
			TotalCount int64 `json:"totalCount"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Hack Night", body.Items[0].Name)
	assert.Equal(t, int64(1), body.Pagination.TotalCount)
}

func TestEventHandler_GetEvent(t *testing.T) {
	event := &entities.Event{ID: uuid.New(), Name: "Demo Day", Status: entities.EventStatusOpen}
	r := newEventRouter(&stubEventRepo{event: event}, &stubTeamRepo{}, uuid.New())

	w := doRequest(t, r, http.MethodGet, "/events/"+event.ID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Demo Day")
}

func TestEventHandler_GetEvent_NotFound(t *testing.T) {
	r := newEventRouter(&stubEventRepo{err: domainerrors.ErrNotFound}, &stubTeamRepo{}, uuid.New())

	w := doRequest(t, r, http.MethodGet, "/events/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestEventHandler_GetEvent_BadID(t *testing.T) {
	r := newEventRouter(&stubEventRepo{}, &stubTeamRepo{}, uuid.New())

	w := doRequest(t, r, http.MethodGet, "/events/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_JoinEvent(t *testing.T) {
	actor := uuid.New()
	event := &entities.Event{ID: uuid.New(), Status: entities.EventStatusOpen, Version: 0}
	eventRepo := &stubEventRepo{event: event}
	r := newEventRouter(eventRepo, &stubTeamRepo{teams: []*entities.Team{}}, actor)

	w := doRequest(t, r, http.MethodPost, "/events/"+event.ID.String()+"/join", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registered for event")
	assert.Equal(t, []uuid.UUID{actor}, eventRepo.event.Individuals)
}

func TestEventHandler_JoinEvent_Closed(t *testing.T) {
	actor := uuid.New()
	event := &entities.Event{ID: uuid.New(), Status: entities.EventStatusClosed}
	r := newEventRouter(&stubEventRepo{event: event}, &stubTeamRepo{teams: []*entities.Team{}}, actor)

	w := doRequest(t, r, http.MethodPost, "/events/"+event.ID.String()+"/join", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EVENT_CLOSED")
}

func TestEventHandler_JoinEvent_Full(t *testing.T) {
	actor := uuid.New()
	event := &entities.Event{
		ID:          uuid.New(),
		Status:      entities.EventStatusOpen,
		Capacity:    null.Int64From(1),
		Individuals: []uuid.UUID{uuid.New()},
	}
	r := newEventRouter(&stubEventRepo{event: event}, &stubTeamRepo{teams: []*entities.Team{}}, actor)

	w := doRequest(t, r, http.MethodPost, "/events/"+event.ID.String()+"/join", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EVENT_FULL")
}

func TestEventHandler_JoinEvent_StoreDown(t *testing.T) {
	actor := uuid.New()
	r := newEventRouter(&stubEventRepo{err: domainerrors.ErrStoreUnavailable}, &stubTeamRepo{}, actor)

	w := doRequest(t, r, http.MethodPost, "/events/"+uuid.NewString()+"/join", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "STORE_UNAVAILABLE")
}

func TestEventHandler_GetRoster(t *testing.T) {
	event := &entities.Event{ID: uuid.New(), Name: "Hack Night", Status: entities.EventStatusOpen}
	teams := []*entities.Team{{ID: uuid.New(), EventID: event.ID, Name: "Byte Club", Members: []uuid.UUID{uuid.New()}}}
	r := newEventRouter(&stubEventRepo{event: event}, &stubTeamRepo{teams: teams}, uuid.New())

	w := doRequest(t, r, http.MethodGet, "/events/"+event.ID.String()+"/roster", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var roster entities.EventRoster
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	require.Len(t, roster.Teams, 1)
	assert.Equal(t, "Byte Club", roster.Teams[0].Name)
	assert.Equal(t, 1, roster.Teams[0].MemberCount)
}
