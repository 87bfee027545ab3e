package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/domain/repositories"
	"campus-hub.backend/internal/interfaces/http/response"
	"campus-hub.backend/internal/usecases"
	"campus-hub.backend/pkg/utils"
)

type EventHandler struct {
	eventRepo    repositories.EventRepository
	registration *usecases.RegistrationUsecase
	roster       *usecases.RosterUsecase
}

func NewEventHandler(
	eventRepo repositories.EventRepository,
	registration *usecases.RegistrationUsecase,
	roster *usecases.RosterUsecase,
) *EventHandler {
	return &EventHandler{
		eventRepo:    eventRepo,
		registration: registration,
		roster:       roster,
	}
}

// ListEvents returns events for browsing.
// GET /api/v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	items, total, err := h.eventRepo.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetEvent returns one event.
// GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// JoinEvent registers the authenticated actor as an individual participant.
// POST /api/v1/events/:id/join
func (h *EventHandler) JoinEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	event, err := h.registration.JoinEventAsIndividual(c.Request.Context(), id, actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Registered for event",
		"event":   event,
	})
}

// GetRoster returns the consolidated registration view of an event.
// GET /api/v1/events/:id/roster
func (h *EventHandler) GetRoster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	roster, err := h.roster.GetEventRoster(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, roster)
}
