package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"campus-hub.backend/internal/domain/entities"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/domain/repositories"
	"campus-hub.backend/internal/interfaces/http/response"
	"campus-hub.backend/internal/usecases"
)

type TeamHandler struct {
	teamRepo     repositories.TeamRepository
	registration *usecases.RegistrationUsecase
}

func NewTeamHandler(teamRepo repositories.TeamRepository, registration *usecases.RegistrationUsecase) *TeamHandler {
	return &TeamHandler{teamRepo: teamRepo, registration: registration}
}

// ListEventTeams returns the teams registered on an event.
// GET /api/v1/events/:id/teams
func (h *TeamHandler) ListEventTeams(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.teamRepo.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// CreateTeam creates a team on an event with the actor as creator.
// POST /api/v1/events/:id/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var input entities.CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.registration.CreateTeam(c.Request.Context(), eventID, actor, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Team created",
		"team":    team,
	})
}

// JoinTeam adds the actor to an existing team.
// POST /api/v1/teams/:id/join
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}

	team, err := h.registration.JoinTeam(c.Request.Context(), teamID, actor)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Joined team",
		"team":    team,
	})
}
