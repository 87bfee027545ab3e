package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/interfaces/http/middleware"
	"campus-hub.backend/internal/interfaces/http/response"
)

// actorID pulls the authenticated actor id set by the auth middleware.
// Writes a 401 and returns false when it is missing.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.ActorIDKey)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
