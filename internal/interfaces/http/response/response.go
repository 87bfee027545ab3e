package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "campus-hub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinels map to stable HTTP
// statuses and reason codes so the UI can tell a policy denial ("you are
// not eligible") from a transient conflict ("try again").
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"reason":  Reason(err),
		"message": appErr.Message,
	})
}

// Reason returns a stable machine-readable code for a domain error.
func Reason(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrEventClosed):
		return "EVENT_CLOSED"
	case errors.Is(err, domainerrors.ErrDeadlinePassed):
		return "DEADLINE_PASSED"
	case errors.Is(err, domainerrors.ErrAlreadyJoined):
		return "ALREADY_JOINED"
	case errors.Is(err, domainerrors.ErrEventFull):
		return "EVENT_FULL"
	case errors.Is(err, domainerrors.ErrAlreadyMember):
		return "ALREADY_MEMBER"
	case errors.Is(err, domainerrors.ErrInvalidTeamName):
		return "INVALID_TEAM_NAME"
	case errors.Is(err, domainerrors.ErrDuplicateTeamName):
		return "DUPLICATE_TEAM_NAME"
	case errors.Is(err, domainerrors.ErrConcurrencyExhausted):
		return "CONCURRENCY_EXHAUSTED"
	case errors.Is(err, domainerrors.ErrStoreUnavailable):
		return "STORE_UNAVAILABLE"
	case errors.Is(err, domainerrors.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, domainerrors.ErrForbidden):
		return "FORBIDDEN"
	default:
		return "INTERNAL"
	}
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrInvalidTeamName):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden(err.Error())
	case errors.Is(err, domainerrors.ErrEventClosed),
		errors.Is(err, domainerrors.ErrDeadlinePassed),
		errors.Is(err, domainerrors.ErrAlreadyJoined),
		errors.Is(err, domainerrors.ErrEventFull),
		errors.Is(err, domainerrors.ErrAlreadyMember),
		errors.Is(err, domainerrors.ErrDuplicateTeamName),
		errors.Is(err, domainerrors.ErrConcurrencyExhausted):
		return domainerrors.Conflict(err.Error(), err)
	case errors.Is(err, domainerrors.ErrStoreUnavailable):
		return domainerrors.ServiceUnavailable("store unavailable", err)
	default:
		return domainerrors.NewAppError(http.StatusInternalServerError, "internal server error", err)
	}
}
