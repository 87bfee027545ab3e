package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"campus-hub.backend/internal/domain/entities"
	"campus-hub.backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asActor injects the authenticated actor the way the auth middleware does.
func asActor(actor uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActorIDKey, actor)
		c.Next()
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Hand-rolled stubs keep the handler tests independent of gorm.

type stubEventRepo struct {
	event *entities.Event
	list  []*entities.Event
	total int64
	err   error
}

func (s *stubEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.event, nil
}

func (s *stubEventRepo) List(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.list, s.total, nil
}

func (s *stubEventRepo) UpdateIndividuals(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	updated := *s.event
	updated.Individuals = members
	updated.Version = version + 1
	s.event = &updated
	return &updated, nil
}

func (s *stubEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus) error {
	return s.err
}

func (s *stubEventRepo) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, s.err
}

type stubTeamRepo struct {
	team    *entities.Team
	teams   []*entities.Team
	taken   bool
	err     error
	created *entities.Team
}

func (s *stubTeamRepo) Create(ctx context.Context, team *entities.Team) error {
	if s.err != nil {
		return s.err
	}
	s.created = team
	return nil
}

func (s *stubTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.team, nil
}

func (s *stubTeamRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entities.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.teams, nil
}

func (s *stubTeamRepo) UpdateMembers(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	updated := *s.team
	updated.Members = members
	updated.Version = version + 1
	s.team = &updated
	return &updated, nil
}

func (s *stubTeamRepo) ExistsByEventAndName(ctx context.Context, eventID uuid.UUID, name string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.taken, nil
}

type stubStudentRepo struct {
	student  *entities.Student
	students []*entities.Student
	err      error
}

func (s *stubStudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.student, nil
}

func (s *stubStudentRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.students, nil
}

type stubCollegeRepo struct {
	colleges []*entities.College
	err      error
}

func (s *stubCollegeRepo) List(ctx context.Context) ([]*entities.College, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.colleges, nil
}
