package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/domain/repositories"
	"campus-hub.backend/internal/interfaces/http/response"
)

// StudentHandler serves read-only directory data owned by the external
// profile system.
type StudentHandler struct {
	studentRepo repositories.StudentRepository
	collegeRepo repositories.CollegeRepository
}

func NewStudentHandler(studentRepo repositories.StudentRepository, collegeRepo repositories.CollegeRepository) *StudentHandler {
	return &StudentHandler{studentRepo: studentRepo, collegeRepo: collegeRepo}
}

// GetStudent returns one student profile.
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	student, err := h.studentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("student not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// ListColleges returns the college lookup used for display.
// GET /api/v1/colleges
func (h *StudentHandler) ListColleges(c *gin.Context) {
	items, err := h.collegeRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}
