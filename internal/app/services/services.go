package services

import (
	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/app/repositories"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/validation"
)

// Services defined in this package:
// - CourseService: course name checks and course creation
// - StudentService: student creation, enroll and drop
// - ProfessorService: professor creation, teach and exempt
//
// Every mutation checks its preconditions in a fixed order, because the first
// failing check decides which status line the user sees.

// resolveCourse bounds-checks a 1-based course ID and fetches the course
func resolveCourse(courseRepo *repositories.CourseRepository, courseID int) (*models.Course, error) {
	if !validation.NewNumericValidation(courseID).WithMin(1).WithMax(courseRepo.Count()).Validate() {
		return nil, apperrors.NewInvalidInputError("course id %d out of range [1, %d]", courseID, courseRepo.Count())
	}
	course, err := courseRepo.GetByID(courseID)
	if err != nil {
		return nil, apperrors.WrapInvalidInput(err, "resolving course")
	}
	return course, nil
}

// relationFailure reports an entity method rejecting a change the service already checked
func relationFailure(err error) error {
	return apperrors.NewCustomError(apperrors.ErrUnexpected, "relation update rejected: "+err.Error())
}
