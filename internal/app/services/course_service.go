package services

import (
	"context"

	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/app/repositories"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	// ValidateCourseName runs the duplicate check and then the name rules
	ValidateCourseName(ctx context.Context, name string) error
	CreateCourse(ctx context.Context, name string, level models.CourseLevel) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

func (s *courseServiceImpl) ValidateCourseName(ctx context.Context, name string) error {
	return validation.CheckCourseName(name, s.courseRepo.NameExists)
}

// CreateCourse validates the name again so callers other than the command
// stream (the seed) get the same rules.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, name string, level models.CourseLevel) (*models.Course, error) {
	if err := s.ValidateCourseName(ctx, name); err != nil {
		return nil, err
	}
	if _, err := models.ParseCourseLevel(string(level)); err != nil {
		return nil, apperrors.WrapInvalidInput(err, "course level")
	}
	return s.courseRepo.CreateCourse(ctx, name, level)
}
