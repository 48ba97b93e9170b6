package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/logger"
)

// CourseRepository keeps courses in creation order. A course ID is its
// 1-based position, so IDs form the prefix 1..N.
type CourseRepository struct {
	courses []*models.Course
	byName  map[string]*models.Course
	seq     Sequence
}

// NewCourseRepository creates an empty CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		byName: make(map[string]*models.Course),
	}
}

// CreateCourse allocates an ID and stores a new course
func (r *CourseRepository) CreateCourse(ctx context.Context, name string, level models.CourseLevel) (*models.Course, error) {
	if r.NameExists(name) {
		logger.FromContext(ctx).Debug().Str("name", name).Msg("Attempted to create course with duplicate name")
		return nil, apperrors.ErrCourseExists
	}

	course := models.NewCourse(r.seq.Next(), name, level)
	r.courses = append(r.courses, course)
	r.byName[name] = course

	logger.FromContext(ctx).Debug().Int("courseID", course.ID).Str("name", name).Str("level", string(level)).Msg("Course created")
	return course, nil
}

// NameExists reports whether a course with this name is registered
func (r *CourseRepository) NameExists(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// GetByID resolves a 1-based course ID
func (r *CourseRepository) GetByID(id int) (*models.Course, error) {
	if id < 1 || id > len(r.courses) {
		return nil, fmt.Errorf("%w: course %d", apperrors.ErrCourseNotFound, id)
	}
	return r.courses[id-1], nil
}

// GetAll returns every course in creation order
func (r *CourseRepository) GetAll() []*models.Course {
	out := make([]*models.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// Count returns the number of registered courses
func (r *CourseRepository) Count() int {
	return len(r.courses)
}

// LastID returns the last allocated course ID
func (r *CourseRepository) LastID() int {
	return r.seq.Current()
}
