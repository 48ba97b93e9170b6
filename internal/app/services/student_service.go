package services

import (
	"context"

	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/app/repositories"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/logger"
	"github.com/yigit/unicourse/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, name string) (*models.Student, error)
	Enroll(ctx context.Context, memberID, courseID int) error
	Drop(ctx context.Context, memberID, courseID int) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	memberRepo *repositories.MemberRepository
	courseRepo *repositories.CourseRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(memberRepo *repositories.MemberRepository, courseRepo *repositories.CourseRepository) StudentService {
	return &studentServiceImpl{
		memberRepo: memberRepo,
		courseRepo: courseRepo,
	}
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, name string) (*models.Student, error) {
	if err := validation.CheckName(name); err != nil {
		return nil, err
	}
	return s.memberRepo.CreateStudent(ctx, name), nil
}

// resolve looks up the student, then the course
func (s *studentServiceImpl) resolve(memberID, courseID int) (*models.Student, *models.Course, error) {
	student, err := s.memberRepo.GetStudentByID(memberID)
	if err != nil {
		return nil, nil, apperrors.WrapInvalidInput(err, "resolving student")
	}
	course, err := resolveCourse(s.courseRepo, courseID)
	if err != nil {
		return nil, nil, err
	}
	return student, course, nil
}

// Enroll checks: student, course, already enrolled, student limit, course capacity.
func (s *studentServiceImpl) Enroll(ctx context.Context, memberID, courseID int) error {
	student, course, err := s.resolve(memberID, courseID)
	if err != nil {
		return err
	}

	if course.HasStudent(student) {
		return apperrors.ErrAlreadyEnrolled
	}
	if student.HasMaxEnrollment() {
		return apperrors.ErrMaxEnrollment
	}
	if course.IsFull() {
		return apperrors.ErrCourseFull
	}

	if err := student.Enroll(course); err != nil {
		return relationFailure(err)
	}

	logger.FromContext(ctx).Debug().Int("memberID", memberID).Int("courseID", courseID).Msg("Student enrolled")
	return nil
}

// Drop checks: student, course, enrolled.
func (s *studentServiceImpl) Drop(ctx context.Context, memberID, courseID int) error {
	student, course, err := s.resolve(memberID, courseID)
	if err != nil {
		return err
	}

	if !course.HasStudent(student) {
		return apperrors.ErrNotEnrolled
	}

	if err := student.Drop(course); err != nil {
		return relationFailure(err)
	}

	logger.FromContext(ctx).Debug().Int("memberID", memberID).Int("courseID", courseID).Msg("Student dropped")
	return nil
}
