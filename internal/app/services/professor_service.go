package services

import (
	"context"

	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/app/repositories"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/logger"
	"github.com/yigit/unicourse/internal/pkg/validation"
)

// ProfessorService defines the interface for professor-related operations
type ProfessorService interface {
	CreateProfessor(ctx context.Context, name string) (*models.Professor, error)
	Teach(ctx context.Context, memberID, courseID int) error
	Exempt(ctx context.Context, memberID, courseID int) error
}

// professorServiceImpl implements the ProfessorService interface
type professorServiceImpl struct {
	memberRepo *repositories.MemberRepository
	courseRepo *repositories.CourseRepository
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(memberRepo *repositories.MemberRepository, courseRepo *repositories.CourseRepository) ProfessorService {
	return &professorServiceImpl{
		memberRepo: memberRepo,
		courseRepo: courseRepo,
	}
}

func (s *professorServiceImpl) CreateProfessor(ctx context.Context, name string) (*models.Professor, error) {
	if err := validation.CheckName(name); err != nil {
		return nil, err
	}
	return s.memberRepo.CreateProfessor(ctx, name), nil
}

func (s *professorServiceImpl) resolve(memberID, courseID int) (*models.Professor, *models.Course, error) {
	professor, err := s.memberRepo.GetProfessorByID(memberID)
	if err != nil {
		return nil, nil, apperrors.WrapInvalidInput(err, "resolving professor")
	}
	course, err := resolveCourse(s.courseRepo, courseID)
	if err != nil {
		return nil, nil, err
	}
	return professor, course, nil
}

// Teach checks: professor, course, load, already teaching.
// A professor with a full load gets ErrLoadComplete even for a course they already teach.
func (s *professorServiceImpl) Teach(ctx context.Context, memberID, courseID int) error {
	professor, course, err := s.resolve(memberID, courseID)
	if err != nil {
		return err
	}

	if professor.HasFullLoad() {
		return apperrors.ErrLoadComplete
	}
	if professor.Teaches(course) {
		return apperrors.ErrAlreadyTeaching
	}

	if err := professor.Teach(course); err != nil {
		return relationFailure(err)
	}

	logger.FromContext(ctx).Debug().Int("memberID", memberID).Int("courseID", courseID).Msg("Professor assigned")
	return nil
}

// Exempt checks: professor, course, teaching.
func (s *professorServiceImpl) Exempt(ctx context.Context, memberID, courseID int) error {
	professor, course, err := s.resolve(memberID, courseID)
	if err != nil {
		return err
	}

	if !professor.Teaches(course) {
		return apperrors.ErrNotTeaching
	}

	if err := professor.Exempt(course); err != nil {
		return relationFailure(err)
	}

	logger.FromContext(ctx).Debug().Int("memberID", memberID).Int("courseID", courseID).Msg("Professor exempted")
	return nil
}
