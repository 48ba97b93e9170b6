package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/logger"
)

// MemberRepository stores students and professors. Both draw IDs from one
// shared sequence, so an ID resolves to at most one member of either kind.
type MemberRepository struct {
	students   []*models.Student
	professors []*models.Professor
	seq        Sequence
}

// NewMemberRepository creates an empty MemberRepository
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// CreateStudent stores a new student under the next member ID
func (r *MemberRepository) CreateStudent(ctx context.Context, name string) *models.Student {
	student := models.NewStudent(r.seq.Next(), name)
	r.students = append(r.students, student)
	logger.FromContext(ctx).Debug().Int("memberID", student.ID).Str("name", name).Msg("Student created")
	return student
}

// CreateProfessor stores a new professor under the next member ID
func (r *MemberRepository) CreateProfessor(ctx context.Context, name string) *models.Professor {
	professor := models.NewProfessor(r.seq.Next(), name)
	r.professors = append(r.professors, professor)
	logger.FromContext(ctx).Debug().Int("memberID", professor.ID).Str("name", name).Msg("Professor created")
	return professor
}

// GetStudentByID scans the students for memberID
func (r *MemberRepository) GetStudentByID(memberID int) (*models.Student, error) {
	for _, s := range r.students {
		if s.ID == memberID {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: member %d", apperrors.ErrStudentNotFound, memberID)
}

// GetProfessorByID scans the professors for memberID
func (r *MemberRepository) GetProfessorByID(memberID int) (*models.Professor, error) {
	for _, p := range r.professors {
		if p.ID == memberID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: member %d", apperrors.ErrProfessorNotFound, memberID)
}

// GetAllStudents returns students in creation order
func (r *MemberRepository) GetAllStudents() []*models.Student {
	out := make([]*models.Student, len(r.students))
	copy(out, r.students)
	return out
}

// GetAllProfessors returns professors in creation order
func (r *MemberRepository) GetAllProfessors() []*models.Professor {
	out := make([]*models.Professor, len(r.professors))
	copy(out, r.professors)
	return out
}

// LastID returns the last allocated member ID
func (r *MemberRepository) LastID() int {
	return r.seq.Current()
}
