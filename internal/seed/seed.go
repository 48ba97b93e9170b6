package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/app/services"
)

type courseSeed struct {
	Name  string
	Level models.CourseLevel
}

type memberSeed struct {
	Name      string
	CourseIDs []int
}

// DefaultCourses get IDs 1..7 in this order
var DefaultCourses = []courseSeed{
	{"java_beginner", models.LevelBachelor},
	{"java_intermediate", models.LevelBachelor},
	{"python_basics", models.LevelBachelor},
	{"algorithms", models.LevelMaster},
	{"advanced_programming", models.LevelMaster},
	{"mathematical_analysis", models.LevelMaster},
	{"computer_vision", models.LevelMaster},
}

// DefaultStudents get member IDs 1..3
var DefaultStudents = []memberSeed{
	{"alice", []int{1, 2, 3}},
	{"bob", []int{1, 4}},
	{"alex", []int{5}},
}

// DefaultProfessors get member IDs 4..6
var DefaultProfessors = []memberSeed{
	{"ali", []int{1, 2}},
	{"ahmed", []int{3, 5}},
	{"andrey", []int{6}},
}

// CreateDefaultData fills an empty registry with the initial courses,
// students and professors. It goes through the services, so the seed obeys
// the same rules as commands read from input.
func CreateDefaultData(
	ctx context.Context,
	courseService services.CourseService,
	studentService services.StudentService,
	professorService services.ProfessorService,
	lgr zerolog.Logger,
) error {
	lgr.Debug().Msg("Creating default data...")
	var finalErr error

	for _, c := range DefaultCourses {
		if _, err := courseService.CreateCourse(ctx, c.Name, c.Level); err != nil {
			lgr.Error().Err(err).Str("course", c.Name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, fmt.Errorf("course %s: %w", c.Name, err))
		}
	}

	for _, s := range DefaultStudents {
		student, err := studentService.CreateStudent(ctx, s.Name)
		if err != nil {
			lgr.Error().Err(err).Str("student", s.Name).Msg("Error creating default student")
			finalErr = errors.Join(finalErr, fmt.Errorf("student %s: %w", s.Name, err))
			continue
		}
		for _, courseID := range s.CourseIDs {
			if err := studentService.Enroll(ctx, student.ID, courseID); err != nil {
				lgr.Error().Err(err).Int("memberID", student.ID).Int("courseID", courseID).Msg("Error enrolling default student")
				finalErr = errors.Join(finalErr, fmt.Errorf("enroll %s in %d: %w", s.Name, courseID, err))
			}
		}
	}

	for _, p := range DefaultProfessors {
		professor, err := professorService.CreateProfessor(ctx, p.Name)
		if err != nil {
			lgr.Error().Err(err).Str("professor", p.Name).Msg("Error creating default professor")
			finalErr = errors.Join(finalErr, fmt.Errorf("professor %s: %w", p.Name, err))
			continue
		}
		for _, courseID := range p.CourseIDs {
			if err := professorService.Teach(ctx, professor.ID, courseID); err != nil {
				lgr.Error().Err(err).Int("memberID", professor.ID).Int("courseID", courseID).Msg("Error assigning default professor")
				finalErr = errors.Join(finalErr, fmt.Errorf("assign %s to %d: %w", p.Name, courseID, err))
			}
		}
	}

	lgr.Debug().Msg("Default data creation finished.")
	return finalErr
}
