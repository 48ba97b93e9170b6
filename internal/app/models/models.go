package models

import (
	"errors"
	"fmt"
)

// Relation errors returned by the entity methods when their own precondition does not hold
var (
	ErrRelationExists  = errors.New("relation already exists")
	ErrRelationMissing = errors.New("relation does not exist")
)

// CourseLevel classifies a course
type CourseLevel string

// CourseLevel constants
const (
	LevelBachelor CourseLevel = "BACHELOR"
	LevelMaster   CourseLevel = "MASTER"
)

// ParseCourseLevel accepts the exact upper-case level token
func ParseCourseLevel(s string) (CourseLevel, error) {
	switch CourseLevel(s) {
	case LevelBachelor:
		return LevelBachelor, nil
	case LevelMaster:
		return LevelMaster, nil
	default:
		return "", fmt.Errorf("unknown course level %q", s)
	}
}

// Member is the header shared by students and professors.
// IDs come from one sequence, so an ID names at most one member.
type Member struct {
	ID   int
	Name string
}

// indexOf returns the position of c in courses or -1
func indexOf(courses []*Course, c *Course) int {
	for i, existing := range courses {
		if existing == c {
			return i
		}
	}
	return -1
}
