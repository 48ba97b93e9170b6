package models

// MaxEnrollment is the maximum number of courses one student can take
const MaxEnrollment = 3

// Student defines a student member
type Student struct {
	Member

	courses []*Course
}

// NewStudent creates a student with no enrollments
func NewStudent(id int, name string) *Student {
	return &Student{Member: Member{ID: id, Name: name}}
}

// EnrolledCourses returns the student's courses in enrollment order
func (s *Student) EnrolledCourses() []*Course {
	out := make([]*Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// IsEnrolledIn reports whether the student takes c
func (s *Student) IsEnrolledIn(c *Course) bool {
	return indexOf(s.courses, c) >= 0
}

// HasMaxEnrollment reports whether the student reached MaxEnrollment
func (s *Student) HasMaxEnrollment() bool {
	return len(s.courses) >= MaxEnrollment
}

// Enroll links the student and the course on both sides.
// Capacity limits are checked by the caller.
func (s *Student) Enroll(c *Course) error {
	if s.IsEnrolledIn(c) || c.HasStudent(s) {
		return ErrRelationExists
	}
	s.courses = append(s.courses, c)
	c.students = append(c.students, s)
	return nil
}

// Drop removes the link on both sides
func (s *Student) Drop(c *Course) error {
	i := indexOf(s.courses, c)
	if i < 0 || !c.HasStudent(s) {
		return ErrRelationMissing
	}
	s.courses = append(s.courses[:i], s.courses[i+1:]...)
	c.removeStudent(s)
	return nil
}
