package models

// CourseCapacity is the maximum number of students enrolled in one course
const CourseCapacity = 3

// Course represents a course in the registry.
// The roster is only changed through Student.Enroll and Student.Drop.
type Course struct {
	ID    int
	Name  string
	Level CourseLevel

	students []*Student
}

// NewCourse creates a course with an empty roster
func NewCourse(id int, name string, level CourseLevel) *Course {
	return &Course{ID: id, Name: name, Level: level}
}

// EnrolledStudents returns the roster in enrollment order
func (c *Course) EnrolledStudents() []*Student {
	out := make([]*Student, len(c.students))
	copy(out, c.students)
	return out
}

// HasStudent reports whether s is on the roster
func (c *Course) HasStudent(s *Student) bool {
	for _, existing := range c.students {
		if existing == s {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster reached CourseCapacity
func (c *Course) IsFull() bool {
	return len(c.students) == CourseCapacity
}

func (c *Course) removeStudent(s *Student) {
	for i, existing := range c.students {
		if existing == s {
			c.students = append(c.students[:i], c.students[i+1:]...)
			return
		}
	}
}
