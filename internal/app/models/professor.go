package models

// MaxLoad is the maximum number of courses one professor can teach
const MaxLoad = 2

// Professor defines a professor member.
// Assignments are kept on the professor only; courses do not track teachers.
type Professor struct {
	Member

	courses []*Course
}

// NewProfessor creates a professor with no assignments
func NewProfessor(id int, name string) *Professor {
	return &Professor{Member: Member{ID: id, Name: name}}
}

// AssignedCourses returns the professor's courses in assignment order
func (p *Professor) AssignedCourses() []*Course {
	out := make([]*Course, len(p.courses))
	copy(out, p.courses)
	return out
}

// Teaches reports whether c is assigned to the professor
func (p *Professor) Teaches(c *Course) bool {
	return indexOf(p.courses, c) >= 0
}

// HasFullLoad reports whether the professor reached MaxLoad
func (p *Professor) HasFullLoad() bool {
	return len(p.courses) >= MaxLoad
}

// Teach assigns c to the professor
func (p *Professor) Teach(c *Course) error {
	if p.Teaches(c) {
		return ErrRelationExists
	}
	p.courses = append(p.courses, c)
	return nil
}

// Exempt removes c from the professor's assignments
func (p *Professor) Exempt(c *Course) error {
	i := indexOf(p.courses, c)
	if i < 0 {
		return ErrRelationMissing
	}
	p.courses = append(p.courses[:i], p.courses[i+1:]...)
	return nil
}
