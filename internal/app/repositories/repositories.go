package repositories

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository *CourseRepository
	MemberRepository *MemberRepository
}

// NewRepositories initializes all repositories with empty state
func NewRepositories() *Repositories {
	return &Repositories{
		CourseRepository: NewCourseRepository(),
		MemberRepository: NewMemberRepository(),
	}
}
