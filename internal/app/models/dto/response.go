package dto

// Status lines written after a successful command
const (
	MessageAdded    = "Added successfully"
	MessageEnrolled = "Enrolled successfully"
	MessageDropped  = "Dropped successfully"
	MessageAssigned = "Professor is successfully assigned to teach this course"
	MessageExempted = "Professor is exempted"
)

// Status lines written before the run stops on an error
const (
	MessageWrongInputs     = "Wrong inputs"
	MessageCourseExists    = "Course exists"
	MessageAlreadyEnrolled = "Student is already enrolled in this course"
	MessageNotEnrolled     = "Student is not enrolled in this course"
	MessageMaxEnrollment   = "Maximum enrollment is reached for the student"
	MessageCourseFull      = "Course is full"
	MessageLoadComplete    = "Professor's load is complete"
	MessageAlreadyTeaching = "Professor is already teaching this course"
	MessageNotTeaching     = "Professor is not teaching this course"
)

// SuccessResponse is the outcome of a command that mutated the registry
type SuccessResponse struct {
	Message string
}
