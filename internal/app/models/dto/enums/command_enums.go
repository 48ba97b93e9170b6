package enums

// Command is a command token read from the input stream
type Command string

const (
	CommandCourse    Command = "course"
	CommandStudent   Command = "student"
	CommandProfessor Command = "professor"
	CommandEnroll    Command = "enroll"
	CommandDrop      Command = "drop"
	CommandTeach     Command = "teach"
	CommandExempt    Command = "exempt"
)

// Commands lists every recognised command in declaration order
var Commands = []Command{
	CommandCourse,
	CommandStudent,
	CommandProfessor,
	CommandEnroll,
	CommandDrop,
	CommandTeach,
	CommandExempt,
}

// String returns the raw token
func (c Command) String() string {
	return string(c)
}
