package routes

import (
	"context"

	"github.com/yigit/unicourse/internal/app/controllers"
	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/app/models/dto/enums"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/helpers"
)

// CommandHandler runs one command, reading its operands from in
type CommandHandler func(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error)

// Router maps command tokens to handlers
type Router struct {
	routes map[enums.Command]CommandHandler
}

// NewRouter creates an empty Router
func NewRouter() *Router {
	return &Router{routes: make(map[enums.Command]CommandHandler)}
}

// Handle registers h for cmd
func (r *Router) Handle(cmd enums.Command, h CommandHandler) {
	r.routes[cmd] = h
}

// Lookup returns the handler for an exact command token
func (r *Router) Lookup(token string) (CommandHandler, error) {
	h, ok := r.routes[enums.Command(token)]
	if !ok {
		return nil, apperrors.NewInvalidInputError("unknown command %q", token)
	}
	return h, nil
}

// SetupRouter configures all application commands
func SetupRouter(
	router *Router,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	professorController *controllers.ProfessorController,
) {
	router.Handle(enums.CommandCourse, courseController.CreateCourse)

	router.Handle(enums.CommandStudent, studentController.CreateStudent)
	router.Handle(enums.CommandEnroll, studentController.Enroll)
	router.Handle(enums.CommandDrop, studentController.Drop)

	router.Handle(enums.CommandProfessor, professorController.CreateProfessor)
	router.Handle(enums.CommandTeach, professorController.Teach)
	router.Handle(enums.CommandExempt, professorController.Exempt)
}
