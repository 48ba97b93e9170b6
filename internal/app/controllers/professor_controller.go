package controllers

import (
	"context"

	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/app/services"
	"github.com/yigit/unicourse/internal/pkg/helpers"
)

// ProfessorController handles the professor, teach and exempt commands
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// CreateProfessor reads a name line and registers the professor
func (c *ProfessorController) CreateProfessor(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error) {
	nameLine, err := in.Operand("professor name")
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	if _, err := c.professorService.CreateProfessor(ctx, helpers.FoldName(nameLine)); err != nil {
		return dto.SuccessResponse{}, err
	}
	return dto.SuccessResponse{Message: dto.MessageAdded}, nil
}

// Teach reads a member id and a course id and assigns the course
func (c *ProfessorController) Teach(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error) {
	memberID, courseID, err := memberCourseOperands(in)
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	if err := c.professorService.Teach(ctx, memberID, courseID); err != nil {
		return dto.SuccessResponse{}, err
	}
	return dto.SuccessResponse{Message: dto.MessageAssigned}, nil
}

// Exempt reads a member id and a course id and removes the assignment
func (c *ProfessorController) Exempt(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error) {
	memberID, courseID, err := memberCourseOperands(in)
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	if err := c.professorService.Exempt(ctx, memberID, courseID); err != nil {
		return dto.SuccessResponse{}, err
	}
	return dto.SuccessResponse{Message: dto.MessageExempted}, nil
}
