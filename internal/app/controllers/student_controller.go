package controllers

import (
	"context"

	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/app/services"
	"github.com/yigit/unicourse/internal/pkg/helpers"
)

// StudentController handles the student, enroll and drop commands
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent reads a name line and registers the student
func (c *StudentController) CreateStudent(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error) {
	nameLine, err := in.Operand("student name")
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	if _, err := c.studentService.CreateStudent(ctx, helpers.FoldName(nameLine)); err != nil {
		return dto.SuccessResponse{}, err
	}
	return dto.SuccessResponse{Message: dto.MessageAdded}, nil
}

// Enroll reads a member id and a course id and enrolls the student
func (c *StudentController) Enroll(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error) {
	memberID, courseID, err := memberCourseOperands(in)
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	if err := c.studentService.Enroll(ctx, memberID, courseID); err != nil {
		return dto.SuccessResponse{}, err
	}
	return dto.SuccessResponse{Message: dto.MessageEnrolled}, nil
}

// Drop reads a member id and a course id and drops the student
func (c *StudentController) Drop(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error) {
	memberID, courseID, err := memberCourseOperands(in)
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	if err := c.studentService.Drop(ctx, memberID, courseID); err != nil {
		return dto.SuccessResponse{}, err
	}
	return dto.SuccessResponse{Message: dto.MessageDropped}, nil
}
