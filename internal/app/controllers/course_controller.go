package controllers

import (
	"context"

	"github.com/yigit/unicourse/internal/app/models"
	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/app/services"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/helpers"
)

// CourseController handles the course command
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse reads a name and a level line and registers the course.
// The name is checked before the level line is consumed.
func (c *CourseController) CreateCourse(ctx context.Context, in *helpers.LineReader) (dto.SuccessResponse, error) {
	nameLine, err := in.Operand("course name")
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	name := helpers.FoldName(nameLine)
	if err := c.courseService.ValidateCourseName(ctx, name); err != nil {
		return dto.SuccessResponse{}, err
	}

	levelLine, err := in.Operand("course level")
	if err != nil {
		return dto.SuccessResponse{}, err
	}
	level, err := models.ParseCourseLevel(helpers.FoldLevel(levelLine))
	if err != nil {
		return dto.SuccessResponse{}, apperrors.WrapInvalidInput(err, "course level")
	}

	if _, err := c.courseService.CreateCourse(ctx, name, level); err != nil {
		return dto.SuccessResponse{}, err
	}
	return dto.SuccessResponse{Message: dto.MessageAdded}, nil
}
