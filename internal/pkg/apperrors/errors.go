package apperrors

import (
	"errors"
	"fmt"
)

// Input errors
var (
	// ErrInvalidInput covers every malformed or unresolvable operand
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnexpected marks a recovered runtime failure
	ErrUnexpected = errors.New("unexpected failure")
)

// Course Errors
var (
	ErrCourseExists   = errors.New("course already exists")
	ErrCourseNotFound = errors.New("course not found")
	ErrCourseFull     = errors.New("course is full")
)

// Student Errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrAlreadyEnrolled = errors.New("student already enrolled in course")
	ErrNotEnrolled     = errors.New("student not enrolled in course")
	ErrMaxEnrollment   = errors.New("student reached maximum enrollment")
)

// Professor Errors
var (
	ErrProfessorNotFound = errors.New("professor not found")
	ErrLoadComplete      = errors.New("professor load is complete")
	ErrAlreadyTeaching   = errors.New("professor already teaching course")
	ErrNotTeaching       = errors.New("professor not teaching course")
)

// NewInvalidInputError creates a custom error for a rejected operand with a message
func NewInvalidInputError(format string, args ...interface{}) error {
	return &CustomError{
		Err:     ErrInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapInvalidInput marks cause as an input error while keeping it in the chain
func WrapInvalidInput(cause error, message string) error {
	return &CustomError{
		Err:     ErrInvalidInput,
		Cause:   cause,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
