package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/app/models/dto/enums"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/logger"
)

// ErrorDetail is the status line and log code an error maps to
type ErrorDetail struct {
	Code     enums.ErrorCode
	Message  string
	Severity enums.ErrorSeverity
}

// errorTable is checked in order; the first match wins
var errorTable = []struct {
	target error
	detail ErrorDetail
}{
	{apperrors.ErrCourseExists, ErrorDetail{enums.ErrorCodeResourceAlreadyExists, dto.MessageCourseExists, enums.ErrorSeverityInfo}},
	{apperrors.ErrAlreadyEnrolled, ErrorDetail{enums.ErrorCodeAlreadyEnrolled, dto.MessageAlreadyEnrolled, enums.ErrorSeverityInfo}},
	{apperrors.ErrNotEnrolled, ErrorDetail{enums.ErrorCodeNotEnrolled, dto.MessageNotEnrolled, enums.ErrorSeverityInfo}},
	{apperrors.ErrMaxEnrollment, ErrorDetail{enums.ErrorCodeMaxEnrollment, dto.MessageMaxEnrollment, enums.ErrorSeverityInfo}},
	{apperrors.ErrCourseFull, ErrorDetail{enums.ErrorCodeCourseFull, dto.MessageCourseFull, enums.ErrorSeverityInfo}},
	{apperrors.ErrLoadComplete, ErrorDetail{enums.ErrorCodeLoadComplete, dto.MessageLoadComplete, enums.ErrorSeverityInfo}},
	{apperrors.ErrAlreadyTeaching, ErrorDetail{enums.ErrorCodeAlreadyTeaching, dto.MessageAlreadyTeaching, enums.ErrorSeverityInfo}},
	{apperrors.ErrNotTeaching, ErrorDetail{enums.ErrorCodeNotTeaching, dto.MessageNotTeaching, enums.ErrorSeverityInfo}},
	{apperrors.ErrUnexpected, ErrorDetail{enums.ErrorCodeInternal, dto.MessageWrongInputs, enums.ErrorSeverityCritical}},
}

// ResolveError maps err to its status line. Anything unrecognised is "Wrong inputs".
func ResolveError(err error) ErrorDetail {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.detail
		}
	}
	return ErrorDetail{
		Code:     enums.ErrorCodeValidationFailed,
		Message:  dto.MessageWrongInputs,
		Severity: enums.ErrorSeverityWarning,
	}
}

// HandleCommandError writes the status line for err and logs the cause
func HandleCommandError(ctx context.Context, w io.Writer, err error) ErrorDetail {
	detail := ResolveError(err)

	lgr := logger.FromContext(ctx)
	event := lgr.Debug()
	if detail.Severity == enums.ErrorSeverityCritical {
		event = lgr.Error()
	}
	event.Err(err).Str("code", string(detail.Code)).Str("severity", string(detail.Severity)).Msg("Command failed")

	if _, werr := fmt.Fprintln(w, detail.Message); werr != nil {
		lgr.Error().Err(werr).Str("code", string(detail.Code)).Msg("Failed to write status line")
	}
	return detail
}
