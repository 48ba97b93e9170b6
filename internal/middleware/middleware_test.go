package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/app/models/dto/enums"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
)

func TestResolveError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"course exists", apperrors.ErrCourseExists, dto.MessageCourseExists},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, dto.MessageAlreadyEnrolled},
		{"not enrolled", apperrors.ErrNotEnrolled, dto.MessageNotEnrolled},
		{"max enrollment", apperrors.ErrMaxEnrollment, dto.MessageMaxEnrollment},
		{"course full", apperrors.ErrCourseFull, dto.MessageCourseFull},
		{"load complete", apperrors.ErrLoadComplete, dto.MessageLoadComplete},
		{"already teaching", apperrors.ErrAlreadyTeaching, dto.MessageAlreadyTeaching},
		{"not teaching", apperrors.ErrNotTeaching, dto.MessageNotTeaching},
		{"wrapped semantic", fmt.Errorf("ctx: %w", apperrors.ErrCourseFull), dto.MessageCourseFull},
		{"invalid input", apperrors.NewInvalidInputError("unknown command %q", "x"), dto.MessageWrongInputs},
		{"unexpected", apperrors.NewCustomError(apperrors.ErrUnexpected, "boom"), dto.MessageWrongInputs},
		{"not found", apperrors.ErrStudentNotFound, dto.MessageWrongInputs},
		{"anything else", errors.New("disk on fire"), dto.MessageWrongInputs},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveError(tc.err).Message)
		})
	}
}

func TestHandleCommandError_WritesOneLine(t *testing.T) {
	var out bytes.Buffer

	detail := HandleCommandError(context.Background(), &out, apperrors.ErrLoadComplete)

	assert.Equal(t, "Professor's load is complete\n", out.String())
	assert.Equal(t, enums.ErrorCodeLoadComplete, detail.Code)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestHandleCommandError_LogsWriteFailure(t *testing.T) {
	var logs bytes.Buffer
	ctx := zerolog.New(&logs).WithContext(context.Background())

	detail := HandleCommandError(ctx, failingWriter{}, apperrors.ErrCourseFull)

	assert.Equal(t, dto.MessageCourseFull, detail.Message)
	assert.Contains(t, logs.String(), "Failed to write status line")
	assert.Contains(t, logs.String(), "stdout closed")
}

func TestRecover(t *testing.T) {
	h := Recover(func(ctx context.Context) (dto.SuccessResponse, error) {
		var courses []int
		_ = courses[3]
		return dto.SuccessResponse{Message: "unreachable"}, nil
	})

	resp, err := h(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnexpected)
	assert.Empty(t, resp.Message)
	assert.Equal(t, dto.MessageWrongInputs, ResolveError(err).Message)
}

func TestRecover_PassesThrough(t *testing.T) {
	h := Recover(func(ctx context.Context) (dto.SuccessResponse, error) {
		return dto.SuccessResponse{Message: dto.MessageAdded}, nil
	})

	resp, err := h(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dto.MessageAdded, resp.Message)
}
