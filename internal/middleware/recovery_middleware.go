package middleware

import (
	"context"
	"fmt"

	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
)

// HandlerFunc executes one command and returns its outcome
type HandlerFunc func(ctx context.Context) (dto.SuccessResponse, error)

// Recover converts a panic inside next into an ErrUnexpected error
func Recover(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context) (resp dto.SuccessResponse, err error) {
		defer func() {
			if r := recover(); r != nil {
				resp = dto.SuccessResponse{}
				err = apperrors.NewCustomError(apperrors.ErrUnexpected, fmt.Sprintf("panic: %v", r))
			}
		}()
		return next(ctx)
	}
}
