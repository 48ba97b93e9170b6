package server

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/yigit/unicourse/internal/app/models/dto"
	"github.com/yigit/unicourse/internal/app/routes"
	"github.com/yigit/unicourse/internal/bootstrap"
	"github.com/yigit/unicourse/internal/config"
	"github.com/yigit/unicourse/internal/middleware"
	"github.com/yigit/unicourse/internal/pkg/apperrors"
	"github.com/yigit/unicourse/internal/pkg/helpers"
	"github.com/yigit/unicourse/internal/pkg/logger"
)

// Server runs the command loop over one input stream.
type Server struct {
	config *config.Config
	deps   *bootstrap.Dependencies
	router *routes.Router
	logger zerolog.Logger
	in     *helpers.LineReader
	out    io.Writer
}

// NewServer loads config, sets up logging, builds and seeds the registry.
func NewServer(in io.Reader, out io.Writer) (*Server, error) {
	cfg, lgr := bootstrap.LoadConfigAndSetupLogger()
	return NewServerWithConfig(cfg, lgr, in, out)
}

// NewServerWithConfig builds a seeded server from an already loaded config
func NewServerWithConfig(cfg *config.Config, lgr zerolog.Logger, in io.Reader, out io.Writer) (*Server, error) {
	deps, err := bootstrap.BuildDependencies(lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}
	return newServer(cfg, lgr, deps, in, out), nil
}

func newServer(cfg *config.Config, lgr zerolog.Logger, deps *bootstrap.Dependencies, in io.Reader, out io.Writer) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		router: bootstrap.SetupRouter(deps),
		logger: lgr,
		in:     helpers.NewLineReader(in),
		out:    out,
	}
}

// Dependencies exposes the wired registry
func (s *Server) Dependencies() *bootstrap.Dependencies {
	return s.deps
}

// Run processes commands until the input ends or a command fails. A failing
// command has already had its status line written when Run returns its error.
func (s *Server) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, s.logger)

	for {
		token, err := s.in.Next()
		if err == io.EOF {
			s.logger.Debug().Int("lines", s.in.Line()).Msg("Input finished")
			return nil
		}

		var resp dto.SuccessResponse
		if err == nil {
			resp, err = s.dispatch(ctx, token)
		} else {
			err = apperrors.WrapInvalidInput(err, "reading command")
		}
		if err != nil {
			middleware.HandleCommandError(ctx, s.out, err)
			return err
		}

		if _, err := fmt.Fprintln(s.out, resp.Message); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

func (s *Server) dispatch(ctx context.Context, token string) (dto.SuccessResponse, error) {
	handler, err := s.router.Lookup(token)
	if err != nil {
		return dto.SuccessResponse{}, err
	}

	s.logger.Debug().Str("command", token).Int("line", s.in.Line()).Msg("Dispatching command")
	run := middleware.Recover(func(ctx context.Context) (dto.SuccessResponse, error) {
		return handler(ctx, s.in)
	})
	return run(ctx)
}
