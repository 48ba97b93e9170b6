package bootstrap

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/unicourse/internal/app/controllers"
	appRepos "github.com/yigit/unicourse/internal/app/repositories"
	appRoutes "github.com/yigit/unicourse/internal/app/routes"
	appServices "github.com/yigit/unicourse/internal/app/services"
	"github.com/yigit/unicourse/internal/config"
	"github.com/yigit/unicourse/internal/pkg/logger"
	"github.com/yigit/unicourse/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService       appServices.CourseService
	StudentService      appServices.StudentService
	ProfessorService    appServices.ProfessorService
	CourseController    *appControllers.CourseController
	StudentController   *appControllers.StudentController
	ProfessorController *appControllers.ProfessorController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A configuration that cannot be loaded only affects diagnostics, so it is
// reported and replaced by the defaults. The returned logger is tagged with
// a fresh session ID.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger) {
	configPath := config.ResolvePath()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", configPath).Msg("Invalid configuration, using defaults")
		cfg = config.Default()
	}

	logLevel := logger.LogLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr := logger.WithField("session", uuid.NewString())
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr
}

// NewDependencies initializes repositories, services and controllers over an
// empty registry
func NewDependencies(lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.MemberRepository, deps.Repos.CourseRepository)
	deps.ProfessorService = appServices.NewProfessorService(deps.Repos.MemberRepository, deps.Repos.CourseRepository)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)

	return deps
}

// BuildDependencies wires the application and loads the initial dataset
func BuildDependencies(lgr zerolog.Logger) (*Dependencies, error) {
	deps := NewDependencies(lgr)

	ctx := logger.WithContext(context.Background(), lgr)
	if err := seed.CreateDefaultData(ctx, deps.CourseService, deps.StudentService, deps.ProfessorService, lgr); err != nil {
		return nil, fmt.Errorf("failed to create default data: %w", err)
	}
	lgr.Debug().
		Int("courses", deps.Repos.CourseRepository.LastID()).
		Int("members", deps.Repos.MemberRepository.LastID()).
		Msg("Registry seeded")

	return deps, nil
}

// SetupRouter builds the command table from the controllers
func SetupRouter(deps *Dependencies) *appRoutes.Router {
	router := appRoutes.NewRouter()
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.StudentController,
		deps.ProfessorController,
	)
	return router
}
