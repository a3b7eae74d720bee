package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/alecxander567/Course-Tracker-Api/internal/config"
	"github.com/alecxander567/Course-Tracker-Api/internal/database"
	"github.com/alecxander567/Course-Tracker-Api/internal/delivery/httpd"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository/memory"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/integration"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	db        *sql.DB
	publisher integration.EventPublisher
}

type repositories struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	profiles  repository.ProfileRepository
	subjects  repository.SubjectRepository
	notes     repository.NoteRepository
	projects  repository.ProjectRepository
	todoLists repository.TodoListRepository
	tasks     repository.TaskRepository
}

func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	repos, db, err := newRepositories(cfg, log)
	if err != nil {
		return nil, err
	}

	publisher := newPublisher(cfg.RabbitMQ, log)
	storage := newAvatarStorage(cfg.Storage, log)

	authService := service.NewAuthService(repos.users, repos.sessions, cfg.Session.TTL, log)
	userService := service.NewUserService(repos.users, log)
	profileService := service.NewProfileService(repos.profiles, storage, cfg.Storage.MaxUploadSize, log)
	subjectService := service.NewSubjectService(repos.subjects, publisher, log)
	careerService := service.NewCareerService(repos.subjects, log)
	noteService := service.NewNoteService(repos.notes, repos.subjects, log)
	projectService := service.NewProjectService(repos.projects, log)
	todoService := service.NewTodoService(repos.todoLists, repos.tasks, publisher, log)

	handler := httpd.NewHandler(
		authService,
		userService,
		profileService,
		subjectService,
		careerService,
		noteService,
		projectService,
		todoService,
		cfg.Session,
		cfg.Storage.MaxUploadSize,
		log,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      NewRouter(cfg, handler, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		db:        db,
		publisher: publisher,
	}, nil
}

// NewRouter mounts the handler behind the shared middleware stack.
func NewRouter(cfg *config.Config, handler *httpd.Handler, log zerolog.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpd.RequestLogger(log))
	router.Use(middleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	return router
}

func newRepositories(cfg *config.Config, log zerolog.Logger) (*repositories, *sql.DB, error) {
	switch cfg.Database.Driver {
	case "memory":
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:     store.Users(),
			sessions:  store.Sessions(),
			profiles:  store.Profiles(),
			subjects:  store.Subjects(),
			notes:     store.Notes(),
			projects:  store.Projects(),
			todoLists: store.TodoLists(),
			tasks:     store.Tasks(),
		}, nil, nil
	case "postgres", "":
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := repository.NewPostgresRepository(db, log).Ping(context.Background()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info().Msg("Database connection established")

		return &repositories{
			users:     repository.NewUserRepository(db, log),
			sessions:  repository.NewSessionRepository(db, log),
			profiles:  repository.NewProfileRepository(db, log),
			subjects:  repository.NewSubjectRepository(db, log),
			notes:     repository.NewNoteRepository(db, log),
			projects:  repository.NewProjectRepository(db, log),
			todoLists: repository.NewTodoListRepository(db, log),
			tasks:     repository.NewTaskRepository(db, log),
		}, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func newPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) integration.EventPublisher {
	if !cfg.Enabled {
		return integration.NewNoopPublisher(log)
	}

	publisher, err := integration.NewRabbitMQPublisher(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, events will not be published")
		return integration.NewNoopPublisher(log)
	}
	return publisher
}

func newAvatarStorage(cfg config.StorageConfig, log zerolog.Logger) integration.AvatarStorage {
	if !cfg.Enabled {
		return integration.NewDisabledAvatarStorage()
	}

	storage, err := integration.NewMinIOAvatarStorage(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("MinIO unavailable, profile picture uploads are disabled")
		return integration.NewDisabledAvatarStorage()
	}
	return storage
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting course tracker on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down course tracker...")

	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}

	if err := a.publisher.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return nil
}
