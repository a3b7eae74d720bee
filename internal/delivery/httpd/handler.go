package httpd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/config"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Handler struct {
	authService    service.AuthService
	userService    service.UserService
	profileService service.ProfileService
	subjectService service.SubjectService
	careerService  service.CareerService
	noteService    service.NoteService
	projectService service.ProjectService
	todoService    service.TodoService
	session        config.SessionConfig
	maxUploadSize  int64
	logger         zerolog.Logger
}

func NewHandler(
	authService service.AuthService,
	userService service.UserService,
	profileService service.ProfileService,
	subjectService service.SubjectService,
	careerService service.CareerService,
	noteService service.NoteService,
	projectService service.ProjectService,
	todoService service.TodoService,
	session config.SessionConfig,
	maxUploadSize int64,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		userService:    userService,
		profileService: profileService,
		subjectService: subjectService,
		careerService:  careerService,
		noteService:    noteService,
		projectService: projectService,
		todoService:    todoService,
		session:        session,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Post("/auth/register", h.Register)
		api.Post("/auth/login", h.Login)

		api.Group(func(r chi.Router) {
			r.Use(h.RequireSession)

			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/me", h.Me)

			r.Get("/users/{id}", h.GetUserByID)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.GetProfile)
				r.Put("/", h.UpdateProfile)
				r.Post("/picture", h.UploadProfilePicture)
			})

			r.Get("/career-recommendation", h.GetCareerRecommendation)

			r.Route("/subjects", func(r chi.Router) {
				r.Post("/", h.CreateSubject)
				r.Get("/", h.GetSubjects)
				r.Get("/{id}", h.GetSubjectByID)
				r.Put("/{id}", h.UpdateSubject)
				r.Delete("/{id}", h.DeleteSubject)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", h.CreateNote)
				r.Get("/", h.GetNotes)
				r.Get("/{id}", h.GetNoteByID)
				r.Put("/{id}", h.UpdateNote)
				r.Delete("/{id}", h.DeleteNote)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.CreateProject)
				r.Get("/", h.GetProjects)
				r.Get("/{id}", h.GetProjectByID)
				r.Put("/{id}", h.UpdateProject)
				r.Delete("/{id}", h.DeleteProject)
			})

			r.Route("/todo-lists", func(r chi.Router) {
				r.Post("/", h.CreateTodoList)
				r.Get("/", h.GetTodoLists)
				r.Get("/{id}", h.GetTodoListByID)
				r.Put("/{id}", h.UpdateTodoList)
				r.Delete("/{id}", h.DeleteTodoList)
				r.Post("/{id}/tasks", h.AddTask)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Patch("/{id}/toggle", h.ToggleTask)
				r.Delete("/{id}", h.DeleteTask)
			})
		})
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "course-tracker",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

// pathID reads the {id} URL parameter and rejects anything that is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return "", false
	}
	return id, true
}

func getIntQueryParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeSuccessStatus(w, http.StatusOK, data)
}

func writeSuccessStatus(w http.ResponseWriter, status int, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, status, response)
}
