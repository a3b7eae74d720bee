package httpd

import (
	"errors"
	"net/http"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
)

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	project, err := h.projectService.CreateProject(ctx, userIDFromContext(ctx), &req)
	if err != nil {
		h.handleProjectError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, project)
}

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	ctx := r.Context()
	response, err := h.projectService.GetProjects(ctx, userIDFromContext(ctx), status, page, limit)
	if err != nil {
		h.handleProjectError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	project, err := h.projectService.GetProject(ctx, userIDFromContext(ctx), id)
	if err != nil {
		h.handleProjectError(w, err)
		return
	}

	writeSuccess(w, project)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	project, err := h.projectService.UpdateProject(ctx, userIDFromContext(ctx), id, &req)
	if err != nil {
		h.handleProjectError(w, err)
		return
	}

	writeSuccess(w, project)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.projectService.DeleteProject(ctx, userIDFromContext(ctx), id); err != nil {
		h.handleProjectError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Project deleted successfully",
	})
}

func (h *Handler) handleProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidProjectStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Project service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
