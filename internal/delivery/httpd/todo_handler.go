package httpd

import (
	"errors"
	"net/http"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
)

func (h *Handler) CreateTodoList(w http.ResponseWriter, r *http.Request) {
	var req models.TodoListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	list, err := h.todoService.CreateList(ctx, userIDFromContext(ctx), &req)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, list)
}

func (h *Handler) GetTodoLists(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	ctx := r.Context()
	response, err := h.todoService.GetLists(ctx, userIDFromContext(ctx), page, limit)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) GetTodoListByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	list, err := h.todoService.GetList(ctx, userIDFromContext(ctx), id)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccess(w, list)
}

func (h *Handler) UpdateTodoList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.TodoListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	list, err := h.todoService.UpdateList(ctx, userIDFromContext(ctx), id, &req)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccess(w, list)
}

func (h *Handler) DeleteTodoList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.todoService.DeleteList(ctx, userIDFromContext(ctx), id); err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Todo list deleted successfully",
	})
}

func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	task, err := h.todoService.AddTask(ctx, userIDFromContext(ctx), listID, &req)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, task)
}

func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	response, err := h.todoService.ToggleTask(ctx, userIDFromContext(ctx), id)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.todoService.DeleteTask(ctx, userIDFromContext(ctx), id); err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Task deleted successfully",
	})
}

func (h *Handler) handleTodoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTodoListNotFound),
		errors.Is(err, service.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Todo service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
