package httpd

import (
	"errors"
	"net/http"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
)

func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req models.SubjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	subject, err := h.subjectService.CreateSubject(ctx, userIDFromContext(ctx), &req)
	if err != nil {
		h.handleSubjectError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, subject)
}

func (h *Handler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.SubjectFilter{
		Category: query.Get("category"),
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
	}
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	ctx := r.Context()
	response, err := h.subjectService.GetSubjects(ctx, userIDFromContext(ctx), filter, page, limit)
	if err != nil {
		h.handleSubjectError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) GetSubjectByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	subject, err := h.subjectService.GetSubject(ctx, userIDFromContext(ctx), id)
	if err != nil {
		h.handleSubjectError(w, err)
		return
	}

	writeSuccess(w, subject)
}

func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.SubjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	subject, err := h.subjectService.UpdateSubject(ctx, userIDFromContext(ctx), id, &req)
	if err != nil {
		h.handleSubjectError(w, err)
		return
	}

	writeSuccess(w, subject)
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.subjectService.DeleteSubject(ctx, userIDFromContext(ctx), id); err != nil {
		h.handleSubjectError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Subject deleted successfully",
	})
}

func (h *Handler) handleSubjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidSubjectStatus),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrInvalidGrade):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Subject service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
