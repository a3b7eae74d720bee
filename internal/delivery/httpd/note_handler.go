package httpd

import (
	"errors"
	"net/http"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
	"github.com/google/uuid"
)

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req models.NoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	note, err := h.noteService.CreateNote(ctx, userIDFromContext(ctx), &req)
	if err != nil {
		h.handleNoteError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, note)
}

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	subjectID := r.URL.Query().Get("subject_id")
	if subjectID != "" {
		if _, err := uuid.Parse(subjectID); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid subject_id")
			return
		}
	}
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	ctx := r.Context()
	response, err := h.noteService.GetNotes(ctx, userIDFromContext(ctx), subjectID, page, limit)
	if err != nil {
		h.handleNoteError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	note, err := h.noteService.GetNote(ctx, userIDFromContext(ctx), id)
	if err != nil {
		h.handleNoteError(w, err)
		return
	}

	writeSuccess(w, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.NoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	note, err := h.noteService.UpdateNote(ctx, userIDFromContext(ctx), id, &req)
	if err != nil {
		h.handleNoteError(w, err)
		return
	}

	writeSuccess(w, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.noteService.DeleteNote(ctx, userIDFromContext(ctx), id); err != nil {
		h.handleNoteError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Note deleted successfully",
	})
}

func (h *Handler) handleNoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, service.ErrSubjectNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Note service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
