package httpd

import (
	"errors"
	"io"
	"net/http"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
)

// multipartOverhead leaves room for form boundaries and headers around the file part.
const multipartOverhead = 1 << 20

func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	user, err := h.userService.GetUser(ctx, id)
	if err != nil {
		h.handleUserError(w, err)
		return
	}

	writeSuccess(w, user)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := h.profileService.GetProfile(ctx, userIDFromContext(ctx))
	if err != nil {
		h.handleUserError(w, err)
		return
	}

	writeSuccess(w, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	profile, err := h.profileService.UpdateProfile(ctx, userIDFromContext(ctx), &req)
	if err != nil {
		h.handleUserError(w, err)
		return
	}

	writeSuccess(w, profile)
}

func (h *Handler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, service.ErrFileTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	req := &models.UploadPictureRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}

	ctx := r.Context()
	profile, err := h.profileService.UploadPicture(ctx, userIDFromContext(ctx), req)
	if err != nil {
		h.handleUserError(w, err)
		return
	}

	writeSuccess(w, profile)
}

func (h *Handler) GetCareerRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp, err := h.careerService.Recommend(ctx, userIDFromContext(ctx))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to compute career recommendation")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, resp)
}

func (h *Handler) handleUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnsupportedImageType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrFileTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrStorageDisabled):
		writeError(w, http.StatusServiceUnavailable, "Profile picture storage is not available")
	default:
		h.logger.Error().Err(err).Msg("User service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
